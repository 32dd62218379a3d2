package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ypamc/restaurant-backend/internal/core/ports"
)

// OverviewHandler serves the admin dashboard counts. Open to any
// authenticated admin regardless of role.
type OverviewHandler struct {
	bookings ports.BookingRepository
	contacts ports.ContactRepository
	reviews  ports.ReviewRepository
}

func NewOverviewHandler(bookings ports.BookingRepository, contacts ports.ContactRepository, reviews ports.ReviewRepository) *OverviewHandler {
	return &OverviewHandler{bookings: bookings, contacts: contacts, reviews: reviews}
}

type overviewResponse struct {
	Bookings int64 `json:"bookings"`
	Contacts int64 `json:"contacts"`
	Reviews  int64 `json:"reviews"`
}

// Overview handles GET /admin/overview.
//
// @Summary      Record counts per submission family
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  overviewResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /admin/overview [get]
func (h *OverviewHandler) Overview(c echo.Context) error {
	ctx := c.Request().Context()

	bookings, err := h.bookings.Count(ctx)
	if err != nil {
		return err
	}
	contacts, err := h.contacts.Count(ctx)
	if err != nil {
		return err
	}
	reviews, err := h.reviews.Count(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, overviewResponse{
		Bookings: bookings,
		Contacts: contacts,
		Reviews:  reviews,
	})
}
