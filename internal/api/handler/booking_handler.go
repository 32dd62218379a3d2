package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ypamc/restaurant-backend/internal/core/domain"
	"github.com/ypamc/restaurant-backend/internal/core/ports"
)

// BookingHandler handles booking submissions and the admin list view.
type BookingHandler struct {
	service ports.BookingService
}

func NewBookingHandler(service ports.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

type createBookingRequest struct {
	CustomerName    string `json:"customer_name"    validate:"required,max=100"`
	CustomerEmail   string `json:"customer_email"   validate:"required,email"`
	CustomerPhone   string `json:"customer_phone"   validate:"required,max=20"`
	BookingDate     string `json:"booking_date"     validate:"required,datetime=2006-01-02"`
	BookingTime     string `json:"booking_time"     validate:"required,max=20"`
	PartySize       int    `json:"party_size"       validate:"required,gte=1,lte=50"`
	SpecialRequests string `json:"special_requests" validate:"max=500"`
}

// Create handles POST /bookings. Public, no authentication.
//
// @Summary      Submit a table booking
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        body  body      createBookingRequest  true  "Booking details"
// @Success      201   {object}  domain.Booking
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /bookings [post]
func (h *BookingHandler) Create(c echo.Context) error {
	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	booking, err := h.service.Create(c.Request().Context(), ports.CreateBookingInput{
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		BookingDate:     req.BookingDate,
		BookingTime:     req.BookingTime,
		PartySize:       req.PartySize,
		SpecialRequests: req.SpecialRequests,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateSubmission) {
			return echo.NewHTTPError(http.StatusConflict, "booking already submitted")
		}
		return err
	}

	return c.JSON(http.StatusCreated, booking)
}

// List handles GET /bookings. Finance admins only (guard applied at the
// route registration).
//
// @Summary      List all bookings, newest first
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Booking
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /bookings [get]
func (h *BookingHandler) List(c echo.Context) error {
	bookings, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bookings)
}
