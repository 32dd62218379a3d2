package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ypamc/restaurant-backend/internal/core/ports"
)

// ReviewHandler handles review submissions and the admin list view.
type ReviewHandler struct {
	service ports.ReviewService
}

func NewReviewHandler(service ports.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

type createReviewRequest struct {
	CustomerName  string `json:"customer_name"  validate:"required,max=100"`
	CustomerEmail string `json:"customer_email" validate:"required,email"`
	Rating        int    `json:"rating"         validate:"required,gte=1,lte=5"`
	Comment       string `json:"comment"        validate:"max=1000"`
	MenuID        int64  `json:"menu_id"        validate:"required,gte=1"`
}

// Create handles POST /reviews. Public, no authentication.
//
// @Summary      Submit a menu item review
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        body  body      createReviewRequest  true  "Review details"
// @Success      201   {object}  domain.Review
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /reviews [post]
func (h *ReviewHandler) Create(c echo.Context) error {
	var req createReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	review, err := h.service.Create(c.Request().Context(), ports.CreateReviewInput{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		Rating:        req.Rating,
		Comment:       req.Comment,
		MenuID:        req.MenuID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, review)
}

// List handles GET /reviews. Records admins only.
//
// @Summary      List all reviews, newest first
// @Tags         reviews
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Review
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /reviews [get]
func (h *ReviewHandler) List(c echo.Context) error {
	reviews, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reviews)
}
