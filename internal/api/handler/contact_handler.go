package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ypamc/restaurant-backend/internal/core/ports"
)

// ContactHandler handles contact form submissions and the admin list view.
type ContactHandler struct {
	service ports.ContactService
}

func NewContactHandler(service ports.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

type createContactRequest struct {
	Name    string `json:"name"    validate:"required,max=100"`
	Email   string `json:"email"   validate:"required,email"`
	Phone   string `json:"phone"   validate:"max=20"`
	Subject string `json:"subject" validate:"required,max=150"`
	Message string `json:"message" validate:"required,max=1000"`
}

// Create handles POST /contact. Public, no authentication.
//
// @Summary      Submit a contact form message
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        body  body      createContactRequest  true  "Contact message"
// @Success      201   {object}  domain.Contact
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /contact [post]
func (h *ContactHandler) Create(c echo.Context) error {
	var req createContactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	contact, err := h.service.Create(c.Request().Context(), ports.CreateContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, contact)
}

// List handles GET /contact. Records admins only.
//
// @Summary      List all contact messages, newest first
// @Tags         contact
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Contact
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /contact [get]
func (h *ContactHandler) List(c echo.Context) error {
	contacts, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, contacts)
}
