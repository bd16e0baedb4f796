package http

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/crm-panel/internal/application/dto"
	"github.com/jhoicas/crm-panel/internal/application/usecase"
)

// LeadHandler pantalla de leads.
type LeadHandler struct {
	uc       *usecase.LeadUseCase
	store    TokenStore
	validate *validator.Validate
}

// NewLeadHandler construye el handler de leads.
func NewLeadHandler(uc *usecase.LeadUseCase, store TokenStore) *LeadHandler {
	return &LeadHandler{uc: uc, store: store, validate: validator.New()}
}

// List maneja GET /api/leads?q=&status=.
func (h *LeadHandler) List(c *fiber.Ctx) error {
	var f dto.LeadFilter
	if err := c.QueryParser(&f); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "filtros inválidos"})
	}
	if err := h.validate.Struct(f); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "status debe ser nuevo, contactado o cerrado"})
	}

	leads, err := h.uc.List(c.Context(), SessionToken(c), f)
	if err != nil {
		if isExpiredSession(err) {
			return handleExpiredSession(c, h.store)
		}
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "CRM", Message: err.Error()})
	}
	return c.JSON(leads)
}
