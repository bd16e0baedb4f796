package http

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/crm-panel/internal/application/dto"
	"github.com/jhoicas/crm-panel/internal/application/usecase"
)

// SettingsHandler configuración del panel y del servidor.
type SettingsHandler struct {
	uc       *usecase.SettingsUseCase
	validate *validator.Validate
}

// NewSettingsHandler construye el handler de configuración.
func NewSettingsHandler(uc *usecase.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{uc: uc, validate: validator.New()}
}

// Get maneja GET /api/configuracion.
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	return c.JSON(h.uc.Get())
}

// Update maneja PUT /api/configuracion.
func (h *SettingsHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSettingsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "configuración inválida"})
	}
	return c.JSON(h.uc.Update(in))
}

// ServerConfig maneja GET /api/configuracion/servidor.
func (h *SettingsHandler) ServerConfig(c *fiber.Ctx) error {
	return c.JSON(h.uc.ServerConfig())
}

// SetServerConfig maneja PUT /api/configuracion/servidor (solo superadmin):
// cambia en caliente la URL base de la API del CRM y la persiste.
func (h *SettingsHandler) SetServerConfig(c *fiber.Ctx) error {
	var in dto.ServerConfigRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "api_url debe ser una URL válida"})
	}
	out, err := h.uc.SetServerConfig(in)
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "CONFIG", Message: err.Error()})
	}
	return c.JSON(out)
}
