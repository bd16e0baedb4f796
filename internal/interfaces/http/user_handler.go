package http

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/crm-panel/internal/application/dto"
	"github.com/jhoicas/crm-panel/internal/application/usecase"
	"github.com/jhoicas/crm-panel/internal/domain"
)

// UserHandler administración de usuarios (proxy hacia el backend del CRM).
type UserHandler struct {
	uc       *usecase.UserUseCase
	store    TokenStore
	validate *validator.Validate
}

// NewUserHandler construye el handler de usuarios.
func NewUserHandler(uc *usecase.UserUseCase, store TokenStore) *UserHandler {
	return &UserHandler{uc: uc, store: store, validate: validator.New()}
}

// List maneja GET /api/usuarios.
func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.uc.List(c.Context(), SessionToken(c))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(users)
}

// Create maneja POST /api/usuarios.
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name, email, password y role son requeridos"})
	}
	user, err := h.uc.Create(c.Context(), SessionToken(c), in)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// Update maneja PUT /api/usuarios/:id.
func (h *UserHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "campos inválidos"})
	}
	user, err := h.uc.Update(c.Context(), SessionToken(c), c.Params("id"), in)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(user)
}

// Delete maneja DELETE /api/usuarios/:id.
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), SessionToken(c), c.Params("id")); err != nil {
		return h.fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// fail mapea errores del CRM a respuestas HTTP del panel.
func (h *UserHandler) fail(c *fiber.Ctx, err error) error {
	switch {
	case isExpiredSession(err):
		return handleExpiredSession(c, h.store)
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario no encontrado"})
	default:
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "CRM", Message: err.Error()})
	}
}
