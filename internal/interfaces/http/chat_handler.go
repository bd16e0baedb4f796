package http

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/crm-panel/internal/application/dto"
	"github.com/jhoicas/crm-panel/internal/application/usecase"
	"github.com/jhoicas/crm-panel/internal/domain"
)

// ChatHandler pantalla de chat sobre la bandeja simulada.
type ChatHandler struct {
	uc       *usecase.ChatUseCase
	validate *validator.Validate
}

// NewChatHandler construye el handler de chat.
func NewChatHandler(uc *usecase.ChatUseCase) *ChatHandler {
	return &ChatHandler{uc: uc, validate: validator.New()}
}

// Conversations maneja GET /api/chat/conversations?q=.
func (h *ChatHandler) Conversations(c *fiber.Ctx) error {
	return c.JSON(h.uc.Conversations(c.Query("q")))
}

// Messages maneja GET /api/chat/conversations/:id/messages.
func (h *ChatHandler) Messages(c *fiber.Ctx) error {
	msgs, err := h.uc.Messages(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "conversación no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(msgs)
}

// Send maneja POST /api/chat/conversations/:id/messages.
func (h *ChatHandler) Send(c *fiber.Ctx) error {
	var in dto.SendMessageRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "text es requerido"})
	}

	msg, err := h.uc.Send(c.Params("id"), in.Text)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "conversación no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(msg)
}
