package http

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/crm-panel/internal/application/dto"
	"github.com/jhoicas/crm-panel/internal/application/session"
	"github.com/jhoicas/crm-panel/internal/domain"
	"github.com/jhoicas/crm-panel/internal/pkg/metrics"
	"github.com/jhoicas/crm-panel/pkg/logger"
)

// AuthHandler login, logout y usuario actual.
type AuthHandler struct {
	sessions *session.Service
	store    TokenStore
	validate *validator.Validate
	log      *logger.Logger
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(sessions *session.Service, store TokenStore, log *logger.Logger) *AuthHandler {
	return &AuthHandler{
		sessions: sessions,
		store:    store,
		validate: validator.New(),
		log:      log,
	}
}

// Login maneja POST /auth/login: autentica contra el backend del CRM,
// persiste el token en la cookie y devuelve el usuario derivado.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y password son requeridos"})
	}

	tok, user, err := h.sessions.Login(c.Context(), in.Email, in.Password)
	if err != nil {
		var authErr *domain.AuthError
		switch {
		case errors.As(err, &authErr):
			metrics.LoginAttempts.WithLabelValues("rejected").Inc()
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "AUTENTICACION", Message: authErr.Message})
		case errors.Is(err, domain.ErrTokenNoRecibido):
			metrics.LoginAttempts.WithLabelValues("error").Inc()
			return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "PROTOCOLO", Message: domain.ErrTokenNoRecibido.Error()})
		default:
			metrics.LoginAttempts.WithLabelValues("error").Inc()
			h.log.Error().Err(err).Msg("login contra el backend del CRM")
			return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "CONEXION", Message: "No se pudo iniciar sesión"})
		}
	}
	metrics.LoginAttempts.WithLabelValues("success").Inc()

	// El token queda persistido antes de responder: el usuario devuelto
	// refleja siempre el login recién completado.
	h.store.Save(c, tok, in.Remember)

	h.log.Info().Str("user", user.Email).Str("role", string(user.Role)).Msg("sesión iniciada")
	return c.JSON(dto.LoginResponse{User: *user})
}

// Logout maneja POST /auth/logout: limpia la cookie y notifica al servicio.
// La navegación posterior al login es responsabilidad del cliente.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.store.Clear(c)
	h.sessions.Logout()
	return c.SendStatus(fiber.StatusNoContent)
}

// Me maneja GET /auth/me: snapshot del usuario de la sesión.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user := CurrentUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "NO_AUTENTICADO", Message: domain.ErrNoAutenticado.Error()})
	}
	return c.JSON(user)
}
