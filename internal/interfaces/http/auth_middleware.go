package http

import (
	"errors"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/crm-panel/internal/application/dto"
	"github.com/jhoicas/crm-panel/internal/application/session"
	"github.com/jhoicas/crm-panel/internal/domain"
	"github.com/jhoicas/crm-panel/internal/domain/entity"
)

// Locals keys para el usuario y token de la sesión en Fiber.
const (
	LocalUser  = "current_user"
	LocalToken = "session_token"
)

// SessionMiddleware deriva el usuario actual desde la cookie de sesión y lo
// deja en c.Locals. Un token ilegible se descarta en silencio (se limpia la
// cookie y la petición sigue sin autenticar); nunca produce un error HTTP.
func SessionMiddleware(store TokenStore, sessions *session.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tok := store.Read(c)
		if tok == "" {
			return c.Next()
		}
		user, err := sessions.CurrentUser(tok)
		if err != nil {
			// Token corrupto o ajeno: equivale a no tener sesión.
			store.Clear(c)
			return c.Next()
		}
		c.Locals(LocalUser, user)
		c.Locals(LocalToken, tok)
		return c.Next()
	}
}

// RequireAuth exige sesión activa. Sin sesión, las peticiones de API reciben
// 401 y las de navegación se redirigen a /login conservando el destino
// original para volver tras el login.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if Decide(CurrentUser(c), nil) == DecisionLogin {
			return redirectToLogin(c)
		}
		return c.Next()
	}
}

// RequireRoles exige sesión y alguno de los roles indicados.
// superadmin satisface cualquier conjunto; conjunto vacío = solo autenticación.
func RequireRoles(roles ...entity.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		switch Decide(CurrentUser(c), roles) {
		case DecisionLogin:
			return redirectToLogin(c)
		case DecisionDenied:
			names := make([]string, len(roles))
			for i, r := range roles {
				names[i] = string(r)
			}
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code: "PERMISO_DENEGADO",
				Message: "No tienes permisos suficientes para acceder a esta sección. " +
					"Se requiere uno de los siguientes roles: " + strings.Join(names, ", ") + ".",
			})
		}
		return c.Next()
	}
}

// CurrentUser devuelve el usuario de la sesión o nil.
func CurrentUser(c *fiber.Ctx) *entity.User {
	u, _ := c.Locals(LocalUser).(*entity.User)
	return u
}

// SessionToken devuelve el token de la sesión o cadena vacía.
func SessionToken(c *fiber.Ctx) string {
	t, _ := c.Locals(LocalToken).(string)
	return t
}

// redirectToLogin responde a la falta de sesión: JSON para la API,
// redirección con destino preservado para la navegación.
func redirectToLogin(c *fiber.Ctx) error {
	if wantsJSON(c) {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Code:    "NO_AUTENTICADO",
			Message: "Debes iniciar sesión para acceder a esta página.",
		})
	}
	return c.Redirect("/login?from="+url.QueryEscape(c.OriginalURL()), fiber.StatusFound)
}

// handleExpiredSession efecto global del rechazo de token por el CRM: limpia
// la sesión y manda al login, guardando el destino para después del login.
func handleExpiredSession(c *fiber.Ctx, store TokenStore) error {
	store.Clear(c)
	if wantsJSON(c) {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Code:    "SESION_EXPIRADA",
			Message: "La sesión expiró, inicia sesión nuevamente.",
		})
	}
	return c.Redirect("/login?from="+url.QueryEscape(c.OriginalURL()), fiber.StatusFound)
}

// isExpiredSession reporta si el error proviene de un 401 del CRM.
func isExpiredSession(err error) bool {
	return errors.Is(err, domain.ErrSesionExpirada)
}

// wantsJSON distingue llamadas de API de navegación del browser.
func wantsJSON(c *fiber.Ctx) bool {
	if strings.HasPrefix(c.Path(), "/api/") || strings.HasPrefix(c.Path(), "/auth/") {
		return true
	}
	return strings.Contains(c.Get(fiber.HeaderAccept), fiber.MIMEApplicationJSON)
}
