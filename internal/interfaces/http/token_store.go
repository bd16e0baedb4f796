package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// TokenStore guarda el bearer token del backend en una cookie del navegador.
// Un solo nombre de cookie, un solo lugar de lectura: el nivel de persistencia
// (duradera o de sesión) lo decide "remember" al guardar.
type TokenStore struct {
	Name        string // nombre de la cookie, ej. "auth_token"
	Domain      string
	Secure      bool
	RememberTTL time.Duration // vigencia de la cookie persistente
}

// Save escribe el token, reemplazando cualquier cookie previa.
// remember=true produce una cookie persistente; remember=false una cookie
// de sesión que muere al cerrar el navegador.
func (s TokenStore) Save(c *fiber.Ctx, token string, remember bool) {
	cookie := &fiber.Cookie{
		Name:     s.Name,
		Value:    token,
		Path:     "/",
		Domain:   s.Domain,
		Secure:   s.Secure,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	}
	if remember {
		cookie.Expires = time.Now().Add(s.RememberTTL)
	}
	c.Cookie(cookie)
}

// Read devuelve el token almacenado o cadena vacía.
func (s TokenStore) Read(c *fiber.Ctx) string {
	return c.Cookies(s.Name)
}

// Clear expira la cookie incondicionalmente. Idempotente: es seguro llamarlo
// sin sesión activa.
func (s TokenStore) Clear(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     s.Name,
		Value:    "",
		Path:     "/",
		Domain:   s.Domain,
		Secure:   s.Secure,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Expires:  time.Unix(0, 0),
	})
}
