package http_test

import (
	"encoding/json"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-panel/internal/application/session"
	"github.com/jhoicas/crm-panel/internal/domain/entity"
	panelhttp "github.com/jhoicas/crm-panel/internal/interfaces/http"
)

const testCookie = "auth_token"

// tokenFor emite un token firmado con una clave arbitraria: el panel no
// verifica firmas, solo decodifica claims.
func tokenFor(t *testing.T, role string) string {
	t.Helper()
	raw, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, gojwt.MapClaims{
		"sub":   "u-1",
		"email": "agente@empresa.com",
		"name":  "Agente Uno",
		"role":  role,
	}).SignedString([]byte("clave-de-prueba"))
	require.NoError(t, err)
	return raw
}

// buildGuardedApp app mínima con el middleware de sesión y rutas protegidas,
// suficiente para ejercitar el guard sin backend CRM.
func buildGuardedApp() (*fiber.App, panelhttp.TokenStore) {
	store := panelhttp.TokenStore{Name: testCookie, RememberTTL: 30 * 24 * time.Hour}
	sessions := session.NewService(nil)

	app := fiber.New()
	app.Use(panelhttp.SessionMiddleware(store, sessions))

	app.Get("/leads", panelhttp.RequireAuth(), func(c *fiber.Ctx) error {
		return c.SendString("leads")
	})
	app.Get("/api/leads", panelhttp.RequireAuth(), func(c *fiber.Ctx) error {
		return c.SendString("leads")
	})
	app.Get("/reportes", panelhttp.RequireRoles(entity.RoleAdmin, entity.RoleSuperadmin), func(c *fiber.Ctx) error {
		return c.SendString("reportes")
	})
	app.Get("/perfil", panelhttp.RequireRoles(), func(c *fiber.Ctx) error {
		u := panelhttp.CurrentUser(c)
		return c.SendString(u.Email)
	})
	return app, store
}

func withCookie(req *nethttp.Request, token string) *nethttp.Request {
	req.AddCookie(&nethttp.Cookie{Name: testCookie, Value: token})
	return req
}

func TestRequireAuth_SinSesion_RedirigeConservandoDestino(t *testing.T) {
	app, _ := buildGuardedApp()

	req := httptest.NewRequest(nethttp.MethodGet, "/leads?estado=nuevo", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login?from=%2Fleads%3Festado%3Dnuevo", resp.Header.Get("Location"))
}

func TestRequireAuth_SinSesion_API_Responde401JSON(t *testing.T) {
	app, _ := buildGuardedApp()

	req := httptest.NewRequest(nethttp.MethodGet, "/api/leads", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "NO_AUTENTICADO", body["code"])
}

func TestRequireAuth_ConSesion_Pasa(t *testing.T) {
	app, _ := buildGuardedApp()

	req := withCookie(httptest.NewRequest(nethttp.MethodGet, "/leads", nil), tokenFor(t, "agente"))
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestSessionMiddleware_TokenCorrupto_SeDescartaEnSilencio(t *testing.T) {
	app, _ := buildGuardedApp()

	req := withCookie(httptest.NewRequest(nethttp.MethodGet, "/leads", nil), "no-es-un-jwt")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	// La petición sigue sin autenticar (redirección al login, no un 500)...
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)

	// ...y la cookie corrupta quedó expirada.
	var cleared bool
	for _, c := range resp.Cookies() {
		if c.Name == testCookie && c.Value == "" && c.Expires.Before(time.Now()) {
			cleared = true
		}
	}
	assert.True(t, cleared, "la cookie corrupta debe quedar expirada")
}

func TestRequireRoles_RolInsuficiente_403NombrandoRoles(t *testing.T) {
	app, _ := buildGuardedApp()

	req := withCookie(httptest.NewRequest(nethttp.MethodGet, "/reportes", nil), tokenFor(t, "agente"))
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "admin, superadmin")
	assert.Contains(t, string(raw), "No tienes permisos suficientes")
}

func TestRequireRoles_AdminYSuperadmin_Pasan(t *testing.T) {
	app, _ := buildGuardedApp()

	for _, role := range []string{"ROLE_ADMIN", "superadmin"} {
		req := withCookie(httptest.NewRequest(nethttp.MethodGet, "/reportes", nil), tokenFor(t, role))
		resp, err := app.Test(req)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, "rol %s", role)
	}
}

func TestRequireRoles_ConjuntoVacio_BastaAutenticarse(t *testing.T) {
	app, _ := buildGuardedApp()

	req := withCookie(httptest.NewRequest(nethttp.MethodGet, "/perfil", nil), tokenFor(t, "agente"))
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "agente@empresa.com", strings.TrimSpace(string(raw)))
}

func TestDecide_TablaDeDecisiones(t *testing.T) {
	admin := &entity.User{Role: entity.RoleAdmin}
	superadmin := &entity.User{Role: entity.RoleSuperadmin}
	agente := &entity.User{Role: entity.RoleUser}

	cases := []struct {
		name     string
		user     *entity.User
		required []entity.Role
		want     panelhttp.Decision
	}{
		{"sin sesión", nil, nil, panelhttp.DecisionLogin},
		{"sin sesión con roles", nil, []entity.Role{entity.RoleAdmin}, panelhttp.DecisionLogin},
		{"autenticado sin requisitos", agente, nil, panelhttp.DecisionAllow},
		{"rol insuficiente", agente, []entity.Role{entity.RoleAdmin}, panelhttp.DecisionDenied},
		{"rol presente", admin, []entity.Role{entity.RoleAdmin, entity.RoleSuperadmin}, panelhttp.DecisionAllow},
		{"superadmin siempre pasa", superadmin, []entity.Role{entity.RoleAdmin}, panelhttp.DecisionAllow},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, panelhttp.Decide(tc.user, tc.required))
		})
	}
}
