package crm_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-panel/internal/domain"
	"github.com/jhoicas/crm-panel/internal/infrastructure/crm"
)

func newClient(srv *httptest.Server) *crm.Client {
	return crm.NewClient(func() string { return srv.URL })
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_ExitoConCampoToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ana@empresa.com", body["email"])
		assert.Equal(t, "secreto", body["password"])

		_ = json.NewEncoder(w).Encode(map[string]string{"token": "tok-123"})
	}))
	defer srv.Close()

	tok, err := newClient(srv).Login(context.Background(), "ana@empresa.com", "secreto")
	require.NoError(t, err)
	assert.Equal(t, "tok-123", tok)
}

func TestLogin_ExitoConAccessToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"access_token": "tok-456"})
	}))
	defer srv.Close()

	tok, err := newClient(srv).Login(context.Background(), "a@b.com", "x")
	require.NoError(t, err)
	assert.Equal(t, "tok-456", tok, "access_token debe aceptarse como segundo nombre de campo")
}

func TestLogin_OkSinToken_RetornaErrTokenNoRecibido(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"ok": "true"})
	}))
	defer srv.Close()

	_, err := newClient(srv).Login(context.Background(), "a@b.com", "x")
	assert.ErrorIs(t, err, domain.ErrTokenNoRecibido)
}

// El override por 401 tiene prioridad sobre el message del cuerpo.
func TestLogin_401_MensajeCredencialesInvalidas(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "bad creds"})
	}))
	defer srv.Close()

	_, err := newClient(srv).Login(context.Background(), "a@b.com", "mal")
	var authErr *domain.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, http.StatusUnauthorized, authErr.Status)
	assert.Equal(t, "Credenciales inválidas", authErr.Message)
}

func TestLogin_ErrorConMensajeDelCuerpo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "cuenta suspendida"})
	}))
	defer srv.Close()

	_, err := newClient(srv).Login(context.Background(), "a@b.com", "x")
	var authErr *domain.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "cuenta suspendida", authErr.Message)
}

func TestLogin_ErrorSinCuerpo_MensajeGenerico(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newClient(srv).Login(context.Background(), "a@b.com", "x")
	var authErr *domain.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "Error de autenticación", authErr.Message)
}

func TestLogin_FalloDeRed_ErrorDeConectividad(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // servidor caído

	_, err := newClient(srv).Login(context.Background(), "a@b.com", "x")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrTokenNoRecibido)
	var authErr *domain.AuthError
	assert.False(t, errors.As(err, &authErr), "un fallo de red no es un rechazo de credenciales")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de llamadas autenticadas
// ──────────────────────────────────────────────────────────────────────────────

func TestLeads_AdjuntaBearer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode([]map[string]string{{"id": "1", "name": "María"}})
	}))
	defer srv.Close()

	leads, err := newClient(srv).Leads(context.Background(), "tok-123")
	require.NoError(t, err)
	require.Len(t, leads, 1)
	assert.Equal(t, "María", leads[0].Name)
}

func TestLeads_401_RetornaSesionExpirada(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := newClient(srv).Leads(context.Background(), "tok-viejo")
	assert.ErrorIs(t, err, domain.ErrSesionExpirada)
}

func TestDeleteUser_404_RetornaNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/users/u-1", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	err := newClient(srv).DeleteUser(context.Background(), "tok", "u-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
