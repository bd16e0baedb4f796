package session_test

import (
	"context"
	"testing"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-panel/internal/application/session"
	"github.com/jhoicas/crm-panel/internal/domain"
	"github.com/jhoicas/crm-panel/internal/domain/entity"
)

// fakeAuthenticator backend de login simulado.
type fakeAuthenticator struct {
	token string
	err   error
	calls int
}

func (f *fakeAuthenticator) Login(ctx context.Context, email, password string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.token, nil
}

func signedToken(t *testing.T, claims gojwt.MapClaims) string {
	t.Helper()
	tok, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte("secret-del-backend"))
	require.NoError(t, err)
	return tok
}

func TestLogin_DerivaUsuarioDelTokenRecienEmitido(t *testing.T) {
	raw := signedToken(t, gojwt.MapClaims{
		"sub":   "7",
		"email": "ana@empresa.com",
		"name":  "Ana",
		"role":  "ROLE_ADMIN",
	})
	svc := session.NewService(&fakeAuthenticator{token: raw})

	tok, user, err := svc.Login(context.Background(), "ana@empresa.com", "secreto")
	require.NoError(t, err)
	assert.Equal(t, raw, tok)
	assert.Equal(t, "7", user.ID)
	assert.Equal(t, "ana@empresa.com", user.Email)
	assert.Equal(t, entity.RoleAdmin, user.Role)
}

func TestLogin_ErrorDelBackend_SePropaga(t *testing.T) {
	want := &domain.AuthError{Status: 401, Message: "Credenciales inválidas"}
	svc := session.NewService(&fakeAuthenticator{err: want})

	_, _, err := svc.Login(context.Background(), "a@b.com", "mal")
	var authErr *domain.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "Credenciales inválidas", authErr.Message)
}

func TestLogin_TokenEmitidoIlegible_EquivaleATokenNoRecibido(t *testing.T) {
	svc := session.NewService(&fakeAuthenticator{token: "esto-no-es-un-jwt"})

	_, _, err := svc.Login(context.Background(), "a@b.com", "x")
	assert.ErrorIs(t, err, domain.ErrTokenNoRecibido)
}

func TestCurrentUser_SinToken_NilSinError(t *testing.T) {
	svc := session.NewService(&fakeAuthenticator{})

	user, err := svc.CurrentUser("")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestCurrentUser_TokenIlegible_RetornaErrTokenIlegible(t *testing.T) {
	svc := session.NewService(&fakeAuthenticator{})

	for _, raw := range []string{"basura", "a.b", "x.y.z"} {
		user, err := svc.CurrentUser(raw)
		assert.ErrorIs(t, err, domain.ErrTokenIlegible, "token %q", raw)
		assert.Nil(t, user)
	}
}

// Simula recarga de página: el mismo token derivado en login produce el mismo usuario.
func TestCurrentUser_MismoTokenMismoUsuario(t *testing.T) {
	raw := signedToken(t, gojwt.MapClaims{"sub": "9", "email": "x@y.com", "role": "agente"})
	svc := session.NewService(&fakeAuthenticator{token: raw})

	_, fromLogin, err := svc.Login(context.Background(), "x@y.com", "pw")
	require.NoError(t, err)

	reloaded, err := svc.CurrentUser(raw)
	require.NoError(t, err)
	assert.Equal(t, fromLogin.ID, reloaded.ID)
	assert.Equal(t, fromLogin.Email, reloaded.Email)
	assert.Equal(t, fromLogin.Role, reloaded.Role)
}

func TestLogout_NotificaListenersYEsIdempotente(t *testing.T) {
	svc := session.NewService(&fakeAuthenticator{})

	notified := 0
	svc.OnLogout(func() { notified++ })

	svc.Logout()
	svc.Logout() // sin sesión activa: sigue siendo seguro
	assert.Equal(t, 2, notified)
}
