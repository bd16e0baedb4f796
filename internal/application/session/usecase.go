// Package session orquesta el ciclo de sesión del panel: login contra el
// endpoint externo, derivación del usuario actual desde el token y logout.
package session

import (
	"context"
	"sync"

	"github.com/jhoicas/crm-panel/internal/domain"
	"github.com/jhoicas/crm-panel/internal/domain/entity"
	"github.com/jhoicas/crm-panel/pkg/token"
)

// Authenticator contrato mínimo hacia el endpoint externo de autenticación.
// Lo implementa *crm.Client; el panel nunca verifica credenciales por sí mismo.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (string, error)
}

// Service casos de uso de sesión. Una sola instancia por proceso: todos los
// handlers comparten este servicio y el token en la cookie es la única fuente
// de verdad del usuario actual.
type Service struct {
	auth Authenticator

	mu       sync.Mutex
	onLogout []func()
}

// NewService construye el servicio de sesión.
func NewService(auth Authenticator) *Service {
	return &Service{auth: auth}
}

// Login autentica contra el backend y deriva el usuario del token emitido.
// El token se extrae (y queda listo para persistir) ANTES de derivar el
// usuario, de modo que el usuario devuelto refleja siempre el login recién
// completado y nunca una sesión previa.
//
// Errores: *domain.AuthError si el backend rechazó las credenciales;
// domain.ErrTokenNoRecibido si respondió OK sin token; errores de red se
// propagan tal cual (el formulario de login decide cómo mostrarlos).
func (s *Service) Login(ctx context.Context, email, password string) (string, *entity.User, error) {
	tok, err := s.auth.Login(ctx, email, password)
	if err != nil {
		return "", nil, err
	}

	user, err := s.CurrentUser(tok)
	if err != nil {
		// El backend emitió algo que no podemos decodificar: para el intento
		// de login equivale a no haber recibido token.
		return "", nil, domain.ErrTokenNoRecibido
	}
	return tok, user, nil
}

// CurrentUser deriva el usuario desde un token almacenado.
// Token vacío = sin sesión (nil, nil). Token ilegible = domain.ErrTokenIlegible:
// el llamador debe descartar el token y tratar la sesión como ausente, nunca
// mostrarlo como error al usuario.
func (s *Service) CurrentUser(raw string) (*entity.User, error) {
	if raw == "" {
		return nil, nil
	}
	claims, err := token.Decode(raw)
	if err != nil {
		return nil, domain.ErrTokenIlegible
	}
	return token.UserFromClaims(claims), nil
}

// OnLogout registra un listener que se invoca en cada logout. La navegación
// al login es responsabilidad de la capa HTTP, no de este servicio.
func (s *Service) OnLogout(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onLogout = append(s.onLogout, fn)
}

// Logout notifica a los suscriptores. Idempotente: no falla si no había sesión.
// No toca configuración ajena a la sesión (la URL de API persiste).
func (s *Service) Logout() {
	s.mu.Lock()
	listeners := make([]func(), len(s.onLogout))
	copy(listeners, s.onLogout)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}
