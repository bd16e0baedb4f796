package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	// ErrTokenIlegible indica que el token almacenado no pudo decodificarse.
	// Se recupera en silencio: se descarta el token y la sesión se trata como ausente.
	ErrTokenIlegible = errors.New("token ilegible")

	// ErrTokenNoRecibido indica que el backend respondió OK al login pero sin campo token.
	ErrTokenNoRecibido = errors.New("token no recibido desde el servidor")

	// ErrSesionExpirada indica que la API del CRM rechazó el token (401).
	ErrSesionExpirada = errors.New("sesión expirada")

	ErrNoAutenticado   = errors.New("no autenticado")
	ErrPermisoDenegado = errors.New("permisos insuficientes")
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrInvalidInput    = errors.New("entrada inválida")
)

// AuthError error de autenticación devuelto por el endpoint externo de login.
// Message es apto para mostrarse en el formulario de login.
type AuthError struct {
	Status  int
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}
