package http

import "github.com/jhoicas/crm-panel/internal/domain/entity"

// Decision resultado del guard de rutas para un intento de acceso.
type Decision int

const (
	// DecisionAllow el contenido protegido puede servirse.
	DecisionAllow Decision = iota
	// DecisionLogin no hay sesión: redirigir al login conservando el destino.
	DecisionLogin
	// DecisionDenied hay sesión pero faltan roles: responder acceso denegado.
	DecisionDenied
)

// Decide evalúa el acceso en orden estricto: sin usuario → login;
// roles requeridos no satisfechos → denegado; si no → permitir.
// Función pura de (usuario, roles requeridos), sin estado propio.
func Decide(user *entity.User, required []entity.Role) Decision {
	if user == nil {
		return DecisionLogin
	}
	if len(required) > 0 && !user.HasPermission(required) {
		return DecisionDenied
	}
	return DecisionAllow
}
