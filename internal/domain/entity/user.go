package entity

// Role rol de aplicación. Conjunto cerrado: el backend puede enviar
// variantes (ROLE_ADMIN, agente, supervisor...) pero aquí siempre
// llega normalizado por pkg/token.MapRole.
type Role string

// Roles válidos para User.
const (
	RoleSuperadmin Role = "superadmin"
	RoleAdmin      Role = "admin"
	RoleUser       Role = "user"
)

// Valid reporta si r pertenece al conjunto cerrado de roles.
func (r Role) Valid() bool {
	switch r {
	case RoleSuperadmin, RoleAdmin, RoleUser:
		return true
	}
	return false
}

// User usuario del panel, derivado del token del backend. Efímero:
// se recalcula en cada petición decodificando el token; nunca se muta.
type User struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Role    Role   `json:"role"`
	Avatar  string `json:"avatar,omitempty"`
	Company string `json:"company,omitempty"`
}

// HasPermission decide si el usuario satisface el conjunto de roles requeridos.
// superadmin pasa cualquier chequeo; conjunto vacío = cualquier usuario autenticado.
func (u *User) HasPermission(required []Role) bool {
	if u == nil {
		return false
	}
	if u.Role == RoleSuperadmin {
		return true
	}
	if len(required) == 0 {
		return true
	}
	for _, r := range required {
		if u.Role == r {
			return true
		}
	}
	return false
}
