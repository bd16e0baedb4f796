package dto

// PanelUser usuario administrado en la pantalla de usuarios.
// role y status llegan tal cual del backend del CRM.
type PanelUser struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`   // admin, supervisor, agente
	Status string `json:"status"` // activo, inactivo
}

// CreateUserRequest alta de usuario (el backend del CRM valida y persiste).
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=admin supervisor agente"`
}

// UpdateUserRequest edición de usuario.
type UpdateUserRequest struct {
	Name   string `json:"name" validate:"omitempty,min=1,max=200"`
	Email  string `json:"email" validate:"omitempty,email"`
	Role   string `json:"role" validate:"omitempty,oneof=admin supervisor agente"`
	Status string `json:"status" validate:"omitempty,oneof=activo inactivo"`
}
