package dto

import "github.com/jhoicas/crm-panel/internal/domain/entity"

// LoginRequest credenciales del formulario de login.
// Remember decide si la sesión sobrevive al cierre del navegador.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Remember bool   `json:"remember"`
}

// LoginResponse usuario derivado del token recién emitido.
// El token viaja en la cookie de sesión, nunca en el cuerpo.
type LoginResponse struct {
	User entity.User `json:"user"`
}
