package usecase

import (
	"context"

	"github.com/jhoicas/crm-panel/internal/application/dto"
)

// UserDirectory operaciones de usuarios contra el backend del CRM;
// lo implementa *crm.Client.
type UserDirectory interface {
	Users(ctx context.Context, token string) ([]dto.PanelUser, error)
	CreateUser(ctx context.Context, token string, in dto.CreateUserRequest) (*dto.PanelUser, error)
	UpdateUser(ctx context.Context, token, id string, in dto.UpdateUserRequest) (*dto.PanelUser, error)
	DeleteUser(ctx context.Context, token, id string) error
}

// UserUseCase administración de usuarios del CRM. Proxy puro: el backend es
// quien valida y persiste; aquí solo se reenvía el bearer de la sesión.
type UserUseCase struct {
	dir UserDirectory
}

// NewUserUseCase construye el caso de uso de usuarios.
func NewUserUseCase(dir UserDirectory) *UserUseCase {
	return &UserUseCase{dir: dir}
}

// List lista los usuarios.
func (uc *UserUseCase) List(ctx context.Context, token string) ([]dto.PanelUser, error) {
	return uc.dir.Users(ctx, token)
}

// Create da de alta un usuario.
func (uc *UserUseCase) Create(ctx context.Context, token string, in dto.CreateUserRequest) (*dto.PanelUser, error) {
	return uc.dir.CreateUser(ctx, token, in)
}

// Update edita un usuario.
func (uc *UserUseCase) Update(ctx context.Context, token, id string, in dto.UpdateUserRequest) (*dto.PanelUser, error) {
	return uc.dir.UpdateUser(ctx, token, id, in)
}

// Delete elimina un usuario.
func (uc *UserUseCase) Delete(ctx context.Context, token, id string) error {
	return uc.dir.DeleteUser(ctx, token, id)
}
