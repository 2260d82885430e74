package usecase

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/almacen-qr-api/internal/application/dto"
	"github.com/jhoicas/almacen-qr-api/internal/domain"
	"github.com/jhoicas/almacen-qr-api/internal/domain/entity"
	"github.com/jhoicas/almacen-qr-api/internal/domain/repository"
)

// UserUseCase gestión de cuentas (solo admin). Las contraseñas se guardan
// hasheadas con bcrypt; la hoja puede arrastrar filas viejas en claro que el
// login sigue aceptando, pero toda alta/edición nueva escribe hash.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// List lista los usuarios sin exponer contraseñas.
func (uc *UserUseCase) List(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.UserResponse{Username: u.Username, Role: u.Role, Fullname: u.Fullname})
	}
	return out, nil
}

// Create da de alta un usuario; rechaza usernames duplicados.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" || in.Password == "" || !validRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		Username: username,
		Password: string(hash),
		Role:     in.Role,
		Fullname: in.Fullname,
	}
	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return &dto.UserResponse{Username: user.Username, Role: user.Role, Fullname: user.Fullname}, nil
}

// Update edita rol, nombre completo y opcionalmente la contraseña.
func (uc *UserUseCase) Update(ctx context.Context, username string, in dto.UpdateUserRequest) error {
	user, err := uc.repo.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if in.Role != "" {
		if !validRole(in.Role) {
			return domain.ErrInvalidInput
		}
		user.Role = in.Role
	}
	if in.Fullname != "" {
		user.Fullname = in.Fullname
	}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user.Password = string(hash)
	}
	return uc.repo.Update(ctx, user)
}

// Delete elimina una cuenta.
func (uc *UserUseCase) Delete(ctx context.Context, username string) error {
	if username == "" {
		return domain.ErrInvalidInput
	}
	return uc.repo.Delete(ctx, username)
}

func validRole(role string) bool {
	switch role {
	case entity.RoleAdmin, entity.RoleManager, entity.RolePetugas:
		return true
	}
	return false
}
