package repository

import (
	"context"

	"github.com/jhoicas/almacen-qr-api/internal/domain/entity"
)

// UserRepository puerto de persistencia para cuentas de usuario.
type UserRepository interface {
	List(ctx context.Context) ([]*entity.User, error)
	// GetByUsername devuelve el usuario o nil si no existe.
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, username string) error
}
