package sheets

import (
	"context"

	"github.com/jhoicas/almacen-qr-api/internal/domain"
	"github.com/jhoicas/almacen-qr-api/internal/domain/entity"
)

// Columnas de la pestaña usuarios.
const (
	colUserUsername = "username"
	colUserPassword = "password"
	colUserRole     = "rol"
	colUserFullname = "nombre_completo"
)

// UserRepository persiste cuentas en la pestaña "usuarios".
type UserRepository struct {
	store RowStore
}

// NewUserRepository construye el repositorio.
func NewUserRepository(store RowStore) *UserRepository {
	return &UserRepository{store: store}
}

// List devuelve todas las cuentas.
func (r *UserRepository) List(ctx context.Context) ([]*entity.User, error) {
	rows, err := r.store.List(ctx, TableUsers)
	if err != nil {
		return nil, err
	}
	users := make([]*entity.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, toUser(row))
	}
	return users, nil
}

// GetByUsername devuelve la cuenta o nil si no existe.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	rows, err := r.store.List(ctx, TableUsers)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		if row.Cells[colUserUsername] == username {
			return toUser(row), nil
		}
	}
	return nil, nil
}

// Create agrega la cuenta al final de la pestaña.
func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	return r.store.Append(ctx, TableUsers, userCells(u))
}

// Update reescribe la fila de la cuenta.
func (r *UserRepository) Update(ctx context.Context, u *entity.User) error {
	rows, err := r.store.List(ctx, TableUsers)
	if err != nil {
		return err
	}
	for _, row := range rows {
		if row.Cells[colUserUsername] == u.Username {
			return r.store.Update(ctx, TableUsers, row.Index, userCells(u))
		}
	}
	return domain.ErrUserNotFound
}

// Delete elimina la fila de la cuenta.
func (r *UserRepository) Delete(ctx context.Context, username string) error {
	rows, err := r.store.List(ctx, TableUsers)
	if err != nil {
		return err
	}
	for _, row := range rows {
		if row.Cells[colUserUsername] == username {
			return r.store.Delete(ctx, TableUsers, row.Index)
		}
	}
	return domain.ErrUserNotFound
}

func toUser(row Row) *entity.User {
	return &entity.User{
		Username: row.Cells[colUserUsername],
		Password: row.Cells[colUserPassword],
		Role:     row.Cells[colUserRole],
		Fullname: row.Cells[colUserFullname],
	}
}

func userCells(u *entity.User) map[string]string {
	return map[string]string{
		colUserUsername: u.Username,
		colUserPassword: u.Password,
		colUserRole:     u.Role,
		colUserFullname: u.Fullname,
	}
}
