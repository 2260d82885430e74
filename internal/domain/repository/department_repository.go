package repository

import (
	"context"

	"github.com/jhoicas/almacen-qr-api/internal/domain/entity"
)

// DepartmentRepository puerto de persistencia para departamentos.
type DepartmentRepository interface {
	List(ctx context.Context) ([]*entity.Department, error)
	Create(ctx context.Context, department *entity.Department) error
	// Update reemplaza nombre y descripción; devuelve domain.ErrNotFound si el ID no existe.
	Update(ctx context.Context, department *entity.Department) error
	Delete(ctx context.Context, id string) error
}
