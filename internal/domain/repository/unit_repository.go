package repository

import (
	"context"

	"github.com/jhoicas/almacen-qr-api/internal/domain/entity"
)

// UnitRepository puerto de persistencia para unidades de medida.
type UnitRepository interface {
	List(ctx context.Context) ([]*entity.Unit, error)
	Create(ctx context.Context, unit *entity.Unit) error
	Update(ctx context.Context, unit *entity.Unit) error
	Delete(ctx context.Context, id string) error
}
