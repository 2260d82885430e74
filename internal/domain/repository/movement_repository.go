package repository

import (
	"context"

	"github.com/jhoicas/almacen-qr-api/internal/domain/entity"
)

// MovementRepository puerto de persistencia del libro de movimientos.
// Solo alta y lectura: el libro es append-only.
type MovementRepository interface {
	Create(ctx context.Context, movement *entity.Movement) error
	// List devuelve todos los movimientos en el orden físico de la hoja
	// (sin garantía de orden temporal; quien los consuma debe ordenar).
	List(ctx context.Context) ([]*entity.Movement, error)
}
