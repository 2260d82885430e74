package sheets

import (
	"context"
	"strconv"
	"time"

	"github.com/jhoicas/almacen-qr-api/internal/domain/entity"
	"github.com/jhoicas/almacen-qr-api/pkg/logger"
)

// Columnas de la pestaña movimientos.
const (
	colMovementID         = "id"
	colMovementDate       = "fecha"
	colMovementType       = "tipo"
	colMovementQRCode     = "codigo_qr_producto"
	colMovementQuantity   = "cantidad"
	colMovementOperator   = "operario"
	colMovementDepartment = "id_departamento"
)

// MovementRepository persiste el libro de movimientos en la pestaña
// "movimientos". Solo se agregan filas, nunca se editan ni borran.
type MovementRepository struct {
	store RowStore
	log   *logger.Logger
}

// NewMovementRepository construye el repositorio.
func NewMovementRepository(store RowStore, log *logger.Logger) *MovementRepository {
	return &MovementRepository{store: store, log: log}
}

// Create agrega el asiento al final del libro.
func (r *MovementRepository) Create(ctx context.Context, m *entity.Movement) error {
	return r.store.Append(ctx, TableMovements, map[string]string{
		colMovementID:         m.ID,
		colMovementDate:       m.Timestamp.UTC().Format(time.RFC3339),
		colMovementType:       m.Type,
		colMovementQRCode:     m.QRCode,
		colMovementQuantity:   strconv.FormatInt(m.Quantity, 10),
		colMovementOperator:   m.Operator,
		colMovementDepartment: m.DepartmentID,
	})
}

// List devuelve todos los movimientos en el orden físico de la hoja. Una celda
// ilegible no tumba la lectura: una fecha rota sale como Timestamp cero y una
// cantidad rota como 0, y ambas quedan en el log para que alguien arregle la fila.
func (r *MovementRepository) List(ctx context.Context) ([]*entity.Movement, error) {
	rows, err := r.store.List(ctx, TableMovements)
	if err != nil {
		return nil, err
	}
	movements := make([]*entity.Movement, 0, len(rows))
	for _, row := range rows {
		ts, err := time.Parse(time.RFC3339, row.Cells[colMovementDate])
		if err != nil {
			r.log.Warn().
				Int("fila", row.Index).
				Str("fecha", row.Cells[colMovementDate]).
				Msg("fecha ilegible en el libro de movimientos")
			ts = time.Time{}
		}
		qty, err := strconv.ParseInt(row.Cells[colMovementQuantity], 10, 64)
		if err != nil {
			r.log.Warn().
				Int("fila", row.Index).
				Str("cantidad", row.Cells[colMovementQuantity]).
				Msg("cantidad ilegible en el libro de movimientos, se toma 0")
			qty = 0
		}
		movements = append(movements, &entity.Movement{
			ID:           row.Cells[colMovementID],
			Timestamp:    ts,
			Type:         row.Cells[colMovementType],
			QRCode:       row.Cells[colMovementQRCode],
			Quantity:     qty,
			Operator:     row.Cells[colMovementOperator],
			DepartmentID: row.Cells[colMovementDepartment],
		})
	}
	return movements, nil
}
