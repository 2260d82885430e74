package sheets

import (
	"context"

	"github.com/jhoicas/almacen-qr-api/internal/domain"
	"github.com/jhoicas/almacen-qr-api/internal/domain/entity"
)

// Columnas de la pestaña unidades.
const (
	colUnitID   = "id"
	colUnitName = "nombre"
)

// UnitRepository persiste unidades de medida en la pestaña "unidades".
type UnitRepository struct {
	store RowStore
}

// NewUnitRepository construye el repositorio.
func NewUnitRepository(store RowStore) *UnitRepository {
	return &UnitRepository{store: store}
}

// List devuelve todas las unidades.
func (r *UnitRepository) List(ctx context.Context) ([]*entity.Unit, error) {
	rows, err := r.store.List(ctx, TableUnits)
	if err != nil {
		return nil, err
	}
	units := make([]*entity.Unit, 0, len(rows))
	for _, row := range rows {
		units = append(units, &entity.Unit{
			ID:   row.Cells[colUnitID],
			Name: row.Cells[colUnitName],
		})
	}
	return units, nil
}

// Create agrega la unidad al final de la pestaña.
func (r *UnitRepository) Create(ctx context.Context, u *entity.Unit) error {
	return r.store.Append(ctx, TableUnits, map[string]string{
		colUnitID:   u.ID,
		colUnitName: u.Name,
	})
}

// Update reescribe la fila de la unidad.
func (r *UnitRepository) Update(ctx context.Context, u *entity.Unit) error {
	rows, err := r.store.List(ctx, TableUnits)
	if err != nil {
		return err
	}
	for _, row := range rows {
		if row.Cells[colUnitID] == u.ID {
			return r.store.Update(ctx, TableUnits, row.Index, map[string]string{
				colUnitID:   u.ID,
				colUnitName: u.Name,
			})
		}
	}
	return domain.ErrNotFound
}

// Delete elimina la fila de la unidad.
func (r *UnitRepository) Delete(ctx context.Context, id string) error {
	rows, err := r.store.List(ctx, TableUnits)
	if err != nil {
		return err
	}
	for _, row := range rows {
		if row.Cells[colUnitID] == id {
			return r.store.Delete(ctx, TableUnits, row.Index)
		}
	}
	return domain.ErrNotFound
}
