package sheets

import (
	"context"

	"github.com/jhoicas/almacen-qr-api/internal/domain"
	"github.com/jhoicas/almacen-qr-api/internal/domain/entity"
)

// Columnas de la pestaña departamentos.
const (
	colDepartmentID          = "id"
	colDepartmentName        = "nombre"
	colDepartmentDescription = "descripcion"
)

// DepartmentRepository persiste departamentos en la pestaña "departamentos".
type DepartmentRepository struct {
	store RowStore
}

// NewDepartmentRepository construye el repositorio.
func NewDepartmentRepository(store RowStore) *DepartmentRepository {
	return &DepartmentRepository{store: store}
}

// List devuelve todos los departamentos.
func (r *DepartmentRepository) List(ctx context.Context) ([]*entity.Department, error) {
	rows, err := r.store.List(ctx, TableDepartments)
	if err != nil {
		return nil, err
	}
	departments := make([]*entity.Department, 0, len(rows))
	for _, row := range rows {
		departments = append(departments, &entity.Department{
			ID:          row.Cells[colDepartmentID],
			Name:        row.Cells[colDepartmentName],
			Description: row.Cells[colDepartmentDescription],
		})
	}
	return departments, nil
}

// Create agrega el departamento al final de la pestaña.
func (r *DepartmentRepository) Create(ctx context.Context, d *entity.Department) error {
	return r.store.Append(ctx, TableDepartments, map[string]string{
		colDepartmentID:          d.ID,
		colDepartmentName:        d.Name,
		colDepartmentDescription: d.Description,
	})
}

// Update reescribe la fila del departamento.
func (r *DepartmentRepository) Update(ctx context.Context, d *entity.Department) error {
	rows, err := r.store.List(ctx, TableDepartments)
	if err != nil {
		return err
	}
	for _, row := range rows {
		if row.Cells[colDepartmentID] == d.ID {
			return r.store.Update(ctx, TableDepartments, row.Index, map[string]string{
				colDepartmentID:          d.ID,
				colDepartmentName:        d.Name,
				colDepartmentDescription: d.Description,
			})
		}
	}
	return domain.ErrNotFound
}

// Delete elimina la fila del departamento.
func (r *DepartmentRepository) Delete(ctx context.Context, id string) error {
	rows, err := r.store.List(ctx, TableDepartments)
	if err != nil {
		return err
	}
	for _, row := range rows {
		if row.Cells[colDepartmentID] == id {
			return r.store.Delete(ctx, TableDepartments, row.Index)
		}
	}
	return domain.ErrNotFound
}
