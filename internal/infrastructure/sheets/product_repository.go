package sheets

import (
	"context"
	"strconv"
	"time"

	"github.com/jhoicas/almacen-qr-api/internal/domain"
	"github.com/jhoicas/almacen-qr-api/internal/domain/entity"
	"github.com/jhoicas/almacen-qr-api/pkg/logger"
)

// Columnas de la pestaña productos.
const (
	colProductID         = "id"
	colProductQRCode     = "codigo_qr"
	colProductName       = "nombre"
	colProductDepartment = "id_departamento"
	colProductUnit       = "unidad"
	colProductStock      = "stock"
	colProductUpdatedAt  = "updated_at"
)

// ProductRepository persiste productos en la pestaña "productos".
type ProductRepository struct {
	store RowStore
	log   *logger.Logger
}

// NewProductRepository construye el repositorio.
func NewProductRepository(store RowStore, log *logger.Logger) *ProductRepository {
	return &ProductRepository{store: store, log: log}
}

// GetByQRCode devuelve el producto con ese código, o nil si no existe.
func (r *ProductRepository) GetByQRCode(ctx context.Context, qrCode string) (*entity.Product, error) {
	rows, err := r.store.List(ctx, TableProducts)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		if row.Cells[colProductQRCode] == qrCode {
			return r.toEntity(row), nil
		}
	}
	return nil, nil
}

// List devuelve todos los productos.
func (r *ProductRepository) List(ctx context.Context) ([]*entity.Product, error) {
	rows, err := r.store.List(ctx, TableProducts)
	if err != nil {
		return nil, err
	}
	products := make([]*entity.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, r.toEntity(row))
	}
	return products, nil
}

// Create agrega el producto al final de la pestaña.
func (r *ProductRepository) Create(ctx context.Context, p *entity.Product) error {
	return r.store.Append(ctx, TableProducts, map[string]string{
		colProductID:         p.ID,
		colProductQRCode:     p.QRCode,
		colProductName:       p.Name,
		colProductDepartment: p.DepartmentID,
		colProductUnit:       p.Unit,
		colProductStock:      strconv.FormatInt(p.Stock, 10),
		colProductUpdatedAt:  p.UpdatedAt.UTC().Format(time.RFC3339),
	})
}

// UpdateStock reescribe la fila del producto con la nueva cantidad.
func (r *ProductRepository) UpdateStock(ctx context.Context, qrCode string, stock int64, updatedAt time.Time) error {
	rows, err := r.store.List(ctx, TableProducts)
	if err != nil {
		return err
	}
	for _, row := range rows {
		if row.Cells[colProductQRCode] != qrCode {
			continue
		}
		cells := row.Cells
		cells[colProductStock] = strconv.FormatInt(stock, 10)
		cells[colProductUpdatedAt] = updatedAt.UTC().Format(time.RFC3339)
		return r.store.Update(ctx, TableProducts, row.Index, cells)
	}
	return domain.ErrNotFound
}

// toEntity mapea la fila a la entidad. Un stock ilegible se toma como 0 y se
// deja constancia; la hoja la editan humanos.
func (r *ProductRepository) toEntity(row Row) *entity.Product {
	stock, err := strconv.ParseInt(row.Cells[colProductStock], 10, 64)
	if err != nil && row.Cells[colProductStock] != "" {
		r.log.Warn().
			Int("fila", row.Index).
			Str("stock", row.Cells[colProductStock]).
			Msg("stock ilegible en la hoja, se toma 0")
		stock = 0
	}
	updatedAt, _ := time.Parse(time.RFC3339, row.Cells[colProductUpdatedAt])
	return &entity.Product{
		ID:           row.Cells[colProductID],
		QRCode:       row.Cells[colProductQRCode],
		Name:         row.Cells[colProductName],
		DepartmentID: row.Cells[colProductDepartment],
		Unit:         row.Cells[colProductUnit],
		Stock:        stock,
		UpdatedAt:    updatedAt,
	}
}
