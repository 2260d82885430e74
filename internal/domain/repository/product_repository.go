package repository

import (
	"context"
	"time"

	"github.com/jhoicas/almacen-qr-api/internal/domain/entity"
)

// ProductRepository puerto de persistencia para productos.
// El almacén subyacente no es transaccional entre llamadas: cada método es una
// lectura o escritura independiente y la última versión siempre está en la hoja,
// nunca en caché.
type ProductRepository interface {
	// GetByQRCode devuelve el producto con ese código QR, o nil si no existe.
	GetByQRCode(ctx context.Context, qrCode string) (*entity.Product, error)
	List(ctx context.Context) ([]*entity.Product, error)
	Create(ctx context.Context, product *entity.Product) error
	// UpdateStock persiste la nueva cantidad y la marca de actualización
	// sobre la fila del producto identificado por su código QR.
	UpdateStock(ctx context.Context, qrCode string, stock int64, updatedAt time.Time) error
}
