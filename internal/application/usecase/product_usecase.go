// Package usecase contiene los casos de uso CRUD del catálogo maestro:
// productos, departamentos, unidades de medida y usuarios.
package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/almacen-qr-api/internal/application/dto"
	"github.com/jhoicas/almacen-qr-api/internal/domain"
	"github.com/jhoicas/almacen-qr-api/internal/domain/entity"
	"github.com/jhoicas/almacen-qr-api/internal/domain/repository"
)

const qrRandomChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// ProductUseCase CRUD de productos. El stock NO se edita por acá: solo nace en
// 0 y lo mutan los movimientos.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create da de alta un producto con stock 0 y un código QR generado:
// <departamento>-<3 caracteres aleatorios>-<últimos 4 dígitos del epoch>.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if len(strings.TrimSpace(in.Name)) < 3 || in.DepartmentID == "" || in.Unit == "" {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	product := &entity.Product{
		ID:           uuid.New().String(),
		QRCode:       generateQRCode(in.DepartmentID, now),
		Name:         strings.TrimSpace(in.Name),
		DepartmentID: in.DepartmentID,
		Unit:         in.Unit,
		Stock:        0,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista el catálogo completo (la hoja es chica; sin paginación, como el
// resto de las tablas maestras).
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	products, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, *toProductResponse(p))
	}
	return out, nil
}

// generateQRCode arma el código impreso en la etiqueta. La semilla del sufijo
// es el epoch en segundos, igual que el resto del sufijo numérico.
func generateQRCode(departmentID string, now time.Time) string {
	b := make([]byte, 3)
	for i := range b {
		b[i] = qrRandomChars[rand.Intn(len(qrRandomChars))]
	}
	epoch := fmt.Sprintf("%d", now.Unix())
	return fmt.Sprintf("%s-%s-%s", departmentID, string(b), epoch[len(epoch)-4:])
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:           p.ID,
		QRCode:       p.QRCode,
		Name:         p.Name,
		DepartmentID: p.DepartmentID,
		Unit:         p.Unit,
		Stock:        p.Stock,
		UpdatedAt:    p.UpdatedAt,
	}
}
