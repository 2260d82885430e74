package analytics

import (
	"context"
	"fmt"
	"sort"

	"github.com/jhoicas/almacen-qr-api/internal/application/dto"
	"github.com/jhoicas/almacen-qr-api/internal/domain/entity"
	"github.com/jhoicas/almacen-qr-api/internal/domain/repository"
)

const (
	criticalStockThreshold = 10 // por debajo se considera crítico
	criticalListSize       = 5  // filas del widget de reposición urgente
)

// SummaryUseCase genera los KPIs del dashboard ejecutivo a partir del catálogo:
// SKUs totales, unidades físicas, departamentos activos y lista de stock crítico.
type SummaryUseCase struct {
	productRepo repository.ProductRepository
}

// NewSummaryUseCase construye el caso de uso.
func NewSummaryUseCase(productRepo repository.ProductRepository) *SummaryUseCase {
	return &SummaryUseCase{productRepo: productRepo}
}

// GetSummary construye el SummaryDTO.
func (uc *SummaryUseCase) GetSummary(ctx context.Context) (*dto.SummaryDTO, error) {
	products, err := uc.productRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("summary: catálogo: %w", err)
	}

	var totalUnits int64
	depts := make(map[string]struct{})
	var critical []*entity.Product

	for _, p := range products {
		totalUnits += p.Stock
		if p.DepartmentID != "" {
			depts[p.DepartmentID] = struct{}{}
		}
		if p.Stock < criticalStockThreshold {
			critical = append(critical, p)
		}
	}

	// Los más urgentes primero
	sort.Slice(critical, func(i, j int) bool { return critical[i].Stock < critical[j].Stock })
	if len(critical) > criticalListSize {
		critical = critical[:criticalListSize]
	}

	criticalOut := make([]dto.ProductResponse, 0, len(critical))
	for _, p := range critical {
		criticalOut = append(criticalOut, dto.ProductResponse{
			ID:           p.ID,
			QRCode:       p.QRCode,
			Name:         p.Name,
			DepartmentID: p.DepartmentID,
			Unit:         p.Unit,
			Stock:        p.Stock,
			UpdatedAt:    p.UpdatedAt,
		})
	}

	return &dto.SummaryDTO{
		TotalProducts:     len(products),
		TotalUnits:        totalUnits,
		ActiveDepartments: len(depts),
		CriticalStock:     criticalOut,
	}, nil
}
