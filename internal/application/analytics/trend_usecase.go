// Package analytics contiene los casos de uso de lectura para el dashboard:
// la curva histórica de stock y el resumen de KPIs. Todo read-only.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/almacen-qr-api/internal/application/dto"
	"github.com/jhoicas/almacen-qr-api/internal/domain"
	"github.com/jhoicas/almacen-qr-api/internal/domain/entity"
	"github.com/jhoicas/almacen-qr-api/internal/domain/repository"
	"github.com/jhoicas/almacen-qr-api/internal/domain/trend"
	"github.com/jhoicas/almacen-qr-api/pkg/logger"
)

// TrendUseCase arma la curva de nivel de stock sobre un snapshot del libro.
// No muta nada: se puede invocar concurrentemente y repetir sin efectos.
type TrendUseCase struct {
	movementRepo repository.MovementRepository
	productRepo  repository.ProductRepository
	log          *logger.Logger
	now          func() time.Time // inyectable para tests
}

// NewTrendUseCase construye el caso de uso.
func NewTrendUseCase(movementRepo repository.MovementRepository, productRepo repository.ProductRepository, log *logger.Logger) *TrendUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &TrendUseCase{
		movementRepo: movementRepo,
		productRepo:  productRepo,
		log:          log,
		now:          time.Now,
	}
}

// WithClock reemplaza el reloj (tests).
func (uc *TrendUseCase) WithClock(now func() time.Time) *TrendUseCase {
	uc.now = now
	return uc
}

// GetTrend trae libro y catálogo en paralelo y delega el cómputo en trend.Build.
// Las filas con fecha ilegible se descartan dentro de Build; acá solo se dejan
// contadas en el log para que no pasen desapercibidas.
//
// Un scope distinto de ALL exige scopeID: sin él la curva filtraría contra un
// ID vacío y devolvería una serie vacía en vez de un rechazo claro.
func (uc *TrendUseCase) GetTrend(
	ctx context.Context,
	scope trend.Scope,
	scopeID string,
	window trend.Window,
) (*dto.TrendResponse, error) {
	if scope != trend.ScopeAll && scopeID == "" {
		return nil, domain.ErrInvalidInput
	}
	type movementsResult struct {
		movs []*entity.Movement
		err  error
	}
	type productsResult struct {
		prods []*entity.Product
		err   error
	}

	movCh := make(chan movementsResult, 1)
	prodCh := make(chan productsResult, 1)

	go func() {
		movs, err := uc.movementRepo.List(ctx)
		movCh <- movementsResult{movs, err}
	}()
	go func() {
		prods, err := uc.productRepo.List(ctx)
		prodCh <- productsResult{prods, err}
	}()

	movs := <-movCh
	prods := <-prodCh

	if movs.err != nil {
		return nil, fmt.Errorf("trend: libro de movimientos: %w", movs.err)
	}
	if prods.err != nil {
		return nil, fmt.Errorf("trend: catálogo: %w", prods.err)
	}

	points, skipped := trend.Build(movs.movs, prods.prods, scope, scopeID, window, uc.now())
	if skipped > 0 {
		uc.log.Warn().
			Int("descartados", skipped).
			Str("scope", string(scope)).
			Msg("movimientos con fecha ilegible excluidos de la curva")
	}

	out := make([]dto.TrendPointDTO, 0, len(points))
	for _, p := range points {
		out = append(out, dto.TrendPointDTO{
			Label:      p.Label,
			Timestamp:  p.Timestamp,
			StockLevel: p.StockLevel,
		})
	}

	return &dto.TrendResponse{
		Scope:   string(scope),
		ScopeID: scopeID,
		Window:  string(window),
		Points:  out,
	}, nil
}
