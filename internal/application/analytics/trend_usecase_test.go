package analytics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-qr-api/internal/application/analytics"
	"github.com/jhoicas/almacen-qr-api/internal/domain"
	"github.com/jhoicas/almacen-qr-api/internal/domain/entity"
	"github.com/jhoicas/almacen-qr-api/internal/domain/trend"
	"github.com/jhoicas/almacen-qr-api/pkg/logger"
)

type stubMovementRepo struct {
	movements []*entity.Movement
	err       error
}

func (r *stubMovementRepo) Create(context.Context, *entity.Movement) error { return nil }
func (r *stubMovementRepo) List(context.Context) ([]*entity.Movement, error) {
	return r.movements, r.err
}

func TestGetTrend_SerieBasica(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	movements := &stubMovementRepo{movements: []*entity.Movement{
		{ID: "1", Timestamp: now.Add(-48 * time.Hour), Type: entity.MovementTypeIN, QRCode: "QR-a", Quantity: 10, DepartmentID: "D-001"},
		{ID: "2", Timestamp: now.Add(-24 * time.Hour), Type: entity.MovementTypeOUT, QRCode: "QR-a", Quantity: 4, DepartmentID: "D-001"},
	}}
	products := &stubProductRepo{products: []*entity.Product{prod("a", "D-001", 6)}}

	uc := analytics.NewTrendUseCase(movements, products, logger.Nop()).
		WithClock(func() time.Time { return now })

	out, err := uc.GetTrend(context.Background(), trend.ScopeAll, "", trend.Window7d)
	require.NoError(t, err)

	assert.Equal(t, "ALL", out.Scope)
	assert.Equal(t, "7d", out.Window)
	require.Len(t, out.Points, 2)
	assert.Equal(t, int64(6), out.Points[1].StockLevel)
}

// Un scope acotado sin ID se rechaza: filtrar contra un ID vacío devolvería
// una serie vacía con 200 en vez de un error de validación.
func TestGetTrend_ScopeAcotadoSinID(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	movements := &stubMovementRepo{movements: []*entity.Movement{
		{ID: "1", Timestamp: now.Add(-1 * time.Hour), Type: entity.MovementTypeIN, QRCode: "QR-a", Quantity: 10, DepartmentID: "D-001"},
	}}
	uc := analytics.NewTrendUseCase(movements, &stubProductRepo{}, logger.Nop()).
		WithClock(func() time.Time { return now })

	_, err := uc.GetTrend(context.Background(), trend.ScopeDepartment, "", trend.Window7d)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.GetTrend(context.Background(), trend.ScopeProduct, "", trend.Window7d)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// ALL sigue aceptando scope_id vacío
	out, err := uc.GetTrend(context.Background(), trend.ScopeAll, "", trend.Window7d)
	require.NoError(t, err)
	require.Len(t, out.Points, 1)
}

func TestGetTrend_ErrorDelLibro(t *testing.T) {
	uc := analytics.NewTrendUseCase(
		&stubMovementRepo{err: errors.New("cuota excedida")},
		&stubProductRepo{},
		logger.Nop(),
	)
	_, err := uc.GetTrend(context.Background(), trend.ScopeAll, "", trend.Window7d)
	assert.Error(t, err)
}

// Las filas ilegibles no rompen la respuesta: la serie sale igual.
func TestGetTrend_FilasIlegiblesNoAbortan(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	movements := &stubMovementRepo{movements: []*entity.Movement{
		{ID: "rota", Type: entity.MovementTypeIN, QRCode: "QR-a", Quantity: 99, DepartmentID: "D-001"},
		{ID: "ok", Timestamp: now.Add(-1 * time.Hour), Type: entity.MovementTypeIN, QRCode: "QR-a", Quantity: 5, DepartmentID: "D-001"},
	}}
	uc := analytics.NewTrendUseCase(movements, &stubProductRepo{}, logger.Nop()).
		WithClock(func() time.Time { return now })

	out, err := uc.GetTrend(context.Background(), trend.ScopeAll, "", trend.Window24h)
	require.NoError(t, err)
	require.Len(t, out.Points, 1)
	assert.Equal(t, int64(5), out.Points[0].StockLevel)
}
