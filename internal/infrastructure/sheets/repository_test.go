package sheets

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-qr-api/internal/domain"
	"github.com/jhoicas/almacen-qr-api/internal/domain/entity"
	"github.com/jhoicas/almacen-qr-api/pkg/logger"
)

// fakeRowStore simula la planilla en memoria. Mantiene el Index 1-based con la
// fila 1 de encabezados, igual que el cliente real.
type fakeRowStore struct {
	tables map[string][]map[string]string
}

func newFakeRowStore() *fakeRowStore {
	return &fakeRowStore{tables: make(map[string][]map[string]string)}
}

func (f *fakeRowStore) List(_ context.Context, table string) ([]Row, error) {
	rows := make([]Row, 0, len(f.tables[table]))
	for i, cells := range f.tables[table] {
		copied := make(map[string]string, len(cells))
		for k, v := range cells {
			copied[k] = v
		}
		rows = append(rows, Row{Index: i + 2, Cells: copied})
	}
	return rows, nil
}

func (f *fakeRowStore) Append(_ context.Context, table string, cells map[string]string) error {
	f.tables[table] = append(f.tables[table], cells)
	return nil
}

func (f *fakeRowStore) Update(_ context.Context, table string, index int, cells map[string]string) error {
	f.tables[table][index-2] = cells
	return nil
}

func (f *fakeRowStore) Delete(_ context.Context, table string, index int) error {
	rows := f.tables[table]
	f.tables[table] = append(rows[:index-2], rows[index-1:]...)
	return nil
}

func TestProductRepository_CicloCompleto(t *testing.T) {
	store := newFakeRowStore()
	repo := NewProductRepository(store, logger.Nop())
	ctx := context.Background()

	updatedAt := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	err := repo.Create(ctx, &entity.Product{
		ID:           "p1",
		QRCode:       "D-001-ABC-1234",
		Name:         "Arroz",
		DepartmentID: "D-001",
		Unit:         "kg",
		Stock:        7,
		UpdatedAt:    updatedAt,
	})
	require.NoError(t, err)

	got, err := repo.GetByQRCode(ctx, "D-001-ABC-1234")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Arroz", got.Name)
	assert.EqualValues(t, 7, got.Stock)
	assert.True(t, got.UpdatedAt.Equal(updatedAt))

	later := updatedAt.Add(time.Hour)
	require.NoError(t, repo.UpdateStock(ctx, "D-001-ABC-1234", 12, later))
	got, err = repo.GetByQRCode(ctx, "D-001-ABC-1234")
	require.NoError(t, err)
	assert.EqualValues(t, 12, got.Stock)
	assert.True(t, got.UpdatedAt.Equal(later))
}

func TestProductRepository_QRInexistente(t *testing.T) {
	repo := NewProductRepository(newFakeRowStore(), logger.Nop())

	got, err := repo.GetByQRCode(context.Background(), "no-existe")
	require.NoError(t, err)
	assert.Nil(t, got)

	err = repo.UpdateStock(context.Background(), "no-existe", 5, time.Now())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductRepository_StockIlegible(t *testing.T) {
	store := newFakeRowStore()
	store.tables[TableProducts] = []map[string]string{
		{colProductQRCode: "QR-1", colProductName: "Roto", colProductStock: "mucho"},
	}
	repo := NewProductRepository(store, logger.Nop())

	got, err := repo.GetByQRCode(context.Background(), "QR-1")
	require.NoError(t, err)
	assert.Zero(t, got.Stock)
}

func TestMovementRepository_IdaYVuelta(t *testing.T) {
	store := newFakeRowStore()
	repo := NewMovementRepository(store, logger.Nop())
	ctx := context.Background()

	ts := time.Date(2026, 3, 15, 9, 30, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, &entity.Movement{
		ID:           "m1",
		Timestamp:    ts,
		Type:         entity.MovementTypeOUT,
		QRCode:       "D-001-ABC-1234",
		Quantity:     4,
		Operator:     "maria",
		DepartmentID: "D-001",
	}))

	movements, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, movements, 1)
	m := movements[0]
	assert.True(t, m.Timestamp.Equal(ts))
	assert.Equal(t, entity.MovementTypeOUT, m.Type)
	assert.EqualValues(t, 4, m.Quantity)
	// la salida también lleva la foto del departamento
	assert.Equal(t, "D-001", m.DepartmentID)
}

func TestMovementRepository_FechaIlegibleNoAborta(t *testing.T) {
	store := newFakeRowStore()
	store.tables[TableMovements] = []map[string]string{
		{colMovementID: "m1", colMovementDate: "ayer a la tarde", colMovementType: "IN", colMovementQuantity: "3"},
		{colMovementID: "m2", colMovementDate: "2026-03-15T09:30:00Z", colMovementType: "IN", colMovementQuantity: "5"},
	}
	repo := NewMovementRepository(store, logger.Nop())

	movements, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, movements, 2)
	assert.True(t, movements[0].Timestamp.IsZero())
	assert.False(t, movements[1].Timestamp.IsZero())
}

func TestMovementRepository_CantidadIlegibleNoAborta(t *testing.T) {
	store := newFakeRowStore()
	store.tables[TableMovements] = []map[string]string{
		{colMovementID: "m1", colMovementDate: "2026-03-15T09:30:00Z", colMovementType: "IN", colMovementQuantity: "tres"},
		{colMovementID: "m2", colMovementDate: "2026-03-15T10:00:00Z", colMovementType: "IN", colMovementQuantity: "5"},
	}
	repo := NewMovementRepository(store, logger.Nop())

	movements, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, movements, 2)
	// la cantidad rota se toma como 0 en vez de tumbar el listado o colarse
	// con un valor arbitrario en el saldo
	assert.Zero(t, movements[0].Quantity)
	assert.EqualValues(t, 5, movements[1].Quantity)
}

func TestDepartmentRepository_UpdateYDelete(t *testing.T) {
	store := newFakeRowStore()
	repo := NewDepartmentRepository(store)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.Department{ID: "D-001", Name: "Cocina"}))
	require.NoError(t, repo.Create(ctx, &entity.Department{ID: "D-002", Name: "Limpieza"}))

	require.NoError(t, repo.Update(ctx, &entity.Department{ID: "D-001", Name: "Cocina central", Description: "planta baja"}))
	departments, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Cocina central", departments[0].Name)
	assert.Equal(t, "planta baja", departments[0].Description)

	require.NoError(t, repo.Delete(ctx, "D-001"))
	departments, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, departments, 1)
	assert.Equal(t, "D-002", departments[0].ID)

	assert.ErrorIs(t, repo.Update(ctx, &entity.Department{ID: "D-099", Name: "X"}), domain.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "D-099"), domain.ErrNotFound)
}

func TestUnitRepository_Ciclo(t *testing.T) {
	store := newFakeRowStore()
	repo := NewUnitRepository(store)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.Unit{ID: "S-001", Name: "pieza"}))
	require.NoError(t, repo.Update(ctx, &entity.Unit{ID: "S-001", Name: "unidad"}))

	units, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, units, 1)
	assert.Equal(t, "unidad", units[0].Name)

	require.NoError(t, repo.Delete(ctx, "S-001"))
	units, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, units)
}

func TestUserRepository_BusquedaPorUsername(t *testing.T) {
	store := newFakeRowStore()
	repo := NewUserRepository(store)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.User{
		Username: "maria",
		Password: "$2a$10$hash",
		Role:     entity.RolePetugas,
		Fullname: "María Gómez",
	}))

	got, err := repo.GetByUsername(ctx, "maria")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "$2a$10$hash", got.Password)
	assert.Equal(t, entity.RolePetugas, got.Role)

	got, err = repo.GetByUsername(ctx, "nadie")
	require.NoError(t, err)
	assert.Nil(t, got)

	assert.ErrorIs(t, repo.Update(ctx, &entity.User{Username: "nadie"}), domain.ErrUserNotFound)
}

func TestColumnLetter(t *testing.T) {
	assert.Equal(t, "A", columnLetter(1))
	assert.Equal(t, "G", columnLetter(7))
	assert.Equal(t, "Z", columnLetter(26))
	assert.Equal(t, "AA", columnLetter(27))
}
