package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-qr-api/internal/application/dto"
	"github.com/jhoicas/almacen-qr-api/internal/application/inventory"
	"github.com/jhoicas/almacen-qr-api/internal/domain/entity"
	apphttp "github.com/jhoicas/almacen-qr-api/internal/interfaces/http"
	"github.com/jhoicas/almacen-qr-api/pkg/logger"
)

// memProductRepo y memMovementRepo simulan la planilla en memoria para probar
// el handler con el caso de uso real.

type memProductRepo struct {
	products map[string]*entity.Product
}

func (m *memProductRepo) GetByQRCode(_ context.Context, qrCode string) (*entity.Product, error) {
	p, ok := m.products[qrCode]
	if !ok {
		return nil, nil
	}
	copied := *p
	return &copied, nil
}

func (m *memProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(m.products))
	for _, p := range m.products {
		copied := *p
		out = append(out, &copied)
	}
	return out, nil
}

func (m *memProductRepo) Create(_ context.Context, p *entity.Product) error {
	m.products[p.QRCode] = p
	return nil
}

func (m *memProductRepo) UpdateStock(_ context.Context, qrCode string, stock int64, updatedAt time.Time) error {
	m.products[qrCode].Stock = stock
	m.products[qrCode].UpdatedAt = updatedAt
	return nil
}

type memMovementRepo struct {
	movements []*entity.Movement
}

func (m *memMovementRepo) Create(_ context.Context, mov *entity.Movement) error {
	m.movements = append(m.movements, mov)
	return nil
}

func (m *memMovementRepo) List(_ context.Context) ([]*entity.Movement, error) {
	return m.movements, nil
}

// buildTransactionApp arma la app con las rutas de transacciones y un producto
// precargado con el stock indicado.
func buildTransactionApp(stock int64) (*fiber.App, *memProductRepo, *memMovementRepo) {
	productRepo := &memProductRepo{products: map[string]*entity.Product{
		"D-001-ABC-1234": {
			ID:           "p1",
			QRCode:       "D-001-ABC-1234",
			Name:         "Arroz",
			DepartmentID: "D-001",
			Unit:         "kg",
			Stock:        stock,
		},
	}}
	movementRepo := &memMovementRepo{}
	uc := inventory.NewUseCase(productRepo, movementRepo, logger.Nop())

	app := fiber.New()
	handler := apphttp.NewTransactionHandler(uc, movementRepo)
	group := app.Group("/api/transactions", apphttp.AuthMiddleware(testJWTSecret))
	group.Post("/", handler.Register)
	group.Get("/", handler.List)
	return app, productRepo, movementRepo
}

func postTransaction(t *testing.T, app *fiber.App, body dto.RegisterTransactionRequest) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/transactions/", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", tokenForRole(t, "maria", "petugas"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeError(t *testing.T, resp *http.Response) dto.ErrorResponse {
	t.Helper()
	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestRegister_EntradaAceptada(t *testing.T) {
	app, productRepo, movementRepo := buildTransactionApp(0)

	resp := postTransaction(t, app, dto.RegisterTransactionRequest{
		QRCode:       "D-001-ABC-1234",
		Type:         entity.MovementTypeIN,
		Quantity:     10,
		DepartmentID: "D-001",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var body dto.RegisterTransactionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.EqualValues(t, 10, body.NewQuantity)

	assert.EqualValues(t, 10, productRepo.products["D-001-ABC-1234"].Stock)
	require.Len(t, movementRepo.movements, 1)
	// el operario sale del token, no del body
	assert.Equal(t, "maria", movementRepo.movements[0].Operator)
}

func TestRegister_DepartamentoEquivocado(t *testing.T) {
	app, productRepo, _ := buildTransactionApp(0)

	resp := postTransaction(t, app, dto.RegisterTransactionRequest{
		QRCode:       "D-001-ABC-1234",
		Type:         entity.MovementTypeIN,
		Quantity:     5,
		DepartmentID: "D-002",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeError(t, resp)
	assert.Equal(t, "DEPARTMENT_MISMATCH", body.Code)

	details, err := json.Marshal(body.Details)
	require.NoError(t, err)
	var mismatch dto.DepartmentMismatchDetails
	require.NoError(t, json.Unmarshal(details, &mismatch))
	assert.Equal(t, "D-001", mismatch.ExpectedDepartment)
	assert.Equal(t, "D-002", mismatch.SuppliedDepartment)

	assert.Zero(t, productRepo.products["D-001-ABC-1234"].Stock)
}

func TestRegister_StockInsuficiente(t *testing.T) {
	app, _, _ := buildTransactionApp(3)

	resp := postTransaction(t, app, dto.RegisterTransactionRequest{
		QRCode:   "D-001-ABC-1234",
		Type:     entity.MovementTypeOUT,
		Quantity: 5,
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	body := decodeError(t, resp)
	assert.Equal(t, "INSUFFICIENT_STOCK", body.Code)

	details, err := json.Marshal(body.Details)
	require.NoError(t, err)
	var insufficient dto.InsufficientStockDetails
	require.NoError(t, json.Unmarshal(details, &insufficient))
	assert.EqualValues(t, 3, insufficient.CurrentStock)
	assert.EqualValues(t, 5, insufficient.Requested)
}

func TestRegister_QRInexistente(t *testing.T) {
	app, _, _ := buildTransactionApp(0)

	resp := postTransaction(t, app, dto.RegisterTransactionRequest{
		QRCode:   "no-existe",
		Type:     entity.MovementTypeIN,
		Quantity: 1,
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decodeError(t, resp).Code)
}

func TestRegister_EntradaInvalida(t *testing.T) {
	app, _, _ := buildTransactionApp(0)

	resp := postTransaction(t, app, dto.RegisterTransactionRequest{
		QRCode:   "D-001-ABC-1234",
		Type:     "TRANSFER",
		Quantity: 1,
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decodeError(t, resp).Code)
}

func TestRegister_SinToken(t *testing.T) {
	app, _, _ := buildTransactionApp(0)

	req := httptest.NewRequest(http.MethodPost, "/api/transactions/", bytes.NewReader([]byte("{}")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestList_DelMasRecienteAlMasAntiguo(t *testing.T) {
	app, _, movementRepo := buildTransactionApp(0)
	movementRepo.movements = []*entity.Movement{
		{ID: "m1", Timestamp: time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC), Type: "IN", Quantity: 3},
		{ID: "m2", Timestamp: time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC), Type: "OUT", Quantity: 1},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/transactions/", nil)
	req.Header.Set("Authorization", tokenForRole(t, "maria", "petugas"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body []dto.TransactionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body, 2)
	assert.Equal(t, "m2", body[0].ID)
	assert.Equal(t, "m1", body[1].ID)
}
