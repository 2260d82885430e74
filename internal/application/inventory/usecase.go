// Package inventory contiene el caso de uso que aplica movimientos de stock
// escaneados (entradas y salidas por código QR) contra el almacén de filas.
package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/almacen-qr-api/internal/domain"
	"github.com/jhoicas/almacen-qr-api/internal/domain/entity"
	"github.com/jhoicas/almacen-qr-api/internal/domain/repository"
	"github.com/jhoicas/almacen-qr-api/pkg/logger"
)

// ApplyMovementInput entrada para aplicar un movimiento.
// DepartmentID solo se valida en IN (control de "almacén equivocado"); en OUT
// se ignora. Operator es quien escanea, viene del token.
type ApplyMovementInput struct {
	QRCode       string
	Type         string
	Quantity     int64
	DepartmentID string
	Operator     string
}

// ApplyMovementResult resultado de un movimiento aceptado.
type ApplyMovementResult struct {
	NewQuantity int64
	ProductName string
}

// UseCase aplica un movimiento IN/OUT sobre un producto: muta la cantidad en la
// hoja de productos y agrega un asiento inmutable al libro de movimientos.
//
// El almacén subyacente no ofrece transacciones entre filas, así que las dos
// escrituras no son atómicas. La serialización por producto se hace aquí, en
// proceso, con un mutex por código QR: dos escaneos concurrentes del mismo
// producto nunca leen la misma cantidad de partida.
type UseCase struct {
	productRepo  repository.ProductRepository
	movementRepo repository.MovementRepository
	locks        keyedMutex
	log          *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(productRepo repository.ProductRepository, movementRepo repository.MovementRepository, log *logger.Logger) *UseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &UseCase{
		productRepo:  productRepo,
		movementRepo: movementRepo,
		log:          log,
	}
}

// ApplyMovement aplica un movimiento y devuelve la nueva cantidad.
//
//  1. Valida la entrada (tipo, cantidad >= 1, QR y operario no vacíos).
//  2. Resuelve el producto por código QR; relee SIEMPRE la hoja (la hoja es la
//     única fuente de verdad, sin caché).
//  3. IN: si viene departamento y no coincide con el del producto, rechaza con
//     DepartmentMismatchError. OUT: si la cantidad supera el stock, rechaza con
//     InsufficientStockError. Ningún rechazo toca la hoja.
//  4. Persiste la nueva cantidad + updated_at en la fila del producto.
//  5. Agrega el asiento al libro con el departamento del producto (también en
//     OUT, para conservar la procedencia) y fecha/ID recién generados.
//
// Si el paso 5 falla después del 4, la cantidad ya quedó persistida sin asiento:
// se devuelve error y se deja traza para reconciliación. Reintentar a ciegas
// duplica el efecto sobre la cantidad: la operación NO es idempotente.
func (uc *UseCase) ApplyMovement(ctx context.Context, in ApplyMovementInput) (*ApplyMovementResult, error) {
	if in.QRCode == "" || in.Operator == "" || in.Quantity < 1 {
		return nil, domain.ErrInvalidInput
	}
	if in.Type != entity.MovementTypeIN && in.Type != entity.MovementTypeOUT {
		return nil, domain.ErrInvalidInput
	}

	unlock := uc.locks.lock(in.QRCode)
	defer unlock()

	product, err := uc.productRepo.GetByQRCode(ctx, in.QRCode)
	if err != nil {
		return nil, fmt.Errorf("resolver producto %s: %w", in.QRCode, err)
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	var newQty int64
	switch in.Type {
	case entity.MovementTypeIN:
		if in.DepartmentID != "" && in.DepartmentID != product.DepartmentID {
			return nil, &domain.DepartmentMismatchError{
				Expected: product.DepartmentID,
				Supplied: in.DepartmentID,
			}
		}
		newQty = product.Stock + in.Quantity
	case entity.MovementTypeOUT:
		if in.Quantity > product.Stock {
			return nil, &domain.InsufficientStockError{
				Current:   product.Stock,
				Requested: in.Quantity,
			}
		}
		newQty = product.Stock - in.Quantity
	}

	now := time.Now()
	if err := uc.productRepo.UpdateStock(ctx, in.QRCode, newQty, now); err != nil {
		return nil, fmt.Errorf("actualizar stock de %s: %w", in.QRCode, err)
	}

	movement := &entity.Movement{
		ID:           uuid.New().String(),
		Timestamp:    now,
		Type:         in.Type,
		QRCode:       in.QRCode,
		Quantity:     in.Quantity,
		Operator:     in.Operator,
		DepartmentID: product.DepartmentID, // foto del dueño real, también en OUT
	}
	if err := uc.movementRepo.Create(ctx, movement); err != nil {
		// La cantidad ya quedó escrita sin asiento en el libro: ventana de
		// inconsistencia conocida del almacén sin transacciones. Se deja traza
		// para reconciliación y se reporta el error al caller.
		uc.log.Error().
			Err(err).
			Str("qr_code", in.QRCode).
			Str("tipo", in.Type).
			Int64("cantidad", in.Quantity).
			Int64("stock_persistido", newQty).
			Msg("stock actualizado pero el asiento no se pudo registrar")
		return nil, fmt.Errorf("registrar asiento de %s: %w", in.QRCode, err)
	}

	return &ApplyMovementResult{
		NewQuantity: newQty,
		ProductName: product.Name,
	}, nil
}
