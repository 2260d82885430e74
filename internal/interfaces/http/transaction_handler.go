package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-qr-api/internal/application/dto"
	"github.com/jhoicas/almacen-qr-api/internal/application/inventory"
	"github.com/jhoicas/almacen-qr-api/internal/domain"
	"github.com/jhoicas/almacen-qr-api/internal/domain/repository"
)

// TransactionHandler maneja el registro de movimientos escaneados y el
// historial del libro (protegido).
type TransactionHandler struct {
	uc           *inventory.UseCase
	movementRepo repository.MovementRepository
}

// NewTransactionHandler construye el handler.
func NewTransactionHandler(uc *inventory.UseCase, movementRepo repository.MovementRepository) *TransactionHandler {
	return &TransactionHandler{uc: uc, movementRepo: movementRepo}
}

// Register godoc
// @Summary      Registrar entrada o salida de stock
// @Tags         transactions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterTransactionRequest  true  "qr_code, type (IN|OUT), quantity, department_id (solo IN)"
// @Success      201   {object}  dto.RegisterTransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/transactions [post]
func (h *TransactionHandler) Register(c *fiber.Ctx) error {
	operator := GetUsername(c)
	if operator == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.RegisterTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	result, err := h.uc.ApplyMovement(c.Context(), inventory.ApplyMovementInput{
		QRCode:       in.QRCode,
		Type:         in.Type,
		Quantity:     in.Quantity,
		DepartmentID: in.DepartmentID,
		Operator:     operator,
	})
	if err != nil {
		var mismatch *domain.DepartmentMismatchError
		var insufficient *domain.InsufficientStockError
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		case errors.As(err, &mismatch):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code:    "DEPARTMENT_MISMATCH",
				Message: "el producto pertenece a otro departamento",
				Details: dto.DepartmentMismatchDetails{
					ExpectedDepartment: mismatch.Expected,
					SuppliedDepartment: mismatch.Supplied,
				},
			})
		case errors.As(err, &insufficient):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Code:    "INSUFFICIENT_STOCK",
				Message: "stock insuficiente",
				Details: dto.InsufficientStockDetails{
					CurrentStock: insufficient.Current,
					Requested:    insufficient.Requested,
				},
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(dto.RegisterTransactionResponse{
		Message:     "movimiento registrado: " + result.ProductName,
		NewQuantity: result.NewQuantity,
	})
}

// List godoc
// @Summary      Historial de movimientos
// @Description  Devuelve el libro completo, del más reciente al más antiguo.
// @Tags         transactions
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.TransactionResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/transactions [get]
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	movements, err := h.movementRepo.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	// la hoja guarda en orden de llegada; el historial se muestra al revés
	out := make([]dto.TransactionResponse, 0, len(movements))
	for i := len(movements) - 1; i >= 0; i-- {
		m := movements[i]
		out = append(out, dto.TransactionResponse{
			ID:           m.ID,
			Date:         m.Timestamp,
			Type:         m.Type,
			QRCode:       m.QRCode,
			Quantity:     m.Quantity,
			Operator:     m.Operator,
			DepartmentID: m.DepartmentID,
		})
	}
	return c.JSON(out)
}
