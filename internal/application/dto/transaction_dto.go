package dto

import "time"

// RegisterTransactionRequest body para POST /api/transactions.
// DepartmentID es el departamento desde el que escanea el operario; solo se
// valida en IN. El operario sale del token, no del body.
type RegisterTransactionRequest struct {
	QRCode       string `json:"qr_code"`
	Type         string `json:"type"` // IN | OUT
	Quantity     int64  `json:"quantity"`
	DepartmentID string `json:"department_id,omitempty"`
}

// RegisterTransactionResponse resultado de un movimiento aceptado.
type RegisterTransactionResponse struct {
	Message     string `json:"message"`
	NewQuantity int64  `json:"new_quantity"`
}

// TransactionResponse un asiento del libro en los listados de historial.
type TransactionResponse struct {
	ID           string    `json:"id"`
	Date         time.Time `json:"date"`
	Type         string    `json:"type"`
	QRCode       string    `json:"qr_code"`
	Quantity     int64     `json:"quantity"`
	Operator     string    `json:"operator"`
	DepartmentID string    `json:"department_id"`
}

// DepartmentMismatchDetails detalle del rechazo por departamento equivocado.
type DepartmentMismatchDetails struct {
	ExpectedDepartment string `json:"expected_department"`
	SuppliedDepartment string `json:"supplied_department"`
}

// InsufficientStockDetails detalle del rechazo por stock insuficiente.
type InsufficientStockDetails struct {
	CurrentStock int64 `json:"current_stock"`
	Requested    int64 `json:"requested"`
}
