package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementTypeIN  = "IN"  // entrada
	MovementTypeOUT = "OUT" // salida
)

// Movement un asiento del libro de movimientos. Append-only: nunca se
// modifica ni se borra después de creado.
//
// DepartmentID es una foto del departamento del producto al momento del
// registro (también para OUT), no una referencia viva; así el historial
// conserva la procedencia aunque el producto cambie de departamento.
type Movement struct {
	ID           string
	Timestamp    time.Time // cero si la fila persistida traía una fecha ilegible
	Type         string
	QRCode       string
	Quantity     int64 // siempre positivo; el signo lo da Type
	Operator     string
	DepartmentID string
}
