package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrUserNotFound = errors.New("usuario no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
)

// DepartmentMismatchError entrada IN rechazada porque el producto pertenece a otro
// departamento. Lleva ambos departamentos para que el operario vea exactamente
// dónde está el cruce.
type DepartmentMismatchError struct {
	Expected string // departamento dueño del producto
	Supplied string // departamento desde el que se intentó la entrada
}

func (e *DepartmentMismatchError) Error() string {
	return fmt.Sprintf("departamento equivocado: el producto pertenece a %s, se intentó desde %s", e.Expected, e.Supplied)
}

// InsufficientStockError salida OUT rechazada por stock insuficiente.
// Current permite informar al operario cuánto queda realmente.
type InsufficientStockError struct {
	Current   int64
	Requested int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente: quedan %d, se pidieron %d", e.Current, e.Requested)
}
