package entity

import "time"

// Product representa un producto del catálogo del almacén.
// QRCode es el código impreso en la etiqueta física (distinto del ID interno).
// Stock solo se muta a través del caso de uso de movimientos; nace en 0.
type Product struct {
	ID           string
	QRCode       string
	Name         string
	DepartmentID string
	Unit         string
	Stock        int64
	UpdatedAt    time.Time
}
