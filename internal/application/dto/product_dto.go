package dto

import "time"

// CreateProductRequest body para POST /api/products. El stock nace en 0 y el
// código QR lo genera el servidor.
type CreateProductRequest struct {
	Name         string `json:"name"`
	DepartmentID string `json:"department_id"`
	Unit         string `json:"unit"`
}

// ProductResponse representación de un producto en las respuestas.
type ProductResponse struct {
	ID           string    `json:"id"`
	QRCode       string    `json:"qr_code"`
	Name         string    `json:"name"`
	DepartmentID string    `json:"department_id"`
	Unit         string    `json:"unit"`
	Stock        int64     `json:"stock"`
	UpdatedAt    time.Time `json:"updated_at"`
}
