package entity

// Department agrupa productos por área del almacén.
// ID con formato secuencial "D-001" (generado por el caso de uso de catálogo).
type Department struct {
	ID          string
	Name        string
	Description string
}
