package entity

// Unit unidad de medida del catálogo (pieza, caja, litro...).
// ID con formato secuencial "S-001".
type Unit struct {
	ID   string
	Name string
}
