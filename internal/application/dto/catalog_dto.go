package dto

// DepartmentRequest body de alta/edición de departamento. En edición el ID va
// en la ruta.
type DepartmentRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// DepartmentResponse representación de un departamento.
type DepartmentResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// UnitRequest body de alta/edición de unidad de medida.
type UnitRequest struct {
	Name string `json:"name"`
}

// UnitResponse representación de una unidad de medida.
type UnitResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
