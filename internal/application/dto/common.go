package dto

// ErrorResponse cuerpo de error HTTP. Details lleva el detalle estructurado de
// los errores de negocio (departamentos en conflicto, stock restante) para que
// el frontend arme un mensaje preciso.
type ErrorResponse struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// MessageResponse respuesta simple de confirmación.
type MessageResponse struct {
	Message string `json:"message"`
}
