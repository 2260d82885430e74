package dto

// CreateUserRequest body para alta de usuario (solo admin).
type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Fullname string `json:"fullname"`
}

// UpdateUserRequest body para edición de usuario; Password vacío = sin cambio.
type UpdateUserRequest struct {
	Password string `json:"password,omitempty"`
	Role     string `json:"role,omitempty"`
	Fullname string `json:"fullname,omitempty"`
}

// UserResponse representación de un usuario (nunca incluye la contraseña).
type UserResponse struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	Fullname string `json:"fullname"`
}
