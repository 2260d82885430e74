package entity

// Roles de usuario.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RolePetugas = "petugas" // operario de bodega que escanea entradas/salidas
)

// User cuenta de acceso. Password guarda un hash bcrypt; las filas antiguas de
// la hoja pueden traer la contraseña en claro y se siguen aceptando en login.
type User struct {
	Username string
	Password string
	Role     string
	Fullname string
}
