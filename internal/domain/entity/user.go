package entity

// Roles válidos para User. El backoffice solo distingue administradores
// del resto; el marcador debe coincidir exactamente con la columna role.
const (
	RoleAdmin = "ROLE_ADMIN"
	RoleUser  = "ROLE_USER"
)

// User representa un usuario del backoffice. Puede pertenecer a una Company
// (CompanyID nil = sin empresa). El alta de usuarios ocurre fuera de la API
// (cmd/seed o herramientas de operación).
type User struct {
	ID        int64
	Username  string
	Role      string // ver constantes Role*
	CompanyID *int64 // nil = sin empresa asignada
}
