package dto

// CreateClientRequest entrada de POST /clients. Todos los campos son
// obligatorios; se usan punteros para distinguir "ausente" de "cero".
type CreateClientRequest struct {
	Name      *string `json:"name" validate:"required"`
	Email     *string `json:"email" validate:"required"`
	Phone     *string `json:"phone" validate:"required"`
	UserID    *int64  `json:"user_id" validate:"required"`
	CompanyID *int64  `json:"company_id" validate:"required"`
}
