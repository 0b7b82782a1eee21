package dto

// UserSummary salida de un usuario en el listado (solo id y username).
type UserSummary struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// UserListResponse salida de GET /users.
type UserListResponse struct {
	Users []UserSummary `json:"users"`
}

// UpdateUserRequest entrada de PUT /users/:user_id. Username nil significa
// "no tocar" (semántica parcial aunque el verbo sea PUT).
type UpdateUserRequest struct {
	Username *string `json:"username"`
}
