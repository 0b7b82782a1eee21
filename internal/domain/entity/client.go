package entity

// Client representa un cliente del backoffice. Referencia obligatoriamente
// a un User (responsable) y a una Company; una Company solo puede estar
// tomada por un Client (UNIQUE en clients.company_id).
type Client struct {
	ID        int64
	Name      string
	Email     string
	Phone     string
	UserID    int64
	CompanyID int64
}
