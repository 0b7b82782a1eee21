package entity

// Company representa una empresa registrada. Posee cero o más Users
// (FK company_id en users) y puede tener a lo sumo un Client asociado.
type Company struct {
	ID        int64
	Name      string
	Employees int
}
