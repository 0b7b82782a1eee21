package entity

import "time"

// ClientUser vincula un Client con un User (soft-delete vía DeletedAt/Active).
// Ningún handler HTTP opera sobre esta tabla; solo existe en el esquema y la
// puebla cmd/seed.
type ClientUser struct {
	ID        int64
	ClientID  int64
	UserID    int64
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time // nil = vigente
	Active    bool
}
