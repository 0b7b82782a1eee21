package repository

import "github.com/jhoicas/backoffice-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Los Get* devuelven (nil, nil) cuando no hay fila.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id int64) (*entity.User, error)
	List() ([]*entity.User, error)
	ListByUsername(username string) ([]*entity.User, error)
	Update(user *entity.User) error
}
