package repository

import "github.com/jhoicas/backoffice-api/internal/domain/entity"

// ClientRepository define el puerto de persistencia para Client.
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id int64) (*entity.Client, error)
	GetByCompanyID(companyID int64) (*entity.Client, error)
	Update(client *entity.Client) error
}
