package repository

import "github.com/jhoicas/backoffice-api/internal/domain/entity"

// CompanyRepository define el puerto de persistencia para Company.
// El ciclo de vida de Company no está expuesto por la API; lo usan
// cmd/seed y herramientas de operación.
type CompanyRepository interface {
	Create(company *entity.Company) error
	GetByName(name string) (*entity.Company, error)
}
