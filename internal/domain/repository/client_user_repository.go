package repository

import "github.com/jhoicas/backoffice-api/internal/domain/entity"

// ClientUserRepository define el puerto para la tabla de vínculo client_users.
// Ningún handler HTTP la consume; existe para el seed y para herramientas.
type ClientUserRepository interface {
	Create(link *entity.ClientUser) error
	ListByClient(clientID int64) ([]*entity.ClientUser, error)
}
