package usecase

import (
	"context"

	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

// ClientTxRunner ejecuta fn dentro de una transacción con un ClientRepository
// atado a la tx. Lo implementa postgres.TxRunner; la interfaz evita que el
// caso de uso dependa de la infraestructura.
type ClientTxRunner interface {
	Run(ctx context.Context, fn func(clients repository.ClientRepository) error) error
}
