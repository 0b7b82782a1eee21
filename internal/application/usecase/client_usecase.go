package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

// Campos de Client modificables vía PATCH. El id queda fuera a propósito.
var patchableClientFields = map[string]struct{}{
	"name":       {},
	"email":      {},
	"phone":      {},
	"user_id":    {},
	"company_id": {},
}

// ClientUseCase casos de uso para clientes.
type ClientUseCase struct {
	clients repository.ClientRepository
	tx      ClientTxRunner
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(clients repository.ClientRepository, tx ClientTxRunner) *ClientUseCase {
	return &ClientUseCase{clients: clients, tx: tx}
}

// Create da de alta un cliente. El chequeo "una empresa, un cliente" y el
// insert corren en la misma transacción; la UNIQUE de clients.company_id
// resuelve la carrera entre dos altas concurrentes para la misma empresa.
func (uc *ClientUseCase) Create(ctx context.Context, in dto.CreateClientRequest) error {
	if in.Name == nil || in.Email == nil || in.Phone == nil || in.UserID == nil || in.CompanyID == nil {
		return domain.ErrInvalidInput
	}
	return uc.tx.Run(ctx, func(clients repository.ClientRepository) error {
		existing, err := clients.GetByCompanyID(*in.CompanyID)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrCompanyTaken
		}
		client := &entity.Client{
			Name:      *in.Name,
			Email:     *in.Email,
			Phone:     *in.Phone,
			UserID:    *in.UserID,
			CompanyID: *in.CompanyID,
		}
		return clients.Create(client)
	})
}

// Patch aplica a un cliente existente los campos presentes en fields.
// Solo se aceptan los campos de patchableClientFields; cualquier otra clave
// (incluido "id") rechaza la petición completa sin persistir nada.
func (uc *ClientUseCase) Patch(id int64, fields map[string]json.RawMessage) error {
	client, err := uc.clients.GetByID(id)
	if err != nil {
		return err
	}
	if client == nil {
		return domain.ErrClientNotFound
	}
	for key, raw := range fields {
		if _, ok := patchableClientFields[key]; !ok {
			return fmt.Errorf("%w: campo no actualizable %q", domain.ErrInvalidInput, key)
		}
		if err := applyClientField(client, key, raw); err != nil {
			return fmt.Errorf("%w: valor inválido para %q", domain.ErrInvalidInput, key)
		}
	}
	return uc.clients.Update(client)
}

func applyClientField(client *entity.Client, key string, raw json.RawMessage) error {
	switch key {
	case "name":
		return json.Unmarshal(raw, &client.Name)
	case "email":
		return json.Unmarshal(raw, &client.Email)
	case "phone":
		return json.Unmarshal(raw, &client.Phone)
	case "user_id":
		return json.Unmarshal(raw, &client.UserID)
	case "company_id":
		return json.Unmarshal(raw, &client.CompanyID)
	}
	return fmt.Errorf("campo desconocido %q", key)
}
