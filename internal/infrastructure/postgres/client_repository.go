package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementación del puerto ClientRepository (usable con pool o tx).
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

// Create persiste un nuevo cliente y completa client.ID.
func (r *ClientRepo) Create(client *entity.Client) error {
	query := `
		INSERT INTO clients (name, email, phone, user_id, company_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		client.Name, client.Email, client.Phone, client.UserID, client.CompanyID,
	).Scan(&client.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return uniqueClientError(err)
		}
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID. Devuelve (nil, nil) si no existe.
func (r *ClientRepo) GetByID(id int64) (*entity.Client, error) {
	query := `
		SELECT id, name, email, phone, user_id, company_id
		FROM clients WHERE id = $1`
	return r.scanOne(query, id)
}

// GetByCompanyID obtiene el cliente que tiene tomada la empresa, si existe.
func (r *ClientRepo) GetByCompanyID(companyID int64) (*entity.Client, error) {
	query := `
		SELECT id, name, email, phone, user_id, company_id
		FROM clients WHERE company_id = $1`
	return r.scanOne(query, companyID)
}

func (r *ClientRepo) scanOne(query string, arg any) (*entity.Client, error) {
	var c entity.Client
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&c.ID, &c.Name, &c.Email, &c.Phone, &c.UserID, &c.CompanyID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return &c, nil
}

// Update actualiza todos los campos mutables del cliente.
func (r *ClientRepo) Update(client *entity.Client) error {
	query := `
		UPDATE clients SET name = $2, email = $3, phone = $4, user_id = $5, company_id = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		client.ID, client.Name, client.Email, client.Phone, client.UserID, client.CompanyID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return uniqueClientError(err)
		}
		return fmt.Errorf("update client: %w", err)
	}
	return nil
}

// uniqueClientError traduce un 23505 de clients a su error de dominio según
// la constraint que disparó. Si el driver no expone el nombre de la
// constraint, no se adivina cuál fue: el error sube envuelto.
func uniqueClientError(err error) error {
	switch constraintName(err) {
	case "clients_company_id_key":
		return domain.ErrCompanyTaken
	case "clients_email_key":
		return domain.ErrEmailTaken
	}
	return fmt.Errorf("unique violation en clients: %w", err)
}
