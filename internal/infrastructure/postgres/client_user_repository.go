package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

var _ repository.ClientUserRepository = (*ClientUserRepo)(nil)

// ClientUserRepo implementación del puerto ClientUserRepository.
type ClientUserRepo struct {
	q Querier
}

// NewClientUserRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClientUserRepository(q Querier) *ClientUserRepo {
	return &ClientUserRepo{q: q}
}

// Create persiste un vínculo cliente-usuario y completa link.ID.
func (r *ClientUserRepo) Create(link *entity.ClientUser) error {
	now := time.Now()
	if link.CreatedAt.IsZero() {
		link.CreatedAt = now
	}
	if link.UpdatedAt.IsZero() {
		link.UpdatedAt = now
	}
	query := `
		INSERT INTO client_users (client_id, user_id, created_at, updated_at, deleted_at, active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		link.ClientID, link.UserID, link.CreatedAt, link.UpdatedAt, link.DeletedAt, link.Active,
	).Scan(&link.ID)
	if err != nil {
		return fmt.Errorf("insert client_user: %w", err)
	}
	return nil
}

// ListByClient lista los vínculos de un cliente (incluye los inactivos).
func (r *ClientUserRepo) ListByClient(clientID int64) ([]*entity.ClientUser, error) {
	query := `
		SELECT id, client_id, user_id, created_at, updated_at, deleted_at, active
		FROM client_users WHERE client_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, clientID)
	if err != nil {
		return nil, fmt.Errorf("list client_users: %w", err)
	}
	defer rows.Close()
	var list []*entity.ClientUser
	for rows.Next() {
		var cu entity.ClientUser
		if err := rows.Scan(&cu.ID, &cu.ClientID, &cu.UserID, &cu.CreatedAt, &cu.UpdatedAt, &cu.DeletedAt, &cu.Active); err != nil {
			return nil, fmt.Errorf("scan client_user: %w", err)
		}
		list = append(list, &cu)
	}
	return list, rows.Err()
}
