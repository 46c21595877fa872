package postgres

import (
	"context"
	"fmt"

	"github.com/vitta-app/vitta-api/internal/domain/entity"
	"github.com/vitta-app/vitta-api/internal/domain/repository"
)

var _ repository.OwnerRepository = (*OwnerRepo)(nil)

// OwnerRepo implementación de OwnerRepository (usable con pool o tx).
// La fila con ese uid ES el rol; no hay más estado que conservar.
type OwnerRepo struct {
	q Querier
}

// NewOwnerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOwnerRepository(q Querier) *OwnerRepo {
	return &OwnerRepo{q: q}
}

// Exists verifica si el uid tiene fila en owners.
func (r *OwnerRepo) Exists(ctx context.Context, uid string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM owners WHERE uid = $1)`, uid).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists owner: %w", err)
	}
	return exists, nil
}

// Grant inserta (o refresca) la fila del owner. Idempotente: conceder dos
// veces no es un error.
func (r *OwnerRepo) Grant(ctx context.Context, owner *entity.Owner) error {
	query := `
		INSERT INTO owners (uid, email, granted_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (uid) DO UPDATE SET email = EXCLUDED.email`
	_, err := r.q.Exec(ctx, query, owner.UID, owner.Email, owner.GrantedAt)
	if err != nil {
		return fmt.Errorf("grant owner: %w", err)
	}
	return nil
}

// Revoke elimina la fila del owner. Revocar a quien no es owner no es error.
func (r *OwnerRepo) Revoke(ctx context.Context, uid string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM owners WHERE uid = $1`, uid)
	if err != nil {
		return fmt.Errorf("revoke owner: %w", err)
	}
	return nil
}
