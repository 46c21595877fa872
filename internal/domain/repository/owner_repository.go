package repository

import (
	"context"

	"github.com/vitta-app/vitta-api/internal/domain/entity"
)

// OwnerRepository define el puerto sobre la colección owners.
// La existencia de la fila con ese uid ES el rol de owner.
type OwnerRepository interface {
	Exists(ctx context.Context, uid string) (bool, error)
	Grant(ctx context.Context, owner *entity.Owner) error
	Revoke(ctx context.Context, uid string) error
}
