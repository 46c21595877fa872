package repository

import (
	"context"

	"github.com/vitta-app/vitta-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para identidades locales.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}
