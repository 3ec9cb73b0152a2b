package repository

import (
	"context"

	"github.com/araujocontabil/reforma-tributaria-api/internal/domain/entity"
)

// UserRepository porta de persistência de User (DIP).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	// GetByID e GetByEmail devolvem (nil, nil) quando o usuário não existe.
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
