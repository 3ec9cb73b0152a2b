package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/araujocontabil/reforma-tributaria-api/internal/application/usecase"
	"github.com/araujocontabil/reforma-tributaria-api/internal/domain"
	"github.com/araujocontabil/reforma-tributaria-api/internal/domain/entity"
)

func TestUserGetByID(t *testing.T) {
	repo := newMemUserRepo()
	now := time.Now().UTC()
	require.NoError(t, repo.Create(context.Background(), &entity.User{
		ID: "u-1", Email: "ana@escritorio.com.br", PasswordHash: "hash", Name: "Ana",
		Role: entity.RoleContador, Status: entity.UserStatusActive, CreatedAt: now, UpdatedAt: now,
	}))
	uc := usecase.NewUserUseCase(repo)

	out, err := uc.GetByID(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Equal(t, "Ana", out.Name)
	assert.Equal(t, entity.RoleContador, out.Role)

	_, err = uc.GetByID(context.Background(), "u-2")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
