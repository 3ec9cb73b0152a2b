package auth_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/araujocontabil/reforma-tributaria-api/internal/application/auth"
	"github.com/araujocontabil/reforma-tributaria-api/internal/application/dto"
	"github.com/araujocontabil/reforma-tributaria-api/internal/domain"
	"github.com/araujocontabil/reforma-tributaria-api/internal/domain/entity"
	"github.com/araujocontabil/reforma-tributaria-api/pkg/jwt"
)

const secret = "segredo-de-teste"

type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func newAuth() (*auth.AuthUseCase, *memUserRepo) {
	repo := &memUserRepo{users: make(map[string]*entity.User)}
	return auth.NewAuthUseCase(repo, auth.JWTConfig{Secret: secret, ExpMinutes: 5, Issuer: "teste"}), repo
}

func TestRegisterUser_HasheiaSenha(t *testing.T) {
	uc, repo := newAuth()
	out, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{Email: " Ana@Escritorio.com.br ", Password: "senha-forte"})
	require.NoError(t, err)

	assert.Equal(t, "ana@escritorio.com.br", out.Email)
	assert.Equal(t, entity.RoleCliente, out.Role, "papel padrão")
	assert.Equal(t, out.Email, out.Name, "nome padrão = email")

	stored, err := repo.GetByID(context.Background(), out.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "senha-forte", stored.PasswordHash)
}

func TestRegisterUser_EmailDuplicado(t *testing.T) {
	uc, _ := newAuth()
	in := dto.RegisterRequest{Email: "ana@escritorio.com.br", Password: "senha-forte"}
	_, err := uc.RegisterUser(context.Background(), in)
	require.NoError(t, err)

	in.Email = "ANA@escritorio.com.br"
	_, err = uc.RegisterUser(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegisterUser_Validacoes(t *testing.T) {
	uc, _ := newAuth()
	cases := []struct {
		name string
		in   dto.RegisterRequest
	}{
		{"email sem arroba", dto.RegisterRequest{Email: "ana", Password: "senha-forte"}},
		{"senha curta", dto.RegisterRequest{Email: "a@b.c", Password: "curta"}},
		{"admin pelo registro público", dto.RegisterRequest{Email: "a@b.c", Password: "senha-forte", Role: entity.RoleAdmin}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.RegisterUser(context.Background(), tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestLogin_GeraTokenComPapel(t *testing.T) {
	uc, _ := newAuth()
	_, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{Email: "c@escritorio.com.br", Password: "senha-forte", Role: entity.RoleContador})
	require.NoError(t, err)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Email: "C@escritorio.com.br", Password: "senha-forte"})
	require.NoError(t, err)

	claims, err := jwt.Parse(secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, claims.UserID)
	assert.Equal(t, entity.RoleContador, claims.Role)
}

func TestLogin_Falhas(t *testing.T) {
	uc, repo := newAuth()
	u, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{Email: "c@escritorio.com.br", Password: "senha-forte"})
	require.NoError(t, err)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "x@escritorio.com.br", Password: "senha-forte"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "c@escritorio.com.br", Password: "errada123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	repo.users[u.ID].Status = entity.UserStatusInactive
	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "c@escritorio.com.br", Password: "senha-forte"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
