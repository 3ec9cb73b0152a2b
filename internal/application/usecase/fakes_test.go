package usecase_test

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/araujocontabil/reforma-tributaria-api/internal/application/dto"
	"github.com/araujocontabil/reforma-tributaria-api/internal/domain"
	"github.com/araujocontabil/reforma-tributaria-api/internal/domain/entity"
	"github.com/araujocontabil/reforma-tributaria-api/internal/domain/repository"
	"github.com/araujocontabil/reforma-tributaria-api/internal/domain/tributos"
)

// ── Helpers ───────────────────────────────────────────────────────────────────

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func assertDec(t *testing.T, want string, got decimal.Decimal, msg string) {
	t.Helper()
	assert.Truef(t, dec(want).Equal(got), "%s: esperado %s, obtido %s", msg, want, got.String())
}

// comercioPresumido comércio em SP no Lucro Presumido, R$ 100 mil/mês.
// UF em minúsculas e ano omitido para exercitar a normalização.
func comercioPresumido() tributos.CompanyProfile {
	return tributos.CompanyProfile{
		MonthlyRevenue:  dec("100000"),
		Regime:          tributos.RegimePresumido,
		Sector:          tributos.SectorComercio,
		State:           "sp",
		Payroll:         dec("20000"),
		InputCostRatio:  dec("50"),
		InvestmentRatio: dec("10"),
	}
}

func newEngine() *tributos.Engine {
	return tributos.NewEngine(tributos.DefaultParameters())
}

// ── Repositório de simulações em memória ──────────────────────────────────────

type memSimulationRepo struct {
	mu       sync.Mutex
	items    []*entity.SimulationSnapshot // ordem de inserção
	pruneErr error
	deleted  []string
}

func (r *memSimulationRepo) Save(_ context.Context, s *entity.SimulationSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *s
	r.items = append(r.items, &cp)
	return nil
}

func (r *memSimulationRepo) GetByID(_ context.Context, userID, id string) (*entity.SimulationSnapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.items {
		if s.ID == id && s.UserID == userID {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memSimulationRepo) ListByUser(_ context.Context, userID string, limit int) ([]*entity.SimulationSnapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.SimulationSnapshot
	for i := len(r.items) - 1; i >= 0 && len(out) < limit; i-- {
		if r.items[i].UserID == userID {
			cp := *r.items[i]
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memSimulationRepo) Delete(_ context.Context, userID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, s := range r.items {
		if s.ID == id && s.UserID == userID {
			r.items = append(r.items[:i], r.items[i+1:]...)
			r.deleted = append(r.deleted, id)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *memSimulationRepo) PruneByUser(_ context.Context, userID string, keep int) (int64, error) {
	if r.pruneErr != nil {
		return 0, r.pruneErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	seen := 0
	var removed int64
	kept := make([]*entity.SimulationSnapshot, 0, len(r.items))
	for i := len(r.items) - 1; i >= 0; i-- {
		s := r.items[i]
		if s.UserID == userID {
			seen++
			if seen > keep {
				removed++
				continue
			}
		}
		kept = append([]*entity.SimulationSnapshot{s}, kept...)
	}
	r.items = kept
	return removed, nil
}

func (r *memSimulationRepo) count(userID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, s := range r.items {
		if s.UserID == userID {
			n++
		}
	}
	return n
}

// recordingTx conta as transações e delega ao repositório em memória (sem rollback).
type recordingTx struct {
	repo  repository.SimulationRepository
	calls int
}

func (r *recordingTx) RunHistory(_ context.Context, fn func(repo repository.SimulationRepository) error) error {
	r.calls++
	return fn(r.repo)
}

// ── Repositório de usuários em memória ────────────────────────────────────────

type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*entity.User)}
}

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
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

// ── LLM, renderizador e storage falsos ────────────────────────────────────────

type fakeLLM struct {
	got     dto.AdvicePrompt
	err     error
	waitCtx bool // bloqueia até o contexto expirar
}

func (f *fakeLLM) GenerateOpinion(ctx context.Context, in dto.AdvicePrompt) (*dto.AdviceOpinion, error) {
	f.got = in
	if f.waitCtx {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if f.err != nil {
		return nil, f.err
	}
	return &dto.AdviceOpinion{Summary: "Cenário favorável.", Risks: []string{"Transição longa"}, NextSteps: []string{"Mapear créditos"}}, nil
}

type fakeRenderer struct {
	format string
	got    *dto.SimulationReport
}

func (f *fakeRenderer) Format() string      { return f.format }
func (f *fakeRenderer) ContentType() string { return "text/plain; charset=utf-8" }
func (f *fakeRenderer) Render(r *dto.SimulationReport) ([]byte, error) {
	f.got = r
	return []byte("relatorio " + r.Title), nil
}

type fakeStorage struct {
	key         string
	body        []byte
	contentType string
	err         error
}

func (f *fakeStorage) Put(_ context.Context, key string, body io.Reader, contentType string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	b, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	f.key, f.body, f.contentType = key, b, contentType
	return "https://arquivos.exemplo/" + key, nil
}

func (f *fakeStorage) Delete(context.Context, string) error { return nil }

var errBoom = errors.New("falha simulada")
