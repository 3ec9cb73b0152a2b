package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/araujocontabil/reforma-tributaria-api/internal/domain"
	"github.com/araujocontabil/reforma-tributaria-api/internal/domain/entity"
	"github.com/araujocontabil/reforma-tributaria-api/internal/domain/repository"
)

var _ repository.SimulationRepository = (*SimulationRepo)(nil)

const snapshotColumns = `id, user_id, name, scenario, profile, result, savings, annual_savings, outcome, created_at`

// SimulationRepo histórico de simulações sobre PostgreSQL.
// Perfil e resultado ficam em JSONB; economia em NUMERIC(18,2) para listar sem decodificar.
type SimulationRepo struct {
	db dbtx
}

// NewSimulationRepository constrói o adaptador (pool ou transação).
func NewSimulationRepository(db dbtx) *SimulationRepo {
	return &SimulationRepo{db: db}
}

// Save insere o snapshot.
func (r *SimulationRepo) Save(ctx context.Context, s *entity.SimulationSnapshot) error {
	query := `
		INSERT INTO simulation_snapshots (` + snapshotColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.Exec(ctx, query,
		s.ID, s.UserID, s.Name, s.Scenario, s.Profile, s.Result,
		s.Savings, s.AnnualSavings, s.Outcome, s.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert simulation snapshot: %w", err)
	}
	return nil
}

// GetByID busca um snapshot do usuário; (nil, nil) quando não existe ou é de outro usuário.
func (r *SimulationRepo) GetByID(ctx context.Context, userID, id string) (*entity.SimulationSnapshot, error) {
	query := `SELECT ` + snapshotColumns + ` FROM simulation_snapshots WHERE id = $1 AND user_id = $2`
	s, err := scanSnapshot(r.db.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get simulation snapshot: %w", err)
	}
	return s, nil
}

// ListByUser do mais recente para o mais antigo.
func (r *SimulationRepo) ListByUser(ctx context.Context, userID string, limit int) ([]*entity.SimulationSnapshot, error) {
	query := `
		SELECT ` + snapshotColumns + `
		FROM simulation_snapshots
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2`
	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list simulation snapshots: %w", err)
	}
	defer rows.Close()

	var list []*entity.SimulationSnapshot
	for rows.Next() {
		s, err := scanSnapshot(rows)
		if err != nil {
			return nil, fmt.Errorf("scan simulation snapshot: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// Delete remove o snapshot; ErrNotFound quando nada foi removido.
func (r *SimulationRepo) Delete(ctx context.Context, userID, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM simulation_snapshots WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete simulation snapshot: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// PruneByUser mantém os keep mais recentes do usuário.
func (r *SimulationRepo) PruneByUser(ctx context.Context, userID string, keep int) (int64, error) {
	query := `
		DELETE FROM simulation_snapshots
		WHERE user_id = $1
		  AND id NOT IN (
			SELECT id FROM simulation_snapshots
			WHERE user_id = $1
			ORDER BY created_at DESC, id DESC
			LIMIT $2
		  )`
	tag, err := r.db.Exec(ctx, query, userID, keep)
	if err != nil {
		return 0, fmt.Errorf("prune simulation snapshots: %w", err)
	}
	return tag.RowsAffected(), nil
}

func scanSnapshot(row pgx.Row) (*entity.SimulationSnapshot, error) {
	var s entity.SimulationSnapshot
	err := row.Scan(
		&s.ID, &s.UserID, &s.Name, &s.Scenario, &s.Profile, &s.Result,
		&s.Savings, &s.AnnualSavings, &s.Outcome, &s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
