package repository

import (
	"context"

	"github.com/araujocontabil/reforma-tributaria-api/internal/domain/entity"
)

// SimulationRepository porta de persistência do histórico de simulações.
// A implementação vive em infrastructure.
type SimulationRepository interface {
	Save(ctx context.Context, s *entity.SimulationSnapshot) error
	// GetByID devolve (nil, nil) quando o snapshot não existe ou pertence a outro usuário.
	GetByID(ctx context.Context, userID, id string) (*entity.SimulationSnapshot, error)
	// ListByUser devolve os snapshots do usuário do mais recente para o mais antigo.
	ListByUser(ctx context.Context, userID string, limit int) ([]*entity.SimulationSnapshot, error)
	Delete(ctx context.Context, userID, id string) error
	// PruneByUser mantém apenas os keep snapshots mais recentes e devolve quantos foram removidos.
	PruneByUser(ctx context.Context, userID string, keep int) (int64, error)
}
