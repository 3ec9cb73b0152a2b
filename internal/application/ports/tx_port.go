package ports

import (
	"context"

	"github.com/araujocontabil/reforma-tributaria-api/internal/domain/repository"
)

// HistoryTxRunner executa fn numa transação: gravar e podar o histórico acontecem juntos ou não acontecem.
type HistoryTxRunner interface {
	RunHistory(ctx context.Context, fn func(repo repository.SimulationRepository) error) error
}
