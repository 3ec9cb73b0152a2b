package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/araujocontabil/reforma-tributaria-api/internal/domain/tributos"
)

// Situação de GET /api/history/latest.
const (
	LatestStatusOK       = "ok"
	LatestStatusNoResult = "sem_resultado" // nenhuma simulação salva; diferente de resultado "neutro"
)

// SaveSimulationRequest salva uma simulação nomeada (o resultado é recalculado no servidor).
type SaveSimulationRequest struct {
	Name     string                  `json:"name"`
	Profile  tributos.CompanyProfile `json:"profile"`
	Scenario string                  `json:"scenario"`
}

// SnapshotSummary item do histórico sem o conteúdo completo.
type SnapshotSummary struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Scenario      string           `json:"scenario"`
	Savings       decimal.Decimal  `json:"savings"`
	AnnualSavings decimal.Decimal  `json:"annual_savings"`
	Outcome       tributos.Outcome `json:"outcome"`
	CreatedAt     time.Time        `json:"created_at"`
}

// SnapshotDetail simulação salva com perfil e resultado decodificados.
type SnapshotDetail struct {
	SnapshotSummary
	Profile tributos.CompanyProfile   `json:"profile"`
	Result  tributos.ComparisonResult `json:"result"`
}

// HistoryListResponse histórico do mais recente para o mais antigo.
// Notices avisa quando itens corrompidos foram descartados.
type HistoryListResponse struct {
	Items   []SnapshotSummary `json:"items"`
	Notices []string          `json:"notices,omitempty"`
}

// LatestResponse última simulação do usuário, se houver.
type LatestResponse struct {
	Status   string          `json:"status"` // ok | sem_resultado
	Snapshot *SnapshotDetail `json:"snapshot,omitempty"`
}
