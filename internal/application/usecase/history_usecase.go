package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/araujocontabil/reforma-tributaria-api/internal/application/dto"
	"github.com/araujocontabil/reforma-tributaria-api/internal/application/ports"
	"github.com/araujocontabil/reforma-tributaria-api/internal/domain"
	"github.com/araujocontabil/reforma-tributaria-api/internal/domain/entity"
	"github.com/araujocontabil/reforma-tributaria-api/internal/domain/repository"
	"github.com/araujocontabil/reforma-tributaria-api/internal/domain/tributos"
	"github.com/araujocontabil/reforma-tributaria-api/pkg/logger"
)

const (
	defaultHistoryLimit = 20
	maxSnapshotName     = 120
)

// HistoryUseCase histórico de simulações por usuário, limitado às N mais recentes.
type HistoryUseCase struct {
	repo   repository.SimulationRepository
	tx     ports.HistoryTxRunner
	engine *tributos.Engine
	limit  int
	log    *logger.Logger
	now    func() time.Time
}

// NewHistoryUseCase constrói o caso de uso. limit <= 0 usa 20; tx nil grava direto no repo, sem transação.
func NewHistoryUseCase(repo repository.SimulationRepository, tx ports.HistoryTxRunner, engine *tributos.Engine, limit int, log *logger.Logger) *HistoryUseCase {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if tx == nil {
		tx = directRunner{repo: repo}
	}
	return &HistoryUseCase{repo: repo, tx: tx, engine: engine, limit: limit, log: log.Component("historico"), now: time.Now}
}

// directRunner executa sem transação.
type directRunner struct {
	repo repository.SimulationRepository
}

func (d directRunner) RunHistory(_ context.Context, fn func(repo repository.SimulationRepository) error) error {
	return fn(d.repo)
}

// Save recalcula a comparação e grava o snapshot; na mesma transação descarta os excedentes do limite.
func (uc *HistoryUseCase) Save(ctx context.Context, userID string, in dto.SaveSimulationRequest) (*dto.SnapshotDetail, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("name é obrigatório: %w", domain.ErrInvalidInput)
	}
	if len([]rune(name)) > maxSnapshotName {
		return nil, fmt.Errorf("name com mais de %d caracteres: %w", maxSnapshotName, domain.ErrInvalidInput)
	}
	p, sc, err := prepareProfile(in.Profile, in.Scenario)
	if err != nil {
		return nil, err
	}
	r := uc.engine.Compare(p, sc)

	profileJSON, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("historico: serializar perfil: %w", err)
	}
	resultJSON, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("historico: serializar resultado: %w", err)
	}

	snap := &entity.SimulationSnapshot{
		ID:            uuid.New().String(),
		UserID:        userID,
		Name:          name,
		Scenario:      string(sc),
		Profile:       profileJSON,
		Result:        resultJSON,
		Savings:       r.Savings,
		AnnualSavings: r.AnnualSavings,
		Outcome:       string(r.Outcome),
		CreatedAt:     uc.now().UTC(),
	}
	err = uc.tx.RunHistory(ctx, func(repo repository.SimulationRepository) error {
		if err := repo.Save(ctx, snap); err != nil {
			return fmt.Errorf("historico: salvar: %w", err)
		}
		removed, err := repo.PruneByUser(ctx, userID, uc.limit)
		if err != nil {
			return fmt.Errorf("historico: podar: %w", err)
		}
		if removed > 0 {
			uc.log.Debug().Str("user_id", userID).Int64("removidos", removed).Msg("histórico podado")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.SnapshotDetail{SnapshotSummary: toSnapshotSummary(snap), Profile: p, Result: r}, nil
}

// List histórico do usuário. Snapshots ilegíveis são removidos (best-effort) e reportados em Notices.
func (uc *HistoryUseCase) List(ctx context.Context, userID string, page dto.PageRequest) (*dto.HistoryListResponse, error) {
	page.DefaultPage(uc.limit)
	snaps, err := uc.repo.ListByUser(ctx, userID, page.Limit)
	if err != nil {
		return nil, fmt.Errorf("historico: listar: %w", err)
	}
	out := &dto.HistoryListResponse{Items: make([]dto.SnapshotSummary, 0, len(snaps))}
	for _, s := range snaps {
		if _, err := decodeSnapshot(s); err != nil {
			uc.discard(ctx, s, err)
			out.Notices = append(out.Notices, fmt.Sprintf("simulação %q estava corrompida e foi descartada", s.Name))
			continue
		}
		out.Items = append(out.Items, toSnapshotSummary(s))
	}
	return out, nil
}

// Get snapshot completo. ErrNotFound quando não existe ou é de outro usuário.
func (uc *HistoryUseCase) Get(ctx context.Context, userID, id string) (*dto.SnapshotDetail, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrNotFound
	}
	s, err := uc.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("historico: buscar: %w", err)
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	detail, err := decodeSnapshot(s)
	if err != nil {
		uc.discard(ctx, s, err)
		return nil, domain.ErrCorruptedSnapshot
	}
	return detail, nil
}

// Latest última simulação legível; status sem_resultado quando o histórico está vazio.
func (uc *HistoryUseCase) Latest(ctx context.Context, userID string) (*dto.LatestResponse, error) {
	snaps, err := uc.repo.ListByUser(ctx, userID, uc.limit)
	if err != nil {
		return nil, fmt.Errorf("historico: listar: %w", err)
	}
	for _, s := range snaps {
		detail, err := decodeSnapshot(s)
		if err != nil {
			uc.discard(ctx, s, err)
			continue
		}
		return &dto.LatestResponse{Status: dto.LatestStatusOK, Snapshot: detail}, nil
	}
	return &dto.LatestResponse{Status: dto.LatestStatusNoResult}, nil
}

// Delete remove um snapshot do usuário.
func (uc *HistoryUseCase) Delete(ctx context.Context, userID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		return fmt.Errorf("historico: excluir: %w", err)
	}
	return nil
}

func (uc *HistoryUseCase) discard(ctx context.Context, s *entity.SimulationSnapshot, cause error) {
	uc.log.Warn().Err(cause).Str("snapshot_id", s.ID).Str("user_id", s.UserID).Msg("snapshot corrompido descartado")
	if err := uc.repo.Delete(ctx, s.UserID, s.ID); err != nil && !errors.Is(err, domain.ErrNotFound) {
		uc.log.Error().Err(err).Str("snapshot_id", s.ID).Msg("falha ao remover snapshot corrompido")
	}
}

// decodeSnapshot valida o conteúdo gravado: JSON legível e enumerações conhecidas.
func decodeSnapshot(s *entity.SimulationSnapshot) (*dto.SnapshotDetail, error) {
	var p tributos.CompanyProfile
	if err := json.Unmarshal(s.Profile, &p); err != nil {
		return nil, fmt.Errorf("perfil: %w", domain.ErrCorruptedSnapshot)
	}
	if err := tributos.ValidateProfile(p); err != nil {
		return nil, fmt.Errorf("perfil: %v: %w", err, domain.ErrCorruptedSnapshot)
	}
	var r tributos.ComparisonResult
	if err := json.Unmarshal(s.Result, &r); err != nil {
		return nil, fmt.Errorf("resultado: %w", domain.ErrCorruptedSnapshot)
	}
	if _, err := tributos.ParseScenario(string(r.Scenario)); err != nil || r.Scenario == "" {
		return nil, fmt.Errorf("resultado sem cenário válido: %w", domain.ErrCorruptedSnapshot)
	}
	return &dto.SnapshotDetail{SnapshotSummary: toSnapshotSummary(s), Profile: p, Result: r}, nil
}

func toSnapshotSummary(s *entity.SimulationSnapshot) dto.SnapshotSummary {
	return dto.SnapshotSummary{
		ID:            s.ID,
		Name:          s.Name,
		Scenario:      s.Scenario,
		Savings:       s.Savings,
		AnnualSavings: s.AnnualSavings,
		Outcome:       tributos.Outcome(s.Outcome),
		CreatedAt:     s.CreatedAt,
	}
}
