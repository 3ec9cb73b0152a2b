package usecase

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/araujocontabil/reforma-tributaria-api/internal/application/dto"
	"github.com/araujocontabil/reforma-tributaria-api/internal/application/ports"
	"github.com/araujocontabil/reforma-tributaria-api/internal/domain"
	"github.com/araujocontabil/reforma-tributaria-api/internal/domain/tributos"
	"github.com/araujocontabil/reforma-tributaria-api/pkg/logger"
)

const reportTitle = "Simulação da Reforma Tributária"

// ReportUseCase monta o relatório da simulação e o exporta em PDF ou texto.
// Com storage configurado, o arquivo pode ser arquivado e a URL devolvida.
type ReportUseCase struct {
	engine    *tributos.Engine
	renderers map[string]ports.ReportRenderer
	storage   ports.ReportStorage // nil = arquivamento desabilitado
	log       *logger.Logger
	now       func() time.Time
}

// NewReportUseCase constrói o caso de uso com os renderizadores disponíveis.
func NewReportUseCase(engine *tributos.Engine, storage ports.ReportStorage, log *logger.Logger, renderers ...ports.ReportRenderer) *ReportUseCase {
	byFormat := make(map[string]ports.ReportRenderer, len(renderers))
	for _, r := range renderers {
		byFormat[r.Format()] = r
	}
	return &ReportUseCase{
		engine:    engine,
		renderers: byFormat,
		storage:   storage,
		log:       log.Component("relatorios"),
		now:       time.Now,
	}
}

// Build consolida perfil, comparação, regimes, recomendações e curva de transição.
func (uc *ReportUseCase) Build(req dto.ReportRequest) (*dto.SimulationReport, error) {
	p, sc, err := prepareProfile(req.Profile, req.Scenario)
	if err != nil {
		return nil, err
	}
	r := uc.engine.Compare(p, sc)
	return &dto.SimulationReport{
		Title:           reportTitle,
		CompanyName:     strings.TrimSpace(req.CompanyName),
		GeneratedAt:     uc.now(),
		Profile:         p,
		RegimeName:      tributos.RegimeName(p.Regime),
		SectorName:      tributos.SectorName(p.Sector),
		StateName:       tributos.StateName(p.State),
		Comparison:      r,
		Regimes:         uc.engine.CompareRegimes(p, sc),
		Recommendations: uc.engine.Recommend(p, r),
		TransitionCurve: uc.engine.TransitionCurve(p, sc),
	}, nil
}

// Generate renderiza o relatório no formato pedido e, se req.Archive, grava no storage.
func (uc *ReportUseCase) Generate(ctx context.Context, req dto.ReportRequest, format string) (*dto.RenderedReport, error) {
	renderer, ok := uc.renderers[strings.ToLower(format)]
	if !ok {
		return nil, fmt.Errorf("formato de relatório desconhecido %q: %w", format, domain.ErrInvalidInput)
	}
	if req.Archive && uc.storage == nil {
		return nil, domain.ErrStorageDisabled
	}

	report, err := uc.Build(req)
	if err != nil {
		return nil, err
	}
	content, err := renderer.Render(report)
	if err != nil {
		return nil, fmt.Errorf("relatorio: renderizar %s: %w", renderer.Format(), err)
	}

	out := &dto.RenderedReport{
		Format:      renderer.Format(),
		ContentType: renderer.ContentType(),
		Filename:    fmt.Sprintf("simulacao-reforma-%s.%s", report.GeneratedAt.Format("20060102-150405"), renderer.Format()),
		Content:     content,
	}

	if req.Archive {
		key := fmt.Sprintf("relatorios/%s/%s.%s", report.GeneratedAt.Format("2006/01/02"), uuid.New().String(), renderer.Format())
		url, err := uc.storage.Put(ctx, key, bytes.NewReader(content), renderer.ContentType())
		if err != nil {
			return nil, fmt.Errorf("relatorio: arquivar: %w", err)
		}
		out.URL = url
		uc.log.Info().Str("key", key).Str("formato", out.Format).Int("bytes", len(content)).Msg("relatório arquivado")
	}
	return out, nil
}
