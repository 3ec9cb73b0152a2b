package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/araujocontabil/reforma-tributaria-api/internal/application/dto"
	"github.com/araujocontabil/reforma-tributaria-api/internal/application/ports"
	"github.com/araujocontabil/reforma-tributaria-api/internal/domain"
	"github.com/araujocontabil/reforma-tributaria-api/internal/domain/tributos"
)

const (
	defaultAdvisorTimeout = 20 * time.Second
	maxQuestionLength     = 500
)

// AdvisorUseCase orquestra o parecer narrativo gerado por IA.
// Os números vêm do motor; o LLM só redige. Cada chamada tem timeout
// para que a latência externa não prenda as goroutines do servidor.
type AdvisorUseCase struct {
	llm     ports.LLMService // nil = recurso indisponível
	engine  *tributos.Engine
	timeout time.Duration
}

// NewAdvisorUseCase constrói o caso de uso. timeout <= 0 usa 20 s.
func NewAdvisorUseCase(llm ports.LLMService, engine *tributos.Engine, timeout time.Duration) *AdvisorUseCase {
	if timeout <= 0 {
		timeout = defaultAdvisorTimeout
	}
	return &AdvisorUseCase{llm: llm, engine: engine, timeout: timeout}
}

// Available indica se há adaptador de LLM configurado.
func (uc *AdvisorUseCase) Available() bool {
	return uc.llm != nil
}

// Advise calcula a comparação e as recomendações e pede o parecer ao LLM.
func (uc *AdvisorUseCase) Advise(ctx context.Context, req dto.AdviceRequest) (*dto.AdviceResponse, error) {
	if uc.llm == nil {
		return nil, domain.ErrAdvisorUnavailable
	}
	question := strings.TrimSpace(req.Question)
	if len([]rune(question)) > maxQuestionLength {
		return nil, fmt.Errorf("question com mais de %d caracteres: %w", maxQuestionLength, domain.ErrInvalidInput)
	}
	p, sc, err := prepareProfile(req.Profile, req.Scenario)
	if err != nil {
		return nil, err
	}
	r := uc.engine.Compare(p, sc)
	recs := uc.engine.Recommend(p, r)

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	opinion, err := uc.llm.GenerateOpinion(ctx, dto.AdvicePrompt{
		Profile:         p,
		RegimeName:      tributos.RegimeName(p.Regime),
		SectorName:      tributos.SectorName(p.Sector),
		StateName:       tributos.StateName(p.State),
		Comparison:      r,
		Recommendations: recs,
		Question:        question,
	})
	if err != nil {
		return nil, fmt.Errorf("parecer IA: %v: %w", err, domain.ErrAdvisorUnavailable)
	}

	return &dto.AdviceResponse{Opinion: *opinion, Comparison: r, Recommendations: recs}, nil
}
