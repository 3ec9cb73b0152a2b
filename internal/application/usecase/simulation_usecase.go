package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/araujocontabil/reforma-tributaria-api/internal/application/dto"
	"github.com/araujocontabil/reforma-tributaria-api/internal/domain"
	"github.com/araujocontabil/reforma-tributaria-api/internal/domain/tributos"
	"github.com/araujocontabil/reforma-tributaria-api/pkg/logger"
)

const maxProducts = 50

var hundred = decimal.NewFromInt(100)

// SimulationUseCase valida a entrada e delega ao motor de cálculo.
// O motor é puro; aqui ficam validação, composição das análises e log.
type SimulationUseCase struct {
	engine *tributos.Engine
	log    *logger.Logger
	now    func() time.Time
}

// NewSimulationUseCase constrói o caso de uso. now pode ser nil (usa time.Now).
func NewSimulationUseCase(engine *tributos.Engine, log *logger.Logger, now func() time.Time) *SimulationUseCase {
	if now == nil {
		now = time.Now
	}
	return &SimulationUseCase{engine: engine, log: log.Component("simulacao"), now: now}
}

// prepareProfile normaliza e valida o perfil e o cenário antes do motor.
func prepareProfile(p tributos.CompanyProfile, scenario string) (tributos.CompanyProfile, tributos.Scenario, error) {
	p = tributos.Normalize(p)
	if err := tributos.ValidateProfile(p); err != nil {
		return p, "", err
	}
	sc, err := tributos.ParseScenario(scenario)
	if err != nil {
		return p, "", err
	}
	return p, sc, nil
}

// Compare comparação sistema atual x pós-reforma.
func (uc *SimulationUseCase) Compare(req dto.SimulationRequest) (*dto.ComparisonResponse, error) {
	p, sc, err := prepareProfile(req.Profile, req.Scenario)
	if err != nil {
		return nil, err
	}
	r := uc.engine.Compare(p, sc)
	uc.log.Debug().
		Str("regime", string(p.Regime)).
		Str("setor", string(p.Sector)).
		Str("cenario", string(sc)).
		Str("resultado", string(r.Outcome)).
		Msg("comparação calculada")
	return &dto.ComparisonResponse{Profile: p, Result: r}, nil
}

// Analyze monta a análise completa. Sensibilidade, regimes e ponto de equilíbrio
// são independentes e rodam em paralelo.
func (uc *SimulationUseCase) Analyze(ctx context.Context, req dto.AnalysisRequest) (*dto.AnalysisResponse, error) {
	p, sc, err := prepareProfile(req.Profile, req.Scenario)
	if err != nil {
		return nil, err
	}
	if req.FixedCosts.IsNegative() {
		return nil, fmt.Errorf("fixed_costs negativo: %w", domain.ErrInvalidInput)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := uc.now()
	r := uc.engine.Compare(p, sc)

	sensChan := make(chan []tributos.SensitivityPoint, 1)
	regChan := make(chan []tributos.RegimeComparisonRow, 1)
	beChan := make(chan tributos.BreakevenResult, 1)

	go func() { sensChan <- uc.engine.SweepAll(p, sc) }()
	go func() { regChan <- uc.engine.CompareRegimes(p, sc) }()
	go func() { beChan <- uc.engine.Breakeven(p, req.FixedCosts, sc) }()

	out := &dto.AnalysisResponse{
		Profile:         p,
		Comparison:      r,
		CashFlow:        tributos.Project(p, r, req.MonthlyGrowth),
		ROI:             tributos.ROIOptions(r.AnnualSavings.Abs()),
		Recommendations: uc.engine.Recommend(p, r),
		Milestones:      tributos.Milestones(start),
		TransitionCurve: uc.engine.TransitionCurve(p, sc),
	}
	out.Sensitivity = <-sensChan
	out.Regimes = <-regChan
	out.Breakeven = <-beChan

	uc.log.Info().
		Str("regime", string(p.Regime)).
		Str("cenario", string(sc)).
		Dur("duracao", uc.now().Sub(start)).
		Msg("análise completa calculada")
	return out, nil
}

// Sensitivity varre uma dimensão ou, com dimensão vazia, as quatro.
func (uc *SimulationUseCase) Sensitivity(req dto.SensitivityRequest) (*dto.SensitivityResponse, error) {
	p, sc, err := prepareProfile(req.Profile, req.Scenario)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Dimension) == "" {
		return &dto.SensitivityResponse{Points: uc.engine.SweepAll(p, sc)}, nil
	}
	dim, err := tributos.ParseDimension(strings.ToLower(strings.TrimSpace(req.Dimension)))
	if err != nil {
		return nil, err
	}
	points, err := uc.engine.Sweep(p, sc, dim)
	if err != nil {
		return nil, err
	}
	return &dto.SensitivityResponse{Points: points}, nil
}

// Regimes compara Simples, Presumido e Real para o mesmo perfil.
func (uc *SimulationUseCase) Regimes(req dto.SimulationRequest) (*dto.RegimesResponse, error) {
	p, sc, err := prepareProfile(req.Profile, req.Scenario)
	if err != nil {
		return nil, err
	}
	return &dto.RegimesResponse{Rows: uc.engine.CompareRegimes(p, sc)}, nil
}

// Breakeven faturamento mínimo para cobrir custos fixos em cada sistema.
func (uc *SimulationUseCase) Breakeven(req dto.BreakevenRequest) (*tributos.BreakevenResult, error) {
	p, sc, err := prepareProfile(req.Profile, req.Scenario)
	if err != nil {
		return nil, err
	}
	if req.FixedCosts.IsNegative() {
		return nil, fmt.Errorf("fixed_costs negativo: %w", domain.ErrInvalidInput)
	}
	out := uc.engine.Breakeven(p, req.FixedCosts, sc)
	return &out, nil
}

// CashFlow projeção de 12 meses a partir da comparação do perfil.
func (uc *SimulationUseCase) CashFlow(req dto.CashFlowRequest) (*dto.CashFlowResponse, error) {
	p, sc, err := prepareProfile(req.Profile, req.Scenario)
	if err != nil {
		return nil, err
	}
	if req.MonthlyGrowth.LessThanOrEqual(hundred.Neg()) {
		return nil, fmt.Errorf("monthly_growth deve ser maior que -100: %w", domain.ErrInvalidInput)
	}
	r := uc.engine.Compare(p, sc)
	return &dto.CashFlowResponse{Periods: tributos.Project(p, r, req.MonthlyGrowth)}, nil
}

// ROI opções de investimento para um delta anual de tributos.
func (uc *SimulationUseCase) ROI(annualDelta decimal.Decimal) *dto.ROIResponse {
	return &dto.ROIResponse{AnnualDelta: annualDelta, Options: tributos.ROIOptions(annualDelta)}
}

// Recommendations comparação + recomendações ordenadas por prioridade.
func (uc *SimulationUseCase) Recommendations(req dto.SimulationRequest) (*dto.RecommendationsResponse, error) {
	p, sc, err := prepareProfile(req.Profile, req.Scenario)
	if err != nil {
		return nil, err
	}
	r := uc.engine.Compare(p, sc)
	return &dto.RecommendationsResponse{Result: r, Recommendations: uc.engine.Recommend(p, r)}, nil
}

// Calendar marcos da transição a partir de hoje.
func (uc *SimulationUseCase) Calendar() *dto.CalendarResponse {
	ref := uc.now()
	return &dto.CalendarResponse{
		ReferenceDate: ref.Format("2006-01-02"),
		Milestones:    tributos.Milestones(ref),
	}
}

// States comparativo de ICMS atual x IBS de referência por UF.
func (uc *SimulationUseCase) States(scenario string) (*dto.StatesResponse, error) {
	sc, err := tributos.ParseScenario(scenario)
	if err != nil {
		return nil, err
	}
	return &dto.StatesResponse{Scenario: sc, States: tributos.CompareStates(sc)}, nil
}

// Countries benchmarks internacionais.
func (uc *SimulationUseCase) Countries() *dto.CountriesResponse {
	return &dto.CountriesResponse{Countries: tributos.CompareCountries()}
}

// ProductImpact margem de cada produto antes e depois da reforma.
func (uc *SimulationUseCase) ProductImpact(req dto.ProductImpactRequest) (*dto.ProductImpactResponse, error) {
	p, sc, err := prepareProfile(req.Profile, req.Scenario)
	if err != nil {
		return nil, err
	}
	if err := validateProducts(req.Products); err != nil {
		return nil, err
	}
	r := uc.engine.Compare(p, sc)
	return &dto.ProductImpactResponse{
		CurrentEffectiveRate: r.CurrentSystem.EffectiveRate,
		ReformEffectiveRate:  r.PostReform.EffectiveRate,
		Products:             uc.engine.ProductImpact(p, sc, req.Products),
	}, nil
}

func validateProducts(products []tributos.Product) error {
	if len(products) == 0 {
		return fmt.Errorf("informe ao menos um produto: %w", domain.ErrInvalidInput)
	}
	if len(products) > maxProducts {
		return fmt.Errorf("no máximo %d produtos: %w", maxProducts, domain.ErrInvalidInput)
	}
	var problems []string
	for i, prod := range products {
		if strings.TrimSpace(prod.Name) == "" {
			problems = append(problems, fmt.Sprintf("produto %d sem nome", i+1))
		}
		if prod.Share.IsNegative() || prod.Share.GreaterThan(hundred) {
			problems = append(problems, fmt.Sprintf("produto %d: share fora de [0, 100]", i+1))
		}
		if prod.CurrentMargin.Abs().GreaterThan(hundred) {
			problems = append(problems, fmt.Sprintf("produto %d: current_margin fora de [-100, 100]", i+1))
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("produtos inválidos: %s: %w", strings.Join(problems, "; "), domain.ErrInvalidInput)
	}
	return nil
}
