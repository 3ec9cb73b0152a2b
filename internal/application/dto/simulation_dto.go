package dto

import (
	"github.com/shopspring/decimal"

	"github.com/araujocontabil/reforma-tributaria-api/internal/domain/tributos"
)

// ── Requisições ───────────────────────────────────────────────────────────────

// SimulationRequest perfil da empresa + cenário de alíquota (vazio = base).
type SimulationRequest struct {
	Profile  tributos.CompanyProfile `json:"profile"`
	Scenario string                  `json:"scenario"` // otimista | base | pessimista
}

// SensitivityRequest varredura de uma dimensão; Dimension vazia varre as quatro.
type SensitivityRequest struct {
	Profile   tributos.CompanyProfile `json:"profile"`
	Scenario  string                  `json:"scenario"`
	Dimension string                  `json:"dimension"` // faturamento | custos | folha | investimento
}

// BreakevenRequest ponto de equilíbrio para um custo fixo mensal.
type BreakevenRequest struct {
	Profile    tributos.CompanyProfile `json:"profile"`
	Scenario   string                  `json:"scenario"`
	FixedCosts decimal.Decimal         `json:"fixed_costs"`
}

// CashFlowRequest projeção de 12 meses com crescimento mensal composto (%).
type CashFlowRequest struct {
	Profile       tributos.CompanyProfile `json:"profile"`
	Scenario      string                  `json:"scenario"`
	MonthlyGrowth decimal.Decimal         `json:"monthly_growth"`
}

// ProductImpactRequest impacto da reforma na margem de cada produto.
type ProductImpactRequest struct {
	Profile  tributos.CompanyProfile `json:"profile"`
	Scenario string                  `json:"scenario"`
	Products []tributos.Product      `json:"products"`
}

// AnalysisRequest análise completa; FixedCosts e MonthlyGrowth são opcionais.
type AnalysisRequest struct {
	Profile       tributos.CompanyProfile `json:"profile"`
	Scenario      string                  `json:"scenario"`
	FixedCosts    decimal.Decimal         `json:"fixed_costs"`
	MonthlyGrowth decimal.Decimal         `json:"monthly_growth"`
}

// ── Respostas ─────────────────────────────────────────────────────────────────

// ComparisonResponse perfil normalizado e comparação atual x reforma.
type ComparisonResponse struct {
	Profile tributos.CompanyProfile   `json:"profile"`
	Result  tributos.ComparisonResult `json:"result"`
}

// SensitivityResponse pontos na ordem dimensão -> perturbação.
type SensitivityResponse struct {
	Points []tributos.SensitivityPoint `json:"points"`
}

// RegimesResponse uma linha por regime, exatamente uma recomendada.
type RegimesResponse struct {
	Rows []tributos.RegimeComparisonRow `json:"rows"`
}

// CashFlowResponse doze períodos (Jan..Dez).
type CashFlowResponse struct {
	Periods []tributos.CashFlowPeriod `json:"periods"`
}

// ROIResponse quatro opções de investimento em adequação.
type ROIResponse struct {
	AnnualDelta decimal.Decimal      `json:"annual_delta"`
	Options     []tributos.ROIOption `json:"options"`
}

// RecommendationsResponse recomendações já ordenadas por prioridade.
type RecommendationsResponse struct {
	Result          tributos.ComparisonResult `json:"result"`
	Recommendations []tributos.Recommendation `json:"recommendations"`
}

// ProductImpactResponse impacto por produto + carga efetiva usada no cálculo.
type ProductImpactResponse struct {
	CurrentEffectiveRate decimal.Decimal          `json:"current_effective_rate"`
	ReformEffectiveRate  decimal.Decimal          `json:"reform_effective_rate"`
	Products             []tributos.ProductImpact `json:"products"`
}

// CalendarResponse marcos da transição relativos à data de referência.
type CalendarResponse struct {
	ReferenceDate string                         `json:"reference_date"` // AAAA-MM-DD
	Milestones    []tributos.TransitionMilestone `json:"milestones"`
}

// StatesResponse comparativo de ICMS x IBS por UF.
type StatesResponse struct {
	Scenario tributos.Scenario          `json:"scenario"`
	States   []tributos.StateComparison `json:"states"`
}

// CountriesResponse benchmarks internacionais.
type CountriesResponse struct {
	Countries []tributos.CountryComparison `json:"countries"`
}

// AnalysisResponse tudo o que o painel de análise avançada exibe em uma chamada.
type AnalysisResponse struct {
	Profile         tributos.CompanyProfile        `json:"profile"`
	Comparison      tributos.ComparisonResult      `json:"comparison"`
	Sensitivity     []tributos.SensitivityPoint    `json:"sensitivity"`
	Regimes         []tributos.RegimeComparisonRow `json:"regimes"`
	Breakeven       tributos.BreakevenResult       `json:"breakeven"`
	CashFlow        []tributos.CashFlowPeriod      `json:"cash_flow"`
	ROI             []tributos.ROIOption           `json:"roi"`
	Recommendations []tributos.Recommendation      `json:"recommendations"`
	Milestones      []tributos.TransitionMilestone `json:"milestones"`
	TransitionCurve []tributos.TransitionYear      `json:"transition_curve"`
}
