package tributos

import (
	"fmt"

	"github.com/araujocontabil/reforma-tributaria-api/internal/domain"
	"github.com/shopspring/decimal"
)

// Dimension variável do perfil perturbada na análise de sensibilidade.
type Dimension string

const (
	DimensionRevenue    Dimension = "faturamento"
	DimensionInputCosts Dimension = "custos"
	DimensionPayroll    Dimension = "folha"
	DimensionInvestment Dimension = "investimento"
)

// Dimensions na ordem de execução de SweepAll.
var Dimensions = []Dimension{DimensionRevenue, DimensionInputCosts, DimensionPayroll, DimensionInvestment}

// Perturbations variações percentuais aplicadas a cada dimensão.
var Perturbations = []int{-30, -20, -10, 0, 10, 20, 30}

// SensitivityPoint resultado da comparação com uma dimensão perturbada.
type SensitivityPoint struct {
	Dimension    Dimension       `json:"dimension"`
	Perturbation int             `json:"perturbation"` // %
	CurrentTotal decimal.Decimal `json:"current_total"`
	ReformNetTax decimal.Decimal `json:"reform_net_tax"`
	Savings      decimal.Decimal `json:"savings"`
}

// ParseDimension valida o nome da dimensão.
func ParseDimension(s string) (Dimension, error) {
	for _, d := range Dimensions {
		if string(d) == s {
			return d, nil
		}
	}
	return "", fmt.Errorf("dimensão desconhecida %q: %w", s, domain.ErrInvalidInput)
}

// Sweep recalcula a comparação para cada perturbação da dimensão. O ponto de 0% coincide com Compare.
func (e *Engine) Sweep(p CompanyProfile, s Scenario, dim Dimension) ([]SensitivityPoint, error) {
	if _, err := ParseDimension(string(dim)); err != nil {
		return nil, err
	}
	points := make([]SensitivityPoint, 0, len(Perturbations))
	for _, pct := range Perturbations {
		factor := one.Add(decimal.NewFromInt(int64(pct)).Div(hundred))
		r := e.Compare(perturb(p, dim, factor), s)
		points = append(points, SensitivityPoint{
			Dimension:    dim,
			Perturbation: pct,
			CurrentTotal: r.CurrentSystem.Total,
			ReformNetTax: r.PostReform.NetTax,
			Savings:      r.Savings,
		})
	}
	return points, nil
}

// SweepAll executa as quatro dimensões na ordem fixa (28 pontos).
func (e *Engine) SweepAll(p CompanyProfile, s Scenario) []SensitivityPoint {
	out := make([]SensitivityPoint, 0, len(Dimensions)*len(Perturbations))
	for _, dim := range Dimensions {
		points, _ := e.Sweep(p, s, dim)
		out = append(out, points...)
	}
	return out
}

// perturb devolve uma cópia do perfil com a dimensão multiplicada pelo fator.
// Dimensões percentuais ficam limitadas a [0, 100].
func perturb(p CompanyProfile, dim Dimension, factor decimal.Decimal) CompanyProfile {
	switch dim {
	case DimensionRevenue:
		p.MonthlyRevenue = p.MonthlyRevenue.Mul(factor)
	case DimensionInputCosts:
		p.InputCostRatio = ClampRatio(p.InputCostRatio.Mul(factor))
	case DimensionPayroll:
		p.Payroll = p.Payroll.Mul(factor)
	case DimensionInvestment:
		p.InvestmentRatio = ClampRatio(p.InvestmentRatio.Mul(factor))
	}
	return p
}

// ClampRatio limita um percentual ao intervalo [0, 100].
func ClampRatio(v decimal.Decimal) decimal.Decimal {
	if v.IsNegative() {
		return zero
	}
	if v.GreaterThan(hundred) {
		return hundred
	}
	return v
}
