package tributos

import "github.com/shopspring/decimal"

// Product linha de produto informada para a simulação de margem.
type Product struct {
	Name          string          `json:"name"`
	CurrentMargin decimal.Decimal `json:"current_margin"` // %
	Share         decimal.Decimal `json:"share"`          // participação no faturamento (%)
}

// ProductImpact margem do produto antes e depois da reforma.
type ProductImpact struct {
	Product         string          `json:"product"`
	Share           decimal.Decimal `json:"share"`
	CurrentMargin   decimal.Decimal `json:"current_margin"`
	ReformMargin    decimal.Decimal `json:"reform_margin"`
	MarginVariation decimal.Decimal `json:"margin_variation"` // p.p.
	Recommendation  string          `json:"recommendation"`
}

var (
	marginStrongGain = decimal.NewFromInt(2)
	marginSlightLoss = decimal.NewFromInt(-2)
)

// ProductImpact repassa a variação da carga efetiva para a margem de cada produto:
// nova margem = margem atual - (carga reforma - carga atual).
func (e *Engine) ProductImpact(p CompanyProfile, s Scenario, products []Product) []ProductImpact {
	r := e.Compare(p, s)
	delta := r.PostReform.EffectiveRate.Sub(r.CurrentSystem.EffectiveRate)

	out := make([]ProductImpact, 0, len(products))
	for _, prod := range products {
		reform := prod.CurrentMargin.Sub(delta)
		variation := reform.Sub(prod.CurrentMargin)
		out = append(out, ProductImpact{
			Product:         prod.Name,
			Share:           prod.Share,
			CurrentMargin:   prod.CurrentMargin.Round(2),
			ReformMargin:    reform.Round(2),
			MarginVariation: variation.Round(2),
			Recommendation:  marginAdvice(variation),
		})
	}
	return out
}

func marginAdvice(variation decimal.Decimal) string {
	switch {
	case variation.GreaterThan(marginStrongGain):
		return "Aumentar investimento - margem melhora significativamente"
	case variation.IsPositive():
		return "Manter estratégia - margem melhora levemente"
	case variation.GreaterThan(marginSlightLoss):
		return "Revisar precificação - margem reduz levemente"
	default:
		return "Reavaliar viabilidade - margem deteriora significativamente"
	}
}

// TransitionYear carga mensal estimada em um ano da transição.
type TransitionYear struct {
	Year         int             `json:"year"`
	Weight       decimal.Decimal `json:"weight"`        // fração do IVA Dual cobrada
	CurrentShare decimal.Decimal `json:"current_share"` // parcela remanescente do sistema atual
	ReformShare  decimal.Decimal `json:"reform_share"`  // parcela do IVA Dual
	Total        decimal.Decimal `json:"total"`
}

// TransitionCurve carga ano a ano de 2025 a 2033: o sistema atual é substituído pelo IVA Dual
// na proporção do peso da transição. O IVA Dual considerado é o valor pleno (peso 1) do cenário.
func (e *Engine) TransitionCurve(p CompanyProfile, s Scenario) []TransitionYear {
	current := e.Compare(p, s).CurrentSystem.Total
	full := p
	full.SimulationYear = fullReformYear
	reform := e.Compare(full, s).PostReform.NetTax

	out := make([]TransitionYear, 0, fullReformYear-firstTransitionYear+2)
	for year := firstTransitionYear - 1; year <= fullReformYear; year++ {
		w := TransitionWeight(year)
		cs := current.Mul(one.Sub(w)).Round(2)
		rs := reform.Mul(w).Round(2)
		out = append(out, TransitionYear{
			Year:         year,
			Weight:       w,
			CurrentShare: cs,
			ReformShare:  rs,
			Total:        cs.Add(rs),
		})
	}
	return out
}
