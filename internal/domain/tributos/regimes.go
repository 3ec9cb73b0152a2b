package tributos

import (
	"github.com/shopspring/decimal"

	"github.com/araujocontabil/reforma-tributaria-api/pkg/moeda"
)

// RegimeComparisonRow resultado do perfil recalculado em um regime.
type RegimeComparisonRow struct {
	Regime               Regime          `json:"regime"`
	DisplayName          string          `json:"display_name"`
	CurrentEffectiveRate decimal.Decimal `json:"current_effective_rate"`
	ReformEffectiveRate  decimal.Decimal `json:"reform_effective_rate"`
	AnnualSavings        decimal.Decimal `json:"annual_savings"`
	Advantages           []string        `json:"advantages"`
	Disadvantages        []string        `json:"disadvantages"`
	Recommended          bool            `json:"recommended"`
}

// CompareRegimes uma linha por regime; exatamente uma recomendada: maior economia anual,
// empate resolvido pela ordem da enumeração.
func (e *Engine) CompareRegimes(p CompanyProfile, s Scenario) []RegimeComparisonRow {
	annual := p.AnnualRevenue()
	rows := make([]RegimeComparisonRow, 0, len(Regimes))
	best := 0

	for i, reg := range Regimes {
		variant := p
		variant.Regime = reg
		r := e.Compare(variant, s)

		adv, dis := e.regimeProsCons(reg, annual)
		rows = append(rows, RegimeComparisonRow{
			Regime:               reg,
			DisplayName:          RegimeName(reg),
			CurrentEffectiveRate: r.CurrentSystem.EffectiveRate,
			ReformEffectiveRate:  r.PostReform.EffectiveRate,
			AnnualSavings:        r.AnnualSavings,
			Advantages:           adv,
			Disadvantages:        dis,
		})
		if r.AnnualSavings.GreaterThan(rows[best].AnnualSavings) {
			best = i
		}
	}
	rows[best].Recommended = true
	return rows
}

func (e *Engine) regimeProsCons(reg Regime, annualRevenue decimal.Decimal) (adv, dis []string) {
	switch reg {
	case RegimeSimples:
		adv = []string{"Simplificação administrativa", "Menor custo de compliance", "Unificação de tributos"}
		if annualRevenue.LessThanOrEqual(e.params.SimplesCeiling) {
			adv = append(adv, "Alíquotas progressivas favoráveis")
		}
		dis = []string{"Sem aproveitamento de créditos", "Limite de faturamento " + moeda.Millions(e.params.SimplesCeiling) + "/ano"}
	case RegimePresumido:
		adv = []string{"Simplicidade contábil média", "Alíquotas fixas previsíveis"}
		if annualRevenue.LessThanOrEqual(e.params.PresumidoCeiling) {
			adv = append(adv, "Elegível até "+moeda.Millions(e.params.PresumidoCeiling)+"/ano")
		}
		dis = []string{"Sem aproveitamento total de créditos", "Base presumida pode ser desvantajosa"}
	case RegimeReal:
		adv = []string{"Aproveitamento integral de créditos", "Maior precisão tributária", "Ideal para margens baixas"}
		dis = []string{"Complexidade contábil alta", "Custos de compliance elevados"}
	}
	return adv, dis
}
