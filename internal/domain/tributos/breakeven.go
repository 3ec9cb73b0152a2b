package tributos

import "github.com/shopspring/decimal"

// BreakevenResult faturamento mínimo mensal para cobrir custos fixos em cada sistema.
type BreakevenResult struct {
	FixedCosts         decimal.Decimal `json:"fixed_costs"`
	MinRevenueCurrent  decimal.Decimal `json:"min_revenue_current"`
	MinRevenueReform   decimal.Decimal `json:"min_revenue_reform"`
	Difference         decimal.Decimal `json:"difference"`           // reforma - atual
	SavingsAtBreakeven decimal.Decimal `json:"savings_at_breakeven"` // |diferença| × carga do sistema de referência
	ViableCurrent      bool            `json:"viable_current"`
	ViableReform       bool            `json:"viable_reform"`
}

// Breakeven mínimo = custos fixos / (1 - carga efetiva - custos variáveis).
// Custos variáveis = insumos/100 + folha/faturamento. Um denominador ≤ 0 com custos fixos
// positivos marca o sistema como inviável (mínimo 0) em vez de produzir um valor sem limite.
func (e *Engine) Breakeven(p CompanyProfile, fixedCosts decimal.Decimal, s Scenario) BreakevenResult {
	r := e.Compare(p, s)
	cargaAtual := burden(r.CurrentSystem.Total, p.MonthlyRevenue)
	cargaReforma := burden(r.PostReform.NetTax, p.MonthlyRevenue)

	variaveis := p.InputCostRatio.Div(hundred)
	if p.MonthlyRevenue.IsPositive() {
		variaveis = variaveis.Add(p.Payroll.Div(p.MonthlyRevenue))
	}

	minAtual, okAtual := minRevenue(fixedCosts, cargaAtual, variaveis)
	minReforma, okReforma := minRevenue(fixedCosts, cargaReforma, variaveis)

	res := BreakevenResult{
		FixedCosts:         fixedCosts.Round(2),
		MinRevenueCurrent:  minAtual,
		MinRevenueReform:   minReforma,
		Difference:         zero,
		SavingsAtBreakeven: zero,
		ViableCurrent:      okAtual,
		ViableReform:       okReforma,
	}
	if !okAtual || !okReforma {
		return res
	}

	diff := minReforma.Sub(minAtual)
	ref := cargaAtual
	if diff.IsNegative() {
		ref = cargaReforma
	}
	res.Difference = diff
	res.SavingsAtBreakeven = diff.Abs().Mul(ref).Round(2)
	return res
}

// burden carga como fração do faturamento, sem o arredondamento da alíquota efetiva exibida.
func burden(total, revenue decimal.Decimal) decimal.Decimal {
	if !revenue.IsPositive() {
		return zero
	}
	return total.Div(revenue)
}

func minRevenue(fixedCosts, carga, variaveis decimal.Decimal) (decimal.Decimal, bool) {
	if !fixedCosts.IsPositive() {
		return zero, true
	}
	den := one.Sub(carga).Sub(variaveis)
	if !den.IsPositive() {
		return zero, false
	}
	return fixedCosts.Div(den).Round(2), true
}
