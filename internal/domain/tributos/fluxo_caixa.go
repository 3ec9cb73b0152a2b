package tributos

import "github.com/shopspring/decimal"

var monthLabels = [12]string{"Jan", "Fev", "Mar", "Abr", "Mai", "Jun", "Jul", "Ago", "Set", "Out", "Nov", "Dez"}

// CashFlowPeriod projeção de um mês.
type CashFlowPeriod struct {
	Month      string          `json:"month"`
	Revenue    decimal.Decimal `json:"revenue"`
	CurrentTax decimal.Decimal `json:"current_tax"`
	ReformTax  decimal.Decimal `json:"reform_tax"`
	CurrentNet decimal.Decimal `json:"current_net"` // receita - tributos atuais
	ReformNet  decimal.Decimal `json:"reform_net"`  // receita - tributos pós-reforma
	Difference decimal.Decimal `json:"difference"`  // líquido reforma - líquido atual
}

// Project projeta 12 meses com crescimento composto mensal. Receita e tributos escalam pelo fator
// (1 + g/100)^i a partir dos valores mensais já calculados; o motor não é reexecutado.
func Project(p CompanyProfile, r ComparisonResult, monthlyGrowthPercent decimal.Decimal) []CashFlowPeriod {
	growth := one.Add(monthlyGrowthPercent.Div(hundred))
	factor := one
	out := make([]CashFlowPeriod, 0, len(monthLabels))

	for i, label := range monthLabels {
		if i > 0 {
			factor = factor.Mul(growth)
		}
		revenue := p.MonthlyRevenue.Mul(factor).Round(2)
		currentTax := r.CurrentSystem.Total.Mul(factor).Round(2)
		reformTax := r.PostReform.NetTax.Mul(factor).Round(2)
		currentNet := revenue.Sub(currentTax)
		reformNet := revenue.Sub(reformTax)

		out = append(out, CashFlowPeriod{
			Month:      label,
			Revenue:    revenue,
			CurrentTax: currentTax,
			ReformTax:  reformTax,
			CurrentNet: currentNet,
			ReformNet:  reformNet,
			Difference: reformNet.Sub(currentNet),
		})
	}
	return out
}
