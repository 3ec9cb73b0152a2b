package tributos

import "github.com/shopspring/decimal"

// Compare calcula os tributos mensais nos dois sistemas e a economia resultante.
// Função pura de (perfil, cenário); não falha para um perfil validado.
func (e *Engine) Compare(p CompanyProfile, s Scenario) ComparisonResult {
	current := e.currentSystem(p)
	reform := e.postReform(p, s)

	savings := current.Total.Sub(reform.NetTax)
	variation := zero
	if current.Total.IsPositive() {
		variation = reform.NetTax.Sub(current.Total).Div(current.Total).Mul(hundred)
	}

	return ComparisonResult{
		Scenario:      s,
		CurrentSystem: current,
		PostReform:    reform,
		Savings:       savings.Round(2),
		AnnualSavings: savings.Mul(twelve).Round(2),
		VariationPct:  variation.Round(2),
		Outcome:       outcomeOf(savings),
	}
}

func outcomeOf(savings decimal.Decimal) Outcome {
	switch savings.Sign() {
	case 1:
		return OutcomeEconomia
	case -1:
		return OutcomeAumento
	default:
		return OutcomeNeutro
	}
}

// ── Sistema atual ──

func (e *Engine) currentSystem(p CompanyProfile) CurrentSystem {
	rev := p.MonthlyRevenue
	sec := sectors[p.Sector]
	var cs CurrentSystem

	switch p.Regime {
	case RegimeSimples:
		cs.Simples = rev.Mul(sec.Simples).Round(2)
	case RegimePresumido:
		cs.PIS = rev.Mul(pisCumulativo).Round(2)
		cs.COFINS = rev.Mul(cofinsCumulativo).Round(2)
		cs.IRPJ = rev.Mul(sec.PresuncaoIRPJ).Mul(aliquotaIRPJ).Round(2)
		cs.CSLL = rev.Mul(sec.PresuncaoCSLL).Mul(aliquotaCSLL).Round(2)
	case RegimeReal:
		naoCreditado := one.Sub(sec.CreditoPisCofins)
		cs.PIS = rev.Mul(pisNaoCumulativo).Mul(naoCreditado).Round(2)
		cs.COFINS = rev.Mul(cofinsNaoCumulativo).Mul(naoCreditado).Round(2)
		cs.IRPJ = rev.Mul(sec.MargemReal).Mul(aliquotaIRPJ).Round(2)
		cs.CSLL = rev.Mul(sec.MargemReal).Mul(aliquotaCSLL).Round(2)
	}

	if p.Regime != RegimeSimples {
		cs.ICMS = rev.Mul(StateICMS(p.State)).Mul(sec.FatorICMS).Round(2)
		cs.ISS = rev.Mul(sec.ISS).Round(2)
		cs.CPP = p.Payroll.Mul(aliquotaCPP).Round(2)
	}

	cs.Total = cs.PIS.Add(cs.COFINS).Add(cs.ICMS).Add(cs.ISS).
		Add(cs.IRPJ).Add(cs.CSLL).Add(cs.CPP).Add(cs.Simples)
	cs.EffectiveRate = effectiveRate(cs.Total, rev)
	return cs
}

// ── IVA Dual ──

func (e *Engine) postReform(p CompanyProfile, s Scenario) PostReform {
	rev := p.MonthlyRevenue
	applied := appliedRate(s, p.VATCategory, p.SimulationYear)

	gross := rev.Mul(applied).Round(2)
	cbs := gross.Mul(cbsShare).Round(2)
	is := gross.Mul(sectors[p.Sector].Seletivo).Round(2)
	ibs := gross.Sub(cbs).Sub(is)

	inputCredit := rev.Mul(p.InputCostRatio).Div(hundred).Mul(applied).Round(2)
	capitalCredit := rev.Mul(p.InvestmentRatio).Div(hundred).Mul(applied).
		Div(decimal.NewFromInt(int64(e.params.CapitalCreditMonths))).Round(2)
	capitalCredit = decimal.Min(capitalCredit, gross)

	net := gross.Sub(inputCredit).Sub(capitalCredit)
	if net.IsNegative() {
		net = zero
	}

	return PostReform{
		AppliedRate:   applied.Mul(hundred).Round(2),
		CBS:           cbs,
		IBS:           ibs,
		IS:            is,
		GrossTax:      gross,
		InputCredit:   inputCredit,
		CapitalCredit: capitalCredit,
		NetTax:        net,
		EffectiveRate: effectiveRate(net, rev),
	}
}

// effectiveRate total / faturamento × 100; zero quando não há faturamento.
func effectiveRate(total, revenue decimal.Decimal) decimal.Decimal {
	if !revenue.IsPositive() {
		return zero
	}
	return total.Div(revenue).Mul(hundred).Round(2)
}
