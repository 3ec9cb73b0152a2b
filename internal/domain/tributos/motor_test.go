package tributos_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/araujocontabil/reforma-tributaria-api/internal/domain/tributos"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func assertDec(t *testing.T, want string, got decimal.Decimal, msg string) {
	t.Helper()
	assert.Truef(t, dec(want).Equal(got), "%s: esperado %s, obtido %s", msg, want, got.String())
}

// comercioPresumido comércio em SP no Lucro Presumido, R$ 100 mil/mês, reforma plena.
func comercioPresumido() tributos.CompanyProfile {
	return tributos.CompanyProfile{
		MonthlyRevenue:  dec("100000"),
		Regime:          tributos.RegimePresumido,
		Sector:          tributos.SectorComercio,
		State:           "SP",
		Payroll:         dec("20000"),
		AccountingBasis: tributos.BasisCaixa,
		InputCostRatio:  dec("50"),
		InvestmentRatio: dec("10"),
		VATCategory:     tributos.VATPadrao,
		SimulationYear:  2033,
	}
}

// servicosSimples prestador de serviços no Simples, R$ 50 mil/mês, poucos insumos.
func servicosSimples() tributos.CompanyProfile {
	return tributos.CompanyProfile{
		MonthlyRevenue:  dec("50000"),
		Regime:          tributos.RegimeSimples,
		Sector:          tributos.SectorServicos,
		State:           "MG",
		Payroll:         dec("15000"),
		AccountingBasis: tributos.BasisCompetencia,
		InputCostRatio:  dec("20"),
		InvestmentRatio: dec("0"),
		VATCategory:     tributos.VATPadrao,
		SimulationYear:  2033,
	}
}

func newEngine() *tributos.Engine {
	return tributos.NewEngine(tributos.DefaultParameters())
}

// ──────────────────────────────────────────────────────────────────────────────
// Compare
// ──────────────────────────────────────────────────────────────────────────────

func TestCompare_PresumidoItemizaTributos(t *testing.T) {
	r := newEngine().Compare(comercioPresumido(), tributos.ScenarioBase)
	cs := r.CurrentSystem

	assertDec(t, "650", cs.PIS, "PIS cumulativo 0,65%")
	assertDec(t, "3000", cs.COFINS, "COFINS cumulativa 3%")
	assertDec(t, "1200", cs.IRPJ, "IRPJ sobre presunção de 8%")
	assertDec(t, "1080", cs.CSLL, "CSLL sobre presunção de 12%")
	assertDec(t, "7200", cs.ICMS, "ICMS SP 18% × fator 40%")
	assertDec(t, "0", cs.ISS, "comércio não paga ISS")
	assertDec(t, "4000", cs.CPP, "CPP 20% da folha")
	assertDec(t, "0", cs.Simples, "fora do Simples")
	assertDec(t, "17130", cs.Total, "total atual")
	assertDec(t, "17.13", cs.EffectiveRate, "carga efetiva atual")
}

func TestCompare_PosReformaComCreditos(t *testing.T) {
	r := newEngine().Compare(comercioPresumido(), tributos.ScenarioBase)
	pr := r.PostReform

	assertDec(t, "26.5", pr.AppliedRate, "alíquota do cenário base")
	assertDec(t, "26500", pr.GrossTax, "IVA bruto")
	assertDec(t, "15900", pr.CBS, "CBS = 60% do bruto")
	assertDec(t, "10600", pr.IBS, "IBS = restante")
	assertDec(t, "0", pr.IS, "comércio sem imposto seletivo")
	assertDec(t, "13250", pr.InputCredit, "crédito de insumos")
	assertDec(t, "55.21", pr.CapitalCredit, "1/48 do crédito de ativo")
	assertDec(t, "13194.79", pr.NetTax, "IVA líquido")
	assertDec(t, "13.19", pr.EffectiveRate, "carga efetiva pós-reforma")

	assertDec(t, "3935.21", r.Savings, "economia mensal")
	assertDec(t, "47222.52", r.AnnualSavings, "economia anual")
	assertDec(t, "-22.97", r.VariationPct, "variação percentual")
	assert.Equal(t, tributos.OutcomeEconomia, r.Outcome)
	assert.Equal(t, tributos.ScenarioBase, r.Scenario)
}

func TestCompare_SimplesApenasDAS(t *testing.T) {
	r := newEngine().Compare(servicosSimples(), tributos.ScenarioBase)
	cs := r.CurrentSystem

	assertDec(t, "6750", cs.Simples, "DAS 13,5% de serviços")
	assertDec(t, "6750", cs.Total, "total = DAS")
	for name, v := range map[string]decimal.Decimal{
		"PIS": cs.PIS, "COFINS": cs.COFINS, "ICMS": cs.ICMS, "ISS": cs.ISS,
		"IRPJ": cs.IRPJ, "CSLL": cs.CSLL, "CPP": cs.CPP,
	} {
		assert.Truef(t, v.IsZero(), "%s deve ser zero no Simples", name)
	}

	assertDec(t, "10600", r.PostReform.NetTax, "bruto 13250 menos crédito 2650")
	assertDec(t, "-3850", r.Savings, "aumento mensal")
	assert.Equal(t, tributos.OutcomeAumento, r.Outcome)
}

func TestCompare_ComercioSimplesSPReformaPlena(t *testing.T) {
	p := tributos.CompanyProfile{
		MonthlyRevenue:  dec("100000"),
		Regime:          tributos.RegimeSimples,
		Sector:          tributos.SectorComercio,
		State:           "SP",
		Payroll:         dec("30000"),
		AccountingBasis: tributos.BasisCompetencia,
		InputCostRatio:  dec("40"),
		InvestmentRatio: dec("5"),
		VATCategory:     tributos.VATPadrao,
		SimulationYear:  2033,
	}
	r := newEngine().Compare(p, tributos.ScenarioBase)

	assertDec(t, "8000", r.CurrentSystem.Total, "DAS 8% do comércio")
	assertDec(t, "8", r.CurrentSystem.EffectiveRate, "carga atual")
	assertDec(t, "26500", r.PostReform.GrossTax, "26,5% sobre 100 mil")
	assertDec(t, "10600", r.PostReform.InputCredit, "40% de insumos")
	assertDec(t, "27.6", r.PostReform.CapitalCredit, "5% investido / 48")
	assertDec(t, "15872.4", r.PostReform.NetTax, "bruto menos créditos")
	assertDec(t, "15.87", r.PostReform.EffectiveRate, "carga pós-reforma")
	assertDec(t, "-7872.4", r.Savings, "aumento mensal")

	// a carga da reforma só fica abaixo da atual se o líquido for menor que o DAS
	assert.True(t, r.PostReform.EffectiveRate.GreaterThan(r.CurrentSystem.EffectiveRate))
	assert.Equal(t, r.CurrentSystem.Total.Sub(r.PostReform.NetTax).Sign(), r.Savings.Sign())
	assert.Equal(t, tributos.OutcomeAumento, r.Outcome)
}

func TestCompare_LucroRealCreditaPisCofins(t *testing.T) {
	p := comercioPresumido()
	p.Regime = tributos.RegimeReal
	cs := newEngine().Compare(p, tributos.ScenarioBase).CurrentSystem

	assertDec(t, "742.5", cs.PIS, "PIS 1,65% × 45% não creditado")
	assertDec(t, "3420", cs.COFINS, "COFINS 7,6% × 45% não creditado")
	assertDec(t, "900", cs.IRPJ, "IRPJ sobre margem de 6%")
	assertDec(t, "540", cs.CSLL, "CSLL sobre margem de 6%")
	assertDec(t, "16802.5", cs.Total, "total Lucro Real")
}

func TestCompare_ImpostoSeletivoExtrativo(t *testing.T) {
	p := comercioPresumido()
	p.Sector = tributos.SectorExtrativo
	pr := newEngine().Compare(p, tributos.ScenarioBase).PostReform

	assertDec(t, "530", pr.IS, "IS = 2% do bruto")
	assertDec(t, "15900", pr.CBS, "CBS não muda")
	assertDec(t, "10070", pr.IBS, "IBS = bruto - CBS - IS")
	assert.True(t, pr.CBS.Add(pr.IBS).Add(pr.IS).Equal(pr.GrossTax), "componentes somam o bruto")
}

func TestCompare_FaturamentoZeroNaoDivide(t *testing.T) {
	p := comercioPresumido()
	p.MonthlyRevenue = decimal.Zero
	p.Payroll = dec("10000")

	r := newEngine().Compare(p, tributos.ScenarioBase)
	assertDec(t, "2000", r.CurrentSystem.Total, "apenas CPP")
	assertDec(t, "0", r.CurrentSystem.EffectiveRate, "carga efetiva zero sem faturamento")
	assertDec(t, "0", r.PostReform.EffectiveRate, "carga pós-reforma zero sem faturamento")
	assertDec(t, "0", r.PostReform.NetTax, "sem IVA")
	assertDec(t, "2000", r.Savings, "economia = CPP eliminada do comparativo")
}

func TestCompare_TudoZeroEhNeutro(t *testing.T) {
	p := comercioPresumido()
	p.MonthlyRevenue = decimal.Zero
	p.Payroll = decimal.Zero

	r := newEngine().Compare(p, tributos.ScenarioBase)
	assert.Equal(t, tributos.OutcomeNeutro, r.Outcome, "economia exatamente zero é neutro")
	assertDec(t, "0", r.VariationPct, "variação zero quando o total atual é zero")
}

func TestCompare_AnoAnteriorATransicao(t *testing.T) {
	p := comercioPresumido()
	p.SimulationYear = 2025

	pr := newEngine().Compare(p, tributos.ScenarioBase).PostReform
	assertDec(t, "0", pr.AppliedRate, "peso zero antes de 2026")
	assertDec(t, "0", pr.GrossTax, "sem IVA antes da transição")
	assertDec(t, "0", pr.NetTax, "sem IVA antes da transição")
}

func TestCompare_PesoDaTransicao(t *testing.T) {
	p := comercioPresumido()
	p.SimulationYear = 2029

	pr := newEngine().Compare(p, tributos.ScenarioBase).PostReform
	assertDec(t, "18.55", pr.AppliedRate, "26,5% × 0,70")
	assertDec(t, "18550", pr.GrossTax, "bruto com peso 0,70")
}

func TestCompare_CategoriaIsentaEReduzida(t *testing.T) {
	eng := newEngine()
	p := comercioPresumido()

	p.VATCategory = tributos.VATIsenta
	assertDec(t, "0", eng.Compare(p, tributos.ScenarioBase).PostReform.NetTax, "isenta não recolhe IVA")

	p.VATCategory = tributos.VATReduzida
	assertDec(t, "10600", eng.Compare(p, tributos.ScenarioBase).PostReform.GrossTax, "redução de 60%")
}

func TestCompare_CenariosOrdenados(t *testing.T) {
	eng := newEngine()
	p := comercioPresumido()

	otimista := eng.Compare(p, tributos.ScenarioOtimista).PostReform.GrossTax
	base := eng.Compare(p, tributos.ScenarioBase).PostReform.GrossTax
	pessimista := eng.Compare(p, tributos.ScenarioPessimista).PostReform.GrossTax

	assert.True(t, otimista.LessThan(base), "otimista < base")
	assert.True(t, base.LessThan(pessimista), "base < pessimista")
}

func TestCompare_LiquidoNuncaNegativo(t *testing.T) {
	p := comercioPresumido()
	p.InputCostRatio = dec("100")
	p.InvestmentRatio = dec("100")

	pr := newEngine().Compare(p, tributos.ScenarioBase).PostReform
	assert.False(t, pr.NetTax.IsNegative(), "IVA líquido limitado a zero")
	assert.True(t, pr.CapitalCredit.LessThanOrEqual(pr.GrossTax), "crédito de ativo ≤ bruto")
}

func TestCompare_InvariantesParaTodosOsSetores(t *testing.T) {
	eng := newEngine()
	for _, sec := range tributos.Sectors {
		for _, reg := range tributos.Regimes {
			for _, uf := range tributos.States {
				p := comercioPresumido()
				p.Sector, p.Regime, p.State = sec, reg, uf
				r := eng.Compare(p, tributos.ScenarioPessimista)

				require.False(t, r.CurrentSystem.Total.IsNegative(), "total atual ≥ 0 (%s/%s/%s)", sec, reg, uf)
				require.False(t, r.PostReform.NetTax.IsNegative(), "líquido ≥ 0 (%s/%s/%s)", sec, reg, uf)
				require.True(t, r.Savings.Equal(r.CurrentSystem.Total.Sub(r.PostReform.NetTax)),
					"economia = total - líquido (%s/%s/%s)", sec, reg, uf)
				require.True(t, r.AnnualSavings.Equal(r.Savings.Mul(decimal.NewFromInt(12))),
					"economia anual = mensal × 12 (%s/%s/%s)", sec, reg, uf)
			}
		}
	}
}

func TestCompare_DeterministaIgual(t *testing.T) {
	eng := newEngine()
	a, err := json.Marshal(eng.Compare(comercioPresumido(), tributos.ScenarioBase))
	require.NoError(t, err)
	b, err := json.Marshal(eng.Compare(comercioPresumido(), tributos.ScenarioBase))
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b), "mesma entrada deve produzir a mesma saída byte a byte")
}

func TestCompare_NaoAlteraPerfil(t *testing.T) {
	p := comercioPresumido()
	before, _ := json.Marshal(p)
	newEngine().Compare(p, tributos.ScenarioBase)
	after, _ := json.Marshal(p)
	assert.Equal(t, string(before), string(after))
}

func TestNewEngine_CompletaParametros(t *testing.T) {
	eng := tributos.NewEngine(tributos.Parameters{CapitalCreditMonths: 24})
	params := eng.Parameters()

	assert.Equal(t, 24, params.CapitalCreditMonths, "valor informado é mantido")
	assertDec(t, "4800000", params.SimplesCeiling, "teto padrão do Simples")
	assertDec(t, "100000", params.MaterialityThreshold, "materialidade padrão")

	pr := eng.Compare(comercioPresumido(), tributos.ScenarioBase).PostReform
	assertDec(t, "110.42", pr.CapitalCredit, "crédito de ativo em 24 parcelas")
}
