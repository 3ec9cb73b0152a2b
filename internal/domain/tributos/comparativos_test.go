package tributos_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/araujocontabil/reforma-tributaria-api/internal/domain"
	"github.com/araujocontabil/reforma-tributaria-api/internal/domain/tributos"
)

// ── Estados e países ──

func TestCompareStates_OrdenadoPorVariacao(t *testing.T) {
	out := tributos.CompareStates(tributos.ScenarioBase)
	require.Len(t, out, 27)

	assert.Equal(t, tributos.State("MA"), out[0].State, "maior ICMS tem a maior redução")
	assertDec(t, "23", out[0].CurrentRate, "ICMS do Maranhão")
	assertDec(t, "10.6", out[0].ReformRate, "40% de 26,5%")
	assertDec(t, "-53.91", out[0].VariationPct, "(10,6 - 23) / 23")

	tail := make([]tributos.State, 0, 5)
	for _, s := range out[22:] {
		tail = append(tail, s.State)
	}
	assert.Equal(t, []tributos.State{"ES", "MS", "MT", "RS", "SC"}, tail, "empates pela sigla")

	for i := 1; i < len(out); i++ {
		assert.True(t, out[i-1].VariationPct.LessThanOrEqual(out[i].VariationPct), "ordem crescente")
	}
}

func TestCompareStates_VantagensPadrao(t *testing.T) {
	for _, s := range tributos.CompareStates(tributos.ScenarioOtimista) {
		switch s.State {
		case "SP":
			assert.Contains(t, s.Advantages, "Maior mercado consumidor")
		case "RJ":
			assert.Contains(t, s.Disadvantages, "ICMS elevado")
		case "AC":
			assert.Equal(t, []string{"Analisar localmente"}, s.Advantages)
			assert.Equal(t, []string{"Avaliar caso a caso"}, s.Disadvantages)
		}
		assertDec(t, "10", s.ReformRate, "40% de 25%")
	}
}

func TestCompareCountries_OrdenadoPorCarga(t *testing.T) {
	out := tributos.CompareCountries()
	require.Len(t, out, 5)

	names := make([]string, 0, len(out))
	for _, c := range out {
		names = append(names, c.Country)
	}
	assert.Equal(t, []string{"Emirados Árabes", "Paraguai", "Uruguai", "Portugal", "Estados Unidos"}, names)
	assert.Equal(t, 6, out[4].EaseOfBusiness)
	assert.True(t, out[4].VATRate.IsZero(), "EUA sem IVA federal")
}

func TestCompareCountries_ListasIndependentes(t *testing.T) {
	first := tributos.CompareCountries()
	first[0].Advantages[0] = "alterado"
	second := tributos.CompareCountries()
	assert.Equal(t, "Carga tributária mínima", second[0].Advantages[0], "a tabela estática não é compartilhada")
}

// ── Impacto por produto ──

func TestProductImpact_CargaMenorMelhoraMargem(t *testing.T) {
	out := newEngine().ProductImpact(comercioPresumido(), tributos.ScenarioBase, []tributos.Product{
		{Name: "Linha A", CurrentMargin: dec("20"), Share: dec("60")},
	})
	require.Len(t, out, 1)

	assertDec(t, "23.94", out[0].ReformMargin, "20 - (13,19 - 17,13)")
	assertDec(t, "3.94", out[0].MarginVariation, "variação de margem")
	assert.Contains(t, out[0].Recommendation, "Aumentar investimento")
}

func TestProductImpact_CargaMaiorReduzMargem(t *testing.T) {
	out := newEngine().ProductImpact(servicosSimples(), tributos.ScenarioBase, []tributos.Product{
		{Name: "Consultoria", CurrentMargin: dec("30"), Share: dec("100")},
	})

	assertDec(t, "22.3", out[0].ReformMargin, "30 - (21,2 - 13,5)")
	assertDec(t, "-7.7", out[0].MarginVariation, "variação de margem")
	assert.Contains(t, out[0].Recommendation, "Reavaliar viabilidade")
}

// ── Curva da transição ──

func TestTransitionCurve_DeAtualParaReforma(t *testing.T) {
	eng := newEngine()
	p := comercioPresumido()
	p.SimulationYear = 2027

	curve := eng.TransitionCurve(p, tributos.ScenarioBase)
	require.Len(t, curve, 9, "2025 a 2033")

	assert.Equal(t, 2025, curve[0].Year)
	assertDec(t, "17130", curve[0].Total, "2025 integralmente no sistema atual")
	assert.Equal(t, 2033, curve[8].Year)
	assertDec(t, "13194.79", curve[8].Total, "2033 integralmente no IVA Dual")

	for _, y := range curve {
		assert.True(t, y.Total.Equal(y.CurrentShare.Add(y.ReformShare)), "%d: total = parcelas", y.Year)
	}
}

// ── Validação ──

func TestValidateProfile_PerfilValido(t *testing.T) {
	assert.NoError(t, tributos.ValidateProfile(comercioPresumido()))
}

func TestValidateProfile_ListaTodosOsCampos(t *testing.T) {
	p := comercioPresumido()
	p.MonthlyRevenue = dec("-1")
	p.InputCostRatio = dec("120")
	p.Regime = "mei"
	p.State = "XX"
	p.SimulationYear = 2050

	err := tributos.ValidateProfile(p)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	for _, field := range []string{"monthly_revenue", "input_cost_ratio", "regime", "UF", "simulation_year"} {
		assert.Contains(t, err.Error(), field)
	}
}

func TestNormalize_AplicaPadroes(t *testing.T) {
	p := tributos.Normalize(tributos.CompanyProfile{
		MonthlyRevenue:  dec("1000"),
		Regime:          tributos.RegimeReal,
		Sector:          tributos.SectorIndustria,
		State:           "rs",
		InputCostRatio:  dec("140"),
		InvestmentRatio: dec("-5"),
	})

	assert.Equal(t, tributos.BasisCaixa, p.AccountingBasis)
	assert.Equal(t, tributos.VATPadrao, p.VATCategory)
	assert.Equal(t, 2033, p.SimulationYear)
	assert.Equal(t, tributos.State("RS"), p.State)
	assertDec(t, "100", p.InputCostRatio, "limitado a 100")
	assertDec(t, "0", p.InvestmentRatio, "limitado a 0")
	assert.True(t, p.Payroll.Equal(decimal.Zero))
	assert.NoError(t, tributos.ValidateProfile(p))
}

func TestParseScenario(t *testing.T) {
	s, err := tributos.ParseScenario("")
	require.NoError(t, err)
	assert.Equal(t, tributos.ScenarioBase, s, "vazio assume base")

	s, err = tributos.ParseScenario("Pessimista")
	require.NoError(t, err)
	assert.Equal(t, tributos.ScenarioPessimista, s)

	_, err = tributos.ParseScenario("catastrofico")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTransitionWeight_Limites(t *testing.T) {
	assert.True(t, tributos.TransitionWeight(2020).IsZero())
	assertDec(t, "0.04", tributos.TransitionWeight(2026), "ano de teste")
	assertDec(t, "0.95", tributos.TransitionWeight(2032), "penúltimo ano")
	assertDec(t, "1", tributos.TransitionWeight(2040), "reforma plena")
}
