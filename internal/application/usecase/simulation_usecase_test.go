package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/araujocontabil/reforma-tributaria-api/internal/application/dto"
	"github.com/araujocontabil/reforma-tributaria-api/internal/application/usecase"
	"github.com/araujocontabil/reforma-tributaria-api/internal/domain"
	"github.com/araujocontabil/reforma-tributaria-api/internal/domain/tributos"
	"github.com/araujocontabil/reforma-tributaria-api/pkg/logger"
)

var referenceDate = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func newSimulationUC() *usecase.SimulationUseCase {
	return usecase.NewSimulationUseCase(newEngine(), logger.Nop(), func() time.Time { return referenceDate })
}

func TestCompare_NormalizaECalcula(t *testing.T) {
	out, err := newSimulationUC().Compare(dto.SimulationRequest{Profile: comercioPresumido()})
	require.NoError(t, err)

	assert.Equal(t, tributos.State("SP"), out.Profile.State)
	assert.Equal(t, 2033, out.Profile.SimulationYear, "ano padrão = reforma plena")
	assert.Equal(t, tributos.VATPadrao, out.Profile.VATCategory)
	assert.Equal(t, tributos.ScenarioBase, out.Result.Scenario, "cenário vazio assume base")
	assertDec(t, "17130", out.Result.CurrentSystem.Total, "total atual")
	assertDec(t, "13194.79", out.Result.PostReform.NetTax, "líquido pós-reforma")
	assert.Equal(t, tributos.OutcomeEconomia, out.Result.Outcome)
}

func TestCompare_PerfilInvalido(t *testing.T) {
	p := comercioPresumido()
	p.MonthlyRevenue = dec("-1")
	p.Regime = "mei"

	_, err := newSimulationUC().Compare(dto.SimulationRequest{Profile: p})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "monthly_revenue")
	assert.Contains(t, err.Error(), "regime")
}

func TestCompare_CenarioDesconhecido(t *testing.T) {
	_, err := newSimulationUC().Compare(dto.SimulationRequest{Profile: comercioPresumido(), Scenario: "catastrofico"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAnalyze_ComposicaoCompleta(t *testing.T) {
	out, err := newSimulationUC().Analyze(context.Background(), dto.AnalysisRequest{
		Profile:    comercioPresumido(),
		Scenario:   "BASE",
		FixedCosts: dec("30000"),
	})
	require.NoError(t, err)

	assert.Len(t, out.Sensitivity, 28, "4 dimensões × 7 perturbações")
	require.Len(t, out.Regimes, 3)
	assert.Len(t, out.CashFlow, 12)
	require.Len(t, out.ROI, 4)
	assert.Len(t, out.Milestones, 11)
	assert.Len(t, out.TransitionCurve, 9)
	assert.NotEmpty(t, out.Recommendations)

	recommended := 0
	for _, r := range out.Regimes {
		if r.Recommended {
			recommended++
		}
	}
	assert.Equal(t, 1, recommended, "exatamente um regime recomendado")

	assert.True(t, out.Breakeven.ViableCurrent)
	assertDec(t, "30000", out.Breakeven.FixedCosts, "custo fixo repassado")
	assertDec(t, "7083.38", out.ROI[0].AnnualRecoverable, "software recupera 15% de 47222,52")
}

func TestAnalyze_ContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newSimulationUC().Analyze(ctx, dto.AnalysisRequest{Profile: comercioPresumido()})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAnalyze_CustoFixoNegativo(t *testing.T) {
	_, err := newSimulationUC().Analyze(context.Background(), dto.AnalysisRequest{
		Profile:    comercioPresumido(),
		FixedCosts: dec("-1"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSensitivity_UmaDimensao(t *testing.T) {
	out, err := newSimulationUC().Sensitivity(dto.SensitivityRequest{Profile: comercioPresumido(), Dimension: " Folha "})
	require.NoError(t, err)
	require.Len(t, out.Points, 7)
	for _, pt := range out.Points {
		assert.Equal(t, tributos.DimensionPayroll, pt.Dimension)
	}
}

func TestSensitivity_DimensaoDesconhecida(t *testing.T) {
	_, err := newSimulationUC().Sensitivity(dto.SensitivityRequest{Profile: comercioPresumido(), Dimension: "juros"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCashFlow_CrescimentoInvalido(t *testing.T) {
	_, err := newSimulationUC().CashFlow(dto.CashFlowRequest{Profile: comercioPresumido(), MonthlyGrowth: dec("-100")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCalendar_UsaRelogioInjetado(t *testing.T) {
	out := newSimulationUC().Calendar()
	assert.Equal(t, "2026-01-01", out.ReferenceDate)
	require.NotEmpty(t, out.Milestones)
	assert.Equal(t, 0, out.Milestones[0].DaysRemaining)
}

func TestStates_CenarioPadrao(t *testing.T) {
	out, err := newSimulationUC().States("")
	require.NoError(t, err)
	assert.Equal(t, tributos.ScenarioBase, out.Scenario)
	assert.Len(t, out.States, 27)
}

func TestProductImpact_ValidaProdutos(t *testing.T) {
	uc := newSimulationUC()

	_, err := uc.ProductImpact(dto.ProductImpactRequest{Profile: comercioPresumido()})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "lista vazia")

	_, err = uc.ProductImpact(dto.ProductImpactRequest{
		Profile:  comercioPresumido(),
		Products: []tributos.Product{{Name: "", CurrentMargin: dec("150"), Share: dec("10")}},
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "sem nome")
	assert.Contains(t, err.Error(), "current_margin")
}

func TestProductImpact_Calcula(t *testing.T) {
	out, err := newSimulationUC().ProductImpact(dto.ProductImpactRequest{
		Profile:  comercioPresumido(),
		Products: []tributos.Product{{Name: "Linha A", CurrentMargin: dec("20"), Share: dec("60")}},
	})
	require.NoError(t, err)
	require.Len(t, out.Products, 1)
	assertDec(t, "17.13", out.CurrentEffectiveRate, "carga atual")
	assertDec(t, "23.94", out.Products[0].ReformMargin, "margem pós-reforma")
}

func TestROI_RepassaDelta(t *testing.T) {
	out := newSimulationUC().ROI(dec("1000000"))
	require.Len(t, out.Options, 4)
	assert.Equal(t, "software", out.Options[0].Type)
	assert.True(t, out.Options[0].Recommended)
}
