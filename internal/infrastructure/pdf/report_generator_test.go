package pdf_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/araujocontabil/reforma-tributaria-api/internal/application/dto"
	"github.com/araujocontabil/reforma-tributaria-api/internal/domain/tributos"
	"github.com/araujocontabil/reforma-tributaria-api/internal/infrastructure/pdf"
)

func sampleReport() *dto.SimulationReport {
	eng := tributos.NewEngine(tributos.DefaultParameters())
	p := tributos.CompanyProfile{
		MonthlyRevenue:  decimal.NewFromInt(100000),
		Regime:          tributos.RegimePresumido,
		Sector:          tributos.SectorComercio,
		State:           "SP",
		Payroll:         decimal.NewFromInt(20000),
		AccountingBasis: tributos.BasisCaixa,
		InputCostRatio:  decimal.NewFromInt(50),
		InvestmentRatio: decimal.NewFromInt(10),
		VATCategory:     tributos.VATPadrao,
		SimulationYear:  2033,
	}
	r := eng.Compare(p, tributos.ScenarioBase)
	return &dto.SimulationReport{
		Title:           "Simulação da Reforma Tributária",
		CompanyName:     "Loja Central",
		GeneratedAt:     time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC),
		Profile:         p,
		RegimeName:      tributos.RegimeName(p.Regime),
		SectorName:      tributos.SectorName(p.Sector),
		StateName:       tributos.StateName(p.State),
		Comparison:      r,
		Regimes:         eng.CompareRegimes(p, tributos.ScenarioBase),
		Recommendations: eng.Recommend(p, r),
		TransitionCurve: eng.TransitionCurve(p, tributos.ScenarioBase),
	}
}

func TestReportGenerator_GeraPDF(t *testing.T) {
	g := pdf.NewReportGenerator()
	assert.Equal(t, "pdf", g.Format())
	assert.Equal(t, "application/pdf", g.ContentType())

	b, err := g.Render(sampleReport())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF")), "cabeçalho PDF")
}

func TestReportGenerator_SemSecoesOpcionais(t *testing.T) {
	r := sampleReport()
	r.CompanyName = ""
	r.Regimes, r.Recommendations, r.TransitionCurve = nil, nil, nil

	b, err := pdf.NewReportGenerator().Render(r)
	require.NoError(t, err)
	assert.NotEmpty(t, b)
}
