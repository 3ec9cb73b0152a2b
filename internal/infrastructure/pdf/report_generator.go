// Package pdf gera o relatório da simulação em PDF (A4) com Maroto v2.
//
// Layout da página:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  CABEÇALHO: título + empresa  │  data de geração             │
//	│  PERFIL: regime / setor / UF / faturamento / folha / ano     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: tributo | sistema atual   ||  tributo | pós-reforma │
//	│  RESUMO: economia mensal / anual / variação                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  REGIMES: carga atual | carga reforma | economia anual       │
//	│  TRANSIÇÃO: 2025..2033                                       │
//	│  RECOMENDAÇÕES                                               │
//	│  RODAPÉ: aviso de estimativa                                 │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/araujocontabil/reforma-tributaria-api/internal/application/dto"
	"github.com/araujocontabil/reforma-tributaria-api/internal/application/ports"
	"github.com/araujocontabil/reforma-tributaria-api/internal/domain/tributos"
	"github.com/araujocontabil/reforma-tributaria-api/pkg/moeda"
)

var _ ports.ReportRenderer = (*ReportGenerator)(nil)

// ── Paleta ────────────────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 92, Blue: 75}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorGain    = &props.Color{Red: 0, Green: 128, Blue: 0}
	colorLoss    = &props.Color{Red: 180, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// ReportGenerator renderizador PDF do relatório de simulação.
type ReportGenerator struct{}

// NewReportGenerator constrói o gerador.
func NewReportGenerator() *ReportGenerator { return &ReportGenerator{} }

// Format extensão do arquivo.
func (g *ReportGenerator) Format() string { return dto.ReportFormatPDF }

// ContentType MIME do arquivo.
func (g *ReportGenerator) ContentType() string { return "application/pdf" }

// Render gera o PDF e devolve seus bytes.
func (g *ReportGenerator) Render(r *dto.SimulationReport) ([]byte, error) {
	author := r.CompanyName
	if author == "" {
		author = r.Title
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(r.Title, true).
		WithAuthor(author, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(r))
	m.AddRows(profileRow(r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(sectionTitle("Comparativo mensal"))
	m.AddRows(comparisonRows(r.Comparison)...)
	m.AddRows(summaryRow(r.Comparison))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	if len(r.Regimes) > 0 {
		m.AddRows(sectionTitle("Comparativo de regimes"))
		m.AddRows(regimeRows(r.Regimes)...)
	}
	if len(r.TransitionCurve) > 0 {
		m.AddRows(sectionTitle("Carga mensal durante a transição"))
		m.AddRows(transitionRows(r.TransitionCurve)...)
	}
	if len(r.Recommendations) > 0 {
		m.AddRows(sectionTitle("Recomendações"))
		m.AddRows(recommendationRows(r.Recommendations)...)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Seções ────────────────────────────────────────────────────────────────────

func headerRow(r *dto.SimulationReport) core.Row {
	company := r.CompanyName
	if company == "" {
		company = "Empresa não informada"
	}
	return row.New(16).Add(
		col.New(8).Add(
			text.New(r.Title, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
			text.New(company, props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("Gerado em "+r.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New("Cenário "+string(r.Comparison.Scenario), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 8,
			}),
		),
	)
}

func profileRow(r *dto.SimulationReport) core.Row {
	p := r.Profile
	return row.New(14).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("%s  |  %s  |  %s (%s)  |  ano %d",
				r.RegimeName, r.SectorName, r.StateName, p.State, p.SimulationYear,
			), props.Text{Size: 8, Top: 1}),
			text.New(fmt.Sprintf("Faturamento %s  |  Folha %s  |  Insumos %s  |  Investimento %s  |  IVA %s",
				moeda.Format(p.MonthlyRevenue), moeda.Format(p.Payroll),
				moeda.Percent(p.InputCostRatio), moeda.Percent(p.InvestmentRatio), p.VATCategory,
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

func sectionTitle(s string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(s, props.Text{Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 2}),
	))
}

// comparisonRows duas tabelas lado a lado: componentes atuais e pós-reforma.
func comparisonRows(c tributos.ComparisonResult) []core.Row {
	cur := c.CurrentSystem
	ref := c.PostReform
	left := [][2]string{
		{"PIS", moeda.Format(cur.PIS)},
		{"COFINS", moeda.Format(cur.COFINS)},
		{"ICMS", moeda.Format(cur.ICMS)},
		{"ISS", moeda.Format(cur.ISS)},
		{"IRPJ", moeda.Format(cur.IRPJ)},
		{"CSLL", moeda.Format(cur.CSLL)},
		{"CPP", moeda.Format(cur.CPP)},
		{"Simples (DAS)", moeda.Format(cur.Simples)},
		{"Total atual", moeda.Format(cur.Total)},
		{"Carga efetiva", moeda.Percent(cur.EffectiveRate)},
	}
	right := [][2]string{
		{"Alíquota aplicada", moeda.Percent(ref.AppliedRate)},
		{"CBS", moeda.Format(ref.CBS)},
		{"IBS", moeda.Format(ref.IBS)},
		{"Imposto Seletivo", moeda.Format(ref.IS)},
		{"Tributo bruto", moeda.Format(ref.GrossTax)},
		{"Crédito de insumos", "-" + moeda.Format(ref.InputCredit)},
		{"Crédito de ativo", "-" + moeda.Format(ref.CapitalCredit)},
		{"", ""},
		{"Tributo líquido", moeda.Format(ref.NetTax)},
		{"Carga efetiva", moeda.Percent(ref.EffectiveRate)},
	}

	rows := make([]core.Row, 0, len(left))
	for i := range left {
		bold := i >= len(left)-2
		rows = append(rows, row.New(5).Add(
			labelCol(3, left[i][0], bold),
			valueCol(3, left[i][1], bold, nil),
			labelCol(3, right[i][0], bold),
			valueCol(3, right[i][1], bold, nil),
		))
	}
	return rows
}

func summaryRow(c tributos.ComparisonResult) core.Row {
	color := colorGray
	switch c.Outcome {
	case tributos.OutcomeEconomia:
		color = colorGain
	case tributos.OutcomeAumento:
		color = colorLoss
	}
	return row.New(14).Add(
		col.New(4).Add(
			text.New("Economia mensal", props.Text{Size: 8, Top: 2, Color: colorGray}),
			text.New(moeda.Format(c.Savings), props.Text{Style: fontstyle.Bold, Size: 11, Top: 7, Color: color}),
		),
		col.New(4).Add(
			text.New("Economia anual", props.Text{Size: 8, Top: 2, Color: colorGray}),
			text.New(moeda.Format(c.AnnualSavings), props.Text{Style: fontstyle.Bold, Size: 11, Top: 7, Color: color}),
		),
		col.New(4).Add(
			text.New("Variação da carga", props.Text{Size: 8, Top: 2, Color: colorGray, Align: align.Right}),
			text.New(moeda.Percent(c.VariationPct), props.Text{Style: fontstyle.Bold, Size: 11, Top: 7, Color: color, Align: align.Right}),
		),
	)
}

func regimeRows(rows []tributos.RegimeComparisonRow) []core.Row {
	out := []core.Row{row.New(6).Add(
		labelCol(4, "Regime", true),
		valueCol(2, "Carga atual", true, nil),
		valueCol(2, "Carga reforma", true, nil),
		valueCol(4, "Economia anual", true, nil),
	)}
	for _, r := range rows {
		name := r.DisplayName
		if r.Recommended {
			name += " (recomendado)"
		}
		out = append(out, row.New(5).Add(
			labelCol(4, name, r.Recommended),
			valueCol(2, moeda.Percent(r.CurrentEffectiveRate), false, nil),
			valueCol(2, moeda.Percent(r.ReformEffectiveRate), false, nil),
			valueCol(4, moeda.Format(r.AnnualSavings), r.Recommended, signColor(r.AnnualSavings)),
		))
	}
	return out
}

func transitionRows(curve []tributos.TransitionYear) []core.Row {
	out := []core.Row{row.New(6).Add(
		labelCol(2, "Ano", true),
		valueCol(2, "Peso IVA", true, nil),
		valueCol(3, "Sistema atual", true, nil),
		valueCol(2, "IVA Dual", true, nil),
		valueCol(3, "Total", true, nil),
	)}
	for _, y := range curve {
		out = append(out, row.New(5).Add(
			labelCol(2, strconv.Itoa(y.Year), false),
			valueCol(2, moeda.Percent(y.Weight.Mul(decimal.NewFromInt(100))), false, nil),
			valueCol(3, moeda.Format(y.CurrentShare), false, nil),
			valueCol(2, moeda.Format(y.ReformShare), false, nil),
			valueCol(3, moeda.Format(y.Total), true, nil),
		))
	}
	return out
}

func recommendationRows(recs []tributos.Recommendation) []core.Row {
	out := make([]core.Row, 0, len(recs)*2)
	for i, r := range recs {
		out = append(out, row.New(6).Add(
			col.New(9).Add(text.New(fmt.Sprintf("%d. %s", i+1, r.Title), props.Text{Style: fontstyle.Bold, Size: 9, Top: 1})),
			col.New(3).Add(text.New(fmt.Sprintf("%s | %s", r.Priority, r.Timeframe), props.Text{
				Size: 7, Align: align.Right, Top: 1.5, Color: colorGray,
			})),
		))
		out = append(out, row.New(10).Add(col.New(12).Add(
			text.New(r.Description+" Impacto estimado: "+moeda.Format(r.EstimatedImpact)+".", props.Text{
				Size: 8, Top: 0.5, Left: 4, Color: colorGray,
			}),
		)))
	}
	return out
}

func footerRow() core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New("Estimativa simplificada com base nas alíquotas de referência da reforma (EC 132/2023 e LC 214/2025). "+
			"Não substitui a apuração fiscal nem o parecer de um contador.", props.Text{Size: 6.5, Color: colorGray, Top: 2}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func labelCol(size int, s string, bold bool) core.Col {
	style := fontstyle.Normal
	if bold {
		style = fontstyle.Bold
	}
	return col.New(size).Add(text.New(s, props.Text{Style: style, Size: 8, Top: 1}))
}

func valueCol(size int, s string, bold bool, color *props.Color) core.Col {
	style := fontstyle.Normal
	if bold {
		style = fontstyle.Bold
	}
	return col.New(size).Add(text.New(s, props.Text{Style: style, Size: 8, Top: 1, Align: align.Right, Right: 2, Color: color}))
}

func signColor(v decimal.Decimal) *props.Color {
	switch {
	case v.IsPositive():
		return colorGain
	case v.IsNegative():
		return colorLoss
	}
	return nil
}
