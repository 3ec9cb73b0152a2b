package export

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/shopspring/decimal"

	"github.com/araujocontabil/reforma-tributaria-api/internal/application/dto"
	"github.com/araujocontabil/reforma-tributaria-api/internal/application/ports"
	"github.com/araujocontabil/reforma-tributaria-api/pkg/moeda"
)

var _ ports.ReportRenderer = (*TextReport)(nil)

// TableConfig larguras das colunas da tabela de texto.
type TableConfig struct {
	LabelWidth int
	ValueWidth int
}

// DefaultTableConfig larguras usadas na API e na CLI.
func DefaultTableConfig() TableConfig {
	return TableConfig{LabelWidth: 24, ValueWidth: 18}
}

// TextReport renderiza o relatório como texto puro (UTF-8) em tabelas alinhadas.
type TextReport struct {
	config TableConfig
	tmpl   *template.Template
}

// NewTextReport compila o template uma vez.
func NewTextReport() *TextReport {
	r := &TextReport{config: DefaultTableConfig()}
	r.tmpl = template.Must(template.New("relatorio").Funcs(r.funcMap()).Parse(reportTemplate))
	return r
}

// Format extensão do arquivo.
func (r *TextReport) Format() string { return dto.ReportFormatText }

// ContentType MIME do arquivo.
func (r *TextReport) ContentType() string { return "text/plain; charset=utf-8" }

// Render executa o template em memória.
func (r *TextReport) Render(rep *dto.SimulationReport) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.Write(&buf, rep); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write executa o template direto no writer (a CLI escreve no terminal).
func (r *TextReport) Write(w io.Writer, rep *dto.SimulationReport) error {
	if err := r.tmpl.Execute(w, rep); err != nil {
		return fmt.Errorf("texto: executar template: %w", err)
	}
	return nil
}

func (r *TextReport) funcMap() template.FuncMap {
	return template.FuncMap{
		"brl": moeda.Format,
		"pct": moeda.Percent,
		"weightPct": func(w decimal.Decimal) string {
			return moeda.Percent(w.Mul(decimal.NewFromInt(100)))
		},
		"row": func(label, value string) string {
			return fmt.Sprintf("| %-*s | %*s |", r.config.LabelWidth, label, r.config.ValueWidth, value)
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+", strings.Repeat("-", r.config.LabelWidth+2), strings.Repeat("-", r.config.ValueWidth+2))
		},
		"inc": func(i int) int { return i + 1 },
		"upper": strings.ToUpper,
	}
}

const reportTemplate = `{{upper .Title}}
{{if .CompanyName}}Empresa: {{.CompanyName}}
{{end}}Gerado em: {{.GeneratedAt.Format "02/01/2006 15:04"}}
Cenário: {{.Comparison.Scenario}}

Perfil: {{.RegimeName}} | {{.SectorName}} | {{.StateName}} ({{.Profile.State}}) | ano {{.Profile.SimulationYear}}
Faturamento mensal: {{brl .Profile.MonthlyRevenue}}   Folha: {{brl .Profile.Payroll}}
Insumos: {{pct .Profile.InputCostRatio}}   Investimento: {{pct .Profile.InvestmentRatio}}   Categoria IVA: {{.Profile.VATCategory}}

=== SISTEMA ATUAL ===
{{separator}}
{{with .Comparison.CurrentSystem}}{{row "PIS" (brl .PIS)}}
{{row "COFINS" (brl .COFINS)}}
{{row "ICMS" (brl .ICMS)}}
{{row "ISS" (brl .ISS)}}
{{row "IRPJ" (brl .IRPJ)}}
{{row "CSLL" (brl .CSLL)}}
{{row "CPP" (brl .CPP)}}
{{row "Simples (DAS)" (brl .Simples)}}
{{separator}}
{{row "Total" (brl .Total)}}
{{row "Carga efetiva" (pct .EffectiveRate)}}{{end}}
{{separator}}

=== PÓS-REFORMA (IVA DUAL) ===
{{separator}}
{{with .Comparison.PostReform}}{{row "Alíquota aplicada" (pct .AppliedRate)}}
{{row "CBS" (brl .CBS)}}
{{row "IBS" (brl .IBS)}}
{{row "Imposto Seletivo" (brl .IS)}}
{{row "Tributo bruto" (brl .GrossTax)}}
{{row "Crédito de insumos" (brl .InputCredit)}}
{{row "Crédito de ativo" (brl .CapitalCredit)}}
{{separator}}
{{row "Tributo líquido" (brl .NetTax)}}
{{row "Carga efetiva" (pct .EffectiveRate)}}{{end}}
{{separator}}

Resultado: {{.Comparison.Outcome}}
Economia mensal: {{brl .Comparison.Savings}}
Economia anual: {{brl .Comparison.AnnualSavings}}
Variação da carga: {{pct .Comparison.VariationPct}}
{{if .Regimes}}
=== REGIMES ===
{{range .Regimes}}- {{.DisplayName}}{{if .Recommended}} (recomendado){{end}}: atual {{pct .CurrentEffectiveRate}}, reforma {{pct .ReformEffectiveRate}}, economia anual {{brl .AnnualSavings}}
{{end}}{{end}}{{if .TransitionCurve}}
=== TRANSIÇÃO ===
{{range .TransitionCurve}}{{.Year}}  IVA {{weightPct .Weight}}  total {{brl .Total}}
{{end}}{{end}}{{if .Recommendations}}
=== RECOMENDAÇÕES ===
{{range $i, $r := .Recommendations}}{{inc $i}}. [{{$r.Priority}}] {{$r.Title}} ({{$r.Timeframe}})
   {{$r.Description}}
   Impacto estimado: {{brl $r.EstimatedImpact}}
{{range $r.Actions}}   - {{.}}
{{end}}{{end}}{{end}}
Estimativa simplificada. Não substitui a apuração fiscal nem o parecer de um contador.
`
