package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/araujocontabil/reforma-tributaria-api/internal/application/dto"
	"github.com/araujocontabil/reforma-tributaria-api/pkg/moeda"
)

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newCompareCmd(a *app) *cobra.Command {
	var pf profileFlags
	var asJSON bool
	var company string
	cmd := &cobra.Command{
		Use:   "comparar",
		Short: "Compara o sistema atual com o IVA Dual",
		RunE: func(cmd *cobra.Command, _ []string) error {
			profile, scenario, err := pf.resolve(cmd)
			if err != nil {
				return err
			}
			req := dto.ReportRequest{Profile: profile, Scenario: scenario, CompanyName: company}
			if asJSON {
				out, err := a.sim.Compare(dto.SimulationRequest{Profile: profile, Scenario: scenario})
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), out)
			}
			rep, err := a.report.Build(req)
			if err != nil {
				return err
			}
			return a.text.Write(cmd.OutOrStdout(), rep)
		},
	}
	pf.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "saída em JSON")
	cmd.Flags().StringVar(&company, "empresa", "", "nome da empresa no cabeçalho")
	return cmd
}

func newAnalyzeCmd(a *app) *cobra.Command {
	var pf profileFlags
	var fixedCosts, growth float64
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "analisar",
		Short: "Análise completa: sensibilidade, regimes, ponto de equilíbrio e fluxo de caixa",
		RunE: func(cmd *cobra.Command, _ []string) error {
			profile, scenario, err := pf.resolve(cmd)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()
			out, err := a.sim.Analyze(ctx, dto.AnalysisRequest{
				Profile:       profile,
				Scenario:      scenario,
				FixedCosts:    money(fixedCosts),
				MonthlyGrowth: money(growth),
			})
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd.OutOrStdout(), out)
			}
			return printAnalysis(cmd.OutOrStdout(), out)
		},
	}
	pf.register(cmd)
	cmd.Flags().Float64Var(&fixedCosts, "custos-fixos", 0, "custos fixos mensais (R$) para o ponto de equilíbrio")
	cmd.Flags().Float64Var(&growth, "crescimento", 0, "crescimento mensal do faturamento (%) no fluxo de caixa")
	cmd.Flags().BoolVar(&asJSON, "json", false, "saída em JSON")
	return cmd
}

func printAnalysis(w io.Writer, out *dto.AnalysisResponse) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	r := out.Comparison
	fmt.Fprintf(tw, "Cenário\t%s\t\n", r.Scenario)
	fmt.Fprintf(tw, "Sistema atual (mês)\t%s\t\n", moeda.Format(r.CurrentSystem.Total))
	fmt.Fprintf(tw, "Pós-reforma (mês)\t%s\t\n", moeda.Format(r.PostReform.NetTax))
	fmt.Fprintf(tw, "Economia anual\t%s\t\n", moeda.Format(r.AnnualSavings))
	fmt.Fprintln(tw, "\t\t")

	fmt.Fprintln(tw, "Dimensão\tVariação\tAtual\tReforma\tEconomia\t")
	for _, p := range out.Sensitivity {
		fmt.Fprintf(tw, "%s\t%+d%%\t%s\t%s\t%s\t\n", p.Dimension, p.Perturbation,
			moeda.Format(p.CurrentTotal), moeda.Format(p.ReformNetTax), moeda.Format(p.Savings))
	}
	fmt.Fprintln(tw, "\t\t")

	fmt.Fprintln(tw, "Regime\tCarga atual\tCarga reforma\tEconomia anual\tRecomendado\t")
	for _, row := range out.Regimes {
		rec := ""
		if row.Recommended {
			rec = "sim"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t\n", row.DisplayName,
			moeda.Percent(row.CurrentEffectiveRate), moeda.Percent(row.ReformEffectiveRate), moeda.Format(row.AnnualSavings), rec)
	}
	fmt.Fprintln(tw, "\t\t")

	be := out.Breakeven
	fmt.Fprintf(tw, "Ponto de equilíbrio atual\t%s\t\n", viable(be.MinRevenueCurrent, be.ViableCurrent))
	fmt.Fprintf(tw, "Ponto de equilíbrio reforma\t%s\t\n", viable(be.MinRevenueReform, be.ViableReform))
	fmt.Fprintln(tw, "\t\t")

	fmt.Fprintln(tw, "Mês\tFaturamento\tAtual\tReforma\tDiferença líquida\t")
	for _, p := range out.CashFlow {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t\n", p.Month, moeda.Format(p.Revenue),
			moeda.Format(p.CurrentTax), moeda.Format(p.ReformTax), moeda.Format(p.Difference))
	}
	return tw.Flush()
}

func viable(v decimal.Decimal, ok bool) string {
	if !ok {
		return "inviável"
	}
	return moeda.Format(v)
}

func newCalendarCmd(a *app) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "calendario",
		Short: "Marcos da transição a partir de hoje",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := a.sim.Calendar()
			if asJSON {
				return printJSON(cmd.OutOrStdout(), out)
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "Data\tDias\tPrioridade\tMarco")
			for _, m := range out.Milestones {
				fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", m.Date, m.DaysRemaining, m.Priority, m.Title)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "saída em JSON")
	return cmd
}

func newExportCmd(a *app) *cobra.Command {
	var pf profileFlags
	var format, output, company string
	cmd := &cobra.Command{
		Use:   "exportar",
		Short: "Gera o relatório da simulação em PDF ou texto",
		RunE: func(cmd *cobra.Command, _ []string) error {
			profile, scenario, err := pf.resolve(cmd)
			if err != nil {
				return err
			}
			out, err := a.report.Generate(cmd.Context(), dto.ReportRequest{
				Profile:     profile,
				Scenario:    scenario,
				CompanyName: company,
			}, format)
			if err != nil {
				return err
			}
			path := output
			if path == "" {
				path = out.Filename
			}
			if err := os.WriteFile(path, out.Content, 0o644); err != nil {
				return fmt.Errorf("gravar %s: %w", path, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "relatório gravado em %s (%d bytes)\n", path, len(out.Content))
			return nil
		},
	}
	pf.register(cmd)
	cmd.Flags().StringVar(&format, "formato", dto.ReportFormatPDF, "pdf | txt")
	cmd.Flags().StringVar(&output, "saida", "", "arquivo de saída (padrão: nome gerado)")
	cmd.Flags().StringVar(&company, "empresa", "", "nome da empresa no cabeçalho")
	return cmd
}

func newImpactCmd(a *app) *cobra.Command {
	var pf profileFlags
	var productsPath, encoding string
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "impacto",
		Short: "Impacto da reforma na margem de cada produto (CSV nome;margem;participação)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			profile, scenario, err := pf.resolve(cmd)
			if err != nil {
				return err
			}
			f, r, err := openProducts(productsPath, encoding)
			if err != nil {
				return err
			}
			defer f.Close()
			products, err := parseProducts(r)
			if err != nil {
				return err
			}

			out, err := a.sim.ProductImpact(dto.ProductImpactRequest{Profile: profile, Scenario: scenario, Products: products})
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd.OutOrStdout(), out)
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "Carga efetiva atual %s, pós-reforma %s\n\n", moeda.Percent(out.CurrentEffectiveRate), moeda.Percent(out.ReformEffectiveRate))
			fmt.Fprintln(tw, "Produto\tParticipação\tMargem atual\tMargem reforma\tVariação\tRecomendação")
			for _, p := range out.Products {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s p.p.\t%s\n", p.Product, moeda.Percent(p.Share),
					moeda.Percent(p.CurrentMargin), moeda.Percent(p.ReformMargin), moeda.Number(p.MarginVariation), p.Recommendation)
			}
			return tw.Flush()
		},
	}
	pf.register(cmd)
	cmd.Flags().StringVar(&productsPath, "produtos", "", "planilha CSV separada por ';'")
	cmd.Flags().StringVar(&encoding, "encoding", "utf8", "utf8 | latin1 | cp1252")
	cmd.Flags().BoolVar(&asJSON, "json", false, "saída em JSON")
	_ = cmd.MarkFlagRequired("produtos")
	return cmd
}
