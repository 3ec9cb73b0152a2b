// Comando simulador roda as simulações da reforma tributária no terminal, sem banco nem servidor.
//
//	simulador comparar --perfil empresa.yaml --cenario pessimista
//	simulador analisar --faturamento 250000 --regime real --setor industria --custos-fixos 80000
//	simulador calendario
//	simulador exportar --perfil empresa.yaml --formato pdf --saida relatorio.pdf
//	simulador impacto --perfil empresa.yaml --produtos produtos.csv --encoding latin1
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/araujocontabil/reforma-tributaria-api/internal/application/usecase"
	"github.com/araujocontabil/reforma-tributaria-api/internal/domain/tributos"
	"github.com/araujocontabil/reforma-tributaria-api/internal/infrastructure/export"
	infrapdf "github.com/araujocontabil/reforma-tributaria-api/internal/infrastructure/pdf"
	"github.com/araujocontabil/reforma-tributaria-api/pkg/config"
	"github.com/araujocontabil/reforma-tributaria-api/pkg/logger"
)

// app dependências compartilhadas pelos subcomandos.
type app struct {
	sim    *usecase.SimulationUseCase
	report *usecase.ReportUseCase
	text   *export.TextReport
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	// logs vão para stderr para não misturar com a saída do comando
	log := logger.New(logger.Config{Env: "development", Level: cfg.App.LogLevel, Output: os.Stderr})

	engine := tributos.NewEngine(tributos.Parameters{
		SimplesCeiling:       cfg.Tax.SimplesCeiling,
		SimplesSubCeiling:    cfg.Tax.SimplesSubCeiling,
		PresumidoCeiling:     cfg.Tax.PresumidoCeiling,
		CapitalCreditMonths:  cfg.Tax.CapitalCreditMonths,
		MaterialityThreshold: cfg.Tax.MaterialityThreshold,
	})
	text := export.NewTextReport()
	return &app{
		sim:    usecase.NewSimulationUseCase(engine, log, nil),
		report: usecase.NewReportUseCase(engine, nil, log, infrapdf.NewReportGenerator(), text),
		text:   text,
	}, nil
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "simulador",
		Short:         "Simulador do impacto da reforma tributária (EC 132/2023) para empresas",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newCompareCmd(a),
		newAnalyzeCmd(a),
		newCalendarCmd(a),
		newExportCmd(a),
		newImpactCmd(a),
	)
	return root
}

func main() {
	a, err := newApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, "configuração:", err)
		os.Exit(1)
	}
	if err := newRootCmd(a).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "erro:", err)
		os.Exit(1)
	}
}
