package main

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/araujocontabil/reforma-tributaria-api/internal/domain/tributos"
)

// profileFile perfil da empresa em YAML. Os valores numéricos são lidos como float64
// e convertidos para decimal com duas casas.
type profileFile struct {
	Faturamento  float64 `yaml:"faturamento"`
	Regime       string  `yaml:"regime"`
	Setor        string  `yaml:"setor"`
	UF           string  `yaml:"uf"`
	Folha        float64 `yaml:"folha"`
	Apuracao     string  `yaml:"apuracao"`
	Insumos      float64 `yaml:"insumos"`      // % do faturamento
	Investimento float64 `yaml:"investimento"` // % do faturamento
	Categoria    string  `yaml:"categoria"`
	Ano          int     `yaml:"ano"`
	Cenario      string  `yaml:"cenario"`
}

func (f profileFile) toProfile() tributos.CompanyProfile {
	return tributos.CompanyProfile{
		MonthlyRevenue:  money(f.Faturamento),
		Regime:          tributos.Regime(f.Regime),
		Sector:          tributos.Sector(f.Setor),
		State:           tributos.State(f.UF),
		Payroll:         money(f.Folha),
		AccountingBasis: tributos.AccountingBasis(f.Apuracao),
		InputCostRatio:  money(f.Insumos),
		InvestmentRatio: money(f.Investimento),
		VATCategory:     tributos.VATCategory(f.Categoria),
		SimulationYear:  f.Ano,
	}
}

func money(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}

func loadProfileFile(path string) (profileFile, error) {
	var f profileFile
	data, err := os.ReadFile(path)
	if err != nil {
		return f, fmt.Errorf("ler perfil %s: %w", path, err)
	}
	if err := yaml.UnmarshalStrict(data, &f); err != nil {
		return f, fmt.Errorf("perfil %s: %w", path, err)
	}
	return f, nil
}

// profileFlags perfil informado por arquivo e/ou flags; flags alteradas prevalecem sobre o arquivo.
type profileFlags struct {
	path     string
	scenario string
	values   profileFile
}

func (pf *profileFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVar(&pf.path, "perfil", "", "arquivo YAML com o perfil da empresa")
	fl.StringVar(&pf.scenario, "cenario", "", "otimista | base | pessimista (padrão base)")
	fl.Float64Var(&pf.values.Faturamento, "faturamento", 0, "faturamento bruto mensal (R$)")
	fl.StringVar(&pf.values.Regime, "regime", "", "simples | presumido | real")
	fl.StringVar(&pf.values.Setor, "setor", "", "comercio | industria | servicos | tecnologia | saude | educacao | construcao | agronegocio | extrativo")
	fl.StringVar(&pf.values.UF, "uf", "", "sigla da UF")
	fl.Float64Var(&pf.values.Folha, "folha", 0, "folha de pagamento mensal (R$)")
	fl.StringVar(&pf.values.Apuracao, "apuracao", "", "caixa | competencia")
	fl.Float64Var(&pf.values.Insumos, "insumos", 0, "insumos creditáveis (% do faturamento)")
	fl.Float64Var(&pf.values.Investimento, "investimento", 0, "investimento em imobilizado (% do faturamento)")
	fl.StringVar(&pf.values.Categoria, "categoria", "", "padrao | reduzida | isenta")
	fl.IntVar(&pf.values.Ano, "ano", 0, fmt.Sprintf("ano da simulação (%d-%d; padrão 2033)", tributos.MinSimulationYear, tributos.MaxSimulationYear))
}

// resolve combina arquivo e flags e devolve o perfil e o cenário.
func (pf *profileFlags) resolve(cmd *cobra.Command) (tributos.CompanyProfile, string, error) {
	f := profileFile{}
	if pf.path != "" {
		var err error
		if f, err = loadProfileFile(pf.path); err != nil {
			return tributos.CompanyProfile{}, "", err
		}
	}
	fl := cmd.Flags()
	v := pf.values
	if fl.Changed("faturamento") {
		f.Faturamento = v.Faturamento
	}
	if fl.Changed("regime") {
		f.Regime = v.Regime
	}
	if fl.Changed("setor") {
		f.Setor = v.Setor
	}
	if fl.Changed("uf") {
		f.UF = v.UF
	}
	if fl.Changed("folha") {
		f.Folha = v.Folha
	}
	if fl.Changed("apuracao") {
		f.Apuracao = v.Apuracao
	}
	if fl.Changed("insumos") {
		f.Insumos = v.Insumos
	}
	if fl.Changed("investimento") {
		f.Investimento = v.Investimento
	}
	if fl.Changed("categoria") {
		f.Categoria = v.Categoria
	}
	if fl.Changed("ano") {
		f.Ano = v.Ano
	}
	if pf.path == "" && !fl.Changed("faturamento") {
		return tributos.CompanyProfile{}, "", fmt.Errorf("informe --perfil ou ao menos --faturamento, --regime e --setor")
	}

	scenario := f.Cenario
	if pf.scenario != "" {
		scenario = pf.scenario
	}
	return f.toProfile(), scenario, nil
}
