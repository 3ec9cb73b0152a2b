package tributos

import (
	"fmt"
	"strings"

	"github.com/araujocontabil/reforma-tributaria-api/internal/domain"
)

// Faixa de anos aceita por ValidateProfile.
const (
	MinSimulationYear = 2024
	MaxSimulationYear = 2040
)

// Normalize aplica padrões de ingestão: apuração caixa, categoria padrão, ano 2033 e
// percentuais limitados a [0, 100]. Campos enumerados desconhecidos são mantidos para a validação.
func Normalize(p CompanyProfile) CompanyProfile {
	if p.AccountingBasis == "" {
		p.AccountingBasis = BasisCaixa
	}
	if p.VATCategory == "" {
		p.VATCategory = VATPadrao
	}
	if p.SimulationYear == 0 {
		p.SimulationYear = fullReformYear
	}
	p.State = State(strings.ToUpper(string(p.State)))
	p.InputCostRatio = ClampRatio(p.InputCostRatio)
	p.InvestmentRatio = ClampRatio(p.InvestmentRatio)
	return p
}

// ValidateProfile rejeita perfis que o motor não deve receber. O erro lista todos os campos
// inválidos e envolve domain.ErrInvalidInput.
func ValidateProfile(p CompanyProfile) error {
	var problems []string

	if p.MonthlyRevenue.IsNegative() {
		problems = append(problems, "monthly_revenue negativo")
	}
	if p.Payroll.IsNegative() {
		problems = append(problems, "payroll negativo")
	}
	if p.InputCostRatio.IsNegative() || p.InputCostRatio.GreaterThan(hundred) {
		problems = append(problems, "input_cost_ratio fora de [0, 100]")
	}
	if p.InvestmentRatio.IsNegative() || p.InvestmentRatio.GreaterThan(hundred) {
		problems = append(problems, "investment_ratio fora de [0, 100]")
	}
	if _, ok := regimeNames[p.Regime]; !ok {
		problems = append(problems, fmt.Sprintf("regime desconhecido %q", p.Regime))
	}
	if _, ok := sectors[p.Sector]; !ok {
		problems = append(problems, fmt.Sprintf("setor desconhecido %q", p.Sector))
	}
	if _, ok := states[p.State]; !ok {
		problems = append(problems, fmt.Sprintf("UF desconhecida %q", p.State))
	}
	if p.AccountingBasis != BasisCaixa && p.AccountingBasis != BasisCompetencia {
		problems = append(problems, fmt.Sprintf("apuração desconhecida %q", p.AccountingBasis))
	}
	if _, ok := categoryFactors[p.VATCategory]; !ok {
		problems = append(problems, fmt.Sprintf("categoria IVA desconhecida %q", p.VATCategory))
	}
	if p.SimulationYear < MinSimulationYear || p.SimulationYear > MaxSimulationYear {
		problems = append(problems, fmt.Sprintf("simulation_year fora de [%d, %d]", MinSimulationYear, MaxSimulationYear))
	}

	if len(problems) > 0 {
		return fmt.Errorf("perfil inválido: %s: %w", strings.Join(problems, "; "), domain.ErrInvalidInput)
	}
	return nil
}

// ParseScenario valida o cenário; vazio assume o cenário base.
func ParseScenario(s string) (Scenario, error) {
	if s == "" {
		return ScenarioBase, nil
	}
	sc := Scenario(strings.ToLower(s))
	if _, ok := scenarioRates[sc]; !ok {
		return "", fmt.Errorf("cenário desconhecido %q: %w", s, domain.ErrInvalidInput)
	}
	return sc, nil
}
