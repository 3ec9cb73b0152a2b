// Package tributos implementa o motor de comparação entre o sistema tributário atual
// (Simples Nacional, Lucro Presumido, Lucro Real) e o IVA Dual da EC 132/2023 (CBS + IBS + IS),
// e as análises derivadas dessa comparação: sensibilidade, regimes, ponto de equilíbrio,
// fluxo de caixa, calendário da transição, ROI e recomendações.
//
// Todas as funções são puras: recebem o perfil e o resultado de forma explícita e devolvem
// registros novos. O pacote não guarda estado mutável e pode ser usado de forma concorrente.
package tributos

import "github.com/shopspring/decimal"

// Regime regime tributário atual da empresa.
type Regime string

const (
	RegimeSimples   Regime = "simples"
	RegimePresumido Regime = "presumido"
	RegimeReal      Regime = "real"
)

// Regimes na ordem da enumeração (também a ordem de desempate do comparador).
var Regimes = []Regime{RegimeSimples, RegimePresumido, RegimeReal}

// Sector setor de atividade; seleciona percentuais de presunção e alíquotas setoriais.
type Sector string

const (
	SectorComercio    Sector = "comercio"
	SectorIndustria   Sector = "industria"
	SectorServicos    Sector = "servicos"
	SectorTecnologia  Sector = "tecnologia"
	SectorSaude       Sector = "saude"
	SectorEducacao    Sector = "educacao"
	SectorConstrucao  Sector = "construcao"
	SectorAgronegocio Sector = "agronegocio"
	SectorExtrativo   Sector = "extrativo"
)

// State sigla da unidade federativa (UF).
type State string

// AccountingBasis regime de apuração. Nenhuma fórmula usa o campo hoje; é mantido para regras futuras.
type AccountingBasis string

const (
	BasisCaixa       AccountingBasis = "caixa"
	BasisCompetencia AccountingBasis = "competencia"
)

// VATCategory categoria do produto/serviço no IVA Dual.
type VATCategory string

const (
	VATPadrao   VATCategory = "padrao"
	VATReduzida VATCategory = "reduzida" // redução de 60% da alíquota
	VATIsenta   VATCategory = "isenta"
)

// Scenario hipótese sobre a alíquota combinada final do IVA Dual.
type Scenario string

const (
	ScenarioOtimista   Scenario = "otimista"
	ScenarioBase       Scenario = "base"
	ScenarioPessimista Scenario = "pessimista"
)

// Scenarios na ordem de exibição.
var Scenarios = []Scenario{ScenarioOtimista, ScenarioBase, ScenarioPessimista}

// CompanyProfile dados da empresa para uma simulação. Imutável durante o cálculo:
// as análises derivam cópias modificadas, nunca alteram o original.
type CompanyProfile struct {
	MonthlyRevenue  decimal.Decimal `json:"monthly_revenue"` // faturamento bruto mensal
	Regime          Regime          `json:"regime"`
	Sector          Sector          `json:"sector"`
	State           State           `json:"state"`
	Payroll         decimal.Decimal `json:"payroll"` // folha de pagamento mensal
	AccountingBasis AccountingBasis `json:"accounting_basis"`
	InputCostRatio  decimal.Decimal `json:"input_cost_ratio"` // % do faturamento em insumos creditáveis (0-100)
	InvestmentRatio decimal.Decimal `json:"investment_ratio"` // % do faturamento investido em ativo imobilizado (0-100)
	VATCategory     VATCategory     `json:"vat_category"`
	SimulationYear  int             `json:"simulation_year"` // seleciona o peso da transição
}

// AnnualRevenue faturamento anualizado (mensal × 12).
func (p CompanyProfile) AnnualRevenue() decimal.Decimal {
	return p.MonthlyRevenue.Mul(twelve)
}

// CurrentSystem tributos mensais no sistema atual, por tipo.
// No Simples Nacional apenas Simples (DAS) é preenchido; nos demais regimes os sete tributos são itemizados.
type CurrentSystem struct {
	PIS           decimal.Decimal `json:"pis"`
	COFINS        decimal.Decimal `json:"cofins"`
	ICMS          decimal.Decimal `json:"icms"`
	ISS           decimal.Decimal `json:"iss"`
	IRPJ          decimal.Decimal `json:"irpj"`
	CSLL          decimal.Decimal `json:"csll"`
	CPP           decimal.Decimal `json:"cpp"`     // contribuição previdenciária patronal sobre a folha
	Simples       decimal.Decimal `json:"simples"` // DAS unificado
	Total         decimal.Decimal `json:"total"`
	EffectiveRate decimal.Decimal `json:"effective_rate"` // Total / faturamento × 100
}

// PostReform tributos mensais no IVA Dual, líquidos de créditos.
type PostReform struct {
	AppliedRate   decimal.Decimal `json:"applied_rate"` // alíquota combinada aplicada no ano (%)
	CBS           decimal.Decimal `json:"cbs"`          // federal
	IBS           decimal.Decimal `json:"ibs"`          // estadual/municipal
	IS            decimal.Decimal `json:"is"`           // imposto seletivo
	GrossTax      decimal.Decimal `json:"gross_tax"`
	InputCredit   decimal.Decimal `json:"input_credit"`
	CapitalCredit decimal.Decimal `json:"capital_credit"` // 1/48 do crédito sobre o investimento do período
	NetTax        decimal.Decimal `json:"net_tax"`        // max(0, GrossTax - créditos)
	EffectiveRate decimal.Decimal `json:"effective_rate"`
}

// Outcome direção do impacto da reforma para a empresa.
type Outcome string

const (
	OutcomeEconomia Outcome = "economia"
	OutcomeAumento  Outcome = "aumento"
	OutcomeNeutro   Outcome = "neutro" // economia exatamente zero; diferente de "sem resultado"
)

// ComparisonResult comparação entre os dois sistemas para um perfil e um cenário.
type ComparisonResult struct {
	Scenario      Scenario        `json:"scenario"`
	CurrentSystem CurrentSystem   `json:"current_system"`
	PostReform    PostReform      `json:"post_reform"`
	Savings       decimal.Decimal `json:"savings"`        // Total atual - NetTax; positivo favorece a empresa
	AnnualSavings decimal.Decimal `json:"annual_savings"` // Savings × 12
	VariationPct  decimal.Decimal `json:"variation_pct"`  // (NetTax - Total) / Total × 100
	Outcome       Outcome         `json:"outcome"`
}
