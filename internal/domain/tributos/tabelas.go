package tributos

import (
	"sort"

	"github.com/shopspring/decimal"
)

// ── Constantes numéricas ──

var (
	zero    = decimal.Zero
	one     = decimal.NewFromInt(1)
	twelve  = decimal.NewFromInt(12)
	hundred = decimal.NewFromInt(100)
)

func rate(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// ── Alíquotas fixas do sistema atual ──

var (
	pisCumulativo       = rate("0.0065") // Lucro Presumido
	cofinsCumulativo    = rate("0.03")
	pisNaoCumulativo    = rate("0.0165") // Lucro Real
	cofinsNaoCumulativo = rate("0.076")
	aliquotaIRPJ        = rate("0.15")
	aliquotaCSLL        = rate("0.09")
	aliquotaCPP         = rate("0.20") // sobre a folha
)

// ── IVA Dual ──

var scenarioRates = map[Scenario]decimal.Decimal{
	ScenarioOtimista:   rate("0.25"),
	ScenarioBase:       rate("0.265"),
	ScenarioPessimista: rate("0.28"),
}

var categoryFactors = map[VATCategory]decimal.Decimal{
	VATPadrao:   one,
	VATReduzida: rate("0.4"),
	VATIsenta:   zero,
}

// cbsShare parcela federal do IVA bruto; o restante é IBS + IS.
var cbsShare = rate("0.6")

// ibsReferenceShare parcela do IBS na alíquota combinada, usada no comparativo entre estados.
var ibsReferenceShare = rate("0.4")

const (
	firstTransitionYear = 2026
	fullReformYear      = 2033
)

// transitionWeights fração da alíquota final do IVA Dual cobrada em cada ano da transição.
var transitionWeights = map[int]decimal.Decimal{
	2026: rate("0.04"),
	2027: rate("0.30"),
	2028: rate("0.50"),
	2029: rate("0.70"),
	2030: rate("0.80"),
	2031: rate("0.90"),
	2032: rate("0.95"),
}

// ScenarioRate alíquota combinada final (CBS + IBS) do cenário, como fração.
func ScenarioRate(s Scenario) decimal.Decimal {
	return scenarioRates[s]
}

// TransitionWeight peso da transição para o ano: 0 antes de 2026, 1 a partir de 2033.
func TransitionWeight(year int) decimal.Decimal {
	switch {
	case year < firstTransitionYear:
		return zero
	case year >= fullReformYear:
		return one
	default:
		return transitionWeights[year]
	}
}

// appliedRate alíquota efetivamente aplicada no ano: cenário × categoria × transição.
func appliedRate(s Scenario, c VATCategory, year int) decimal.Decimal {
	return scenarioRates[s].Mul(categoryFactors[c]).Mul(TransitionWeight(year))
}

// ── Tabela setorial ──

type sectorRates struct {
	DisplayName      string
	Simples          decimal.Decimal // alíquota efetiva média do DAS
	PresuncaoIRPJ    decimal.Decimal
	PresuncaoCSLL    decimal.Decimal
	MargemReal       decimal.Decimal // margem de lucro estimada no Lucro Real
	FatorICMS        decimal.Decimal // parcela do faturamento sujeita a ICMS líquido (setores de bens)
	ISS              decimal.Decimal // alíquota de ISS (setores de serviços)
	CreditoPisCofins decimal.Decimal // parcela creditável no regime não cumulativo
	Seletivo         decimal.Decimal // parcela do IVA bruto destinada ao Imposto Seletivo
}

var sectors = map[Sector]sectorRates{
	SectorComercio: {
		DisplayName: "Comércio", Simples: rate("0.08"), PresuncaoIRPJ: rate("0.08"), PresuncaoCSLL: rate("0.12"),
		MargemReal: rate("0.06"), FatorICMS: rate("0.40"), ISS: zero, CreditoPisCofins: rate("0.55"), Seletivo: zero,
	},
	SectorIndustria: {
		DisplayName: "Indústria", Simples: rate("0.09"), PresuncaoIRPJ: rate("0.08"), PresuncaoCSLL: rate("0.12"),
		MargemReal: rate("0.08"), FatorICMS: rate("0.45"), ISS: zero, CreditoPisCofins: rate("0.50"), Seletivo: zero,
	},
	SectorServicos: {
		DisplayName: "Serviços", Simples: rate("0.135"), PresuncaoIRPJ: rate("0.32"), PresuncaoCSLL: rate("0.32"),
		MargemReal: rate("0.18"), FatorICMS: zero, ISS: rate("0.05"), CreditoPisCofins: rate("0.20"), Seletivo: zero,
	},
	SectorTecnologia: {
		DisplayName: "Tecnologia", Simples: rate("0.155"), PresuncaoIRPJ: rate("0.32"), PresuncaoCSLL: rate("0.32"),
		MargemReal: rate("0.20"), FatorICMS: zero, ISS: rate("0.03"), CreditoPisCofins: rate("0.15"), Seletivo: zero,
	},
	SectorSaude: {
		DisplayName: "Saúde", Simples: rate("0.135"), PresuncaoIRPJ: rate("0.08"), PresuncaoCSLL: rate("0.12"),
		MargemReal: rate("0.15"), FatorICMS: zero, ISS: rate("0.03"), CreditoPisCofins: rate("0.25"), Seletivo: zero,
	},
	SectorEducacao: {
		DisplayName: "Educação", Simples: rate("0.12"), PresuncaoIRPJ: rate("0.32"), PresuncaoCSLL: rate("0.32"),
		MargemReal: rate("0.15"), FatorICMS: zero, ISS: rate("0.03"), CreditoPisCofins: rate("0.15"), Seletivo: zero,
	},
	SectorConstrucao: {
		DisplayName: "Construção", Simples: rate("0.115"), PresuncaoIRPJ: rate("0.08"), PresuncaoCSLL: rate("0.12"),
		MargemReal: rate("0.08"), FatorICMS: zero, ISS: rate("0.03"), CreditoPisCofins: rate("0.40"), Seletivo: zero,
	},
	SectorAgronegocio: {
		DisplayName: "Agronegócio", Simples: rate("0.07"), PresuncaoIRPJ: rate("0.08"), PresuncaoCSLL: rate("0.12"),
		MargemReal: rate("0.07"), FatorICMS: rate("0.30"), ISS: zero, CreditoPisCofins: rate("0.50"), Seletivo: zero,
	},
	SectorExtrativo: {
		DisplayName: "Extrativo", Simples: rate("0.09"), PresuncaoIRPJ: rate("0.08"), PresuncaoCSLL: rate("0.12"),
		MargemReal: rate("0.10"), FatorICMS: rate("0.50"), ISS: zero, CreditoPisCofins: rate("0.40"), Seletivo: rate("0.02"),
	},
}

// Sectors na ordem da enumeração.
var Sectors = []Sector{
	SectorComercio, SectorIndustria, SectorServicos, SectorTecnologia, SectorSaude,
	SectorEducacao, SectorConstrucao, SectorAgronegocio, SectorExtrativo,
}

// SectorName nome de exibição do setor.
func SectorName(s Sector) string { return sectors[s].DisplayName }

// ── Estados ──

type stateInfo struct {
	Name          string
	ICMS          decimal.Decimal // alíquota interna modal
	Advantages    []string
	Disadvantages []string
}

var states = map[State]stateInfo{
	"AC": {Name: "Acre", ICMS: rate("0.19")},
	"AL": {Name: "Alagoas", ICMS: rate("0.19")},
	"AP": {Name: "Amapá", ICMS: rate("0.18")},
	"AM": {Name: "Amazonas", ICMS: rate("0.20")},
	"BA": {Name: "Bahia", ICMS: rate("0.205"),
		Disadvantages: []string{"Infraestrutura limitada", "ICMS alto", "Distância dos principais mercados"}},
	"CE": {Name: "Ceará", ICMS: rate("0.20")},
	"DF": {Name: "Distrito Federal", ICMS: rate("0.20")},
	"ES": {Name: "Espírito Santo", ICMS: rate("0.17"),
		Advantages: []string{"Portos eficientes", "Menor burocracia", "Incentivos setoriais"}},
	"GO": {Name: "Goiás", ICMS: rate("0.19"),
		Advantages: []string{"Posição central", "Incentivos fiscais generosos", "Custos reduzidos"}},
	"MA": {Name: "Maranhão", ICMS: rate("0.23"),
		Disadvantages: []string{"Infraestrutura precária", "Mercado limitado", "Logística difícil"}},
	"MT": {Name: "Mato Grosso", ICMS: rate("0.17")},
	"MS": {Name: "Mato Grosso do Sul", ICMS: rate("0.17")},
	"MG": {Name: "Minas Gerais", ICMS: rate("0.18")},
	"PA": {Name: "Pará", ICMS: rate("0.19")},
	"PB": {Name: "Paraíba", ICMS: rate("0.20")},
	"PR": {Name: "Paraná", ICMS: rate("0.195"),
		Advantages: []string{"Logística favorável", "Custos operacionais moderados", "Incentivos industriais"}},
	"PE": {Name: "Pernambuco", ICMS: rate("0.205")},
	"PI": {Name: "Piauí", ICMS: rate("0.225")},
	"RJ": {Name: "Rio de Janeiro", ICMS: rate("0.22"),
		Disadvantages: []string{"ICMS elevado", "Situação fiscal crítica", "Segurança"}},
	"RN": {Name: "Rio Grande do Norte", ICMS: rate("0.20")},
	"RS": {Name: "Rio Grande do Sul", ICMS: rate("0.17")},
	"RO": {Name: "Rondônia", ICMS: rate("0.195")},
	"RR": {Name: "Roraima", ICMS: rate("0.20")},
	"SC": {Name: "Santa Catarina", ICMS: rate("0.17"),
		Advantages: []string{"Menor ICMS", "Qualidade de vida", "Incentivos fiscais"}},
	"SP": {Name: "São Paulo", ICMS: rate("0.18"),
		Advantages: []string{"Maior mercado consumidor", "Infraestrutura desenvolvida", "Ecossistema de negócios"}},
	"SE": {Name: "Sergipe", ICMS: rate("0.19")},
	"TO": {Name: "Tocantins", ICMS: rate("0.20")},
}

var (
	defaultStateAdvantages    = []string{"Analisar localmente"}
	defaultStateDisadvantages = []string{"Avaliar caso a caso"}
)

// States siglas das 27 UFs em ordem alfabética.
var States = func() []State {
	out := make([]State, 0, len(states))
	for uf := range states {
		out = append(out, uf)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}()

// StateName nome da UF; vazio quando a sigla é desconhecida.
func StateName(uf State) string { return states[uf].Name }

// StateICMS alíquota interna modal de ICMS da UF, como fração.
func StateICMS(uf State) decimal.Decimal { return states[uf].ICMS }

func stateAdvantages(uf State) []string {
	if v := states[uf].Advantages; len(v) > 0 {
		return append([]string(nil), v...)
	}
	return append([]string(nil), defaultStateAdvantages...)
}

func stateDisadvantages(uf State) []string {
	if v := states[uf].Disadvantages; len(v) > 0 {
		return append([]string(nil), v...)
	}
	return append([]string(nil), defaultStateDisadvantages...)
}

// cheapestICMSState UF de menor ICMS; empate resolvido pela sigla.
func cheapestICMSState() State {
	best := States[0]
	for _, uf := range States[1:] {
		if states[uf].ICMS.LessThan(states[best].ICMS) {
			best = uf
		}
	}
	return best
}

// ── Regimes ──

var regimeNames = map[Regime]string{
	RegimeSimples:   "Simples Nacional",
	RegimePresumido: "Lucro Presumido",
	RegimeReal:      "Lucro Real",
}

// RegimeName nome de exibição do regime.
func RegimeName(r Regime) string { return regimeNames[r] }

// ── Países ──

type countryInfo struct {
	Country        string
	TaxBurden      decimal.Decimal // carga tributária sobre o PIB (%)
	VATRate        decimal.Decimal // alíquota padrão do IVA (%)
	EaseOfBusiness int             // posição no ranking de facilidade de negócios
	OperatingCost  string
	Advantages     []string
	Disadvantages  []string
}

var countries = []countryInfo{
	{
		Country: "Portugal", TaxBurden: rate("24.6"), VATRate: rate("23"), EaseOfBusiness: 39, OperatingCost: "Médio",
		Advantages: []string{
			"Idioma português facilita operação",
			"Porta de entrada para União Europeia",
			"Regime fiscal favorável para startups",
			"Acordo de dupla tributação com Brasil",
		},
		Disadvantages: []string{"Mercado interno pequeno", "Custos trabalhistas elevados", "Burocracia ainda presente"},
	},
	{
		Country: "Uruguai", TaxBurden: rate("18.5"), VATRate: rate("22"), EaseOfBusiness: 101, OperatingCost: "Médio-Baixo",
		Advantages: []string{
			"Proximidade geográfica",
			"Zona franca com isenções",
			"Estabilidade política e jurídica",
			"Mercosul facilita comércio",
		},
		Disadvantages: []string{"Mercado interno muito pequeno", "Custos de importação elevados", "Infraestrutura limitada"},
	},
	{
		Country: "Emirados Árabes", TaxBurden: rate("5.5"), VATRate: rate("5"), EaseOfBusiness: 16, OperatingCost: "Alto",
		Advantages: []string{
			"Carga tributária mínima",
			"Zona franca 100% isenta",
			"Hub logístico global",
			"Infraestrutura de primeira",
		},
		Disadvantages: []string{
			"Custos operacionais muito altos",
			"Distância do Brasil",
			"Diferenças culturais significativas",
			"Custos de vida elevados",
		},
	},
	{
		Country: "Paraguai", TaxBurden: rate("15.2"), VATRate: rate("10"), EaseOfBusiness: 125, OperatingCost: "Baixo",
		Advantages: []string{
			"Carga tributária muito baixa",
			"IVA de apenas 10%",
			"Custos operacionais reduzidos",
			"Mercosul",
		},
		Disadvantages: []string{
			"Infraestrutura precária",
			"Instabilidade política",
			"Mercado interno limitado",
			"Percepção internacional negativa",
		},
	},
	{
		// sem IVA federal; apenas sales tax estaduais
		Country: "Estados Unidos", TaxBurden: rate("26.5"), VATRate: zero, EaseOfBusiness: 6, OperatingCost: "Alto",
		Advantages: []string{
			"Maior mercado consumidor do mundo",
			"Ambiente favorável para inovação",
			"Acesso a investimentos",
			"Sem IVA federal (apenas sales tax estaduais)",
		},
		Disadvantages: []string{
			"Complexidade regulatória",
			"Custos operacionais elevados",
			"Visto e imigração complexos",
			"Competição intensa",
		},
	},
}
