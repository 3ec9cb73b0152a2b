package tributos

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// RecommendationCategory tipo de ação recomendada.
type RecommendationCategory string

const (
	RecOtimizacao   RecommendationCategory = "otimizacao"
	RecMudanca      RecommendationCategory = "mudanca"
	RecEstruturacao RecommendationCategory = "estruturacao"
	RecPlanejamento RecommendationCategory = "planejamento"
)

// Recommendation ação sugerida a partir do perfil e da comparação.
type Recommendation struct {
	Category        RecommendationCategory `json:"category"`
	Priority        Priority               `json:"priority"`
	Title           string                 `json:"title"`
	Description     string                 `json:"description"`
	EstimatedImpact decimal.Decimal        `json:"estimated_impact"` // anual, em R$
	Timeframe       string                 `json:"timeframe"`
	Actions         []string               `json:"actions"`
}

var priorityRank = map[Priority]int{PriorityAlta: 3, PriorityMedia: 2, PriorityBaixa: 1}

// recommendationRule regra independente: dispara no máximo uma vez por chamada.
type recommendationRule struct {
	applies func(e *Engine, p CompanyProfile, r ComparisonResult) bool
	build   func(e *Engine, p CompanyProfile, r ComparisonResult) Recommendation
}

var (
	inputRatioLow        = decimal.NewFromInt(40)
	investmentRatioLow   = decimal.NewFromInt(5)
	stateGapThreshold    = rate("0.02") // 2 p.p. de ICMS
	consultingCost       = decimal.NewFromInt(50_000)
	creditUpliftShare    = rate("0.05")
	assetInvestmentShare = rate("0.10")
	regimeReviewShare    = rate("0.03")
	reducedRateShare     = rate("0.06")
	stateMoveShare       = rate("0.15")
)

var recommendationRules = []recommendationRule{
	{ // economia: preparar a transição
		applies: func(_ *Engine, _ CompanyProfile, r ComparisonResult) bool { return r.Savings.IsPositive() },
		build: func(_ *Engine, _ CompanyProfile, r ComparisonResult) Recommendation {
			return Recommendation{
				Category: RecOtimizacao, Priority: PriorityAlta,
				Title: "Preparação para Transição Favorável",
				Description: fmt.Sprintf("A reforma trará economia estimada de %s ao ano. "+
					"Prepare-se antecipadamente para maximizar benefícios.", brl(r.AnnualSavings)),
				EstimatedImpact: r.AnnualSavings,
				Timeframe:       "Imediato - 6 meses",
				Actions: []string{
					"Revisar contratos de fornecimento para garantir créditos fiscais",
					"Implementar sistema ERP compatível com IVA",
					"Treinar equipe contábil nos novos procedimentos",
					"Documentar processos atuais para comparação futura",
				},
			}
		},
	},
	{ // aumento: mitigar
		applies: func(_ *Engine, _ CompanyProfile, r ComparisonResult) bool { return r.Savings.IsNegative() },
		build: func(_ *Engine, _ CompanyProfile, r ComparisonResult) Recommendation {
			return Recommendation{
				Category: RecPlanejamento, Priority: PriorityAlta,
				Title: "Mitigação de Aumento de Carga Tributária",
				Description: fmt.Sprintf("A reforma pode aumentar custos em %s ao ano. "+
					"Ações urgentes são necessárias.", brl(r.AnnualSavings.Abs())),
				EstimatedImpact: r.AnnualSavings,
				Timeframe:       "Urgente - 3 meses",
				Actions: []string{
					"Avaliar reprecificação de produtos/serviços",
					"Considerar mudança de estado ou estrutura operacional",
					"Revisar cadeia de fornecedores para maximizar créditos",
					"Analisar possibilidade de exportação (alíquota zero)",
					"Consultar especialista para planejamento tributário",
				},
			}
		},
	},
	{ // poucos créditos de insumos
		applies: func(_ *Engine, p CompanyProfile, _ ComparisonResult) bool {
			return p.InputCostRatio.LessThan(inputRatioLow)
		},
		build: func(_ *Engine, p CompanyProfile, _ ComparisonResult) Recommendation {
			return Recommendation{
				Category: RecOtimizacao, Priority: PriorityMedia,
				Title: "Oportunidade: Aumentar Créditos Fiscais",
				Description: "Sua empresa tem baixo aproveitamento de créditos. " +
					"Considere aumentar compras de insumos tributados.",
				EstimatedImpact: p.MonthlyRevenue.Mul(creditUpliftShare).Mul(twelve).Round(2),
				Timeframe:       "6-12 meses",
				Actions: []string{
					"Mapear toda cadeia de fornecedores",
					"Priorizar fornecedores com nota fiscal completa",
					"Verticalizar processos quando viável",
					"Revisar política de make or buy",
				},
			}
		},
	},
	{ // pouco ativo imobilizado com aumento de carga
		applies: func(_ *Engine, p CompanyProfile, r ComparisonResult) bool {
			return p.InvestmentRatio.LessThan(investmentRatioLow) && r.Savings.IsNegative()
		},
		build: func(e *Engine, p CompanyProfile, r ComparisonResult) Recommendation {
			applied := r.PostReform.AppliedRate.Div(hundred)
			return Recommendation{
				Category: RecEstruturacao, Priority: PriorityMedia,
				Title: "Investimento em Ativo Imobilizado",
				Description: fmt.Sprintf("Investir em máquinas e equipamentos gera créditos fiscais "+
					"parcelados em %d meses.", e.params.CapitalCreditMonths),
				EstimatedImpact: p.MonthlyRevenue.Mul(assetInvestmentShare).Mul(applied).Mul(twelve).Round(2),
				Timeframe:       "12-24 meses",
				Actions: []string{
					"Planejar investimentos em modernização",
					"Aproveitar créditos de ativo imobilizado",
					"Considerar leasing para flexibilidade",
					"Alinhar investimentos com cronograma da reforma",
				},
			}
		},
	},
	{ // Simples perto do teto
		applies: func(e *Engine, p CompanyProfile, _ ComparisonResult) bool {
			return p.Regime == RegimeSimples && p.AnnualRevenue().GreaterThan(e.params.SimplesSubCeiling)
		},
		build: func(_ *Engine, p CompanyProfile, _ ComparisonResult) Recommendation {
			return Recommendation{
				Category: RecMudanca, Priority: PriorityAlta,
				Title: "Avaliar Mudança de Regime Tributário",
				Description: "Próximo ao limite do Simples Nacional. " +
					"Lucro Presumido ou Real podem ser mais vantajosos com IVA.",
				EstimatedImpact: p.MonthlyRevenue.Mul(regimeReviewShare).Mul(twelve).Round(2),
				Timeframe:       "Até 31/Janeiro",
				Actions: []string{
					"Simular carga no Lucro Presumido",
					"Calcular lucro real médio dos últimos 12 meses",
					"Considerar novo regime simplificado pós-reforma",
					"Tomar decisão até janeiro para mudança no ano seguinte",
				},
			}
		},
	},
	{ // categoria padrão: verificar alíquota reduzida
		applies: func(_ *Engine, p CompanyProfile, _ ComparisonResult) bool { return p.VATCategory == VATPadrao },
		build: func(_ *Engine, p CompanyProfile, _ ComparisonResult) Recommendation {
			return Recommendation{
				Category: RecOtimizacao, Priority: PriorityMedia,
				Title: "Verificar Elegibilidade para Alíquotas Reduzidas",
				Description: "Produtos de saúde, educação e alimentos selecionados têm alíquotas reduzidas. " +
					"Verifique sua lista de produtos.",
				EstimatedImpact: p.MonthlyRevenue.Mul(reducedRateShare).Mul(twelve).Round(2),
				Timeframe:       "3-6 meses",
				Actions: []string{
					"Revisar classificação fiscal (NCM) de todos produtos",
					"Segregar produtos com direito a alíquota reduzida",
					"Obter parecer técnico sobre enquadramento",
					"Ajustar sistema para aplicação diferenciada",
				},
			}
		},
	},
	{ // ICMS relevante e UF mais barata disponível antes do fim da transição
		applies: func(_ *Engine, p CompanyProfile, r ComparisonResult) bool {
			if !r.CurrentSystem.ICMS.IsPositive() || p.SimulationYear >= fullReformYear {
				return false
			}
			best := cheapestICMSState()
			return best != p.State && StateICMS(p.State).Sub(StateICMS(best)).GreaterThanOrEqual(stateGapThreshold)
		},
		build: func(_ *Engine, p CompanyProfile, r ComparisonResult) Recommendation {
			best := cheapestICMSState()
			gap := StateICMS(p.State).Sub(StateICMS(best)).Mul(hundred)
			return Recommendation{
				Category: RecMudanca, Priority: PriorityBaixa,
				Title: "Avaliar Mudança de Estado",
				Description: fmt.Sprintf("%s tem ICMS %s p.p. menor que %s durante a transição.",
					StateName(best), gap.StringFixed(1), StateName(p.State)),
				EstimatedImpact: r.AnnualSavings.Abs().Mul(stateMoveShare).Round(2),
				Timeframe:       "12-24 meses",
				Actions: []string{
					"Analisar custos de mudança (logística, mão de obra)",
					"Verificar incentivos fiscais estaduais",
					"Considerar filial ao invés de mudança total",
					"Consultar viabilidade operacional e mercado",
				},
			}
		},
	},
	{ // impacto material: consultoria
		applies: func(e *Engine, _ CompanyProfile, r ComparisonResult) bool {
			return r.AnnualSavings.Abs().GreaterThan(e.params.MaterialityThreshold)
		},
		build: func(_ *Engine, _ CompanyProfile, _ ComparisonResult) Recommendation {
			return Recommendation{
				Category: RecPlanejamento, Priority: PriorityAlta,
				Title: "Consultoria Tributária Especializada Recomendada",
				Description: "O impacto financeiro justifica investimento em consultoria especializada " +
					"para planejamento detalhado.",
				EstimatedImpact: consultingCost, // custo estimado da consultoria
				Timeframe:       "Imediato",
				Actions: []string{
					"Contratar consultoria especializada em reforma tributária",
					"Realizar due diligence tributária completa",
					"Desenvolver plano de transição personalizado",
					"Estabelecer governança tributária",
				},
			}
		},
	},
}

// Recommend avalia a tabela de regras em ordem e ordena o resultado por prioridade
// (alta > media > baixa), preservando a ordem das regras dentro de cada faixa.
func (e *Engine) Recommend(p CompanyProfile, r ComparisonResult) []Recommendation {
	out := make([]Recommendation, 0, len(recommendationRules))
	for _, rule := range recommendationRules {
		if rule.applies(e, p, r) {
			out = append(out, rule.build(e, p, r))
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return priorityRank[out[i].Priority] > priorityRank[out[j].Priority]
	})
	return out
}

// brl valor com duas casas e prefixo R$; a formatação localizada fica a cargo das camadas de saída.
func brl(v decimal.Decimal) string {
	return "R$ " + v.StringFixed(2)
}
