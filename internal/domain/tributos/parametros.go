package tributos

import "github.com/shopspring/decimal"

// Parameters limites legais e operacionais do motor. Os valores padrão refletem a legislação
// vigente; a configuração da aplicação pode sobrescrevê-los.
type Parameters struct {
	SimplesCeiling       decimal.Decimal // teto anual do Simples Nacional
	SimplesSubCeiling    decimal.Decimal // sublimite estadual do Simples
	PresumidoCeiling     decimal.Decimal // teto anual do Lucro Presumido
	CapitalCreditMonths  int             // parcelas do crédito sobre ativo imobilizado
	MaterialityThreshold decimal.Decimal // impacto anual que justifica consultoria especializada
}

// DefaultParameters valores vigentes: R$ 4,8 mi, R$ 3,6 mi, R$ 78 mi, 48 meses e R$ 100 mil.
func DefaultParameters() Parameters {
	return Parameters{
		SimplesCeiling:       decimal.NewFromInt(4_800_000),
		SimplesSubCeiling:    decimal.NewFromInt(3_600_000),
		PresumidoCeiling:     decimal.NewFromInt(78_000_000),
		CapitalCreditMonths:  48,
		MaterialityThreshold: decimal.NewFromInt(100_000),
	}
}

// withDefaults completa campos zerados com os valores padrão.
func (p Parameters) withDefaults() Parameters {
	def := DefaultParameters()
	if !p.SimplesCeiling.IsPositive() {
		p.SimplesCeiling = def.SimplesCeiling
	}
	if !p.SimplesSubCeiling.IsPositive() {
		p.SimplesSubCeiling = def.SimplesSubCeiling
	}
	if !p.PresumidoCeiling.IsPositive() {
		p.PresumidoCeiling = def.PresumidoCeiling
	}
	if p.CapitalCreditMonths <= 0 {
		p.CapitalCreditMonths = def.CapitalCreditMonths
	}
	if !p.MaterialityThreshold.IsPositive() {
		p.MaterialityThreshold = def.MaterialityThreshold
	}
	return p
}

// Engine motor de cálculo. Guarda apenas parâmetros imutáveis; seguro para uso concorrente.
type Engine struct {
	params Parameters
}

// NewEngine cria o motor; campos não informados assumem DefaultParameters.
func NewEngine(params Parameters) *Engine {
	return &Engine{params: params.withDefaults()}
}

// Parameters devolve os parâmetros efetivos do motor.
func (e *Engine) Parameters() Parameters {
	return e.params
}
