// Package moeda formata valores monetários e percentuais no padrão brasileiro
// (R$ 1.234,56 e 26,50%) para relatórios e saída da CLI.
package moeda

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

// Format valor em reais com duas casas: "R$ 1.234,56"; negativos como "-R$ 1.234,56".
func Format(v decimal.Decimal) string {
	s := "R$ " + Number(v.Abs())
	if v.Round(2).IsNegative() {
		return "-" + s
	}
	return s
}

// Number valor com separadores brasileiros e duas casas, sem símbolo.
func Number(v decimal.Decimal) string {
	return printer.Sprint(number.Decimal(v.Round(2).InexactFloat64(), number.Scale(2)))
}

// Percent percentual com duas casas: "26,50%".
func Percent(v decimal.Decimal) string {
	return Number(v) + "%"
}

var million = decimal.NewFromInt(1_000_000)

// Millions valor em milhões de reais, até duas casas: "R$ 4,8 mi", "R$ 78 mi".
func Millions(v decimal.Decimal) string {
	m := v.Div(million).Round(2).InexactFloat64()
	return "R$ " + printer.Sprint(number.Decimal(m, number.MaxFractionDigits(2))) + " mi"
}
