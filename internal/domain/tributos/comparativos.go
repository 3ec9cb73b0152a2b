package tributos

import (
	"sort"

	"github.com/shopspring/decimal"
)

// StateComparison ICMS atual de uma UF frente à referência do IBS pós-reforma.
type StateComparison struct {
	State         State           `json:"state"`
	Name          string          `json:"name"`
	CurrentRate   decimal.Decimal `json:"current_rate"`  // ICMS interno (%)
	ReformRate    decimal.Decimal `json:"reform_rate"`   // IBS de referência (%)
	VariationPct  decimal.Decimal `json:"variation_pct"` // (reforma - atual) / atual × 100
	Advantages    []string        `json:"advantages"`
	Disadvantages []string        `json:"disadvantages"`
}

// CompareStates compara as 27 UFs, ordenadas pela variação crescente (empate pela sigla).
// A referência do IBS é a alíquota do cenário × 40%.
func CompareStates(s Scenario) []StateComparison {
	ibs := ScenarioRate(s).Mul(ibsReferenceShare)
	out := make([]StateComparison, 0, len(States))
	for _, uf := range States {
		icms := StateICMS(uf)
		variation := zero
		if icms.IsPositive() {
			variation = ibs.Sub(icms).Div(icms).Mul(hundred)
		}
		out = append(out, StateComparison{
			State:         uf,
			Name:          StateName(uf),
			CurrentRate:   icms.Mul(hundred).Round(2),
			ReformRate:    ibs.Mul(hundred).Round(2),
			VariationPct:  variation.Round(2),
			Advantages:    stateAdvantages(uf),
			Disadvantages: stateDisadvantages(uf),
		})
	}
	// States já está em ordem alfabética; a ordenação estável preserva o desempate.
	sort.SliceStable(out, func(i, j int) bool { return out[i].VariationPct.LessThan(out[j].VariationPct) })
	return out
}

// CountryComparison referência internacional de carga tributária.
type CountryComparison struct {
	Country        string          `json:"country"`
	TaxBurden      decimal.Decimal `json:"tax_burden"` // % do PIB
	VATRate        decimal.Decimal `json:"vat_rate"`
	EaseOfBusiness int             `json:"ease_of_business"`
	OperatingCost  string          `json:"operating_cost"`
	Advantages     []string        `json:"advantages"`
	Disadvantages  []string        `json:"disadvantages"`
}

// CompareCountries lista estática ordenada pela carga tributária crescente.
func CompareCountries() []CountryComparison {
	out := make([]CountryComparison, 0, len(countries))
	for _, c := range countries {
		out = append(out, CountryComparison{
			Country:        c.Country,
			TaxBurden:      c.TaxBurden,
			VATRate:        c.VATRate,
			EaseOfBusiness: c.EaseOfBusiness,
			OperatingCost:  c.OperatingCost,
			Advantages:     append([]string(nil), c.Advantages...),
			Disadvantages:  append([]string(nil), c.Disadvantages...),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].TaxBurden.LessThan(out[j].TaxBurden) })
	return out
}
