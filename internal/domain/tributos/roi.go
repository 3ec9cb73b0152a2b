package tributos

import "github.com/shopspring/decimal"

// ROIOption retorno estimado de um tipo de investimento em adequação.
type ROIOption struct {
	Type              string          `json:"type"`
	Investment        decimal.Decimal `json:"investment"`
	AnnualRecoverable decimal.Decimal `json:"annual_recoverable"` // fração do delta anual recuperável
	PaybackMonths     int64           `json:"payback_months"`
	ROIPercent        int64           `json:"roi_percent"`
	Recommended       bool            `json:"recommended"`
}

type roiArchetype struct {
	Type        string
	Investment  decimal.Decimal
	Recoverable decimal.Decimal
}

var roiArchetypes = []roiArchetype{
	{Type: "software", Investment: decimal.NewFromInt(15_000), Recoverable: rate("0.15")},
	{Type: "consultoria", Investment: decimal.NewFromInt(50_000), Recoverable: rate("0.25")},
	{Type: "treinamento", Investment: decimal.NewFromInt(8_000), Recoverable: rate("0.08")},
	{Type: "reestruturacao", Investment: decimal.NewFromInt(120_000), Recoverable: rate("0.40")},
}

var (
	maxPaybackMonths   = decimal.NewFromInt(999)
	recommendedPayback = decimal.NewFromInt(18)
	recommendedROI     = decimal.NewFromInt(30)
)

// ROIOptions avalia os quatro arquétipos para um delta tributário anual.
// Recomendado quando payback ≤ 18 meses e ROI > 30% (antes do arredondamento).
func ROIOptions(annualTaxDelta decimal.Decimal) []ROIOption {
	out := make([]ROIOption, 0, len(roiArchetypes))
	for _, a := range roiArchetypes {
		recoverable := annualTaxDelta.Mul(a.Recoverable)

		payback := maxPaybackMonths
		if recoverable.IsPositive() {
			payback = decimal.Min(a.Investment.Div(recoverable).Mul(twelve), maxPaybackMonths)
		}
		roi := recoverable.Sub(a.Investment).Div(a.Investment).Mul(hundred)

		out = append(out, ROIOption{
			Type:              a.Type,
			Investment:        a.Investment,
			AnnualRecoverable: recoverable.Round(2),
			PaybackMonths:     payback.Round(0).IntPart(),
			ROIPercent:        roi.Round(0).IntPart(),
			Recommended:       payback.LessThanOrEqual(recommendedPayback) && roi.GreaterThan(recommendedROI),
		})
	}
	return out
}
