package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SimulationSnapshot simulação salva no histórico do usuário.
// Profile e Result guardam o JSON do perfil e da comparação; os campos de resumo
// permitem listar o histórico sem decodificar o snapshot.
type SimulationSnapshot struct {
	ID            string
	UserID        string
	Name          string
	Scenario      string
	Profile       []byte // JSON de tributos.CompanyProfile
	Result        []byte // JSON de tributos.ComparisonResult
	Savings       decimal.Decimal
	AnnualSavings decimal.Decimal
	Outcome       string
	CreatedAt     time.Time
}
