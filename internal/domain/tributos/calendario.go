package tributos

import (
	"math"
	"time"
)

// MilestoneCategory tipo do marco da transição.
type MilestoneCategory string

const (
	MilestoneMudanca MilestoneCategory = "mudanca" // mudança de regra
	MilestonePrazo   MilestoneCategory = "prazo"   // prazo de adequação
)

// Priority prioridade compartilhada por marcos e recomendações.
type Priority string

const (
	PriorityAlta  Priority = "alta"
	PriorityMedia Priority = "media"
	PriorityBaixa Priority = "baixa"
)

// TransitionMilestone marco do calendário da reforma.
type TransitionMilestone struct {
	Date          string            `json:"date"` // AAAA-MM-DD
	Category      MilestoneCategory `json:"category"`
	Title         string            `json:"title"`
	Description   string            `json:"description"`
	Priority      Priority          `json:"priority"`
	DaysRemaining int               `json:"days_remaining"` // negativo quando o marco já passou
}

// staleAfterDays marcos vencidos há mais tempo que isso são omitidos.
const staleAfterDays = -90

var milestones = []TransitionMilestone{
	{Date: "2026-01-01", Category: MilestoneMudanca, Priority: PriorityMedia,
		Title: "Início do Período de Teste", Description: "CBS e IBS começam em 0,1% para teste dos sistemas"},
	{Date: "2027-01-01", Category: MilestoneMudanca, Priority: PriorityAlta,
		Title: "CBS Entra em Vigor (27%)", Description: "Contribuição sobre Bens e Serviços substitui PIS/COFINS parcialmente"},
	{Date: "2027-06-30", Category: MilestonePrazo, Priority: PriorityAlta,
		Title: "Prazo: Adequação de Sistemas", Description: "Sistemas contábeis devem estar aptos para CBS"},
	{Date: "2028-01-01", Category: MilestoneMudanca, Priority: PriorityAlta,
		Title: "CBS Completo - Fim PIS/COFINS", Description: "CBS substitui totalmente PIS e COFINS"},
	{Date: "2029-01-01", Category: MilestoneMudanca, Priority: PriorityAlta,
		Title: "IBS Começa (10%)", Description: "Imposto sobre Bens e Serviços inicia substituição gradual de ICMS/ISS"},
	{Date: "2029-12-31", Category: MilestonePrazo, Priority: PriorityMedia,
		Title: "Prazo: Recadastramento Estadual", Description: "Empresas devem se recadastrar para o IBS"},
	{Date: "2030-01-01", Category: MilestoneMudanca, Priority: PriorityMedia,
		Title: "IBS 30% - Transição Acelerada", Description: "IBS aumenta para 30% da alíquota final"},
	{Date: "2031-01-01", Category: MilestoneMudanca, Priority: PriorityMedia,
		Title: "IBS 50% - Meio da Transição", Description: "IBS atinge metade da implementação"},
	{Date: "2032-01-01", Category: MilestoneMudanca, Priority: PriorityBaixa,
		Title: "IBS 90% - Quase Completo", Description: "Penúltimo ano de transição"},
	{Date: "2032-12-31", Category: MilestonePrazo, Priority: PriorityAlta,
		Title: "Prazo: Fim do ICMS/ISS", Description: "Último ano de cobrança de ICMS e ISS"},
	{Date: "2033-01-01", Category: MilestoneMudanca, Priority: PriorityAlta,
		Title: "Reforma Completa", Description: "IVA Dual (CBS + IBS) totalmente implementado"},
}

// Milestones marcos da transição relativos à data de referência, na ordem da tabela.
// DaysRemaining = ceil((data - referência) / 24h); marcos vencidos há mais de 90 dias são omitidos.
// As datas dos marcos são meia-noite UTC.
func Milestones(ref time.Time) []TransitionMilestone {
	out := make([]TransitionMilestone, 0, len(milestones))
	for _, m := range milestones {
		date, err := time.Parse("2006-01-02", m.Date)
		if err != nil {
			continue
		}
		m.DaysRemaining = int(math.Ceil(date.Sub(ref).Hours() / 24))
		if m.DaysRemaining < staleAfterDays {
			continue
		}
		out = append(out, m)
	}
	return out
}
