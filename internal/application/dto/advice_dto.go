package dto

import "github.com/araujocontabil/reforma-tributaria-api/internal/domain/tributos"

// AdviceRequest pedido de parecer narrativo sobre uma simulação.
type AdviceRequest struct {
	Profile  tributos.CompanyProfile `json:"profile"`
	Scenario string                  `json:"scenario"`
	Question string                  `json:"question"` // opcional: dúvida específica do usuário
}

// AdvicePrompt o que o adaptador de LLM recebe: números já calculados pelo motor.
type AdvicePrompt struct {
	Profile         tributos.CompanyProfile
	RegimeName      string
	SectorName      string
	StateName       string
	Comparison      tributos.ComparisonResult
	Recommendations []tributos.Recommendation
	Question        string
}

// AdviceOpinion parecer devolvido pelo modelo.
type AdviceOpinion struct {
	Summary   string   `json:"summary"`
	Risks     []string `json:"risks"`
	NextSteps []string `json:"next_steps"`
}

// AdviceResponse parecer + números em que ele se baseia.
type AdviceResponse struct {
	Opinion         AdviceOpinion             `json:"opinion"`
	Comparison      tributos.ComparisonResult `json:"comparison"`
	Recommendations []tributos.Recommendation `json:"recommendations"`
}
