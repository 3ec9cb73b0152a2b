package ports

import (
	"context"

	"github.com/araujocontabil/reforma-tributaria-api/internal/application/dto"
)

// LLMService porta de saída para o parecer narrativo gerado por IA.
// O adaptador (Anthropic, mock) recebe apenas números já calculados pelo motor;
// o modelo redige, não calcula.
type LLMService interface {
	// GenerateOpinion redige o parecer. O contexto deve carregar timeout.
	GenerateOpinion(ctx context.Context, in dto.AdvicePrompt) (*dto.AdviceOpinion, error)
}
