package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/araujocontabil/reforma-tributaria-api/internal/application/dto"
)

// featureChecker contrato mínimo para saber se um recurso opcional está configurado.
// *usecase.AdvisorUseCase implementa.
type featureChecker interface {
	Available() bool
}

// RequireFeature responde 503 FEATURE_DISABLED quando o recurso opcional não foi configurado
// (ex.: parecer IA sem chave), antes de ler o corpo da requisição.
func RequireFeature(name string, checker featureChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if checker == nil || !checker.Available() {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "FEATURE_DISABLED",
				Message: "o recurso '" + name + "' não está configurado neste servidor",
			})
		}
		return c.Next()
	}
}
