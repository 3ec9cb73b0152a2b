package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/araujocontabil/reforma-tributaria-api/internal/application/dto"
	"github.com/araujocontabil/reforma-tributaria-api/internal/application/usecase"
)

// AdviceHandler parecer narrativo gerado por IA sobre uma simulação.
type AdviceHandler struct {
	uc *usecase.AdvisorUseCase
}

// NewAdviceHandler constrói o handler.
func NewAdviceHandler(uc *usecase.AdvisorUseCase) *AdviceHandler {
	return &AdviceHandler{uc: uc}
}

// Advise godoc
// @Summary      Parecer IA sobre a simulação
// @Description  Os números vêm do motor de cálculo; o modelo só redige o parecer.
//               Requer autenticação e chave de IA configurada. Timeout interno de 20 s.
// @Tags         simulacoes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdviceRequest  true  "perfil, cenário e pergunta opcional"
// @Success      200   {object}  dto.AdviceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Failure      504   {object}  dto.ErrorResponse
// @Router       /api/simulations/advice [post]
func (h *AdviceHandler) Advise(c *fiber.Ctx) error {
	if GetUserID(c) == "" {
		return unauthorized(c)
	}
	var req dto.AdviceRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Advise(c.UserContext(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
