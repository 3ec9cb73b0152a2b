package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/araujocontabil/reforma-tributaria-api/internal/application/usecase"
)

// ReferenceHandler dados de referência: calendário, UFs e países.
type ReferenceHandler struct {
	uc *usecase.SimulationUseCase
}

func NewReferenceHandler(uc *usecase.SimulationUseCase) *ReferenceHandler {
	return &ReferenceHandler{uc: uc}
}

// Calendar godoc
// @Summary      Marcos da transição (2026-2033)
// @Tags         referencia
// @Produce      json
// @Success      200  {object}  dto.CalendarResponse
// @Router       /api/reference/calendar [get]
func (h *ReferenceHandler) Calendar(c *fiber.Ctx) error {
	return c.JSON(h.uc.Calendar())
}

// States godoc
// @Summary      ICMS atual x IBS de referência por UF
// @Tags         referencia
// @Produce      json
// @Param        scenario  query  string  false  "otimista|base|pessimista (padrão base)"
// @Success      200  {object}  dto.StatesResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reference/states [get]
func (h *ReferenceHandler) States(c *fiber.Ctx) error {
	out, err := h.uc.States(c.Query("scenario"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Countries godoc
// @Summary      Benchmarks internacionais de IVA
// @Tags         referencia
// @Produce      json
// @Success      200  {object}  dto.CountriesResponse
// @Router       /api/reference/countries [get]
func (h *ReferenceHandler) Countries(c *fiber.Ctx) error {
	return c.JSON(h.uc.Countries())
}
