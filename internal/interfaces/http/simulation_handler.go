package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/araujocontabil/reforma-tributaria-api/internal/application/dto"
	"github.com/araujocontabil/reforma-tributaria-api/internal/application/usecase"
)

// SimulationHandler endpoints do simulador (públicos, sem estado).
type SimulationHandler struct {
	uc *usecase.SimulationUseCase
}

// NewSimulationHandler constrói o handler.
func NewSimulationHandler(uc *usecase.SimulationUseCase) *SimulationHandler {
	return &SimulationHandler{uc: uc}
}

// Compare godoc
// @Summary      Comparar sistema atual x IVA Dual
// @Tags         simulacoes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SimulationRequest  true  "perfil da empresa e cenário (otimista|base|pessimista)"
// @Success      200   {object}  dto.ComparisonResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/simulations/compare [post]
func (h *SimulationHandler) Compare(c *fiber.Ctx) error {
	var req dto.SimulationRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Compare(req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Analyze godoc
// @Summary      Análise completa
// @Description  Comparação, sensibilidade, regimes, ponto de equilíbrio, fluxo de caixa, ROI,
//               recomendações, calendário e curva de transição numa única resposta.
// @Tags         simulacoes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AnalysisRequest  true  "perfil, cenário, custos fixos e crescimento mensal"
// @Success      200   {object}  dto.AnalysisResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/simulations/analyze [post]
func (h *SimulationHandler) Analyze(c *fiber.Ctx) error {
	var req dto.AnalysisRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Analyze(c.UserContext(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Sensitivity godoc
// @Summary      Sensibilidade (±30%) em faturamento, custos, folha ou investimento
// @Description  dimension: faturamento, custos (insumos), folha ou investimento; vazia varre as quatro (28 pontos).
// @Tags         simulacoes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SensitivityRequest  true  "dimension vazia = as quatro"
// @Success      200   {object}  dto.SensitivityResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/simulations/sensitivity [post]
func (h *SimulationHandler) Sensitivity(c *fiber.Ctx) error {
	var req dto.SensitivityRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Sensitivity(req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Regimes godoc
// @Summary      Comparar Simples, Presumido e Real
// @Tags         simulacoes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SimulationRequest  true  "perfil e cenário"
// @Success      200   {object}  dto.RegimesResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/simulations/regimes [post]
func (h *SimulationHandler) Regimes(c *fiber.Ctx) error {
	var req dto.SimulationRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Regimes(req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Breakeven godoc
// @Summary      Ponto de equilíbrio
// @Tags         simulacoes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BreakevenRequest  true  "perfil, cenário e fixed_costs"
// @Success      200   {object}  tributos.BreakevenResult
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/simulations/breakeven [post]
func (h *SimulationHandler) Breakeven(c *fiber.Ctx) error {
	var req dto.BreakevenRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Breakeven(req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CashFlow godoc
// @Summary      Projeção de fluxo de caixa (12 meses)
// @Tags         simulacoes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CashFlowRequest  true  "perfil, cenário e monthly_growth (%)"
// @Success      200   {object}  dto.CashFlowResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/simulations/cash-flow [post]
func (h *SimulationHandler) CashFlow(c *fiber.Ctx) error {
	var req dto.CashFlowRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CashFlow(req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ROI godoc
// @Summary      Retorno de investimentos em adequação
// @Tags         simulacoes
// @Produce      json
// @Param        annual_delta  query  string  true  "variação anual de tributos em R$"
// @Success      200  {object}  dto.ROIResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/simulations/roi [get]
func (h *SimulationHandler) ROI(c *fiber.Ctx) error {
	raw := c.Query("annual_delta")
	if raw == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "annual_delta é obrigatório"})
	}
	delta, err := decimal.NewFromString(raw)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "annual_delta deve ser numérico"})
	}
	return c.JSON(h.uc.ROI(delta))
}

// Recommendations godoc
// @Summary      Recomendações estratégicas
// @Tags         simulacoes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SimulationRequest  true  "perfil e cenário"
// @Success      200   {object}  dto.RecommendationsResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/simulations/recommendations [post]
func (h *SimulationHandler) Recommendations(c *fiber.Ctx) error {
	var req dto.SimulationRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Recommendations(req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ProductImpact godoc
// @Summary      Impacto da reforma na margem de cada produto
// @Tags         simulacoes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProductImpactRequest  true  "perfil, cenário e até 50 produtos"
// @Success      200   {object}  dto.ProductImpactResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/simulations/product-impact [post]
func (h *SimulationHandler) ProductImpact(c *fiber.Ctx) error {
	var req dto.ProductImpactRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	out, err := h.uc.ProductImpact(req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
