package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/araujocontabil/reforma-tributaria-api/internal/application/dto"
	"github.com/araujocontabil/reforma-tributaria-api/internal/application/usecase"
)

// HistoryHandler histórico de simulações do usuário autenticado.
type HistoryHandler struct {
	uc *usecase.HistoryUseCase
}

// NewHistoryHandler constrói o handler.
func NewHistoryHandler(uc *usecase.HistoryUseCase) *HistoryHandler {
	return &HistoryHandler{uc: uc}
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
}

// Save godoc
// @Summary      Salvar simulação no histórico
// @Description  Recalcula a comparação e grava; mantém só as N mais recentes por usuário.
// @Tags         historico
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaveSimulationRequest  true  "name, profile, scenario"
// @Success      201   {object}  dto.SnapshotDetail
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/history [post]
func (h *HistoryHandler) Save(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return unauthorized(c)
	}
	var req dto.SaveSimulationRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Save(c.UserContext(), userID, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar histórico
// @Tags         historico
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "máximo de itens"
// @Success      200  {object}  dto.HistoryListResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/history [get]
func (h *HistoryHandler) List(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return unauthorized(c)
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: "parâmetros de consulta inválidos"})
	}
	out, err := h.uc.List(c.UserContext(), userID, page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Latest godoc
// @Summary      Última simulação salva
// @Description  status "sem_resultado" quando o histórico está vazio.
// @Tags         historico
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.LatestResponse
// @Router       /api/history/latest [get]
func (h *HistoryHandler) Latest(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return unauthorized(c)
	}
	out, err := h.uc.Latest(c.UserContext(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Detalhe de uma simulação salva
// @Tags         historico
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "UUID"
// @Success      200  {object}  dto.SnapshotDetail
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      410  {object}  dto.ErrorResponse
// @Router       /api/history/{id} [get]
func (h *HistoryHandler) Get(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return unauthorized(c)
	}
	out, err := h.uc.Get(c.UserContext(), userID, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Excluir simulação salva
// @Tags         historico
// @Security     Bearer
// @Param        id   path  string  true  "UUID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/history/{id} [delete]
func (h *HistoryHandler) Delete(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return unauthorized(c)
	}
	if err := h.uc.Delete(c.UserContext(), userID, c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
