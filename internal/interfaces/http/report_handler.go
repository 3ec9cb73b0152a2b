package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/araujocontabil/reforma-tributaria-api/internal/application/dto"
	"github.com/araujocontabil/reforma-tributaria-api/internal/application/usecase"
)

// ReportHandler exportação do relatório da simulação.
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler constrói o handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// PDF godoc
// @Summary      Relatório da simulação em PDF
// @Description  Com archive=true grava no storage configurado e devolve a URL em JSON.
// @Tags         relatorios
// @Accept       json
// @Produce      application/pdf
// @Param        body  body  dto.ReportRequest  true  "perfil, cenário, company_name, archive"
// @Success      200   {file}    file
// @Success      201   {object}  dto.ReportArchiveResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/reports/pdf [post]
func (h *ReportHandler) PDF(c *fiber.Ctx) error {
	return h.generate(c, dto.ReportFormatPDF)
}

// Text godoc
// @Summary      Relatório da simulação em texto
// @Tags         relatorios
// @Accept       json
// @Produce      text/plain
// @Param        body  body  dto.ReportRequest  true  "perfil, cenário, company_name, archive"
// @Success      200   {string}  string
// @Success      201   {object}  dto.ReportArchiveResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/reports/text [post]
func (h *ReportHandler) Text(c *fiber.Ctx) error {
	return h.generate(c, dto.ReportFormatText)
}

func (h *ReportHandler) generate(c *fiber.Ctx, format string) error {
	var req dto.ReportRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Generate(c.UserContext(), req, format)
	if err != nil {
		return respondError(c, err)
	}
	if out.URL != "" {
		return c.Status(fiber.StatusCreated).JSON(dto.ReportArchiveResponse{
			Format:   out.Format,
			Filename: out.Filename,
			URL:      out.URL,
		})
	}
	c.Set(fiber.HeaderContentType, out.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, out.Filename))
	return c.Send(out.Content)
}
