package dto

import (
	"time"

	"github.com/araujocontabil/reforma-tributaria-api/internal/domain/tributos"
)

// Formatos de exportação.
const (
	ReportFormatPDF  = "pdf"
	ReportFormatText = "txt"
)

// ReportRequest dados para o relatório exportado.
type ReportRequest struct {
	Profile     tributos.CompanyProfile `json:"profile"`
	Scenario    string                  `json:"scenario"`
	CompanyName string                  `json:"company_name"` // opcional, só aparece no cabeçalho
	Archive     bool                    `json:"archive"`      // guarda o arquivo no storage e devolve a URL
}

// SimulationReport conteúdo consolidado que os renderizadores (PDF e texto) recebem.
type SimulationReport struct {
	Title           string
	CompanyName     string
	GeneratedAt     time.Time
	Profile         tributos.CompanyProfile
	RegimeName      string
	SectorName      string
	StateName       string
	Comparison      tributos.ComparisonResult
	Regimes         []tributos.RegimeComparisonRow
	Recommendations []tributos.Recommendation
	TransitionCurve []tributos.TransitionYear
}

// RenderedReport arquivo gerado.
type RenderedReport struct {
	Format      string
	ContentType string
	Filename    string
	Content     []byte
	URL         string // preenchido quando arquivado
}

// ReportArchiveResponse resposta quando o relatório foi arquivado em vez de baixado.
type ReportArchiveResponse struct {
	Format   string `json:"format"`
	Filename string `json:"filename"`
	URL      string `json:"url"`
}
