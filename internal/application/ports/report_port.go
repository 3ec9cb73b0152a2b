package ports

import "github.com/araujocontabil/reforma-tributaria-api/internal/application/dto"

// ReportRenderer gera o arquivo de um relatório em um formato específico.
type ReportRenderer interface {
	Format() string
	ContentType() string
	Render(r *dto.SimulationReport) ([]byte, error)
}
