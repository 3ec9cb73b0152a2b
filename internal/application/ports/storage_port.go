package ports

import (
	"context"
	"io"
)

// ReportStorage arquivo de relatórios exportados (disco local ou bucket S3).
type ReportStorage interface {
	// Put grava o conteúdo sob key e devolve a URL de acesso.
	Put(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}
