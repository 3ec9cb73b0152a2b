// Package storage arquiva os relatórios exportados no disco local ou em um bucket S3
// (AWS, MinIO, R2).
package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/araujocontabil/reforma-tributaria-api/internal/application/ports"
	"github.com/araujocontabil/reforma-tributaria-api/pkg/config"
)

// New escolhe a implementação pelo driver configurado. Driver "none" devolve nil:
// o arquivamento fica desabilitado e o relatório só é baixado.
func New(ctx context.Context, cfg config.StorageConfig) (ports.ReportStorage, error) {
	switch cfg.Driver {
	case "", "none":
		return nil, nil
	case "local":
		return NewLocal(cfg.LocalDir, cfg.LocalBaseURL), nil
	case "s3":
		return NewS3(ctx, S3Config{
			Endpoint:       cfg.S3Endpoint,
			Region:         cfg.S3Region,
			AccessKey:      cfg.S3AccessKey,
			SecretKey:      cfg.S3SecretKey,
			ForcePathStyle: cfg.S3Endpoint != "",
			Bucket:         cfg.S3Bucket,
			PresignTTL:     time.Duration(cfg.S3PresignTTL) * time.Minute,
		})
	default:
		return nil, fmt.Errorf("storage: driver desconhecido %q", cfg.Driver)
	}
}
