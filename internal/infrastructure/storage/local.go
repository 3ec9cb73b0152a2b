package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/araujocontabil/reforma-tributaria-api/internal/application/ports"
)

var _ ports.ReportStorage = (*Local)(nil)

// Local grava no sistema de arquivos e serve pelo prefixo de URL (desenvolvimento).
type Local struct {
	basePath  string // raiz no disco, ex. "./relatorios"
	urlPrefix string // prefixo HTTP, ex. "/relatorios"
}

// NewLocal cria o storage local.
func NewLocal(basePath, urlPrefix string) *Local {
	return &Local{basePath: basePath, urlPrefix: strings.TrimRight(urlPrefix, "/")}
}

// Put grava o conteúdo em basePath/key e devolve urlPrefix/key.
func (l *Local) Put(_ context.Context, key string, body io.Reader, _ string) (string, error) {
	dest, err := l.path(key)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return "", fmt.Errorf("criar diretório para %s: %w", key, err)
	}

	f, err := os.Create(dest)
	if err != nil {
		return "", fmt.Errorf("criar arquivo %s: %w", key, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, body); err != nil {
		os.Remove(dest)
		return "", fmt.Errorf("gravar arquivo %s: %w", key, err)
	}
	return l.urlPrefix + "/" + key, nil
}

// Delete remove o arquivo; inexistente não é erro.
func (l *Local) Delete(_ context.Context, key string) error {
	path, err := l.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remover arquivo %s: %w", key, err)
	}
	return nil
}

// path resolve key dentro de basePath; chaves que escapam da raiz são rejeitadas.
func (l *Local) path(key string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(key))
	if clean == "." || filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("storage: chave inválida %q", key)
	}
	return filepath.Join(l.basePath, clean), nil
}
