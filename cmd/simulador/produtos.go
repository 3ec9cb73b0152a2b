package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/araujocontabil/reforma-tributaria-api/internal/domain/tributos"
)

// openProducts abre a planilha de produtos decodificando o charset informado.
// Planilhas exportadas pelo Excel em pt-BR costumam vir em Windows-1252/ISO-8859-1.
func openProducts(path, encoding string) (io.ReadCloser, io.Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("abrir %s: %w", path, err)
	}
	r, err := decodeCharset(f, encoding)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return f, r, nil
}

func decodeCharset(input io.Reader, encoding string) (io.Reader, error) {
	switch strings.ToLower(encoding) {
	case "", "utf8", "utf-8":
		return input, nil
	case "latin1", "iso-8859-1", "iso8859-1":
		return transform.NewReader(input, charmap.ISO8859_1.NewDecoder()), nil
	case "windows-1252", "cp1252":
		return transform.NewReader(input, charmap.Windows1252.NewDecoder()), nil
	default:
		return nil, fmt.Errorf("encoding desconhecido %q (utf8, latin1, cp1252)", encoding)
	}
}

// parseProducts lê linhas "nome;margem;participação". Aceita vírgula decimal e cabeçalho opcional.
func parseProducts(r io.Reader) ([]tributos.Product, error) {
	reader := csv.NewReader(r)
	reader.Comma = ';'
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	var out []tributos.Product
	line := 0
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv: %w", err)
		}
		line++
		if len(rec) == 1 && strings.TrimSpace(rec[0]) == "" {
			continue
		}
		if len(rec) < 3 {
			return nil, fmt.Errorf("linha %d: esperado nome;margem;participação", line)
		}
		margin, errM := parseNumber(rec[1])
		share, errS := parseNumber(rec[2])
		if errM != nil || errS != nil {
			if line == 1 {
				continue // cabeçalho
			}
			return nil, fmt.Errorf("linha %d: margem ou participação inválida", line)
		}
		out = append(out, tributos.Product{
			Name:          strings.TrimSpace(rec[0]),
			CurrentMargin: margin,
			Share:         share,
		})
	}
	return out, nil
}

// parseNumber aceita "12,5", "12.5", "1.234,56" e "12,5%".
func parseNumber(s string) (decimal.Decimal, error) {
	s = strings.TrimSuffix(strings.TrimSpace(s), "%")
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	return decimal.NewFromString(strings.TrimSpace(s))
}
