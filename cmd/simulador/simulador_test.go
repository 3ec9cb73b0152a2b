package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/araujocontabil/reforma-tributaria-api/internal/application/dto"
	"github.com/araujocontabil/reforma-tributaria-api/internal/application/usecase"
	"github.com/araujocontabil/reforma-tributaria-api/internal/domain/tributos"
	"github.com/araujocontabil/reforma-tributaria-api/internal/infrastructure/export"
	"github.com/araujocontabil/reforma-tributaria-api/pkg/logger"
)

const perfilYAML = `faturamento: 100000
regime: presumido
setor: comercio
uf: sp
folha: 20000
insumos: 50
investimento: 10
cenario: pessimista
`

func testApp() *app {
	engine := tributos.NewEngine(tributos.DefaultParameters())
	text := export.NewTextReport()
	return &app{
		sim:    usecase.NewSimulationUseCase(engine, logger.Nop(), nil),
		report: usecase.NewReportUseCase(engine, nil, logger.Nop(), text),
		text:   text,
	}
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd(testApp())
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestLoadProfileFile(t *testing.T) {
	f, err := loadProfileFile(writeFile(t, "perfil.yaml", []byte(perfilYAML)))
	require.NoError(t, err)

	p := f.toProfile()
	assert.Equal(t, "100000", p.MonthlyRevenue.String())
	assert.Equal(t, tributos.RegimePresumido, p.Regime)
	assert.Equal(t, tributos.State("sp"), p.State, "normalização fica com o caso de uso")
	assert.Equal(t, "pessimista", f.Cenario)
}

func TestLoadProfileFile_CampoDesconhecido(t *testing.T) {
	_, err := loadProfileFile(writeFile(t, "perfil.yaml", []byte("faturamento: 1000\nreceita: 5\n")))
	assert.Error(t, err)
}

func TestComparar_JSONComFlagsSobrescrevendoArquivo(t *testing.T) {
	path := writeFile(t, "perfil.yaml", []byte(perfilYAML))
	out, err := run(t, "comparar", "--perfil", path, "--cenario", "otimista", "--faturamento", "200000", "--json")
	require.NoError(t, err)

	var resp dto.ComparisonResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, tributos.ScenarioOtimista, resp.Result.Scenario)
	assert.Equal(t, "200000", resp.Profile.MonthlyRevenue.String())
	assert.Equal(t, tributos.State("SP"), resp.Profile.State)
}

func TestComparar_Texto(t *testing.T) {
	path := writeFile(t, "perfil.yaml", []byte(perfilYAML))
	out, err := run(t, "comparar", "--perfil", path, "--empresa", "Loja Exemplo")
	require.NoError(t, err)
	assert.Contains(t, out, "Loja Exemplo")
	assert.Contains(t, out, "Economia anual:")
}

func TestComparar_SemPerfil(t *testing.T) {
	_, err := run(t, "comparar")
	assert.ErrorContains(t, err, "--perfil")
}

func TestAnalisar_Tabelas(t *testing.T) {
	out, err := run(t, "analisar", "--faturamento", "100000", "--regime", "real", "--setor", "industria", "--uf", "MG", "--custos-fixos", "30000")
	require.NoError(t, err)
	assert.Contains(t, out, "Ponto de equilíbrio atual")
	assert.Contains(t, out, "Lucro Real")
}

func TestImpacto_CSVLatin1(t *testing.T) {
	csvUTF8 := "produto;margem;participação\nPão francês;12,5;60\nCafé;8%;40\n"
	latin1, err := charmap.ISO8859_1.NewEncoder().String(csvUTF8)
	require.NoError(t, err)
	csvPath := writeFile(t, "produtos.csv", []byte(latin1))
	perfil := writeFile(t, "perfil.yaml", []byte(perfilYAML))

	out, err := run(t, "impacto", "--perfil", perfil, "--produtos", csvPath, "--encoding", "latin1", "--json")
	require.NoError(t, err)

	var resp dto.ProductImpactResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.Len(t, resp.Products, 2)
	assert.Equal(t, "Pão francês", resp.Products[0].Product)
	assert.Equal(t, "12.5", resp.Products[0].CurrentMargin.String())
	assert.Equal(t, "Café", resp.Products[1].Product)
}

func TestParseProducts_LinhaInvalida(t *testing.T) {
	_, err := parseProducts(strings.NewReader("A;10;50\nB;dez;50\n"))
	assert.ErrorContains(t, err, "linha 2")

	_, err = parseProducts(strings.NewReader("A;10\n"))
	assert.Error(t, err)
}

func TestParseNumber(t *testing.T) {
	cases := map[string]string{
		"12,5":     "12.5",
		"12.5":     "12.5",
		"1.234,56": "1234.56",
		" 30% ":    "30",
		"-4,2":     "-4.2",
	}
	for in, want := range cases {
		got, err := parseNumber(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got.String(), in)
	}
}

func TestDecodeCharset_Desconhecido(t *testing.T) {
	_, err := decodeCharset(strings.NewReader(""), "ebcdic")
	assert.Error(t, err)
}

func TestExportar_Texto(t *testing.T) {
	perfil := writeFile(t, "perfil.yaml", []byte(perfilYAML))
	dest := filepath.Join(t.TempDir(), "rel.txt")

	out, err := run(t, "exportar", "--perfil", perfil, "--formato", "txt", "--saida", dest)
	require.NoError(t, err)
	assert.Contains(t, out, dest)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Contains(t, string(data), "SIMULAÇÃO DA REFORMA TRIBUTÁRIA")
}

func TestFlagAno_AjudaAcompanhaValidacao(t *testing.T) {
	cmd := newCompareCmd(testApp())
	usage := cmd.Flags().Lookup("ano").Usage
	assert.Contains(t, usage, "2024-2040")

	path := writeFile(t, "perfil.yaml", []byte(perfilYAML))
	_, err := run(t, "comparar", "--perfil", path, "--ano", "2024", "--json")
	assert.NoError(t, err, "limite inferior aceito")
	_, err = run(t, "comparar", "--perfil", path, "--ano", "2040", "--json")
	assert.NoError(t, err, "limite superior aceito")
	_, err = run(t, "comparar", "--perfil", path, "--ano", "2041", "--json")
	assert.Error(t, err, "fora da faixa")
}
