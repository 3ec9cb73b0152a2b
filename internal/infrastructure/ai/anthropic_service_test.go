package ai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/araujocontabil/reforma-tributaria-api/internal/application/dto"
	"github.com/araujocontabil/reforma-tributaria-api/internal/domain/tributos"
	"github.com/araujocontabil/reforma-tributaria-api/internal/infrastructure/ai"
)

func prompt() dto.AdvicePrompt {
	return dto.AdvicePrompt{
		Profile: tributos.CompanyProfile{
			MonthlyRevenue: decimal.NewFromInt(100000),
			Regime:         tributos.RegimePresumido,
			Sector:         tributos.SectorComercio,
			State:          "SP",
			SimulationYear: 2033,
		},
		RegimeName: "Lucro Presumido",
		SectorName: "Comércio",
		StateName:  "São Paulo",
		Comparison: tributos.ComparisonResult{Scenario: tributos.ScenarioBase, Outcome: tributos.OutcomeEconomia},
		Question:   "Devo mudar de regime?",
	}
}

func anthropicServer(t *testing.T, status int, text string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "chave", r.Header.Get("x-api-key"))
		assert.Equal(t, "2023-06-01", r.Header.Get("anthropic-version"))

		var req struct {
			Model    string `json:"model"`
			Messages []struct {
				Content string `json:"content"`
			} `json:"messages"`
		}
		if !assert.NoError(t, json.NewDecoder(r.Body).Decode(&req)) || !assert.Len(t, req.Messages, 1) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		assert.Equal(t, "modelo-teste", req.Model)
		assert.Contains(t, req.Messages[0].Content, "Lucro Presumido")
		assert.Contains(t, req.Messages[0].Content, "R$ 100.000,00")
		assert.Contains(t, req.Messages[0].Content, "Devo mudar de regime?")

		w.WriteHeader(status)
		if status != http.StatusOK {
			_, _ = w.Write([]byte(`{"error":{"type":"overloaded_error","message":"sobrecarga"}}`))
			return
		}
		body, _ := json.Marshal(map[string]any{"content": []map[string]string{{"type": "text", "text": text}}})
		_, _ = w.Write(body)
	}))
}

func TestGenerateOpinion_ExtraiJSONDeMarkdown(t *testing.T) {
	text := "Segue o parecer:\n```json\n{\"summary\":\"Economia provável.\",\"risks\":[\"alíquota final\"],\"next_steps\":[\"revisar cadastro\"]}\n```"
	srv := anthropicServer(t, http.StatusOK, text)
	defer srv.Close()

	svc := ai.NewAnthropicService("chave", "modelo-teste").WithBaseURL(srv.URL)
	op, err := svc.GenerateOpinion(context.Background(), prompt())
	require.NoError(t, err)
	assert.Equal(t, "Economia provável.", op.Summary)
	assert.Equal(t, []string{"alíquota final"}, op.Risks)
	assert.Equal(t, []string{"revisar cadastro"}, op.NextSteps)
}

func TestGenerateOpinion_ListasAusentesViramVazias(t *testing.T) {
	srv := anthropicServer(t, http.StatusOK, `{"summary":"Neutro."}`)
	defer srv.Close()

	op, err := ai.NewAnthropicService("chave", "modelo-teste").WithBaseURL(srv.URL).GenerateOpinion(context.Background(), prompt())
	require.NoError(t, err)
	assert.NotNil(t, op.Risks)
	assert.NotNil(t, op.NextSteps)
}

func TestGenerateOpinion_ErroDaAPI(t *testing.T) {
	srv := anthropicServer(t, http.StatusServiceUnavailable, "")
	defer srv.Close()

	_, err := ai.NewAnthropicService("chave", "modelo-teste").WithBaseURL(srv.URL).GenerateOpinion(context.Background(), prompt())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "overloaded_error")
}

func TestGenerateOpinion_SemJSON(t *testing.T) {
	srv := anthropicServer(t, http.StatusOK, "não sei responder")
	defer srv.Close()

	_, err := ai.NewAnthropicService("chave", "modelo-teste").WithBaseURL(srv.URL).GenerateOpinion(context.Background(), prompt())
	assert.Error(t, err)
}

func TestGenerateOpinion_SemChave(t *testing.T) {
	_, err := ai.NewAnthropicService("", "modelo-teste").GenerateOpinion(context.Background(), prompt())
	assert.ErrorContains(t, err, "não configurada")
}

func TestGenerateOpinion_RespeitaContexto(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := ai.NewAnthropicService("chave", "modelo-teste").WithBaseURL(srv.URL).GenerateOpinion(ctx, prompt())
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
