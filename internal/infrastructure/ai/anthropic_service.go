package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/araujocontabil/reforma-tributaria-api/internal/application/dto"
	"github.com/araujocontabil/reforma-tributaria-api/internal/application/ports"
	"github.com/araujocontabil/reforma-tributaria-api/pkg/moeda"
)

// Verificação em tempo de compilação.
var _ ports.LLMService = (*AnthropicService)(nil)

const (
	anthropicMessagesURL = "https://api.anthropic.com/v1/messages"
	anthropicVersion     = "2023-06-01"

	anthropicSystemPrompt = `Você é um consultor tributário brasileiro especializado na reforma tributária do consumo (EC 132/2023, LC 214/2025).
Os números que você recebe já foram calculados por um simulador; NÃO recalcule nem invente valores.
Devolva SOMENTE um objeto JSON válido (sem markdown, sem blocos de código` + " ```json" + `) com esta estrutura exata:
{
  "summary": "<parecer em português, até 600 caracteres, citando o resultado da simulação>",
  "risks": ["<risco 1>", "<risco 2>"],
  "next_steps": ["<passo 1>", "<passo 2>"]
}

Regras:
- risks e next_steps: de 2 a 5 itens curtos cada.
- Se houver pergunta do usuário, responda-a dentro do summary.
- Deixe claro que é uma estimativa e não substitui análise contábil individual.
- Nenhum texto fora do JSON.`
)

// AnthropicService adaptador de LLMService sobre a API REST de Mensagens da Anthropic.
// Usa net/http; não depende do SDK oficial.
type AnthropicService struct {
	apiKey     string
	model      string
	url        string
	httpClient *http.Client
}

// NewAnthropicService constrói o adaptador. Com apiKey vazia as chamadas devolvem erro descritivo.
func NewAnthropicService(apiKey, model string) *AnthropicService {
	return &AnthropicService{
		apiKey: apiKey,
		model:  model,
		url:    anthropicMessagesURL,
		httpClient: &http.Client{
			// timeout de rede; o caso de uso impõe também context.WithTimeout
			Timeout: 30 * time.Second,
		},
	}
}

// WithBaseURL troca o endpoint (proxy corporativo, testes).
func (s *AnthropicService) WithBaseURL(url string) *AnthropicService {
	s.url = url
	return s
}

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// jsonBlockRe do primeiro '{' ao último '}'.
var jsonBlockRe = regexp.MustCompile(`(?s)\{.*\}`)

// GenerateOpinion envia a simulação já calculada e devolve o parecer estruturado.
func (s *AnthropicService) GenerateOpinion(ctx context.Context, in dto.AdvicePrompt) (*dto.AdviceOpinion, error) {
	if s.apiKey == "" {
		return nil, fmt.Errorf("AI: AI_ANTHROPIC_API_KEY não configurada")
	}

	payload := anthropicRequest{
		Model:     s.model,
		MaxTokens: 1024,
		System:    anthropicSystemPrompt,
		Messages: []anthropicMessage{
			{Role: "user", Content: buildUserContent(in)},
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("AI: serializar request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("AI: criar HTTP request: %w", err)
	}
	req.Header.Set("x-api-key", s.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)
	req.Header.Set("content-type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("AI: timeout ou cancelamento: %w", ctx.Err())
		}
		return nil, fmt.Errorf("AI: chamada HTTP falhou: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return nil, fmt.Errorf("AI: ler resposta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp anthropicResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Error != nil {
			return nil, fmt.Errorf("AI: erro Anthropic (%s): %s", errResp.Error.Type, errResp.Error.Message)
		}
		return nil, fmt.Errorf("AI: Anthropic HTTP %d: %s", resp.StatusCode, string(rawBody))
	}

	var anthResp anthropicResponse
	if err := json.Unmarshal(rawBody, &anthResp); err != nil {
		return nil, fmt.Errorf("AI: desserializar resposta: %w", err)
	}
	if len(anthResp.Content) == 0 {
		return nil, fmt.Errorf("AI: resposta vazia do modelo")
	}

	rawText := anthResp.Content[0].Text
	cleanJSON := extractJSON(rawText)
	if cleanJSON == "" {
		return nil, fmt.Errorf("AI: JSON não encontrado na resposta do modelo (resposta: %s)", rawText)
	}

	var opinion dto.AdviceOpinion
	if err := json.Unmarshal([]byte(cleanJSON), &opinion); err != nil {
		return nil, fmt.Errorf("AI: interpretar JSON do parecer: %w (JSON extraído: %s)", err, cleanJSON)
	}
	if strings.TrimSpace(opinion.Summary) == "" {
		return nil, fmt.Errorf("AI: parecer sem summary")
	}
	if opinion.Risks == nil {
		opinion.Risks = []string{}
	}
	if opinion.NextSteps == nil {
		opinion.NextSteps = []string{}
	}
	return &opinion, nil
}

// buildUserContent resume perfil, resultado e recomendações em texto para o modelo.
func buildUserContent(in dto.AdvicePrompt) string {
	p, r := in.Profile, in.Comparison
	var b strings.Builder
	fmt.Fprintf(&b, "Empresa: regime %s, setor %s, UF %s, ano da simulação %d.\n", in.RegimeName, in.SectorName, in.StateName, p.SimulationYear)
	fmt.Fprintf(&b, "Faturamento mensal: %s. Folha mensal: %s. Insumos: %s. Investimento: %s.\n",
		moeda.Format(p.MonthlyRevenue), moeda.Format(p.Payroll), moeda.Percent(p.InputCostRatio), moeda.Percent(p.InvestmentRatio))
	fmt.Fprintf(&b, "Cenário: %s.\n", r.Scenario)
	fmt.Fprintf(&b, "Sistema atual: %s/mês (alíquota efetiva %s).\n", moeda.Format(r.CurrentSystem.Total), moeda.Percent(r.CurrentSystem.EffectiveRate))
	fmt.Fprintf(&b, "Pós-reforma: %s/mês (alíquota efetiva %s, créditos %s).\n",
		moeda.Format(r.PostReform.NetTax), moeda.Percent(r.PostReform.EffectiveRate), moeda.Format(r.PostReform.InputCredit.Add(r.PostReform.CapitalCredit)))
	fmt.Fprintf(&b, "Resultado: %s, economia anual %s (variação %s).\n", r.Outcome, moeda.Format(r.AnnualSavings), moeda.Percent(r.VariationPct))
	if len(in.Recommendations) > 0 {
		b.WriteString("Recomendações do simulador:\n")
		for _, rec := range in.Recommendations {
			fmt.Fprintf(&b, "- [%s] %s\n", rec.Priority, rec.Title)
		}
	}
	if in.Question != "" {
		fmt.Fprintf(&b, "Pergunta do usuário: %s\n", in.Question)
	}
	return b.String()
}

// extractJSON extrai o primeiro objeto JSON de um texto livre:
// remove cercas de markdown e, se preciso, cai na regex.
func extractJSON(text string) string {
	text = strings.TrimSpace(text)
	if idx := strings.Index(text, "```"); idx != -1 {
		after := text[idx+3:]
		if nl := strings.Index(after, "\n"); nl != -1 {
			after = after[nl+1:]
		}
		if end := strings.LastIndex(after, "```"); end != -1 {
			after = after[:end]
		}
		text = strings.TrimSpace(after)
	}
	if strings.HasPrefix(text, "{") {
		return text
	}
	return strings.TrimSpace(jsonBlockRe.FindString(text))
}
