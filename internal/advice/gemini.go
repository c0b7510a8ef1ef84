package advice

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/limbo/basetracker/pkg/entity"
)

const (
	DefaultModel   = "gemini-3-flash-preview"
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
)

// Generator produces coaching text for the current collections.
type Generator interface {
	Generate(ctx context.Context, habits []entity.Habit, tasks []entity.Task) (string, error)
}

type GeminiClient struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

type GeminiOption func(*GeminiClient)

// WithBaseURL points the client at another endpoint root.
func WithBaseURL(baseURL string) GeminiOption {
	return func(gc *GeminiClient) {
		gc.baseURL = strings.TrimRight(baseURL, "/")
	}
}

func WithHTTPClient(client *http.Client) GeminiOption {
	return func(gc *GeminiClient) {
		gc.client = client
	}
}

func NewGeminiClient(apiKey, model string, opts ...GeminiOption) *GeminiClient {
	if model == "" {
		model = DefaultModel
	}
	gc := &GeminiClient{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultBaseURL,
		client:  &http.Client{},
	}
	for _, opt := range opts {
		opt(gc)
	}
	return gc
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"topP"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (gc *GeminiClient) Generate(ctx context.Context, habits []entity.Habit, tasks []entity.Task) (string, error) {
	body, err := sonic.Marshal(generateRequest{
		Contents: []content{{
			Role:  "user",
			Parts: []part{{Text: BuildPrompt(habits, tasks)}},
		}},
		GenerationConfig: generationConfig{Temperature: 0.7, TopP: 0.95},
	})
	if err != nil {
		return "", errors.New("encoding gemini request error: " + err.Error())
	}
	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s", gc.baseURL, url.PathEscape(gc.model), url.QueryEscape(gc.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", errors.New("creating gemini request error: " + err.Error())
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := gc.client.Do(req)
	if err != nil {
		return "", errors.New("calling gemini error: " + err.Error())
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.New("reading gemini response error: " + err.Error())
	}
	var decoded generateResponse
	if err = sonic.Unmarshal(raw, &decoded); err != nil {
		return "", fmt.Errorf("decoding gemini response (status %d) error: %w", resp.StatusCode, err)
	}
	if resp.StatusCode != http.StatusOK {
		if decoded.Error != nil {
			return "", fmt.Errorf("gemini returned %d: %s", resp.StatusCode, decoded.Error.Message)
		}
		return "", fmt.Errorf("gemini returned %d", resp.StatusCode)
	}
	if len(decoded.Candidates) == 0 {
		return "", nil
	}
	var sb strings.Builder
	for _, p := range decoded.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String(), nil
}

// BuildPrompt renders the mentor prompt from habit and task summaries.
func BuildPrompt(habits []entity.Habit, tasks []entity.Task) string {
	habitLines := make([]string, 0, len(habits))
	for _, h := range habits {
		habitLines = append(habitLines, fmt.Sprintf("- %s (%s): Sequência de %d dias", h.Name, h.Category.Label(), h.Streak))
	}
	taskLines := make([]string, 0, len(tasks))
	for _, t := range tasks {
		status := "Pendente"
		if t.IsCompleted {
			status = "Concluído"
		}
		taskLines = append(taskLines, fmt.Sprintf("- %s (Status: %s)", t.Title, status))
	}
	return "Atue como um mentor de produtividade chamado 'Dicas da Base'. " +
		"Aqui está o estado atual dos meus hábitos e tarefas:\n\n" +
		"HÁBITOS:\n" + strings.Join(habitLines, "\n") + "\n\n" +
		"TAREFAS:\n" + strings.Join(taskLines, "\n") + "\n\n" +
		"Forneça uma análise motivadora e curta em PORTUGUÊS brasileiro.\n" +
		"Sugira um micro-hábito específico.\n" +
		"REGRA CRÍTICA: Sua resposta completa deve ter NO MÁXIMO 300 CARACTERES (incluindo espaços).\n" +
		"Seja direto e impactante."
}
