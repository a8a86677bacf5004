// Package ai implements the AdvisoryEngine domain service on top of the
// OpenAI chat completions API.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"agrisense/config"
	"agrisense/internal/domain/entity"
	domainerrors "agrisense/internal/domain/errors"
	"agrisense/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	chatCompletionsPath = "/v1/chat/completions"

	completionTemperature = 0.7
	completionMaxTokens   = 1000

	maxAdvisoriesPerRun = 3
)

const systemPrompt = `You are an agricultural AI expert. Analyze sensor data and provide farming recommendations.

Response format must be a JSON array of recommendations:
[
  {
    "title": "Brief title",
    "message": "Detailed recommendation",
    "priority": "low|medium|high",
    "category": "irrigation|fertilizer|weather|pest|disease|general",
    "confidence": 0.85
  }
]

Guidelines:
- Only suggest actionable recommendations
- Consider crop health, environmental conditions, and optimal growing parameters
- Prioritize based on urgency and impact
- Maximum 3 recommendations per analysis
- Be specific and practical`

// openAIEngine calls the chat completions endpoint and parses the model
// output into advisory drafts.
type openAIEngine struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewOpenAIEngine is the constructor for openAIEngine.
func NewOpenAIEngine(cfg *config.Config, logger *slog.Logger) (service.AdvisoryEngine, error) {
	if cfg.OpenAI == nil || cfg.OpenAI.APIKey == "" {
		return nil, errors.New("openai api key must be provided")
	}

	openAICfg := cfg.OpenAI.WithDefaults()

	return &openAIEngine{
		apiKey:  openAICfg.APIKey,
		baseURL: strings.TrimSuffix(openAICfg.BaseURL, "/"),
		model:   openAICfg.Model,
		httpClient: &http.Client{
			Timeout: openAICfg.Timeout,
		},
		logger: logger,
	}, nil
}

// --- Wire types for the chat completions API ---

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// advisoryPayload mirrors the JSON array entries the model is instructed to return.
type advisoryPayload struct {
	Title      string  `json:"title"`
	Message    string  `json:"message"`
	Priority   string  `json:"priority"`
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
}

// GenerateAdvisories asks the model for recommendations based on the
// aggregated sensor summary for a device.
func (e *openAIEngine) GenerateAdvisories(ctx context.Context, device *entity.Device, summary entity.SensorSummary) ([]*service.AdvisoryDraft, error) {
	userPrompt, err := buildUserPrompt(device, summary)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	reqBody := chatCompletionRequest{
		Model: e.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: completionTemperature,
		MaxTokens:   completionMaxTokens,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+chatCompletionsPath, bytes.NewReader(body))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Authorization", "Bearer "+e.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return nil, domainerrors.ErrUpstreamUnavailable.WrapMessage(err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		e.logger.Error("openai api returned non-success status",
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(respBody)),
		)

		return nil, domainerrors.ErrUpstreamUnavailable
	}

	var completion chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return nil, domainerrors.ErrInvalidAIResponse.WrapMessage(err.Error())
	}

	if len(completion.Choices) == 0 {
		return nil, domainerrors.ErrInvalidAIResponse
	}

	return parseAdvisoryContent(completion.Choices[0].Message.Content)
}

// parseAdvisoryContent decodes the model output into advisory drafts.
// The drop above maxAdvisoriesPerRun guards against a model that ignores
// the limit in the system prompt.
func parseAdvisoryContent(content string) ([]*service.AdvisoryDraft, error) {
	var payloads []advisoryPayload
	if err := json.Unmarshal([]byte(stripCodeFence(content)), &payloads); err != nil {
		return nil, domainerrors.ErrInvalidAIResponse.WrapMessage(err.Error())
	}

	if len(payloads) > maxAdvisoriesPerRun {
		payloads = payloads[:maxAdvisoriesPerRun]
	}

	drafts := make([]*service.AdvisoryDraft, 0, len(payloads))
	for _, p := range payloads {
		if p.Title == "" || p.Message == "" {
			return nil, domainerrors.ErrInvalidAIResponse
		}

		drafts = append(drafts, &service.AdvisoryDraft{
			Title:      p.Title,
			Message:    p.Message,
			Priority:   normalizePriority(p.Priority),
			Category:   p.Category,
			Confidence: p.Confidence,
		})
	}

	return drafts, nil
}

// stripCodeFence removes a markdown code fence the model sometimes wraps
// JSON output in.
func stripCodeFence(content string) string {
	trimmed := strings.TrimSpace(content)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")

	return strings.TrimSpace(trimmed)
}

// normalizePriority clamps unexpected priority values to medium.
func normalizePriority(priority string) string {
	switch priority {
	case entity.PriorityLow, entity.PriorityMedium, entity.PriorityHigh:
		return priority
	default:
		return entity.PriorityMedium
	}
}

// buildUserPrompt renders the device context and serialized sensor summary
// into the analysis request.
func buildUserPrompt(device *entity.Device, summary entity.SensorSummary) (string, error) {
	summaryJSON, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return "", err
	}

	location := device.Location
	if location == "" {
		location = "Not specified"
	}

	var sb strings.Builder
	sb.WriteString("Analyze this sensor data from ")
	if device.Location != "" {
		sb.WriteString(device.Location)
	} else {
		sb.WriteString("farm location")
	}
	sb.WriteString(" and provide recommendations:\n\n")
	sb.WriteString("Device: " + device.DeviceName + " (" + device.DeviceType + ")\n")
	sb.WriteString("Location: " + location + "\n\n")
	sb.WriteString("Recent sensor readings (last 24 hours):\n")
	sb.Write(summaryJSON)
	sb.WriteString("\n\nPlease provide specific, actionable farming recommendations based on this data.")

	return sb.String(), nil
}
