package ai

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"agrisense/config"
	"agrisense/internal/domain/entity"
	domainerrors "agrisense/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDevice() *entity.Device {
	return &entity.Device{
		DeviceID:   "ESP32-001",
		DeviceName: "Greenhouse A",
		DeviceType: entity.DefaultDeviceType,
		Location:   "North field",
	}
}

func testSummary() entity.SensorSummary {
	return entity.SensorSummary{
		"temperature": {
			Current:       28.5,
			Unit:          "C",
			Average:       26.1,
			Min:           22.0,
			Max:           29.0,
			ReadingsCount: 12,
			Trend:         entity.TrendIncreasing,
		},
	}
}

func newTestEngine(t *testing.T, handler http.HandlerFunc) (*openAIEngine, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{
		OpenAI: &config.OpenAIConfig{
			APIKey:  "test-key",
			BaseURL: server.URL,
		},
	}

	engine, err := NewOpenAIEngine(cfg, slog.New(slog.DiscardHandler))
	require.NoError(t, err)

	return engine.(*openAIEngine), server
}

func completionWith(content string) chatCompletionResponse {
	var resp chatCompletionResponse
	resp.Choices = make([]struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	}, 1)
	resp.Choices[0].Message.Content = content

	return resp
}

func TestOpenAIEngine_GenerateAdvisories(t *testing.T) {
	content := `[{"title":"Reduce irrigation","message":"Soil moisture is trending high.","priority":"high","category":"irrigation","confidence":0.9}]`

	var gotAuth string
	var gotReq chatCompletionRequest

	engine, _ := newTestEngine(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		assert.Equal(t, chatCompletionsPath, r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		_ = json.NewEncoder(w).Encode(completionWith(content))
	})

	drafts, err := engine.GenerateAdvisories(context.Background(), testDevice(), testSummary())
	require.NoError(t, err)
	require.Len(t, drafts, 1)

	assert.Equal(t, "Reduce irrigation", drafts[0].Title)
	assert.Equal(t, entity.PriorityHigh, drafts[0].Priority)
	assert.Equal(t, "irrigation", drafts[0].Category)
	assert.InDelta(t, 0.9, drafts[0].Confidence, 0.001)

	// The request must carry the API key and the fixed sampling parameters.
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, config.DefaultOpenAIModel, gotReq.Model)
	assert.InDelta(t, completionTemperature, gotReq.Temperature, 0.001)
	assert.Equal(t, completionMaxTokens, gotReq.MaxTokens)
	require.Len(t, gotReq.Messages, 2)
	assert.Contains(t, gotReq.Messages[1].Content, "Greenhouse A")
	assert.Contains(t, gotReq.Messages[1].Content, "North field")
	assert.Contains(t, gotReq.Messages[1].Content, "temperature")
}

func TestOpenAIEngine_CodeFencedResponse(t *testing.T) {
	content := "```json\n[{\"title\":\"Check sensors\",\"message\":\"Humidity variance is abnormal.\",\"priority\":\"low\",\"category\":\"general\",\"confidence\":0.6}]\n```"

	engine, _ := newTestEngine(t, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(completionWith(content))
	})

	drafts, err := engine.GenerateAdvisories(context.Background(), testDevice(), testSummary())
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, "Check sensors", drafts[0].Title)
}

func TestOpenAIEngine_NonJSONResponse(t *testing.T) {
	engine, _ := newTestEngine(t, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(completionWith("I cannot produce recommendations right now."))
	})

	drafts, err := engine.GenerateAdvisories(context.Background(), testDevice(), testSummary())
	assert.Nil(t, drafts)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidAIResponse))
}

func TestOpenAIEngine_UpstreamError(t *testing.T) {
	engine, _ := newTestEngine(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	})

	drafts, err := engine.GenerateAdvisories(context.Background(), testDevice(), testSummary())
	assert.Nil(t, drafts)
	assert.True(t, errors.Is(err, domainerrors.ErrUpstreamUnavailable))
}

func TestOpenAIEngine_EmptyChoices(t *testing.T) {
	engine, _ := newTestEngine(t, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(chatCompletionResponse{})
	})

	_, err := engine.GenerateAdvisories(context.Background(), testDevice(), testSummary())
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidAIResponse))
}

func TestParseAdvisoryContent_CapsAtThree(t *testing.T) {
	payload := make([]advisoryPayload, 0, 5)
	for i := 0; i < 5; i++ {
		payload = append(payload, advisoryPayload{
			Title:      "title",
			Message:    "message",
			Priority:   entity.PriorityLow,
			Category:   "general",
			Confidence: 0.5,
		})
	}
	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	drafts, err := parseAdvisoryContent(string(raw))
	require.NoError(t, err)
	assert.Len(t, drafts, maxAdvisoriesPerRun)
}

func TestNormalizePriority(t *testing.T) {
	assert.Equal(t, entity.PriorityHigh, normalizePriority("high"))
	assert.Equal(t, entity.PriorityMedium, normalizePriority("urgent"))
	assert.Equal(t, entity.PriorityMedium, normalizePriority(""))
}

func TestNewOpenAIEngine_MissingAPIKey(t *testing.T) {
	engine, err := NewOpenAIEngine(&config.Config{}, slog.New(slog.DiscardHandler))
	assert.Error(t, err)
	assert.Nil(t, engine)
}
