package summary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"movieapi/internal/metrics"
)

// Config holds the completion provider settings.
type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float32
	MaxTokens   int
	Logger      *zap.Logger
}

// OpenAIGenerator is a Generator backed by the OpenAI chat completions API
// (or any OpenAI-compatible endpoint when BaseURL is set).
type OpenAIGenerator struct {
	client      *openai.Client
	model       string
	temperature float32
	maxTokens   int
	logger      *zap.Logger
}

var _ Generator = (*OpenAIGenerator)(nil)

// NewOpenAIGenerator creates a generator. The underlying client is safe for concurrent use.
func NewOpenAIGenerator(cfg *Config) *OpenAIGenerator {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	clientCfg.HTTPClient = &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}

	l := cfg.Logger
	if l == nil {
		l = zap.NewNop()
	}

	return &OpenAIGenerator{
		client:      openai.NewClientWithConfig(clientCfg),
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		logger:      l,
	}
}

// Summarize sends the fixed prompt for title and returns the first choice's text.
func (g *OpenAIGenerator) Summarize(ctx context.Context, title string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: Prompt(title)},
		},
		Temperature: g.temperature,
		MaxTokens:   g.maxTokens,
	}

	start := time.Now()
	resp, err := g.client.CreateChatCompletion(ctx, req)
	duration := time.Since(start)

	if err != nil {
		metrics.SummaryRequestsTotal.WithLabelValues(g.model, "error").Inc()
		g.logger.Warn("summary completion failed",
			zap.String("model", g.model),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return "", parseAPIError(err)
	}

	// Empty content happens on finish_reason "length" or a content filter.
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		metrics.SummaryRequestsTotal.WithLabelValues(g.model, "empty").Inc()
		return "", fmt.Errorf("summarize %q: %w", title, ErrEmptyCompletion)
	}

	metrics.SummaryRequestsTotal.WithLabelValues(g.model, "success").Inc()
	metrics.SummaryRequestDuration.WithLabelValues(g.model).Observe(duration.Seconds())
	if resp.Usage.TotalTokens > 0 {
		metrics.SummaryTokensTotal.WithLabelValues(g.model, "prompt").Add(float64(resp.Usage.PromptTokens))
		metrics.SummaryTokensTotal.WithLabelValues(g.model, "completion").Add(float64(resp.Usage.CompletionTokens))
	}

	g.logger.Debug("summary generated",
		zap.String("model", g.model),
		zap.Duration("duration", duration),
		zap.Int("total_tokens", resp.Usage.TotalTokens),
	)

	return resp.Choices[0].Message.Content, nil
}

// parseAPIError extracts a readable message from the provider error.
// Every error is wrapped with ErrProviderFailure.
func parseAPIError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("completion API error %d: %s: %w", apiErr.HTTPStatusCode, apiErr.Message, ErrProviderFailure)
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		if detail := extractMessage(reqErr.Body); detail != "" {
			return fmt.Errorf("completion API error %d: %s: %w", reqErr.HTTPStatusCode, detail, ErrProviderFailure)
		}
		return fmt.Errorf("completion API error %d: %w", reqErr.HTTPStatusCode, ErrProviderFailure)
	}

	return fmt.Errorf("completion request failed: %v: %w", err, ErrProviderFailure)
}

// extractMessage reads error.message from an OpenAI-style error body.
func extractMessage(body []byte) string {
	var parsed struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if json.Unmarshal(body, &parsed) == nil {
		return parsed.Error.Message
	}
	return ""
}
