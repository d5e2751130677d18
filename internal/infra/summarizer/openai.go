// Package summarizer implements the remote summarization provider on the
// OpenAI chat-completions API.
package summarizer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel/attribute"

	"clipdigest/internal/domain/entity"
	"clipdigest/internal/observability/tracing"
	"clipdigest/internal/resilience/circuitbreaker"
	"clipdigest/internal/resilience/retry"
	"clipdigest/internal/usecase/summary"
)

// Config holds configuration for the OpenAI provider adapter.
type Config struct {
	// BaseURL overrides the API endpoint. Empty means the OpenAI default.
	// Used by tests and proxies.
	BaseURL string

	// Timeout is the maximum duration for a single completion call.
	Timeout time.Duration

	// ResilienceEnabled wires retry with exponential backoff and a circuit
	// breaker around provider calls. Off by default: the core pipeline
	// performs exactly one call per attempt.
	ResilienceEnabled bool
}

// Validate checks configuration correctness.
func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %v", c.Timeout)
	}
	return nil
}

// DefaultConfig returns the default adapter configuration.
func DefaultConfig() Config {
	return Config{
		Timeout:           60 * time.Second,
		ResilienceEnabled: false,
	}
}

// OpenAI implements summary.Provider using the OpenAI chat-completions API.
// The credential is supplied per call, because the user can replace the
// stored key at any time.
type OpenAI struct {
	baseURL     string
	timeout     time.Duration
	resilient   bool
	retryConfig retry.Config
	breaker     *circuitbreaker.CircuitBreaker
}

// NewOpenAI creates an OpenAI provider adapter with the given configuration.
func NewOpenAI(cfg Config) (*OpenAI, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid summarizer configuration: %w", err)
	}

	provider := &OpenAI{
		baseURL:   cfg.BaseURL,
		timeout:   cfg.Timeout,
		resilient: cfg.ResilienceEnabled,
	}
	if cfg.ResilienceEnabled {
		provider.retryConfig = retry.AIAPIConfig()
		provider.breaker = circuitbreaker.New(circuitbreaker.OpenAIAPIConfig())
		slog.Info("openai provider resilience enabled",
			slog.Int("max_attempts", provider.retryConfig.MaxAttempts))
	}

	return provider, nil
}

// CreateCompletion performs the chat-completions call, implementing
// summary.Provider. Failures come back as *entity.SummaryError carrying the
// category derived from the HTTP status (or network kind for transport
// failures).
func (o *OpenAI) CreateCompletion(ctx context.Context, credential string, req summary.CompletionRequest) (*summary.Completion, error) {
	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	ctx, span := tracing.GetTracer().Start(ctx, "openai.CreateCompletion")
	defer span.End()
	span.SetAttributes(attribute.String("openai.model", req.Model))

	if !o.resilient {
		return o.doCreate(ctx, credential, req)
	}

	var result *summary.Completion
	retryErr := retry.WithBackoff(ctx, o.retryConfig, func() error {
		cbResult, err := o.breaker.Execute(func() (interface{}, error) {
			return o.doCreate(ctx, credential, req)
		})
		if err != nil {
			if errors.Is(err, gobreaker.ErrOpenState) {
				slog.Warn("openai api circuit breaker open, request rejected",
					slog.String("state", o.breaker.State().String()))
				return entity.NewSummaryError(entity.KindRemoteService,
					summary.MessageForKind(entity.KindRemoteService),
					fmt.Errorf("openai api unavailable: circuit breaker open"))
			}
			return err
		}
		result = cbResult.(*summary.Completion)
		return nil
	})
	if retryErr != nil {
		return nil, retryErr
	}

	return result, nil
}

// doCreate performs the actual API call without retry or circuit breaker.
func (o *OpenAI) doCreate(ctx context.Context, credential string, req summary.CompletionRequest) (*summary.Completion, error) {
	clientConfig := openai.DefaultConfig(credential)
	if o.baseURL != "" {
		clientConfig.BaseURL = o.baseURL
	}
	client := openai.NewClientWithConfig(clientConfig)

	messages := make([]openai.ChatCompletionMessage, 0, len(req.Messages))
	for _, m := range req.Messages {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}

	start := time.Now()
	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       req.Model,
		Messages:    messages,
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	})
	duration := time.Since(start)

	if err != nil {
		slog.ErrorContext(ctx, "openai api call failed",
			slog.Duration("duration", duration),
			slog.String("error", err.Error()))
		return nil, mapError(err)
	}

	slog.InfoContext(ctx, "openai api call completed",
		slog.Duration("duration", duration),
		slog.Int("choices", len(resp.Choices)))

	completion := &summary.Completion{
		Choices: make([]summary.Choice, 0, len(resp.Choices)),
	}
	for _, choice := range resp.Choices {
		completion.Choices = append(completion.Choices, summary.Choice{
			Message: summary.Message{
				Role:    choice.Message.Role,
				Content: choice.Message.Content,
			},
		})
	}

	return completion, nil
}

// mapError converts a go-openai error into a categorized SummaryError.
// HTTP status codes become remote kinds; transport failures before any
// response become the network kind.
func mapError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		kind := summary.KindForStatus(apiErr.HTTPStatusCode)
		if kind == entity.KindGeneric {
			return entity.NewSummaryError(entity.KindGeneric, apiErr.Message, err)
		}
		return entity.NewSummaryError(kind, summary.MessageForKind(kind), err)
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		kind := summary.KindForStatus(reqErr.HTTPStatusCode)
		if kind == entity.KindGeneric {
			return entity.NewSummaryError(entity.KindGeneric, err.Error(), err)
		}
		return entity.NewSummaryError(kind, summary.MessageForKind(kind), err)
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled) {
		return entity.NewSummaryError(entity.KindNetwork,
			summary.MessageForKind(entity.KindNetwork), err)
	}

	return entity.NewSummaryError(entity.KindGeneric, err.Error(), err)
}
