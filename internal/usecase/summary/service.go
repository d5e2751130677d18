package summary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"clipdigest/internal/domain/entity"
	"clipdigest/internal/handler/http/requestid"
	"clipdigest/internal/repository"
	"clipdigest/internal/utils/text"
)

// MetricsRecorder records summarization pipeline metrics.
// A nil recorder is replaced with a no-op implementation, so the pipeline
// works without a metrics backend (e.g. in the one-shot CLI).
type MetricsRecorder interface {
	// RecordOutcome counts a finished summarization attempt by outcome
	// ("success" or a failure kind identifier).
	RecordOutcome(outcome string)

	// RecordDuration records the end-to-end duration of an attempt.
	RecordDuration(duration time.Duration)
}

type noopMetrics struct{}

func (noopMetrics) RecordOutcome(string)        {}
func (noopMetrics) RecordDuration(time.Duration) {}

// Service orchestrates the summarization pipeline: credential check, text
// validation, sanitization, prompt construction, the remote call, response
// parsing, and persistence of the last result.
//
// Concurrent Summarize calls are coalesced: while one request is in flight,
// later callers wait for and share its outcome instead of issuing a second
// provider call.
type Service struct {
	provider Provider
	store    repository.StateRepository
	metrics  MetricsRecorder
	group    singleflight.Group
}

// NewService creates a summarization service.
// metrics may be nil when no recording is wanted.
func NewService(provider Provider, store repository.StateRepository, metrics MetricsRecorder) *Service {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &Service{
		provider: provider,
		store:    store,
		metrics:  metrics,
	}
}

// Summarize runs the pipeline against the currently stored selection.
//
// Returns:
//   - *entity.Summary on success (also persisted as the last summary)
//   - entity.ErrNoSelection when no selection text is stored
//   - *entity.SummaryError carrying the display message for every other failure
func (s *Service) Summarize(ctx context.Context) (*entity.Summary, error) {
	result, err, shared := s.group.Do("summarize", func() (interface{}, error) {
		// The credential gate comes first: with no usable key stored, the
		// user is told to save one even when no selection exists either.
		credential, err := s.validCredential(ctx)
		if err != nil {
			return nil, err
		}
		selection, err := s.store.Selection(ctx)
		if err != nil {
			return nil, entity.NewSummaryError(entity.KindGeneric, msgGeneric,
				fmt.Errorf("read selection: %w", err))
		}
		if strings.TrimSpace(selection) == "" {
			return nil, entity.ErrNoSelection
		}
		return s.run(ctx, credential, selection)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		slog.InfoContext(ctx, "summarization coalesced onto in-flight request")
	}
	return result.(*entity.Summary), nil
}

// SummarizeText runs the pipeline against the given text, bypassing the
// stored selection. Used by the CLI and by direct API requests.
func (s *Service) SummarizeText(ctx context.Context, input string) (*entity.Summary, error) {
	credential, err := s.validCredential(ctx)
	if err != nil {
		return nil, err
	}
	return s.run(ctx, credential, input)
}

// validCredential loads the stored API key and rejects the attempt before
// anything else runs when the key is missing or malformed.
func (s *Service) validCredential(ctx context.Context) (string, error) {
	credential, err := s.store.Credential(ctx)
	if err != nil {
		return "", entity.NewSummaryError(entity.KindGeneric, msgGeneric,
			fmt.Errorf("read credential: %w", err))
	}
	if !entity.ValidateCredential(credential) {
		s.metrics.RecordOutcome(entity.KindInvalidCredential.String())
		slog.WarnContext(ctx, "summarization rejected: missing or invalid credential")
		return "", entity.NewSummaryError(entity.KindInvalidCredential, msgInvalidCredential, nil)
	}
	return credential, nil
}

// run executes one summarization attempt with an already validated credential.
func (s *Service) run(ctx context.Context, credential, input string) (*entity.Summary, error) {
	requestID := s.getOrCreateRequestID(ctx)
	start := time.Now()

	summary, err := s.doRun(ctx, requestID, credential, input)

	duration := time.Since(start)
	s.metrics.RecordDuration(duration)
	if err != nil {
		s.metrics.RecordOutcome(entity.KindOf(err).String())
		slog.ErrorContext(ctx, "summarization failed",
			slog.String("request_id", requestID),
			slog.String("kind", entity.KindOf(err).String()),
			slog.Duration("duration", duration),
			slog.Any("error", err))
		return nil, err
	}

	s.metrics.RecordOutcome("success")
	slog.InfoContext(ctx, "summarization completed",
		slog.String("request_id", requestID),
		slog.Int("summary_length", text.CountRunes(summary.Text)),
		slog.Duration("duration", duration))
	return summary, nil
}

func (s *Service) doRun(ctx context.Context, requestID, credential, input string) (*entity.Summary, error) {
	// Validation failures carry their own display message and are surfaced
	// directly, without classification.
	if err := entity.ValidateSelectionText(input); err != nil {
		return nil, err
	}

	sanitized := text.Sanitize(input)
	prompt := BuildPrompt(sanitized)

	slog.InfoContext(ctx, "starting summarization",
		slog.String("request_id", requestID),
		slog.Int("input_length", text.CountRunes(sanitized)))

	req := CompletionRequest{
		Model: Model,
		Messages: []Message{
			{Role: "system", Content: SystemInstruction},
			{Role: "user", Content: prompt},
		},
		MaxTokens:   MaxTokens,
		Temperature: Temperature,
	}

	completion, err := s.provider.CreateCompletion(ctx, credential, req)
	if err != nil {
		// Classification happens exactly once, here at the orchestration
		// boundary. Adapters attach a kind; untyped errors go through the
		// legacy substring rules.
		return nil, entity.NewSummaryError(entity.KindOf(err), Classify(err), err)
	}

	content, err := ParseSummary(completion)
	if err != nil {
		return nil, err
	}

	summary := &entity.Summary{Text: content, CreatedAt: time.Now()}
	if err := s.store.SaveSummary(ctx, summary); err != nil {
		// The summary was produced; failing to persist it should not hide it
		// from the user.
		slog.WarnContext(ctx, "failed to persist summary",
			slog.String("request_id", requestID),
			slog.Any("error", err))
	}

	return summary, nil
}

// LastSummary returns the last persisted summary.
// Returns entity.ErrNotFound when none has been stored yet.
func (s *Service) LastSummary(ctx context.Context) (*entity.Summary, error) {
	summary, err := s.store.LastSummary(ctx)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("load last summary: %w", err)
	}
	return summary, nil
}

// getOrCreateRequestID extracts the request ID from the context or creates a new one.
func (s *Service) getOrCreateRequestID(ctx context.Context) string {
	if id := requestid.FromContext(ctx); id != "" {
		return id
	}
	return uuid.New().String()
}
