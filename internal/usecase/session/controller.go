package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"clipdigest/internal/domain/entity"
	"clipdigest/internal/repository"
	"clipdigest/internal/usecase/summary"
)

// CopyConfirmationTTL is how long the copy confirmation stays visible before
// the view reverts to the plain summary display.
const CopyConfirmationTTL = 2 * time.Second

// ErrCopyUnavailable is returned when copy is requested outside ShowingSummary.
var ErrCopyUnavailable = errors.New("no summary available to copy")

// TransitionRecorder counts state transitions. A nil recorder is replaced
// with a no-op implementation.
type TransitionRecorder interface {
	RecordTransition(from, to, event string)
}

type noopTransitions struct{}

func (noopTransitions) RecordTransition(string, string, string) {}

// Snapshot is the externally visible session state handed to the popup.
type Snapshot struct {
	State            State
	Summary          string
	SummaryCreatedAt time.Time
	ErrorMessage     string
	CopiedRecently   bool
}

// Controller sequences session events: popup open, credential save/clear,
// summarization attempts, and the copy side effect. It owns the single
// active state and the payload belonging to it.
type Controller struct {
	store   repository.StateRepository
	svc     *summary.Service
	metrics TransitionRecorder
	now     func() time.Time

	mu           sync.Mutex
	state        State
	summary      *entity.Summary
	errorMessage string
	copiedAt     time.Time
}

// NewController creates a session controller in AwaitingCredential.
// metrics may be nil.
func NewController(svc *summary.Service, store repository.StateRepository, metrics TransitionRecorder) *Controller {
	if metrics == nil {
		metrics = noopTransitions{}
	}
	return &Controller{
		store:   store,
		svc:     svc,
		metrics: metrics,
		now:     time.Now,
		state:   AwaitingCredential,
	}
}

// Open determines the initial view when the popup opens: AwaitingCredential
// when no valid key is stored, otherwise an immediate summarization attempt.
func (c *Controller) Open(ctx context.Context) (Snapshot, error) {
	credential, err := c.store.Credential(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("read credential: %w", err)
	}

	if !entity.ValidateCredential(credential) {
		// Not a session event: opening the popup just reveals that no usable
		// key is stored, so the state is set directly and any payload from a
		// previous session is dropped.
		c.mu.Lock()
		defer c.mu.Unlock()
		c.state = AwaitingCredential
		c.resetLocked()
		return c.snapshotLocked(), nil
	}

	return c.Summarize(ctx), nil
}

// SaveCredential validates and stores the API key, then immediately attempts
// a summarization, matching the popup's save-and-go behavior.
// An invalid key format is rejected without touching the store.
func (c *Controller) SaveCredential(ctx context.Context, token string) (Snapshot, error) {
	if !entity.ValidateCredential(token) {
		return Snapshot{}, &entity.ValidationError{
			Field:   "token",
			Message: fmt.Sprintf("API key must start with %q and be longer than 20 characters", entity.CredentialPrefix),
		}
	}

	if err := c.store.SaveCredential(ctx, token); err != nil {
		return Snapshot{}, fmt.Errorf("save credential: %w", err)
	}

	c.apply(EventCredentialSaved)
	return c.Summarize(ctx), nil
}

// ClearCredential removes the stored key and resets the session.
// Reachable from any state.
func (c *Controller) ClearCredential(ctx context.Context) (Snapshot, error) {
	if err := c.store.ClearCredential(ctx); err != nil {
		return Snapshot{}, fmt.Errorf("clear credential: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.applyLocked(EventCredentialCleared)
	c.resetLocked()
	return c.snapshotLocked(), nil
}

// resetLocked drops the payload belonging to a previous state.
func (c *Controller) resetLocked() {
	c.summary = nil
	c.errorMessage = ""
	c.copiedAt = time.Time{}
}

// Summarize runs a summarization attempt against the stored selection and
// folds the outcome into the session state.
func (c *Controller) Summarize(ctx context.Context) Snapshot {
	c.apply(EventSummarizeStarted)

	result, err := c.svc.Summarize(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	switch {
	case errors.Is(err, entity.ErrNoSelection):
		c.applyLocked(EventNoSelection)
		c.summary = nil
		c.errorMessage = ""
	case err != nil:
		c.applyLocked(EventSummarizeFailed)
		c.summary = nil
		c.errorMessage = summary.Classify(err)
	default:
		c.applyLocked(EventSummarySucceeded)
		c.summary = result
		c.errorMessage = ""
	}
	c.copiedAt = time.Time{}
	return c.snapshotLocked()
}

// Copy returns the summary text for the clipboard and records the transient
// confirmation. It is a side effect, not a transition: the state stays
// ShowingSummary, and the confirmation expires after CopyConfirmationTTL.
func (c *Controller) Copy() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != ShowingSummary || c.summary == nil {
		return "", ErrCopyUnavailable
	}

	c.copiedAt = c.now()
	return c.summary.Text, nil
}

// Snapshot returns the current session view.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Controller) snapshotLocked() Snapshot {
	snapshot := Snapshot{
		State:        c.state,
		ErrorMessage: c.errorMessage,
	}
	if c.summary != nil {
		snapshot.Summary = c.summary.Text
		snapshot.SummaryCreatedAt = c.summary.CreatedAt
	}
	if !c.copiedAt.IsZero() {
		snapshot.CopiedRecently = c.now().Sub(c.copiedAt) < CopyConfirmationTTL
	}
	return snapshot
}

func (c *Controller) apply(event Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.applyLocked(event)
}

func (c *Controller) applyLocked(event Event) {
	from := c.state
	c.state = Next(c.state, event)
	c.metrics.RecordTransition(from.String(), c.state.String(), event.String())
	if from != c.state {
		slog.Debug("session state changed",
			slog.String("from", from.String()),
			slog.String("to", c.state.String()),
			slog.String("event", event.String()))
	}
}
