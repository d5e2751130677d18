package session

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNext_Totality(t *testing.T) {
	states := []State{AwaitingCredential, Loading, ShowingSummary, ShowingError, AwaitingSelection}
	events := []Event{
		EventCredentialSaved, EventCredentialCleared, EventSummarizeStarted,
		EventNoSelection, EventSummarySucceeded, EventSummarizeFailed,
	}

	// every (state, event) pair yields one of the five defined states
	for _, state := range states {
		for _, event := range events {
			t.Run(fmt.Sprintf("%s/%s", state, event), func(t *testing.T) {
				next := Next(state, event)
				assert.Contains(t, states, next)
			})
		}
	}
}

func TestNext(t *testing.T) {
	tests := []struct {
		name     string
		state    State
		event    Event
		expected State
	}{
		{
			name:     "saving a credential starts loading",
			state:    AwaitingCredential,
			event:    EventCredentialSaved,
			expected: Loading,
		},
		{
			name:     "summarize attempt starts loading",
			state:    ShowingSummary,
			event:    EventSummarizeStarted,
			expected: Loading,
		},
		{
			name:     "success shows the summary",
			state:    Loading,
			event:    EventSummarySucceeded,
			expected: ShowingSummary,
		},
		{
			name:     "failure shows the error",
			state:    Loading,
			event:    EventSummarizeFailed,
			expected: ShowingError,
		},
		{
			name:     "missing selection has its own view",
			state:    Loading,
			event:    EventNoSelection,
			expected: AwaitingSelection,
		},
		{
			name:     "clearing the credential wins from showing summary",
			state:    ShowingSummary,
			event:    EventCredentialCleared,
			expected: AwaitingCredential,
		},
		{
			name:     "clearing the credential wins from loading",
			state:    Loading,
			event:    EventCredentialCleared,
			expected: AwaitingCredential,
		},
		{
			name:     "clearing the credential wins from showing error",
			state:    ShowingError,
			event:    EventCredentialCleared,
			expected: AwaitingCredential,
		},
		{
			name:     "unknown event leaves the state unchanged",
			state:    ShowingSummary,
			event:    Event(99),
			expected: ShowingSummary,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Next(tt.state, tt.event))
		})
	}
}

func TestState_String(t *testing.T) {
	tests := []struct {
		state    State
		expected string
	}{
		{AwaitingCredential, "awaiting_credential"},
		{Loading, "loading"},
		{ShowingSummary, "showing_summary"},
		{ShowingError, "showing_error"},
		{AwaitingSelection, "awaiting_selection"},
		{State(99), "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.state.String())
	}
}

func TestEvent_String(t *testing.T) {
	tests := []struct {
		event    Event
		expected string
	}{
		{EventCredentialSaved, "credential_saved"},
		{EventCredentialCleared, "credential_cleared"},
		{EventSummarizeStarted, "summarize_started"},
		{EventNoSelection, "no_selection"},
		{EventSummarySucceeded, "summary_succeeded"},
		{EventSummarizeFailed, "summarize_failed"},
		{Event(99), "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.event.String())
	}
}
