// Package session drives the popup's view state. Exactly one state is active
// at a time; transitions are a total function of (current state, event).
package session

// State identifies which view the popup shows.
type State int

const (
	// AwaitingCredential is shown when no valid API key is stored.
	AwaitingCredential State = iota
	// Loading is shown while a summarization request is in flight.
	Loading
	// ShowingSummary is shown after a successful summarization.
	ShowingSummary
	// ShowingError is shown after a failed summarization.
	ShowingError
	// AwaitingSelection is shown when there is no selection text to summarize.
	AwaitingSelection
)

// String returns the wire identifier for the state.
func (s State) String() string {
	switch s {
	case AwaitingCredential:
		return "awaiting_credential"
	case Loading:
		return "loading"
	case ShowingSummary:
		return "showing_summary"
	case ShowingError:
		return "showing_error"
	case AwaitingSelection:
		return "awaiting_selection"
	default:
		return "unknown"
	}
}

// Event is something that happened to the session.
type Event int

const (
	// EventCredentialSaved fires when a valid API key was stored.
	EventCredentialSaved Event = iota
	// EventCredentialCleared fires when the stored key was removed.
	EventCredentialCleared
	// EventSummarizeStarted fires when a summarization attempt begins.
	EventSummarizeStarted
	// EventNoSelection fires when an attempt found no selection text.
	EventNoSelection
	// EventSummarySucceeded fires when an attempt produced a summary.
	EventSummarySucceeded
	// EventSummarizeFailed fires when an attempt failed for any reason.
	EventSummarizeFailed
)

// String returns the identifier for the event, used in logs and metrics.
func (e Event) String() string {
	switch e {
	case EventCredentialSaved:
		return "credential_saved"
	case EventCredentialCleared:
		return "credential_cleared"
	case EventSummarizeStarted:
		return "summarize_started"
	case EventNoSelection:
		return "no_selection"
	case EventSummarySucceeded:
		return "summary_succeeded"
	case EventSummarizeFailed:
		return "summarize_failed"
	default:
		return "unknown"
	}
}

// Next returns the state after event occurs in state.
// It is total: every (state, event) pair yields a defined next state.
// Clearing the credential wins from any state; an unknown event leaves the
// state unchanged.
func Next(state State, event Event) State {
	switch event {
	case EventCredentialCleared:
		return AwaitingCredential
	case EventCredentialSaved, EventSummarizeStarted:
		return Loading
	case EventNoSelection:
		return AwaitingSelection
	case EventSummarySucceeded:
		return ShowingSummary
	case EventSummarizeFailed:
		return ShowingError
	default:
		return state
	}
}
