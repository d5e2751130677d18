package summary

import "context"

// Fixed request parameters for the summarization call. The extension issues
// exactly one shape of request; nothing here is user-tunable.
const (
	// Model is the chat-completions model identifier.
	Model = "gpt-3.5-turbo"

	// SystemInstruction is the fixed system message sent with every request.
	SystemInstruction = "You are a helpful assistant that creates concise summaries of text."

	// MaxTokens caps the length of the generated summary.
	MaxTokens = 150

	// Temperature is the sampling temperature for the generation.
	Temperature float32 = 0.7
)

// Message is a single chat message in a completion request or response.
type Message struct {
	Role    string
	Content string
}

// Choice is one candidate completion returned by the provider.
type Choice struct {
	Message Message
}

// Completion is the provider response shape the parser understands:
// an array of choices, each carrying a message with a content string.
type Completion struct {
	Choices []Choice
}

// CompletionRequest describes a single chat-completions call.
type CompletionRequest struct {
	Model       string
	Messages    []Message
	MaxTokens   int
	Temperature float32
}

// Provider performs the remote summarization call.
// Implementations authenticate with the given credential as a bearer token
// and return either a Completion or a categorized error
// (entity.SummaryError with a remote/network kind).
type Provider interface {
	CreateCompletion(ctx context.Context, credential string, req CompletionRequest) (*Completion, error)
}
