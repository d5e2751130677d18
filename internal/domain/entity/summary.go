package entity

import "time"

// Summary is the result of a successful summarization.
// Exactly one summary is persisted at a time: each success overwrites the
// previous one, never merging or appending.
type Summary struct {
	// Text is the summary produced by the remote provider. Never empty.
	Text string

	// CreatedAt is when the summary was produced.
	CreatedAt time.Time
}
