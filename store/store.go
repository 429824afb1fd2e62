// Package store defines the chat transcript store and its implementations.
package store

import (
	"context"

	"github.com/ai8v/coursepage/domain"
)

// DefaultMaxHistory is the transcript capacity bound.
const DefaultMaxHistory = 20

// KeyPrefix namespaces transcript rows per course.
const KeyPrefix = "ai8v_chat_"

// TranscriptStore persists bounded per-course conversation transcripts.
// Persistence is best-effort: callers treat Append errors as advisory and a
// failed Read degrades to an empty transcript.
type TranscriptStore interface {
	// Append adds one message to a course transcript and trims it to the
	// capacity bound. Error-role messages are never persisted.
	Append(ctx context.Context, courseID int, msg domain.ChatMessage) error

	// Read returns the ordered transcript for a course. A missing or
	// corrupt entry comes back as an empty transcript, not an error.
	Read(ctx context.Context, courseID int) ([]domain.ChatMessage, error)

	// Lifecycle
	Close() error
}

// Trim enforces the capacity policy: while the transcript exceeds max,
// drop the oldest entry, and if the new head is an assistant reply drop it
// too, so the transcript always starts on a whole user/assistant exchange.
func Trim(history []domain.ChatMessage, max int) []domain.ChatMessage {
	for len(history) > max {
		history = history[1:]
		if len(history) > 0 && history[0].Role == domain.ChatRoleAssistant {
			history = history[1:]
		}
	}
	return history
}
