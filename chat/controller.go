// Package chat owns the course assistant conversation: the widget state
// machine, the bounded transcript, and the exchange with the assistant
// backend. One controller instance serves one course page; there are no
// package-level mutable globals.
package chat

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ai8v/coursepage/domain"
	"github.com/ai8v/coursepage/store"
)

// DefaultMaxMessageLen bounds a single user message; longer input is
// truncated, not rejected.
const DefaultMaxMessageLen = 500

// DefaultTimeout aborts an exchange the backend has not answered.
const DefaultTimeout = 35 * time.Second

// FocusDelay is how long the renderer waits before moving focus to the
// input after the widget opens; it rides along on the open UIChange.
const FocusDelay = 100 * time.Millisecond

// Exchanger sends one exchange to the assistant backend.
type Exchanger interface {
	Exchange(ctx context.Context, req *domain.ChatRequest) (*domain.ChatResponse, error)
}

// Guard decides whether an outbound exchange may be forwarded.
type Guard interface {
	Evaluate(ctx context.Context, input interface{}) (string, error)
}

// Config tunes one controller instance.
type Config struct {
	MaxMessageLen int
	Timeout       time.Duration
	ErrorMessage  string // inline error bubble text
}

// Controller manages the chat widget for a single course page view.
type Controller struct {
	courseID int
	store    store.TranscriptStore
	client   Exchanger
	guard    Guard // may be nil
	cfg      Config

	mu      sync.Mutex
	open    bool
	sending bool
}

// NewController creates a controller for one course.
func NewController(courseID int, ts store.TranscriptStore, client Exchanger, guard Guard, cfg Config) *Controller {
	if cfg.MaxMessageLen <= 0 {
		cfg.MaxMessageLen = DefaultMaxMessageLen
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.ErrorMessage == "" {
		cfg.ErrorMessage = "حصل مشكلة في الاتصال. جرّب تاني."
	}
	return &Controller{
		courseID: courseID,
		store:    ts,
		client:   client,
		guard:    guard,
		cfg:      cfg,
	}
}

// UIChange describes what the renderer must do after a widget transition.
type UIChange struct {
	Open        bool
	FocusTarget string // "input" after opening, "fab" after closing
	FocusAfter  time.Duration
	AriaLabel   string
	StopPulse   bool
}

// Toggle flips the widget between closed and open.
func (c *Controller) Toggle() UIChange {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.open = !c.open
	if c.open {
		return UIChange{
			Open:        true,
			FocusTarget: "input",
			FocusAfter:  FocusDelay,
			AriaLabel:   "Close course assistant",
			StopPulse:   true,
		}
	}
	return UIChange{
		FocusTarget: "fab",
		AriaLabel:   "Open course assistant",
	}
}

// Close closes the widget from the header control or an escape key.
// Returns false when the widget was already closed (no-op).
func (c *Controller) Close() (UIChange, bool) {
	c.mu.Lock()
	isOpen := c.open
	c.mu.Unlock()
	if !isOpen {
		return UIChange{}, false
	}
	return c.Toggle(), true
}

// IsOpen reports the widget state.
func (c *Controller) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.open
}

// IsSending reports whether an exchange is in flight.
func (c *Controller) IsSending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sending
}

// Result is the settled outcome of a Send.
type Result struct {
	// Sent is false when the submission was a no-op: empty input or an
	// exchange already in flight.
	Sent bool

	// Reply is the persisted assistant reply on success.
	Reply string

	// ErrorText is the inline error bubble on any failure path. It is
	// never written to the transcript.
	ErrorText string
}

// Send runs one message exchange: validate, persist the user message, carry
// the prior transcript, call the backend under the timeout, and persist the
// reply. At most one exchange is in flight; a second submission while
// sending is a no-op.
func (c *Controller) Send(ctx context.Context, text string) Result {
	message := strings.TrimSpace(text)
	if message == "" {
		return Result{}
	}
	if len([]rune(message)) > c.cfg.MaxMessageLen {
		message = string([]rune(message)[:c.cfg.MaxMessageLen])
	}

	c.mu.Lock()
	if c.sending {
		c.mu.Unlock()
		return Result{}
	}
	c.sending = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.sending = false
		c.mu.Unlock()
	}()

	exchangeID := "chat_" + uuid.New().String()[:8]

	// Persist the user message first; history is best-effort, so a write
	// failure only costs continuity, never the exchange itself.
	if err := c.store.Append(ctx, c.courseID, domain.ChatMessage{Role: domain.ChatRoleUser, Text: message}); err != nil {
		log.Printf("WARN: %s: failed to persist user message: %v", exchangeID, err)
	}

	// The carried history is the transcript as stored, minus the message
	// just added: it travels in the primary message field instead.
	history, err := c.store.Read(ctx, c.courseID)
	if err != nil {
		log.Printf("WARN: %s: failed to read transcript: %v", exchangeID, err)
		history = nil
	}
	if n := len(history); n > 0 && history[n-1].Role == domain.ChatRoleUser && history[n-1].Text == message {
		history = history[:n-1]
	}

	if c.guard != nil {
		decision, err := c.guard.Evaluate(ctx, map[string]interface{}{
			"course_id": c.courseID,
			"message":   message,
		})
		if err != nil {
			log.Printf("WARN: %s: chat guard evaluation failed: %v", exchangeID, err)
		} else if decision != "allow" {
			log.Printf("WARN: %s: chat guard blocked exchange for course %d", exchangeID, c.courseID)
			return Result{Sent: true, ErrorText: c.cfg.ErrorMessage}
		}
	}

	reqCtx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	resp, err := c.client.Exchange(reqCtx, &domain.ChatRequest{
		CourseID: c.courseID,
		Message:  message,
		History:  history,
	})

	if err != nil {
		log.Printf("WARN: %s: assistant exchange failed: %v", exchangeID, err)
		return Result{Sent: true, ErrorText: c.cfg.ErrorMessage}
	}

	if resp.Status != "success" || resp.Reply == "" {
		errText := resp.Message
		if errText == "" {
			errText = c.cfg.ErrorMessage
		}
		return Result{Sent: true, ErrorText: errText}
	}

	if err := c.store.Append(ctx, c.courseID, domain.ChatMessage{Role: domain.ChatRoleAssistant, Text: resp.Reply}); err != nil {
		log.Printf("WARN: %s: failed to persist assistant reply: %v", exchangeID, err)
	}
	return Result{Sent: true, Reply: resp.Reply}
}

// History returns the stored transcript for the controller's course.
func (c *Controller) History(ctx context.Context) []domain.ChatMessage {
	history, err := c.store.Read(ctx, c.courseID)
	if err != nil {
		log.Printf("WARN: failed to read transcript for course %d: %v", c.courseID, err)
		return nil
	}
	return history
}
