package domain

// ChatRole is the author of a chat message.
type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
	// ChatRoleError marks a locally generated failure bubble. Error
	// messages are shown inline but never persisted to the transcript.
	ChatRoleError ChatRole = "error"
)

// ChatMessage is a single transcript entry.
type ChatMessage struct {
	Role ChatRole `json:"role"`
	Text string   `json:"text"`
}

// ChatRequest is the exchange payload sent to the assistant backend.
// History carries the transcript as it was before the new message; the new
// message travels only in the Message field.
type ChatRequest struct {
	CourseID int           `json:"courseId"`
	Message  string        `json:"message"`
	History  []ChatMessage `json:"history"`
}

// ChatResponse is the assistant backend reply.
type ChatResponse struct {
	Status  string `json:"status"`
	Reply   string `json:"reply,omitempty"`
	Message string `json:"message,omitempty"`
}

// RatingSubmission is an inbound rating submit request body.
type RatingSubmission struct {
	Value int `json:"value"`
}

// SubmitResult is the upstream response to a rating submission.
type SubmitResult struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}
