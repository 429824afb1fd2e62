package view

import (
	"strings"

	"github.com/ai8v/coursepage/catalog"
	"github.com/ai8v/coursepage/domain"
)

// Chat widget defaults, used when the catalog META leaves them blank.
const (
	defaultBotName        = "مساعد الكورس"
	defaultWelcomeMessage = "مرحباً! أنا هنا عشان أساعدك بأي سؤال عن الكورس. اسألني أي حاجة!"
	defaultPlaceholder    = "اكتب سؤالك هنا..."
	defaultErrorMessage   = "حصل مشكلة في الاتصال. جرّب تاني."

	defaultMaxMessageLen = 500
)

// ChatWidgetView is the static chat widget shell for one course page.
type ChatWidgetView struct {
	CourseID       int
	CourseTitle    string
	BotName        string
	WelcomeMessage string
	Placeholder    string
	ErrorMessage   string
	MaxMessageLen  int
}

// BubbleView is one rendered message bubble.
type BubbleView struct {
	RoleClass  string
	Paragraphs []string
}

// BuildChatWidget derives the widget shell, honoring META white-labeling.
// maxMessageLen is the configured input bound so the textarea maxlength and
// the server-side truncation stay in step; zero means the default.
func BuildChatWidget(cat *catalog.Catalog, course *domain.Course, maxMessageLen int) ChatWidgetView {
	if maxMessageLen <= 0 {
		maxMessageLen = defaultMaxMessageLen
	}
	w := ChatWidgetView{
		CourseID:       course.ID,
		CourseTitle:    course.Title,
		BotName:        cat.Meta.ChatBotName,
		WelcomeMessage: cat.Meta.ChatWelcomeMessage,
		Placeholder:    cat.Meta.ChatPlaceholder,
		ErrorMessage:   cat.Meta.ChatErrorMessage,
		MaxMessageLen:  maxMessageLen,
	}
	if w.BotName == "" {
		w.BotName = defaultBotName
	}
	if w.WelcomeMessage == "" {
		w.WelcomeMessage = defaultWelcomeMessage
	}
	if w.Placeholder == "" {
		w.Placeholder = defaultPlaceholder
	}
	if w.ErrorMessage == "" {
		w.ErrorMessage = defaultErrorMessage
	}
	return w
}

// BuildBubble turns one transcript message into a bubble view. Text is split
// on newlines into paragraphs; blank lines are dropped.
func BuildBubble(msg domain.ChatMessage) BubbleView {
	roleClass := "chat-bubble"
	switch msg.Role {
	case domain.ChatRoleUser:
		roleClass += " chat-bubble--user"
	case domain.ChatRoleAssistant:
		roleClass += " chat-bubble--bot"
	case domain.ChatRoleError:
		roleClass += " chat-bubble--error"
	}

	var paragraphs []string
	for _, line := range strings.Split(msg.Text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			paragraphs = append(paragraphs, line)
		}
	}
	return BubbleView{RoleClass: roleClass, Paragraphs: paragraphs}
}

// BuildTranscript renders a stored transcript into bubbles, or the welcome
// bubble when the transcript is empty.
func BuildTranscript(widget ChatWidgetView, history []domain.ChatMessage) []BubbleView {
	if len(history) == 0 {
		return []BubbleView{BuildBubble(domain.ChatMessage{
			Role: domain.ChatRoleAssistant,
			Text: widget.WelcomeMessage,
		})}
	}
	bubbles := make([]BubbleView, 0, len(history))
	for _, msg := range history {
		bubbles = append(bubbles, BuildBubble(msg))
	}
	return bubbles
}
