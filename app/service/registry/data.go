package registry

import (
	"time"

	"meditrack/app/service/intake"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ChatMessage is one rendered line of a session transcript.
type ChatMessage struct {
	Role      Role         `json:"role"`
	Text      string       `json:"text"`
	Style     intake.Style `json:"style"`
	Timestamp time.Time    `json:"timestamp"`
}

func assistantMessage(reply intake.Reply) ChatMessage {
	return ChatMessage{
		Role:      RoleAssistant,
		Text:      reply.Text,
		Style:     reply.Style,
		Timestamp: time.Now(),
	}
}

func userMessage(text string) ChatMessage {
	return ChatMessage{
		Role:      RoleUser,
		Text:      text,
		Style:     intake.StylePlain,
		Timestamp: time.Now(),
	}
}
