package logic

import "bothint/internal/domain"

// MessageStore provides access to the conversation transcript
type MessageStore interface {
	AddMessage(msg domain.ChatMessage)
	GetMessage(id string) (domain.ChatMessage, bool)
	GetAllMessages() []domain.ChatMessage
	Len() int
}
