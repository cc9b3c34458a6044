package logic

import (
	"sync"

	"bothint/internal/domain"
)

// MemoryMessageStore is an in-memory implementation of MessageStore.
// Messages keep insertion order.
type MemoryMessageStore struct {
	mu       sync.RWMutex
	messages []domain.ChatMessage
	byID     map[string]int
}

// NewMemoryMessageStore creates a new memory-based message store
func NewMemoryMessageStore() *MemoryMessageStore {
	return &MemoryMessageStore{
		byID: make(map[string]int),
	}
}

func (s *MemoryMessageStore) AddMessage(msg domain.ChatMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i, ok := s.byID[msg.ID]; ok {
		s.messages[i] = msg
		return
	}
	s.byID[msg.ID] = len(s.messages)
	s.messages = append(s.messages, msg)
}

func (s *MemoryMessageStore) GetMessage(id string) (domain.ChatMessage, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.byID[id]
	if !ok {
		return domain.ChatMessage{}, false
	}
	return s.messages[i], true
}

func (s *MemoryMessageStore) GetAllMessages() []domain.ChatMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Return a copy to prevent external modification
	result := make([]domain.ChatMessage, len(s.messages))
	copy(result, s.messages)
	return result
}

func (s *MemoryMessageStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.messages)
}
