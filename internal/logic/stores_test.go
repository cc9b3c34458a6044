package logic

import (
	"sync"
	"testing"

	"bothint/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryMessageStoreKeepsOrder(t *testing.T) {
	s := NewMemoryMessageStore()
	s.AddMessage(domain.ChatMessage{ID: "a", Text: "/ban bob"})
	s.AddMessage(domain.ChatMessage{ID: "b", Text: "/ban executed"})

	all := s.GetAllMessages()
	require.Len(t, all, 2)
	assert.Equal(t, "a", all[0].ID)
	assert.Equal(t, "b", all[1].ID)

	msg, ok := s.GetMessage("b")
	require.True(t, ok)
	assert.Equal(t, "/ban executed", msg.Text)

	_, ok = s.GetMessage("missing")
	assert.False(t, ok)
}

func TestMemoryMessageStoreReplacesSameID(t *testing.T) {
	s := NewMemoryMessageStore()
	s.AddMessage(domain.ChatMessage{ID: "a", Text: "first"})
	s.AddMessage(domain.ChatMessage{ID: "a", Text: "edited"})

	assert.Equal(t, 1, s.Len())
	msg, _ := s.GetMessage("a")
	assert.Equal(t, "edited", msg.Text)
}

func TestMemoryMessageStoreReturnsCopy(t *testing.T) {
	s := NewMemoryMessageStore()
	s.AddMessage(domain.ChatMessage{ID: "a", Text: "hi"})

	all := s.GetAllMessages()
	all[0].Text = "changed"

	msg, _ := s.GetMessage("a")
	assert.Equal(t, "hi", msg.Text)
}

func TestMemoryMessageStoreConcurrentAdds(t *testing.T) {
	s := NewMemoryMessageStore()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.AddMessage(domain.ChatMessage{ID: string(rune('A' + i))})
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 50, s.Len())
}
