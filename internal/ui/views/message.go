package views

import (
	"strings"

	"bothint/internal/domain"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// MessageRenderer handles rendering of transcript entries
type MessageRenderer struct {
	styles *Styles
}

// NewMessageRenderer creates a new message renderer
func NewMessageRenderer(styles *Styles) *MessageRenderer {
	return &MessageRenderer{styles: styles}
}

// RenderMessage renders one message as "15:04 author  text", wrapping the
// text under itself when it is wider than width
func (r *MessageRenderer) RenderMessage(msg domain.ChatMessage, width int) string {
	nameStyle := r.styles.UserName
	if msg.FromBot {
		nameStyle = r.styles.BotName
	}

	prefix := r.styles.Timestamp.Render(msg.At.Format("15:04")) + " " + nameStyle.Render(msg.Author) + "  "
	indent := lipgloss.Width(prefix)

	textWidth := width - indent
	if textWidth < 10 {
		textWidth = 10
	}
	lines := strings.Split(wordwrap.String(msg.Text, textWidth), "\n")
	for i, line := range lines {
		lines[i] = r.styles.MessageText.Render(line)
		if i > 0 {
			lines[i] = strings.Repeat(" ", indent) + lines[i]
		}
	}
	return prefix + strings.Join(lines, "\n")
}

// RenderTranscript renders all messages oldest first
func (r *MessageRenderer) RenderTranscript(msgs []domain.ChatMessage, width int) string {
	if len(msgs) == 0 {
		return r.styles.Dim.Render("No messages yet. Type / to see what the bot can do.")
	}
	rendered := make([]string, len(msgs))
	for i, msg := range msgs {
		rendered[i] = r.RenderMessage(msg, width)
	}
	return strings.Join(rendered, "\n")
}
