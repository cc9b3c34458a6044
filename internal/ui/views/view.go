package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width         int
	Height        int
	Transcript    string // rendered transcript viewport
	Hint          string // rendered suggestion list, empty when closed
	Composer      string
	StatusMessage string
	StatusIsError bool
	CommandCount  int
}

// Renderer handles all view rendering
type Renderer struct {
	styles   *Styles
	messages *MessageRenderer
}

// NewRenderer creates a new renderer
func NewRenderer(styles *Styles) *Renderer {
	if styles == nil {
		styles = NewStyles()
	}
	return &Renderer{
		styles:   styles,
		messages: NewMessageRenderer(styles),
	}
}

// Messages returns the transcript renderer
func (r *Renderer) Messages() *MessageRenderer {
	return r.messages
}

// Styles returns the styles shared by all renderers
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// ChromeHeight is the number of lines used by everything except the
// transcript and the suggestion list
func (r *Renderer) ChromeHeight() int {
	// title, composer with border, status
	return 1 + 3 + 1
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80
	}

	// Title line with the command count right-aligned
	logo := r.styles.Title.Render("bothint")
	right := r.styles.Dim.Render(fmt.Sprintf("%d bot commands", state.CommandCount))
	var titleLine string
	if pad := termWidth - lipgloss.Width(logo) - lipgloss.Width(right); pad > 0 {
		titleLine = logo + strings.Repeat(" ", pad) + right
	} else {
		titleLine = logo + "  " + right
	}

	parts := []string{titleLine, r.styles.Transcript.Render(state.Transcript)}
	if state.Hint != "" {
		parts = append(parts, state.Hint)
	}
	parts = append(parts, r.styles.Composer.Width(max(1, termWidth-2)).Render(state.Composer))

	status := r.styles.Status.Render("F1 help · Ctrl+C quit")
	if state.StatusMessage != "" {
		if state.StatusIsError {
			status = r.styles.StatusError.Render(state.StatusMessage)
		} else {
			status = r.styles.Status.Render(state.StatusMessage)
		}
	}
	parts = append(parts, status)

	out := lipgloss.JoinVertical(lipgloss.Left, parts...)
	if state.Height > 0 {
		out = lipgloss.NewStyle().MaxHeight(state.Height).Render(out)
	}
	return out
}
