package composer

import (
	"log/slog"
	"strings"

	"bothint/internal/commands"
	"bothint/internal/domain"
	"bothint/internal/eventbus"
	"bothint/internal/ui/hint"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// SubmitMsg is emitted when the user sends a message
type SubmitMsg struct {
	Text string
}

// Model is the chat input line plus its command hint list
type Model struct {
	bus      eventbus.EventBus
	registry *commands.Registry
	input    textinput.Model
	hint     *hint.Model
	send     key.Binding

	// dismissed hides suggestions until the text changes
	dismissed bool
	lastText  string
}

// New creates a focused composer
func New(bus eventbus.EventBus, registry *commands.Registry, opts hint.Options) *Model {
	ti := textinput.New()
	ti.Placeholder = "Type a message, / for bot commands"
	ti.Prompt = "› "
	ti.CharLimit = 2000
	ti.Focus()

	c := &Model{
		bus:      bus,
		registry: registry,
		input:    ti,
		send:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("↵", "send")),
	}
	c.hint = hint.New(bus, c.selectCommand, c.dismiss, opts)
	return c
}

// Init implements the usual Bubble Tea shape
func (c *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles a key that the hint list did not consume
func (c *Model) Update(msg tea.Msg) tea.Cmd {
	if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, c.send) && !c.hint.IsOpen() {
		return c.submit()
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	c.syncSuggestions()
	return cmd
}

func (c *Model) submit() tea.Cmd {
	text := strings.TrimSpace(c.input.Value())
	if text == "" {
		return nil
	}
	c.input.Reset()
	c.syncSuggestions()
	return func() tea.Msg { return SubmitMsg{Text: text} }
}

// syncSuggestions feeds the hint list whenever the text changed
func (c *Model) syncSuggestions() {
	text := c.input.Value()
	if text == c.lastText {
		return
	}
	c.lastText = text
	c.dismissed = false
	c.hint.SetCommands(c.registry.Suggest(text))
}

func (c *Model) selectCommand(cmd domain.Command) {
	slog.Info("command selected", "command", cmd.Command)
	c.input.SetValue(cmd.Trigger() + " ")
	c.input.CursorEnd()
	c.lastText = c.input.Value()
	c.hint.SetCommands(nil)
	c.bus.Publish(domain.CommandSelectedEvent{Command: cmd})
}

func (c *Model) dismiss() {
	slog.Debug("command hint dismissed", "text", c.input.Value())
	c.dismissed = true
	c.hint.SetCommands(nil)
	c.bus.Publish(domain.HintClosedEvent{})
}

// SetRegistry swaps the command set and refreshes open suggestions
func (c *Model) SetRegistry(r *commands.Registry) {
	c.registry = r
	if c.dismissed {
		return
	}
	c.hint.SetCommands(r.Suggest(c.input.Value()))
}

// Registry returns the current command set
func (c *Model) Registry() *commands.Registry {
	return c.registry
}

// SetWidth resizes the input line
func (c *Model) SetWidth(w int) {
	c.input.Width = max(1, w)
}

// Value returns the current text
func (c *Model) Value() string {
	return c.input.Value()
}

// SetValue replaces the text as if the user had typed it
func (c *Model) SetValue(s string) {
	c.input.SetValue(s)
	c.input.CursorEnd()
	c.syncSuggestions()
}

// Hint exposes the suggestion list
func (c *Model) Hint() *hint.Model {
	return c.hint
}

// Unmount releases the hint list's input listeners
func (c *Model) Unmount() {
	c.hint.Unmount()
}

// View renders the input line
func (c *Model) View() string {
	return c.input.View()
}

// HintView renders the suggestion list, empty when closed
func (c *Model) HintView() string {
	return c.hint.View()
}
