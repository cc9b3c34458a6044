package ui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"bothint/internal/commands"
	"bothint/internal/config"
	"bothint/internal/domain"
	"bothint/internal/eventbus"
	"bothint/internal/logic"
	"bothint/internal/ui/composer"
	"bothint/internal/ui/hint"
	"bothint/internal/ui/views"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	zone "github.com/lrstanley/bubblezone"
)

const (
	userName = "you"
	botName  = "bot"
)

// globalKeys are handled before the suggestion list sees the key
type globalKeys struct {
	Quit key.Binding
	Help key.Binding
}

// Model represents the application state
type Model struct {
	bus     eventbus.EventBus
	zones   *zone.Manager // nil when mouse hit-testing is off
	program *tea.Program  // reference to Bubble Tea program for terminal management

	renderer     *views.Renderer
	helpRenderer *HelpRenderer
	helpOps      *HelpOps
	keys         globalKeys
	hintKeys     hint.KeyMap

	composer   *composer.Model
	transcript viewport.Model
	messages   logic.MessageStore

	width  int
	height int

	statusMessage string
	statusIsError bool
	inPagerMode   bool
	now           func() time.Time
}

// NewModel creates a new UI model
func NewModel(cfg *config.Config, bus eventbus.EventBus, zones *zone.Manager) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	renderer := views.NewRenderer(nil)
	opts := HintOptions(cfg, renderer.Styles(), zones)

	m := &Model{
		bus:          bus,
		zones:        zones,
		renderer:     renderer,
		helpRenderer: NewHelpRenderer(),
		helpOps:      NewHelpOps(nil),
		keys: globalKeys{
			Quit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
			Help: key.NewBinding(key.WithKeys("f1"), key.WithHelp("F1", "help")),
		},
		hintKeys:   opts.Keys,
		composer:   composer.New(bus, commands.NewRegistry(cfg.Commands), opts),
		transcript: viewport.New(80, 10),
		messages:   logic.NewMemoryMessageStore(),
		width:      80,
		height:     24,
		now:        time.Now,
	}
	m.refreshTranscript()
	return m
}

// HintOptions converts the [hint] and [keys] config sections into list options
func HintOptions(cfg *config.Config, styles *views.Styles, zones *zone.Manager) hint.Options {
	return hint.Options{
		VisibleRows: cfg.Hint.VisibleRows,
		RowHeight:   cfg.Hint.RowHeight,
		Width:       cfg.Hint.Width,
		Keys: hint.DefaultKeyMap().WithKeys(
			cfg.Keys.Up, cfg.Keys.Down, cfg.Keys.Next, cfg.Keys.Select, cfg.Keys.Close,
		),
		Styles: styles,
		Zones:  zones,
	}
}

// SetProgram sets the tea.Program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

// Init returns the initial commands
func (m *Model) Init() tea.Cmd {
	return m.composer.Init()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := m.update(msg)
	m.layout()
	return model, cmd
}

func (m *Model) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.composer.SetWidth(msg.Width - 6)
		m.refreshTranscript()
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case composer.SubmitMsg:
		m.handleSubmit(msg.Text)
		return m, nil

	case CommandsReloadedMsg:
		m.composer.SetRegistry(msg.Registry)
		m.bus.Publish(domain.CommandsReloadedEvent{Count: msg.Registry.Len()})
		return m, m.setStatus(fmt.Sprintf("Loaded %d bot commands", msg.Registry.Len()), false)

	case helpPagerMsg:
		if msg.err != nil {
			slog.Error("Help pager failed", "error", msg.err)
			return m, m.setStatus("Help unavailable: "+msg.err.Error(), true)
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	case clearStatusMsg:
		m.statusMessage = ""
		m.statusIsError = false
		return m, nil

	default:
		// cursor blink and friends
		return m, m.composer.Update(msg)
	}
}

// handleKey offers the key to the suggestion list listeners first; the
// composer only sees keys nobody stopped
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.composer.Unmount()
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		return m.fetchHelpPager(m.helpRenderer.RenderCommandReference(m.composer.Registry().All(), m.hintKeys))
	}

	ev := domain.NewKeyDownEvent(msg)
	m.bus.Publish(ev)
	if ev.Stopped() {
		return nil
	}

	switch msg.Type {
	case tea.KeyPgUp:
		m.transcript.HalfPageUp()
		return nil
	case tea.KeyPgDown:
		m.transcript.HalfPageDown()
		return nil
	}
	return m.composer.Update(msg)
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	ev := domain.NewMouseEvent(msg)
	m.bus.Publish(ev)
	if ev.Stopped() {
		return nil
	}
	var cmd tea.Cmd
	m.transcript, cmd = m.transcript.Update(msg)
	return cmd
}

// handleSubmit records a sent message and, for slash commands, the bot's answer
func (m *Model) handleSubmit(text string) {
	m.appendMessage(userName, text, false)

	sent := domain.MessageSentEvent{Text: text}
	if cmd, args, ok := m.composer.Registry().ParseInvocation(text); ok {
		sent.Command = &cmd
		sent.Args = args
		reply := fmt.Sprintf("%s executed", cmd.Trigger())
		if args != "" {
			reply += fmt.Sprintf(" (args: %s)", args)
		}
		m.appendMessage(botName, reply, true)
	} else if strings.HasPrefix(text, "/") && len(text) > 1 {
		m.appendMessage(botName, fmt.Sprintf("unknown command %s", strings.Fields(text)[0]), true)
	}
	m.bus.Publish(sent)
}

func (m *Model) appendMessage(author, text string, fromBot bool) {
	m.messages.AddMessage(domain.ChatMessage{
		ID:      uuid.NewString(),
		Author:  author,
		Text:    text,
		At:      m.now(),
		FromBot: fromBot,
	})
	m.refreshTranscript()
	m.transcript.GotoBottom()
}

func (m *Model) refreshTranscript() {
	m.transcript.Width = max(1, m.width-2)
	m.transcript.SetContent(m.renderer.Messages().RenderTranscript(m.messages.GetAllMessages(), m.transcript.Width))
}

// layout gives the transcript whatever height the chrome and the
// suggestion list leave over
func (m *Model) layout() {
	hintHeight := 0
	if v := m.composer.HintView(); v != "" {
		hintHeight = lipgloss.Height(v)
	}
	h := max(1, m.height-m.renderer.ChromeHeight()-hintHeight)
	if h == m.transcript.Height {
		return
	}
	atBottom := m.transcript.AtBottom()
	m.transcript.Height = h
	if atBottom {
		m.transcript.GotoBottom()
	} else {
		m.transcript.SetYOffset(m.transcript.YOffset)
	}
}

func (m *Model) setStatus(msg string, isError bool) tea.Cmd {
	m.statusMessage = msg
	m.statusIsError = isError
	return tea.Tick(3*time.Second, func(t time.Time) tea.Msg { return clearStatusMsg{} })
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	return func() tea.Msg {
		if m.program == nil {
			return helpPagerMsg{err: fmt.Errorf("program not set")}
		}
		m.program.Send(pauseRenderingMsg{})
		err := m.helpOps.ShowHelpInPager(helpContent)
		m.program.Send(resumeRenderingMsg{})
		return helpPagerMsg{err: err}
	}
}

// Messages returns the transcript
func (m *Model) Messages() []domain.ChatMessage {
	return m.messages.GetAllMessages()
}

// Composer returns the input line
func (m *Model) Composer() *composer.Model {
	return m.composer
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}

	out := m.renderer.Render(views.ViewState{
		Width:         m.width,
		Height:        m.height,
		Transcript:    m.transcript.View(),
		Hint:          m.composer.HintView(),
		Composer:      m.composer.View(),
		StatusMessage: m.statusMessage,
		StatusIsError: m.statusIsError,
		CommandCount:  m.composer.Registry().Len(),
	})
	if m.zones != nil {
		return m.zones.Scan(out)
	}
	return out
}
