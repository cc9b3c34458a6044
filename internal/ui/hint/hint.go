// Package hint implements the bot command suggestion list shown above the
// chat composer.
//
// The list is driven through the event bus: while it is open it subscribes
// to key and mouse events, and it releases those subscriptions on every way
// out (an empty candidate list, Escape, Unmount). The caller decides what a
// selection or a close means through the OnSelect and OnClose callbacks.
package hint

import (
	"log/slog"

	"bothint/internal/domain"
	"bothint/internal/eventbus"
	"bothint/internal/ui/views"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	zone "github.com/lrstanley/bubblezone"
)

// Default layout values
const (
	DefaultVisibleRows = 3
	DefaultRowHeight   = 1
	DefaultWidth       = 60
)

// Options configures a Model
type Options struct {
	VisibleRows int // rows in the scroll window
	RowHeight   int // terminal lines per row
	Width       int
	Keys        KeyMap
	Styles      *views.Styles
	Zones       *zone.Manager // nil disables mouse hit-testing
}

func (o Options) withDefaults() Options {
	if o.VisibleRows < 1 {
		o.VisibleRows = DefaultVisibleRows
	}
	if o.RowHeight < 1 {
		o.RowHeight = DefaultRowHeight
	}
	if o.Width < 1 {
		o.Width = DefaultWidth
	}
	if o.Styles == nil {
		o.Styles = views.NewStyles()
	}
	return o
}

// Model is the command hint list
type Model struct {
	bus      eventbus.EventBus
	onSelect func(domain.Command)
	onClose  func()

	commands      []domain.Command
	open          bool
	selectedIndex int
	windowStart   int

	listeners listenerScope

	opts     Options
	viewport viewport.Model
	help     help.Model
	zoneID   string
}

// New creates a closed list. onSelect and onClose are required.
func New(bus eventbus.EventBus, onSelect func(domain.Command), onClose func(), opts Options) *Model {
	opts = opts.withDefaults()
	if isZeroKeyMap(opts.Keys) {
		opts.Keys = DefaultKeyMap()
	}

	m := &Model{
		bus:      bus,
		onSelect: onSelect,
		onClose:  onClose,
		opts:     opts,
		viewport: viewport.New(opts.Width, 0),
		help:     help.New(),
	}
	if opts.Zones != nil {
		m.zoneID = opts.Zones.NewPrefix()
	}
	return m
}

func isZeroKeyMap(km KeyMap) bool {
	return len(km.Up.Keys()) == 0 && len(km.Down.Keys()) == 0 &&
		len(km.Next.Keys()) == 0 && len(km.Select.Keys()) == 0 && len(km.Close.Keys()) == 0
}

// SetCommands replaces the candidate list. A non-empty list opens the hint
// and highlights the first entry; an empty one closes it.
func (m *Model) SetCommands(cmds []domain.Command) {
	m.commands = cmds
	m.selectedIndex = 0
	m.windowStart = 0

	wasOpen := m.open
	m.open = len(cmds) > 0

	switch {
	case m.open && !wasOpen:
		m.listeners.acquire(m.bus, m.handleKeyDown, m.handleMouse)
		slog.Debug("command hint opened", "candidates", len(cmds))
	case !m.open && wasOpen:
		m.detach()
	}
	m.refresh()
}

// Commands returns the current candidate list
func (m *Model) Commands() []domain.Command {
	return m.commands
}

// IsOpen reports whether the list is showing
func (m *Model) IsOpen() bool {
	return m.open
}

// SelectedIndex returns the highlighted row
func (m *Model) SelectedIndex() int {
	return m.selectedIndex
}

// WindowStart returns the index of the first visible row
func (m *Model) WindowStart() int {
	return m.windowStart
}

// ScrollOffset returns the rendered list's vertical offset in lines
func (m *Model) ScrollOffset() int {
	return m.viewport.YOffset
}

// Listening reports whether the list currently holds its input subscriptions
func (m *Model) Listening() bool {
	return m.listeners.held()
}

// Unmount releases the input subscriptions. The model must not be used after.
func (m *Model) Unmount() {
	if m.open {
		m.detach()
		return
	}
	m.listeners.releaseAll()
}

// Hover highlights row i without moving the window
func (m *Model) Hover(i int) {
	if !m.open || i < 0 || i >= len(m.commands) || i == m.selectedIndex {
		return
	}
	m.selectedIndex = i
	m.refresh()
}

// Click commits row i
func (m *Model) Click(i int) {
	if !m.open || i < 0 || i >= len(m.commands) {
		return
	}
	m.onSelect(m.commands[i])
}

// detach is the single way the list goes from open to closed
func (m *Model) detach() {
	m.open = false
	m.listeners.releaseAll()
	slog.Debug("command hint closed")
}

func (m *Model) close() {
	m.detach()
	m.onClose()
}

func (m *Model) handleKeyDown(e eventbus.DomainEvent) {
	ev, ok := e.(eventbus.KeyDownEvent)
	if !ok || !m.open {
		return
	}
	keys := m.opts.Keys

	switch {
	case key.Matches(ev.Key, keys.Close):
		ev.Stop()
		m.close()
	case key.Matches(ev.Key, keys.Select):
		ev.Stop()
		m.onSelect(m.commands[m.selectedIndex])
	case key.Matches(ev.Key, keys.Up):
		ev.Stop()
		m.selectedIndex, m.windowStart = moveUp(m.selectedIndex, m.windowStart, len(m.commands), m.opts.VisibleRows)
		m.refresh()
	case key.Matches(ev.Key, keys.Down), key.Matches(ev.Key, keys.Next):
		ev.Stop()
		m.selectedIndex, m.windowStart = moveDown(m.selectedIndex, m.windowStart, len(m.commands), m.opts.VisibleRows)
		m.refresh()
	}
}

func (m *Model) handleMouse(e eventbus.DomainEvent) {
	ev, ok := e.(eventbus.MouseEvent)
	if !ok || !m.open {
		return
	}

	row := m.rowAt(ev)
	switch {
	case ev.IsMotion():
		if row >= 0 {
			m.Hover(row)
		}
	case ev.IsClick():
		ev.Stop()
		if row >= 0 {
			m.Click(row)
			return
		}
		m.close()
	}
}

// rowAt maps a mouse event to a visible row, or -1
func (m *Model) rowAt(ev eventbus.MouseEvent) int {
	if m.opts.Zones == nil {
		return -1
	}
	end := min(len(m.commands), m.windowStart+m.opts.VisibleRows)
	for i := m.windowStart; i < end; i++ {
		if m.opts.Zones.Get(m.rowZone(i)).InBounds(ev.Mouse) {
			return i
		}
	}
	return -1
}
