package hint

import (
	"strconv"
	"strings"

	"bothint/internal/domain"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

func (m *Model) rowZone(i int) string {
	return m.zoneID + "row" + strconv.Itoa(i)
}

// refresh re-renders the rows into the viewport and scrolls it so that the
// window start is the first visible row.
func (m *Model) refresh() {
	if !m.open {
		m.viewport.SetContent("")
		m.viewport.Height = 0
		m.viewport.SetYOffset(0)
		return
	}

	rows := make([]string, len(m.commands))
	for i, c := range m.commands {
		rows[i] = m.renderRow(i, c)
	}
	m.viewport.Width = m.opts.Width
	m.viewport.Height = min(len(m.commands), m.opts.VisibleRows) * m.opts.RowHeight
	m.viewport.SetContent(strings.Join(rows, "\n"))
	m.ScrollTo(m.windowStart * m.opts.RowHeight)
}

// ScrollTo sets the rendered list's vertical offset in lines
func (m *Model) ScrollTo(top int) {
	m.viewport.SetYOffset(top)
}

func (m *Model) renderRow(i int, c domain.Command) string {
	s := m.opts.Styles
	trigger := s.HintTrigger.Render(c.Trigger())

	room := m.opts.Width - lipgloss.Width(trigger) - 4
	desc := ""
	if room > 0 {
		desc = s.HintDescription.Render(truncate.StringWithTail(c.Description, uint(room), "…"))
	}

	style := s.HintRow
	if i == m.selectedIndex {
		style = s.HintRowActive
	}
	row := style.
		Width(m.opts.Width).
		Height(m.opts.RowHeight).
		MaxHeight(m.opts.RowHeight).
		Render(trigger + "  " + desc)

	if m.opts.Zones != nil {
		row = m.opts.Zones.Mark(m.rowZone(i), row)
	}
	return row
}

// View renders the header and the visible window, or nothing when closed
func (m *Model) View() string {
	if !m.open {
		return ""
	}
	s := m.opts.Styles
	header := s.HintHeader.Width(m.opts.Width).Render(m.help.ShortHelpView(m.opts.Keys.ShortHelp()))
	return s.HintBox.Render(lipgloss.JoinVertical(lipgloss.Left, header, m.viewport.View()))
}
