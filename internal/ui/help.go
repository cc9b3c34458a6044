package ui

import (
	"fmt"
	"strings"
	"time"

	"bothint/internal/domain"
	"bothint/internal/ui/hint"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"
)

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

// HelpRenderer renders the command reference
type HelpRenderer struct{}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{}
}

// RenderCommandReference lists the bot commands and the keys of the hint list
func (r *HelpRenderer) RenderCommandReference(cmds []domain.Command, keys hint.KeyMap) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder

	help.WriteString(titleStyle.Render("bothint help"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Bot commands"))
	help.WriteString("\n")
	if len(cmds) == 0 {
		help.WriteString(descStyle.Render("  (none configured)"))
		help.WriteString("\n")
	}
	width := 0
	for _, c := range cmds {
		width = max(width, lipgloss.Width(c.Trigger()))
	}
	for _, c := range cmds {
		pad := strings.Repeat(" ", width-lipgloss.Width(c.Trigger())+2)
		help.WriteString(fmt.Sprintf("  %s%s%s\n", keyStyle.Render(c.Trigger()), pad, descStyle.Render(c.Description)))
	}
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Suggestion list"))
	help.WriteString("\n")
	for _, b := range []struct {
		keys []string
		desc string
	}{
		{append(keys.Next.Keys(), keys.Down.Keys()...), "Next suggestion"},
		{keys.Up.Keys(), "Previous suggestion"},
		{keys.Select.Keys(), "Insert highlighted command"},
		{keys.Close.Keys(), "Close the list"},
	} {
		help.WriteString(fmt.Sprintf("  %-16s %s\n", keyStyle.Render(strings.Join(b.keys, ", ")), descStyle.Render(b.desc)))
	}
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Other"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s            %s\n", keyStyle.Render("/"), descStyle.Render("Start a bot command")))
	help.WriteString(fmt.Sprintf("  %s            %s\n", keyStyle.Render("↵"), descStyle.Render("Send message")))
	help.WriteString(fmt.Sprintf("  %s           %s\n", keyStyle.Render("F1"), descStyle.Render("This help")))
	help.WriteString(fmt.Sprintf("  %s       %s", keyStyle.Render("Ctrl+C"), descStyle.Render("Quit")))

	return help.String()
}

// HelpOps handles help operations
type HelpOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewHelpOps creates a new help operations instance
func NewHelpOps(program *tea.Program) *HelpOps {
	return &HelpOps{
		program: program,
	}
}

// ShowHelpInPager shows help content using ov pager
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	if h.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := h.program.ReleaseTerminal(); err != nil {
		return err
	}

	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(helpContent))
	if err != nil {
		return fmt.Errorf("failed to open pager: %w", err)
	}

	// Don't write the document back to our screen on exit
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
