package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title           lipgloss.Style
	Dim             lipgloss.Style
	Status          lipgloss.Style
	StatusError     lipgloss.Style
	Transcript      lipgloss.Style
	UserName        lipgloss.Style
	BotName         lipgloss.Style
	MessageText     lipgloss.Style
	Timestamp       lipgloss.Style
	Composer        lipgloss.Style
	HintBox         lipgloss.Style
	HintHeader      lipgloss.Style
	HintRow         lipgloss.Style
	HintRowActive   lipgloss.Style
	HintTrigger     lipgloss.Style
	HintDescription lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Dim: lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Transcript: lipgloss.NewStyle().
			Padding(0, 1),
		UserName:    lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),  // blue
		BotName:     lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true),  // green
		MessageText: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Timestamp:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Composer: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		HintBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")),
		HintHeader: lipgloss.NewStyle().
			Padding(0, 1).
			Faint(true),
		HintRow: lipgloss.NewStyle().
			Padding(0, 1),
		HintRowActive: lipgloss.NewStyle().
			Padding(0, 1).
			Background(lipgloss.Color("238")),
		HintTrigger:     lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true), // yellow
		HintDescription: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	}
}
