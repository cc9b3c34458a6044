package ui

import (
	"bothint/internal/commands"
)

// CommandsReloadedMsg replaces the bot command set, sent when the config file changes
type CommandsReloadedMsg struct {
	Registry *commands.Registry
}

// clearStatusMsg clears the status line after a delay
type clearStatusMsg struct{}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
