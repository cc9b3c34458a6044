package domain

import (
	"strings"
	"time"
)

// Command represents a slash-invocable bot action
type Command struct {
	Command     string `toml:"command"`     // identifier, no leading slash
	Description string `toml:"description"` // human-readable label
}

// Trigger returns the text a user types to invoke the command
func (c Command) Trigger() string {
	return "/" + c.Command
}

// NormalizeName trims whitespace and a leading slash from a command identifier
func NormalizeName(name string) string {
	return strings.TrimPrefix(strings.TrimSpace(name), "/")
}

// Propagation is carried by input events so a handler can mark them consumed.
// Stop merges what a browser splits into preventDefault and stopPropagation:
// once stopped, the host does not forward the input anywhere else.
type Propagation struct {
	stopped bool
}

// Stop marks the event as handled
func (p *Propagation) Stop() {
	p.stopped = true
}

// Stopped reports whether a handler consumed the event
func (p *Propagation) Stopped() bool {
	return p != nil && p.stopped
}

// ChatMessage is one line of the conversation transcript
type ChatMessage struct {
	ID      string
	Author  string
	Text    string
	At      time.Time
	FromBot bool
}
