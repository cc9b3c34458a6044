package domain

import (
	tea "github.com/charmbracelet/bubbletea"
)

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventKeyDown          EventType = "KeyDown"
	EventMouse            EventType = "Mouse"
	EventCommandSelected  EventType = "CommandSelected"
	EventHintClosed       EventType = "HintClosed"
	EventCommandsReloaded EventType = "CommandsReloaded"
	EventMessageSent      EventType = "MessageSent"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// KeyDownEvent is published for every key press the program receives
type KeyDownEvent struct {
	Key tea.KeyMsg
	*Propagation
}

func (e KeyDownEvent) Type() EventType { return EventKeyDown }

// NewKeyDownEvent wraps a key message with fresh propagation state
func NewKeyDownEvent(msg tea.KeyMsg) KeyDownEvent {
	return KeyDownEvent{Key: msg, Propagation: &Propagation{}}
}

// MouseEvent is published for every mouse message the program receives
type MouseEvent struct {
	Mouse tea.MouseMsg
	*Propagation
}

func (e MouseEvent) Type() EventType { return EventMouse }

// NewMouseEvent wraps a mouse message with fresh propagation state
func NewMouseEvent(msg tea.MouseMsg) MouseEvent {
	return MouseEvent{Mouse: msg, Propagation: &Propagation{}}
}

// IsClick reports whether the event is a left-button press
func (e MouseEvent) IsClick() bool {
	return e.Mouse.Action == tea.MouseActionPress && e.Mouse.Button == tea.MouseButtonLeft
}

// IsMotion reports whether the event is pointer movement
func (e MouseEvent) IsMotion() bool {
	return e.Mouse.Action == tea.MouseActionMotion
}

// CommandSelectedEvent is emitted when the user commits a suggestion
type CommandSelectedEvent struct {
	Command Command
}

func (e CommandSelectedEvent) Type() EventType { return EventCommandSelected }

// HintClosedEvent is emitted when the user dismisses the suggestion list
type HintClosedEvent struct{}

func (e HintClosedEvent) Type() EventType { return EventHintClosed }

// CommandsReloadedEvent is emitted when the command set changes on disk
type CommandsReloadedEvent struct {
	Count int
}

func (e CommandsReloadedEvent) Type() EventType { return EventCommandsReloaded }

// MessageSentEvent is emitted when the composer submits a message
type MessageSentEvent struct {
	Text    string
	Command *Command // set when the message invokes a registered command
	Args    string
}

func (e MessageSentEvent) Type() EventType { return EventMessageSent }
