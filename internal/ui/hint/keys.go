package hint

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keys the hint list reacts to while open
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Next   key.Binding
	Select key.Binding
	Close  key.Binding
}

// DefaultKeyMap returns the stock bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "previous"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "next"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("↵", "select"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
	}
}

// WithKeys returns a copy of km with the key lists of non-empty arguments replaced.
// Help text is kept.
func (km KeyMap) WithKeys(up, down, next, sel, closeKeys []string) KeyMap {
	if len(up) > 0 {
		km.Up.SetKeys(up...)
	}
	if len(down) > 0 {
		km.Down.SetKeys(down...)
	}
	if len(next) > 0 {
		km.Next.SetKeys(next...)
	}
	if len(sel) > 0 {
		km.Select.SetKeys(sel...)
	}
	if len(closeKeys) > 0 {
		km.Close.SetKeys(closeKeys...)
	}
	return km
}

// ShortHelp implements help.KeyMap
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Next, km.Up, km.Down, km.Select, km.Close}
}

// FullHelp implements help.KeyMap
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{km.Next, km.Up, km.Down}, {km.Select, km.Close}}
}
