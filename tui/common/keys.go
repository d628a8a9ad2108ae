package common

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines shared key bindings across all views.
type KeyMap struct {
	Quit        key.Binding
	ForceQuit   key.Binding
	Refresh     key.Binding
	Up          key.Binding
	Down        key.Binding
	Open        key.Binding // enter: open the selected thread
	Back        key.Binding // esc: return to the board listing
	NextRef     key.Binding // tab: preview the next backlink
	PrevRef     key.Binding // shift+tab: preview the previous backlink
	NewEditor   key.Binding // p: new thread via $EDITOR
	NewInline   key.Binding // P: new thread via inline form
	Reply       key.Binding // c: reply via $EDITOR
	ReplyInline key.Binding // C: reply via inline form
	ToggleImage key.Binding // i: show image thumbnail
	ToggleHints key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open thread"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "back"),
		),
		NextRef: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next quote"),
		),
		PrevRef: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev quote"),
		),
		NewEditor: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "new thread ($EDITOR)"),
		),
		NewInline: key.NewBinding(
			key.WithKeys("P"),
			key.WithHelp("P", "new thread (inline)"),
		),
		Reply: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "reply ($EDITOR)"),
		),
		ReplyInline: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "reply (inline)"),
		),
		ToggleImage: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "image"),
		),
		ToggleHints: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "hints"),
		),
	}
}

// Hints lists the bindings shown in the footer.
func (k KeyMap) Hints() []key.Binding {
	return []key.Binding{
		k.Up, k.Down, k.Open, k.Back, k.NextRef, k.Refresh,
		k.NewInline, k.ReplyInline, k.ToggleImage, k.Quit,
	}
}
