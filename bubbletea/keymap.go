package bubbletea

import "github.com/charmbracelet/bubbles/key"

// KeyMap binds keys to cursor movement and viewer actions. Moving the cursor
// is what triggers a new highlight.
type KeyMap struct {
	Up           key.Binding
	Down         key.Binding
	HalfPageUp   key.Binding
	HalfPageDown key.Binding
	GotoTop      key.Binding // first key of gg
	GotoBottom   key.Binding
	Copy         key.Binding
	Reload       key.Binding
	Quit         key.Binding
}

// DefaultKeyMap returns vim-like cursor keys plus copy, reload and quit.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:           key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "previous line")),
		Down:         key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "next line")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "up half a page")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "down half a page")),
		GotoTop:      key.NewBinding(key.WithKeys("g"), key.WithHelp("gg", "first line")),
		GotoBottom:   key.NewBinding(key.WithKeys("G"), key.WithHelp("G", "last line")),
		Copy:         key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy change")),
		Reload:       key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload file")),
		Quit:         key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}
