package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	left    key.Binding
	right   key.Binding
	enter   key.Binding
	esc     key.Binding
	tab     key.Binding
	backtab key.Binding
	space   key.Binding
	quit    key.Binding
	signOut key.Binding
	refresh key.Binding
	copy    key.Binding
	profile key.Binding
	edit    key.Binding
	upload  key.Binding
	remove  key.Binding
	passwd  key.Binding
	resend  key.Binding
	yes     key.Binding
	no      key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	left:    key.NewBinding(key.WithKeys("left", "h")),
	right:   key.NewBinding(key.WithKeys("right", "l")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	tab:     key.NewBinding(key.WithKeys("tab")),
	backtab: key.NewBinding(key.WithKeys("shift+tab")),
	space:   key.NewBinding(key.WithKeys(" ")),
	quit:    key.NewBinding(key.WithKeys("q", "ctrl+c")),
	signOut: key.NewBinding(key.WithKeys("x")),
	refresh: key.NewBinding(key.WithKeys("r")),
	copy:    key.NewBinding(key.WithKeys("c")),
	profile: key.NewBinding(key.WithKeys("p")),
	edit:    key.NewBinding(key.WithKeys("e")),
	upload:  key.NewBinding(key.WithKeys("u")),
	remove:  key.NewBinding(key.WithKeys("d")),
	passwd:  key.NewBinding(key.WithKeys("w")),
	resend:  key.NewBinding(key.WithKeys("ctrl+r")),
	yes:     key.NewBinding(key.WithKeys("y")),
	no:      key.NewBinding(key.WithKeys("n")),
}
