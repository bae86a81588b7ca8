package app

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Quit       key.Binding
	FocusPane1 key.Binding
	FocusPane2 key.Binding
	TabFocus   key.Binding

	Up      key.Binding
	Down    key.Binding
	View    key.Binding
	Edit    key.Binding
	New     key.Binding
	Delete  key.Binding
	Refresh key.Binding
	Copy    key.Binding
	Help    key.Binding

	ScrollUp       key.Binding
	ScrollDown     key.Binding
	PageUp         key.Binding
	PageDown       key.Binding
	ScrollToTop    key.Binding
	ScrollToBottom key.Binding
	CopyLogs       key.Binding
	Export         key.Binding

	Cancel key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:       key.NewBinding(key.WithKeys("ctrl+c", "q")),
		FocusPane1: key.NewBinding(key.WithKeys("1")),
		FocusPane2: key.NewBinding(key.WithKeys("2")),
		TabFocus:   key.NewBinding(key.WithKeys("tab")),

		Up:      key.NewBinding(key.WithKeys("k", "up")),
		Down:    key.NewBinding(key.WithKeys("j", "down")),
		View:    key.NewBinding(key.WithKeys("enter", "v")),
		Edit:    key.NewBinding(key.WithKeys("e")),
		New:     key.NewBinding(key.WithKeys("n")),
		Delete:  key.NewBinding(key.WithKeys("x")),
		Refresh: key.NewBinding(key.WithKeys("r")),
		Copy:    key.NewBinding(key.WithKeys("c")),
		Help:    key.NewBinding(key.WithKeys("?")),

		ScrollUp:       key.NewBinding(key.WithKeys("k", "up")),
		ScrollDown:     key.NewBinding(key.WithKeys("j", "down")),
		PageUp:         key.NewBinding(key.WithKeys("ctrl+u")),
		PageDown:       key.NewBinding(key.WithKeys("ctrl+d")),
		ScrollToTop:    key.NewBinding(key.WithKeys("g")),
		ScrollToBottom: key.NewBinding(key.WithKeys("G")),
		CopyLogs:       key.NewBinding(key.WithKeys("y")),
		Export:         key.NewBinding(key.WithKeys("E")),

		Cancel: key.NewBinding(key.WithKeys("esc")),
	}
}
