package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap lists the bindings shown in the help footer and popup. Dispatch itself happens
// in the input modes.
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Open     key.Binding
	Back     key.Binding
	NextPage key.Binding
	PrevPage key.Binding
	Home     key.Binding
	GoTo     key.Binding
	Form     key.Binding
	History  key.Binding
	Reload   key.Binding
	Stop     key.Binding
	Pager    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Open:     key.NewBinding(key.WithKeys("enter", "right", "l"), key.WithHelp("enter", "open")),
		Back:     key.NewBinding(key.WithKeys("backspace", "left", "b"), key.WithHelp("⌫/b", "back")),
		NextPage: key.NewBinding(key.WithKeys("n", " ", "pgdown"), key.WithHelp("n", "next page")),
		PrevPage: key.NewBinding(key.WithKeys("p", "pgup"), key.WithHelp("p", "prev page")),
		Home:     key.NewBinding(key.WithKeys("H"), key.WithHelp("H", "home")),
		GoTo:     key.NewBinding(key.WithKeys("g", ":"), key.WithHelp("g", "go to url")),
		Form:     key.NewBinding(key.WithKeys("G"), key.WithHelp("G", "address form")),
		History:  key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "history")),
		Reload:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Stop:     key.NewBinding(key.WithKeys("s", "esc"), key.WithHelp("s/esc", "stop")),
		Pager:    key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "open in pager")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Back, k.NextPage, k.GoTo, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Open, k.Back},
		{k.NextPage, k.PrevPage, k.Home, k.History},
		{k.GoTo, k.Form, k.Reload, k.Stop, k.Pager},
		{k.Help, k.Quit},
	}
}
