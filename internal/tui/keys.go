package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the bindings the editor dispatches on and shows as help.
// Text entry in Insert, New and Command mode is handled by key type, not here.
type keyMap struct {
	Insert  key.Binding
	New     key.Binding
	Command key.Binding
	Down    key.Binding
	Up      key.Binding
	Top     key.Binding
	Bottom  key.Binding
	Done    key.Binding

	Commit  key.Binding
	Cancel  key.Binding
	Discard key.Binding
	Run     key.Binding
}

var keys = keyMap{
	Insert:  key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "edit")),
	New:     key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "new")),
	Command: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "command")),
	Down:    key.NewBinding(key.WithKeys("j"), key.WithHelp("j/k", "move")),
	Up:      key.NewBinding(key.WithKeys("k")),
	Top:     key.NewBinding(key.WithKeys("g"), key.WithHelp("g/G", "top/bottom")),
	Bottom:  key.NewBinding(key.WithKeys("G")),
	Done:    key.NewBinding(key.WithKeys("enter", " ", "space"), key.WithHelp("⏎/space", "done")),

	Commit:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("⏎", "commit")),
	Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Discard: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "discard")),
	Run:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("⏎", "run  :w :q :wq")),
}

// shortHelp lists the bindings worth showing in mode.
func (k keyMap) shortHelp(mode Mode) []key.Binding {
	switch mode {
	case ModeInsert:
		return []key.Binding{k.Commit, k.Cancel}
	case ModeNew:
		return []key.Binding{k.Commit, k.Discard}
	case ModeCommand:
		return []key.Binding{k.Run, k.Cancel}
	default:
		return []key.Binding{k.Insert, k.New, k.Down, k.Top, k.Done, k.Command}
	}
}
