package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings of every view.
type KeyMap struct {
	// Navigation
	Up      key.Binding
	Down    key.Binding
	NextTab key.Binding
	PrevTab key.Binding

	// Board
	MoveUp      key.Binding
	MoveDown    key.Binding
	Open        key.Binding
	New         key.Binding
	Delete      key.Binding
	Copy        key.Binding
	Expirations key.Binding
	Refresh     key.Binding

	// Editor
	Save       key.Binding
	SwitchPane key.Binding
	AddItem    key.Binding
	EditItem   key.Binding
	ToggleItem key.Binding
	RemoveItem key.Binding
	SetDate    key.Binding
	DeleteTodo key.Binding

	Back key.Binding
	Quit key.Binding
	Help key.Binding
}

// DefaultKeyMap returns the default set of keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab", "l"),
			key.WithHelp("tab", "next category"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "h"),
			key.WithHelp("shift+tab", "prev category"),
		),
		MoveUp: key.NewBinding(
			key.WithKeys("K", "shift+up"),
			key.WithHelp("K", "move up"),
		),
		MoveDown: key.NewBinding(
			key.WithKeys("J", "shift+down"),
			key.WithHelp("J", "move down"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "view / edit"),
		),
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new todo"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy id"),
		),
		Expirations: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "expirations"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save"),
		),
		SwitchPane: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "fields / checklist"),
		),
		AddItem: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add item"),
		),
		EditItem: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "edit item"),
		),
		ToggleItem: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "check"),
		),
		RemoveItem: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "remove item"),
		),
		SetDate: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "expiration date"),
		),
		DeleteTodo: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "delete todo"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

// boardHelp adapts the board bindings to help.KeyMap.
type boardHelp struct{ k *KeyMap }

func (h boardHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.k.NextTab, h.k.MoveUp, h.k.MoveDown, h.k.Open, h.k.New, h.k.Help, h.k.Quit}
}

func (h boardHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{h.k.Up, h.k.Down, h.k.NextTab, h.k.PrevTab},
		{h.k.MoveUp, h.k.MoveDown, h.k.Open, h.k.New},
		{h.k.Delete, h.k.Copy, h.k.Expirations, h.k.Refresh},
		{h.k.Help, h.k.Quit},
	}
}

type editorHelp struct{ k *KeyMap }

func (h editorHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.k.Save, h.k.SwitchPane, h.k.Back, h.k.Help}
}

func (h editorHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{h.k.Save, h.k.SwitchPane, h.k.DeleteTodo, h.k.Back},
		{h.k.AddItem, h.k.EditItem, h.k.ToggleItem, h.k.RemoveItem},
		{h.k.MoveUp, h.k.MoveDown, h.k.SetDate},
	}
}

type reportHelp struct{ k *KeyMap }

func (h reportHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.k.Up, h.k.Down, h.k.Refresh, h.k.Back}
}

func (h reportHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}
