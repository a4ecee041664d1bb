package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Cycle    key.Binding
	Complete key.Binding
	Fail     key.Binding
	Clear    key.Binding
	NextMon  key.Binding
	PrevMon  key.Binding
	Today    key.Binding
	Add      key.Binding
	Delete   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev day")),
		Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next day")),
		Cycle:    key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "cycle")),
		Complete: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "complete")),
		Fail:     key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "fail")),
		Clear:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear")),
		NextMon:  key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next month")),
		PrevMon:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "prev month")),
		Today:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		Add:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add habit")),
		Delete:   key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "delete habit")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Cycle, k.NextMon, k.PrevMon, k.Add, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Cycle, k.Complete, k.Fail, k.Clear},
		{k.NextMon, k.PrevMon, k.Today},
		{k.Add, k.Delete, k.Help, k.Quit},
	}
}
