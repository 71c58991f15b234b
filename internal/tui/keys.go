package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit       key.Binding
	Edit       key.Binding
	CycleType  key.Binding
	NextSector key.Binding
	PrevSector key.Binding
	Basic      key.Binding
	PartTime   key.Binding
	Youth      key.Binding
	Disabled   key.Binding
	Student    key.Binding
	MoreKids   key.Binding
	FewerKids  key.Binding
	Compare    key.Binding
	Help       key.Binding
	Back       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Edit:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit amount")),
		CycleType:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "gross/net/cost")),
		NextSector: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "next sector")),
		PrevSector: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "previous sector")),
		Basic:      key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "basic function")),
		PartTime:   key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "part-time")),
		Youth:      key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "under 26")),
		Disabled:   key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "disability")),
		Student:    key.NewBinding(key.WithKeys("5"), key.WithHelp("5", "student")),
		MoreKids:   key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "add child")),
		FewerKids:  key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "remove child")),
		Compare:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "compare sectors")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Back:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	}
}
