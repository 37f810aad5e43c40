package cli

import "github.com/charmbracelet/bubbles/key"

type tuiKeyMap struct {
	Submit       key.Binding
	NextField    key.Binding
	PrevField    key.Binding
	ClearFields  key.Binding
	SwitchPane   key.Binding
	Remove       key.Binding
	Back         key.Binding
	Export       key.Binding
	ClearHistory key.Binding
	Quit         key.Binding
}

func defaultTUIKeyMap() tuiKeyMap {
	return tuiKeyMap{
		Submit:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "calcular")),
		NextField:    key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "próximo campo")),
		PrevField:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "campo anterior")),
		ClearFields:  key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "limpar campos")),
		SwitchPane:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "histórico")),
		Remove:       key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "remover")),
		Back:         key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "voltar")),
		Export:       key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", "exportar CSV")),
		ClearHistory: key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "limpar histórico")),
		Quit:         key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "sair")),
	}
}

// formKeys and historyKeys implement help.KeyMap for the two panes.
type formKeys struct{ tuiKeyMap }

func (k formKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.ClearFields, k.SwitchPane, k.Export, k.ClearHistory, k.Quit}
}

func (k formKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp(), {k.NextField, k.PrevField}}
}

type historyKeys struct{ tuiKeyMap }

func (k historyKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Remove, k.Back, k.Export, k.ClearHistory, k.Quit}
}

func (k historyKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
