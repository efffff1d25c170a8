package main

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var menuStyle = lipgloss.NewStyle().Margin(1, 2)

type menuItem struct {
	name  string
	title string
	desc  string
}

func (i menuItem) Title() string       { return i.title }
func (i menuItem) Description() string { return i.desc }
func (i menuItem) FilterValue() string { return i.title }

// menuModel is the game picker shown by the play command.
type menuModel struct {
	list   list.Model
	choice string
}

func newMenuModel() menuModel {
	items := []list.Item{
		menuItem{name: "blackjack", title: "Blackjack", desc: "Beat the dealer to 21, naturals pay 3:2"},
		menuItem{name: "coinflip", title: "Coin Flip", desc: "Call heads or tails for even money"},
		menuItem{name: "rps", title: "Rock Paper Scissors", desc: "Winning sign takes even money, draws push"},
		menuItem{name: "tictactoe", title: "Tic-Tac-Toe", desc: "Outplay the house on the board"},
	}

	l := list.New(items, list.NewDefaultDelegate(), 48, 16)
	l.Title = "Pick a game"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)

	return menuModel{list: l}
}

func (m menuModel) Init() tea.Cmd {
	return nil
}

func (m menuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := menuStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "enter":
			if item, ok := m.list.SelectedItem().(menuItem); ok {
				m.choice = item.name
			}
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m menuModel) View() string {
	return menuStyle.Render(m.list.View())
}

// PlayCmd shows the menu and loops back to it after each session ends.
type PlayCmd struct{}

func (p *PlayCmd) Run(rctx *runContext) error {
	for {
		model, err := tea.NewProgram(newMenuModel(), tea.WithAltScreen()).Run()
		if err != nil {
			return err
		}

		menu := model.(menuModel)
		if menu.choice == "" {
			return nil
		}
		if err := runSession(rctx, rctx.buildVariant(menu.choice)); err != nil {
			return err
		}
	}
}
