package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pixel-arcade/internal/registry"
)

var scoresKey = key.NewBinding(
	key.WithKeys("tab"),
	key.WithHelp("tab", "scores"),
)

// MenuModel is the Bubble Tea model for the game picker menu.
type MenuModel struct {
	games          []registry.GameInfo
	cursor         int
	width          int
	keys           KeyMap
	quitting       bool
	selected       string // Set when user selects a game
	openScoreboard bool   // True if user pressed Tab for scoreboard
}

// NewMenuModel creates a menu listing every registered game.
func NewMenuModel(width int) MenuModel {
	return MenuModel{
		games: registry.List(),
		width: width,
		keys:  DefaultKeyMap(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Back):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.games)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Confirm), key.Matches(msg, m.keys.Jump):
		if len(m.games) > 0 {
			m.selected = m.games[m.cursor].ID
			return m, tea.Quit // Exit menu to start game
		}

	case key.Matches(msg, scoresKey):
		m.openScoreboard = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("P I X E L   A R C A D E"), m.width))
	b.WriteString("\n\n")

	for i, g := range m.games {
		line := "  " + g.Title
		if i == m.cursor {
			line = activeStyle.Render("> " + g.Title)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render("up/down: move  enter: play  tab: scores  q: quit"), m.width))
	b.WriteString("\n")
	return b.String()
}

// Selected returns the chosen game ID, or "" if none was chosen.
func (m MenuModel) Selected() string {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(width int) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(width), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Quit: true}, nil
	}

	switch {
	case m.WantsScoreboard():
		return MenuResult{WantsScoreboard: true}, nil
	case m.Selected() != "":
		return MenuResult{GameID: m.Selected()}, nil
	}
	return MenuResult{Quit: true}, nil
}
