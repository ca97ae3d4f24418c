package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/linezen/internal/storage"
)

// Rounds board layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show the profile sidebar
	sidebarWidth       = 20  // Width of the profile sidebar
	maxRounds          = 100 // Max rounds to load
)

// allProfiles is the sidebar entry that shows every profile.
const allProfiles = "All players"

// BoardKeyMap defines the key bindings for the rounds board.
type BoardKeyMap struct {
	Up          key.Binding
	Down        key.Binding
	NextProfile key.Binding
	PrevProfile key.Binding
	Back        key.Binding
	Quit        key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k BoardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextProfile, k.PrevProfile, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k BoardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextProfile, k.PrevProfile},
		{k.Back, k.Quit},
	}
}

// DefaultBoardKeyMap returns default key bindings.
func DefaultBoardKeyMap() BoardKeyMap {
	return BoardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextProfile: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next player"),
		),
		PrevProfile: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev player"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// RoundsBoard is the Bubble Tea model listing the best recorded lines.
type RoundsBoard struct {
	profiles    []string // Sidebar entries; the first shows everyone
	cursor      int
	store       *storage.Store
	rounds      []storage.RoundEntry
	stats       *storage.ProfileStats
	table       table.Model
	help        help.Model
	keys        BoardKeyMap
	width       int
	height      int
	now         func() time.Time
	quitting    bool
	showSidebar bool
}

// NewRoundsBoard creates a rounds board. If focus names a known profile it
// is selected first.
func NewRoundsBoard(store *storage.Store, focus string, width, height int) RoundsBoard {
	m := RoundsBoard{
		profiles:    []string{allProfiles},
		store:       store,
		keys:        DefaultBoardKeyMap(),
		help:        help.New(),
		width:       width,
		height:      height,
		now:         time.Now,
		showSidebar: width >= minWidthForSidebar,
	}

	if store != nil {
		entries, err := store.Profiles()
		if err == nil {
			for _, e := range entries {
				m.profiles = append(m.profiles, e.Profile)
				if e.Profile == focus {
					m.cursor = len(m.profiles) - 1
				}
			}
		}
	}

	m.table = m.createTable()
	m.loadRounds()
	return m
}

// selected returns the profile filter of the current sidebar entry.
func (m *RoundsBoard) selected() string {
	if m.cursor == 0 {
		return ""
	}
	return m.profiles[m.cursor]
}

// createTable creates a new table with appropriate columns.
func (m *RoundsBoard) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Total", Width: 7},
		{Title: "Pops", Width: 5},
		{Title: "Player", Width: 10},
		{Title: "Level", Width: 14},
		{Title: "When", Width: 14},
	}

	tableWidth := m.width - 4
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3
	}
	// Give spare room to the level name.
	if spare := tableWidth - 55 - 2*len(columns); spare > 0 {
		columns[4].Width += min(spare, 16)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("24")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadRounds loads the rounds and stats of the selected profile.
func (m *RoundsBoard) loadRounds() {
	m.rounds = nil
	m.stats = nil
	if m.store != nil {
		if rounds, err := m.store.TopRounds(m.selected(), maxRounds); err == nil {
			m.rounds = rounds
		}
		if p := m.selected(); p != "" {
			if stats, err := m.store.Stats(p); err == nil {
				m.stats = stats
			}
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with the loaded rounds.
func (m *RoundsBoard) updateTableRows() {
	rows := make([]table.Row, len(m.rounds))
	for i, r := range m.rounds {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			humanize.Comma(int64(r.Total)),
			fmt.Sprintf("%d", r.Hits),
			r.Profile,
			r.LevelName,
			humanize.RelTime(r.CreatedAt, m.now(), "ago", "from now"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the rounds board.
func (m RoundsBoard) Init() tea.Cmd {
	return nil
}

// Update handles messages for the rounds board.
func (m RoundsBoard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Back):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextProfile):
			m.cursor = (m.cursor + 1) % len(m.profiles)
			m.loadRounds()
			return m, nil

		case key.Matches(msg, m.keys.PrevProfile):
			m.cursor--
			if m.cursor < 0 {
				m.cursor = len(m.profiles) - 1
			}
			m.loadRounds()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the rounds board.
func (m RoundsBoard) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := fmt.Sprintf("BEST LINES - %s", m.profiles[m.cursor])
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n")
	b.WriteString(centerText(m.statsLine(), m.width))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// statsLine summarizes the selected profile.
func (m RoundsBoard) statsLine() string {
	if m.stats == nil || m.stats.RoundsCount == 0 {
		return fmt.Sprintf("%d lines listed", len(m.rounds))
	}
	s := m.stats
	return fmt.Sprintf("%s lines, %s points, best %s (%d pops), avg %.1f, last played %s",
		humanize.Comma(int64(s.RoundsCount)),
		humanize.Comma(s.TotalScore),
		humanize.Comma(int64(s.BestTotal)),
		s.BestHits,
		s.AvgTotal,
		humanize.RelTime(s.LastPlayed, m.now(), "ago", "from now"),
	)
}

// renderWideLayout renders the board with the profile sidebar.
func (m RoundsBoard) renderWideLayout() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Players\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, p := range m.profiles {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}

		name := p
		maxLen := sidebarWidth - 6
		if len(name) > maxLen {
			name = name[:maxLen-1] + "."
		}
		sidebar.WriteString(style.Render(cursor + name))
		sidebar.WriteString("\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		sidebarStyle.Render(sidebar.String()), "  ", tableStyle.Render(m.renderTableContent()))
}

// renderNarrowLayout renders the board with the selected profile above the table.
func (m RoundsBoard) renderNarrowLayout() string {
	var b strings.Builder

	b.WriteString(centerText(fmt.Sprintf("< %s >", m.profiles[m.cursor]), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	b.WriteString(tableStyle.Render(m.renderTableContent()))
	return b.String()
}

// renderTableContent renders the table or empty message.
func (m RoundsBoard) renderTableContent() string {
	if len(m.rounds) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No lines recorded yet.\nPop some bubbles first!")
	}

	return m.table.View()
}

// Rounds returns the rounds currently listed.
func (m RoundsBoard) Rounds() []storage.RoundEntry {
	return m.rounds
}

// RunRoundsBoard runs the rounds board screen.
func RunRoundsBoard(store *storage.Store, focus string, width, height int) error {
	model := NewRoundsBoard(store, focus, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
