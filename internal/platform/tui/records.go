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

	"github.com/vovakirdan/pixel-jumper/internal/registry"
	"github.com/vovakirdan/pixel-jumper/internal/storage"
)

// maxRecords is the number of runs loaded per pack.
const maxRecords = 100

// RecordsKeyMap defines the key bindings for the records screen.
type RecordsKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextPack key.Binding
	PrevPack key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RecordsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextPack, k.PrevPack, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k RecordsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextPack, k.PrevPack},
		{k.Back, k.Quit},
	}
}

// DefaultRecordsKeyMap returns default key bindings.
func DefaultRecordsKeyMap() RecordsKeyMap {
	return RecordsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		NextPack: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next pack"),
		),
		PrevPack: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev pack"),
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

// RecordsModel is the Bubble Tea model for the run records screen.
type RecordsModel struct {
	packs      []registry.PackInfo
	packCursor int
	store      *storage.Store
	runs       []storage.Run
	stats      *storage.PackStats
	table      table.Model
	help       help.Model
	keys       RecordsKeyMap
	width      int
	height     int
	quitting   bool
	goingBack  bool
}

// NewRecordsModel creates a records screen over every registered pack.
func NewRecordsModel(store *storage.Store, width, height int) RecordsModel {
	m := RecordsModel{
		packs:  registry.List(),
		store:  store,
		keys:   DefaultRecordsKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.table = m.createTable()

	if len(m.packs) > 0 {
		m.loadRuns(m.packs[0].ID)
	}
	return m
}

// RecordColumns returns the table columns of the records screen.
func RecordColumns() []table.Column {
	return []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Player", Width: 14},
		{Title: "Levels", Width: 7},
		{Title: "Deaths", Width: 7},
		{Title: "Time", Width: 9},
		{Title: "Date", Width: 13},
	}
}

// createTable creates the table sized to the current window.
func (m *RecordsModel) createTable() table.Model {
	height := m.height - 10 // Title, tabs, summary, borders and help
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(RecordColumns()),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadRuns loads the best runs and totals of a pack.
func (m *RecordsModel) loadRuns(packID string) {
	m.runs, m.stats = nil, nil
	if m.store != nil {
		if runs, err := m.store.TopRuns(packID, maxRecords); err == nil {
			m.runs = runs
		}
		if stats, err := m.store.GetPackStats(packID); err == nil {
			m.stats = stats
		}
	}
	m.table.SetRows(RecordRows(m.runs))
	m.table.GotoTop()
}

// RecordRows formats runs as table rows, ranked in the order given.
func RecordRows(runs []storage.Run) []table.Row {
	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		levels := fmt.Sprintf("%d/%d", r.LevelsCleared, r.LevelCount)
		if r.Completed {
			levels += "*"
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			r.Player,
			levels,
			fmt.Sprintf("%d", r.Deaths),
			FormatDuration(r.Duration),
			r.CreatedAt.Local().Format("Jan 02 15:04"),
		}
	}
	return rows
}

// FormatDuration renders a play time as m:ss.t.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	tenths := int(d / (100 * time.Millisecond))
	return fmt.Sprintf("%d:%02d.%d", tenths/600, tenths/10%60, tenths%10)
}

// Init initializes the records model.
func (m RecordsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the records screen.
func (m RecordsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextPack):
			m.movePack(1)
			return m, nil

		case key.Matches(msg, m.keys.PrevPack):
			m.movePack(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.table.SetRows(RecordRows(m.runs))
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// movePack selects the pack delta positions away, wrapping around.
func (m *RecordsModel) movePack(delta int) {
	if len(m.packs) == 0 {
		return
	}
	m.packCursor = (m.packCursor + delta + len(m.packs)) % len(m.packs)
	m.loadRuns(m.packs[m.packCursor].ID)
}

// View renders the records screen.
func (m RecordsModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	b.WriteString(centerText(titleStyle.Render("RECORDS"), m.width))
	b.WriteString("\n\n")

	if len(m.packs) > 0 {
		b.WriteString(centerText(m.renderTabs(), m.width))
		b.WriteString("\n")
		b.WriteString(centerText(dimStyle.Render(m.summary()), m.width))
		b.WriteString("\n\n")
	}

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, boxStyle.Render(m.renderTableContent())))

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTabs shows the pack names, or just the current one when they don't fit.
func (m RecordsModel) renderTabs() string {
	tabStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	activeStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(m.packs))
	for i, p := range m.packs {
		if i == m.packCursor {
			tabs[i] = activeStyle.Render(p.Title)
		} else {
			tabs[i] = tabStyle.Render(p.Title)
		}
	}

	line := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	if lipgloss.Width(line) > m.width-4 {
		line = activeStyle.Render(fmt.Sprintf("< %s >", m.packs[m.packCursor].Title))
	}
	return line
}

// summary describes the totals of the selected pack.
func (m RecordsModel) summary() string {
	if m.stats == nil || m.stats.Runs == 0 {
		return "No runs yet"
	}
	s := fmt.Sprintf("%d runs  %d cleared", m.stats.Runs, m.stats.Completions)
	if m.stats.BestDeaths >= 0 {
		s += fmt.Sprintf("  fewest deaths %d", m.stats.BestDeaths)
	}
	return s
}

// renderTableContent renders the table or an empty message.
func (m RecordsModel) renderTableContent() string {
	if len(m.runs) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No runs recorded yet.\nClear a level to get on the board!")
	}
	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m RecordsModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m RecordsModel) IsQuitting() bool {
	return m.quitting
}

// RunRecords runs the records screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunRecords(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewRecordsModel(store, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(RecordsModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
