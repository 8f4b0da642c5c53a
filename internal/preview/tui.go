package preview

import (
	"fmt"
	"strings"
	"wbfix/internal/fixtures"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// WriteFunc persists the dataset being previewed and returns where it went.
type WriteFunc func() (string, error)

// UIConfig represents UI configuration settings
type UIConfig struct {
	RowsPerPage int
}

type model struct {
	tables []fixtures.Table
	seed   uint64
	write  WriteFunc

	// Navigation
	tab         int
	offset      int
	rowsPerPage int

	// Screen dimensions
	width  int
	height int

	status string
	failed bool

	// Styling
	titleStyle     lipgloss.Style
	activeTabStyle lipgloss.Style
	tabStyle       lipgloss.Style
	headerStyle    lipgloss.Style
	cellStyle      lipgloss.Style
	helpStyle      lipgloss.Style
	statusStyle    lipgloss.Style
	errorStyle     lipgloss.Style
}

func initialModel(ds *fixtures.Dataset, write WriteFunc, uiConfig UIConfig) model {
	rowsPerPage := uiConfig.RowsPerPage
	if rowsPerPage < 1 {
		rowsPerPage = 1
	}

	return model{
		tables:      ds.Tables(),
		seed:        ds.Seed,
		write:       write,
		rowsPerPage: rowsPerPage,

		titleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")),
		activeTabStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170")).
			Background(lipgloss.Color("235")).
			Padding(0, 1),
		tabStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Padding(0, 1),
		headerStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("40")).
			Padding(0, 1),
		cellStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Padding(0, 1),
		helpStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		statusStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("40")).
			Bold(true),
		errorStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// Tabs, title, header, help and status take 8 lines
		if fit := m.height - 8; fit > 0 && fit < m.rowsPerPage {
			m.rowsPerPage = fit
		}
		m.clampOffset()
	case tea.KeyMsg:
		return m.updateKey(msg)
	}
	return m, nil
}

func (m model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "left", "h", "shift+tab":
		if m.tab > 0 {
			m.tab--
		} else {
			m.tab = len(m.tables) - 1
		}
		m.offset = 0

	case "right", "l", "tab":
		m.tab = (m.tab + 1) % len(m.tables)
		m.offset = 0

	case "up", "k":
		if m.offset > 0 {
			m.offset--
		}

	case "down", "j":
		m.offset++
		m.clampOffset()

	case "pgup":
		m.offset -= m.rowsPerPage
		m.clampOffset()

	case "pgdown", " ":
		m.offset += m.rowsPerPage
		m.clampOffset()

	case "w":
		if m.write == nil {
			break
		}
		path, err := m.write()
		if err != nil {
			m.status = fmt.Sprintf("Write failed: %v", err)
			m.failed = true
		} else {
			m.status = fmt.Sprintf("Saved %s", path)
			m.failed = false
		}
	}
	return m, nil
}

func (m model) current() fixtures.Table {
	return m.tables[m.tab]
}

func (m *model) clampOffset() {
	maxOffset := len(m.current().Rows) - m.rowsPerPage
	if maxOffset < 0 {
		maxOffset = 0
	}
	if m.offset > maxOffset {
		m.offset = maxOffset
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// visibleRows returns the slice of the current table shown on screen.
func (m model) visibleRows() [][]any {
	rows := m.current().Rows
	end := m.offset + m.rowsPerPage
	if end > len(rows) {
		end = len(rows)
	}
	return rows[m.offset:end]
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(m.titleStyle.Render(fmt.Sprintf("Fixture preview (seed %d)", m.seed)))
	b.WriteString("\n\n")

	tabs := make([]string, len(m.tables))
	for i, t := range m.tables {
		if i == m.tab {
			tabs[i] = m.activeTabStyle.Render(t.Name)
		} else {
			tabs[i] = m.tabStyle.Render(t.Name)
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("\n\n")

	table := m.current()
	widths := columnWidths(table)

	header := make([]string, len(table.Columns))
	for i, c := range table.Columns {
		header[i] = m.headerStyle.Width(widths[i]).Render(c)
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, header...))
	b.WriteString("\n")

	for _, row := range m.visibleRows() {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = m.cellStyle.Width(widths[i]).Render(formatValue(v))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.helpStyle.Render(fmt.Sprintf(
		"%s • rows %d-%d of %d • ←/→ table • ↑/↓ scroll • w write • q quit",
		table.Sheet, m.offset+1, m.offset+len(m.visibleRows()), len(table.Rows))))

	if m.status != "" {
		b.WriteString("\n")
		if m.failed {
			b.WriteString(m.errorStyle.Render(m.status))
		} else {
			b.WriteString(m.statusStyle.Render(m.status))
		}
	}
	return b.String()
}

func formatValue(v any) string {
	if f, ok := v.(float64); ok {
		return fmt.Sprintf("%.2f", f)
	}
	return fmt.Sprint(v)
}

// columnWidths includes the cell padding.
func columnWidths(table fixtures.Table) []int {
	widths := make([]int, len(table.Columns))
	for i, c := range table.Columns {
		widths[i] = lipgloss.Width(c) + 2
	}
	for _, row := range table.Rows {
		for i, v := range row {
			if w := lipgloss.Width(formatValue(v)) + 2; w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// RunPreviewTUI starts the interactive table browser for ds.
func RunPreviewTUI(ds *fixtures.Dataset, write WriteFunc, uiConfig UIConfig) error {
	p := tea.NewProgram(initialModel(ds, write, uiConfig), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
