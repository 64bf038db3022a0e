// internal/tui/browser.go
// Package tui provides the terminal browser for the benchmark dataset.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mwiater/mathbench/internal/dataset"
	"github.com/mwiater/mathbench/internal/display"
	"github.com/mwiater/mathbench/internal/logging"
	"github.com/mwiater/mathbench/internal/observe"
	"github.com/mwiater/mathbench/internal/util"
)

const (
	// frameInterval is the tick between counter frames.
	frameInterval = 16 * time.Millisecond
	// revealDuration is how long a category's counters take to reach their values.
	revealDuration = 800 * time.Millisecond
)

// frameMsg advances the counter animation by one frame.
type frameMsg struct{}

// model is the Bubble Tea model of the browser.
type model struct {
	ds        *dataset.Dataset
	models    []dataset.Model
	table     table.Model
	observer  *observe.Observer
	frames    *observe.FrameQueue
	animating bool
	shown     map[string][]float64
	width     int
	height    int
}

// newModel builds the browser over ds. Each category's counters start the
// first time its row is selected and never again.
func newModel(ds *dataset.Dataset) *model {
	models := ds.OrderedModels()

	columns := []table.Column{{Title: "Category", Width: 34}, {Title: "Questions", Width: 10}}
	for _, m := range models {
		columns = append(columns, table.Column{Title: m.Name, Width: 12})
	}
	rows := make([]table.Row, 0, len(ds.Categories))
	for _, c := range ds.Categories {
		row := table.Row{c.Name, fmt.Sprint(c.Questions)}
		for _, m := range models {
			row = append(row, display.Pct(c.Results[m.ID].Accuracy))
		}
		rows = append(rows, row)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(len(rows)+1),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.BorderStyle(lipgloss.NormalBorder()).BorderBottom(true).Bold(true)
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62"))
	t.SetStyles(styles)

	m := &model{
		ds:       ds,
		models:   models,
		table:    t,
		observer: observe.NewObserver(),
		frames:   &observe.FrameQueue{},
		shown:    make(map[string][]float64),
	}
	for _, c := range ds.Categories {
		m.observer.Observe(c.ID, m.startCounters)
	}
	return m
}

// startCounters animates every model's accuracy on a category from zero.
func (m *model) startCounters(categoryID string) {
	c, ok := m.ds.Category(categoryID)
	if !ok {
		return
	}
	values := make([]float64, len(m.models))
	m.shown[categoryID] = values
	for i, md := range m.models {
		i := i
		counter := observe.Counter{To: display.PctNum(c.Results[md.ID].Accuracy), Duration: revealDuration}
		counter.Start(m.frames, func(v float64) { values[i] = v })
	}
	logging.LogEvent("[BROWSE] revealed %s", categoryID)
}

func frameCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return frameMsg{}
	})
}

// reveal reports the selected category as visible and starts the frame loop
// if counters are waiting.
func (m *model) reveal() tea.Cmd {
	cur := m.table.Cursor()
	if cur < 0 || cur >= len(m.ds.Categories) {
		return nil
	}
	m.observer.Intersect(m.ds.Categories[cur].ID)
	if m.animating || m.frames.Idle() {
		return nil
	}
	m.animating = true
	return frameCmd()
}

// Init reveals the initially selected category.
func (m *model) Init() tea.Cmd {
	return m.reveal()
}

// Update handles keys, resizes and animation frames.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, tea.Batch(cmd, m.reveal())

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.table.SetWidth(msg.Width - 4)
		return m, nil

	case frameMsg:
		if m.frames.Advance(frameInterval) {
			return m, frameCmd()
		}
		m.animating = false
		return m, nil
	}
	return m, nil
}

// View renders the category table and the selected category's detail.
func (m *model) View() string {
	titleStyle := lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("230")).Padding(0, 1)
	help := lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Render(" (up/down to select, q to quit)")

	var b strings.Builder
	b.WriteString(titleStyle.Render("Math Benchmark Browser") + help + "\n\n")
	b.WriteString(m.table.View() + "\n\n")

	cur := m.table.Cursor()
	if cur >= 0 && cur < len(m.ds.Categories) {
		b.WriteString(m.detail(m.ds.Categories[cur]))
	}
	return lipgloss.NewStyle().Margin(1, 2).Render(b.String())
}

func (m *model) detail(c dataset.Category) string {
	var b strings.Builder
	heading := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	b.WriteString(heading.Render(c.Name) + "\n")

	values := m.shown[c.ID]
	for i, md := range m.models {
		v := 0.0
		if i < len(values) {
			v = values[i]
		}
		bucket := display.BucketOf(c.Results[md.ID].Accuracy)
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(md.RGB.Hex())).Render("■")
		fmt.Fprintf(&b, "  %s %-14s %s\n", swatch, md.Name, display.Style(bucket).Render(fmt.Sprintf("%5.1f%%", v)))
	}

	if len(c.Topics) > 0 {
		b.WriteString("\n" + heading.Render("Topics") + "\n")
		for _, row := range c.Topics {
			fmt.Fprintf(&b, "  %-30s", util.TruncateRunes(row.Topic, 30))
			for _, md := range m.models {
				acc := row.Accuracy[md.ID]
				b.WriteString(" " + display.Style(display.BucketOf(acc)).Render(fmt.Sprintf("%6s", display.Pct(acc))))
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

// Run opens the browser in the alternate screen and blocks until it exits.
func Run(ds *dataset.Dataset) error {
	p := tea.NewProgram(newModel(ds), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run browser: %w", err)
	}
	return nil
}
