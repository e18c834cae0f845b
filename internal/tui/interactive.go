package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/accelplot/internal/chart"
	"github.com/san-kum/accelplot/internal/shell"
	"github.com/san-kum/accelplot/internal/viz"
)

// graph margins: y-axis labels on the left, title, button row and hints.
const (
	labelWidth  = 12
	chromeLines = 9
	minGraphW   = 20
	minGraphH   = 5
)

type model struct {
	shell   *shell.Shell
	buttons []shell.Button
	cursor  int

	chart *chart.Chart
	err   error

	title   string
	colored bool
	width   int
	height  int
}

// Options sizes the terminal graph before the first resize message.
type Options struct {
	Title   string
	Width   int
	Height  int
	Colored bool
}

func NewInteractiveApp(sh *shell.Shell, opts Options) *model {
	if opts.Width <= 0 {
		opts.Width = 80
	}
	if opts.Height <= 0 {
		opts.Height = 15
	}
	return &model{
		shell:   sh,
		buttons: sh.Buttons(),
		title:   opts.Title,
		colored: opts.Colored,
		width:   opts.Width + labelWidth,
		height:  opts.Height + chromeLines,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch key := msg.String(); key {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "left", "h", "shift+tab":
		if m.cursor > 0 {
			m.cursor--
		}
	case "right", "l", "tab":
		if m.cursor < len(m.buttons)-1 {
			m.cursor++
		}
	case "enter", " ":
		m.click()
	case "1", "2", "3", "4", "5":
		i := int(key[0] - '1')
		if i < len(m.buttons) {
			m.cursor = i
			m.click()
		}
	}
	return m, nil
}

func (m *model) click() {
	c, err := m.shell.Click(m.buttons[m.cursor].Kind)
	if err != nil {
		m.err = err
		return
	}
	m.chart = c
	m.err = nil
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString("\n  " + viz.TitleStyle.Render(m.title) + "\n")
	b.WriteString(viz.Separator(min(m.width, 60)) + "\n")

	row := make([]string, len(m.buttons))
	for i, btn := range m.buttons {
		style := viz.Button
		if i == m.cursor {
			style = viz.ButtonFocused
		}
		row[i] = style.Render(btn.Label)
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, row...) + "\n\n")

	switch {
	case m.err != nil:
		b.WriteString("  " + viz.ErrorStyle.Render(m.err.Error()) + "\n")
	case m.chart != nil:
		w := max(m.width-labelWidth, minGraphW)
		h := max(m.height-chromeLines, minGraphH)
		b.WriteString(viz.Graph(m.chart, w, h, m.colored))
	default:
		b.WriteString("  " + viz.Subtle.Render("select a chart") + "\n")
	}

	b.WriteString("\n" + viz.KeyHint.Render("  ←→ select   enter plot   1-5 shortcut   q quit") + "\n")
	return b.String()
}

func RunInteractive(sh *shell.Shell, opts Options) error {
	p := tea.NewProgram(NewInteractiveApp(sh, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
