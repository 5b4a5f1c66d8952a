// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aspectctl/aspectctl/internal/clipboard"
	"github.com/aspectctl/aspectctl/internal/filter"
	"github.com/aspectctl/aspectctl/internal/invocation"
	"github.com/aspectctl/aspectctl/internal/report"
	"github.com/aspectctl/aspectctl/internal/visibility"
)

// --- Styles ---

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#005f87")).
			PaddingLeft(1).
			PaddingRight(1)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFDF5")).
			Background(lipgloss.Color("#353533"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF4444")).
			Bold(true)

	workingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFAA00"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#44FF88"))

	skippedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))

	commandStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00c8f0")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))
)

// --- Messages ---

// filterDoneMsg reports the outcome of a filter pass.
type filterDoneMsg struct {
	opts filter.Options
	err  error
}

// copiedMsg reports the outcome of a clipboard write.
type copiedMsg struct {
	err error
}

// --- Model ---

// Model is the bubbletea model for the preview screen. The report is the
// fixed candidate store; opts always holds the last successfully applied
// filter, so the command line at the bottom never goes stale and never
// reflects a pattern that failed to compile.
type Model struct {
	rep  *report.Report
	opts filter.Options

	hideNonDecoratable bool
	view               visibility.View
	command            string

	input   textinput.Model
	editing bool

	warn    string
	working bool
	status  string

	cursor int
	width  int
	height int
}

// New builds the model with an already validated initial filter applied.
func New(rep *report.Report, opts filter.Options) Model {
	ti := textinput.New()
	ti.Placeholder = "regex prefix"
	ti.Prompt = "pattern: "
	ti.SetValue(opts.Pattern)

	m := Model{
		rep:                rep,
		opts:               opts,
		hideNonDecoratable: true,
		input:              ti,
	}

	// The caller validated opts, so the initial pass cannot fail.
	_ = filter.Apply(rep, opts)
	m.view = visibility.Compute(rep, m.hideNonDecoratable)
	m.command = invocation.Generate(rep.Module, rep.Decorator, opts)

	return m
}

// Run starts the interactive preview and blocks until the user quits.
func Run(rep *report.Report, opts filter.Options) error {
	p := tea.NewProgram(New(rep, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.WindowSize()
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case filterDoneMsg:
		m.working = false
		if msg.err != nil {
			// Last-known-good selection is still in place; just surface it.
			m.warn = msg.err.Error()
			return m, nil
		}
		m.warn = ""
		m.opts = msg.opts
		m.input.SetValue(m.opts.Pattern)
		m.command = invocation.Generate(m.rep.Module, m.rep.Decorator, m.opts)
		m.status = fmt.Sprintf("%d of %d selected", m.rep.SelectedCount(), len(m.rep.Candidates))
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.status = "clipboard unavailable"
		} else {
			m.status = "copied to clipboard"
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Pattern edit mode key handling.
	if m.editing {
		switch msg.String() {
		case "esc":
			m.editing = false
			m.input.Blur()
			m.input.SetValue(m.opts.Pattern)
			return m, nil
		case "enter":
			m.editing = false
			m.input.Blur()
			next := m.opts
			next.Pattern = m.input.Value()
			m.working = true
			return m, applyFilterCmd(m.rep, next)
		default:
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
	}

	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "/":
		m.editing = true
		return m, m.input.Focus()
	case "d":
		// Toggling dunders re-applies the active, known-good pattern.
		m.opts.IncludeDunders = !m.opts.IncludeDunders
		_ = filter.Apply(m.rep, m.opts)
		m.command = invocation.Generate(m.rep.Module, m.rep.Decorator, m.opts)
		m.status = fmt.Sprintf("%d of %d selected", m.rep.SelectedCount(), len(m.rep.Candidates))
		return m, nil
	case "n":
		m.hideNonDecoratable = !m.hideNonDecoratable
		m.view = visibility.Compute(m.rep, m.hideNonDecoratable)
		if m.cursor >= m.view.VisibleCount() {
			m.cursor = max(0, m.view.VisibleCount()-1)
		}
		return m, nil
	case "c":
		return m, copyCmd(m.command)
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "j":
		if m.cursor < m.view.VisibleCount()-1 {
			m.cursor++
		}
		return m, nil
	}

	return m, nil
}

// View renders the preview screen.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var sb strings.Builder

	// Title bar.
	title := titleStyle.Render(fmt.Sprintf(" aspectctl — %s @ %s ", m.rep.Decorator, m.rep.Module))
	counts := statusBarStyle.Render(fmt.Sprintf(" %d of %d selected │ %d shown ",
		m.rep.SelectedCount(), len(m.rep.Candidates), m.view.VisibleCount()))
	gap := m.width - lipgloss.Width(title) - lipgloss.Width(counts)
	if gap < 0 {
		gap = 0
	}
	sb.WriteString(title + statusBarStyle.Render(strings.Repeat(" ", gap)) + counts)
	sb.WriteString("\n")

	// Pattern line.
	if m.editing {
		sb.WriteString(m.input.View())
	} else {
		dunders := "off"
		if m.opts.IncludeDunders {
			dunders = "on"
		}
		sb.WriteString(fmt.Sprintf("pattern: %q  dunders: %s", m.opts.Pattern, dunders))
	}
	sb.WriteString("\n")

	// Warning / working line.
	switch {
	case m.working:
		sb.WriteString(workingStyle.Render("⚠ filtering…"))
		sb.WriteString("\n")
	case m.warn != "":
		sb.WriteString(warnStyle.Render("⚠ " + m.warn + " (previous selection kept)"))
		sb.WriteString("\n")
	}

	// Column headers. The applicable and reason columns disappear entirely
	// when non-decoratable rows are hidden.
	showExtra := m.view.Columns == visibility.Visible
	sb.WriteString(skippedStyle.Render(m.headerLine(showExtra)))
	sb.WriteString("\n")

	// Candidate rows.
	visibleRows := 0
	for i := range m.rep.Candidates {
		if m.view.RowHidden(i) {
			continue
		}

		c := &m.rep.Candidates[i]
		cursor := " "
		if visibleRows == m.cursor {
			cursor = ">"
		}
		mark := " "
		if c.Selected {
			mark = "x"
		}

		line := fmt.Sprintf("%s [%s] %s", cursor, mark, m.rowLine(c, showExtra))
		if c.Selected {
			line = selectedStyle.Render(line)
		} else if !c.Applicable {
			line = skippedStyle.Render(line)
		}
		sb.WriteString(line)
		sb.WriteString("\n")
		visibleRows++
	}

	// Status line.
	if m.status != "" {
		sb.WriteString(statusBarStyle.Render(" " + m.status + " "))
		sb.WriteString("\n")
	}

	// Generated invocation, always current with the active filter.
	sb.WriteString(commandStyle.Render(m.command))
	sb.WriteString("\n")

	// Help bar.
	sb.WriteString(helpStyle.Render(" [/]Pattern  [d]Dunders  [n]Hide n/a  [c]Copy  [↑↓]Move  [q]Quit"))

	return sb.String()
}

// --- Helpers ---

func (m Model) headerLine(showExtra bool) string {
	if showExtra {
		return fmt.Sprintf("      %-40s %-20s %-12s %-10s %s",
			"qualname", "name", "type", "applicable", "reason")
	}
	return fmt.Sprintf("      %-40s %-20s %s", "qualname", "name", "type")
}

func (m Model) rowLine(c *report.Candidate, showExtra bool) string {
	if showExtra {
		return fmt.Sprintf("%-40s %-20s %-12s %-10v %s",
			truncate(c.Qualname, 40), truncate(c.Name, 20), truncate(c.TypeName, 12),
			c.Applicable, c.Reason)
	}
	return fmt.Sprintf("%-40s %-20s %s",
		truncate(c.Qualname, 40), truncate(c.Name, 20), c.TypeName)
}

// applyFilterCmd runs one filter pass and reports the outcome. The pass
// never mutates selection when the pattern fails to compile.
func applyFilterCmd(rep *report.Report, opts filter.Options) tea.Cmd {
	return func() tea.Msg {
		return filterDoneMsg{opts: opts, err: filter.Apply(rep, opts)}
	}
}

// copyCmd writes the invocation to the clipboard, fire-and-forget.
func copyCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clipboard.Write(text)}
	}
}

func truncate(s string, maxLen int) string {
	if maxLen <= 0 || len(s) <= maxLen {
		return s
	}
	return s[:maxLen-1] + "…"
}
