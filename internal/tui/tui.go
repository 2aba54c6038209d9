// Package tui is the interactive launcher frontend: a debounced search
// box over the Query Engine's launcher mode, with keys to open a result
// in the file manager or copy its path to the clipboard.
package tui

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/worksentry/worksentry/internal/core"
	"github.com/worksentry/worksentry/internal/models"
	"github.com/worksentry/worksentry/internal/reveal"
)

var (
	colorAccent = lipgloss.Color("#7C6AF7")
	colorDim    = lipgloss.Color("#555555")
	colorMuted  = lipgloss.Color("#888888")
	colorText   = lipgloss.Color("#DDDDDD")
	colorScore  = lipgloss.Color("#5ECEF5")
	colorErr    = lipgloss.Color("#FF6B6B")
	colorGreen  = lipgloss.Color("#5AF078")

	sTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorText)
	sAccent  = lipgloss.NewStyle().Foreground(colorAccent)
	sDim     = lipgloss.NewStyle().Foreground(colorDim)
	sMuted   = lipgloss.NewStyle().Foreground(colorMuted)
	sScore   = lipgloss.NewStyle().Foreground(colorScore).Bold(true)
	sPath    = lipgloss.NewStyle().Foreground(colorText)
	sDir     = lipgloss.NewStyle().Foreground(colorMuted)
	sErr     = lipgloss.NewStyle().Foreground(colorErr)
	sGreen   = lipgloss.NewStyle().Foreground(colorGreen)
	sSel     = lipgloss.NewStyle().Background(lipgloss.Color("#1E1A3A")).Foreground(colorText)
	sHint    = lipgloss.NewStyle().Foreground(colorDim)
	sDivider = lipgloss.NewStyle().Foreground(lipgloss.Color("#444444"))
)

type (
	searchResultMsg []models.SearchResult
	errMsg          struct{ err error }
	noticeMsg       string
	debounceMsg     struct {
		query string
		id    int
	}
	clearNoticeMsg struct{}
)

// Model is the BubbleTea application model for the launcher.
type Model struct {
	engine *core.Engine

	input      textinput.Model
	results    []models.SearchResult
	cursor     int
	err        error
	notice     string
	width      int
	height     int
	searching  bool
	debounceID int
	lastQuery  string
}

// New creates a launcher Model backed by engine.
func New(engine *core.Engine) Model {
	ti := textinput.New()
	ti.Placeholder = "type to search…"
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 60
	ti.PromptStyle = sAccent
	ti.Prompt = "❯ "
	ti.TextStyle = lipgloss.NewStyle().Foreground(colorText)

	return Model{engine: engine, input: ti}
}

// Init is the BubbleTea init hook.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update processes messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = m.width - 8
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "ctrl+q", "esc":
			return m, tea.Quit

		case "up", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case "down", "ctrl+n":
			if m.cursor < len(m.results)-1 {
				m.cursor++
			}
			return m, nil

		case "ctrl+y":
			if m.cursor < len(m.results) {
				path := m.results[m.cursor].Key
				if err := clipboard.WriteAll(path); err != nil {
					return m, noticeCmd(fmt.Sprintf("clipboard error: %v", err))
				}
				return m, noticeCmd("copied path to clipboard")
			}
			return m, nil

		case "enter":
			if m.cursor < len(m.results) {
				return m, revealCmd(m.results[m.cursor].Key)
			}
			return m, nil
		}

	case debounceMsg:
		if msg.id == m.debounceID && msg.query == m.input.Value() {
			if strings.TrimSpace(msg.query) == "" {
				m.searching = false
				m.results = nil
				return m, nil
			}
			m.searching = true
			m.lastQuery = msg.query
			return m, searchCmd(m.engine, msg.query)
		}
		return m, nil

	case searchResultMsg:
		m.searching = false
		m.results = []models.SearchResult(msg)
		m.cursor = 0
		m.err = nil
		return m, nil

	case errMsg:
		m.searching = false
		m.err = msg.err
		return m, nil

	case noticeMsg:
		m.notice = string(msg)
		return m, clearNoticeCmd()

	case clearNoticeMsg:
		m.notice = ""
		return m, nil
	}

	prevVal := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != prevVal {
		m.debounceID++
		id := m.debounceID
		q := m.input.Value()
		return m, tea.Batch(cmd, debounceCmd(q, id, 200*time.Millisecond))
	}
	return m, cmd
}

// View renders the model.
func (m Model) View() string {
	if m.width == 0 {
		return ""
	}
	var b strings.Builder
	w := m.width
	divider := sDivider.Render(strings.Repeat("─", clamp(w-2, 10, 200)))

	fmt.Fprintln(&b, "  "+sTitle.Render("worksentry")+"  "+sMuted.Render("launcher"))
	fmt.Fprintln(&b, "  "+m.input.View())
	fmt.Fprintln(&b, "  "+divider)

	switch {
	case m.err != nil:
		fmt.Fprintln(&b, sErr.Render("  error: "+m.err.Error()))
	case m.searching:
		fmt.Fprintln(&b, "  "+sMuted.Render("searching…"))
	case len(m.results) == 0 && m.input.Value() == "":
		fmt.Fprintln(&b, "")
		fmt.Fprintln(&b, sMuted.Render("  Start typing to search indexed files."))
	case len(m.results) == 0:
		fmt.Fprintln(&b, "")
		fmt.Fprintln(&b, sMuted.Render("  no results for ")+sAccent.Render("\""+m.lastQuery+"\""))
	default:
		m.renderResults(&b, m.height-7)
	}

	b.WriteString("\n  " + divider + "\n")
	m.renderStatusBar(&b)
	return b.String()
}

func (m *Model) renderResults(b *strings.Builder, maxRows int) {
	maxResults := maxRows
	if maxResults < 1 {
		maxResults = 1
	}
	for i, r := range m.results {
		if i >= maxResults {
			fmt.Fprintf(b, "  %s\n", sDim.Render(fmt.Sprintf("… %d more results", len(m.results)-i)))
			break
		}
		dir := filepath.Dir(r.Key)
		score := fmt.Sprintf("%.2f", r.Score)
		line := fmt.Sprintf("  %s  %s%s", sScore.Render(score), sDir.Render(dir+"/"), sPath.Render(r.DisplayName))
		if i == m.cursor {
			line = sSel.Render(line)
		}
		fmt.Fprintln(b, line)
	}
}

func (m *Model) renderStatusBar(b *strings.Builder) {
	var left string
	switch {
	case m.notice != "":
		left = "  " + sGreen.Render(m.notice)
	case len(m.results) > 0:
		left = sGreen.Render(fmt.Sprintf("  %d result(s)", len(m.results)))
	default:
		left = sDim.Render("  no results")
	}
	right := sHint.Render("↑↓ nav  enter open  ^y copy  ^q quit  ")
	fmt.Fprint(b, padBetween(left, right, m.width))
}

func debounceCmd(query string, id int, delay time.Duration) tea.Cmd {
	return func() tea.Msg {
		time.Sleep(delay)
		return debounceMsg{query: query, id: id}
	}
}

func searchCmd(engine *core.Engine, query string) tea.Cmd {
	return func() tea.Msg {
		results, err := engine.SearchLauncher(query, 10)
		if err != nil {
			return errMsg{err}
		}
		return searchResultMsg(results)
	}
}

func revealCmd(path string) tea.Cmd {
	return func() tea.Msg {
		if err := reveal.File(path); err != nil {
			return errMsg{err}
		}
		return noticeMsg("revealed in file manager")
	}
}

func noticeCmd(msg string) tea.Cmd {
	return func() tea.Msg { return noticeMsg(msg) }
}

func clearNoticeCmd() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg { return clearNoticeMsg{} })
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func padBetween(left, right string, width int) string {
	lv := visibleLen(left)
	rv := visibleLen(right)
	gap := width - lv - rv
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func visibleLen(s string) int {
	n := 0
	inEsc := false
	for _, c := range s {
		if c == '\x1b' {
			inEsc = true
		}
		if inEsc {
			if (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') {
				inEsc = false
			}
			continue
		}
		n++
	}
	return n
}
