package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"medrax-guide/internal/present/format"
	"medrax-guide/internal/progress"
	"medrax-guide/pkg/tutorial"
)

// Options configures the interactive topic browser.
type Options struct {
	Headers bool
	Style   string
	Width   int
}

// Browse opens an interactive Bubble Tea table of guide topics. On
// enter it leaves the alt screen, renders the selected topic with the
// pretty renderer, and returns its slug so the caller can record the
// view. An empty slug means the user quit without selecting. A nil
// store disables the read/unread keys.
func Browse(ctx context.Context, out io.Writer, cat tutorial.Catalog, store progress.Store, opts Options) (string, error) {
	topics := cat.Topics()
	recs := make(map[string]progress.Record, len(topics))
	if store != nil {
		list, err := store.List(ctx)
		if err != nil {
			return "", err
		}
		for _, r := range list {
			recs[r.Slug] = r
		}
	}

	m := model{
		ctx:     ctx,
		store:   store,
		topics:  topics,
		recs:    recs,
		showIdx: -1,
		headers: opts.Headers,
		status:  fmt.Sprintf("%d topics", len(topics)),
	}
	m.initTable()

	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return "", err
	}
	fm, ok := final.(model)
	if !ok || fm.showIdx < 0 || fm.showIdx >= len(topics) {
		return "", nil
	}
	sel := topics[fm.showIdx]
	if err := format.WritePrettySection(out, sel, opts.Style, opts.Width); err != nil {
		return sel.Slug, err
	}
	return sel.Slug, nil
}

type model struct {
	ctx        context.Context
	store      progress.Store
	table      table.Model
	topics     []tutorial.Section
	recs       map[string]progress.Record
	showIdx    int
	headers    bool
	width      int
	height     int
	titleWidth int
	status     string
}

func (m *model) initTable() {
	cols := m.columnsFor(m.headers, 14, 40, 5, 18)
	m.table = table.New(table.WithColumns(cols), table.WithFocused(true))
	m.titleWidth = 40
	m.updateRows()
	m.applyStyles()
}

func (m *model) updateRows() {
	rows := make([]table.Row, 0, len(m.topics))
	for _, s := range m.topics {
		rows = append(rows, table.Row{
			s.Slug,
			s.Title,
			fmt.Sprintf("%d", format.BodyLines(s)),
			m.viewedCell(s),
		})
	}
	m.table.SetRows(rows)
}

// viewedCell summarizes progress: empty for unread, the local view time
// otherwise, with a trailing * when the topic changed since that view.
func (m *model) viewedCell(s tutorial.Section) string {
	r, ok := m.recs[s.Slug]
	if !ok {
		return ""
	}
	cell := r.LastViewed.Local().Format("2006-01-02 15:04")
	if r.Stale(s.Digest()) {
		cell += " *"
	}
	return cell
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case markResultMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Mark failed: %v", msg.err)
			return m, nil
		}
		m.recs[msg.slug] = msg.rec
		m.updateRows()
		m.status = fmt.Sprintf("Marked %s read (%s)", msg.slug, msg.dur)
		return m, nil
	case resetResultMsg:
		if msg.err != nil && !errors.Is(msg.err, progress.ErrNotFound) {
			m.status = fmt.Sprintf("Reset failed: %v", msg.err)
			return m, nil
		}
		delete(m.recs, msg.slug)
		m.updateRows()
		m.status = fmt.Sprintf("Marked %s unread", msg.slug)
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.applyLayout()
		m.updateRows()
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c", "ctrl+q":
			return m, tea.Quit
		case "enter":
			idx := m.table.Cursor()
			if idx >= 0 && idx < len(m.topics) {
				m.showIdx = idx
			}
			return m, tea.Quit
		case "r":
			idx := m.table.Cursor()
			if m.store == nil {
				m.status = "progress tracking disabled"
				return m, nil
			}
			if idx >= 0 && idx < len(m.topics) {
				sel := m.topics[idx]
				m.status = fmt.Sprintf("Marking %s…", sel.Slug)
				return m, markCmd(m.ctx, m.store, sel)
			}
			return m, nil
		case "u":
			idx := m.table.Cursor()
			if m.store == nil {
				m.status = "progress tracking disabled"
				return m, nil
			}
			if idx >= 0 && idx < len(m.topics) {
				sel := m.topics[idx]
				m.status = fmt.Sprintf("Resetting %s…", sel.Slug)
				return m, resetCmd(m.ctx, m.store, sel.Slug)
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m model) renderFooter() string {
	left := "↑/↓ to navigate • enter=read • r=mark read • u=mark unread • q=exit"

	right := ""
	if m.status != "" {
		right = m.status + " "
	}

	width := m.table.Width()
	space := width - lipgloss.Width(left) - lipgloss.Width(right)
	if space < 1 {
		space = 1
	}

	return left + strings.Repeat(" ", space) + right
}

func (m model) View() string {
	if m.table.Height() < 3 {
		return "(no topics) \n"
	}
	return m.table.View() + "\n" + m.renderFooter() + "\n"
}

func (m *model) applyLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	h := max(6, m.height-1)
	m.table.SetHeight(h)
	m.table.SetWidth(m.width)
	pad := 4
	avail := m.width - pad
	if avail < 40 {
		return
	}
	slugW := 14
	linesW := 5
	viewedW := 18
	titleW := avail - slugW - linesW - viewedW
	if titleW < 12 {
		titleW = 12
	}
	m.titleWidth = titleW
	m.table.SetColumns(m.columnsFor(m.headers, slugW, titleW, linesW, viewedW))
}

func (m *model) applyStyles() {
	s := table.DefaultStyles()
	if m.headers {
		s.Header = s.Header.
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			BorderBottom(true).
			Bold(true)
	} else {
		// Minimize header prominence when disabled
		s.Header = s.Header.
			BorderBottom(false).
			Bold(false)
	}
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	m.table.SetStyles(s)
}

// columnsFor returns columns with or without titles based on headers flag.
func (m *model) columnsFor(headers bool, slugW, titleW, linesW, viewedW int) []table.Column {
	if headers {
		return []table.Column{
			{Title: "Slug", Width: slugW},
			{Title: "Title", Width: titleW},
			{Title: "Lines", Width: linesW},
			{Title: "Viewed", Width: viewedW},
		}
	}
	return []table.Column{
		{Title: "", Width: slugW},
		{Title: "", Width: titleW},
		{Title: "", Width: linesW},
		{Title: "", Width: viewedW},
	}
}
