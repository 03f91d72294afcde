package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"medrax-guide/internal/progress"
	"medrax-guide/pkg/tutorial"
)

// markResultMsg conveys the outcome of a mark-read operation back to Update.
type markResultMsg struct {
	slug string
	rec  progress.Record
	err  error
	dur  time.Duration
}

// resetResultMsg conveys the outcome of a mark-unread operation back to Update.
type resetResultMsg struct {
	slug string
	err  error
	dur  time.Duration
}

// markCmd records a view of the topic and returns a markResultMsg.
func markCmd(ctx context.Context, store progress.Store, s tutorial.Section) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		rec, err := store.Mark(ctx, s.Slug, s.Digest(), time.Now())
		return markResultMsg{slug: s.Slug, rec: rec, err: err, dur: time.Since(start)}
	}
}

// resetCmd clears the view record for slug and returns a resetResultMsg.
func resetCmd(ctx context.Context, store progress.Store, slug string) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		err := store.Reset(ctx, slug)
		return resetResultMsg{slug: slug, err: err, dur: time.Since(start)}
	}
}
