package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/jsamuelsen11/todo-board/internal/domain/expiration"
)

// reportView is the read-only list of synced course expirations.
type reportView struct {
	vp      viewport.Model
	records []expiration.Record
}

func newReportView(width, height int) reportView {
	return reportView{vp: viewport.New(width, height)}
}

func (r *reportView) setSize(width, height int) {
	r.vp.Width = width
	r.vp.Height = max(height, 3)
}

func (r *reportView) setRecords(records []expiration.Record) {
	r.records = records
	r.vp.SetContent(renderReport(records, time.Now()))
	r.vp.GotoTop()
}

func (r reportView) View() string {
	return groupStyle.Render("Course expirations") + "\n" + r.vp.View()
}

// renderReport lays records out as a table. The Due column is relative to
// now; records with an unreadable date leave it blank.
func renderReport(records []expiration.Record, now time.Time) string {
	if len(records) == 0 {
		return "No course expirations recorded."
	}

	width := len("Course")
	for _, rec := range records {
		width = max(width, len(rec.TodoTitle))
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	var b strings.Builder
	fmt.Fprintf(&b, "%-10s  %-14s  %-*s  %s\n", "Expires", "Due", width, "Course", "Item")
	for _, rec := range records {
		fmt.Fprintf(&b, "%s  %-14s  %-*s  %s\n",
			dateStyle.Render(fmt.Sprintf("%-10s", rec.ExpirationDate)),
			due(rec.ExpirationDate, today),
			width, rec.TodoTitle, rec.ItemText)
	}
	return b.String()
}

func due(date string, today time.Time) string {
	d, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return ""
	}
	if d.Equal(today) {
		return "today"
	}
	return humanize.RelTime(d, today, "ago", "from now")
}

func (m Model) loadReport() tea.Cmd {
	client, ctx := m.deps.Client, m.ctx
	return func() tea.Msg {
		records, err := client.ListExpirations(ctx)
		return expirationsLoadedMsg{records: records, err: err}
	}
}

func (m Model) updateReport(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, m.keys.Back), key.Matches(k, m.keys.Quit):
			m.view = viewBoard
			m.clearMessages()
			return m, nil
		case key.Matches(k, m.keys.Refresh):
			m.loading = true
			return m, tea.Batch(m.spinner.Tick, m.loadReport())
		}
	}

	var cmd tea.Cmd
	m.report.vp, cmd = m.report.vp.Update(msg)
	return m, cmd
}
