package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jsamuelsen11/todo-board/internal/app/board"
	"github.com/jsamuelsen11/todo-board/internal/app/editor"
	"github.com/jsamuelsen11/todo-board/internal/domain/todo"
)

func (m Model) updateBoard(msg tea.Msg) (tea.Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	todos := m.visibleTodos()
	var selected *todo.Todo
	if m.cursor < len(todos) {
		selected = &todos[m.cursor]
	}

	switch {
	case key.Matches(k, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(k, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(k, m.keys.Up):
		m.cursor = max(0, m.cursor-1)

	case key.Matches(k, m.keys.Down):
		m.cursor = min(len(todos)-1, m.cursor+1)
		m.cursor = max(0, m.cursor)

	case key.Matches(k, m.keys.NextTab), key.Matches(k, m.keys.PrevTab):
		m.clearMessages()
		step := 1
		if key.Matches(k, m.keys.PrevTab) {
			step = -1
		}
		tabs := m.board.Tabs()
		i := slices.Index(tabs, m.board.Active())
		m.board.SelectTab(tabs[(i+step+len(tabs))%len(tabs)])
		m.cursor = 0

	case key.Matches(k, m.keys.MoveUp), key.Matches(k, m.keys.MoveDown):
		m.clearMessages()
		if selected == nil {
			return m, nil
		}
		dir := board.Down
		if key.Matches(k, m.keys.MoveUp) {
			dir = board.Up
		}
		b, ctx, id := m.board, m.ctx, selected.ID
		return m, func() tea.Msg {
			return movedMsg{id: id, err: b.Move(ctx, id, dir)}
		}

	case key.Matches(k, m.keys.Open):
		if selected == nil {
			return m, nil
		}
		m.clearMessages()
		m.loading = true
		ctx, deps, id := m.ctx, m.deps, selected.ID
		return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
			ed, err := editor.Open(ctx, deps.Client, id, deps.Logger)
			return editorOpenedMsg{ed: ed, err: err}
		})

	case key.Matches(k, m.keys.New):
		m.clearMessages()
		return m, m.openEditor(editor.NewCreate(m.deps.Client, m.deps.Logger))

	case key.Matches(k, m.keys.Delete):
		if selected == nil {
			return m, nil
		}
		m.clearMessages()
		return m.askDelete(selected.ID, false)

	case key.Matches(k, m.keys.Copy):
		if selected == nil {
			return m, nil
		}
		return m, copyID(selected.ID)

	case key.Matches(k, m.keys.Expirations):
		m.clearMessages()
		m.view = viewExpirations
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.loadReport())

	case key.Matches(k, m.keys.Refresh):
		m.clearMessages()
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.loadBoard())
	}
	return m, nil
}

func (m Model) boardView() string {
	var b strings.Builder

	active := m.board.Active()
	tabs := m.board.Tabs()
	rendered := make([]string, len(tabs))
	for i, t := range tabs {
		if t == active {
			rendered[i] = activeTabStyle.Render(t)
		} else {
			rendered[i] = tabStyle.Render(t)
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Bottom, rendered...))
	b.WriteString("\n")

	groups := m.board.Groups()
	total := 0
	for _, g := range groups {
		total += len(g.Todos)
	}
	if total == 0 && !m.loading {
		if active == board.TabAll {
			b.WriteString("\nNo todos found. Press n to create one.\n")
		} else {
			b.WriteString("\nNo todos in this category yet. Press n to create one.\n")
		}
		return b.String()
	}

	idx := 0
	for _, g := range groups {
		if active == board.TabAll {
			b.WriteString(groupStyle.Render(g.Label))
			b.WriteString("\n")
		}
		for _, t := range g.Todos {
			line := renderTodoLine(t)
			if idx == m.cursor {
				b.WriteString(selectedStyle.Render(line))
			} else {
				b.WriteString(itemStyle.Render(line))
			}
			b.WriteString("\n")
			idx++
		}
	}
	return b.String()
}

func renderTodoLine(t todo.Todo) string {
	category := todo.CategoryLabel(t.Category)
	if t.SubCategory != "" {
		category += " / " + t.SubCategory
	}

	meta := []string{category, string(t.Assignee)}
	if n := len(t.Checklist); n > 0 {
		done := 0
		for _, it := range t.Checklist {
			if it.Checked {
				done++
			}
		}
		meta = append(meta, fmt.Sprintf("%d/%d done", done, n))
	}
	if !t.UpdatedAt.IsZero() {
		meta = append(meta, "updated "+t.UpdatedAt.Local().Format("2006-01-02"))
	}
	return t.Title + "  " + metaStyle.Render(strings.Join(meta, " · "))
}
