package tui

import (
	"errors"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/jsamuelsen11/todo-board/internal/app/editor"
	"github.com/jsamuelsen11/todo-board/internal/domain/todo"
)

var errTitleRequired = errors.New("title is required")

type editorPane int

const (
	paneFields editorPane = iota
	paneChecklist
)

type inputMode int

const (
	inputNone inputMode = iota
	inputText
	inputDate
)

// fieldBindings holds form values on the heap so that huh's Value()
// pointers remain valid across Bubble Tea model copies.
type fieldBindings struct {
	title       string
	description string
	category    string
	subCategory string
	assignee    todo.Assignee
}

type editorView struct {
	ed           *editor.Editor
	form         *huh.Form
	fb           *fieldBindings
	pane         editorPane
	cursor       int
	input        textinput.Model
	mode         inputMode
	inputItem    string
	saving       bool
	stopAutosave func()
}

// openEditor switches to the editor and starts its auto-save.
func (m *Model) openEditor(ed *editor.Editor) tea.Cmd {
	f := ed.Form()
	ti := textinput.New()
	ti.Prompt = "> "

	m.editor = editorView{
		ed: ed,
		fb: &fieldBindings{
			title:       f.Title,
			description: f.Description,
			category:    f.Category,
			subCategory: f.SubCategory,
			assignee:    f.Assignee,
		},
		input: ti,
	}
	m.editor.form = m.buildEditorForm()

	if m.deps.AutosaveInterval > 0 {
		n := m.notifier
		m.editor.stopAutosave = ed.StartAutoSave(m.ctx, m.deps.AutosaveInterval, func() {
			n.notify(autosavedMsg{})
		})
	}
	m.view = viewEditor
	return m.editor.form.Init()
}

// closeEditor stops auto-save and returns to the board.
func (m *Model) closeEditor() {
	if m.editor.stopAutosave != nil {
		m.editor.stopAutosave()
	}
	m.editor = editorView{}
	m.view = viewBoard
}

func (m *Model) buildEditorForm() *huh.Form {
	fb := m.editor.fb
	assignees := make([]huh.Option[todo.Assignee], len(todo.Assignees))
	for i, a := range todo.Assignees {
		assignees[i] = huh.NewOption(a.String(), a)
	}

	return huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Title").
			Value(&fb.title).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return errTitleRequired
				}
				return nil
			}),
		huh.NewText().
			Title("Description").
			Value(&fb.description),
		huh.NewInput().
			Title("Category").
			Placeholder("e.g., Work, Personal").
			Suggestions(m.categorySuggestions()).
			Value(&fb.category),
		huh.NewInput().
			Title("Sub-Category").
			Placeholder("e.g., Courses, Groceries").
			Value(&fb.subCategory),
		huh.NewSelect[todo.Assignee]().
			Title("Assignee").
			Options(assignees...).
			Value(&fb.assignee),
	)).WithWidth(formWidth(m.width)).WithShowHelp(false)
}

func (m *Model) categorySuggestions() []string {
	return slices.DeleteFunc(m.board.Snapshot().Labels, func(l string) bool {
		return l == todo.UncategorizedLabel
	})
}

// syncFields copies the form bindings into the editor model.
func (m *Model) syncFields() {
	fb, ed := m.editor.fb, m.editor.ed
	f := ed.Form()
	if f.Title != fb.title {
		ed.SetTitle(fb.title)
	}
	if f.Description != fb.description {
		ed.SetDescription(fb.description)
	}
	if f.Category != fb.category {
		ed.SetCategory(fb.category)
	}
	if f.SubCategory != fb.subCategory {
		ed.SetSubCategory(fb.subCategory)
	}
	if f.Assignee != fb.assignee {
		_ = ed.SetAssignee(fb.assignee)
	}
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	m.syncFields()
	m.editor.saving = true
	m.clearMessages()
	ed, ctx := m.editor.ed, m.ctx
	return m, func() tea.Msg {
		id, err := ed.Submit(ctx)
		return savedMsg{id: id, err: err}
	}
}

func (m Model) updateEditor(msg tea.Msg) (tea.Model, tea.Cmd) {
	k, isKey := msg.(tea.KeyMsg)

	if m.editor.mode != inputNone {
		if isKey {
			return m.updateItemInput(k)
		}
		var cmd tea.Cmd
		m.editor.input, cmd = m.editor.input.Update(msg)
		return m, cmd
	}

	if isKey {
		switch {
		case key.Matches(k, m.keys.Save):
			if m.editor.saving {
				return m, nil
			}
			return m.submit()
		case key.Matches(k, m.keys.Back):
			m.closeEditor()
			return m, m.loadBoard()
		case key.Matches(k, m.keys.SwitchPane):
			m.syncFields()
			if m.editor.pane == paneFields {
				m.editor.pane = paneChecklist
			} else {
				m.editor.pane = paneFields
			}
			return m, nil
		case key.Matches(k, m.keys.DeleteTodo):
			if id := m.editor.ed.ID(); id != "" {
				return m.askDelete(id, true)
			}
			return m, nil
		}
	}

	if m.editor.pane == paneChecklist {
		if isKey {
			return m.updateChecklist(k)
		}
		return m, nil
	}

	mdl, cmd := m.editor.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.editor.form = f
	}
	m.syncFields()

	switch m.editor.form.State {
	case huh.StateCompleted:
		m.editor.form = m.buildEditorForm()
		if m.editor.saving {
			return m, m.editor.form.Init()
		}
		next, submitCmd := m.submit()
		return next, tea.Batch(submitCmd, m.editor.form.Init())
	case huh.StateAborted:
		m.closeEditor()
		return m, m.loadBoard()
	}
	return m, cmd
}

func (m Model) updateChecklist(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	ed := m.editor.ed
	items := ed.Form().Checklist
	var selected string
	if m.editor.cursor < len(items) {
		selected = items[m.editor.cursor].ID
	}

	switch {
	case key.Matches(k, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(k, m.keys.Up):
		m.editor.cursor = max(0, m.editor.cursor-1)
	case key.Matches(k, m.keys.Down):
		m.editor.cursor = max(0, min(len(items)-1, m.editor.cursor+1))
	case key.Matches(k, m.keys.MoveUp):
		if m.editor.cursor > 0 {
			ed.Reorder(m.editor.cursor, m.editor.cursor-1)
			m.editor.cursor--
		}
	case key.Matches(k, m.keys.MoveDown):
		if m.editor.cursor < len(items)-1 {
			ed.Reorder(m.editor.cursor, m.editor.cursor+1)
			m.editor.cursor++
		}
	case key.Matches(k, m.keys.AddItem):
		id := ed.AddItem()
		m.editor.cursor = len(items)
		return m.startInput(inputText, id, "")
	case key.Matches(k, m.keys.EditItem):
		if selected != "" {
			return m.startInput(inputText, selected, items[m.editor.cursor].Text)
		}
	case key.Matches(k, m.keys.ToggleItem):
		if selected != "" {
			ed.ToggleItem(selected)
		}
	case key.Matches(k, m.keys.RemoveItem):
		if selected != "" {
			ed.DeleteItem(selected)
			m.editor.cursor = max(0, min(m.editor.cursor, len(items)-2))
		}
	case key.Matches(k, m.keys.SetDate):
		if selected == "" {
			return m, nil
		}
		if !ed.ShowsExpiration(selected) {
			m.errMsg = "Expiration dates apply to checked items in Courses todos"
			return m, nil
		}
		current := ""
		if d := items[m.editor.cursor].ExpirationDate; d != nil {
			current = *d
		}
		return m.startInput(inputDate, selected, current)
	}
	return m, nil
}

func (m Model) startInput(mode inputMode, itemID, value string) (tea.Model, tea.Cmd) {
	m.clearMessages()
	m.editor.mode = mode
	m.editor.inputItem = itemID
	m.editor.input.SetValue(value)
	m.editor.input.Placeholder = "Checklist item text"
	if mode == inputDate {
		m.editor.input.Placeholder = "YYYY-MM-DD (empty clears)"
	}
	return m, m.editor.input.Focus()
}

func (m Model) updateItemInput(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch k.Type {
	case tea.KeyEnter:
		value := m.editor.input.Value()
		if m.editor.mode == inputDate {
			if err := m.editor.ed.SetItemDate(m.editor.inputItem, value); err != nil {
				m.errMsg = displayError(err)
				return m, nil
			}
		} else {
			m.editor.ed.EditItem(m.editor.inputItem, value)
		}
		m.editor.mode = inputNone
		m.editor.input.Blur()
		return m, nil
	case tea.KeyEsc:
		m.editor.mode = inputNone
		m.editor.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.editor.input, cmd = m.editor.input.Update(k)
	return m, cmd
}

func (m Model) editorView() string {
	ed := m.editor.ed
	var b strings.Builder

	title := "New Todo"
	if ed.Mode() == editor.ModeEdit {
		title = "Edit Todo"
	}
	b.WriteString(groupStyle.Render(title))
	switch {
	case m.editor.saving:
		b.WriteString(metaStyle.Render("  saving..."))
	case ed.Dirty():
		b.WriteString(dirtyStyle.Render("  ● unsaved changes"))
	}
	b.WriteString("\n\n")
	b.WriteString(m.editor.form.View())
	b.WriteString("\n")

	heading := "Checklist"
	if m.editor.pane == paneChecklist {
		heading = "▸ Checklist"
	}
	b.WriteString(groupStyle.Render(heading))
	b.WriteString("\n")

	items := ed.Form().Checklist
	if len(items) == 0 {
		b.WriteString(metaStyle.Render("  (empty, press a in the checklist pane to add)"))
		b.WriteString("\n")
	}
	for i, it := range items {
		box := "[ ]"
		text := it.Text
		if it.Checked {
			box = "[x]"
			text = checkedStyle.Render(text)
		}
		if strings.TrimSpace(it.Text) == "" {
			text = metaStyle.Render("(blank, dropped on save)")
		}
		line := "☰ " + box + " " + text
		if ed.ShowsExpiration(it.ID) {
			date := "no date"
			if it.ExpirationDate != nil {
				date = *it.ExpirationDate
			}
			line += "  " + dateStyle.Render("expires "+date)
		}

		if m.editor.pane == paneChecklist && i == m.editor.cursor {
			b.WriteString(selectedStyle.Render(line))
		} else {
			b.WriteString(itemStyle.Render(line))
		}
		b.WriteString("\n")
	}

	if m.editor.mode != inputNone {
		b.WriteString(m.editor.input.View())
		b.WriteString("\n")
	}
	return b.String()
}
