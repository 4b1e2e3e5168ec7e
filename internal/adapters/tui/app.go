// Package tui is the Bubble Tea front end of todoctl. It renders the
// board, the editor and the expirations report, and turns key presses into
// calls on the toolkit-independent models in internal/app.
package tui

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/jsamuelsen11/todo-board/internal/app/board"
	"github.com/jsamuelsen11/todo-board/internal/app/editor"
	"github.com/jsamuelsen11/todo-board/internal/domain"
	"github.com/jsamuelsen11/todo-board/internal/domain/expiration"
	"github.com/jsamuelsen11/todo-board/internal/domain/todo"
	"github.com/jsamuelsen11/todo-board/internal/platform/logging"
	"github.com/jsamuelsen11/todo-board/internal/ports"
)

// Deps are the collaborators of the TUI.
type Deps struct {
	Client           ports.TodoClient
	Health           ports.HealthChecker // optional; drives the header badge
	Logger           *slog.Logger
	AutosaveInterval time.Duration
}

type viewState int

const (
	viewBoard viewState = iota
	viewEditor
	viewExpirations
	viewConfirm
)

type (
	boardLoadedMsg struct{ err error }
	movedMsg       struct {
		id  string
		err error
	}
	deletedMsg      struct{ err error }
	editorOpenedMsg struct {
		ed  *editor.Editor
		err error
	}
	savedMsg struct {
		id  string
		err error
	}
	autosavedMsg         struct{}
	expirationsLoadedMsg struct {
		records []expiration.Record
		err     error
	}
	copiedMsg struct {
		id  string
		err error
	}
)

// notifier lets background work post messages to the running program.
type notifier struct {
	send func(tea.Msg)
}

func (n *notifier) notify(msg tea.Msg) {
	if n.send != nil {
		n.send(msg)
	}
}

// pendingDelete is the todo awaiting delete confirmation.
type pendingDelete struct {
	id         string
	fromEditor bool
	previous   viewState
}

// Model is the root Bubble Tea model.
type Model struct {
	ctx      context.Context
	deps     Deps
	keys     *KeyMap
	help     help.Model
	spinner  spinner.Model
	notifier *notifier

	board  *board.Board
	cursor int
	follow string

	editor editorView
	report reportView

	confirm      *huh.Form
	confirmValue *bool
	pending      pendingDelete

	view    viewState
	loading bool
	status  string
	errMsg  string
	width   int
	height  int
}

// New creates the root model. The logger is attached to ctx so units of
// work log through it.
func New(ctx context.Context, deps Deps) Model {
	deps.Logger = logging.OrDiscard(deps.Logger)
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		ctx:      logging.WithLogger(ctx, deps.Logger),
		deps:     deps,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		spinner:  sp,
		notifier: &notifier{},
		board:    board.New(deps.Client, deps.Logger),
		report:   newReportView(80, 20),
		loading:  true,
		width:    80,
		height:   24,
	}
}

// Run starts the program and blocks until the user quits or ctx is done.
func Run(ctx context.Context, deps Deps) error {
	m := New(ctx, deps)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	m.notifier.send = p.Send

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

// Init loads the board.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadBoard())
}

// Update routes messages to the active view.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.report.setSize(msg.Width, msg.Height-4)
		if m.editor.form != nil {
			m.editor.form = m.editor.form.WithWidth(formWidth(msg.Width))
		}
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case boardLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = displayError(msg.err)
			return m, nil
		}
		m.clampCursor()
		return m, nil

	case movedMsg:
		if msg.err != nil {
			m.errMsg = displayError(msg.err)
		}
		m.followSelection(msg.id)
		return m, nil

	case deletedMsg:
		if msg.err != nil {
			m.errMsg = displayError(msg.err)
			return m, nil
		}
		m.status = "Todo deleted"
		m.clampCursor()
		if m.pending.fromEditor {
			m.pending = pendingDelete{}
			return m, m.loadBoard()
		}
		m.pending = pendingDelete{}
		return m, nil

	case editorOpenedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = displayError(msg.err)
			return m, nil
		}
		return m, m.openEditor(msg.ed)

	case savedMsg:
		m.editor.saving = false
		if msg.err != nil {
			m.errMsg = displayError(msg.err)
			return m, nil
		}
		m.closeEditor()
		m.status = "Todo saved"
		m.follow = msg.id
		return m, m.loadBoard()

	case autosavedMsg:
		if m.view == viewEditor {
			m.status = "Auto-saved at " + time.Now().Format("15:04:05")
		}
		return m, nil

	case expirationsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = displayError(msg.err)
			return m, nil
		}
		m.report.setRecords(msg.records)
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = "Clipboard unavailable: " + msg.err.Error()
			return m, nil
		}
		m.status = "Copied " + msg.id
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) && msg.String() == "ctrl+c" {
			m.closeEditor()
			return m, tea.Quit
		}
	}

	switch m.view {
	case viewEditor:
		return m.updateEditor(msg)
	case viewExpirations:
		return m.updateReport(msg)
	case viewConfirm:
		return m.updateConfirm(msg)
	default:
		return m.updateBoard(msg)
	}
}

// View renders the active view.
func (m Model) View() string {
	var body string
	var keys help.KeyMap
	switch m.view {
	case viewEditor:
		body, keys = m.editorView(), editorHelp{m.keys}
	case viewExpirations:
		body, keys = m.report.View(), reportHelp{m.keys}
	case viewConfirm:
		body, keys = m.confirm.View(), nil
	default:
		body, keys = m.boardView(), boardHelp{m.keys}
	}

	parts := []string{m.header(), body, m.statusLine()}
	if keys != nil {
		parts = append(parts, m.help.View(keys))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) header() string {
	title := headerStyle.Render("todo board")
	if m.deps.Health == nil {
		return title
	}
	if err := m.deps.Health.HealthCheck(m.ctx); err != nil {
		return lipgloss.JoinHorizontal(lipgloss.Top, title, " ", errorStyle.Render("API unavailable"))
	}
	return title
}

func (m Model) statusLine() string {
	switch {
	case m.loading:
		return m.spinner.View() + " Loading..."
	case m.errMsg != "":
		return errorStyle.Render(m.errMsg)
	case m.status != "":
		return statusStyle.Render(m.status)
	default:
		return ""
	}
}

func (m *Model) clearMessages() {
	m.status = ""
	m.errMsg = ""
}

func (m Model) loadBoard() tea.Cmd {
	b, ctx := m.board, m.ctx
	return func() tea.Msg {
		return boardLoadedMsg{err: b.Load(ctx)}
	}
}

// askDelete shows the delete confirmation for id.
func (m Model) askDelete(id string, fromEditor bool) (Model, tea.Cmd) {
	value := false
	m.confirmValue = &value
	m.pending = pendingDelete{id: id, fromEditor: fromEditor, previous: m.view}
	m.confirm = huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title("Are you sure you want to delete this todo?").
			Affirmative("Delete").
			Negative("Cancel").
			Value(m.confirmValue),
	)).WithWidth(formWidth(m.width))
	m.view = viewConfirm
	return m, m.confirm.Init()
}

func (m Model) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, m.keys.Back) {
		m.view = m.pending.previous
		m.pending = pendingDelete{}
		return m, nil
	}

	mdl, cmd := m.confirm.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.confirm = f
	}

	switch m.confirm.State {
	case huh.StateCompleted:
		m.view = m.pending.previous
		if !*m.confirmValue {
			m.pending = pendingDelete{}
			return m, nil
		}
		return m.runDelete()
	case huh.StateAborted:
		m.view = m.pending.previous
		m.pending = pendingDelete{}
		return m, nil
	}
	return m, cmd
}

func (m Model) runDelete() (tea.Model, tea.Cmd) {
	ctx, id := m.ctx, m.pending.id
	if m.pending.fromEditor {
		ed := m.editor.ed
		m.closeEditor()
		return m, func() tea.Msg { return deletedMsg{err: ed.Delete(ctx)} }
	}
	b := m.board
	return m, func() tea.Msg { return deletedMsg{err: b.Delete(ctx, id)} }
}

func copyID(id string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{id: id, err: clipboard.WriteAll(id)}
	}
}

func displayError(err error) string {
	var hm domain.HumanMessager
	if errors.As(err, &hm) && hm.HumanMessage() != "" {
		return hm.HumanMessage()
	}
	return err.Error()
}

func formWidth(width int) int {
	return min(max(width-4, 40), 100)
}

// visibleTodos flattens the displayed groups in render order.
func (m Model) visibleTodos() []todo.Todo {
	var out []todo.Todo
	for _, g := range m.board.Groups() {
		out = append(out, g.Todos...)
	}
	return out
}

func (m *Model) clampCursor() {
	if m.follow != "" {
		m.followSelection(m.follow)
		m.follow = ""
		return
	}
	m.clampCursorIndex()
}

func (m *Model) followSelection(id string) {
	i := slices.IndexFunc(m.visibleTodos(), func(t todo.Todo) bool { return t.ID == id })
	if i >= 0 {
		m.cursor = i
		return
	}
	m.clampCursorIndex()
}

func (m *Model) clampCursorIndex() {
	n := len(m.visibleTodos())
	m.cursor = max(0, min(m.cursor, n-1))
}
