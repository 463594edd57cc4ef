package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/darasahq/darasa/internal/cli/formatter"
	"github.com/darasahq/darasa/internal/content"
	"github.com/darasahq/darasa/internal/session"
)

// studyMode selects which input layer owns key presses.
type studyMode int

const (
	modeBrowse studyMode = iota
	modeNote
	modeAnswer
	modeConfirmClear
)

type studyKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Toggle   key.Binding
	Answer   key.Binding
	Note     key.Binding
	Clear    key.Binding
	Quit     key.Binding
	Submit   key.Binding
	Cancel   key.Binding
}

var studyKeys = studyKeyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev item")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next item")),
	Toggle: key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "toggle done")),
	Answer: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "answer checkpoint")),
	Note:   key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "edit note")),
	Clear:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear note")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
	Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
}

type sessionLoadedMsg struct {
	vm session.ViewModel
}

// studyModel is the bubbletea model for one study session. All state
// transitions go through the session controller; the model only holds
// the latest view model snapshot and input widgets.
type studyModel struct {
	ctx   context.Context
	ctrl  *session.Controller
	vm    session.ViewModel
	mode  studyMode
	input textinput.Model
	width int
}

func newStudyModel(ctx context.Context, ctrl *session.Controller) *studyModel {
	input := textinput.New()
	input.CharLimit = 0
	return &studyModel{
		ctx:   ctx,
		ctrl:  ctrl,
		vm:    ctrl.ViewModel(),
		mode:  modeBrowse,
		input: input,
		width: 80,
	}
}

// barWidth sizes the progress bar to the terminal, bounded so narrow
// windows still get a legible bar.
func (m *studyModel) barWidth() int {
	w := m.width / 3
	if w < 12 {
		w = 12
	}
	if w > 40 {
		w = 40
	}
	return w
}

func (m *studyModel) Init() tea.Cmd {
	return func() tea.Msg {
		return sessionLoadedMsg{vm: m.ctrl.Load(m.ctx)}
	}
}

func (m *studyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case sessionLoadedMsg:
		m.vm = msg.vm
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeBrowse:
			return m.updateBrowse(msg)
		case modeNote, modeAnswer:
			return m.updateInput(msg)
		case modeConfirmClear:
			return m.updateConfirmClear(msg)
		}
	}
	return m, nil
}

func (m *studyModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, studyKeys.Quit):
		return m, tea.Quit

	case key.Matches(msg, studyKeys.Up):
		m.moveSelection(-1)

	case key.Matches(msg, studyKeys.Down):
		m.moveSelection(1)

	case key.Matches(msg, studyKeys.Toggle):
		if item := m.vm.ActiveItem(); item != nil {
			m.vm = m.ctrl.Dispatch(m.ctx, session.CompletionEvent{ContentID: item.ID})
		}

	case key.Matches(msg, studyKeys.Answer):
		if item := m.vm.ActiveItem(); item != nil && item.Policy == content.PolicyCheckpoint {
			m.mode = modeAnswer
			m.input.Placeholder = "your answer"
			m.input.SetValue("")
			m.input.Focus()
			return m, textinput.Blink
		}

	case key.Matches(msg, studyKeys.Note):
		m.mode = modeNote
		m.input.Placeholder = "lesson note"
		m.input.SetValue(m.vm.Note)
		m.input.Focus()
		return m, textinput.Blink

	case key.Matches(msg, studyKeys.Clear):
		if m.vm.Note != "" {
			m.mode = modeConfirmClear
		}
	}
	return m, nil
}

func (m *studyModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, studyKeys.Cancel):
		m.mode = modeBrowse
		m.input.Blur()
		return m, nil

	case key.Matches(msg, studyKeys.Submit):
		value := m.input.Value()
		if m.mode == modeNote {
			m.vm = m.ctrl.Dispatch(m.ctx, session.SaveNote{Text: value})
		} else if item := m.vm.ActiveItem(); item != nil {
			m.vm = m.ctrl.Dispatch(m.ctx, session.SubmitCheckpoint{ContentID: item.ID, Answer: value})
		}
		m.mode = modeBrowse
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *studyModel) updateConfirmClear(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.vm = m.ctrl.Dispatch(m.ctx, session.ClearNote{Confirmed: true})
	}
	m.mode = modeBrowse
	return m, nil
}

func (m *studyModel) moveSelection(delta int) {
	if len(m.vm.Items) == 0 {
		return
	}
	idx := 0
	for i := range m.vm.Items {
		if m.vm.Items[i].ID == m.vm.ActiveID {
			idx = i
			break
		}
	}
	idx += delta
	if idx < 0 || idx >= len(m.vm.Items) {
		return
	}
	m.vm = m.ctrl.Dispatch(m.ctx, session.SelectItem{ContentID: m.vm.Items[idx].ID})
}

var (
	styleActive    = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	styleCompleted = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	styleItem      = lipgloss.NewStyle().Foreground(formatter.ColorFg)
)

func (m *studyModel) View() string {
	switch m.vm.Status {
	case session.StatusLoading:
		return "\n  Loading lesson...\n"
	case session.StatusNotFound:
		return "\n  " + formatter.StyleRed.Render("Lesson not found.") + "\n\n  Press q to quit.\n"
	}

	var b strings.Builder

	b.WriteString("\n  " + formatter.Header(m.vm.Title) + "\n")
	if m.vm.Subject != "" {
		b.WriteString("  " + formatter.Dim(m.vm.Subject) + "\n")
	}

	b.WriteString(fmt.Sprintf("  %s  %s\n\n",
		formatter.RenderProgress(m.vm.Progress.Percent, m.barWidth()),
		formatter.Dim(fmt.Sprintf("%d XP", m.vm.Progress.XP))))

	if m.vm.LiveSession != nil {
		b.WriteString("  " + formatter.StylePurple.Render("⦿ live session") + " " +
			formatter.Dim(m.vm.LiveSession.JoinURL) + "\n\n")
	}

	if len(m.vm.Items) == 0 {
		b.WriteString("  " + formatter.Dim("This lesson has no published content yet.") + "\n")
	}

	for i := range m.vm.Items {
		item := &m.vm.Items[i]

		mark := "○"
		if item.Completed {
			mark = "●"
		}
		line := fmt.Sprintf("%s %s %s", mark, item.Title, formatter.Dim("("+string(item.ContentType)+")"))

		style := styleItem
		if item.Completed {
			style = styleCompleted
		}
		if item.ID == m.vm.ActiveID {
			style = styleActive
			line = "▸ " + line
		} else {
			line = "  " + line
		}
		b.WriteString("  " + style.Render(line) + "\n")

		if result, ok := m.vm.CheckpointResults[item.ID]; ok && item.ID == m.vm.ActiveID {
			verdict := formatter.StyleGreen.Render("correct")
			if !result.Correct {
				verdict = formatter.StyleYellow.Render("not quite, but recorded")
			}
			b.WriteString("      " + verdict + "\n")
		}
	}

	b.WriteString("\n")
	if active := m.vm.ActiveItem(); active != nil {
		if active.Description != "" {
			b.WriteString("  " + active.Description + "\n")
		}
		if active.URL != "" {
			b.WriteString("  " + formatter.StyleBlue.Render(active.URL) + "\n")
		}
	}

	switch m.mode {
	case modeNote:
		b.WriteString("\n  Note: " + m.input.View() + "\n")
	case modeAnswer:
		b.WriteString("\n  Answer: " + m.input.View() + "\n")
	case modeConfirmClear:
		b.WriteString("\n  " + formatter.StyleYellow.Render("Clear note? (y/n)") + "\n")
	default:
		if m.vm.Note != "" {
			b.WriteString("\n  " + formatter.Dim("note: "+firstLine(m.vm.Note)) + "\n")
		}
		b.WriteString("\n  " + formatter.Dim("↑/↓ move · space toggle · a answer · n note · c clear · q quit") + "\n")
	}

	return b.String()
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + "…"
	}
	return s
}
