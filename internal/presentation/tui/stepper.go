package tui

import (
	"context"
	"strings"

	"github.com/aretw0/balance"
	"github.com/aretw0/balance/pkg/domain"
	"github.com/aretw0/balance/pkg/runner"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Stepper is the interactive bubbletea model: an expression box, a step button and the stack.
type Stepper struct {
	ctx     context.Context
	engine  *balance.Engine
	session *domain.Session
	// prev is the snapshot before the last change, diffed to show what moved on the stack.
	prev *domain.Session

	input textinput.Model
	keys  KeyMap
	help  help.Model

	title        string
	notes        string
	flash        string
	maxInputSize int
	quitting     bool
}

// StepperOption configures a Stepper.
type StepperOption func(*Stepper)

// WithTitle sets the heading (exercise title).
func WithTitle(title string) StepperOption {
	return func(m *Stepper) {
		m.title = title
	}
}

// WithNotes shows pre-rendered notes under the stack.
func WithNotes(notes string) StepperOption {
	return func(m *Stepper) {
		m.notes = strings.TrimSpace(notes)
	}
}

// WithSession starts from an existing session instead of an empty one.
func WithSession(s *domain.Session) StepperOption {
	return func(m *Stepper) {
		m.session = s
	}
}

// WithInputLimit caps the expression length typed in the input box.
func WithInputLimit(limit int) StepperOption {
	return func(m *Stepper) {
		m.maxInputSize = limit
	}
}

// NewStepper builds the model. Without WithSession the expression box starts focused;
// a given session, even with an empty expression, opens ready to step.
func NewStepper(ctx context.Context, engine *balance.Engine, opts ...StepperOption) Stepper {
	ti := textinput.New()
	ti.Placeholder = "type a bracket expression, e.g. {[()]}"
	ti.Prompt = "> "

	m := Stepper{
		ctx:    ctx,
		engine: engine,
		input:  ti,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		title:  "Balance",
	}
	for _, opt := range opts {
		opt(&m)
	}

	if m.maxInputSize <= 0 {
		m.maxInputSize = runner.MaxInputSize()
	}
	m.input.CharLimit = m.maxInputSize

	if m.session == nil {
		m.session = engine.NewSession(ctx)
		m.input.Focus()
		return m
	}
	m.input.SetValue(string(m.session.Input))
	return m
}

// Session returns the current snapshot.
func (m Stepper) Session() *domain.Session {
	return m.session
}

func (m Stepper) Init() tea.Cmd {
	return textinput.Blink
}

func (m Stepper) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.input.Focused() {
			return m.updateEditing(msg)
		}
		return m.updateStepping(msg)
	}

	if m.input.Focused() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Stepper) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Commit):
		m.commit()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Stepper) updateStepping(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Next):
		if m.session.Terminal() {
			m.flash = "session finished; press r to reset or ctrl+r to restart"
			return m, nil
		}
		next, _ := m.engine.Step(m.ctx, m.session)
		m.prev, m.session = m.session, next
		m.flash = ""

	case key.Matches(msg, m.keys.Restart):
		m.prev, m.session = m.session, m.engine.Restart(m.ctx, m.session)
		m.flash = ""

	case key.Matches(msg, m.keys.Reset):
		m.prev, m.session = nil, m.engine.Reset(m.ctx, m.session)
		m.input.SetValue("")
		m.flash = ""
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.Focus):
		if m.session.Status != domain.StatusNotStarted {
			m.flash = "expression is locked; press r to reset"
			return m, nil
		}
		return m, m.input.Focus()
	}
	return m, nil
}

// commit hands the typed expression to the engine and leaves edit mode.
func (m *Stepper) commit() {
	m.input.Blur()

	text, err := runner.SanitizeInputLimit(m.input.Value(), m.maxInputSize)
	if err != nil {
		m.flash = err.Error()
		return
	}
	next, err := m.engine.SetInput(m.ctx, m.session, text)
	if err != nil {
		m.flash = err.Error()
		return
	}
	m.prev, m.session = nil, next
	m.input.SetValue(text)
	m.flash = ""
}

func (m Stepper) View() string {
	if m.quitting {
		return ""
	}

	expression := ExpressionView(m.session)
	if m.input.Focused() {
		expression = m.input.View()
	}

	sections := []string{
		TitleStyle.Render(m.title),
		"",
		row("Expression", expression),
		row("Current", CurrentView(m.session)),
		row("Message", MessageView(m.session)),
		row("Stack", StackView(m.session)),
	}
	if change := StackChangeView(domain.Diff(m.prev, m.session)); change != "" {
		sections = append(sections, row("Change", change))
	}
	if m.flash != "" {
		sections = append(sections, "", FlashStyle.Render(m.flash))
	}
	if m.notes != "" {
		sections = append(sections, "", NotesStyle.Render(m.notes))
	}
	sections = append(sections, "", m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}
