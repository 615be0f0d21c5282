package sessions

import (
	"errors"
	"io"

	"github.com/bnema/webex-claude-bridge/internal/adapters/render/card"
	"github.com/bnema/webex-claude-bridge/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

// columns holds the display width of each variable column.
type columns struct {
	label   int
	project int
	path    int
}

// measuredMsg carries the column widths once the sessions are measured.
type measuredMsg columns

type model struct {
	sessions []domain.Session
	opts     RenderOptions
	styles   styles
	columns  columns
	output   string
}

func newModel(sessions []domain.Session, opts RenderOptions) model {
	return model{
		sessions: sessions,
		opts:     opts,
		styles:   newStyles(),
	}
}

func (m model) Init() tea.Cmd {
	sessions, opts := m.sessions, m.opts
	return func() tea.Msg {
		return measuredMsg(measure(sessions, opts))
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case measuredMsg:
		m.columns = columns(msg)
		m.output = renderView(m.sessions, m.columns, m.opts, m.styles)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.output
}

// measure sizes each column to its widest cell, capped so one long prompt
// cannot push the age column off screen.
func measure(sessions []domain.Session, opts RenderOptions) columns {
	labelCap := opts.LabelWidth
	if labelCap <= 0 {
		labelCap = defaultLabelWidth
	}

	var c columns
	for _, session := range sessions {
		c.label = max(c.label, cellWidth(session.Label()))
		c.project = max(c.project, cellWidth(session.ProjectName()))
		c.path = max(c.path, cellWidth(card.ShortPath(session.CWD, opts.Home)))
	}

	return columns{
		label:   min(c.label, labelCap),
		project: min(c.project, projectWidth),
		path:    min(c.path, pathWidth),
	}
}

// Render draws the session table once and returns it as a string.
func Render(sessions []domain.Session, opts RenderOptions) (string, error) {
	p := tea.NewProgram(
		newModel(sessions, opts),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}
