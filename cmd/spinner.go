package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sync/errgroup"
)

// checkDoneMsg reports progress; results travel in checksDoneMsg.
type checkDoneMsg struct {
	index int
}

type checksDoneMsg struct {
	results []checkResult
	err     error
}

type checksModel struct {
	spinner  spinner.Model
	names    []string
	finished []bool
	run      tea.Cmd
	results  []checkResult
	err      error
	done     bool
}

func newChecksModel(checks []doctorCheck, run tea.Cmd) checksModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	names := make([]string, len(checks))
	for i, check := range checks {
		names[i] = check.name
	}

	return checksModel{
		spinner:  s,
		names:    names,
		finished: make([]bool, len(checks)),
		run:      run,
	}
}

func (m checksModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.run)
}

func (m checksModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case checkDoneMsg:
		if msg.index >= 0 && msg.index < len(m.finished) {
			m.finished = append([]bool(nil), m.finished...)
			m.finished[msg.index] = true
		}
		return m, nil
	case checksDoneMsg:
		m.done = true
		m.results = msg.results
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m checksModel) View() string {
	if m.done {
		return ""
	}

	var pending []string
	for i, name := range m.names {
		if !m.finished[i] {
			pending = append(pending, name)
		}
	}
	return fmt.Sprintf("%s Checking %s (%d/%d done)", m.spinner.View(), strings.Join(pending, ", "), len(m.names)-len(pending), len(m.names))
}

// runChecks runs every check concurrently behind a spinner on output and
// returns the results in check order.
func runChecks(ctx context.Context, output io.Writer, checks []doctorCheck) ([]checkResult, error) {
	var p *tea.Program
	run := func() tea.Msg {
		results := make([]checkResult, len(checks))
		g, gctx := errgroup.WithContext(ctx)
		for i, check := range checks {
			i, check := i, check
			g.Go(func() error {
				results[i] = check.run(gctx)
				p.Send(checkDoneMsg{index: i})
				return nil
			})
		}
		err := g.Wait()
		return checksDoneMsg{results: results, err: err}
	}

	p = tea.NewProgram(
		newChecksModel(checks, run),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	result, ok := finalModel.(checksModel)
	if !ok {
		return nil, fmt.Errorf("unexpected final checks model type %T", finalModel)
	}

	return result.results, result.err
}
