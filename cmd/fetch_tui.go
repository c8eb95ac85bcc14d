package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// fetchDoneMsg carries the outcome of the background fetch.
type fetchDoneMsg struct {
	err error
}

// fetchModel shows a spinner while a fetch runs.
type fetchModel struct {
	spinner spinner.Model
	label   string
	run     func() error
	cancel  context.CancelFunc

	err  error
	done bool
}

func newFetchModel(label string, run func() error, cancel context.CancelFunc) fetchModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return fetchModel{
		spinner: s,
		label:   label,
		run:     run,
		cancel:  cancel,
	}
}

func (m fetchModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.startFetch())
}

func (m fetchModel) startFetch() tea.Cmd {
	return func() tea.Msg {
		return fetchDoneMsg{err: m.run()}
	}
}

func (m fetchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			m.cancel()
			m.done = true
			m.err = context.Canceled
			return m, tea.Quit
		}

	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case fetchDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	}

	return m, nil
}

func (m fetchModel) View() string {
	if m.done {
		return ""
	}
	return fmt.Sprintf(" %s %s\n", m.spinner.View(), m.label)
}

// useTUI reports whether the spinner should be shown for cmd.
func useTUI(cmd *cobra.Command) bool {
	if noTUI || cmd.OutOrStdout() != os.Stdout {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// runFetch calls run, behind a spinner on stderr when attached to a terminal.
// run receives a context that is canceled if the user quits the spinner.
func runFetch(cmd *cobra.Command, label string, run func(ctx context.Context) error) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	if !useTUI(cmd) {
		return run(ctx)
	}

	m := newFetchModel(label, func() error { return run(ctx) }, cancel)
	final, err := tea.NewProgram(m, tea.WithOutput(os.Stderr)).Run()
	if err != nil {
		return fmt.Errorf("spinner failed: %w", err)
	}
	return final.(fetchModel).err
}
