package cli

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/runoshun/nearby/internal/app"
	"github.com/runoshun/nearby/internal/tui"
)

// newTUICommand creates the tui command for launching the interactive TUI.
// Running nearby without arguments does the same.
func newTUICommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Launch interactive TUI",
		Long:  `Launch the interactive terminal user interface for managing tasks.`,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchTUIFunc(c)
		},
	}
}

// launchTUI runs the TUI until the user quits.
func launchTUI(c *app.Container) error {
	if c == nil {
		return errors.New("no data directory available")
	}

	m := tui.New(c)
	p := tea.NewProgram(m, tea.WithAltScreen())
	stop := m.Watch(p)
	defer stop()

	_, err := p.Run()
	return err
}
