// Package cli provides the command-line interface for nearby.
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/runoshun/nearby/internal/app"
)

// Command group IDs.
const (
	groupTask  = "task"
	groupSetup = "setup"
)

const (
	dataDirFlag  = "data-dir"
	locationHelp = "home, school or supermarket"
	priorityHelp = "low, medium or high"
)

// launchTUIFunc is a function variable for launching the TUI, allowing it to be mocked in tests.
var launchTUIFunc = launchTUI

// NewRootCommand creates the root command for nearby.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "nearby",
		Short: "Location-aware personal task manager",
		Long: `nearby keeps an ordered list of tasks tied to home, school or the
supermarket and recommends the one task that is closest to where you are.

Run without arguments to open the interactive list.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			// Skip if container is nil (e.g. in tests)
			if c == nil || c.AppConfig == nil {
				return
			}
			for _, w := range c.AppConfig.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			// Default: launch TUI
			return launchTUIFunc(c)
		},
	}

	// Parsed by main before the container exists; registered here for help and validation.
	root.PersistentFlags().String(dataDirFlag, "", "Data directory (default: $NEARBY_DATA_DIR or $XDG_DATA_HOME/nearby)")

	// Define command groups
	root.AddGroup(
		&cobra.Group{ID: groupTask, Title: "Task Management:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)

	// Task commands
	for _, cmd := range []*cobra.Command{
		newAddCommand(c),
		newListCommand(c),
		newEditCommand(c),
		newDeleteCommand(c),
		newMoveCommand(c),
		newRecommendCommand(c),
		newImportCommand(c),
		newExportCommand(c),
		newTUICommand(c),
	} {
		cmd.GroupID = groupTask
		root.AddCommand(cmd)
	}

	// Setup commands
	for _, cmd := range []*cobra.Command{
		newConfigCommand(c),
		newMigrateCommand(c),
		newLogsCommand(c),
	} {
		cmd.GroupID = groupSetup
		root.AddCommand(cmd)
	}

	return root
}

// DataDirFromArgs returns the value of --data-dir in args, if any.
// main needs it before the root command is built.
func DataDirFromArgs(args []string) string {
	prefix := "--" + dataDirFlag
	for i, arg := range args {
		if arg == "--" {
			break
		}
		if v, ok := strings.CutPrefix(arg, prefix+"="); ok {
			return v
		}
		if arg == prefix && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}
