// Package main is the entry point for the nearby CLI.
package main

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/runoshun/nearby/internal/app"
	"github.com/runoshun/nearby/internal/cli"
)

// version is set at build time using -ldflags.
var version = "dev"

// newRootCommand is a variable for testing.
var newRootCommand = cli.NewRootCommand

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	dataDir, err := app.ResolveDataDir(cli.DataDirFromArgs(os.Args[1:]))
	if err != nil {
		return err
	}

	// Create dependency injection container
	container, err := app.New(dataDir)
	if err != nil {
		return runWithoutContainer(fmt.Errorf("failed to initialize: %w", err))
	}
	defer func() { _ = container.Close() }()

	// Create and execute root command
	rootCmd := newRootCommand(container, version)
	return rootCmd.Execute()
}

// runWithoutContainer runs commands that need no container when the
// container could not be built (for example a broken config file).
func runWithoutContainer(initErr error) error {
	if !canRunWithoutContainer(os.Args[1:]) {
		return initErr
	}
	return newRootCommand(nil, version).Execute()
}

func canRunWithoutContainer(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "--help", "-h", "--version":
			return true
		case "--":
			return false
		}
	}
	// Skip the global flag so the command name comes first.
	if len(args) > 1 && args[0] == "--data-dir" {
		args = args[2:]
	} else if len(args) > 0 && strings.HasPrefix(args[0], "--data-dir=") {
		args = args[1:]
	}
	if len(args) == 0 {
		return false
	}
	switch args[0] {
	case "help":
		return true
	case "config":
		return len(args) > 1 && args[1] == "template" && !slices.Contains(args, "--current")
	}
	return false
}
