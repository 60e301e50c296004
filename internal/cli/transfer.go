package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/runoshun/nearby/internal/app"
	"github.com/runoshun/nearby/internal/usecase"
)

// newImportCommand creates the import command.
func newImportCommand(c *app.Container) *cobra.Command {
	var opts struct {
		From   string
		DryRun bool
	}

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Append tasks from a YAML or JSON file",
		Long: `Append tasks from a file to the end of the list.

The file holds a list of tasks, either at the top level or under a
"tasks" key. Missing priority and location default to low and home.
Use "-" to read from stdin.

Example file:
  - name: Buy milk
    dueDate: "2024-05-02"
    priority: high
    location: supermarket`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			content, err := readInput(cmd.InOrStdin(), opts.From)
			if err != nil {
				return err
			}

			out, err := c.ImportTasksUseCase().Execute(cmd.Context(), usecase.ImportTasksInput{
				Content: content,
				DryRun:  opts.DryRun,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			verb := "Imported"
			if opts.DryRun {
				verb = "Would import"
			}
			_, _ = fmt.Fprintf(w, "%s %d tasks\n", verb, len(out.Tasks))
			for _, t := range out.Tasks {
				_, _ = fmt.Fprintf(w, "  %s (%s, %s)\n", t.Name, t.Location, t.Priority)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.From, "from", "f", "", "File to import (- for stdin)")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Validate without storing")
	_ = cmd.MarkFlagRequired("from")

	return cmd
}

// readInput reads path, or r when path is "-".
func readInput(r io.Reader, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(r)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return content, nil
}

// newExportCommand creates the export command.
func newExportCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Format string
		Output string
	}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the task list",
		Long: `Export the task list as json, yaml, csv or pdf.

Without --output the result is written to stdout.

Examples:
  nearby export --format yaml > tasks.yaml
  nearby export --format pdf -o tasks.pdf`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ExportTasksUseCase().Execute(cmd.Context(), usecase.ExportTasksInput{
				Format: opts.Format,
			})
			if err != nil {
				return err
			}

			if opts.Output == "" {
				_, err = cmd.OutOrStdout().Write(out.Data)
				return err
			}

			if err := os.WriteFile(opts.Output, out.Data, 0o644); err != nil { //nolint:gosec // Exported file is meant to be shared
				return fmt.Errorf("write %s: %w", opts.Output, err)
			}
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d tasks to %s\n", out.Count, opts.Output)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Format, "format", "json", "Output format: json, yaml, csv or pdf")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Write to file instead of stdout")

	return cmd
}
