package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/runoshun/nearby/internal/app"
	"github.com/runoshun/nearby/internal/domain"
	"github.com/runoshun/nearby/internal/usecase"
)

// newAddCommand creates the add command for appending a task.
func newAddCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Description string
		Due         string
		Priority    string
		Location    string
	}

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a new task",
		Long: `Add a new task at the end of the list.

Priority defaults to low and location defaults to home.

Examples:
  # Simple task
  nearby add "Buy milk" --location supermarket

  # With all fields
  nearby add "Essay" --desc "2 pages" --due 2024-05-01 --priority high --location school`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.AddTaskUseCase().Execute(cmd.Context(), usecase.AddTaskInput{
				Name:        args[0],
				Description: opts.Description,
				DueDate:     opts.Due,
				Priority:    domain.Priority(opts.Priority),
				Location:    domain.Location(opts.Location),
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added task #%d: %s\n", out.Index, out.Task.Name)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Description, "desc", "d", "", "Task description")
	cmd.Flags().StringVar(&opts.Due, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&opts.Priority, "priority", "p", "", "Priority: "+priorityHelp)
	cmd.Flags().StringVarP(&opts.Location, "location", "l", "", "Location: "+locationHelp)

	return cmd
}

// newListCommand creates the list command.
func newListCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Location string
		JSON     bool
	}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks",
		Long: `Display the task list in its stored order.

Output format is tab-separated with columns:
  INDEX, DUE, PRIORITY, LOCATION, NAME

Examples:
  # All tasks
  nearby list

  # Only tasks at school
  nearby list --location school

  # Machine readable
  nearby list --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ListTasksUseCase().Execute(cmd.Context(), usecase.ListTasksInput{
				Location: domain.Location(opts.Location),
			})
			if err != nil {
				return err
			}

			if opts.JSON {
				return printTaskListJSON(cmd.OutOrStdout(), out.Tasks)
			}
			printTaskList(cmd.OutOrStdout(), out.Tasks)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Location, "location", "l", "", "Show only tasks at this location")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output as JSON")

	return cmd
}

// printTaskList prints tasks in TSV format.
func printTaskList(w io.Writer, tasks []usecase.IndexedTask) {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	defer func() { _ = tw.Flush() }()

	// Header
	_, _ = fmt.Fprintln(tw, "INDEX\tDUE\tPRIORITY\tLOCATION\tNAME")

	// Rows
	for _, it := range tasks {
		due := it.Task.DueDate
		if due == "" {
			due = "-"
		}
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			it.Index, due, it.Task.Priority, it.Task.Location, it.Task.Name)
	}
}

// taskJSON is the list --json row.
type taskJSON struct {
	domain.Task
	Index int `json:"index"`
}

func printTaskListJSON(w io.Writer, tasks []usecase.IndexedTask) error {
	rows := make([]taskJSON, 0, len(tasks))
	for _, it := range tasks {
		rows = append(rows, taskJSON{Task: it.Task, Index: it.Index})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

// newEditCommand creates the edit command.
func newEditCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Name        string
		Description string
		Due         string
		Priority    string
		Location    string
	}

	cmd := &cobra.Command{
		Use:   "edit <index>",
		Short: "Edit a task",
		Long: `Edit the task at the given index.

Only the flags you pass are changed.

Examples:
  nearby edit 2 --priority high
  nearby edit 0 --name "Buy oat milk" --location supermarket`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}

			input := usecase.EditTaskInput{Index: index}
			flags := cmd.Flags()
			if flags.Changed("name") {
				input.Name = &opts.Name
			}
			if flags.Changed("desc") {
				input.Description = &opts.Description
			}
			if flags.Changed("due") {
				input.DueDate = &opts.Due
			}
			if flags.Changed("priority") {
				p := domain.Priority(opts.Priority)
				input.Priority = &p
			}
			if flags.Changed("location") {
				l := domain.Location(opts.Location)
				input.Location = &l
			}

			out, err := c.EditTaskUseCase().Execute(cmd.Context(), input)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated task #%d: %s\n", index, out.Task.Name)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Name, "name", "n", "", "New name")
	cmd.Flags().StringVarP(&opts.Description, "desc", "d", "", "New description")
	cmd.Flags().StringVar(&opts.Due, "due", "", "New due date (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&opts.Priority, "priority", "p", "", "New priority: "+priorityHelp)
	cmd.Flags().StringVarP(&opts.Location, "location", "l", "", "New location: "+locationHelp)

	return cmd
}

// newDeleteCommand creates the rm command.
func newDeleteCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <index>",
		Aliases: []string{"delete"},
		Short:   "Delete a task",
		Long: `Delete the task at the given index.

Tasks after it move up by one index.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}

			out, err := c.DeleteTaskUseCase().Execute(cmd.Context(), usecase.DeleteTaskInput{Index: index})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted task #%d: %s\n", index, out.Task.Name)
			return nil
		},
	}
}

// newMoveCommand creates the mv command.
func newMoveCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "mv <from> <to>",
		Short: "Move a task to another position",
		Long: `Move a task within the list. Indices past either end are clamped.

Examples:
  # Move the last of five tasks to the top
  nearby mv 4 0`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			to, err := parseIndex(args[1])
			if err != nil {
				return err
			}

			out, err := c.MoveTaskUseCase().Execute(cmd.Context(), usecase.MoveTaskInput{From: from, To: to})
			if err != nil {
				return err
			}
			if len(out.Tasks) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No tasks to move")
				return nil
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Moved %s to #%d\n", out.Tasks[out.To].Name, out.To)
			return nil
		},
	}
}

// parseIndex parses a task index argument.
func parseIndex(s string) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid task index: %s", s)
	}
	return i, nil
}
