package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/nearby/internal/domain"
)

// ImportTasksInput contains the parameters for importing tasks.
type ImportTasksInput struct {
	Content []byte // YAML or JSON list of tasks
	DryRun  bool   // If true, parse and validate without storing
}

// ImportTasksOutput contains the result of importing tasks.
type ImportTasksOutput struct {
	Tasks []domain.Task // Imported tasks (or tasks that would be imported)
}

// ImportTasks is the use case for appending tasks from a file.
type ImportTasks struct {
	tasks TaskStore
	codec domain.TaskCodec
}

// NewImportTasks creates a new ImportTasks use case.
func NewImportTasks(tasks TaskStore, codec domain.TaskCodec) *ImportTasks {
	return &ImportTasks{tasks: tasks, codec: codec}
}

// Execute validates every task and appends them in a single write.
func (uc *ImportTasks) Execute(_ context.Context, in ImportTasksInput) (*ImportTasksOutput, error) {
	parsed, err := uc.codec.Decode(in.Content)
	if err != nil {
		return nil, err
	}

	imported := make([]domain.Task, 0, len(parsed))
	for i, t := range parsed {
		nt, err := normalizeTask(t)
		if err != nil {
			return nil, fmt.Errorf("task %d: %w", i+1, err)
		}
		imported = append(imported, nt)
	}

	if in.DryRun || len(imported) == 0 {
		return &ImportTasksOutput{Tasks: imported}, nil
	}

	merged := append(uc.tasks.Load(), imported...)
	if err := uc.tasks.ReplaceAll(merged); err != nil {
		return nil, fmt.Errorf("import tasks: %w", err)
	}
	return &ImportTasksOutput{Tasks: imported}, nil
}
