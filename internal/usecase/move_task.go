package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/nearby/internal/domain"
)

// MoveTaskInput contains the parameters for reordering a task.
// Both indices are clamped to the collection bounds.
type MoveTaskInput struct {
	From int // Current index
	To   int // Target index
}

// MoveTaskOutput contains the result of reordering.
type MoveTaskOutput struct {
	Tasks []domain.Task // The reordered collection
	To    int           // Final index of the moved task
}

// MoveTask is the use case for drag-and-drop style reordering.
type MoveTask struct {
	tasks TaskStore
}

// NewMoveTask creates a new MoveTask use case.
func NewMoveTask(tasks TaskStore) *MoveTask {
	return &MoveTask{tasks: tasks}
}

// Execute moves a task and persists the whole permutation.
func (uc *MoveTask) Execute(_ context.Context, in MoveTaskInput) (*MoveTaskOutput, error) {
	current := uc.tasks.Load()
	moved := domain.MoveTask(current, in.From, in.To)

	if err := uc.tasks.ReplaceAll(moved); err != nil {
		return nil, fmt.Errorf("move task: %w", err)
	}

	to := 0
	if len(moved) > 0 {
		to = max(0, min(in.To, len(moved)-1))
	}
	return &MoveTaskOutput{Tasks: moved, To: to}, nil
}
