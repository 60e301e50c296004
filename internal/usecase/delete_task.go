package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/nearby/internal/domain"
)

// DeleteTaskInput contains the parameters for deleting a task.
type DeleteTaskInput struct {
	Index int // Index of the task to delete
}

// DeleteTaskOutput contains the result of deleting a task.
type DeleteTaskOutput struct {
	Task domain.Task // The removed task
}

// DeleteTask is the use case for removing a task.
// Tasks after the removed one shift down by one index.
type DeleteTask struct {
	tasks TaskStore
}

// NewDeleteTask creates a new DeleteTask use case.
func NewDeleteTask(tasks TaskStore) *DeleteTask {
	return &DeleteTask{tasks: tasks}
}

// Execute deletes the task at the given index.
func (uc *DeleteTask) Execute(_ context.Context, in DeleteTaskInput) (*DeleteTaskOutput, error) {
	current := uc.tasks.Load()
	var removed domain.Task
	if in.Index >= 0 && in.Index < len(current) {
		removed = current[in.Index]
	}

	if err := uc.tasks.RemoveAt(in.Index); err != nil {
		return nil, fmt.Errorf("delete task: %w", err)
	}

	return &DeleteTaskOutput{Task: removed}, nil
}
