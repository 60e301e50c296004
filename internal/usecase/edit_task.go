package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/nearby/internal/domain"
)

// EditTaskInput contains the parameters for editing a task.
// All fields except Index are optional. Only non-nil fields will be updated.
type EditTaskInput struct {
	Name        *string          // New name (nil = no change)
	Description *string          // New description (nil = no change)
	DueDate     *string          // New due date (nil = no change)
	Priority    *domain.Priority // New priority (nil = no change)
	Location    *domain.Location // New location (nil = no change)
	Index       int              // Index of the task to edit (required)
}

// EditTaskOutput contains the result of editing a task.
type EditTaskOutput struct {
	Task domain.Task // The updated task
}

// EditTask is the use case for editing an existing task.
type EditTask struct {
	tasks TaskStore
}

// NewEditTask creates a new EditTask use case.
func NewEditTask(tasks TaskStore) *EditTask {
	return &EditTask{
		tasks: tasks,
	}
}

// Execute edits the task at the given index.
func (uc *EditTask) Execute(_ context.Context, in EditTaskInput) (*EditTaskOutput, error) {
	// Validate that at least one field is being updated
	if in.Name == nil && in.Description == nil && in.DueDate == nil && in.Priority == nil && in.Location == nil {
		return nil, domain.ErrNoFieldsToUpdate
	}

	current := uc.tasks.Load()
	if in.Index < 0 || in.Index >= len(current) {
		return nil, fmt.Errorf("%w: %d (have %d tasks)", domain.ErrIndexOutOfRange, in.Index, len(current))
	}

	// Update fields
	task := current[in.Index]
	if in.Name != nil {
		task.Name = *in.Name
	}
	if in.Description != nil {
		task.Description = *in.Description
	}
	if in.DueDate != nil {
		task.DueDate = *in.DueDate
	}
	if in.Priority != nil {
		task.Priority = *in.Priority
	}
	if in.Location != nil {
		task.Location = *in.Location
	}

	task, err := normalizeTask(task)
	if err != nil {
		return nil, err
	}

	if err := uc.tasks.ReplaceAt(in.Index, task); err != nil {
		return nil, fmt.Errorf("save task: %w", err)
	}

	return &EditTaskOutput{Task: task}, nil
}
