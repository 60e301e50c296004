package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/nearby/internal/domain"
)

// AddTaskInput contains the parameters for adding a task.
// Empty Priority and Location fall back to low and home.
type AddTaskInput struct {
	Name        string          // Task name (required)
	Description string          // Free text (optional)
	DueDate     string          // Due date, e.g. 2024-05-01 (optional)
	Priority    domain.Priority // low, medium or high
	Location    domain.Location // home, school or supermarket
}

// AddTaskOutput contains the result of adding a task.
type AddTaskOutput struct {
	Task  domain.Task // The stored task
	Index int         // Position of the task in the collection
}

// AddTask is the use case for appending a task to the collection.
type AddTask struct {
	tasks TaskStore
}

// NewAddTask creates a new AddTask use case.
func NewAddTask(tasks TaskStore) *AddTask {
	return &AddTask{tasks: tasks}
}

// Execute validates the input and appends the task.
func (uc *AddTask) Execute(_ context.Context, in AddTaskInput) (*AddTaskOutput, error) {
	task, err := normalizeTask(domain.Task{
		Name:        in.Name,
		Description: in.Description,
		DueDate:     in.DueDate,
		Priority:    in.Priority,
		Location:    in.Location,
	})
	if err != nil {
		return nil, err
	}

	if err := uc.tasks.Append(task); err != nil {
		return nil, fmt.Errorf("add task: %w", err)
	}

	return &AddTaskOutput{
		Task:  task,
		Index: len(uc.tasks.Load()) - 1,
	}, nil
}
