package usecase

import (
	"context"

	"github.com/runoshun/nearby/internal/domain"
)

// ListTasksInput contains the parameters for listing tasks.
type ListTasksInput struct {
	Location domain.Location // Only tasks at this location (empty = all)
}

// IndexedTask is a task with its position in the collection.
type IndexedTask struct {
	Task  domain.Task
	Index int
}

// ListTasksOutput contains the result of listing tasks.
type ListTasksOutput struct {
	Tasks []IndexedTask // Tasks in collection order
}

// ListTasks is the use case for listing tasks.
type ListTasks struct {
	tasks TaskStore
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(tasks TaskStore) *ListTasks {
	return &ListTasks{tasks: tasks}
}

// Execute lists tasks matching the given input criteria.
func (uc *ListTasks) Execute(_ context.Context, in ListTasksInput) (*ListTasksOutput, error) {
	all := uc.tasks.Load()
	out := &ListTasksOutput{Tasks: make([]IndexedTask, 0, len(all))}
	for i, t := range all {
		if in.Location != "" && t.Location != in.Location {
			continue
		}
		out.Tasks = append(out.Tasks, IndexedTask{Task: t, Index: i})
	}
	return out, nil
}
