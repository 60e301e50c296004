package usecase

import (
	"context"

	"github.com/runoshun/nearby/internal/domain"
)

// ExportTasksInput contains the parameters for exporting tasks.
type ExportTasksInput struct {
	Format string // json, yaml, csv or pdf
}

// ExportTasksOutput contains the encoded collection.
type ExportTasksOutput struct {
	Data  []byte
	Count int
}

// ExportTasks is the use case for exporting the collection.
type ExportTasks struct {
	tasks TaskStore
	codec domain.TaskCodec
	clock domain.Clock
}

// NewExportTasks creates a new ExportTasks use case.
func NewExportTasks(tasks TaskStore, codec domain.TaskCodec, clock domain.Clock) *ExportTasks {
	return &ExportTasks{tasks: tasks, codec: codec, clock: clock}
}

// Execute encodes the current collection.
func (uc *ExportTasks) Execute(_ context.Context, in ExportTasksInput) (*ExportTasksOutput, error) {
	tasks := uc.tasks.Load()
	data, err := uc.codec.Encode(tasks, in.Format, uc.clock.Now())
	if err != nil {
		return nil, err
	}
	return &ExportTasksOutput{Data: data, Count: len(tasks)}, nil
}
