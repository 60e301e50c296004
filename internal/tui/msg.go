package tui

import "github.com/runoshun/nearby/internal/domain"

// Msg is the sealed interface for all TUI messages.
// All message types must implement the sealed() method.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgTasksLoaded is sent when the task collection changes.
type MsgTasksLoaded struct {
	Tasks []domain.Task
}

func (MsgTasksLoaded) sealed() {}

// MsgRecommendationChanged is sent when the engine publishes a recommendation.
type MsgRecommendationChanged struct {
	Tasks []domain.Task // Zero or one task
}

func (MsgRecommendationChanged) sealed() {}

// MsgLocated is sent when a location fix succeeds.
type MsgLocated struct {
	Reading domain.GeoReading
}

func (MsgLocated) sealed() {}

// MsgLocateFailed is sent when a location fix fails. It is not retried.
type MsgLocateFailed struct {
	Err error
}

func (MsgLocateFailed) sealed() {}

// MsgTaskSaved is sent when a task is added or edited.
type MsgTaskSaved struct {
	Index int
}

func (MsgTaskSaved) sealed() {}

// MsgTaskDeleted is sent when a task is deleted.
type MsgTaskDeleted struct {
	Index int
}

func (MsgTaskDeleted) sealed() {}

// MsgTaskMoved is sent when a task is reordered.
type MsgTaskMoved struct {
	To int
}

func (MsgTaskMoved) sealed() {}

// MsgError is sent when an operation fails.
type MsgError struct {
	Err error
}

func (MsgError) sealed() {}
