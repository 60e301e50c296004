// Package usecase contains application use cases.
package usecase

import (
	"strings"

	"github.com/runoshun/nearby/internal/domain"
)

// TaskStore is the task collection as seen by use cases.
// It is satisfied by *taskstore.Store.
type TaskStore interface {
	Load() []domain.Task
	Append(task domain.Task) error
	ReplaceAt(index int, task domain.Task) error
	RemoveAt(index int) error
	ReplaceAll(tasks []domain.Task) error
}

// Recommender holds the latest location fix and the derived recommendation.
// It is satisfied by *recommend.Engine.
type Recommender interface {
	SetReading(r domain.GeoReading)
	Current() []domain.Task
}

// normalizeTask applies form defaults and validates a task entered by the user.
func normalizeTask(t domain.Task) (domain.Task, error) {
	t.Name = strings.TrimSpace(t.Name)
	if t.Name == "" {
		return t, domain.ErrEmptyName
	}
	if t.Priority == "" {
		t.Priority = domain.DefaultPriority
	}
	if t.Location == "" {
		t.Location = domain.DefaultLocation
	}
	if !t.Priority.IsValid() {
		return t, domain.ErrInvalidPriority
	}
	if !t.Location.IsValid() {
		return t, domain.ErrInvalidLocation
	}
	return t, nil
}
