// Package taskstore owns the ordered task collection.
//
// Store is the single writer of the collection: it persists the whole list
// to a domain.BlobStore under domain.TasksKey after every mutation and then
// publishes the new list to every subscriber. Tasks are addressed by index,
// and an index is only meaningful against the most recently published
// snapshot.
package taskstore

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/runoshun/nearby/internal/domain"
	"github.com/runoshun/nearby/internal/observe"
)

const logCategory = "store"

// Store is the durable, observable task collection.
type Store struct {
	blobs   domain.BlobStore
	logger  domain.Logger
	subject *observe.Subject[[]domain.Task]
	mu      sync.Mutex // serializes read-modify-write cycles
}

// New creates a Store backed by blobs and seeds it with the persisted
// collection. A nil logger disables logging.
func New(blobs domain.BlobStore, logger domain.Logger) *Store {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	s := &Store{
		blobs:  blobs,
		logger: logger,
	}
	s.subject = observe.NewSubject(s.Load())
	return s
}

// Load reads the persisted collection. A missing, unreadable or malformed
// payload yields an empty collection; the failure is logged, never returned.
func (s *Store) Load() []domain.Task {
	raw, ok, err := s.blobs.Get(domain.TasksKey)
	if err != nil {
		s.logger.Warn(logCategory, fmt.Sprintf("read %q failed, starting empty: %v", domain.TasksKey, err))
		return []domain.Task{}
	}
	if !ok || raw == "" {
		return []domain.Task{}
	}

	var tasks []domain.Task
	if err := json.Unmarshal([]byte(raw), &tasks); err != nil {
		s.logger.Warn(logCategory, fmt.Sprintf("parse %q failed, starting empty: %v", domain.TasksKey, err))
		return []domain.Task{}
	}
	if tasks == nil {
		// "null" payload
		return []domain.Task{}
	}
	return tasks
}

// Append adds task to the end of the collection.
func (s *Store) Append(task domain.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks := append(s.Load(), task)
	if err := s.commit(tasks); err != nil {
		return err
	}
	s.logger.Info(logCategory, fmt.Sprintf("appended %q at %d", task.Name, len(tasks)-1))
	return nil
}

// ReplaceAt overwrites the task at index.
// It returns ErrIndexOutOfRange if index is outside the current collection.
func (s *Store) ReplaceAt(index int, task domain.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks := s.Load()
	if err := checkIndex(index, len(tasks)); err != nil {
		return err
	}
	tasks[index] = task
	if err := s.commit(tasks); err != nil {
		return err
	}
	s.logger.Info(logCategory, fmt.Sprintf("replaced %d with %q", index, task.Name))
	return nil
}

// RemoveAt deletes the task at index. Every later task moves down by one,
// so indices held by callers beyond index now refer to a different task.
// It returns ErrIndexOutOfRange if index is outside the current collection.
func (s *Store) RemoveAt(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks := s.Load()
	if err := checkIndex(index, len(tasks)); err != nil {
		return err
	}
	removed := tasks[index]
	tasks = append(tasks[:index], tasks[index+1:]...)
	if err := s.commit(tasks); err != nil {
		return err
	}
	s.logger.Info(logCategory, fmt.Sprintf("removed %q from %d", removed.Name, index))
	return nil
}

// ReplaceAll persists and publishes tasks as the whole collection.
// It is used after a reorder.
func (s *Store) ReplaceAll(tasks []domain.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.commit(domain.CloneTasks(tasks)); err != nil {
		return err
	}
	s.logger.Info(logCategory, fmt.Sprintf("replaced collection (%d tasks)", len(tasks)))
	return nil
}

// Subscribe registers fn. fn receives the current collection before
// Subscribe returns and then every published collection in order.
// Each delivery is a private copy. fn runs while the Store is committing
// and must not call back into the Store.
func (s *Store) Subscribe(fn func([]domain.Task)) *observe.Subscription {
	sub := s.subject.Subscribe(func(tasks []domain.Task) {
		fn(domain.CloneTasks(tasks))
	})
	s.logger.Debug(logCategory, "subscriber "+sub.ID()+" attached")
	return sub
}

// Snapshot returns a copy of the most recently published collection.
func (s *Store) Snapshot() []domain.Task {
	return domain.CloneTasks(s.subject.Value())
}

// commit persists tasks and, only on success, publishes them.
// Caller must hold s.mu.
func (s *Store) commit(tasks []domain.Task) error {
	data, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("marshal tasks: %w", err)
	}
	if err := s.blobs.Set(domain.TasksKey, string(data)); err != nil {
		s.logger.Error(logCategory, fmt.Sprintf("persist failed: %v", err))
		return fmt.Errorf("persist tasks: %w", err)
	}
	s.subject.Publish(tasks)
	return nil
}

func checkIndex(index, length int) error {
	if index < 0 || index >= length {
		return fmt.Errorf("%w: %d (have %d tasks)", domain.ErrIndexOutOfRange, index, length)
	}
	return nil
}
