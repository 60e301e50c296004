// Package observe provides a replay-latest publish/subscribe subject.
//
// A Subject holds the most recently published value. Subscribing delivers
// that value immediately and then every later value in publish order until
// the subscription is cancelled. Delivery is synchronous: Publish returns
// only after every observer has been called. Publish and the replay in
// Subscribe are serialized, so an observer never sees an older value after
// a newer one.
package observe

import (
	"sync"

	"github.com/google/uuid"
)

type observer[T any] struct {
	fn func(T)
	id uuid.UUID
}

// Subject is a replay-latest broadcaster of values of type T.
type Subject[T any] struct {
	latest    T
	observers []observer[T]
	deliverMu sync.Mutex // held across register-and-replay and each delivery round
	mu        sync.Mutex // guards latest and observers
}

// NewSubject creates a Subject seeded with initial.
func NewSubject[T any](initial T) *Subject[T] {
	return &Subject[T]{latest: initial}
}

// Subscribe registers fn and calls it with the current value before
// returning. fn must not block; it runs on the publisher's goroutine.
// fn may unsubscribe but must not publish to or subscribe to s.
func (s *Subject[T]) Subscribe(fn func(T)) *Subscription {
	id := uuid.New()

	s.deliverMu.Lock()
	defer s.deliverMu.Unlock()

	s.mu.Lock()
	s.observers = append(s.observers, observer[T]{id: id, fn: fn})
	current := s.latest
	s.mu.Unlock()

	fn(current)

	return &Subscription{
		id:     id,
		cancel: func() { s.remove(id) },
	}
}

// Publish stores v as the current value and delivers it to every observer
// in subscription order.
func (s *Subject[T]) Publish(v T) {
	s.deliverMu.Lock()
	defer s.deliverMu.Unlock()

	s.mu.Lock()
	s.latest = v
	// Observers may unsubscribe from inside their callback.
	targets := make([]observer[T], len(s.observers))
	copy(targets, s.observers)
	s.mu.Unlock()

	for _, o := range targets {
		if s.has(o.id) {
			o.fn(v)
		}
	}
}

// Value returns the current value.
func (s *Subject[T]) Value() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest
}

func (s *Subject[T]) has(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.observers {
		if o.id == id {
			return true
		}
	}
	return false
}

func (s *Subject[T]) remove(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, o := range s.observers {
		if o.id == id {
			s.observers = append(s.observers[:i], s.observers[i+1:]...)
			return
		}
	}
}

// Subscription is the handle returned by Subject.Subscribe.
type Subscription struct {
	cancel func()
	once   sync.Once
	id     uuid.UUID
}

// ID returns the subscription's unique identifier.
func (s *Subscription) ID() string {
	return s.id.String()
}

// Unsubscribe stops further delivery. It is safe to call more than once.
func (s *Subscription) Unsubscribe() {
	s.once.Do(s.cancel)
}
