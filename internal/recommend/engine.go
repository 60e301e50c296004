package recommend

import (
	"fmt"
	"sync"

	"github.com/runoshun/nearby/internal/domain"
	"github.com/runoshun/nearby/internal/observe"
)

const logCategory = "recommend"

// TaskSource publishes task collections. *taskstore.Store satisfies it.
type TaskSource interface {
	Subscribe(fn func([]domain.Task)) *observe.Subscription
}

// Engine keeps the latest task collection and location reading and
// republishes the recommendation whenever either changes.
type Engine struct {
	logger  domain.Logger
	reading *domain.GeoReading
	sub     *observe.Subscription
	subject *observe.Subject[[]domain.Task]
	tasks   []domain.Task
	mu      sync.Mutex // guards reading, sub and tasks
	// recomputeMu serializes recompute from snapshot to Publish, so results
	// are published in the order their inputs were read.
	recomputeMu sync.Mutex
}

// NewEngine creates an Engine with no tasks and no reading.
// A nil logger disables logging.
func NewEngine(logger domain.Logger) *Engine {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &Engine{
		logger:  logger,
		tasks:   []domain.Task{},
		subject: observe.NewSubject([]domain.Task{}),
	}
}

// Attach subscribes the engine to src. The current collection is delivered
// immediately, so the engine is up to date when Attach returns.
// Attaching again replaces the previous subscription.
func (e *Engine) Attach(src TaskSource) {
	e.Close()
	sub := src.Subscribe(e.setTasks)

	e.mu.Lock()
	e.sub = sub
	e.mu.Unlock()
}

// Close detaches the engine from its task source.
func (e *Engine) Close() {
	e.mu.Lock()
	sub := e.sub
	e.sub = nil
	e.mu.Unlock()

	if sub != nil {
		sub.Unsubscribe()
	}
}

// SetReading replaces the current location reading and recomputes.
func (e *Engine) SetReading(r domain.GeoReading) {
	e.mu.Lock()
	e.reading = &r
	e.mu.Unlock()

	e.logger.Debug(logCategory, "location updated to "+r.String())
	e.recompute()
}

// Reading returns a copy of the current reading, or nil if none was set.
func (e *Engine) Reading() *domain.GeoReading {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.reading == nil {
		return nil
	}
	r := *e.reading
	return &r
}

// Current returns the latest recommendation (zero or one task).
func (e *Engine) Current() []domain.Task {
	return domain.CloneTasks(e.subject.Value())
}

// Subscribe registers fn for recommendation updates. fn receives the current
// recommendation immediately, then each recomputed one.
func (e *Engine) Subscribe(fn func([]domain.Task)) *observe.Subscription {
	return e.subject.Subscribe(func(tasks []domain.Task) {
		fn(domain.CloneTasks(tasks))
	})
}

func (e *Engine) setTasks(tasks []domain.Task) {
	e.mu.Lock()
	e.tasks = tasks
	e.mu.Unlock()

	e.recompute()
}

// recompute derives the recommendation from a consistent (tasks, reading)
// pair and publishes it.
func (e *Engine) recompute() {
	e.recomputeMu.Lock()
	defer e.recomputeMu.Unlock()

	e.mu.Lock()
	tasks := e.tasks
	var reading *domain.GeoReading
	if e.reading != nil {
		r := *e.reading
		reading = &r
	}
	result := Recommend(tasks, reading)
	e.mu.Unlock()

	if len(result) == 1 {
		e.logger.Debug(logCategory, fmt.Sprintf("recommending %q", result[0].Name))
	}
	e.subject.Publish(result)
}
