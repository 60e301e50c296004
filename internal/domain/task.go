// Package domain contains core business entities and interfaces.
package domain

// Priority is the urgency assigned to a task.
type Priority string

// Priority values.
const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Rank returns the tie-break rank of the priority (low=0, medium=1, high=2).
// ok is false for any value outside the enumeration.
func (p Priority) Rank() (rank int, ok bool) {
	switch p {
	case PriorityLow:
		return 0, true
	case PriorityMedium:
		return 1, true
	case PriorityHigh:
		return 2, true
	default:
		return 0, false
	}
}

// IsValid reports whether p is one of the enumerated priorities.
func (p Priority) IsValid() bool {
	_, ok := p.Rank()
	return ok
}

// Location is the place a task is tied to.
type Location string

// Location values. Each one has an entry in Waypoints.
const (
	LocationHome        Location = "home"
	LocationSchool      Location = "school"
	LocationSupermarket Location = "supermarket"
)

// AllLocations returns the enumerated locations in display order.
func AllLocations() []Location {
	return []Location{LocationHome, LocationSchool, LocationSupermarket}
}

// IsValid reports whether l is one of the enumerated locations.
func (l Location) IsValid() bool {
	_, ok := WaypointFor(l)
	return ok
}

// AllPriorities returns the enumerated priorities from lowest to highest.
func AllPriorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh}
}

// Default form values for a new task.
const (
	DefaultPriority = PriorityLow
	DefaultLocation = LocationHome
)

// Task is a single to-do item.
// It has no identity field: a task is addressed by its index in the
// ordered collection, which is also display and storage order.
type Task struct {
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description,omitempty"`
	DueDate     string   `json:"dueDate" yaml:"dueDate"`
	Priority    Priority `json:"priority" yaml:"priority"`
	Location    Location `json:"location" yaml:"location"`
}

// CloneTasks returns a copy of tasks that never aliases the input.
// A nil or empty input yields an empty, non-nil slice.
func CloneTasks(tasks []Task) []Task {
	out := make([]Task, len(tasks))
	copy(out, tasks)
	return out
}

// MoveTask moves the element at from to position to, shifting the elements
// in between. Both indices are clamped to [0, len-1], matching drag-and-drop
// list semantics. The input slice is not modified.
func MoveTask(tasks []Task, from, to int) []Task {
	out := CloneTasks(tasks)
	if len(out) == 0 {
		return out
	}
	from = clamp(from, len(out)-1)
	to = clamp(to, len(out)-1)
	if from == to {
		return out
	}

	moved := out[from]
	if from < to {
		copy(out[from:to], out[from+1:to+1])
	} else {
		copy(out[to+1:from+1], out[to:from])
	}
	out[to] = moved
	return out
}

func clamp(v, maxIdx int) int {
	return max(0, min(v, maxIdx))
}
