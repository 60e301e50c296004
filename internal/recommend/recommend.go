// Package recommend derives the single task worth doing next from the task
// collection and the user's position.
package recommend

import (
	"math"
	"slices"
	"time"

	"github.com/runoshun/nearby/internal/domain"
)

// ProximityThresholdKm is the distance below which the nearest tasks become
// eligible for recommendation.
const ProximityThresholdKm = 30.0

// Recommend returns zero or one task: the nearest task (by waypoint
// distance) if it lies strictly within ProximityThresholdKm, with ties
// broken by earliest due date and then highest priority. Remaining ties keep
// collection order.
//
// Tasks whose location has no waypoint are ignored. Distances are compared
// with exact float equality, so two tasks only tie on distance when they
// share a waypoint.
func Recommend(tasks []domain.Task, reading *domain.GeoReading) []domain.Task {
	if reading == nil {
		return []domain.Task{}
	}

	nearest, shortest := nearestTasks(tasks, reading.Coordinate)
	if len(nearest) == 0 || shortest >= ProximityThresholdKm {
		return []domain.Task{}
	}

	slices.SortStableFunc(nearest, compareTasks)
	return nearest[:1]
}

// DistanceTo returns the distance from c to the task's waypoint.
// ok is false if the task's location has no waypoint.
func DistanceTo(task domain.Task, c domain.Coordinate) (float64, bool) {
	wp, ok := domain.WaypointFor(task.Location)
	if !ok {
		return 0, false
	}
	return CalculateDistance(c.Latitude, c.Longitude, wp.Latitude, wp.Longitude), true
}

// nearestTasks returns every task sharing the minimum distance, in
// collection order, and that distance.
func nearestTasks(tasks []domain.Task, from domain.Coordinate) ([]domain.Task, float64) {
	var nearest []domain.Task
	shortest := math.MaxFloat64

	for _, task := range tasks {
		dist, ok := DistanceTo(task, from)
		if !ok {
			continue
		}
		switch {
		case dist < shortest:
			shortest = dist
			nearest = []domain.Task{task}
		case dist == shortest:
			nearest = append(nearest, task)
		}
	}
	return nearest, shortest
}

// compareTasks orders by due date ascending, then priority descending.
// An unparsable date or unknown priority compares as equal on that key.
func compareTasks(a, b domain.Task) int {
	if c := compareDueDates(a.DueDate, b.DueDate); c != 0 {
		return c
	}
	ra, okA := a.Priority.Rank()
	rb, okB := b.Priority.Rank()
	if !okA || !okB {
		return 0
	}
	return rb - ra
}

func compareDueDates(a, b string) int {
	ta, okA := ParseDueDate(a)
	tb, okB := ParseDueDate(b)
	if !okA || !okB {
		return 0
	}
	return ta.Compare(tb)
}

// dueDateLayouts pairs each accepted layout with the zone used when the
// value carries none. Date-only values are UTC midnight; date-times without
// an offset are local time.
var dueDateLayouts = []struct {
	layout string
	local  bool
}{
	{"2006-01-02", false},
	{time.RFC3339, false},
	{"2006-01-02T15:04", true},
	{"2006-01-02T15:04:05", true},
}

// ParseDueDate parses a due date string.
func ParseDueDate(s string) (time.Time, bool) {
	for _, l := range dueDateLayouts {
		loc := time.UTC
		if l.local {
			loc = time.Local
		}
		if t, err := time.ParseInLocation(l.layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
