package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/nearby/internal/domain"
	"github.com/runoshun/nearby/internal/recommend"
)

// RecommendTaskInput contains the parameters for a recommendation.
// When both Latitude and Longitude are set they replace the locator.
type RecommendTaskInput struct {
	Latitude  *float64
	Longitude *float64
}

// RecommendTaskOutput contains the recommendation, if any.
// Fields are ordered to minimize memory padding.
type RecommendTaskOutput struct {
	Task       *domain.Task      // Recommended task (nil = nothing nearby)
	Reading    domain.GeoReading // Location the recommendation was computed for
	DistanceKm float64           // Distance to the task's waypoint
	Index      int               // Index of the task in the collection (-1 if none)
}

// RecommendTask obtains one location fix and returns the resulting recommendation.
type RecommendTask struct {
	tasks   TaskStore
	engine  Recommender
	locator domain.Locator
	logger  domain.Logger
}

// NewRecommendTask creates a new RecommendTask use case.
func NewRecommendTask(tasks TaskStore, engine Recommender, locator domain.Locator, logger domain.Logger) *RecommendTask {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &RecommendTask{
		tasks:   tasks,
		engine:  engine,
		locator: locator,
		logger:  logger,
	}
}

// Execute locates the user once and feeds the reading to the engine.
// A location failure is returned as is and leaves the engine untouched.
func (uc *RecommendTask) Execute(ctx context.Context, in RecommendTaskInput) (*RecommendTaskOutput, error) {
	reading, err := uc.locate(ctx, in)
	if err != nil {
		uc.logger.Warn("recommend", fmt.Sprintf("locate failed: %v", err))
		return nil, err
	}

	uc.engine.SetReading(reading)

	out := &RecommendTaskOutput{Reading: reading, Index: -1}
	current := uc.engine.Current()
	if len(current) == 0 {
		return out, nil
	}

	task := current[0]
	out.Task = &task
	out.DistanceKm, _ = recommend.DistanceTo(task, reading.Coordinate)
	for i, t := range uc.tasks.Load() {
		if t == task {
			out.Index = i
			break
		}
	}
	return out, nil
}

func (uc *RecommendTask) locate(ctx context.Context, in RecommendTaskInput) (domain.GeoReading, error) {
	if in.Latitude != nil && in.Longitude != nil {
		r := domain.NewGeoReading(*in.Latitude, *in.Longitude)
		if !r.Valid() {
			return domain.GeoReading{}, fmt.Errorf("%w: position %s out of range", domain.ErrGeolocationUnavailable, r.Coordinate)
		}
		return r, nil
	}
	if uc.locator == nil {
		return domain.GeoReading{}, domain.ErrGeolocationUnavailable
	}
	return uc.locator.Locate(ctx)
}
