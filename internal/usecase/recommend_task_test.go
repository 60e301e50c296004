package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/nearby/internal/domain"
	"github.com/runoshun/nearby/internal/recommend"
	"github.com/runoshun/nearby/internal/testutil"
	"github.com/runoshun/nearby/internal/usecase"
)

var school, _ = domain.WaypointFor(domain.LocationSchool)

func newRecommendTask(t *testing.T, locator domain.Locator, tasks ...domain.Task) (*usecase.RecommendTask, *recommend.Engine) {
	t.Helper()
	store, _ := newStore(t, tasks...)
	engine := recommend.NewEngine(nil)
	engine.Attach(store)
	t.Cleanup(engine.Close)
	return usecase.NewRecommendTask(store, engine, locator, nil), engine
}

func TestRecommendTask_Execute_Locator(t *testing.T) {
	home := task("Laundry", domain.LocationHome)
	essay := task("Essay", domain.LocationSchool)
	locator := &testutil.MockLocator{Reading: domain.GeoReading{Coordinate: school}}
	uc, engine := newRecommendTask(t, locator, home, essay)

	out, err := uc.Execute(context.Background(), usecase.RecommendTaskInput{})

	require.NoError(t, err)
	require.NotNil(t, out.Task)
	assert.Equal(t, essay, *out.Task)
	assert.Equal(t, 1, out.Index)
	assert.Zero(t, out.DistanceKm)
	assert.Equal(t, 1, locator.Calls)
	assert.Equal(t, []domain.Task{essay}, engine.Current())
}

func TestRecommendTask_Execute_Override(t *testing.T) {
	locator := &testutil.MockLocator{Err: domain.ErrGeolocationDenied}
	uc, _ := newRecommendTask(t, locator, task("Essay", domain.LocationSchool))

	out, err := uc.Execute(context.Background(), usecase.RecommendTaskInput{
		Latitude:  ptr(school.Latitude),
		Longitude: ptr(school.Longitude),
	})

	require.NoError(t, err)
	require.NotNil(t, out.Task)
	assert.Zero(t, locator.Calls)
}

func TestRecommendTask_Execute_NothingNearby(t *testing.T) {
	locator := &testutil.MockLocator{Reading: domain.NewGeoReading(0, 0)}
	uc, _ := newRecommendTask(t, locator, task("Essay", domain.LocationSchool))

	out, err := uc.Execute(context.Background(), usecase.RecommendTaskInput{})

	require.NoError(t, err)
	assert.Nil(t, out.Task)
	assert.Equal(t, -1, out.Index)
}

func TestRecommendTask_Execute_LocateError(t *testing.T) {
	locator := &testutil.MockLocator{Err: domain.ErrGeolocationUnavailable}
	uc, engine := newRecommendTask(t, locator, task("Essay", domain.LocationSchool))

	_, err := uc.Execute(context.Background(), usecase.RecommendTaskInput{})

	assert.ErrorIs(t, err, domain.ErrGeolocationUnavailable)
	assert.Nil(t, engine.Reading())
	assert.Empty(t, engine.Current())
}

func TestRecommendTask_Execute_InvalidOverride(t *testing.T) {
	uc, _ := newRecommendTask(t, nil)

	_, err := uc.Execute(context.Background(), usecase.RecommendTaskInput{
		Latitude:  ptr(100.0),
		Longitude: ptr(0.0),
	})

	assert.ErrorIs(t, err, domain.ErrGeolocationUnavailable)
}
