package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/nearby/internal/domain"
	"github.com/runoshun/nearby/internal/usecase"
)

func TestMigrateStore_Execute(t *testing.T) {
	a := task("A", domain.LocationHome)
	b := task("B", domain.LocationSchool)
	source, _ := newStore(t, a, b)
	dest, destBlobs := newStore(t)

	out, err := usecase.NewMigrateStore(source, dest).Execute(context.Background(), usecase.MigrateStoreInput{})

	require.NoError(t, err)
	assert.Equal(t, 2, out.Total)
	assert.Equal(t, 2, out.Migrated)
	assert.False(t, out.Skipped)
	assert.Equal(t, []domain.Task{a, b}, persisted(t, destBlobs))
	assert.Equal(t, 1, destBlobs.Sets, "migration should be a single write")
}

func TestMigrateStore_Execute_Identical(t *testing.T) {
	a := task("A", domain.LocationHome)
	source, _ := newStore(t, a)
	dest, destBlobs := newStore(t, a)

	out, err := usecase.NewMigrateStore(source, dest).Execute(context.Background(), usecase.MigrateStoreInput{})

	require.NoError(t, err)
	assert.True(t, out.Skipped)
	assert.Zero(t, out.Migrated)
	assert.Zero(t, destBlobs.Sets)
}

func TestMigrateStore_Execute_Conflict(t *testing.T) {
	a := task("A", domain.LocationHome)
	other := task("Other", domain.LocationSchool)
	source, _ := newStore(t, a)
	dest, destBlobs := newStore(t, other)
	uc := usecase.NewMigrateStore(source, dest)

	_, err := uc.Execute(context.Background(), usecase.MigrateStoreInput{})
	assert.ErrorIs(t, err, domain.ErrMigrationConflict)
	assert.Equal(t, []domain.Task{other}, persisted(t, destBlobs))

	out, err := uc.Execute(context.Background(), usecase.MigrateStoreInput{Force: true})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Migrated)
	assert.Equal(t, []domain.Task{a}, persisted(t, destBlobs))
}

func TestMigrateStore_Execute_WriteError(t *testing.T) {
	source, _ := newStore(t, task("A", domain.LocationHome))
	dest, destBlobs := newStore(t)
	destBlobs.SetErr = errors.New("disk full")

	_, err := usecase.NewMigrateStore(source, dest).Execute(context.Background(), usecase.MigrateStoreInput{})

	assert.ErrorContains(t, err, "disk full")
}
