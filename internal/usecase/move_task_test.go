package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/nearby/internal/domain"
	"github.com/runoshun/nearby/internal/usecase"
)

func TestMoveTask_Execute(t *testing.T) {
	a := task("A", domain.LocationHome)
	b := task("B", domain.LocationSchool)
	c := task("C", domain.LocationSupermarket)

	tests := []struct {
		name   string
		want   []domain.Task
		in     usecase.MoveTaskInput
		wantTo int
	}{
		{name: "down", in: usecase.MoveTaskInput{From: 0, To: 2}, want: []domain.Task{b, c, a}, wantTo: 2},
		{name: "up", in: usecase.MoveTaskInput{From: 2, To: 0}, want: []domain.Task{c, a, b}, wantTo: 0},
		{name: "clamped", in: usecase.MoveTaskInput{From: 1, To: 10}, want: []domain.Task{a, c, b}, wantTo: 2},
		{name: "same", in: usecase.MoveTaskInput{From: 1, To: 1}, want: []domain.Task{a, b, c}, wantTo: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, blobs := newStore(t, a, b, c)

			out, err := usecase.NewMoveTask(store).Execute(context.Background(), tt.in)

			require.NoError(t, err)
			assert.Equal(t, tt.want, out.Tasks)
			assert.Equal(t, tt.wantTo, out.To)
			assert.Equal(t, tt.want, persisted(t, blobs))
			assert.ElementsMatch(t, []domain.Task{a, b, c}, store.Snapshot())
		})
	}
}

func TestMoveTask_Execute_Empty(t *testing.T) {
	store, _ := newStore(t)

	out, err := usecase.NewMoveTask(store).Execute(context.Background(), usecase.MoveTaskInput{From: 0, To: 1})

	require.NoError(t, err)
	assert.Empty(t, out.Tasks)
}
