package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/nearby/internal/domain"
	"github.com/runoshun/nearby/internal/usecase"
)

func TestListTasks_Execute(t *testing.T) {
	a := task("A", domain.LocationHome)
	b := task("B", domain.LocationSchool)
	c := task("C", domain.LocationHome)
	store, _ := newStore(t, a, b, c)
	uc := usecase.NewListTasks(store)

	out, err := uc.Execute(context.Background(), usecase.ListTasksInput{})
	require.NoError(t, err)
	assert.Len(t, out.Tasks, 3)

	out, err = uc.Execute(context.Background(), usecase.ListTasksInput{Location: domain.LocationHome})
	require.NoError(t, err)
	assert.Equal(t, []usecase.IndexedTask{{Task: a, Index: 0}, {Task: c, Index: 2}}, out.Tasks)
}

func TestListTasks_Execute_Empty(t *testing.T) {
	store, _ := newStore(t)

	out, err := usecase.NewListTasks(store).Execute(context.Background(), usecase.ListTasksInput{})

	require.NoError(t, err)
	assert.NotNil(t, out.Tasks)
	assert.Empty(t, out.Tasks)
}
