package usecase_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/runoshun/nearby/internal/domain"
	"github.com/runoshun/nearby/internal/taskstore"
	"github.com/runoshun/nearby/internal/testutil"
)

// newStore returns a Store seeded with tasks and its backing blob store.
func newStore(t *testing.T, tasks ...domain.Task) (*taskstore.Store, *testutil.MockBlobStore) {
	t.Helper()
	blobs := testutil.NewMockBlobStore()
	if len(tasks) > 0 {
		data, err := json.Marshal(tasks)
		require.NoError(t, err)
		blobs.Data[domain.TasksKey] = string(data)
	}
	return taskstore.New(blobs, nil), blobs
}

// persisted decodes the collection stored in blobs.
func persisted(t *testing.T, blobs *testutil.MockBlobStore) []domain.Task {
	t.Helper()
	var tasks []domain.Task
	require.NoError(t, json.Unmarshal([]byte(blobs.Data[domain.TasksKey]), &tasks))
	return tasks
}

func task(name string, loc domain.Location) domain.Task {
	return domain.Task{Name: name, DueDate: "2024-05-01", Priority: domain.PriorityMedium, Location: loc}
}

func ptr[T any](v T) *T { return &v }
