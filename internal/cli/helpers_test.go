package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/nearby/internal/app"
	"github.com/runoshun/nearby/internal/domain"
	"github.com/runoshun/nearby/internal/infra/config"
	"github.com/runoshun/nearby/internal/testutil"
)

// newTestContainer creates an app.Container with mock dependencies.
func newTestContainer(t *testing.T, tasks ...domain.Task) (*app.Container, *testutil.MockBlobStore) {
	t.Helper()
	blobs := testutil.NewMockBlobStore()
	dataDir := t.TempDir()
	globalDir := t.TempDir()

	container := app.NewWithDeps(
		app.Config{DataDir: dataDir},
		blobs,
		&testutil.MockLocator{Err: domain.ErrGeolocationUnavailable},
		&testutil.MockClock{NowTime: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)},
		nil,
		nil,
	)
	container.ConfigLoader = config.NewLoaderWithGlobalDir(dataDir, globalDir)
	container.ConfigManager = config.NewManagerWithGlobalDir(dataDir, globalDir)
	t.Cleanup(func() { _ = container.Close() })

	for _, task := range tasks {
		require.NoError(t, container.Tasks.Append(task))
	}
	return container, blobs
}

// execute runs cmd with args and returns stdout.
func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	if args == nil {
		args = []string{} // nil makes cobra fall back to os.Args
	}
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func sampleTask(name string, loc domain.Location) domain.Task {
	return domain.Task{Name: name, DueDate: "2024-05-01", Priority: domain.PriorityMedium, Location: loc}
}
