package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/nearby/internal/domain"
	"github.com/runoshun/nearby/internal/testutil"
	"github.com/runoshun/nearby/internal/usecase"
)

func TestResolveDataDir(t *testing.T) {
	t.Run("flag wins", func(t *testing.T) {
		t.Setenv(EnvDataDir, "/env/dir")
		got, err := ResolveDataDir("/flag/dir")
		require.NoError(t, err)
		assert.Equal(t, "/flag/dir", got)
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv(EnvDataDir, "/env/dir")
		got, err := ResolveDataDir("")
		require.NoError(t, err)
		assert.Equal(t, "/env/dir", got)
	})

	t.Run("XDG data home", func(t *testing.T) {
		t.Setenv(EnvDataDir, "")
		t.Setenv("XDG_DATA_HOME", "/xdg")
		got, err := ResolveDataDir("")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join("/xdg", domain.AppDirName), got)
	})

	t.Run("home fallback", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv(EnvDataDir, "")
		t.Setenv("XDG_DATA_HOME", "")
		t.Setenv("HOME", home)
		got, err := ResolveDataDir("")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".local", "share", domain.AppDirName), got)
	})
}

// newDataDir returns a data directory holding the given config.
func newDataDir(t *testing.T, configContent string) string {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	dir := t.TempDir()
	if configContent != "" {
		require.NoError(t, os.WriteFile(domain.DataConfigPath(dir), []byte(configContent), 0o600))
	}
	return dir
}

func TestNew_Backends(t *testing.T) {
	tests := []struct {
		name   string
		config string
		file   func(dataDir string) string
	}{
		{name: "default json", config: "", file: domain.JSONStorePath},
		{name: "sqlite", config: "[store]\nbackend = \"sqlite\"\n", file: domain.SQLiteStorePath},
		{name: "git", config: "[store]\nbackend = \"git\"\n", file: func(dir string) string { return filepath.Join(dir, "HEAD") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := newDataDir(t, tt.config)

			c, err := New(dir)
			require.NoError(t, err)

			_, err = c.AddTaskUseCase().Execute(context.Background(), usecase.AddTaskInput{Name: "Buy milk"})
			require.NoError(t, err)
			require.NoError(t, c.Close())

			// A fresh container sees the persisted task.
			c2, err := New(dir)
			require.NoError(t, err)
			defer func() { _ = c2.Close() }()

			out, err := c2.ListTasksUseCase().Execute(context.Background(), usecase.ListTasksInput{})
			require.NoError(t, err)
			require.Len(t, out.Tasks, 1)
			assert.Equal(t, "Buy milk", out.Tasks[0].Task.Name)

			assert.FileExists(t, tt.file(dir))
		})
	}
}

func TestNew_UnknownBackend(t *testing.T) {
	dir := newDataDir(t, "[store]\nbackend = \"redis\"\n")

	_, err := New(dir)

	assert.ErrorIs(t, err, domain.ErrUnknownBackend)
}

func TestNew_ConfiguredLocation(t *testing.T) {
	dir := newDataDir(t, "[location]\nlatitude = 42.349449\nlongitude = -71.101303\n")
	t.Setenv("NEARBY_LAT", "")
	t.Setenv("NEARBY_LON", "")

	c, err := New(dir)
	require.NoError(t, err)
	defer func() { _ = c.Close() }()

	reading, err := c.Locator.Locate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42.349449, reading.Latitude)
}

func TestNewWithDeps_EngineFollowsStore(t *testing.T) {
	c := NewWithDeps(Config{}, testutil.NewMockBlobStore(), &testutil.MockLocator{}, &testutil.MockClock{}, nil, nil)
	defer func() { _ = c.Close() }()

	school, _ := domain.WaypointFor(domain.LocationSchool)
	c.Engine.SetReading(domain.NewGeoReading(school.Latitude, school.Longitude))
	require.NoError(t, c.Tasks.Append(domain.Task{Name: "Essay", Priority: domain.PriorityLow, Location: domain.LocationSchool}))

	current := c.Engine.Current()
	require.Len(t, current, 1)
	assert.Equal(t, "Essay", current[0].Name)
}
