package recommend

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/nearby/internal/domain"
	"github.com/runoshun/nearby/internal/taskstore"
	"github.com/runoshun/nearby/internal/testutil"
)

func TestEngine_NoReadingMeansEmpty(t *testing.T) {
	store := taskstore.New(testutil.NewMockBlobStore(), nil)
	require.NoError(t, store.Append(at(domain.LocationSchool, "a", "2024-01-01", domain.PriorityHigh)))

	engine := NewEngine(nil)
	engine.Attach(store)
	defer engine.Close()

	assert.Empty(t, engine.Current())
	assert.Nil(t, engine.Reading())
}

func TestEngine_RecomputesOnReadingAndPublish(t *testing.T) {
	store := taskstore.New(testutil.NewMockBlobStore(), nil)
	engine := NewEngine(&testutil.MockLogger{})
	engine.Attach(store)
	defer engine.Close()

	var results [][]domain.Task
	engine.Subscribe(func(tasks []domain.Task) { results = append(results, tasks) })
	require.Len(t, results, 1)
	assert.Empty(t, results[0])

	engine.SetReading(*southOf(t, domain.LocationSchool, 2))
	require.Len(t, results, 2)
	assert.Empty(t, results[1], "no tasks yet")

	require.NoError(t, store.Append(at(domain.LocationSchool, "study", "2024-01-01", domain.PriorityLow)))
	require.Len(t, results, 3)
	require.Len(t, results[2], 1)
	assert.Equal(t, "study", results[2][0].Name)

	require.NoError(t, store.Append(at(domain.LocationSchool, "exam", "2024-01-01", domain.PriorityHigh)))
	assert.Equal(t, "exam", engine.Current()[0].Name)

	require.NoError(t, store.RemoveAt(1))
	assert.Equal(t, "study", engine.Current()[0].Name)
}

func TestEngine_ReadingUpdateCanClearRecommendation(t *testing.T) {
	store := taskstore.New(testutil.NewMockBlobStore(), nil)
	require.NoError(t, store.Append(at(domain.LocationSchool, "study", "2024-01-01", domain.PriorityLow)))

	engine := NewEngine(nil)
	engine.Attach(store)
	defer engine.Close()

	engine.SetReading(*southOf(t, domain.LocationSchool, 1))
	assert.Len(t, engine.Current(), 1)

	engine.SetReading(*southOf(t, domain.LocationSchool, 100))
	assert.Empty(t, engine.Current())
}

func TestEngine_CloseStopsUpdates(t *testing.T) {
	store := taskstore.New(testutil.NewMockBlobStore(), nil)
	engine := NewEngine(nil)
	engine.Attach(store)
	engine.SetReading(*southOf(t, domain.LocationHome, 1))

	engine.Close()
	engine.Close() // idempotent
	require.NoError(t, store.Append(at(domain.LocationHome, "late", "2024-01-01", domain.PriorityLow)))

	assert.Empty(t, engine.Current())
}

func TestEngine_ReadingIsCopy(t *testing.T) {
	engine := NewEngine(nil)
	engine.SetReading(domain.NewGeoReading(1, 2))

	r := engine.Reading()
	require.NotNil(t, r)
	r.Latitude = 50

	assert.Equal(t, 1.0, engine.Reading().Latitude)
}

// gatedLogger blocks the first "recommending" debug line, which is logged
// after a result is computed and before it is published.
type gatedLogger struct {
	testutil.MockLogger
	entered chan struct{}
	release chan struct{}
	once    sync.Once
}

func newGatedLogger() *gatedLogger {
	return &gatedLogger{entered: make(chan struct{}), release: make(chan struct{})}
}

func (g *gatedLogger) Debug(category, msg string) {
	if strings.HasPrefix(msg, "recommending") {
		g.once.Do(func() {
			close(g.entered)
			<-g.release
		})
	}
	g.MockLogger.Debug(category, msg)
}

func TestEngine_StaleResultNeverPublishedLast(t *testing.T) {
	store := taskstore.New(testutil.NewMockBlobStore(), nil)
	require.NoError(t, store.Append(at(domain.LocationSchool, "study", "2024-01-01", domain.PriorityLow)))

	logger := newGatedLogger()
	engine := NewEngine(logger)
	engine.Attach(store)
	defer engine.Close()

	// The location fix arrives off the main goroutine and is held between
	// computing [study] and publishing it.
	located := make(chan struct{})
	go func() {
		defer close(located)
		engine.SetReading(*southOf(t, domain.LocationSchool, 1))
	}()
	<-logger.entered

	removed := make(chan error, 1)
	go func() { removed <- store.RemoveAt(0) }()
	require.Eventually(t, func() bool { return len(store.Snapshot()) == 0 },
		time.Second, time.Millisecond, "store should publish the removal")

	close(logger.release)
	<-located
	require.NoError(t, <-removed)

	assert.Empty(t, engine.Current(), "engine recommends a task the store no longer has")
	assert.Equal(t, Recommend(store.Snapshot(), engine.Reading()), engine.Current())
}

func TestEngine_ConcurrentReadingsAndMutations(t *testing.T) {
	store := taskstore.New(testutil.NewMockBlobStore(), nil)
	engine := NewEngine(nil)
	engine.Attach(store)
	defer engine.Close()

	var last []domain.Task
	var mu sync.Mutex
	engine.Subscribe(func(tasks []domain.Task) {
		mu.Lock()
		last = tasks
		mu.Unlock()
	})

	locations := domain.AllLocations()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		i := i
		wg.Add(2)
		go func() {
			defer wg.Done()
			engine.SetReading(*southOf(t, locations[i%len(locations)], float64(i%5)))
		}()
		go func() {
			defer wg.Done()
			task := at(locations[i%len(locations)], "t", "2024-01-01", domain.PriorityMedium)
			if i%3 == 2 {
				_ = store.RemoveAt(0)
				return
			}
			_ = store.Append(task)
		}()
	}
	wg.Wait()

	want := Recommend(store.Snapshot(), engine.Reading())
	assert.Equal(t, want, engine.Current())
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, want, last)
}
