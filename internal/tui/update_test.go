package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/nearby/internal/app"
	"github.com/runoshun/nearby/internal/domain"
	"github.com/runoshun/nearby/internal/testutil"
)

var schoolReading = func() domain.GeoReading {
	c, _ := domain.WaypointFor(domain.LocationSchool)
	return domain.GeoReading{Coordinate: c}
}()

func newTestModel(t *testing.T, locator domain.Locator, tasks ...domain.Task) (*Model, *app.Container) {
	t.Helper()
	c := app.NewWithDeps(app.Config{}, testutil.NewMockBlobStore(), locator, &testutil.MockClock{NowTime: time.Now()}, nil, nil)
	t.Cleanup(func() { _ = c.Close() })
	for _, task := range tasks {
		require.NoError(t, c.Tasks.Append(task))
	}

	m := New(c)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	run(m, m.loadTasks())
	return m, c
}

// run executes cmd and feeds the resulting messages back into m.
func run(m *Model, cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			run(m, c)
		}
	case nil:
	default:
		_, next := m.Update(msg)
		run(m, next)
	}
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m *Model, keys ...string) {
	for _, k := range keys {
		_, cmd := m.Update(keyMsg(k))
		run(m, cmd)
	}
}

func typeText(m *Model, s string) {
	for _, r := range s {
		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		run(m, cmd)
	}
}

func TestInit_LocatesAndRecommends(t *testing.T) {
	locator := &testutil.MockLocator{Reading: schoolReading}
	essay := domain.Task{Name: "Essay", Priority: domain.PriorityHigh, Location: domain.LocationSchool}
	m, _ := newTestModel(t, locator, essay)

	run(m, m.Init())

	assert.Equal(t, 1, locator.Calls)
	require.NotNil(t, m.reading)
	assert.False(t, m.locating)
	assert.Equal(t, []domain.Task{essay}, m.recommended)
	assert.Contains(t, m.View(), "Essay")
}

func TestInit_LocateFailureShownOnce(t *testing.T) {
	locator := &testutil.MockLocator{Err: domain.ErrGeolocationDenied}
	m, _ := newTestModel(t, locator)

	run(m, m.Init())

	assert.Equal(t, 1, locator.Calls)
	assert.ErrorIs(t, m.locateErr, domain.ErrGeolocationDenied)
	assert.Contains(t, m.View(), "Error getting location: location access denied")
}

func TestAddTask_ViaForm(t *testing.T) {
	m, c := newTestModel(t, &testutil.MockLocator{})

	press(m, "n")
	require.Equal(t, ModeForm, m.mode)

	typeText(m, "Buy milk")
	// Skip description and due date, pick supermarket
	press(m, "tab", "tab", "tab", "tab", "right", "right", "enter")

	assert.Equal(t, ModeNormal, m.mode)
	want := domain.Task{Name: "Buy milk", Priority: domain.PriorityLow, Location: domain.LocationSupermarket}
	assert.Equal(t, []domain.Task{want}, c.Tasks.Snapshot())
	assert.Equal(t, []domain.Task{want}, m.tasks)
}

func TestAddTask_EmptyNameRejected(t *testing.T) {
	m, c := newTestModel(t, &testutil.MockLocator{})

	press(m, "n", "enter")

	assert.Equal(t, ModeForm, m.mode)
	assert.ErrorIs(t, m.err, domain.ErrEmptyName)
	assert.Empty(t, c.Tasks.Snapshot())

	press(m, "esc")
	assert.Equal(t, ModeNormal, m.mode)
}

func TestEditTask_ViaForm(t *testing.T) {
	task := domain.Task{Name: "Laundry", Priority: domain.PriorityMedium, Location: domain.LocationHome}
	m, c := newTestModel(t, &testutil.MockLocator{}, task)

	press(m, "e")
	require.Equal(t, ModeForm, m.mode)
	assert.Equal(t, "Laundry", m.nameInput.Value())
	assert.Equal(t, 1, m.formPriority)

	typeText(m, "!")
	press(m, "enter")

	assert.Equal(t, "Laundry!", c.Tasks.Snapshot()[0].Name)
	assert.Equal(t, domain.PriorityMedium, c.Tasks.Snapshot()[0].Priority)
}

func TestDeleteTask_Confirm(t *testing.T) {
	a := domain.Task{Name: "A", Priority: domain.PriorityLow, Location: domain.LocationHome}
	b := domain.Task{Name: "B", Priority: domain.PriorityLow, Location: domain.LocationHome}
	m, c := newTestModel(t, &testutil.MockLocator{}, a, b)

	press(m, "d")
	require.Equal(t, ModeConfirm, m.mode)
	press(m, "n")
	assert.Len(t, c.Tasks.Snapshot(), 2)

	press(m, "d", "y")
	assert.Equal(t, ModeNormal, m.mode)
	assert.Equal(t, []domain.Task{b}, c.Tasks.Snapshot())
}

func TestMoveTask_Keys(t *testing.T) {
	a := domain.Task{Name: "A", Priority: domain.PriorityLow, Location: domain.LocationHome}
	b := domain.Task{Name: "B", Priority: domain.PriorityLow, Location: domain.LocationHome}
	m, c := newTestModel(t, &testutil.MockLocator{}, a, b)

	press(m, "J")
	assert.Equal(t, []domain.Task{b, a}, c.Tasks.Snapshot())
	assert.Equal(t, 1, m.SelectedIndex())

	// Already last: nothing happens
	press(m, "J")
	assert.Equal(t, []domain.Task{b, a}, c.Tasks.Snapshot())

	press(m, "K")
	assert.Equal(t, []domain.Task{a, b}, c.Tasks.Snapshot())
	assert.Equal(t, 0, m.SelectedIndex())
}

func TestHelpMode(t *testing.T) {
	m, _ := newTestModel(t, &testutil.MockLocator{})

	press(m, "?")
	assert.Equal(t, ModeHelp, m.mode)
	assert.Contains(t, m.View(), "KEYBOARD SHORTCUTS")

	press(m, "x")
	assert.Equal(t, ModeNormal, m.mode)
}

func TestFormField_Cycle(t *testing.T) {
	assert.Equal(t, FieldDesc, FieldName.Next())
	assert.Equal(t, FieldName, FieldLocation.Next())
	assert.Equal(t, FieldLocation, FieldName.Prev())
	assert.True(t, FieldDue.IsText())
	assert.False(t, FieldPriority.IsText())
}
