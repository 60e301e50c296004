package tui

import (
	"context"
	"sync"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/runoshun/nearby/internal/app"
	"github.com/runoshun/nearby/internal/domain"
	"github.com/runoshun/nearby/internal/usecase"
)

// watchBuffer bounds the number of store/engine updates queued for the program.
const watchBuffer = 64

// Model is the main bubbletea model for the TUI.
type Model struct {
	// Dependencies (pointers first for alignment)
	container *app.Container
	reading   *domain.GeoReading
	err       error
	locateErr error

	// State (slices - contain pointers)
	tasks       []domain.Task
	recommended []domain.Task

	// Components (structs with pointers)
	keys     KeyMap
	styles   Styles
	help     help.Model
	taskList list.Model

	// Form inputs (large structs)
	nameInput textinput.Model
	descInput textinput.Model
	dueInput  textinput.Model

	// Numeric state (smaller types last)
	mode          Mode
	formField     FormField
	formPriority  int // index into domain.AllPriorities
	formLocation  int // index into domain.AllLocations
	editIndex     int // -1 when adding
	confirmIndex  int
	width         int
	height        int
	locating      bool
	pendingSelect int // index to select after the next reload (-1 = keep)
}

// New creates a new TUI Model with the given container.
func New(c *app.Container) *Model {
	ni := textinput.New()
	ni.Placeholder = "Task name"
	ni.CharLimit = 200

	di := textinput.New()
	di.Placeholder = "Description (optional)"
	di.CharLimit = 1000

	ui := textinput.New()
	ui.Placeholder = "YYYY-MM-DD"
	ui.CharLimit = 25

	styles := DefaultStyles()
	delegate := newTaskDelegate(styles)
	taskList := list.New([]list.Item{}, delegate, 0, 0)
	taskList.SetShowTitle(false)
	taskList.SetShowStatusBar(false)
	taskList.SetShowHelp(false)
	taskList.SetShowPagination(false)
	taskList.SetFilteringEnabled(false)
	taskList.DisableQuitKeybindings()

	return &Model{
		container:     c,
		mode:          ModeNormal,
		keys:          DefaultKeyMap(),
		styles:        styles,
		help:          help.New(),
		taskList:      taskList,
		nameInput:     ni,
		descInput:     di,
		dueInput:      ui,
		editIndex:     -1,
		pendingSelect: -1,
	}
}

// Init initializes the model and returns the initial command.
// The location is requested once at startup.
func (m *Model) Init() tea.Cmd {
	m.locating = true
	return tea.Batch(
		m.loadTasks(),
		m.locate(),
	)
}

// Watch forwards store and engine publications to p until the returned
// stop function is called. It may be called before p.Run.
func (m *Model) Watch(p *tea.Program) (stop func()) {
	queue := make(chan tea.Msg, watchBuffer)
	done := make(chan struct{})
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case msg := <-queue:
				p.Send(msg)
			case <-done:
				return
			}
		}
	}()

	enqueue := func(msg tea.Msg) {
		select {
		case queue <- msg:
		case <-done:
		}
	}

	taskSub := m.container.Tasks.Subscribe(func(tasks []domain.Task) {
		enqueue(MsgTasksLoaded{Tasks: tasks})
	})
	recSub := m.container.Engine.Subscribe(func(tasks []domain.Task) {
		enqueue(MsgRecommendationChanged{Tasks: tasks})
	})

	var once sync.Once
	return func() {
		once.Do(func() {
			taskSub.Unsubscribe()
			recSub.Unsubscribe()
			close(done)
			wg.Wait()
		})
	}
}

// loadTasks returns a command that reads the current collection and recommendation.
func (m *Model) loadTasks() tea.Cmd {
	c := m.container
	return func() tea.Msg {
		return MsgTasksLoaded{Tasks: c.Tasks.Snapshot()}
	}
}

// loadRecommendation returns a command that reads the engine's current result.
func (m *Model) loadRecommendation() tea.Cmd {
	c := m.container
	return func() tea.Msg {
		return MsgRecommendationChanged{Tasks: c.Engine.Current()}
	}
}

// locate returns a command that obtains one location fix.
func (m *Model) locate() tea.Cmd {
	c := m.container
	return func() tea.Msg {
		out, err := c.RecommendTaskUseCase().Execute(context.Background(), usecase.RecommendTaskInput{})
		if err != nil {
			return MsgLocateFailed{Err: err}
		}
		return MsgLocated{Reading: out.Reading}
	}
}

// SelectedIndex returns the collection index of the selected task, or -1.
func (m *Model) SelectedIndex() int {
	if ti, ok := m.taskList.SelectedItem().(taskItem); ok {
		return ti.index
	}
	return -1
}

// SelectedTask returns the currently selected task, or nil if none.
func (m *Model) SelectedTask() *domain.Task {
	if ti, ok := m.taskList.SelectedItem().(taskItem); ok {
		t := ti.task
		return &t
	}
	return nil
}

// updateTaskList updates the task list items from tasks.
func (m *Model) updateTaskList() {
	items := make([]list.Item, 0, len(m.tasks))
	for i, task := range m.tasks {
		items = append(items, taskItem{
			task:        task,
			index:       i,
			recommended: m.isRecommended(task),
		})
	}
	m.taskList.SetItems(items)
	if m.pendingSelect >= 0 && m.pendingSelect < len(items) {
		m.taskList.Select(m.pendingSelect)
	}
	m.pendingSelect = -1
}

func (m *Model) isRecommended(t domain.Task) bool {
	return len(m.recommended) == 1 && m.recommended[0] == t
}

// updateLayoutSizes resizes the list to the remaining space.
func (m *Model) updateLayoutSizes() {
	width := max(m.width-6, 40)
	// header, banner, status and footer
	height := max(m.height-14, 4)
	m.taskList.SetSize(width, height)
}
