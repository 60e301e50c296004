package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/runoshun/nearby/internal/domain"
	"github.com/runoshun/nearby/internal/usecase"
)

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.updateLayoutSizes()
		return m, nil

	case MsgTasksLoaded:
		m.tasks = msg.Tasks
		m.updateTaskList()
		return m, nil

	case MsgRecommendationChanged:
		m.recommended = msg.Tasks
		m.updateTaskList()
		return m, nil

	case MsgLocated:
		r := msg.Reading
		m.reading = &r
		m.locating = false
		m.locateErr = nil
		return m, m.loadRecommendation()

	case MsgLocateFailed:
		m.locating = false
		m.locateErr = msg.Err
		return m, nil

	case MsgTaskSaved:
		m.closeForm()
		m.pendingSelect = msg.Index
		return m, m.loadTasks()

	case MsgTaskDeleted:
		m.mode = ModeNormal
		m.pendingSelect = max(0, msg.Index-1)
		return m, m.loadTasks()

	case MsgTaskMoved:
		m.pendingSelect = msg.To
		return m, m.loadTasks()

	case MsgError:
		m.err = msg.Err
		if m.mode == ModeConfirm {
			m.mode = ModeNormal
		}
		return m, nil
	}

	return m, nil
}

// handleKeyMsg routes key presses by mode.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Clear error on any key press
	if m.err != nil {
		m.err = nil
	}

	switch m.mode {
	case ModeNormal:
		return m.handleNormalMode(msg)
	case ModeForm:
		return m.handleFormMode(msg)
	case ModeConfirm:
		return m.handleConfirmMode(msg)
	case ModeHelp:
		return m.handleHelpMode(msg)
	}

	return m, nil
}

// handleNormalMode handles keys in normal mode.
func (m *Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.MoveUp):
		return m, m.moveSelected(-1)

	case key.Matches(msg, m.keys.MoveDown):
		return m, m.moveSelected(1)

	case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
		var cmd tea.Cmd
		m.taskList, cmd = m.taskList.Update(msg)
		return m, cmd

	case key.Matches(msg, m.keys.New):
		m.openForm(-1, domain.Task{})
		return m, nil

	case key.Matches(msg, m.keys.Edit):
		task := m.SelectedTask()
		if task == nil {
			return m, nil
		}
		m.openForm(m.SelectedIndex(), *task)
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		if m.SelectedTask() == nil {
			return m, nil
		}
		m.mode = ModeConfirm
		m.confirmIndex = m.SelectedIndex()
		return m, nil

	case key.Matches(msg, m.keys.Locate):
		if m.locating {
			return m, nil
		}
		m.locating = true
		return m, m.locate()

	case key.Matches(msg, m.keys.Help):
		m.mode = ModeHelp
		return m, nil
	}

	return m, nil
}

// moveSelected moves the selected task by delta positions.
func (m *Model) moveSelected(delta int) tea.Cmd {
	from := m.SelectedIndex()
	if from < 0 {
		return nil
	}
	to := from + delta
	if to < 0 || to >= len(m.tasks) {
		return nil
	}
	c := m.container
	return func() tea.Msg {
		out, err := c.MoveTaskUseCase().Execute(context.Background(), usecase.MoveTaskInput{From: from, To: to})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskMoved{To: out.To}
	}
}

// handleConfirmMode handles keys in the delete confirmation dialog.
func (m *Model) handleConfirmMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		index := m.confirmIndex
		c := m.container
		return m, func() tea.Msg {
			if _, err := c.DeleteTaskUseCase().Execute(context.Background(), usecase.DeleteTaskInput{Index: index}); err != nil {
				return MsgError{Err: err}
			}
			return MsgTaskDeleted{Index: index}
		}
	case key.Matches(msg, m.keys.Escape), msg.String() == "n", msg.String() == "N":
		m.mode = ModeNormal
	}
	return m, nil
}

// handleHelpMode handles keys in help mode.
func (m *Model) handleHelpMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) && msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	m.mode = ModeNormal
	return m, nil
}

// openForm shows the task form. index -1 adds a new task.
func (m *Model) openForm(index int, task domain.Task) {
	m.mode = ModeForm
	m.editIndex = index
	m.formField = FieldName

	m.nameInput.SetValue(task.Name)
	m.descInput.SetValue(task.Description)
	m.dueInput.SetValue(task.DueDate)

	priority := task.Priority
	if priority == "" {
		priority = domain.DefaultPriority
	}
	location := task.Location
	if location == "" {
		location = domain.DefaultLocation
	}
	m.formPriority = indexOf(domain.AllPriorities(), priority)
	m.formLocation = indexOf(domain.AllLocations(), location)

	m.focusFormField()
}

// closeForm hides the form and clears its inputs.
func (m *Model) closeForm() {
	m.mode = ModeNormal
	m.editIndex = -1
	m.nameInput.Reset()
	m.descInput.Reset()
	m.dueInput.Reset()
	m.nameInput.Blur()
	m.descInput.Blur()
	m.dueInput.Blur()
}

// handleFormMode handles keys in the add/edit form.
func (m *Model) handleFormMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.closeForm()
		return m, nil

	case msg.Type == tea.KeyTab, msg.Type == tea.KeyDown:
		m.formField = m.formField.Next()
		m.focusFormField()
		return m, nil

	case msg.Type == tea.KeyShiftTab, msg.Type == tea.KeyUp:
		m.formField = m.formField.Prev()
		m.focusFormField()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		return m, m.submitForm()
	}

	// Option fields cycle with left/right
	if !m.formField.IsText() {
		delta := 0
		switch msg.Type {
		case tea.KeyLeft:
			delta = -1
		case tea.KeyRight, tea.KeySpace:
			delta = 1
		default:
			return m, nil
		}
		if m.formField == FieldPriority {
			m.formPriority = cycle(m.formPriority, delta, len(domain.AllPriorities()))
		} else {
			m.formLocation = cycle(m.formLocation, delta, len(domain.AllLocations()))
		}
		return m, nil
	}

	// Forward to current input field
	var cmd tea.Cmd
	switch m.formField {
	case FieldName:
		m.nameInput, cmd = m.nameInput.Update(msg)
	case FieldDesc:
		m.descInput, cmd = m.descInput.Update(msg)
	case FieldDue:
		m.dueInput, cmd = m.dueInput.Update(msg)
	case FieldPriority, FieldLocation, fieldCount:
	}
	return m, cmd
}

// focusFormField focuses the current field in the form.
func (m *Model) focusFormField() {
	m.nameInput.Blur()
	m.descInput.Blur()
	m.dueInput.Blur()

	switch m.formField {
	case FieldName:
		m.nameInput.Focus()
	case FieldDesc:
		m.descInput.Focus()
	case FieldDue:
		m.dueInput.Focus()
	case FieldPriority, FieldLocation, fieldCount:
	}
}

// formTask returns the task described by the form.
func (m *Model) formTask() domain.Task {
	return domain.Task{
		Name:        strings.TrimSpace(m.nameInput.Value()),
		Description: m.descInput.Value(),
		DueDate:     strings.TrimSpace(m.dueInput.Value()),
		Priority:    domain.AllPriorities()[m.formPriority],
		Location:    domain.AllLocations()[m.formLocation],
	}
}

// submitForm saves the form through the add or edit use case.
func (m *Model) submitForm() tea.Cmd {
	task := m.formTask()
	if task.Name == "" {
		m.err = domain.ErrEmptyName
		return nil
	}

	c := m.container
	index := m.editIndex
	if index < 0 {
		return func() tea.Msg {
			out, err := c.AddTaskUseCase().Execute(context.Background(), usecase.AddTaskInput{
				Name:        task.Name,
				Description: task.Description,
				DueDate:     task.DueDate,
				Priority:    task.Priority,
				Location:    task.Location,
			})
			if err != nil {
				return MsgError{Err: err}
			}
			return MsgTaskSaved{Index: out.Index}
		}
	}

	return func() tea.Msg {
		_, err := c.EditTaskUseCase().Execute(context.Background(), usecase.EditTaskInput{
			Index:       index,
			Name:        &task.Name,
			Description: &task.Description,
			DueDate:     &task.DueDate,
			Priority:    &task.Priority,
			Location:    &task.Location,
		})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskSaved{Index: index}
	}
}

func indexOf[T comparable](values []T, v T) int {
	for i, x := range values {
		if x == v {
			return i
		}
	}
	return 0
}

func cycle(i, delta, n int) int {
	return ((i+delta)%n + n) % n
}
