package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/runoshun/nearby/internal/domain"
)

type taskItem struct {
	task        domain.Task
	index       int
	recommended bool
}

func (t taskItem) FilterValue() string {
	return t.task.Name
}

// escapeNewlines replaces newline characters with spaces for single-line display.
func escapeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return s
}

// truncate shortens s to width cells.
func truncate(s string, width int) string {
	if width < 4 {
		width = 4
	}
	if runewidth.StringWidth(s) > width {
		return runewidth.Truncate(s, width, "...")
	}
	return s
}

type taskDelegate struct {
	styles Styles
}

func newTaskDelegate(styles Styles) taskDelegate {
	return taskDelegate{styles: styles}
}

func (d taskDelegate) Height() int {
	return 2
}

func (d taskDelegate) Spacing() int {
	return 1
}

func (d taskDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d taskDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ti, ok := item.(taskItem)
	if !ok {
		return
	}
	task := ti.task
	selected := index == m.Index()

	indicatorChar := " "
	if selected {
		indicatorChar = ">"
	}
	star := " "
	if ti.recommended {
		star = "★"
	}

	idxStr := fmt.Sprintf("%3d", ti.index)
	priority := fmt.Sprintf("%-6s", task.Priority)
	due := task.DueDate
	if due == "" {
		due = "no date"
	}

	// indicator, star, index, icon, priority and spacing
	const prefixWidth = 20
	listWidth := m.Width()
	name := truncate(task.Name, listWidth-prefixWidth-2)

	nameStyle := d.styles.TaskTitle
	if selected {
		nameStyle = d.styles.TaskTitleSelected
	}

	line := "  " + d.styles.SelectionIndicator.Render(indicatorChar) + " " +
		d.styles.Recommended.Render(star) + " " +
		d.styles.TaskIndex.Render(idxStr) + "  " +
		LocationIcon(task.Location) + " " +
		d.styles.PriorityStyle(task.Priority).Render(priority) + " " +
		nameStyle.Render(name)
	_, _ = fmt.Fprintln(w, line)

	meta := fmt.Sprintf("%s @ %s", due, task.Location)
	if task.Description != "" {
		meta += " · " + escapeNewlines(task.Description)
	}
	meta = truncate(meta, listWidth-prefixWidth-2)
	_, _ = fmt.Fprint(w, strings.Repeat(" ", prefixWidth)+d.styles.TaskMeta.Render(meta))
}
