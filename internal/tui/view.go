package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/runoshun/nearby/internal/domain"
	"github.com/runoshun/nearby/internal/recommend"
)

// View renders the TUI.
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var content string
	switch m.mode {
	case ModeHelp:
		content = m.viewHelp()
	case ModeNormal, ModeForm, ModeConfirm:
		content = m.viewMain()
	}

	return m.styles.App.Render(content)
}

// viewMain renders the recommendation banner and the task list.
func (m *Model) viewMain() string {
	var b strings.Builder

	// Header
	b.WriteString(m.viewHeader())
	b.WriteString("\n")

	// Recommendation
	b.WriteString(m.viewRecommendation())
	b.WriteString("\n")

	// Error message (if any)
	if m.err != nil {
		b.WriteString(m.styles.ErrorMsg.Render("Error: "+m.err.Error()) + "\n\n")
	}

	// Task list
	if len(m.tasks) == 0 {
		b.WriteString(m.viewEmptyState())
	} else {
		b.WriteString(m.taskList.View())
	}

	// Dialogs/overlays
	switch m.mode {
	case ModeNormal, ModeHelp:
	case ModeForm:
		b.WriteString("\n\n")
		b.WriteString(m.viewForm())
	case ModeConfirm:
		b.WriteString("\n\n")
		b.WriteString(m.viewConfirmDialog())
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(m.viewFooter())

	return b.String()
}

// viewHeader renders the header with the task count and location.
func (m *Model) viewHeader() string {
	title := m.styles.HeaderText.Render("Tasks")

	var where string
	switch {
	case m.locating:
		where = "locating..."
	case m.reading != nil:
		where = "at " + m.reading.String()
	default:
		where = "location unknown"
	}
	rightText := lipgloss.NewStyle().Foreground(Colors.Muted).Render(
		fmt.Sprintf("%d tasks · %s", len(m.tasks), where))

	// Calculate spacing to right-align
	headerWidth := max(m.width-6, 40)
	spacing := max(headerWidth-lipgloss.Width(title)-lipgloss.Width(rightText), 1)

	return m.styles.Header.Render(title + strings.Repeat(" ", spacing) + rightText)
}

// viewRecommendation renders the single recommended task, or why there is none.
func (m *Model) viewRecommendation() string {
	label := m.styles.BannerLabel.Render("Do it here: ")

	var body string
	switch {
	case m.locateErr != nil:
		body = m.styles.ErrorMsg.Render("Error getting location: " + m.locateErr.Error())
	case m.reading == nil:
		body = m.styles.BannerMuted.Render("waiting for location")
	case len(m.recommended) == 0:
		body = m.styles.BannerMuted.Render(fmt.Sprintf("nothing within %.0f km", recommend.ProximityThresholdKm))
	default:
		t := m.recommended[0]
		body = m.styles.BannerTask.Render(t.Name)
		detail := fmt.Sprintf("  %s · %s", t.Location, t.Priority)
		if t.DueDate != "" {
			detail += " · due " + t.DueDate
		}
		if km, ok := recommend.DistanceTo(t, m.reading.Coordinate); ok {
			detail += fmt.Sprintf(" · %.1f km", km)
		}
		body += m.styles.BannerMuted.Render(detail)
	}

	return m.styles.Banner.Render(label + body)
}

// viewEmptyState renders the message shown when there are no tasks.
func (m *Model) viewEmptyState() string {
	return m.styles.EmptyState.Render("No tasks yet. Press n to add one.")
}

// viewForm renders the add/edit form.
func (m *Model) viewForm() string {
	title := "New Task"
	if m.editIndex >= 0 {
		title = fmt.Sprintf("Edit Task #%d", m.editIndex)
	}

	var b strings.Builder
	b.WriteString(m.styles.DialogTitle.Render(title))
	b.WriteString("\n")

	b.WriteString(m.formLabel(FieldName, "Name") + m.nameInput.View() + "\n")
	b.WriteString(m.formLabel(FieldDesc, "Description") + m.descInput.View() + "\n")
	b.WriteString(m.formLabel(FieldDue, "Due") + m.dueInput.View() + "\n")
	b.WriteString(m.formLabel(FieldPriority, "Priority") + viewOptions(m, domain.AllPriorities(), m.formPriority) + "\n")
	b.WriteString(m.formLabel(FieldLocation, "Location") + viewOptions(m, domain.AllLocations(), m.formLocation) + "\n\n")

	b.WriteString(m.styles.Footer.Render("tab next · ←/→ choose · enter save · esc cancel"))

	return m.styles.Dialog.Render(b.String())
}

func (m *Model) formLabel(f FormField, label string) string {
	if m.formField == f {
		return m.styles.InputFocus.Render(label)
	}
	return m.styles.InputPrompt.Render(label)
}

// viewOptions renders an enumeration with the chosen value highlighted.
func viewOptions[T ~string](m *Model, values []T, chosen int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		if i == chosen {
			parts[i] = m.styles.OptionOn.Render("[" + string(v) + "]")
		} else {
			parts[i] = m.styles.OptionOff.Render(" " + string(v) + " ")
		}
	}
	return strings.Join(parts, " ")
}

// viewConfirmDialog renders the delete confirmation.
func (m *Model) viewConfirmDialog() string {
	name := ""
	if m.confirmIndex >= 0 && m.confirmIndex < len(m.tasks) {
		name = m.tasks[m.confirmIndex].Name
	}
	content := m.styles.DialogTitle.Render("Delete task?") + "\n" +
		fmt.Sprintf("#%d %s", m.confirmIndex, truncate(name, 50)) + "\n\n" +
		m.styles.Footer.Render("y delete · n/esc cancel")
	return m.styles.Dialog.Render(content)
}

// viewFooter renders the key hints.
func (m *Model) viewFooter() string {
	switch m.mode {
	case ModeNormal:
		return m.styles.Footer.Render(
			m.styles.FooterKey.Render("j/k") + " nav  " +
				m.styles.FooterKey.Render("J/K") + " move  " +
				m.styles.FooterKey.Render("n") + " new  " +
				m.styles.FooterKey.Render("e") + " edit  " +
				m.styles.FooterKey.Render("d") + " delete  " +
				m.styles.FooterKey.Render("r") + " locate  " +
				m.styles.FooterKey.Render("?") + " help  " +
				m.styles.FooterKey.Render("q") + " quit",
		)
	case ModeForm, ModeConfirm, ModeHelp:
		// Hints are shown in the dialogs/views themselves
		return ""
	}
	return ""
}

// viewHelp renders the help view.
func (m *Model) viewHelp() string {
	title := m.styles.HeaderText.Render("KEYBOARD SHORTCUTS")
	m.help.ShowAll = true
	return title + "\n\n" + m.help.View(m.keys) + "\n\n" +
		m.styles.Footer.Render("press any key to return")
}
