// Package tui provides the terminal user interface for nearby.
package tui

// Mode represents the current UI mode.
type Mode int

const (
	ModeNormal  Mode = iota // Default navigation mode
	ModeForm                // Add/edit task form
	ModeConfirm             // Delete confirmation dialog
	ModeHelp                // Help overlay mode
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeForm:
		return "form"
	case ModeConfirm:
		return "confirm"
	case ModeHelp:
		return "help"
	default:
		return "unknown"
	}
}

// IsInputMode returns true if the mode accepts text input.
func (m Mode) IsInputMode() bool {
	return m == ModeForm
}

// FormField identifies the focused field of the task form.
type FormField int

const (
	FieldName FormField = iota
	FieldDesc
	FieldDue
	FieldPriority
	FieldLocation
	fieldCount
)

// Next returns the next field, wrapping around.
func (f FormField) Next() FormField {
	return (f + 1) % fieldCount
}

// Prev returns the previous field, wrapping around.
func (f FormField) Prev() FormField {
	return (f + fieldCount - 1) % fieldCount
}

// IsText reports whether the field is edited with a text input.
func (f FormField) IsText() bool {
	return f == FieldName || f == FieldDesc || f == FieldDue
}
