// Package formmodal provides a configuration-driven form modal used for
// the add and edit dialogs.
//
// Keyboard navigation:
//
//	Tab, Ctrl+N       next field/button
//	Shift+Tab, Ctrl+P previous field/button
//	Enter             advance (text), select (select), confirm (buttons)
//	Esc               cancel
//	Up/Down           move within select fields, between text fields
//	Left/Right, h/l   switch between buttons
//
// On submit the form produces SubmitMsg with all field values keyed by
// FieldConfig.Key, or the OnSubmit factory's message when one is set.
// For simple confirmation dialogs use the modal package instead.
package formmodal

import (
	tea "github.com/charmbracelet/bubbletea"

	"showroom/internal/ui/modal"
)

// FieldType identifies the kind of form field.
type FieldType int

const (
	// FieldTypeText is a single-line text input.
	FieldTypeText FieldType = iota
	// FieldTypeSelect is a single-select list (radio style).
	FieldTypeSelect
)

// SelectOption is an entry in a select field. Value is what ends up in
// SubmitMsg.Values.
type SelectOption struct {
	Label    string
	Value    string
	Selected bool
}

// FieldConfig defines a single form field.
type FieldConfig struct {
	Key   string
	Type  FieldType
	Label string
	Hint  string

	// Text field options.
	Placeholder  string
	MaxLength    int
	InitialValue string

	// Select field options.
	Options []SelectOption
}

// FormConfig defines the complete form.
type FormConfig struct {
	Title         string
	Fields        []FieldConfig
	SubmitLabel   string // default "Save"
	SubmitVariant modal.ButtonVariant
	CancelLabel   string // default "Cancel"
	MinWidth      int    // default 50

	// Validate receives all field values and blocks submission by
	// returning an error, which is shown above the buttons.
	Validate func(values map[string]any) error

	// OnSubmit, when set, produces a custom message instead of SubmitMsg.
	OnSubmit func(values map[string]any) tea.Msg

	// OnCancel, when set, produces a custom message instead of CancelMsg.
	OnCancel func() tea.Msg
}

// SubmitMsg is sent when the form is submitted successfully. Text fields
// map to string values, select fields to the selected option's Value.
type SubmitMsg struct {
	Values map[string]any
}

// CancelMsg is sent when the form is cancelled.
type CancelMsg struct{}
