package formmodal

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func carFormConfig() FormConfig {
	return FormConfig{
		Title: "Add Car",
		Fields: []FieldConfig{
			{Key: "make", Type: FieldTypeText, Label: "Make", Hint: "required"},
			{Key: "model", Type: FieldTypeText, Label: "Model", Hint: "required"},
			{Key: "condition", Type: FieldTypeSelect, Label: "Condition", Options: []SelectOption{
				{Label: "New", Value: "new", Selected: true},
				{Label: "Used", Value: "used"},
			}},
		},
		SubmitLabel: "Add",
		Validate: func(values map[string]any) error {
			if values["make"].(string) == "" {
				return errors.New("make is required")
			}
			return nil
		},
	}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func special(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func typeText(m Model, s string) Model {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestForm_TextInputAndValues(t *testing.T) {
	m := New(carFormConfig())
	m = typeText(m, "Toyota")

	require.Equal(t, "Toyota", m.Value("make"))
	require.Equal(t, "new", m.Value("condition"))
}

func TestForm_TabCyclesThroughFieldsAndButtons(t *testing.T) {
	m := New(carFormConfig())
	require.Equal(t, 0, m.focusedIndex)

	m, _ = m.Update(special(tea.KeyTab))
	require.Equal(t, 1, m.focusedIndex)

	m, _ = m.Update(special(tea.KeyTab))
	require.Equal(t, 2, m.focusedIndex)

	m, _ = m.Update(special(tea.KeyTab))
	require.Equal(t, -1, m.focusedIndex)
	require.Equal(t, 0, m.focusedButton)

	m, _ = m.Update(special(tea.KeyTab))
	require.Equal(t, 1, m.focusedButton)

	// Wraps back to the first field.
	m, _ = m.Update(special(tea.KeyTab))
	require.Equal(t, 0, m.focusedIndex)
}

func TestForm_SelectNavigationAndChoice(t *testing.T) {
	m := New(carFormConfig())
	m, _ = m.Update(special(tea.KeyTab))
	m, _ = m.Update(special(tea.KeyTab)) // on condition select

	m, _ = m.Update(runes("j"))
	m, _ = m.Update(special(tea.KeyEnter))
	require.Equal(t, "used", m.Value("condition"))
}

func TestForm_JKTypeInTextFields(t *testing.T) {
	m := New(carFormConfig())
	m, _ = m.Update(runes("j"))
	m, _ = m.Update(runes("k"))

	require.Equal(t, "jk", m.Value("make"))
	require.Equal(t, 0, m.focusedIndex)
}

func TestForm_SubmitEmitsValues(t *testing.T) {
	m := New(carFormConfig())
	m = typeText(m, "Honda")

	// Navigate to the submit button and confirm.
	for i := 0; i < 3; i++ {
		m, _ = m.Update(special(tea.KeyTab))
	}
	m, cmd := m.Update(special(tea.KeyEnter))
	require.NotNil(t, cmd)

	submit, ok := cmd().(SubmitMsg)
	require.True(t, ok)
	require.Equal(t, "Honda", submit.Values["make"])
	require.Equal(t, "new", submit.Values["condition"])
	require.Empty(t, m.validationError)
}

func TestForm_ValidationBlocksSubmit(t *testing.T) {
	m := New(carFormConfig())

	for i := 0; i < 3; i++ {
		m, _ = m.Update(special(tea.KeyTab))
	}
	m, cmd := m.Update(special(tea.KeyEnter))
	require.Nil(t, cmd)
	require.Equal(t, "make is required", m.validationError)
	require.Contains(t, m.View(), "make is required")
}

func TestForm_EscapeCancels(t *testing.T) {
	m := New(carFormConfig())
	_, cmd := m.Update(special(tea.KeyEsc))
	require.NotNil(t, cmd)

	_, ok := cmd().(CancelMsg)
	require.True(t, ok)
}

func TestForm_MessageFactories(t *testing.T) {
	type saved struct{ make string }
	type dismissed struct{}

	cfg := carFormConfig()
	cfg.Validate = nil
	cfg.OnSubmit = func(values map[string]any) tea.Msg {
		return saved{make: values["make"].(string)}
	}
	cfg.OnCancel = func() tea.Msg { return dismissed{} }

	m := New(cfg)
	m = typeText(m, "Mazda")

	_, cmd := m.Update(special(tea.KeyEsc))
	_, ok := cmd().(dismissed)
	require.True(t, ok)

	for i := 0; i < 3; i++ {
		m, _ = m.Update(special(tea.KeyTab))
	}
	_, cmd = m.Update(special(tea.KeyEnter))
	msg, ok := cmd().(saved)
	require.True(t, ok)
	require.Equal(t, "Mazda", msg.make)
}

func TestForm_ViewShowsTitleFieldsAndButtons(t *testing.T) {
	view := New(carFormConfig()).View()
	require.Contains(t, view, "Add Car")
	require.Contains(t, view, "Make")
	require.Contains(t, view, "Condition")
	require.Contains(t, view, "Add")
	require.Contains(t, view, "Cancel")
	require.Contains(t, view, "(●)")
}
