package formmodal

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Model is the form modal state. All methods return a new Model rather
// than modifying the receiver.
type Model struct {
	config FormConfig
	fields []fieldState

	focusedIndex  int // index into fields, -1 when on the buttons
	focusedButton int // 0 submit, 1 cancel

	validationError string

	width, height int
}

// New creates a form modal. Focus starts on the first field, or on the
// submit button when the form has no fields.
func New(cfg FormConfig) Model {
	m := Model{
		config: cfg,
		fields: make([]fieldState, len(cfg.Fields)),
	}
	for i, fieldCfg := range cfg.Fields {
		m.fields[i] = newFieldState(fieldCfg)
	}

	if len(m.fields) > 0 {
		m.focusedIndex = 0
		if m.fields[0].config.Type == FieldTypeText {
			m.fields[0].textInput.Focus()
		}
	} else {
		m.focusedIndex = -1
	}
	return m
}

// Init returns the cursor blink command when a text field has focus.
func (m Model) Init() tea.Cmd {
	return m.blinkCmd()
}

// SetSize sets the viewport dimensions for overlay rendering.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	return m
}

// SetError sets the validation error line. Pass "" to clear it.
func (m Model) SetError(text string) Model {
	m.validationError = text
	return m
}

// Value returns the current submit value of the field with the given key.
func (m Model) Value(key string) any {
	for i := range m.fields {
		if m.fields[i].config.Key == key {
			return m.fields[i].value()
		}
	}
	return nil
}

// Update handles messages for the form modal.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	// Non-key messages (cursor blink ticks) go to the focused text input.
	if fs := m.focusedField(); fs != nil && fs.config.Type == FieldTypeText {
		var cmd tea.Cmd
		fs.textInput, cmd = fs.textInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) focusedField() *fieldState {
	if m.focusedIndex >= 0 && m.focusedIndex < len(m.fields) {
		return &m.fields[m.focusedIndex]
	}
	return nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m, m.cancelCmd()

	case "tab", "ctrl+n":
		m = m.nextField()
		return m, m.blinkCmd()

	case "shift+tab", "ctrl+p":
		m = m.prevField()
		return m, m.blinkCmd()

	case "enter":
		return m.handleEnter()

	case "up", "down", "j", "k":
		if handled, next := m.handleVertical(msg.String()); handled {
			return next, next.blinkCmd()
		}

	case "left", "right", "h", "l":
		if handled, next := m.handleHorizontal(msg.String()); handled {
			return next, nil
		}

	case " ":
		if fs := m.focusedField(); fs != nil && fs.config.Type == FieldTypeSelect {
			fs.selectCurrent()
			return m, nil
		}
	}

	// Everything else is character input for the focused text field.
	if fs := m.focusedField(); fs != nil && fs.config.Type == FieldTypeText {
		var cmd tea.Cmd
		fs.textInput, cmd = fs.textInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleVertical moves between fields or within a select list. It
// reports false when the key should fall through to the text input,
// so j/k still type in text fields.
func (m Model) handleVertical(key string) (bool, Model) {
	down := key == "down" || key == "j"

	fs := m.focusedField()
	if fs == nil {
		// On the buttons: down cycles submit -> cancel -> first field.
		if down {
			if m.focusedButton == 0 {
				m.focusedButton = 1
				return true, m
			}
			return true, m.nextField()
		}
		if m.focusedButton == 1 {
			m.focusedButton = 0
			return true, m
		}
		return true, m.prevField()
	}

	switch fs.config.Type {
	case FieldTypeText:
		if key == "j" || key == "k" {
			return false, m // typing
		}
		if down {
			return true, m.nextField()
		}
		return true, m.prevField()

	case FieldTypeSelect:
		if down {
			if fs.listCursor >= len(fs.listItems)-1 {
				return true, m.nextField()
			}
			fs.listCursor++
			return true, m
		}
		if fs.listCursor <= 0 {
			return true, m.prevField()
		}
		fs.listCursor--
		return true, m
	}
	return false, m
}

// handleHorizontal switches between the buttons. Reports false when the
// key belongs to a text field.
func (m Model) handleHorizontal(key string) (bool, Model) {
	if m.focusedIndex != -1 {
		return false, m
	}
	if key == "left" || key == "h" {
		m.focusedButton = 0
	} else {
		m.focusedButton = 1
	}
	return true, m
}

func (m Model) handleEnter() (Model, tea.Cmd) {
	if fs := m.focusedField(); fs != nil {
		if fs.config.Type == FieldTypeSelect {
			fs.selectCurrent()
			return m, nil
		}
		m = m.nextField()
		return m, m.blinkCmd()
	}

	if m.focusedButton == 0 {
		return m.submit()
	}
	return m, m.cancelCmd()
}

// submit validates the field values and emits the submit message.
func (m Model) submit() (Model, tea.Cmd) {
	m.validationError = ""

	values := make(map[string]any, len(m.fields))
	for i := range m.fields {
		values[m.fields[i].config.Key] = m.fields[i].value()
	}

	if m.config.Validate != nil {
		if err := m.config.Validate(values); err != nil {
			m.validationError = err.Error()
			return m, nil
		}
	}

	if m.config.OnSubmit != nil {
		return m, func() tea.Msg { return m.config.OnSubmit(values) }
	}
	return m, func() tea.Msg { return SubmitMsg{Values: values} }
}

func (m Model) cancelCmd() tea.Cmd {
	if m.config.OnCancel != nil {
		return func() tea.Msg { return m.config.OnCancel() }
	}
	return func() tea.Msg { return CancelMsg{} }
}

func (m Model) nextField() Model {
	m.blurFocused()
	if m.focusedIndex >= 0 {
		if m.focusedIndex+1 < len(m.fields) {
			m.focusedIndex++
			m.focusCurrent(true)
		} else {
			m.focusedIndex = -1
			m.focusedButton = 0
		}
		return m
	}
	// On the buttons: submit -> cancel -> wrap to the first field.
	if m.focusedButton == 0 {
		m.focusedButton = 1
	} else if len(m.fields) > 0 {
		m.focusedIndex = 0
		m.focusCurrent(true)
	} else {
		m.focusedButton = 0
	}
	return m
}

func (m Model) prevField() Model {
	m.blurFocused()
	if m.focusedIndex >= 0 {
		if m.focusedIndex > 0 {
			m.focusedIndex--
			m.focusCurrent(false)
		} else {
			m.focusedIndex = -1
			m.focusedButton = 1
		}
		return m
	}
	if m.focusedButton == 1 {
		m.focusedButton = 0
	} else if len(m.fields) > 0 {
		m.focusedIndex = len(m.fields) - 1
		m.focusCurrent(false)
	} else {
		m.focusedButton = 1
	}
	return m
}

func (m *Model) blurFocused() {
	if fs := m.focusedField(); fs != nil && fs.config.Type == FieldTypeText {
		fs.textInput.Blur()
	}
}

// focusCurrent prepares the newly focused field. forward controls where
// the select cursor lands when entering the field.
func (m *Model) focusCurrent(forward bool) {
	fs := m.focusedField()
	if fs == nil {
		return
	}
	switch fs.config.Type {
	case FieldTypeText:
		fs.textInput.Focus()
	case FieldTypeSelect:
		if forward || len(fs.listItems) == 0 {
			fs.listCursor = 0
		} else {
			fs.listCursor = len(fs.listItems) - 1
		}
	}
}

func (m Model) blinkCmd() tea.Cmd {
	if fs := m.focusedField(); fs != nil && fs.config.Type == FieldTypeText {
		return textinput.Blink
	}
	return nil
}
