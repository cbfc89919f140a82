package formmodal

import (
	"github.com/charmbracelet/bubbles/textinput"

	"showroom/internal/ui/styles"
)

type selectItem struct {
	label    string
	value    string
	selected bool
}

// fieldState holds the runtime state for one field.
type fieldState struct {
	config FieldConfig

	// Text fields.
	textInput textinput.Model

	// Select fields.
	listItems  []selectItem
	listCursor int
}

func newFieldState(cfg FieldConfig) fieldState {
	fs := fieldState{config: cfg}

	switch cfg.Type {
	case FieldTypeText:
		ti := textinput.New()
		ti.Placeholder = cfg.Placeholder
		ti.CharLimit = cfg.MaxLength
		ti.SetValue(cfg.InitialValue)
		ti.Prompt = ""
		ti.PlaceholderStyle = ti.PlaceholderStyle.Foreground(styles.TextPlaceholderColor)
		fs.textInput = ti

	case FieldTypeSelect:
		fs.listItems = make([]selectItem, len(cfg.Options))
		for i, opt := range cfg.Options {
			fs.listItems[i] = selectItem{
				label:    opt.Label,
				value:    opt.Value,
				selected: opt.Selected,
			}
			if opt.Selected {
				fs.listCursor = i
			}
		}
	}

	return fs
}

// value returns the submit value for the field.
func (fs *fieldState) value() any {
	switch fs.config.Type {
	case FieldTypeText:
		return fs.textInput.Value()
	case FieldTypeSelect:
		for _, item := range fs.listItems {
			if item.selected {
				return item.value
			}
		}
		return ""
	}
	return nil
}

// selectCurrent marks the item under the cursor as the single selection.
func (fs *fieldState) selectCurrent() {
	if fs.listCursor < 0 || fs.listCursor >= len(fs.listItems) {
		return
	}
	for i := range fs.listItems {
		fs.listItems[i].selected = i == fs.listCursor
	}
}
