package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type option struct {
	id    int64
	label string
}

// field is a text input, or a picker when options is set.
type field struct {
	label   string
	input   textinput.Model
	options []option
	choice  int
	locked  bool
}

type form struct {
	fields []field
	focus  int
}

func textField(label string, value string) field {
	in := textinput.New()
	in.Prompt = ""
	in.CharLimit = 256
	in.SetValue(value)
	return field{label: label, input: in}
}

func secretField(label string) field {
	f := textField(label, "")
	f.input.EchoMode = textinput.EchoPassword
	f.input.EchoCharacter = '•'
	return f
}

func numberField(label string, value int) field {
	f := textField(label, fmt.Sprintf("%d", value))
	f.input.CharLimit = 9
	f.input.Validate = func(s string) error {
		for _, r := range s {
			if r < '0' || r > '9' {
				return fmt.Errorf("digits only")
			}
		}
		return nil
	}
	return f
}

func pickerField(label string, options []option, selected int64) field {
	if len(options) == 0 {
		options = []option{{label: "-"}}
	}
	f := field{label: label, options: options}
	for i, opt := range options {
		if opt.id == selected {
			f.choice = i
		}
	}
	return f
}

func newForm(fields ...field) form {
	f := form{fields: fields, focus: -1}
	f.move(1)
	return f
}

func (f *form) move(step int) {
	if len(f.fields) == 0 {
		return
	}
	if f.focus >= 0 && f.focus < len(f.fields) {
		f.fields[f.focus].input.Blur()
	}
	next := f.focus
	for range f.fields {
		next = (next + step + len(f.fields)) % len(f.fields)
		if !f.fields[next].locked {
			break
		}
	}
	f.focus = next
	if f.fields[next].options == nil {
		f.fields[next].input.Focus()
	}
}

func (f *form) update(msg tea.KeyMsg) tea.Cmd {
	if f.focus < 0 || f.focus >= len(f.fields) {
		return nil
	}
	current := &f.fields[f.focus]
	switch msg.String() {
	case "tab", "down":
		f.move(1)
		return nil
	case "shift+tab", "up":
		f.move(-1)
		return nil
	}
	if current.options != nil {
		switch msg.String() {
		case "left":
			current.choice = (current.choice - 1 + len(current.options)) % len(current.options)
		case "right", " ":
			current.choice = (current.choice + 1) % len(current.options)
		}
		return nil
	}
	var cmd tea.Cmd
	current.input, cmd = current.input.Update(msg)
	return cmd
}

func (f form) value(i int) string {
	if i < 0 || i >= len(f.fields) {
		return ""
	}
	return strings.TrimSpace(f.fields[i].input.Value())
}

func (f form) raw(i int) string {
	if i < 0 || i >= len(f.fields) {
		return ""
	}
	return f.fields[i].input.Value()
}

func (f form) number(i int) int {
	var n int
	_, _ = fmt.Sscanf(f.value(i), "%d", &n)
	return n
}

func (f form) selected(i int) int64 {
	if i < 0 || i >= len(f.fields) || len(f.fields[i].options) == 0 {
		return 0
	}
	return f.fields[i].options[f.fields[i].choice].id
}

func (f form) view(st styles, title string) string {
	var b strings.Builder
	b.WriteString(st.title.Render(title))
	b.WriteString("\n\n")
	width := 0
	for _, fl := range f.fields {
		width = max(width, len([]rune(fl.label)))
	}
	for i, fl := range f.fields {
		label := fl.label + strings.Repeat(" ", width-len([]rune(fl.label)))
		if i == f.focus {
			b.WriteString(st.focused.Render("› " + label))
		} else {
			b.WriteString(st.label.Render("  " + label))
		}
		b.WriteString("  ")
		switch {
		case fl.options != nil:
			b.WriteString("‹ " + fl.options[fl.choice].label + " ›")
		case fl.locked:
			b.WriteString(st.label.Render(fl.input.Value()))
		default:
			b.WriteString(fl.input.View())
		}
		b.WriteString("\n")
	}
	return b.String()
}
