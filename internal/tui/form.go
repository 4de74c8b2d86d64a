package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// formKind tells what a submitted form edits.
type formKind int

const (
	formTrack formKind = iota
	formPack
)

// toggle is an on/off option rendered as a checkbox.
type toggle struct {
	label string
	on    bool
}

// form is a column of text inputs followed by toggles.
// Focus moves with tab/shift+tab; space flips a focused toggle.
type form struct {
	kind    formKind
	title   string
	index   int // draft index being edited, -1 for a new track
	labels  []string
	inputs  []textinput.Model
	toggles []toggle
	focus   int
}

func newForm(kind formKind, title string) form {
	return form{kind: kind, title: title, index: -1}
}

// addInput appends a text input with an initial value.
func (f *form) addInput(label, placeholder, value string) {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 500
	ti.Width = 60
	ti.SetValue(value)
	if len(f.inputs) == 0 {
		ti.Focus()
	}
	f.labels = append(f.labels, label)
	f.inputs = append(f.inputs, ti)
}

func (f *form) addToggle(label string, on bool) {
	f.toggles = append(f.toggles, toggle{label: label, on: on})
}

func (f form) size() int {
	return len(f.inputs) + len(f.toggles)
}

// value returns the trimmed value of the i-th input.
func (f form) value(i int) string {
	return strings.TrimSpace(f.inputs[i].Value())
}

func (f form) toggled(i int) bool {
	return f.toggles[i].on
}

// onLast reports whether focus is on the last element.
func (f form) onLast() bool {
	return f.focus == f.size()-1
}

// move shifts focus by delta, wrapping around.
func (f *form) move(delta int) tea.Cmd {
	if f.focus < len(f.inputs) {
		f.inputs[f.focus].Blur()
	}
	n := f.size()
	f.focus = ((f.focus+delta)%n + n) % n
	if f.focus < len(f.inputs) {
		return f.inputs[f.focus].Focus()
	}
	return nil
}

// update routes a message to the focused element.
func (f *form) update(msg tea.Msg) tea.Cmd {
	if f.focus >= len(f.inputs) {
		if key, ok := msg.(tea.KeyMsg); ok && key.String() == " " {
			t := &f.toggles[f.focus-len(f.inputs)]
			t.on = !t.on
		}
		return nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f form) view() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render(f.title))
	b.WriteString("\n\n")

	for i, ti := range f.inputs {
		label := fmt.Sprintf("%-14s", f.labels[i])
		if i == f.focus {
			b.WriteString(selectedStyle.Render(label))
		} else {
			b.WriteString(infoStyle.Render(label))
		}
		b.WriteString(ti.View())
		b.WriteString("\n")
	}

	if len(f.toggles) > 0 {
		b.WriteString("\n")
	}
	for i, t := range f.toggles {
		check := "[ ]"
		if t.on {
			check = "[×]"
		}
		line := fmt.Sprintf("  %s %s", check, t.label)
		if len(f.inputs)+i == f.focus {
			b.WriteString(selectedStyle.Render(line))
		} else {
			b.WriteString(line)
		}
		b.WriteString("\n")
	}

	return b.String()
}
