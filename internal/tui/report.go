package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Field is one labelled line of a Report.
type Field struct {
	Label string
	Value string
	Style *lipgloss.Style
}

// Report is a titled list of fields rendered either as plain "label: value"
// lines or as a styled box.
type Report struct {
	Title  string
	Fields []Field
}

// Add appends a plain field.
func (r *Report) Add(label, value string) {
	r.Fields = append(r.Fields, Field{Label: label, Value: value})
}

// AddStyled appends a field whose value is rendered with style in styled mode.
func (r *Report) AddStyled(label, value string, style lipgloss.Style) {
	r.Fields = append(r.Fields, Field{Label: label, Value: value, Style: &style})
}

func (r *Report) labelWidth() int {
	width := 0
	for _, f := range r.Fields {
		if w := lipgloss.Width(f.Label); w > width {
			width = w
		}
	}
	return width
}

// Plain renders the report without escape sequences, one field per line with
// aligned values.
func (r *Report) Plain() string {
	var b strings.Builder
	if r.Title != "" {
		b.WriteString(r.Title)
		b.WriteByte('\n')
	}
	width := r.labelWidth()
	for _, f := range r.Fields {
		b.WriteString("  ")
		b.WriteString(f.Label)
		b.WriteString(":")
		b.WriteString(strings.Repeat(" ", width-lipgloss.Width(f.Label)+1))
		b.WriteString(f.Value)
		b.WriteByte('\n')
	}
	return b.String()
}

// Styled renders the report inside a rounded box.
func (r *Report) Styled() string {
	width := r.labelWidth()
	lines := make([]string, 0, len(r.Fields)+1)
	if r.Title != "" {
		lines = append(lines, TitleStyle.Render(r.Title))
	}
	for _, f := range r.Fields {
		value := f.Value
		if f.Style != nil {
			value = f.Style.Render(value)
		}
		label := LabelStyle.Width(width + 1).Render(f.Label + ":")
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, label, " ", value))
	}
	return BoxStyle.Render(strings.Join(lines, "\n")) + "\n"
}

// Render picks Styled in interactive mode and Plain otherwise.
func (r *Report) Render(interactive bool) string {
	if interactive {
		return r.Styled()
	}
	return r.Plain()
}
