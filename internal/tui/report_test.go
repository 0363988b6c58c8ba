package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReport_Plain(t *testing.T) {
	r := Report{Title: "/tmp/a.txt"}
	r.Add("basename", "a.txt")
	r.AddStyled("kind", "file", SuccessStyle)

	assert.Equal(t, "/tmp/a.txt\n  basename: a.txt\n  kind:     file\n", r.Plain())
	assert.Equal(t, r.Plain(), r.Render(false))
}

func TestReport_Plain_NonASCIILabels(t *testing.T) {
	r := Report{}
	r.Add("größe", "12 B")
	r.Add("name", "a.txt")

	assert.Equal(t, "  größe: 12 B\n  name:  a.txt\n", r.Plain())
}

func TestReport_Styled(t *testing.T) {
	r := Report{Title: "title"}
	r.Add("label", "value")

	out := r.Render(true)

	assert.Contains(t, out, "title")
	assert.Contains(t, out, "value")
	assert.Contains(t, out, "╭")
	assert.True(t, strings.HasSuffix(out, "\n"))
}
