package pathkit

import (
	"path/filepath"
	"strings"
)

// Path is a parsed filesystem path.
//
// A Path is a value: copying it is cheap and composition always returns a new
// value. The only mutating operations are Normalize, Push, Pop and
// Probe.MakeAbsolute, which must not be called concurrently on the same value.
// The zero Path is the empty relative path.
type Path struct {
	absolute   bool
	drive      string
	components []string
}

// Separator is the separator used when rendering a Path.
const Separator = filepath.Separator

// New parses s into a Path. It never fails: anything that is not recognised as
// an absolute path is taken literally as a relative one.
//
// Both '/' and '\' are accepted as separators regardless of the host, and a
// leading drive designator such as "C:" is recognised on every platform. The
// path is absolute when the part after the optional drive starts with a
// separator.
func New(s string) Path {
	var p Path

	if hasDrivePrefix(s) {
		p.drive = s[:2]
		s = s[2:]
	}
	if len(s) > 0 && isSeparator(s[0]) {
		p.absolute = true
	}
	p.components = splitComponents(s)

	return p
}

// FromComponents builds a Path from already separated parts. Each part is
// split again on separators so that the resulting value holds no empty
// component.
func FromComponents(absolute bool, drive string, parts ...string) Path {
	p := Path{absolute: absolute, drive: drive}
	for _, part := range parts {
		p.components = append(p.components, splitComponents(part)...)
	}
	return p
}

func hasDrivePrefix(s string) bool {
	if len(s) < 2 || s[1] != ':' {
		return false
	}
	c := s[0]
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isSeparator(c byte) bool {
	return c == '/' || c == '\\'
}

func splitComponents(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == '/' || r == '\\'
	})
	if len(fields) == 0 {
		return nil
	}
	return fields
}

// IsAbsolute reports whether the path is rooted, either by a leading
// separator or by a drive designator followed by a separator.
func (p Path) IsAbsolute() bool { return p.absolute }

// Drive returns the drive designator ("C:") or an empty string.
func (p Path) Drive() string { return p.drive }

// Len returns the number of components.
func (p Path) Len() int { return len(p.components) }

// IsEmpty reports whether the path is relative and has no drive and no
// components.
func (p Path) IsEmpty() bool {
	return !p.absolute && p.drive == "" && len(p.components) == 0
}

// IsRoot reports whether the path denotes a filesystem root.
func (p Path) IsRoot() bool {
	return p.absolute && len(p.components) == 0
}

// Components returns a copy of the path components.
func (p Path) Components() []string {
	out := make([]string, len(p.components))
	copy(out, p.components)
	return out
}

// Component returns the component at idx. Negative indexes count from the
// end, so -1 is the last component. Out of range indexes return "".
func (p Path) Component(idx int) string {
	if idx < 0 {
		idx += len(p.components)
	}
	if idx < 0 || idx >= len(p.components) {
		return ""
	}
	return p.components[idx]
}

// String renders the path with the host separator.
func (p Path) String() string {
	return p.Fullname(Separator)
}

// Fullname renders the path using sep as separator: drive, root separator when
// absolute, then the components.
func (p Path) Fullname(sep rune) string {
	var b strings.Builder
	b.WriteString(p.drive)
	if p.absolute {
		b.WriteRune(sep)
	}
	for i, c := range p.components {
		if i > 0 {
			b.WriteRune(sep)
		}
		b.WriteString(c)
	}
	return b.String()
}

// ToSlash renders the path with '/' whatever the host separator is.
func (p Path) ToSlash() string {
	return p.Fullname('/')
}

// Equal reports whether both paths render to the same string. No
// normalization takes place: "a/../b" and "b" are different paths until
// normalized.
func (p Path) Equal(other Path) bool {
	return p.String() == other.String()
}

// MarshalText implements encoding.TextMarshaler.
func (p Path) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Path) UnmarshalText(text []byte) error {
	*p = New(string(text))
	return nil
}

// clone returns a copy that shares no backing array with p.
func (p Path) clone() Path {
	q := p
	if p.components != nil {
		q.components = make([]string, len(p.components))
		copy(q.components, p.components)
	}
	return q
}
