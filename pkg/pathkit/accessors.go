package pathkit

import "strings"

// Basename returns the last component, or "" for a path without components.
func (p Path) Basename() string {
	return p.Component(-1)
}

// Parent returns p without its last component. The drive and absolute flag
// are kept, so the parent of "/a" is the root "/".
func (p Path) Parent() Path {
	q := p.clone()
	if n := len(q.components); n > 0 {
		q.components = q.components[:n-1]
	}
	return q
}

// Dirname renders the parent of p. It returns "" when p has no components.
func (p Path) Dirname() string {
	if len(p.components) == 0 {
		return ""
	}
	return p.Parent().String()
}

// Extension returns the text after the last '.' of the basename, without the
// dot. Names without a dot and names whose only dot is the leading one
// (".gitignore") have no extension.
func (p Path) Extension() string {
	base := p.Basename()
	i := strings.LastIndexByte(base, '.')
	if i <= 0 {
		return ""
	}
	return base[i+1:]
}

// HasExtension reports whether p's extension equals ext, ignoring case. A
// leading dot in ext is ignored.
func (p Path) HasExtension(ext string) bool {
	return strings.EqualFold(p.Extension(), strings.TrimPrefix(ext, "."))
}
