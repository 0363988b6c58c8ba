package pathkit

// Join returns a new path made of p's components followed by the components
// parsed from each element.
//
// The result always keeps p's drive and absolute flag: an element that is
// itself absolute ("/etc" or "D:/x") only contributes its components. This
// is left-biased on purpose and differs from filepath.Join. The result is not
// normalized.
func (p Path) Join(elems ...string) Path {
	q := p.clone()
	for _, e := range elems {
		q.components = append(q.components, splitComponents(e)...)
	}
	return q
}

// Append is Join for an already parsed right operand. Only the components of
// other are used.
func (p Path) Append(other Path) Path {
	q := p.clone()
	q.components = append(q.components, other.components...)
	return q
}

// Join parses base and joins elems onto it. See Path.Join.
func Join(base string, elems ...string) Path {
	return New(base).Join(elems...)
}

// Push appends one element in place and returns p.
func (p *Path) Push(elem string) *Path {
	n := len(p.components)
	p.components = append(p.components[:n:n], splitComponents(elem)...)
	return p
}

// Pop removes the last component in place and returns it, or "" when there is
// none.
func (p *Path) Pop() string {
	n := len(p.components)
	if n == 0 {
		return ""
	}
	last := p.components[n-1]
	p.components = p.components[:n-1 : n-1]
	return last
}
