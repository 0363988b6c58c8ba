package pathkit

const (
	currentDir = "."
	parentDir  = ".."
)

// Normalize lexically removes "." and ".." components in place and returns p.
//
// A ".." cancels the preceding real component. When there is nothing left to
// cancel it is kept for a relative path and dropped for an absolute one, so an
// absolute path never climbs above its root. The drive and the absolute flag
// are left untouched. The filesystem is never consulted.
func (p *Path) Normalize() *Path {
	p.components = normalizeComponents(p.components, p.absolute)
	return p
}

// Normalized is the pure form of Normalize.
func (p Path) Normalized() Path {
	q := p
	q.components = normalizeComponents(p.components, p.absolute)
	return q
}

// IsNormalized reports whether Normalize would leave p unchanged.
func (p Path) IsNormalized() bool {
	for i, c := range p.components {
		switch c {
		case currentDir:
			return false
		case parentDir:
			if p.absolute || (i > 0 && p.components[i-1] != parentDir) {
				return false
			}
		}
	}
	return true
}

func normalizeComponents(in []string, absolute bool) []string {
	out := make([]string, 0, len(in))
	for _, c := range in {
		switch c {
		case "", currentDir:
		case parentDir:
			switch {
			case len(out) > 0 && out[len(out)-1] != parentDir:
				out = out[:len(out)-1]
			case !absolute:
				out = append(out, parentDir)
			}
		default:
			out = append(out, c)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
