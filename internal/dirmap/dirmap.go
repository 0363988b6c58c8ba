// Package dirmap translates paths between Windows drive prefixes and Unix
// mount points, for trees shared between both kinds of host.
//
// A mapping pairs a Windows prefix ("z:/home") with a Unix prefix ("/Users").
// On a Unix host Windows-style paths are rewritten to their Unix location; on
// a Windows host Unix-style paths are rewritten to their drive location.
package dirmap

import (
	"bufio"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/vvka-141/pathkit/pkg/pathkit"
)

var windowsPathPattern = regexp.MustCompile(`^[A-Za-z]:[/\\]`)

// IsWindowsPath reports whether p starts with a drive designator followed by
// a separator.
func IsWindowsPath(p string) bool {
	return windowsPathPattern.MatchString(p)
}

// Mapper holds Windows to Unix prefix pairs. Safe for concurrent use.
type Mapper struct {
	mu          sync.RWMutex
	win2nix     map[string]string
	nix2win     map[string]string
	windowsHost bool
}

// NewForHost creates an empty mapper that translates as a Windows host would
// when windowsHost is set, and as a Unix host otherwise.
func NewForHost(windowsHost bool) *Mapper {
	return &Mapper{
		win2nix:     make(map[string]string),
		nix2win:     make(map[string]string),
		windowsHost: windowsHost,
	}
}

// windowsKey folds ASCII letters to lower case and turns '\' into '/'. Every
// other byte is kept, so the key has the byte length of p and offsets in one
// are offsets in the other.
func windowsKey(p string) string {
	b := []byte(p)
	for i, c := range b {
		switch {
		case c >= 'A' && c <= 'Z':
			b[i] = c + ('a' - 'A')
		case c == '\\':
			b[i] = '/'
		}
	}
	return string(b)
}

// Add registers a pair. The Windows side is stored lowercased with forward
// slashes. A pair with both sides empty is ignored.
func (m *Mapper) Add(windows, unix string) {
	if windows == "" && unix == "" {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	key := windowsKey(windows)
	m.nix2win[unix] = key
	m.win2nix[key] = unix
}

// Remove drops the pair registered for windows and the one registered for
// unix.
func (m *Mapper) Remove(windows, unix string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.win2nix, windowsKey(windows))
	delete(m.nix2win, unix)
}

// Len returns the number of Windows prefixes registered.
func (m *Mapper) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.win2nix)
}

// Map translates p through the longest registered prefix. Paths that are
// already native to the host, and paths no prefix matches, are returned
// unchanged.
func (m *Mapper) Map(p string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	lookup := p
	table := m.nix2win
	if m.windowsHost {
		if IsWindowsPath(p) {
			return p
		}
	} else {
		if !IsWindowsPath(p) {
			return p
		}
		lookup = windowsKey(p)
		table = m.win2nix
	}

	best := ""
	for prefix := range table {
		if len(prefix) > len(best) && hasPathPrefix(lookup, prefix) {
			best = prefix
		}
	}
	if best == "" {
		return p
	}

	target, rest := table[best], p[len(best):]
	if rest != "" && endsWithSeparator(best) && !endsWithSeparator(target) {
		target += "/"
	}
	mapped := target + rest
	if !m.windowsHost {
		mapped = strings.ReplaceAll(mapped, `\`, "/")
	}
	return mapped
}

// hasPathPrefix reports whether prefix is a leading run of whole components
// of p, so "/home" matches "/home/x" but not "/homework".
func hasPathPrefix(p, prefix string) bool {
	if !strings.HasPrefix(p, prefix) {
		return false
	}
	if len(p) == len(prefix) || endsWithSeparator(prefix) {
		return true
	}
	c := p[len(prefix)]
	return c == '/' || c == '\\'
}

func endsWithSeparator(s string) bool {
	return strings.HasSuffix(s, "/") || strings.HasSuffix(s, `\`)
}

// ParseMappings reads "left = right" lines and registers each pair with its
// Windows side first, whatever the order in the line. Blank lines, lines
// starting with '#', and lines without exactly one '=' are skipped, as are
// pairs whose sides are both Windows paths or both Unix paths. It returns the
// number of pairs added.
func (m *Mapper) ParseMappings(content string) int {
	added := 0
	scanner := bufio.NewScanner(strings.NewReader(content))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Split(line, "=")
		if len(parts) != 2 {
			continue
		}
		left := strings.TrimSpace(parts[0])
		right := strings.TrimSpace(parts[1])

		leftWin, rightWin := IsWindowsPath(left), IsWindowsPath(right)
		if leftWin == rightWin {
			continue
		}
		if leftWin {
			m.Add(left, right)
		} else {
			m.Add(right, left)
		}
		added++
	}
	return added
}

// FileReader is a filesystem that can also return the contents of a file.
type FileReader interface {
	pathkit.FileSystem
	ReadFile(name string) ([]byte, error)
}

// LoadFile registers the pairs found in the mappings file p on fsys. It
// reports false when p is not a regular file.
func (m *Mapper) LoadFile(fsys FileReader, p pathkit.Path) (bool, error) {
	ok, err := pathkit.NewProbe(fsys, nil).IsFile(p)
	if err != nil || !ok {
		return false, err
	}

	content, err := fsys.ReadFile(p.String())
	if err != nil {
		return false, fmt.Errorf("%w: read mappings %s: %w", pathkit.ErrIO, p, err)
	}
	m.ParseMappings(string(content))
	return true, nil
}

// ParsePair splits a "windows=unix" flag value. Either order is accepted as
// long as exactly one side is a Windows path.
func ParsePair(value string) (windows, unix string, err error) {
	left, right, found := strings.Cut(value, "=")
	if !found {
		return "", "", fmt.Errorf("%w: mapping %q must have the form windows=unix", pathkit.ErrInvalidConfig, value)
	}
	left, right = strings.TrimSpace(left), strings.TrimSpace(right)

	switch leftWin, rightWin := IsWindowsPath(left), IsWindowsPath(right); {
	case leftWin && !rightWin:
		return left, right, nil
	case rightWin && !leftWin:
		return right, left, nil
	default:
		return "", "", fmt.Errorf("%w: mapping %q needs exactly one Windows path", pathkit.ErrInvalidConfig, value)
	}
}
