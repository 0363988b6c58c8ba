package pathkit

import (
	"fmt"
	"io/fs"
	"os"
)

// EachFunc is called for every entry reached by Walker.Each. Returning false
// stops the whole traversal, not only the current directory.
type EachFunc func(entry Path) bool

// Walker enumerates directory entries depth-first.
type Walker struct {
	fsys   FileSystem
	probe  *Probe
	logger Logger
}

// NewWalker creates a walker over fsys. A nil logger discards messages.
// Panics if fsys is nil.
func NewWalker(fsys FileSystem, logger Logger) *Walker {
	if logger == nil {
		logger = discardLogger{}
	}
	return &Walker{
		fsys:   fsys,
		probe:  NewProbe(fsys, logger),
		logger: logger,
	}
}

// Each calls fn for every entry of the directory root, in listing order.
// With recursive set, a subdirectory is descended into right after fn has
// been called for it (pre-order). A symbolic link to a directory is
// descended like the directory itself, unless that directory is already being
// walked higher up, which would loop forever.
//
// Each returns false when fn stopped the traversal and true otherwise. When
// root is not a directory, or does not exist, nothing is visited and Each
// returns true. Every directory listing is read completely and released
// before fn sees its entries, so no handle outlives the call whichever way it
// ends.
//
// A panic in fn stops the traversal and is returned as an error.
func (w *Walker) Each(root Path, fn EachFunc, recursive bool) (bool, error) {
	if fn == nil {
		return true, nil
	}

	info, err := w.probe.stat("walk", root)
	if err != nil {
		return false, err
	}
	if info == nil || !info.IsDir() {
		w.logger.Verbose("walk: %s is not a directory, nothing to visit", target(root))
		return true, nil
	}

	return w.each(root, fn, recursive, []FileInfo{info})
}

// each walks dir. ancestors holds the directories being walked, dir's own
// info last.
func (w *Walker) each(dir Path, fn EachFunc, recursive bool, ancestors []FileInfo) (bool, error) {
	entries, err := w.fsys.ReadDir(target(dir))
	if err != nil {
		if isAbsence(err) {
			w.logger.Verbose("walk: %s vanished or is not a directory", target(dir))
			return true, nil
		}
		return false, newIOError("readdir", dir, err)
	}

	for _, info := range entries {
		entry := dir.child(info.Name())

		cont, err := visit(fn, entry)
		if err != nil || !cont {
			return false, err
		}
		if !recursive {
			continue
		}

		sub, err := w.descendInto(entry, info, ancestors)
		if err != nil {
			return false, err
		}
		if sub == nil {
			continue
		}

		w.logger.Verbose("walk: descending into %s", entry)
		cont, err = w.each(entry, fn, true, append(ancestors[:len(ancestors):len(ancestors)], sub))
		if err != nil || !cont {
			return false, err
		}
	}

	return true, nil
}

// descendInto returns the info of the directory entry leads to, or nil when
// the walk must not enter it. Symbolic links are resolved; a link whose
// target is missing is skipped.
func (w *Walker) descendInto(entry Path, info FileInfo, ancestors []FileInfo) (FileInfo, error) {
	if info.IsDir() {
		return info, nil
	}
	if info.Mode()&fs.ModeSymlink == 0 {
		return nil, nil
	}

	resolved, err := w.probe.stat("walk", entry)
	if err != nil || resolved == nil || !resolved.IsDir() {
		return nil, err
	}
	for _, seen := range ancestors {
		if os.SameFile(seen, resolved) {
			w.logger.Verbose("walk: not following %s, it leads back to a directory being walked", entry)
			return nil, nil
		}
	}
	return resolved, nil
}

// visit calls fn and converts a panic into an error.
func visit(fn EachFunc, entry Path) (cont bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			cont = false
			err = fmt.Errorf("walk callback panicked at %s: %v", entry, r)
		}
	}()
	return fn(entry), nil
}

// List returns every path Each would visit.
func (w *Walker) List(root Path, recursive bool) ([]Path, error) {
	var paths []Path
	_, err := w.Each(root, func(entry Path) bool {
		paths = append(paths, entry)
		return true
	}, recursive)
	if err != nil {
		return nil, err
	}
	return paths, nil
}

// child returns dir with name appended verbatim. Names come from a directory
// listing and are never split, even when they contain a backslash.
func (p Path) child(name string) Path {
	q := p
	q.components = make([]string, len(p.components), len(p.components)+1)
	copy(q.components, p.components)
	q.components = append(q.components, name)
	return q
}
