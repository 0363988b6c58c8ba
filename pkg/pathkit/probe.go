package pathkit

import (
	"errors"
	"io/fs"
	"runtime"
	"strings"
	"syscall"
)

// Probe answers classification questions about paths by querying a
// FileSystem. Each call issues its own metadata queries and keeps nothing
// open afterwards.
//
// The path is used as given: callers normalize first when "a/../b" must be
// treated as "b".
type Probe struct {
	fsys   FileSystem
	logger Logger
}

// NewProbe creates a probe over fsys. A nil logger discards messages.
// Panics if fsys is nil.
func NewProbe(fsys FileSystem, logger Logger) *Probe {
	if fsys == nil {
		panic("fsys cannot be nil")
	}
	if logger == nil {
		logger = discardLogger{}
	}
	return &Probe{fsys: fsys, logger: logger}
}

// isAbsence reports whether a stat error means the path is simply not there.
// A file used as a directory component ("file.txt/x") counts as absence.
func isAbsence(err error) bool {
	return errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR)
}

// stat returns nil info and a nil error when p does not exist.
func (pr *Probe) stat(op string, p Path) (FileInfo, error) {
	info, err := pr.fsys.Stat(target(p))
	if err != nil {
		if isAbsence(err) {
			pr.logger.Verbose("%s: %s does not exist", op, target(p))
			return nil, nil
		}
		return nil, newIOError(op, p, err)
	}
	return info, nil
}

// Exists reports whether p refers to anything. Missing paths give false and
// no error.
func (pr *Probe) Exists(p Path) (bool, error) {
	info, err := pr.stat("exists", p)
	return info != nil, err
}

// IsFile reports whether p is a regular file, following symbolic links.
func (pr *Probe) IsFile(p Path) (bool, error) {
	info, err := pr.stat("isfile", p)
	if info == nil {
		return false, err
	}
	return info.Mode().IsRegular(), nil
}

// IsDir reports whether p is a directory, following symbolic links.
func (pr *Probe) IsDir(p Path) (bool, error) {
	info, err := pr.stat("isdir", p)
	if info == nil {
		return false, err
	}
	return info.IsDir(), nil
}

// FileSize returns the size of a regular file, 0 for anything else.
func (pr *Probe) FileSize(p Path) (int64, error) {
	info, err := pr.stat("filesize", p)
	if info == nil || !info.Mode().IsRegular() {
		return 0, err
	}
	return info.Size(), nil
}

// CurrentDir returns the working directory as a Path.
func (pr *Probe) CurrentDir() (Path, error) {
	cwd, err := pr.fsys.Getwd()
	if err != nil {
		return Path{}, newIOError("getwd", Path{}, err)
	}
	return New(cwd), nil
}

// MakeAbsolute turns p into an absolute, normalized path in place. A relative
// p gets the working directory's drive and components in front of its own.
// An absolute p is only normalized.
func (pr *Probe) MakeAbsolute(p *Path) error {
	if !p.absolute {
		cwd, err := pr.CurrentDir()
		if err != nil {
			return err
		}
		components := make([]string, 0, len(cwd.components)+len(p.components))
		components = append(components, cwd.components...)
		components = append(components, p.components...)
		p.components = components
		p.drive = cwd.drive
		p.absolute = true
	}
	p.Normalize()
	return nil
}

// Absolute is the pure form of MakeAbsolute.
func (pr *Probe) Absolute(p Path) (Path, error) {
	q := p.clone()
	if err := pr.MakeAbsolute(&q); err != nil {
		return Path{}, err
	}
	return q, nil
}

// Same reports whether a and b designate the same location once both are made
// absolute and normalized. The comparison ignores case on Windows.
func (pr *Probe) Same(a, b Path) (bool, error) {
	absA, err := pr.Absolute(a)
	if err != nil {
		return false, err
	}
	absB, err := pr.Absolute(b)
	if err != nil {
		return false, err
	}
	if runtime.GOOS == "windows" {
		return strings.EqualFold(absA.String(), absB.String()), nil
	}
	return absA.String() == absB.String(), nil
}

// CreateDir creates the directory p. With recursive set, missing parents are
// created first. An existing directory is not an error; an existing
// non-directory is ErrNotDirectory.
func (pr *Probe) CreateDir(p Path, recursive bool) error {
	if p.IsEmpty() {
		return newPathError(ErrInvalidPath, "mkdir", p, nil)
	}

	info, err := pr.stat("mkdir", p)
	if err != nil {
		return err
	}
	if info != nil {
		if info.IsDir() {
			return nil
		}
		return newPathError(ErrNotDirectory, "mkdir", p, nil)
	}

	if recursive && p.Len() > 1 {
		if err := pr.CreateDir(p.Parent(), true); err != nil {
			return err
		}
	}

	pr.logger.Verbose("mkdir: creating %s", p)
	if err := pr.fsys.Mkdir(target(p), DefaultDirPerm); err != nil {
		if errors.Is(err, fs.ErrExist) {
			if ok, _ := pr.IsDir(p); ok {
				return nil
			}
		}
		if errors.Is(err, syscall.ENOTDIR) {
			return newPathError(ErrNotDirectory, "mkdir", p, err)
		}
		return newIOError("mkdir", p, err)
	}
	return nil
}

// RemoveFile removes p if it is a regular file. It reports whether something
// was removed; directories and missing paths are left alone.
func (pr *Probe) RemoveFile(p Path) (bool, error) {
	ok, err := pr.IsFile(p)
	if !ok {
		return false, err
	}
	pr.logger.Verbose("remove: deleting %s", p)
	if err := pr.fsys.Remove(target(p)); err != nil {
		if isAbsence(err) {
			return false, nil
		}
		return false, newIOError("remove", p, err)
	}
	return true, nil
}
