package pathkit

import (
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
type FileInfo = fs.FileInfo

// FileSystem is the set of operating system primitives the probe and the
// walker rely on. Names are rendered paths; "." stands for the working
// directory.
//
// Implementations must report a missing path with an error matching
// fs.ErrNotExist so it can be told apart from real faults.
type FileSystem interface {
	// Stat returns metadata for name, following symbolic links.
	Stat(name string) (FileInfo, error)

	// ReadDir returns the entries of the directory name sorted by name.
	// Entries describe the links themselves, not their targets.
	ReadDir(name string) ([]FileInfo, error)

	// Getwd returns the current working directory.
	Getwd() (string, error)

	// Mkdir creates a single directory.
	Mkdir(name string, perm fs.FileMode) error

	// Remove removes a file or an empty directory.
	Remove(name string) error
}

// DefaultDirPerm is the permission used by Probe.CreateDir.
const DefaultDirPerm fs.FileMode = 0o755

// target is the name handed to the FileSystem for p.
func target(p Path) string {
	if p.IsEmpty() {
		return "."
	}
	return p.String()
}
