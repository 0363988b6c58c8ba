package filesystem

import (
	"fmt"
	"io/fs"
	"path"
	"strings"
	"syscall"
)

// IOFileSystem implements pathkit.FileSystem on top of a read-only fs.FS such
// as an embed.FS. The working directory is "/", which maps to root inside the
// wrapped filesystem. Mkdir and Remove always fail with fs.ErrPermission.
type IOFileSystem struct {
	fsys fs.FS
	root string // root path within fsys (always uses forward slashes)
}

// NewIOFileSystem creates a new filesystem provider wrapping fsys.
// The root parameter specifies the subdirectory within fsys to treat as "/".
func NewIOFileSystem(fsys fs.FS, root string) *IOFileSystem {
	root = path.Clean(strings.ReplaceAll(root, "\\", "/"))
	root = strings.TrimPrefix(root, "/")
	if root == "" {
		root = "."
	}
	return &IOFileSystem{
		fsys: fsys,
		root: root,
	}
}

// resolve maps a name onto a valid fs.FS path below root.
func (iofs *IOFileSystem) resolve(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	// Absolute and relative names both start at root; ".." cannot leave it.
	cleaned := strings.TrimPrefix(path.Clean("/"+name), "/")
	if cleaned == "" {
		return iofs.root
	}
	return path.Join(iofs.root, cleaned)
}

// Stat implements pathkit.FileSystem.Stat
func (iofs *IOFileSystem) Stat(name string) (FileInfo, error) {
	return fs.Stat(iofs.fsys, iofs.resolve(name))
}

// ReadDir implements pathkit.FileSystem.ReadDir
func (iofs *IOFileSystem) ReadDir(name string) ([]FileInfo, error) {
	fsPath := iofs.resolve(name)

	info, err := fs.Stat(iofs.fsys, fsPath)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, &fs.PathError{Op: "readdirent", Path: name, Err: syscall.ENOTDIR}
	}

	entries, err := fs.ReadDir(iofs.fsys, fsPath)
	if err != nil {
		return nil, err
	}

	result := make([]FileInfo, 0, len(entries))
	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("failed to get file info for %s: %w", entry.Name(), err)
		}
		result = append(result, info)
	}
	sortByName(result)

	return result, nil
}

// Getwd implements pathkit.FileSystem.Getwd
func (iofs *IOFileSystem) Getwd() (string, error) {
	return "/", nil
}

// Mkdir implements pathkit.FileSystem.Mkdir
func (iofs *IOFileSystem) Mkdir(name string, perm fs.FileMode) error {
	return &fs.PathError{Op: "mkdir", Path: name, Err: fs.ErrPermission}
}

// Remove implements pathkit.FileSystem.Remove
func (iofs *IOFileSystem) Remove(name string) error {
	return &fs.PathError{Op: "remove", Path: name, Err: fs.ErrPermission}
}

// ReadFile returns the content of name below root.
func (iofs *IOFileSystem) ReadFile(name string) ([]byte, error) {
	return fs.ReadFile(iofs.fsys, iofs.resolve(name))
}
