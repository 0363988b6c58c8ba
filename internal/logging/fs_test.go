package logging

import (
	"io/fs"

	"github.com/vvka-141/pathkit/pkg/pathkit"
)

// nullFS is a filesystem where nothing exists.
type nullFS struct{}

func (nullFS) Stat(name string) (pathkit.FileInfo, error) {
	return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrNotExist}
}

func (nullFS) ReadDir(name string) ([]pathkit.FileInfo, error) {
	return nil, &fs.PathError{Op: "readdirent", Path: name, Err: fs.ErrNotExist}
}

func (nullFS) Getwd() (string, error) { return "/", nil }

func (nullFS) Mkdir(name string, perm fs.FileMode) error {
	return &fs.PathError{Op: "mkdir", Path: name, Err: fs.ErrPermission}
}

func (nullFS) Remove(name string) error {
	return &fs.PathError{Op: "remove", Path: name, Err: fs.ErrNotExist}
}
