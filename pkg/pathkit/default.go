package pathkit

import (
	"github.com/vvka-141/pathkit/internal/files/filesystem"
)

var (
	defaultProbe  = NewProbe(filesystem.NewOSFileSystem(), nil)
	defaultWalker = NewWalker(filesystem.NewOSFileSystem(), nil)
)

// IsFile reports whether p is a regular file on the host filesystem.
func IsFile(p Path) (bool, error) {
	return defaultProbe.IsFile(p)
}

// IsDir reports whether p is a directory on the host filesystem.
func IsDir(p Path) (bool, error) {
	return defaultProbe.IsDir(p)
}

// Exists reports whether p exists on the host filesystem.
func Exists(p Path) (bool, error) {
	return defaultProbe.Exists(p)
}

// FileSize returns the size of the regular file p on the host filesystem.
func FileSize(p Path) (int64, error) {
	return defaultProbe.FileSize(p)
}

// CurrentDir returns the process working directory.
func CurrentDir() (Path, error) {
	return defaultProbe.CurrentDir()
}

// MakeAbsolute makes p absolute against the process working directory and
// normalizes it.
func MakeAbsolute(p *Path) error {
	return defaultProbe.MakeAbsolute(p)
}

// Each walks p on the host filesystem. See Walker.Each.
func Each(p Path, fn EachFunc, recursive bool) (bool, error) {
	return defaultWalker.Each(p, fn, recursive)
}

// List collects the entries under p on the host filesystem. See Walker.List.
func List(p Path, recursive bool) ([]Path, error) {
	return defaultWalker.List(p, recursive)
}
