package filesystem

import (
	"io/fs"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"
)

// memoryFileInfo implements fs.FileInfo for in-memory files
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	isDir   bool
	content []byte
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.isDir }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

// MemoryFileSystem implements pathkit.FileSystem in memory for testing.
// Paths use forward slashes; relative names resolve against the working
// directory given to NewMemoryFileSystem. Safe for concurrent use.
type MemoryFileSystem struct {
	mu     sync.RWMutex
	files  map[string]*memoryFileInfo // map of absolute path -> metadata
	faults map[string]error           // map of absolute path -> injected error
	cwd    string
}

// NewMemoryFileSystem creates a new in-memory filesystem whose working
// directory is cwd. The working directory and its parents are created.
func NewMemoryFileSystem(cwd string) *MemoryFileSystem {
	cwd = path.Clean("/" + filepath.ToSlash(cwd))

	mfs := &MemoryFileSystem{
		files:  make(map[string]*memoryFileInfo),
		faults: make(map[string]error),
		cwd:    cwd,
	}
	mfs.files["/"] = newDirInfo("/")
	mfs.ensureDirectoriesExist(cwd)

	return mfs
}

func newDirInfo(absPath string) *memoryFileInfo {
	return &memoryFileInfo{
		name:    path.Base(absPath),
		mode:    0755 | fs.ModeDir,
		modTime: time.Now(),
		isDir:   true,
	}
}

// resolve turns a name into an absolute slash path. Both separators are
// accepted.
func (mfs *MemoryFileSystem) resolve(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	if name == "" || name == "." {
		return mfs.cwd
	}
	if strings.HasPrefix(name, "/") {
		return path.Clean(name)
	}
	return path.Join(mfs.cwd, name)
}

// AddFile adds a file to the in-memory filesystem
func (mfs *MemoryFileSystem) AddFile(filePath string, content string) {
	mfs.AddFileWithTime(filePath, content, time.Now())
}

// AddFileWithTime adds a file with a specific modification time.
// Missing parent directories are created.
func (mfs *MemoryFileSystem) AddFileWithTime(filePath string, content string, modTime time.Time) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	absPath := mfs.resolve(filePath)
	mfs.ensureDirectoriesExist(path.Dir(absPath))
	mfs.files[absPath] = &memoryFileInfo{
		name:    path.Base(absPath),
		size:    int64(len(content)),
		mode:    0644,
		modTime: modTime,
		isDir:   false,
		content: []byte(content),
	}
}

// AddDir adds a directory and its missing parents.
func (mfs *MemoryFileSystem) AddDir(dirPath string) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	mfs.ensureDirectoriesExist(mfs.resolve(dirPath))
}

// InjectError makes every operation on name fail with err, wrapped in an
// *fs.PathError. A nil err removes the fault.
func (mfs *MemoryFileSystem) InjectError(name string, err error) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	absPath := mfs.resolve(name)
	if err == nil {
		delete(mfs.faults, absPath)
		return
	}
	mfs.faults[absPath] = err
}

// Chdir changes the working directory used to resolve relative names.
func (mfs *MemoryFileSystem) Chdir(dir string) error {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	absPath := mfs.resolve(dir)
	if _, err := mfs.lookup("chdir", dir, absPath); err != nil {
		return err
	}
	if !mfs.files[absPath].isDir {
		return &fs.PathError{Op: "chdir", Path: dir, Err: syscall.ENOTDIR}
	}
	mfs.cwd = absPath
	return nil
}

// ensureDirectoriesExist creates directory entries for dir and all its parents
func (mfs *MemoryFileSystem) ensureDirectoriesExist(dir string) {
	if _, exists := mfs.files[dir]; exists {
		return
	}
	mfs.files[dir] = newDirInfo(dir)
	mfs.ensureDirectoriesExist(path.Dir(dir))
}

// lookup returns the entry at absPath, or the error the OS would give: an
// injected fault, ENOTDIR when an ancestor is a file, ErrNotExist otherwise.
func (mfs *MemoryFileSystem) lookup(op, name, absPath string) (*memoryFileInfo, error) {
	if err, ok := mfs.faults[absPath]; ok {
		return nil, &fs.PathError{Op: op, Path: name, Err: err}
	}
	if info, ok := mfs.files[absPath]; ok {
		return info, nil
	}
	for dir := path.Dir(absPath); dir != "/"; dir = path.Dir(dir) {
		if info, ok := mfs.files[dir]; ok && !info.isDir {
			return nil, &fs.PathError{Op: op, Path: name, Err: syscall.ENOTDIR}
		}
	}
	return nil, &fs.PathError{Op: op, Path: name, Err: fs.ErrNotExist}
}

// Stat implements pathkit.FileSystem.Stat
func (mfs *MemoryFileSystem) Stat(name string) (FileInfo, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	info, err := mfs.lookup("stat", name, mfs.resolve(name))
	if err != nil {
		return nil, err
	}
	return info, nil
}

// ReadDir implements pathkit.FileSystem.ReadDir
func (mfs *MemoryFileSystem) ReadDir(name string) ([]FileInfo, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	absPath := mfs.resolve(name)
	info, err := mfs.lookup("readdirent", name, absPath)
	if err != nil {
		return nil, err
	}
	if !info.isDir {
		return nil, &fs.PathError{Op: "readdirent", Path: name, Err: syscall.ENOTDIR}
	}

	var entries []FileInfo
	for p, child := range mfs.files {
		if p != absPath && path.Dir(p) == absPath {
			entries = append(entries, child)
		}
	}
	sortByName(entries)

	return entries, nil
}

// Getwd implements pathkit.FileSystem.Getwd
func (mfs *MemoryFileSystem) Getwd() (string, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	return mfs.cwd, nil
}

// Mkdir implements pathkit.FileSystem.Mkdir
func (mfs *MemoryFileSystem) Mkdir(name string, perm fs.FileMode) error {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	absPath := mfs.resolve(name)
	if err, ok := mfs.faults[absPath]; ok {
		return &fs.PathError{Op: "mkdir", Path: name, Err: err}
	}
	if _, exists := mfs.files[absPath]; exists {
		return &fs.PathError{Op: "mkdir", Path: name, Err: fs.ErrExist}
	}
	parent, err := mfs.lookup("mkdir", name, path.Dir(absPath))
	if err != nil {
		return err
	}
	if !parent.isDir {
		return &fs.PathError{Op: "mkdir", Path: name, Err: syscall.ENOTDIR}
	}

	info := newDirInfo(absPath)
	info.mode = perm | fs.ModeDir
	mfs.files[absPath] = info
	return nil
}

// Remove implements pathkit.FileSystem.Remove
func (mfs *MemoryFileSystem) Remove(name string) error {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	absPath := mfs.resolve(name)
	info, err := mfs.lookup("remove", name, absPath)
	if err != nil {
		return err
	}
	if info.isDir {
		for p := range mfs.files {
			if p != absPath && path.Dir(p) == absPath {
				return &fs.PathError{Op: "remove", Path: name, Err: syscall.ENOTEMPTY}
			}
		}
	}
	delete(mfs.files, absPath)
	return nil
}

// ReadFile returns a copy of the content of the file name.
func (mfs *MemoryFileSystem) ReadFile(name string) ([]byte, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	info, err := mfs.lookup("open", name, mfs.resolve(name))
	if err != nil {
		return nil, err
	}
	if info.isDir {
		return nil, &fs.PathError{Op: "read", Path: name, Err: syscall.EISDIR}
	}

	content := make([]byte, len(info.content))
	copy(content, info.content)
	return content, nil
}
