package pathkit_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vvka-141/pathkit/internal/files/filesystem"
	"github.com/vvka-141/pathkit/pkg/pathkit"
)

func slashes(paths []pathkit.Path) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = p.ToSlash()
	}
	return out
}

func TestNewWalker_NilFileSystem(t *testing.T) {
	assert.Panics(t, func() { pathkit.NewWalker(nil, nil) })
}

func TestWalker_Each_Flat(t *testing.T) {
	walker := pathkit.NewWalker(newTestFS(), nil)

	var visited []string
	completed, err := walker.Each(pathkit.New("/work"), func(entry pathkit.Path) bool {
		visited = append(visited, entry.ToSlash())
		return true
	}, false)

	require.NoError(t, err)
	assert.True(t, completed)
	assert.Equal(t, []string{"/work/docs", "/work/empty", "/work/notes.txt"}, visited)
}

func TestWalker_Each_RecursivePreOrder(t *testing.T) {
	walker := pathkit.NewWalker(newTestFS(), nil)

	paths, err := walker.List(pathkit.New("/work"), true)

	require.NoError(t, err)
	assert.Equal(t, []string{
		"/work/docs",
		"/work/docs/guide",
		"/work/docs/guide/intro.md",
		"/work/docs/readme.md",
		"/work/empty",
		"/work/notes.txt",
	}, slashes(paths))
}

func TestWalker_Each_RelativeRoot(t *testing.T) {
	walker := pathkit.NewWalker(newTestFS(), nil)

	paths, err := walker.List(pathkit.New("docs"), true)
	require.NoError(t, err)
	assert.Equal(t, []string{"docs/guide", "docs/guide/intro.md", "docs/readme.md"}, slashes(paths))

	paths, err = walker.List(pathkit.Path{}, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"docs", "empty", "notes.txt"}, slashes(paths))
}

func TestWalker_Each_ShortCircuit(t *testing.T) {
	fsys := filesystem.NewMemoryFileSystem("/")
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		fsys.AddFile("/dir/"+name, name)
	}
	walker := pathkit.NewWalker(fsys, nil)

	calls := 0
	completed, err := walker.Each(pathkit.New("/dir"), func(entry pathkit.Path) bool {
		calls++
		return calls < 2
	}, false)

	require.NoError(t, err)
	assert.False(t, completed)
	assert.Equal(t, 2, calls)
}

func TestWalker_Each_ShortCircuitInsideRecursion(t *testing.T) {
	walker := pathkit.NewWalker(newTestFS(), nil)

	var visited []string
	completed, err := walker.Each(pathkit.New("/work"), func(entry pathkit.Path) bool {
		visited = append(visited, entry.ToSlash())
		return entry.Basename() != "intro.md"
	}, true)

	require.NoError(t, err)
	assert.False(t, completed)
	assert.Equal(t, []string{"/work/docs", "/work/docs/guide", "/work/docs/guide/intro.md"}, visited)
}

func TestWalker_Each_NotADirectory(t *testing.T) {
	walker := pathkit.NewWalker(newTestFS(), nil)

	for _, root := range []string{"/work/notes.txt", "/work/missing", "/work/notes.txt/x"} {
		t.Run(root, func(t *testing.T) {
			calls := 0
			completed, err := walker.Each(pathkit.New(root), func(pathkit.Path) bool {
				calls++
				return true
			}, true)

			require.NoError(t, err)
			assert.True(t, completed)
			assert.Zero(t, calls)
		})
	}
}

func TestWalker_Each_EmptyDirectory(t *testing.T) {
	walker := pathkit.NewWalker(newTestFS(), nil)

	paths, err := walker.List(pathkit.New("/work/empty"), true)

	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestWalker_Each_NilCallback(t *testing.T) {
	walker := pathkit.NewWalker(newTestFS(), nil)

	completed, err := walker.Each(pathkit.New("/work"), nil, true)

	require.NoError(t, err)
	assert.True(t, completed)
}

func TestWalker_Each_ListingFault(t *testing.T) {
	fsys := newTestFS()
	walker := pathkit.NewWalker(fsys, nil)
	fsys.InjectError("/work/docs", fs.ErrPermission)

	var visited []string
	completed, err := walker.Each(pathkit.New("/work"), func(entry pathkit.Path) bool {
		visited = append(visited, entry.ToSlash())
		return true
	}, true)

	assert.False(t, completed)
	assert.ErrorIs(t, err, pathkit.ErrIO)
	assert.ErrorIs(t, err, fs.ErrPermission)
	assert.Equal(t, []string{"/work/docs"}, visited)

	_, err = walker.List(pathkit.New("/work/docs"), false)
	assert.ErrorIs(t, err, pathkit.ErrIO)
}

func TestWalker_Each_CallbackPanic(t *testing.T) {
	walker := pathkit.NewWalker(newTestFS(), nil)

	calls := 0
	completed, err := walker.Each(pathkit.New("/work"), func(entry pathkit.Path) bool {
		calls++
		if entry.Basename() == "empty" {
			panic("boom")
		}
		return true
	}, false)

	assert.False(t, completed)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "panicked")
	assert.Contains(t, err.Error(), "boom")
	assert.Equal(t, 2, calls)
}

func TestWalker_Each_CallbackMayMutateTree(t *testing.T) {
	fsys := newTestFS()
	walker := pathkit.NewWalker(fsys, nil)

	var visited []string
	_, err := walker.Each(pathkit.New("/work"), func(entry pathkit.Path) bool {
		visited = append(visited, entry.Basename())
		if entry.Basename() == "docs" {
			require.NoError(t, fsys.Remove("/work/notes.txt"))
		}
		return true
	}, false)

	require.NoError(t, err)
	assert.Equal(t, []string{"docs", "empty", "notes.txt"}, visited)
}

func TestWalker_HostFileSystem(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "real", "inner"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "real", "inner", "f.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "top.txt"), []byte("y"), 0o644))

	root := pathkit.New(dir)
	paths, err := pathkit.List(root, true)
	require.NoError(t, err)

	var names []string
	for _, p := range paths {
		rel, err := filepath.Rel(dir, p.String())
		require.NoError(t, err)
		names = append(names, filepath.ToSlash(rel))
	}
	assert.Equal(t, []string{"real", "real/inner", "real/inner/f.txt", "top.txt"}, names)

	calls := 0
	completed, err := pathkit.Each(root, func(pathkit.Path) bool {
		calls++
		return false
	}, true)
	require.NoError(t, err)
	assert.False(t, completed)
	assert.Equal(t, 1, calls)
}

func relativeNames(t *testing.T, dir string, paths []pathkit.Path) []string {
	t.Helper()
	var names []string
	for _, p := range paths {
		rel, err := filepath.Rel(dir, p.String())
		require.NoError(t, err)
		names = append(names, filepath.ToSlash(rel))
	}
	return names
}

func TestWalker_SymlinkedDirectoryIsDescended(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need elevated privileges on windows")
	}

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "real"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "real", "f"), nil, 0o644))
	require.NoError(t, os.Symlink(filepath.Join(dir, "real"), filepath.Join(dir, "link")))
	require.NoError(t, os.Symlink(filepath.Join(dir, "gone"), filepath.Join(dir, "dangling")))

	paths, err := pathkit.List(pathkit.New(dir), true)
	require.NoError(t, err)
	assert.Equal(t, []string{"dangling", "link", "link/f", "real", "real/f"}, relativeNames(t, dir, paths))

	ok, err := pathkit.IsDir(pathkit.New(dir).Join("link"))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestWalker_SymlinkCycleIsNotFollowed(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need elevated privileges on windows")
	}

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "real"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "real", "f"), nil, 0o644))
	require.NoError(t, os.Symlink(filepath.Join(dir, "real"), filepath.Join(dir, "real", "loop")))
	require.NoError(t, os.Symlink(dir, filepath.Join(dir, "real", "up")))

	paths, err := pathkit.List(pathkit.New(dir), true)
	require.NoError(t, err)
	assert.Equal(t, []string{"real", "real/f", "real/loop", "real/up"}, relativeNames(t, dir, paths))
}
