package cli

import (
	"bytes"
	"testing"

	"github.com/vvka-141/pathkit/internal/files/filesystem"
	"github.com/vvka-141/pathkit/pkg/pathkit"
)

func resetFlags() {
	rootFlags.verbose = false
	rootFlags.configPath = ""
	normalizeFlags.slash = false
	joinFlags.normalize = false
	joinFlags.slash = false
	absFlags.slash = false
	mkdirFlags.parents = false
	walkFlags.recursive = false
	walkFlags.limit = 0
	walkFlags.ext = ""
	walkFlags.hidden = false
	walkFlags.slash = false
	walkFlags.digest = ""
	mapFlags.mappings = nil
	mapFlags.mappingsFile = ""
	mapFlags.host = "auto"

	for _, name := range []string{"recursive", "hidden"} {
		walkCmd.Flags().Lookup(name).Changed = false
	}
}

// useMemoryFS points every command at an in-memory tree rooted at /work:
//
//	/work/docs/readme.md
//	/work/docs/guide/intro.md
//	/work/notes.txt (12 bytes)
//	/work/.git/config
func useMemoryFS(t *testing.T) *filesystem.MemoryFileSystem {
	t.Helper()

	fsys := filesystem.NewMemoryFileSystem("/work")
	fsys.AddFile("/work/docs/readme.md", "# readme")
	fsys.AddFile("/work/docs/guide/intro.md", "intro")
	fsys.AddFile("/work/notes.txt", "twelve bytes")
	fsys.AddFile("/work/.git/config", "[core]")

	original := fileSystemFactory
	fileSystemFactory = func() pathkit.FileSystem { return fsys }
	t.Cleanup(func() { fileSystemFactory = original })

	return fsys
}

// executeCommand runs the root command with args and returns what it wrote.
func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	resetFlags()
	t.Setenv(pathkit.EnvConfigPath, "")
	t.Setenv(pathkit.EnvNonInteractive, "1")

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}
