// Package filesystem provides the operating system primitives consumed by
// pathkit's probe and walker.
//
// Every implementation offers the same small surface: Stat, ReadDir, Getwd,
// Mkdir and Remove. Missing paths are reported with errors matching
// fs.ErrNotExist, and reading a non-directory reports syscall.ENOTDIR, so
// callers can tell absence apart from real faults.
//
// Implementations:
//   - OSFileSystem: Production implementation using the os package
//   - MemoryFileSystem: In-memory implementation for testing, with fault injection
//   - IOFileSystem: Read-only adapter over any fs.FS (embed.FS, fstest.MapFS)
package filesystem
