// Package pathkit provides a value type for filesystem paths together with
// lexical and filesystem operations on it.
//
// A Path is parsed once by New and kept as a drive designator, an absolute
// flag and a list of components. Parsing accepts both '/' and '\' and never
// fails. Rendering uses the host separator (String) or an explicit one
// (Fullname, ToSlash).
//
// Lexical operations never touch the disk:
//
//	p := pathkit.New("a/./b/../c")
//	p.Normalize()                    // "a/c"
//	q := pathkit.Join("/srv", "www") // "/srv/www", not normalized
//	q.Extension()                    // ""
//
// Filesystem questions go through a Probe and directory enumeration through
// a Walker. Both sit on top of the FileSystem interface so that tests can use
// an in-memory implementation. The package level functions (IsFile, IsDir,
// Each, ...) use the host filesystem.
//
// A path that does not exist is never an error: probes answer false and a
// walk over it visits nothing. Other faults are returned wrapped with ErrIO.
package pathkit
