package pathkit_test

import (
	"fmt"

	"github.com/vvka-141/pathkit/internal/files/filesystem"
	"github.com/vvka-141/pathkit/pkg/pathkit"
)

func ExampleNew() {
	p := pathkit.New(`C:\home\projects\..\music\.\Placebo`)

	fmt.Println(p.IsAbsolute(), p.Drive(), p.Len())
	fmt.Println(p.Normalized().ToSlash())
	// Output:
	// true C: 6
	// C:/home/music/Placebo
}

func ExamplePath_Join() {
	p := pathkit.New("/srv").Join("www", "../logs", "access.log")

	fmt.Println(p.ToSlash())
	fmt.Println(p.Normalized().ToSlash())
	fmt.Println(p.Basename(), p.Extension())
	// Output:
	// /srv/www/../logs/access.log
	// /srv/logs/access.log
	// access.log log
}

func ExampleWalker_Each() {
	fsys := filesystem.NewMemoryFileSystem("/")
	fsys.AddFile("/project/src/main.go", "package main")
	fsys.AddFile("/project/README.md", "# project")
	walker := pathkit.NewWalker(fsys, nil)

	_, err := walker.Each(pathkit.New("/project"), func(entry pathkit.Path) bool {
		fmt.Println(entry.ToSlash())
		return true
	}, true)
	if err != nil {
		fmt.Println("error:", err)
	}
	// Output:
	// /project/README.md
	// /project/src
	// /project/src/main.go
}
