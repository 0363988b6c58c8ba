package pathkit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vvka-141/pathkit/pkg/pathkit"
)

func TestExtension(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"archive.tar.gz", "gz"},
		{"/src/main.go", "go"},
		{"README", ""},
		{".gitignore", ""},
		{"dir.d/file", ""},
		{"trailing.", ""},
		{"a/b.C", "C"},
		{"..", ""},
		{"", ""},
		{"/", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, pathkit.New(tt.input).Extension())
		})
	}
}

func TestHasExtension(t *testing.T) {
	p := pathkit.New("/music/track.MP3")

	assert.True(t, p.HasExtension("mp3"))
	assert.True(t, p.HasExtension(".mp3"))
	assert.True(t, p.HasExtension("MP3"))
	assert.False(t, p.HasExtension("mp"))
	assert.False(t, pathkit.New("README").HasExtension("md"))
	assert.True(t, pathkit.New("README").HasExtension(""))
}

func TestBasenameDirname(t *testing.T) {
	tests := []struct {
		input    string
		basename string
		dirname  string
	}{
		{"/a/b/c.txt", "c.txt", "/a/b"},
		{"a/b", "b", "a"},
		{"a", "a", ""},
		{"/a", "a", "/"},
		{"/", "", ""},
		{"", "", ""},
		{"C:/data", "data", "C:/"},
		{"../x", "x", ".."},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p := pathkit.New(tt.input)
			assert.Equal(t, tt.basename, p.Basename())
			assert.Equal(t, tt.dirname, pathkit.New(p.Dirname()).ToSlash())
		})
	}
}

func TestBasenameDirname_Recompose(t *testing.T) {
	inputs := []string{"/a/b/c.txt", "a/b", "x", "/top", "C:/dir/file", "../up/here"}

	for _, in := range inputs {
		p := pathkit.New(in)
		recomposed := pathkit.Join(p.Dirname(), p.Basename())
		assert.Equal(t, p.ToSlash(), recomposed.ToSlash(), "join(dirname, basename) of %q", in)
	}
}

func TestParent(t *testing.T) {
	assert.Equal(t, "/a", pathkit.New("/a/b").Parent().ToSlash())
	assert.Equal(t, "/", pathkit.New("/a").Parent().ToSlash())
	assert.Equal(t, "/", pathkit.New("/").Parent().ToSlash())
	assert.Equal(t, "", pathkit.New("a").Parent().ToSlash())
}
