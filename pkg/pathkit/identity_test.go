package pathkit_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/vvka-141/pathkit/pkg/pathkit"
)

func TestIdentity(t *testing.T) {
	id := pathkit.New("a/c").Identity()

	assert.Equal(t, uuid.Version(5), id.Version())
	assert.Equal(t, id, pathkit.New("a/./b/../c").Identity())
	assert.Equal(t, id, pathkit.New(`a\c\`).Identity())
	assert.NotEqual(t, id, pathkit.New("/a/c").Identity())
	assert.NotEqual(t, id, pathkit.New("a/c/d").Identity())
}

func TestIdentity_Deterministic(t *testing.T) {
	want := uuid.NewSHA1(pathkit.NamespacePathIdentity, []byte("C:/data"))

	assert.Equal(t, want, pathkit.New(`C:\data`).Identity())
	assert.Equal(t, want, pathkit.New("C:/data").Identity())
}
