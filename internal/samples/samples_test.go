package samples

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalog(t *testing.T, files ...string) *Catalog {
	t.Helper()
	dir := t.TempDir()
	for _, f := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, f), []byte("// "+f+"\n"), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.fdl"), 0o755))
	return New(dir, ".fdl")
}

func TestList(t *testing.T) {
	c := newCatalog(t, "loops.fdl", "hello.fdl", "notes.txt")

	all, err := c.List()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "hello", all[0].Name)
	assert.Equal(t, filepath.Join(c.Dir, "hello.fdl"), all[0].Path)
	assert.Equal(t, "loops", all[1].Name)
}

func TestListMissingDir(t *testing.T) {
	all, err := New(filepath.Join(t.TempDir(), "nope"), ".fdl").List()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestFind(t *testing.T) {
	c := newCatalog(t, "fibonacci.fdl", "factorial.fdl", "hello.fdl")

	s, err := c.Find("hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", s.Name)

	s, err = c.Find("hello.fdl")
	require.NoError(t, err)
	assert.Equal(t, "hello", s.Name)

	s, err = c.Find("FIBO")
	require.NoError(t, err)
	assert.Equal(t, "fibonacci", s.Name)

	s, err = c.Find("fctrl")
	require.NoError(t, err)
	assert.Equal(t, "factorial", s.Name)

	_, err = c.Find("zzz")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestRead(t *testing.T) {
	c := newCatalog(t, "hello.fdl")
	s, src, err := c.Read("hel")
	require.NoError(t, err)
	assert.Equal(t, "hello", s.Name)
	assert.Equal(t, "// hello.fdl\n", src)
}
