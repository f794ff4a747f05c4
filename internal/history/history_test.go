package history

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddSkipsBlankAndRepeats(t *testing.T) {
	m, err := NewManager("", 10)
	require.NoError(t, err)

	m.Add("pwd")
	m.Add("pwd")
	m.Add("   ")
	m.Add(" list ")
	m.Add("pwd")

	assert.Equal(t, []string{"pwd", "list", "pwd"}, m.GetAll())
}

func TestAddCapsEntries(t *testing.T) {
	m, err := NewManager("", 2)
	require.NoError(t, err)

	m.Add("a")
	m.Add("b")
	m.Add("c")

	assert.Equal(t, []string{"b", "c"}, m.GetAll())
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "history")

	m, err := NewManager(path, 3)
	require.NoError(t, err)
	assert.Empty(t, m.GetAll())

	for _, e := range []string{"one", "two", "three", "four"} {
		m.Add(e)
	}
	require.NoError(t, m.Save())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "two\nthree\nfour\n", string(data))

	reloaded, err := NewManager(path, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"three", "four"}, reloaded.GetAll())
}
