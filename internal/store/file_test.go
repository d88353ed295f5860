package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name string `json:"name"`
	N    int    `json:"n"`
}

func TestFileStoreRoundTrip(t *testing.T) {
	st, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	in := payload{Name: "María", N: 3}
	require.NoError(t, st.Save(SlotProfile, in))

	var out payload
	ok, err := st.Load(SlotProfile, &out)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, in, out)
}

func TestFileStoreMissingSlot(t *testing.T) {
	st, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	var out payload
	ok, err := st.Load(SlotHistory, &out)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileStoreCorruptSlot(t *testing.T) {
	dir := t.TempDir()
	st, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, SlotProfile+".json"), []byte("{not json"), 0600))

	var out payload
	ok, err := st.Load(SlotProfile, &out)
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestFileStoreReset(t *testing.T) {
	st, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, st.Save(SlotProfile, payload{Name: "a"}))
	require.NoError(t, st.Save(SlotHistory, []payload{{Name: "b"}}))

	require.NoError(t, st.Reset())

	var out payload
	ok, err := st.Load(SlotProfile, &out)
	require.NoError(t, err)
	assert.False(t, ok)
	ok, err = st.Load(SlotHistory, &out)
	require.NoError(t, err)
	assert.False(t, ok)

	// Resetting empty slots is not an error.
	assert.NoError(t, st.Reset())
}

func TestFileStoreCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "deep")
	_, err := NewFileStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
