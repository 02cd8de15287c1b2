package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OFFIS-RIT/carekg/pkg/store"
)

func TestFileGraphStorage(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "graphs")
	s := NewFileGraphStorage(dir)
	ctx := context.Background()

	_, err := s.LoadGraph(ctx, "kg")
	assert.ErrorIs(t, err, store.ErrGraphNotFound)

	require.NoError(t, s.SaveGraph(ctx, "kg", []byte("first")))
	require.NoError(t, s.SaveGraph(ctx, "kg", []byte("second")))

	data, err := s.LoadGraph(ctx, "kg")
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), data)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "kg.kg", entries[0].Name())
}

func TestFileGraphStorageRejectsPathKeys(t *testing.T) {
	s := NewFileGraphStorage(t.TempDir())
	for _, key := range []string{"", "..", "a/b", `a\b`} {
		assert.Error(t, s.SaveGraph(context.Background(), key, []byte("x")), key)
	}
}
