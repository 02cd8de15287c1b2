package io

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/OFFIS-RIT/carekg/pkg/loader"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIOGraphFileLoaderCaches(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, loader.MedicalFileName)
	require.NoError(t, os.WriteFile(path, []byte("疾病名称: 高血压\n"), 0o644))

	l := NewIOGraphFileLoader()
	file := loader.NewGraphTextFile(loader.NewGraphFileParams{ID: "m", FilePath: path, Domain: loader.DomainMedical, Loader: l})

	first, err := file.GetText(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "疾病名称: 高血压\n", string(first))

	require.NoError(t, os.Remove(path))

	second, err := file.GetText(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestIOGraphFileLoaderMissingFile(t *testing.T) {
	l := NewIOGraphFileLoader()
	_, err := l.GetFileText(context.Background(), loader.GraphFile{ID: "x", FilePath: filepath.Join(t.TempDir(), "missing.txt")})
	assert.ErrorIs(t, err, os.ErrNotExist)
}
