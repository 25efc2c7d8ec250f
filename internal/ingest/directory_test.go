package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(name), 0o644))
	return path
}

func TestListDocuments_Directory(t *testing.T) {
	dir := t.TempDir()
	b := writeFile(t, dir, "b.pdf")
	a := writeFile(t, dir, "a.pdf")
	txt := writeFile(t, dir, "notes.txt")
	writeFile(t, dir, "photo.jpg")
	writeFile(t, dir, ".hidden.pdf")
	nested := writeFile(t, dir, "2024/jan.pdf")

	paths, stats, err := ListDocuments(dir, nil, true)
	require.NoError(t, err)
	assert.Equal(t, []string{nested, a, b, txt}, paths)
	assert.Equal(t, uint32(4), stats.Matched)
}

func TestListDocuments_SingleFile(t *testing.T) {
	dir := t.TempDir()
	pdf := writeFile(t, dir, "stub.pdf")

	paths, stats, err := ListDocuments(pdf, nil, true)
	require.NoError(t, err)
	assert.Equal(t, []string{pdf}, paths)
	assert.Equal(t, uint32(1), stats.Matched)
}

func TestListDocuments_SingleFileWrongType(t *testing.T) {
	dir := t.TempDir()
	jpg := writeFile(t, dir, "photo.jpg")

	_, _, err := ListDocuments(jpg, nil, true)
	assert.Error(t, err)
}

func TestListDocuments_ExtensionFilter(t *testing.T) {
	dir := t.TempDir()
	pdf := writeFile(t, dir, "a.pdf")
	writeFile(t, dir, "b.txt")

	paths, _, err := ListDocuments(dir, []string{".PDF"}, true)
	require.NoError(t, err)
	assert.Equal(t, []string{pdf}, paths)
}

func TestListDocuments_Missing(t *testing.T) {
	_, _, err := ListDocuments(filepath.Join(t.TempDir(), "nope"), nil, true)
	assert.Error(t, err)

	_, _, err = ListDocuments("  ", nil, true)
	assert.Error(t, err)
}

func TestHashFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "stub.pdf")

	h1, err := HashFile(path)
	require.NoError(t, err)
	assert.Len(t, h1, 64)

	h2, err := HashFile(path)
	require.NoError(t, err)
	assert.Equal(t, h1, h2)

	other, err := HashFile(writeFile(t, dir, "other.pdf"))
	require.NoError(t, err)
	assert.NotEqual(t, h1, other)
}
