package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tolu-akinola/paystub-tracker/internal/repository"
)

func TestProcessFile_CacheRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "jan.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4 stub"), 0o644))

	runs, err := repository.NewSQLiteRuns(filepath.Join(dir, "runs.db"), nil)
	require.NoError(t, err)
	defer runs.Close()

	text := &fakeText{texts: map[string]string{path: janStub}}
	p := NewPipeline(nil, Config{UseCache: true}, text, nil, runs)
	ctx := context.Background()

	rec, cached, err := p.ProcessFile(ctx, path)
	require.NoError(t, err)
	assert.False(t, cached)
	require.Greater(t, rec.Len(), 0)

	// Second pass is served from the cache with the same fields in the
	// same order.
	again, cached, err := p.ProcessFile(ctx, path)
	require.NoError(t, err)
	assert.True(t, cached)
	assert.Equal(t, rec.Keys(), again.Keys())
	v, _ := again.Get("Pay Date")
	assert.Equal(t, "01/22/2024", v)

	// Changed content misses the cache.
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4 stub v2"), 0o644))
	_, cached, err = p.ProcessFile(ctx, path)
	require.NoError(t, err)
	assert.False(t, cached)
}

func TestProcessFile_NoCacheFlag(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "jan.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4 stub"), 0o644))

	runs, err := repository.NewSQLiteRuns(filepath.Join(dir, "runs.db"), nil)
	require.NoError(t, err)
	defer runs.Close()

	text := &fakeText{texts: map[string]string{path: janStub}}
	p := NewPipeline(nil, Config{UseCache: false}, text, nil, runs)
	ctx := context.Background()

	_, cached, err := p.ProcessFile(ctx, path)
	require.NoError(t, err)
	assert.False(t, cached)

	// Runs are still recorded, but never read back.
	_, cached, err = p.ProcessFile(ctx, path)
	require.NoError(t, err)
	assert.False(t, cached)
}
