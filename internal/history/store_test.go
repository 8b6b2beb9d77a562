package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openMemory(t *testing.T) *Store {
	t.Helper()
	s, err := Open(MemoryDSN)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestDigest(t *testing.T) {
	d := Digest("አትም 1;")
	assert.Len(t, d, 64)
	assert.Equal(t, d, Digest("አትም 1;"))
	assert.NotEqual(t, d, Digest("አትም 2;"))
}

func TestRecordAndRecent(t *testing.T) {
	s := openMemory(t)
	ctx := context.Background()

	first := &Run{Origin: "a.fdl", Source: "አትም 1;", Output: "1\n", CreatedAt: 100}
	second := &Run{Origin: "repl", Source: "አትም x;", Error: "1:5: Runtime Error: Undefined variable 'x'", CreatedAt: 200}
	require.NoError(t, s.Record(ctx, first))
	require.NoError(t, s.Record(ctx, second))

	assert.NotZero(t, first.ID)
	assert.Equal(t, Digest(first.Source), first.Digest)

	runs, err := s.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "repl", runs[0].Origin)
	assert.True(t, runs[0].Failed())
	assert.False(t, runs[1].Failed())

	runs, err = s.Recent(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}

func TestRecordFillsCreatedAt(t *testing.T) {
	s := openMemory(t)
	run := &Run{Origin: "x", Source: "አትም 1;"}
	require.NoError(t, s.Record(context.Background(), run))
	assert.InDelta(t, time.Now().Unix(), run.CreatedAt, 5)
}

func TestByDigest(t *testing.T) {
	s := openMemory(t)
	ctx := context.Background()
	for i, src := range []string{"አትም 1;", "አትም 2;", "አትም 1;"} {
		require.NoError(t, s.Record(ctx, &Run{Origin: "t", Source: src, CreatedAt: int64(i + 1)}))
	}

	runs, err := s.ByDigest(ctx, Digest("አትም 1;"))
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, int64(3), runs[0].CreatedAt)
}

func TestPruneThenPurge(t *testing.T) {
	s := openMemory(t)
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, s.Record(ctx, &Run{Origin: "old", Source: "a", CreatedAt: now.Add(-48 * time.Hour).Unix()}))
	require.NoError(t, s.Record(ctx, &Run{Origin: "new", Source: "b", CreatedAt: now.Unix()}))

	n, err := s.Prune(ctx, now.Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	runs, err := s.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "new", runs[0].Origin)

	var total int64
	require.NoError(t, s.DB.Unscoped().Model(&Run{}).Count(&total).Error)
	assert.Equal(t, int64(2), total)

	n, err = s.Purge(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	require.NoError(t, s.DB.Unscoped().Model(&Run{}).Count(&total).Error)
	assert.Equal(t, int64(1), total)
}

func TestOpenCreatesDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "history.db")
	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Record(context.Background(), &Run{Origin: "f", Source: "x"}))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()
	runs, err := s.Recent(context.Background(), 10)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}

func TestPrunerRunOnce(t *testing.T) {
	s := openMemory(t)
	ctx := context.Background()
	require.NoError(t, s.Record(ctx, &Run{Origin: "old", Source: "a", CreatedAt: time.Now().Add(-2 * time.Hour).Unix()}))

	p := NewPruner(s, time.Hour, nil)

	p.running.Set()
	assert.False(t, p.RunOnce(), "prune must not overlap a running one")
	p.running.UnSet()

	assert.True(t, p.RunOnce())
	runs, err := s.Recent(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestPrunerStartStop(t *testing.T) {
	s := openMemory(t)
	p := NewPruner(s, time.Hour, nil)
	require.NoError(t, p.Stop())
	require.NoError(t, p.Start(time.Hour))
	require.NoError(t, p.Stop())
}
