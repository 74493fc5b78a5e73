// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/stan-pages/internal/index"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndList(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	first := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	second := first.Add(24 * time.Hour)

	require.NoError(t, s.Record(ctx, "examples",
		index.Stats{Scanned: 10, Created: 10}, first, 2*time.Second))
	require.NoError(t, s.Record(ctx, "examples",
		index.Stats{Scanned: 10, Updated: 10, Errors: 1}, second, time.Second))

	runs, err := s.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	// Most recent first.
	assert.True(t, runs[0].StartedAt.Equal(second))
	assert.Equal(t, 10, runs[0].Updated)
	assert.Equal(t, 1, runs[0].Errors)
	assert.Equal(t, time.Second, runs[0].Duration)

	assert.True(t, runs[1].StartedAt.Equal(first))
	assert.Equal(t, 10, runs[1].Created)
	assert.Equal(t, "examples", runs[1].Root)
}

func TestList_Limit(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		require.NoError(t, s.Record(ctx, ".",
			index.Stats{Scanned: i}, base.Add(time.Duration(i)*time.Hour), 0))
	}

	runs, err := s.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, 4, runs[0].Scanned)
	assert.Equal(t, 3, runs[1].Scanned)
}

func TestList_Empty(t *testing.T) {
	s := openTestStore(t)

	runs, err := s.List(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, runs)
}
