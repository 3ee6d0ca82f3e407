package loads

import (
	"context"
	"testing"
	"time"

	"github.com/de-tools/finsync/pkg/models/store"
	"github.com/de-tools/finsync/pkg/store/duckdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadStore(t *testing.T) {
	db, err := duckdb.NewDB(duckdb.Settings{DbPath: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	s, err := NewStore(db)
	require.NoError(t, err)
	ctx := context.Background()

	last, err := s.Last(ctx)
	require.NoError(t, err)
	assert.Nil(t, last)

	first := store.LoadRun{
		Source:       "generator",
		RecordsCount: 10,
		FirstDate:    "2024-01-01",
		LastDate:     "2024-01-10",
		LoadedAt:     time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC),
	}
	second := first
	second.RecordsCount = 20
	second.LoadedAt = first.LoadedAt.Add(time.Hour)

	require.NoError(t, s.Record(ctx, first))
	require.NoError(t, s.Record(ctx, second))

	last, err = s.Last(ctx)
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, int64(20), last.RecordsCount)
	assert.Equal(t, "2024-01-01", last.FirstDate)
	assert.True(t, second.LoadedAt.Equal(last.LoadedAt))
}
