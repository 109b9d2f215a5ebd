package metrics

import (
	"path/filepath"
	"testing"

	"github.com/mauv0809/fantasy-duels/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates a temporary SQLite database for testing.
func setupTestDB(t *testing.T) MetricsStore {
	t.Helper()

	db, err := database.InitDB(filepath.Join(t.TempDir(), "metrics.db"), "", "")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return New(db)
}

func TestIncrementAndGetAll(t *testing.T) {
	store := setupTestDB(t)

	counters, err := store.GetAll()
	require.NoError(t, err)
	assert.Empty(t, counters)

	store.Increment(KeyGameweeksGenerated)
	counters, err = store.GetAll()
	require.NoError(t, err)
	assert.Equal(t, map[string]int{KeyGameweeksGenerated: 1}, counters)

	store.Increment(KeyGameweeksGenerated)
	store.Increment(KeyRoundsScored)
	counters, err = store.GetAll()
	require.NoError(t, err)
	assert.Equal(t, map[string]int{
		KeyGameweeksGenerated: 2,
		KeyRoundsScored:       1,
	}, counters)
}
