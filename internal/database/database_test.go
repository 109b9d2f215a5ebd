package database

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDB_CreatesTables(t *testing.T) {
	db, err := InitDB(":memory:", "", "")
	require.NoError(t, err, "InitDB should not return an error")
	defer db.Close()

	for _, table := range []string{"teams", "scores", "weekly_matchups", "metrics"} {
		var name string
		err = db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		require.NoError(t, err, "Querying for %s table should not produce an error", table)
		assert.Equal(t, table, name)
	}
}

func TestInitDB_IsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "league.db")

	db, err := InitDB(path, "", "")
	require.NoError(t, err)
	_, err = db.Exec("INSERT INTO teams (name) VALUES ('Team Alpha')")
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = InitDB(path, "", "")
	require.NoError(t, err)
	defer db.Close()

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM teams").Scan(&count))
	assert.Equal(t, 1, count, "reopening must not reset existing data")

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestInitDB_EnforcesForeignKeys(t *testing.T) {
	db, err := InitDB(":memory:", "", "")
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec("INSERT INTO scores (matchday, team_id, points, updated_at) VALUES ('J1', 42, 10, 0)")
	assert.Error(t, err, "scores must reference an existing team")
}
