package journal

import (
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteSchemaCreated(t *testing.T) {
	t.Parallel()

	j, path := newTestSQLite(t)
	assert.NoError(t, j.Close())

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var name string
	err = db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name = 'calculations'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "calculations", name)
}

func TestSQLiteRecordCalculation(t *testing.T) {
	t.Parallel()

	j, path := newTestSQLite(t)

	created := time.Date(2024, 6, 28, 9, 30, 0, 0, time.UTC)
	rec := sampleRecord("01J1ZB5X0000000000000000AA", created)

	require.NoError(t, j.RecordCalculation(rec))
	require.NoError(t, j.Close())

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var (
		runID     string
		gotTime   time.Time
		assetType string
		ev        float64
		value     float64
	)
	err = db.QueryRow(`
		SELECT run_id, created, asset_type, exposure_value, value
		FROM calculations LIMIT 1`).Scan(&runID, &gotTime, &assetType, &ev, &value)
	require.NoError(t, err)

	assert.Equal(t, rec.RunID, runID)
	assert.True(t, gotTime.Equal(created))
	assert.Equal(t, "treasury", assetType)
	assert.InDelta(t, rec.ExposureValue, ev, 1e-9)
	assert.InDelta(t, rec.Value, value, 1e-9)
}

func TestSQLiteDuplicateRunID(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	defer j.Close()

	rec := sampleRecord("R1", time.Now().UTC())
	require.NoError(t, j.RecordCalculation(rec))
	assert.Error(t, j.RecordCalculation(rec))
}
