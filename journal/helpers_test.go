package journal

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/rustyeddy/ktcd/config"
	"github.com/stretchr/testify/require"
)

func newTestSQLite(t *testing.T) (*SQLite, string) {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")

	j, err := NewSQLite(path)
	require.NoError(t, err)

	return j, path
}

func sampleRecord(runID string, created time.Time) CalculationRecord {
	return CalculationRecord{
		RunID:                   runID,
		Created:                 created,
		Source:                  "examples/data.json",
		AssetID:                 "rev_repo_asset_leg",
		AssetType:               "treasury",
		AssetClass:              "IR",
		CashID:                  "rev_repo_cash_leg",
		TimeToMaturity:          0.5,
		ReplacementCost:         1_000_000,
		NotionalAmount:          980_000,
		Duration:                0.49380175943334,
		EffectiveNotional:       483925.7242446732,
		SupervisoryFactor:       0.005,
		PotentialFutureExposure: 2419.628621223366,
		VolatilityAdjustment:    0.00707,
		Collateral:              13998.6,
		ExposureValue:           988421.0286212234,
		RiskFactor:              0.016,
		CVA:                     1,
		Alpha:                   1.2,
		Value:                   18977.68374952749,
	}
}

func configFor(typ, csvFile, dbPath string) config.JournalConfig {
	return config.JournalConfig{Type: typ, CSVFile: csvFile, DBPath: dbPath}
}
