package journal

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLite{db: db}, nil
}

func (j *SQLite) RecordCalculation(c CalculationRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO calculations (`+calculationColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.RunID, c.Created, c.Source, c.AssetID, c.AssetType, c.AssetClass, c.CashID,
		c.TimeToMaturity, c.ReplacementCost, c.NotionalAmount, c.Duration, c.EffectiveNotional,
		c.SupervisoryFactor, c.PotentialFutureExposure, c.VolatilityAdjustment, c.Collateral, c.ExposureValue,
		c.RiskFactor, c.CVA, c.Alpha, c.Value,
	)
	return err
}

func (j *SQLite) Close() error {
	return j.db.Close()
}
