package journal

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

type scanner interface {
	Scan(dest ...any) error
}

func scanCalculation(s scanner) (CalculationRecord, error) {
	var c CalculationRecord
	err := s.Scan(
		&c.RunID, &c.Created, &c.Source, &c.AssetID, &c.AssetType, &c.AssetClass, &c.CashID,
		&c.TimeToMaturity, &c.ReplacementCost, &c.NotionalAmount, &c.Duration, &c.EffectiveNotional,
		&c.SupervisoryFactor, &c.PotentialFutureExposure, &c.VolatilityAdjustment, &c.Collateral, &c.ExposureValue,
		&c.RiskFactor, &c.CVA, &c.Alpha, &c.Value,
	)
	return c, err
}

// GetCalculation returns a single calculation by run ID.
func (j *SQLite) GetCalculation(runID string) (CalculationRecord, error) {
	row := j.db.QueryRow(`
		SELECT `+calculationColumns+`
		FROM calculations
		WHERE run_id = ?`, runID)

	rec, err := scanCalculation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CalculationRecord{}, fmt.Errorf("calculation %q not found", runID)
		}
		return CalculationRecord{}, err
	}
	return rec, nil
}

// ListCalculationsBetween returns calculations created within [start, end).
func (j *SQLite) ListCalculationsBetween(start, end time.Time) ([]CalculationRecord, error) {
	rows, err := j.db.Query(`
		SELECT `+calculationColumns+`
		FROM calculations
		WHERE created >= ? AND created < ?
		ORDER BY created ASC, run_id ASC`, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []CalculationRecord
	for rows.Next() {
		rec, err := scanCalculation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListCalculations returns the most recent calculations, newest first.
func (j *SQLite) ListCalculations(limit int) ([]CalculationRecord, error) {
	rows, err := j.db.Query(`
		SELECT `+calculationColumns+`
		FROM calculations
		ORDER BY run_id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []CalculationRecord
	for rows.Next() {
		rec, err := scanCalculation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
