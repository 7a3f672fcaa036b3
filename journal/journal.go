// journal/journal.go
package journal

import (
	"fmt"
	"time"

	"github.com/rustyeddy/ktcd/config"
	"github.com/rustyeddy/ktcd/ktcd"
)

// CalculationRecord is one K-TCD evaluation as it is stored.
type CalculationRecord struct {
	RunID   string
	Created time.Time
	Source  string

	AssetID    string
	AssetType  string
	AssetClass string
	CashID     string

	TimeToMaturity          float64
	ReplacementCost         float64
	NotionalAmount          float64
	Duration                float64
	EffectiveNotional       float64
	SupervisoryFactor       float64
	PotentialFutureExposure float64
	VolatilityAdjustment    float64
	Collateral              float64
	ExposureValue           float64
	RiskFactor              float64
	CVA                     float64
	Alpha                   float64
	Value                   float64
}

// FromResult flattens a calculator result into a record.
func FromResult(runID, source string, created time.Time, r ktcd.Result) CalculationRecord {
	return CalculationRecord{
		RunID:                   runID,
		Created:                 created,
		Source:                  source,
		AssetID:                 r.AssetID,
		AssetType:               r.AssetType,
		AssetClass:              string(r.AssetClass),
		CashID:                  r.CashID,
		TimeToMaturity:          r.TimeToMaturity,
		ReplacementCost:         r.ReplacementCost,
		NotionalAmount:          r.NotionalAmount,
		Duration:                r.Duration,
		EffectiveNotional:       r.EffectiveNotional,
		SupervisoryFactor:       r.SupervisoryFactor,
		PotentialFutureExposure: r.PotentialFutureExposure,
		VolatilityAdjustment:    r.VolatilityAdjustment,
		Collateral:              r.Collateral,
		ExposureValue:           r.ExposureValue,
		RiskFactor:              r.RiskFactor,
		CVA:                     r.CreditValuationAdjustment,
		Alpha:                   r.Alpha,
		Value:                   r.Value,
	}
}

type Journal interface {
	RecordCalculation(CalculationRecord) error
	Close() error
}

// Open returns the journal selected by cfg. A "none" or empty type
// returns a journal that discards everything.
func Open(cfg config.JournalConfig) (Journal, error) {
	switch cfg.Type {
	case "", "none":
		return Discard{}, nil
	case "csv":
		return NewCSV(cfg.CSVFile)
	case "sqlite":
		return NewSQLite(cfg.DBPath)
	}
	return nil, fmt.Errorf("unknown journal type %q", cfg.Type)
}

type Discard struct{}

func (Discard) RecordCalculation(CalculationRecord) error { return nil }
func (Discard) Close() error { return nil }
