// journal/csv.go
package journal

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"
)

var csvHeader = []string{
	"run_id", "created", "source", "asset_id", "asset_type", "asset_class", "cash_id",
	"time_to_maturity", "replacement_cost", "notional_amount", "duration", "effective_notional",
	"supervisory_factor", "pfe", "volatility_adjustment", "collateral", "exposure_value",
	"risk_factor", "cva", "alpha", "value",
}

type CSVJournal struct {
	w *csv.Writer
	f *os.File
}

// NewCSV opens path for appending. The header row is written only when
// the file is new or empty, so every run adds to the same history.
func NewCSV(path string) (*CSVJournal, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}

	w := csv.NewWriter(f)
	if st.Size() == 0 {
		if err := w.Write(csvHeader); err != nil {
			f.Close()
			return nil, err
		}
		w.Flush()
		if err := w.Error(); err != nil {
			f.Close()
			return nil, err
		}
	}

	return &CSVJournal{w: w, f: f}, nil
}

func (j *CSVJournal) RecordCalculation(c CalculationRecord) error {
	err := j.w.Write([]string{
		c.RunID,
		c.Created.UTC().Format(time.RFC3339),
		c.Source,
		c.AssetID,
		c.AssetType,
		c.AssetClass,
		c.CashID,
		f(c.TimeToMaturity),
		f(c.ReplacementCost),
		f(c.NotionalAmount),
		f(c.Duration),
		f(c.EffectiveNotional),
		f(c.SupervisoryFactor),
		f(c.PotentialFutureExposure),
		f(c.VolatilityAdjustment),
		f(c.Collateral),
		f(c.ExposureValue),
		f(c.RiskFactor),
		f(c.CVA),
		f(c.Alpha),
		f(c.Value),
	})
	if err != nil {
		return err
	}

	j.w.Flush()
	return j.w.Error()
}

func (j *CSVJournal) Close() error {
	j.w.Flush()
	if err := j.w.Error(); err != nil {
		j.f.Close()
		return err
	}
	return j.f.Close()
}

// f keeps full precision; regulatory values must round-trip.
func f(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}
