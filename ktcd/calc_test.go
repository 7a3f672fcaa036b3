package ktcd

import (
	"errors"
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/rustyeddy/ktcd/instrument"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assetLeg(typ, issuer string, mtm, ttm float64) *instrument.Instrument {
	start := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	return &instrument.Instrument{
		ID:             instrument.AssetLegID,
		Type:           typ,
		StartDate:      start,
		TimeToMaturity: ttm,
		Leg:            instrument.AssetLeg{MTMDirty: mtm, IssuerType: issuer},
	}
}

func cashLeg(balance float64) *instrument.Instrument {
	return &instrument.Instrument{
		ID:   "rev_repo_cash_leg",
		Type: "reverse_repo",
		Leg:  instrument.CashLeg{Balance: balance},
	}
}

func TestEvaluate_TreasuryScenario(t *testing.T) {
	t.Parallel()

	res, err := Evaluate(assetLeg("treasury", "government", 1_000_000, 0.5), cashLeg(980_000))
	require.NoError(t, err)

	// treasury is classified IR, so it takes the supervisory duration, not 1.0
	wantDuration := (1 - math.Exp(-0.05*0.5)) / 0.05
	wantPFE := 980_000 * wantDuration * 1.0 * 0.005
	wantCollateral := (1_000_000 + 980_000) * 0.00707
	wantEV := 1_000_000 + wantPFE - wantCollateral
	want := 1.2 * wantEV * 0.016 * 1.0

	assert.Equal(t, InterestRate, res.AssetClass)
	assert.InDelta(t, wantDuration, res.Duration, 1e-12)
	assert.Equal(t, 0.005, res.SupervisoryFactor)
	assert.Equal(t, 0.016, res.RiskFactor)
	assert.Equal(t, VolatilityUpTo1Y, res.VolatilityAdjustment)
	assert.InDelta(t, wantCollateral, res.Collateral, 1e-9)
	assert.InDelta(t, wantEV, res.ExposureValue, 1e-9)
	assert.InDelta(t, want, res.Value, 1e-9)
	assert.InDelta(t, 18977.683749527, res.Value, 1e-6)
}

func TestDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		typ  string
		ttm  float64
		want float64
	}{
		{"credit", "bond", 2, (1 - math.Exp(-0.1)) / 0.05},
		{"interest rate", "treasury", 10, (1 - math.Exp(-0.5)) / 0.05},
		{"equity flat", "share", 3, 1},
		{"other flat", "cd", 3, 1},
		{"zero maturity", "bond", 0, 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c, err := New(assetLeg(tt.typ, "corporate", 100, tt.ttm), cashLeg(100))
			require.NoError(t, err)
			got, err := c.Duration()
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestVolatilityAdjustmentTiers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		ttm  float64
		want float64
	}{
		{0, VolatilityUpTo1Y},
		{0.5, VolatilityUpTo1Y},
		{1.0, VolatilityUpTo1Y},
		{1.0001, VolatilityUpTo5Y},
		{5.0, VolatilityUpTo5Y},
		{5.0001, VolatilityOver5Y},
		{30, VolatilityOver5Y},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, VolatilityAdjustment(tt.ttm), "ttm=%v", tt.ttm)
	}
}

func TestRiskFactor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		issuer string
		want   float64
	}{
		{"central_govt", 0.016},
		{"regional_govt", 0.016},
		{"government", 0.016},
		{"local_government_body", 0.016},
		{"Government", 0.08},
		{"GOVT", 0.08},
		{"corporate", 0.08},
		{"credit_institution", 0.08},
	}

	for _, tt := range tests {
		got, err := RiskFactor(tt.issuer)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, tt.issuer)
	}

	_, err := RiskFactor("")
	var missing *instrument.MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "issuer.type", missing.Field)
}

func TestExposureValueFloor(t *testing.T) {
	t.Parallel()

	for _, mtm := range []float64{-5_000_000, -1_000_000, -1, 0} {
		res, err := Evaluate(assetLeg("bond", "corporate", mtm, 2), cashLeg(1_000_000))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, res.ExposureValue, 0.0)
		assert.InDelta(t, Alpha*res.ExposureValue*res.RiskFactor*1.0, res.Value, 1e-9)
	}

	res, err := Evaluate(assetLeg("bond", "corporate", -5_000_000, 2), cashLeg(1_000_000))
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.ExposureValue)
	assert.Equal(t, 0.0, res.Value)
}

func TestEvaluateIdempotent(t *testing.T) {
	t.Parallel()

	c, err := New(assetLeg("covered_bond", "credit_institution", 5_000_000, 8), cashLeg(4_850_000))
	require.NoError(t, err)

	first, err := c.Evaluate()
	require.NoError(t, err)
	second, err := c.Evaluate()
	require.NoError(t, err)
	assert.Equal(t, first, second)

	comp, err := c.Initialize()
	require.NoError(t, err)
	assert.Equal(t, first.Components, comp)
	assert.Equal(t, first.Value, c.Calculate(comp))
	assert.Equal(t, c.Calculate(comp), c.Calculate(comp))
}

func TestEvaluateUnknownType(t *testing.T) {
	t.Parallel()

	c, err := New(assetLeg("swap", "corporate", 100, 1), cashLeg(100))
	require.NoError(t, err)

	_, err = c.Evaluate()
	var ce *ClassificationError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "swap", ce.Key)

	_, err = c.SupervisoryFactor()
	assert.ErrorAs(t, err, &ce)
	_, err = c.Initialize()
	assert.ErrorAs(t, err, &ce)
}

func TestNewRejectsWrongLegs(t *testing.T) {
	t.Parallel()

	var missing *instrument.MissingFieldError

	_, err := New(cashLeg(100), cashLeg(100))
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, instrument.RoleCash, missing.Role)

	_, err = New(assetLeg("bond", "corporate", 1, 1), assetLeg("bond", "corporate", 1, 1))
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "balance", missing.Field)

	_, err = New(nil, cashLeg(1))
	assert.Error(t, err)
}

func TestWithTables(t *testing.T) {
	t.Parallel()

	tables := NewTables(
		map[string]AssetClass{"gilt": InterestRate},
		map[string]float64{"IR": 0.01},
	)
	res, err := Evaluate(assetLeg("gilt", "central_govt", 100, 1), cashLeg(100), WithTables(tables))
	require.NoError(t, err)
	assert.Equal(t, 0.01, res.SupervisoryFactor)

	_, err = Evaluate(assetLeg("bond", "central_govt", 100, 1), cashLeg(100), WithTables(tables))
	var ce *ClassificationError
	assert.True(t, errors.As(err, &ce))
}

func TestExampleDocuments(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"data", "data1", "data2"} {
		name := name
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			doc, err := instrument.LoadFile(filepath.Join("..", "examples", name+".json"))
			require.NoError(t, err)
			assert.Equal(t, "Rev Repo Data", doc.Name)
			assert.Greater(t, len(doc.Data), 1)

			asset, cash, err := doc.Legs()
			require.NoError(t, err)

			res, err := Evaluate(asset, cash)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, res.ExposureValue, 0.0)
			assert.Contains(t, []float64{0.016, 0.08}, res.RiskFactor)
			assert.Equal(t, 1.0, res.CreditValuationAdjustment)
			assert.InDelta(t, 1.2*res.ExposureValue*res.RiskFactor*1.0, res.Value, 1e-9)
		})
	}
}
