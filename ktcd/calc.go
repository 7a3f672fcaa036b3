// Package ktcd computes the K-TCD own funds requirement (Article 26 IFR)
// for a single repurchase transaction made of an asset leg and a cash leg.
package ktcd

import (
	"fmt"
	"math"
	"strings"

	"github.com/rustyeddy/ktcd/instrument"
)

const (
	// Alpha is the exposure value multiplier of Article 27 IFR.
	Alpha = 1.2

	durationRate = 0.05

	riskFactorGovernment = 0.016
	riskFactorOther      = 0.08
)

// Volatility adjustments by residual maturity of the security leg.
const (
	VolatilityUpTo1Y = 0.00707
	VolatilityUpTo5Y = 0.02121
	VolatilityOver5Y = 0.04243
)

// Components are the three factors that make up the requirement.
type Components struct {
	ExposureValue             float64 `json:"exposure_value"`
	RiskFactor                float64 `json:"risk_factor"`
	CreditValuationAdjustment float64 `json:"cva"`
}

// Result is a complete evaluation with every intermediate value.
type Result struct {
	AssetID   string `json:"asset_id"`
	AssetType string `json:"asset_type"`
	CashID    string `json:"cash_id"`

	AssetClass     AssetClass `json:"asset_class"`
	TimeToMaturity float64    `json:"time_to_maturity"`

	ReplacementCost         float64 `json:"replacement_cost"`
	NotionalAmount          float64 `json:"notional_amount"`
	Duration                float64 `json:"duration"`
	SupervisoryDelta        float64 `json:"supervisory_delta"`
	EffectiveNotional       float64 `json:"effective_notional"`
	SupervisoryFactor       float64 `json:"supervisory_factor"`
	PotentialFutureExposure float64 `json:"pfe"`
	VolatilityAdjustment    float64 `json:"volatility_adjustment"`
	Collateral              float64 `json:"collateral"`

	Components
	Alpha float64 `json:"alpha"`
	Value float64 `json:"value"`
}

type Option func(*Calculator)

// WithTables replaces the default regulatory tables.
func WithTables(t *Tables) Option {
	return func(c *Calculator) { c.tables = t }
}

// Calculator evaluates one asset leg against one cash leg. It holds no
// mutable state, so every method may be called any number of times.
type Calculator struct {
	asset    *instrument.Instrument
	cash     *instrument.Instrument
	assetLeg instrument.AssetLeg
	cashLeg  instrument.CashLeg
	tables   *Tables
	alpha    float64
}

// New checks that asset and cash carry the expected leg variants.
func New(asset, cash *instrument.Instrument, opts ...Option) (*Calculator, error) {
	if asset == nil || cash == nil {
		return nil, fmt.Errorf("ktcd: both legs are required")
	}
	a, err := asset.AssetLeg()
	if err != nil {
		return nil, fmt.Errorf("asset leg %s: %w", asset.ID, err)
	}
	cl, err := cash.CashLeg()
	if err != nil {
		return nil, fmt.Errorf("cash leg %s: %w", cash.ID, err)
	}

	c := &Calculator{
		asset:    asset,
		cash:     cash,
		assetLeg: a,
		cashLeg:  cl,
		tables:   DefaultTables(),
		alpha:    Alpha,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Evaluate is New followed by Calculator.Evaluate.
func Evaluate(asset, cash *instrument.Instrument, opts ...Option) (Result, error) {
	c, err := New(asset, cash, opts...)
	if err != nil {
		return Result{}, err
	}
	return c.Evaluate()
}

// ReplacementCost is the cash lent (positive) or borrowed (negative),
// taken from the dirty market value of the security leg (Article 28).
func (c *Calculator) ReplacementCost() float64 {
	return c.assetLeg.MTMDirty
}

func (c *Calculator) NotionalAmount() float64 {
	return c.cashLeg.Balance
}

// AssetClass classifies the security leg.
func (c *Calculator) AssetClass() (AssetClass, error) {
	return c.tables.Class(c.asset.Type)
}

// Duration is the supervisory duration for credit and interest rate
// securities and 1 for everything else.
func (c *Calculator) Duration() (float64, error) {
	class, err := c.AssetClass()
	if err != nil {
		return 0, err
	}
	return duration(class, c.asset.TimeToMaturity), nil
}

func duration(class AssetClass, ttm float64) float64 {
	if class != Credit && class != InterestRate {
		return 1
	}
	return (1 - math.Exp(-durationRate*ttm)) / durationRate
}

// SupervisoryDelta is 1 for anything that is not an option (Article 29(6)).
func (c *Calculator) SupervisoryDelta() float64 {
	return 1
}

func (c *Calculator) EffectiveNotional() (float64, error) {
	d, err := c.Duration()
	if err != nil {
		return 0, err
	}
	return c.NotionalAmount() * d * c.SupervisoryDelta(), nil
}

func (c *Calculator) SupervisoryFactor() (float64, error) {
	return c.tables.SupervisoryFactor(c.asset.Type)
}

// PotentialFutureExposure per Article 29.
func (c *Calculator) PotentialFutureExposure() (float64, error) {
	en, err := c.EffectiveNotional()
	if err != nil {
		return 0, err
	}
	sf, err := c.SupervisoryFactor()
	if err != nil {
		return 0, err
	}
	return en * sf, nil
}

// VolatilityAdjustment returns the haircut tier for the security leg.
func (c *Calculator) VolatilityAdjustment() float64 {
	return VolatilityAdjustment(c.asset.TimeToMaturity)
}

// VolatilityAdjustment returns the haircut for a residual maturity in years.
// Tiers are closed on the upper bound.
func VolatilityAdjustment(ttm float64) float64 {
	switch {
	case ttm <= 1:
		return VolatilityUpTo1Y
	case ttm <= 5:
		return VolatilityUpTo5Y
	default:
		return VolatilityOver5Y
	}
}

// Collateral per Article 30(2)(b): market value of the security leg plus
// the net cash, scaled by the volatility adjustment.
func (c *Calculator) Collateral() float64 {
	return (c.assetLeg.MTMDirty + c.cashLeg.Balance) * c.VolatilityAdjustment()
}

// ExposureValue is max(0, RC + PFE - C).
func (c *Calculator) ExposureValue() (float64, error) {
	pfe, err := c.PotentialFutureExposure()
	if err != nil {
		return 0, err
	}
	return math.Max(0, c.ReplacementCost()+pfe-c.Collateral()), nil
}

// RiskFactor is 1.6% for government issuers and 8% otherwise.
func (c *Calculator) RiskFactor() (float64, error) {
	return RiskFactor(c.assetLeg.IssuerType)
}

// RiskFactor classifies an issuer type. Matching is a case-sensitive
// substring test on "govt" and "government".
func RiskFactor(issuerType string) (float64, error) {
	if issuerType == "" {
		return 0, &instrument.MissingFieldError{Field: "issuer.type", Role: instrument.RoleAsset}
	}
	if strings.Contains(issuerType, "govt") || strings.Contains(issuerType, "government") {
		return riskFactorGovernment, nil
	}
	return riskFactorOther, nil
}

// CreditValuationAdjustment is 1 for SFTs (Article 32).
func (c *Calculator) CreditValuationAdjustment() float64 {
	return 1
}

// Initialize computes the exposure value, risk factor and CVA.
func (c *Calculator) Initialize() (Components, error) {
	ev, err := c.ExposureValue()
	if err != nil {
		return Components{}, err
	}
	rf, err := c.RiskFactor()
	if err != nil {
		return Components{}, err
	}
	return Components{
		ExposureValue:             ev,
		RiskFactor:                rf,
		CreditValuationAdjustment: c.CreditValuationAdjustment(),
	}, nil
}

// Calculate combines components into the K-TCD value.
func (c *Calculator) Calculate(comp Components) float64 {
	return c.alpha * comp.ExposureValue * comp.RiskFactor * comp.CreditValuationAdjustment
}

// Evaluate runs the whole pipeline and records every intermediate.
func (c *Calculator) Evaluate() (Result, error) {
	class, err := c.AssetClass()
	if err != nil {
		return Result{}, err
	}
	sf, err := c.tables.Factor(class)
	if err != nil {
		return Result{}, err
	}

	r := Result{
		AssetID:              c.asset.ID,
		AssetType:            c.asset.Type,
		CashID:               c.cash.ID,
		AssetClass:           class,
		TimeToMaturity:       c.asset.TimeToMaturity,
		ReplacementCost:      c.ReplacementCost(),
		NotionalAmount:       c.NotionalAmount(),
		Duration:             duration(class, c.asset.TimeToMaturity),
		SupervisoryDelta:     c.SupervisoryDelta(),
		SupervisoryFactor:    sf,
		VolatilityAdjustment: c.VolatilityAdjustment(),
		Collateral:           c.Collateral(),
		Alpha:                c.alpha,
	}
	r.EffectiveNotional = r.NotionalAmount * r.Duration * r.SupervisoryDelta
	r.PotentialFutureExposure = r.EffectiveNotional * r.SupervisoryFactor

	comp, err := c.Initialize()
	if err != nil {
		return Result{}, err
	}
	r.Components = comp
	r.Value = c.Calculate(comp)
	return r, nil
}
