// Package instrument turns raw FIRE trade records into typed repo legs.
package instrument

import (
	"errors"
	"math"
	"time"
)

// Layout is the only timestamp format accepted in a record.
const Layout = "2006-01-02T15:04:05Z"

// AssetLegID is the record id that marks the security leg of a repo.
// Any other id is treated as the cash leg.
const AssetLegID = "rev_repo_asset_leg"

const daysPerYear = 365.0

type Role int

const (
	RoleCash Role = iota
	RoleAsset
)

func (r Role) String() string {
	switch r {
	case RoleAsset:
		return "asset"
	case RoleCash:
		return "cash"
	}
	return "unknown"
}

// RoleOf decides the leg role of a record from its id.
func RoleOf(rec Record) Role {
	if rec.ID == AssetLegID {
		return RoleAsset
	}
	return RoleCash
}

// Leg is the role-specific part of an Instrument: AssetLeg or CashLeg.
type Leg interface {
	Role() Role
}

// AssetLeg is the security side of the repo.
type AssetLeg struct {
	MTMDirty   float64
	IssuerType string
}

func (AssetLeg) Role() Role { return RoleAsset }

// CashLeg is the cash side of the repo.
type CashLeg struct {
	Balance float64
}

func (CashLeg) Role() Role { return RoleCash }

// Instrument is one parsed repo leg. It is not modified after Parse.
type Instrument struct {
	ID           string
	Type         string
	Date         time.Time
	StartDate    time.Time
	EndDate      time.Time
	TradeDate    time.Time
	CurrencyCode string
	CustomerType string
	SFTType      string
	Movement     string

	// TimeToMaturity is whole days between StartDate and EndDate over 365.
	// No day-count convention or leap-year handling is applied.
	TimeToMaturity float64

	Leg Leg
}

// Role returns the leg role, RoleCash when no leg is attached.
func (i *Instrument) Role() Role {
	if i.Leg == nil {
		return RoleCash
	}
	return i.Leg.Role()
}

// AssetLeg returns the asset variant or a MissingFieldError when the
// instrument is a cash leg.
func (i *Instrument) AssetLeg() (AssetLeg, error) {
	a, ok := i.Leg.(AssetLeg)
	if !ok {
		return AssetLeg{}, &MissingFieldError{Field: "mtm_dirty", Role: i.Role()}
	}
	return a, nil
}

// CashLeg returns the cash variant or a MissingFieldError when the
// instrument is an asset leg.
func (i *Instrument) CashLeg() (CashLeg, error) {
	c, ok := i.Leg.(CashLeg)
	if !ok {
		return CashLeg{}, &MissingFieldError{Field: "balance", Role: i.Role()}
	}
	return c, nil
}

// ParseRecord parses rec using the role implied by its id.
func ParseRecord(rec Record) (*Instrument, error) {
	return Parse(rec, RoleOf(rec))
}

// Parse builds an Instrument from rec for the given leg role.
func Parse(rec Record, role Role) (*Instrument, error) {
	if rec.ID == "" {
		return nil, &MissingFieldError{Field: "id", Role: role}
	}
	if rec.Type == "" {
		return nil, &MissingFieldError{Field: "type", Role: role}
	}

	inst := &Instrument{
		ID:           rec.ID,
		Type:         rec.Type,
		CurrencyCode: rec.CurrencyCode,
		SFTType:      rec.SFTType,
		Movement:     rec.Movement,
	}

	var err error
	if inst.Date, err = parseTime("date", rec.Date); err != nil {
		return nil, err
	}
	if inst.StartDate, err = parseTime("start_date", rec.StartDate); err != nil {
		return nil, err
	}
	if inst.EndDate, err = parseTime("end_date", rec.EndDate); err != nil {
		return nil, err
	}
	if inst.TradeDate, err = parseTime("trade_date", rec.TradeDate); err != nil {
		return nil, err
	}

	if rec.Customer == nil {
		return nil, &MissingFieldError{Field: "customer.type", Role: role}
	}
	inst.CustomerType = rec.Customer.Type

	inst.TimeToMaturity = YearFraction(inst.StartDate, inst.EndDate)

	switch role {
	case RoleAsset:
		mtm, err := parseAmount("mtm_dirty", rec.MTMDirty, role)
		if err != nil {
			return nil, err
		}
		if rec.Issuer == nil || rec.Issuer.Type == "" {
			return nil, &MissingFieldError{Field: "issuer.type", Role: role}
		}
		inst.Leg = AssetLeg{MTMDirty: mtm, IssuerType: rec.Issuer.Type}
	default:
		bal, err := parseAmount("balance", rec.Balance, role)
		if err != nil {
			return nil, err
		}
		inst.Leg = CashLeg{Balance: bal}
	}

	return inst, nil
}

// YearFraction is the number of whole days from start to end divided by 365.
func YearFraction(start, end time.Time) float64 {
	days := math.Floor(end.Sub(start).Hours() / 24)
	return days / daysPerYear
}

// parseTime treats an empty value like any other mismatch with Layout.
func parseTime(field, v string) (time.Time, error) {
	t, err := time.Parse(Layout, v)
	if err != nil {
		return time.Time{}, &MalformedInputError{Field: field, Value: v, Err: err}
	}
	return t, nil
}

var errNotFinite = errors.New("not a finite number")

func parseAmount(field string, a *Amount, role Role) (float64, error) {
	if a == nil {
		return 0, &MissingFieldError{Field: field, Role: role}
	}
	v, err := a.Float()
	if err != nil {
		return 0, &MalformedInputError{Field: field, Value: a.String(), Err: err}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &MalformedInputError{Field: field, Value: a.String(), Err: errNotFinite}
	}
	return v, nil
}
