package instrument

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Party is a nested FIRE object of which only the type is used.
type Party struct {
	Type string `json:"type"`
}

// Record is one raw trade leg as it appears in a FIRE document.
type Record struct {
	ID           string  `json:"id"`
	Type         string  `json:"type"`
	Date         string  `json:"date"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	TradeDate    string  `json:"trade_date"`
	CurrencyCode string  `json:"currency_code"`
	Customer     *Party  `json:"customer,omitempty"`
	Issuer       *Party  `json:"issuer,omitempty"`
	SFTType      string  `json:"sft_type"`
	MTMDirty     *Amount `json:"mtm_dirty,omitempty"`
	Balance      *Amount `json:"balance,omitempty"`
	Movement     string  `json:"movement"`
}

// Amount holds a monetary value that may be encoded as a JSON number or a
// numeric string. Conversion is deferred to Float so a bad value surfaces
// as a MalformedInputError naming the field.
type Amount struct {
	raw string
}

// NewAmount builds an Amount from a float.
func NewAmount(v float64) *Amount {
	return &Amount{raw: strconv.FormatFloat(v, 'g', -1, 64)}
}

// RawAmount builds an Amount from its textual form.
func RawAmount(s string) *Amount {
	return &Amount{raw: s}
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		a.raw = s
		return nil
	}
	a.raw = string(b)
	return nil
}

func (a Amount) String() string { return a.raw }

// Float converts the amount to float64.
func (a Amount) Float() (float64, error) {
	return strconv.ParseFloat(a.raw, 64)
}
