package journal

import (
	"fmt"
	"strings"
	"time"
)

// FormatCalculationOrg renders a calculation as an Org-mode block. All
// structured facts go in the PROPERTIES drawer; the body walks through the
// pipeline in order.
func FormatCalculationOrg(c CalculationRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "** K-TCD: %s %s (%s)\n", c.AssetType, c.AssetID, shortID(c.RunID))
	b.WriteString(":PROPERTIES:\n")
	fmt.Fprintf(&b, ":RUN_ID: %s\n", c.RunID)
	fmt.Fprintf(&b, ":CREATED: %s\n", c.Created.UTC().Format(time.RFC3339))
	fmt.Fprintf(&b, ":SOURCE: %s\n", c.Source)
	fmt.Fprintf(&b, ":ASSET_LEG: %s\n", c.AssetID)
	fmt.Fprintf(&b, ":CASH_LEG: %s\n", c.CashID)
	fmt.Fprintf(&b, ":ASSET_TYPE: %s\n", c.AssetType)
	fmt.Fprintf(&b, ":ASSET_CLASS: %s\n", c.AssetClass)
	fmt.Fprintf(&b, ":K_TCD: %.2f\n", c.Value)
	b.WriteString(":END:\n\n")

	b.WriteString("| step | value |\n")
	b.WriteString("|------+-------|\n")
	row := func(name string, v float64) {
		fmt.Fprintf(&b, "| %s | %s |\n", name, f(v))
	}
	row("time to maturity", c.TimeToMaturity)
	row("replacement cost", c.ReplacementCost)
	row("notional amount", c.NotionalAmount)
	row("duration", c.Duration)
	row("effective notional", c.EffectiveNotional)
	row("supervisory factor", c.SupervisoryFactor)
	row("potential future exposure", c.PotentialFutureExposure)
	row("volatility adjustment", c.VolatilityAdjustment)
	row("collateral", c.Collateral)
	row("exposure value", c.ExposureValue)
	row("risk factor", c.RiskFactor)
	row("cva", c.CVA)
	row("alpha", c.Alpha)
	row("k-tcd", c.Value)

	return b.String()
}

// FormatCalculationsOrg renders multiple calculations separated by blank lines.
func FormatCalculationsOrg(recs []CalculationRecord) string {
	var b strings.Builder
	for i, c := range recs {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(FormatCalculationOrg(c))
	}
	return b.String()
}

func shortID(full string) string {
	if len(full) <= 8 {
		return full
	}
	return full[:8]
}
