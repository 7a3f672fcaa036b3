package ktcd

import "sort"

// AssetClass is the SA-CCR asset class tag of an instrument type.
type AssetClass string

const (
	Credit       AssetClass = "CR"
	InterestRate AssetClass = "IR"
	Equity       AssetClass = "EQ"
	Other        AssetClass = "other"
)

// Tables is the regulatory lookup used by a Calculator. The default set is
// built once at package init and must not be modified by callers.
type Tables struct {
	classes map[string]AssetClass
	factors map[string]float64
	aliases map[AssetClass]string
}

var assetClasses = map[string]AssetClass{
	"abs":                   Credit,
	"abs_auto":              Credit,
	"abs_consumer":          Credit,
	"abs_other":             Credit,
	"abs_sme":               Credit,
	"acceptance":            Other,
	"bill_of_exchange":      Other,
	"bond":                  Credit,
	"cash":                  Other,
	"cash_ratio_deposit":    Other,
	"cb_facility":           Other,
	"cb_reserve":            Other,
	"cd":                    Other,
	"cmbs":                  Credit,
	"commercial_paper":      Other,
	"convertible_bond":      Credit,
	"covered_bond":          Credit,
	"debt":                  Credit,
	"emtn":                  Credit,
	"equity":                Equity,
	"financial_guarantee":   Credit,
	"financial_sloc":        Credit,
	"frn":                   Other,
	"guarantee":             Credit,
	"index":                 Credit,
	"index_linked":          Credit,
	"letter_of_credit":      Credit,
	"mbs":                   Credit,
	"mtn":                   Credit,
	"other":                 Other,
	"performance_bond":      Credit,
	"performance_guarantee": Credit,
	"performance_sloc":      Credit,
	"pref_share":            Equity,
	"rmbs":                  Credit,
	"rmbs_trans":            Credit,
	"share":                 Equity,
	"share_agg":             Equity,
	"spv_mortgages":         Credit,
	"spv_other":             Other,
	"struct_note":           Other,
	"treasury":              InterestRate,
	"urp":                   Credit,
	"warranty":              Credit,
}

// Supervisory factors per Article 29 IFR.
var supervisoryFactors = map[string]float64{
	"IR":        0.005,
	"FX":        0.04,
	"CR":        0.01,
	"EQ_single": 0.32,
	"EQ_index":  0.20,
	"Commodity": 0.18,
	"other":     0.32,
}

// Every equity type in the class map is a single name.
var factorAliases = map[AssetClass]string{
	Equity: "EQ_single",
}

var defaultTables = &Tables{
	classes: assetClasses,
	factors: supervisoryFactors,
	aliases: factorAliases,
}

// DefaultTables returns the process-wide regulatory tables.
func DefaultTables() *Tables { return defaultTables }

// NewTables builds a custom table set. The maps are copied.
func NewTables(classes map[string]AssetClass, factors map[string]float64) *Tables {
	t := &Tables{
		classes: make(map[string]AssetClass, len(classes)),
		factors: make(map[string]float64, len(factors)),
		aliases: factorAliases,
	}
	for k, v := range classes {
		t.classes[k] = v
	}
	for k, v := range factors {
		t.factors[k] = v
	}
	return t
}

// Class returns the asset class of an instrument type.
func (t *Tables) Class(instrumentType string) (AssetClass, error) {
	c, ok := t.classes[instrumentType]
	if !ok {
		return "", &ClassificationError{Table: "asset class", Key: instrumentType}
	}
	return c, nil
}

// FactorKey returns the supervisory-factor table key for an asset class.
func (t *Tables) FactorKey(c AssetClass) string {
	if k, ok := t.aliases[c]; ok {
		return k
	}
	return string(c)
}

// Factor returns the supervisory factor for an asset class.
func (t *Tables) Factor(c AssetClass) (float64, error) {
	key := t.FactorKey(c)
	f, ok := t.factors[key]
	if !ok {
		return 0, &ClassificationError{Table: "supervisory factor", Key: key}
	}
	return f, nil
}

// SupervisoryFactor resolves an instrument type through both tables.
func (t *Tables) SupervisoryFactor(instrumentType string) (float64, error) {
	c, err := t.Class(instrumentType)
	if err != nil {
		return 0, err
	}
	return t.Factor(c)
}

// InstrumentTypes lists the known instrument types in sorted order.
func (t *Tables) InstrumentTypes() []string {
	out := make([]string, 0, len(t.classes))
	for k := range t.classes {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
