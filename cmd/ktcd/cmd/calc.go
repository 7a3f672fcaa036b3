package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/rustyeddy/ktcd/instrument"
	"github.com/rustyeddy/ktcd/journal"
	"github.com/rustyeddy/ktcd/ktcd"
	"github.com/rustyeddy/ktcd/pkg/id"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Compute K-TCD for a repo document",
	Long: `Load a FIRE "Rev Repo Data" document, parse its asset and cash legs and
print the K-TCD capital requirement.

The document is read from <dir>/<file>.json; dir defaults to "examples"
and file to "data".

Examples:
  ktcd calc
  ktcd calc --file data1
  ktcd calc --file data2 --format org --journal sqlite`,
	Args: cobra.NoArgs,
	RunE: runCalc,
}

var (
	calcFile    string
	calcDir     string
	calcFormat  string
	calcJournal string
)

func init() {
	rootCmd.AddCommand(calcCmd)

	calcCmd.Flags().StringVar(&calcFile, "file", "", `name of the JSON document to load (default "data")`)
	calcCmd.Flags().StringVar(&calcDir, "dir", "", `directory holding the documents (default "examples")`)
	calcCmd.Flags().StringVarP(&calcFormat, "format", "o", "plain", "output format: plain, org or json")
	calcCmd.Flags().StringVar(&calcJournal, "journal", "", "journal type override: none, csv or sqlite")
}

func runCalc(cmd *cobra.Command, args []string) error {
	data := cfg.Data
	if calcDir != "" {
		data.Dir = calcDir
	}
	path := data.Path(calcFile)

	doc, err := instrument.LoadFile(path)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	logger.Debug("loaded document", zap.String("path", path), zap.String("name", doc.Name), zap.Int("records", len(doc.Data)))

	asset, cash, err := doc.Legs()
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	res, err := ktcd.Evaluate(asset, cash)
	if err != nil {
		return fmt.Errorf("evaluate %s: %w", path, err)
	}
	logResult(res)

	runID := id.New()
	created, err := id.Time(runID)
	if err != nil {
		return fmt.Errorf("run id: %w", err)
	}
	rec := journal.FromResult(runID, path, created, res)

	jc := cfg.Journal
	if calcJournal != "" {
		jc.Type = calcJournal
	}
	j, err := journal.Open(jc)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	if err := j.RecordCalculation(rec); err != nil {
		j.Close()
		return fmt.Errorf("record calculation: %w", err)
	}
	if err := j.Close(); err != nil {
		return fmt.Errorf("close journal: %w", err)
	}
	if jc.Type != "" && jc.Type != "none" {
		logger.Info("journaled calculation", zap.String("run_id", rec.RunID), zap.String("journal", jc.Type))
	}

	out := cmd.OutOrStdout()
	switch calcFormat {
	case "plain", "":
		fmt.Fprintln(out, res.Value)
	case "org":
		fmt.Fprintln(out, journal.FormatCalculationOrg(rec))
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	default:
		return fmt.Errorf("unknown format %q", calcFormat)
	}
	return nil
}

func logResult(r ktcd.Result) {
	logger.Debug("k-tcd pipeline",
		zap.String("asset_type", r.AssetType),
		zap.String("asset_class", string(r.AssetClass)),
		zap.Float64("time_to_maturity", r.TimeToMaturity),
		zap.Float64("replacement_cost", r.ReplacementCost),
		zap.Float64("notional_amount", r.NotionalAmount),
		zap.Float64("duration", r.Duration),
		zap.Float64("effective_notional", r.EffectiveNotional),
		zap.Float64("supervisory_factor", r.SupervisoryFactor),
		zap.Float64("pfe", r.PotentialFutureExposure),
		zap.Float64("volatility_adjustment", r.VolatilityAdjustment),
		zap.Float64("collateral", r.Collateral),
		zap.Float64("exposure_value", r.ExposureValue),
		zap.Float64("risk_factor", r.RiskFactor),
		zap.Float64("cva", r.CreditValuationAdjustment),
		zap.Float64("value", r.Value),
	)
}
