// journal/schema.go
package journal

const Schema = `
CREATE TABLE IF NOT EXISTS calculations (
	run_id TEXT PRIMARY KEY,
	created DATETIME NOT NULL,
	source TEXT NOT NULL,
	asset_id TEXT NOT NULL,
	asset_type TEXT NOT NULL,
	asset_class TEXT NOT NULL,
	cash_id TEXT NOT NULL,
	time_to_maturity REAL NOT NULL,
	replacement_cost REAL NOT NULL,
	notional_amount REAL NOT NULL,
	duration REAL NOT NULL,
	effective_notional REAL NOT NULL,
	supervisory_factor REAL NOT NULL,
	pfe REAL NOT NULL,
	volatility_adjustment REAL NOT NULL,
	collateral REAL NOT NULL,
	exposure_value REAL NOT NULL,
	risk_factor REAL NOT NULL,
	cva REAL NOT NULL,
	alpha REAL NOT NULL,
	value REAL NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_calculations_created ON calculations(created);
`

const calculationColumns = `run_id, created, source, asset_id, asset_type, asset_class, cash_id,
	time_to_maturity, replacement_cost, notional_amount, duration, effective_notional,
	supervisory_factor, pfe, volatility_adjustment, collateral, exposure_value,
	risk_factor, cva, alpha, value`
