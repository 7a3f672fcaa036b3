package journal

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatCalculationOrg(t *testing.T) {
	t.Parallel()

	rec := sampleRecord("01J1ZB5X0000000000000000AA", time.Date(2024, 3, 15, 10, 30, 45, 0, time.UTC))
	out := FormatCalculationOrg(rec)

	assert.True(t, strings.HasPrefix(out, "** K-TCD: treasury rev_repo_asset_leg (01J1ZB5X)\n"))
	assert.Contains(t, out, ":RUN_ID: 01J1ZB5X0000000000000000AA\n")
	assert.Contains(t, out, ":CREATED: 2024-03-15T10:30:45Z\n")
	assert.Contains(t, out, ":ASSET_CLASS: IR\n")
	assert.Contains(t, out, ":K_TCD: 18977.68\n")
	assert.Contains(t, out, "| supervisory factor | 0.005 |\n")
	assert.Contains(t, out, "| k-tcd | 18977.68374952749 |\n")
}

func TestFormatCalculationsOrg(t *testing.T) {
	t.Parallel()

	ts := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	out := FormatCalculationsOrg([]CalculationRecord{sampleRecord("A", ts), sampleRecord("B", ts)})

	assert.Equal(t, 2, strings.Count(out, "** K-TCD:"))
	assert.Contains(t, out, "\n\n\n** K-TCD: treasury rev_repo_asset_leg (B)")
	assert.Equal(t, "", FormatCalculationsOrg(nil))
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "abc", shortID("abc"))
	assert.Equal(t, "12345678", shortID("123456789"))
}
