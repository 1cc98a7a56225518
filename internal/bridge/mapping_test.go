package bridge

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"sebit-engine/internal/model"
)

func TestMapOutputHeadline(t *testing.T) {
	table := DefaultTable()

	entry, err := table.MapOutput("asset/dda", map[string]any{
		"total_revaluation_gain_loss": 1234.56,
		"total_depreciation":          900.0,
	})
	require.NoError(t, err)

	require.Equal(t, "Asset & Depreciation", entry.Series)
	require.Equal(t, "SEBIT-DDA", entry.Model)
	require.Equal(t, 1234.56, entry.HeadlineAmount)
	require.Equal(t, "KRW", entry.Currency)
	require.Equal(t, 900.0, entry.Details["total_depreciation"])
}

func TestMapOutputFallback(t *testing.T) {
	table := DefaultTable()

	entry, err := table.MapOutput("asset/dda", map[string]any{
		"total_depreciation": 900.0,
	})
	require.NoError(t, err)
	require.Equal(t, 900.0, entry.HeadlineAmount)
}

func TestMapOutputUnknownEndpoint(t *testing.T) {
	table := DefaultTable()

	_, err := table.MapOutput("asset/unknown", map[string]any{})
	require.Error(t, err)

	var unknown *UnknownEndpointError
	require.True(t, errors.As(err, &unknown))
	require.Equal(t, "asset/unknown", unknown.Endpoint)
}

func TestMapOutputMissingHeadline(t *testing.T) {
	table := DefaultTable()

	_, err := table.MapOutput("asset/dda", map[string]any{"schedule": []any{}})
	require.Error(t, err)

	var missing *MissingHeadlineFieldError
	require.True(t, errors.As(err, &missing))
	require.Equal(t, "total_revaluation_gain_loss", missing.HeadlineKey)
	require.Equal(t, "total_depreciation", missing.FallbackKey)
}

func TestDefaultTableCoversAllModelEndpoints(t *testing.T) {
	endpoints := []string{
		"asset/dda", "asset/lam", "asset/rvm",
		"expense/ceem", "expense/bdm", "expense/belm",
		"risk/cprm", "risk/c-ocim", "risk/farex",
		"analysis/tct-beam", "analysis/cpmrv", "analysis/dcbpra",
		"service/psras", "probability/lsmrv",
	}
	table := DefaultTable()
	for _, endpoint := range endpoints {
		_, err := table.MapOutput(endpoint, map[string]any{})
		var missing *MissingHeadlineFieldError
		require.True(t, errors.As(err, &missing), "endpoint %s should be registered", endpoint)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mappings.yaml")
	override := `
analysis/cpmrv:
  series: Digital Assets
  model: SEBIT-CPMRV
  headline_key: adjusted_crypto_value
  fallback_key: relative_asset_risk
  currency: EUR
`
	require.NoError(t, os.WriteFile(path, []byte(override), 0o644))

	table := DefaultTable()
	require.NoError(t, table.LoadOverrides(path))

	entry, err := table.MapOutput("analysis/cpmrv", map[string]any{"adjusted_crypto_value": 42.0})
	require.NoError(t, err)
	require.Equal(t, "Digital Assets", entry.Series)
	require.Equal(t, "EUR", entry.Currency)

	// Untouched endpoints keep their defaults.
	entry, err = table.MapOutput("asset/dda", map[string]any{"total_depreciation": 1.0})
	require.NoError(t, err)
	require.Equal(t, "KRW", entry.Currency)
}

func TestLoadOverridesMissingFile(t *testing.T) {
	table := DefaultTable()
	require.Error(t, table.LoadOverrides(filepath.Join(t.TempDir(), "absent.yaml")))
}

func TestAsMapping(t *testing.T) {
	resp := &model.BDMResponse{
		BondLabel:      "corp-2030",
		FinalBookValue: 9000,
		InterestCost:   450,
		InterestType:   model.InterestDiscount,
	}

	out, err := AsMapping(resp)
	require.NoError(t, err)

	require.Equal(t, "corp-2030", out["bond_label"])
	require.Equal(t, 9000.0, out["final_book_value"])
	require.Equal(t, "discount", out["interest_type"])

	// The serialized form feeds the mapping table directly.
	entry, err := DefaultTable().MapOutput("expense/bdm", out)
	require.NoError(t, err)
	require.Equal(t, 9000.0, entry.HeadlineAmount)
	require.Equal(t, "SEBIT-BDM", entry.Model)
}
