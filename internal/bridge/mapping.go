package bridge

import (
	"fmt"
	"os"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Mapping describes how one model endpoint is promoted into a summary entry:
// which output field becomes the headline amount, and the fallback field when
// the headline is absent.
type Mapping struct {
	Series      string `yaml:"series"`
	Model       string `yaml:"model"`
	HeadlineKey string `yaml:"headline_key"`
	FallbackKey string `yaml:"fallback_key"`
	Currency    string `yaml:"currency"`
}

// SummaryEntry is a single flattened model result forwarded to the summary
// service.
type SummaryEntry struct {
	Series         string         `json:"series"`
	Model          string         `json:"model"`
	HeadlineAmount float64        `json:"headline_amount"`
	Currency       string         `json:"currency"`
	Details        map[string]any `json:"details"`
}

// UnknownEndpointError reports an endpoint key with no mapping table entry.
type UnknownEndpointError struct {
	Endpoint string
}

func (e *UnknownEndpointError) Error() string {
	return fmt.Sprintf("endpoint %q is not registered in the summary mapping table", e.Endpoint)
}

// MissingHeadlineFieldError reports a model output carrying neither the
// headline field nor its fallback.
type MissingHeadlineFieldError struct {
	Endpoint    string
	HeadlineKey string
	FallbackKey string
}

func (e *MissingHeadlineFieldError) Error() string {
	return fmt.Sprintf("unable to determine headline amount for %q: %q and %q missing from output",
		e.Endpoint, e.HeadlineKey, e.FallbackKey)
}

var defaultMappings = map[string]Mapping{
	"asset/dda": {
		Series:      "Asset & Depreciation",
		Model:       "SEBIT-DDA",
		HeadlineKey: "total_revaluation_gain_loss",
		FallbackKey: "total_depreciation",
		Currency:    "KRW",
	},
	"asset/lam": {
		Series:      "Asset & Depreciation",
		Model:       "SEBIT-LAM",
		HeadlineKey: "total_revaluation_gain_loss",
		FallbackKey: "total_interest_expense",
		Currency:    "KRW",
	},
	"asset/rvm": {
		Series:      "Asset & Depreciation",
		Model:       "SEBIT-RVM",
		HeadlineKey: "final_revaluation_value",
		FallbackKey: "total_extraction_value",
		Currency:    "KRW",
	},
	"expense/ceem": {
		Series:      "Expense & Profitability",
		Model:       "SEBIT-CEEM",
		HeadlineKey: "final_revaluation_value",
		FallbackKey: "adjusted_consumable_usage_value",
		Currency:    "KRW",
	},
	"expense/bdm": {
		Series:      "Expense & Profitability",
		Model:       "SEBIT-BDM",
		HeadlineKey: "final_book_value",
		FallbackKey: "interest_cost",
		Currency:    "KRW",
	},
	"expense/belm": {
		Series:      "Expense & Profitability",
		Model:       "SEBIT-BELM",
		HeadlineKey: "final_bad_debt_ratio",
		FallbackKey: "actual_interest_cost",
		Currency:    "KRW",
	},
	"risk/cprm": {
		Series:      "Capital & Risk Derivatives",
		Model:       "SEBIT-CPRM",
		HeadlineKey: "final_convertible_bond_amount",
		FallbackKey: "final_adjusted_convertible_bond_rate",
		Currency:    "KRW",
	},
	"risk/c-ocim": {
		Series:      "Capital & Risk Derivatives",
		Model:       "SEBIT-C-OCIM",
		HeadlineKey: "final_adjusted_balance",
		FallbackKey: "compound_adjustment_amount",
		Currency:    "KRW",
	},
	"risk/farex": {
		Series:      "Capital & Risk Derivatives",
		Model:       "SEBIT-FAREX",
		HeadlineKey: "revaluation_amount",
		FallbackKey: "final_adjusted_rate",
		Currency:    "KRW",
	},
	"analysis/tct-beam": {
		Series:      "Advanced Analytics",
		Model:       "SEBIT-TCT-BEAM",
		HeadlineKey: "cumulative_operating_profit",
		FallbackKey: "cumulative_fixed_cost",
		Currency:    "KRW",
	},
	"analysis/cpmrv": {
		Series:      "Advanced Analytics",
		Model:       "SEBIT-CPMRV",
		HeadlineKey: "adjusted_crypto_value",
		FallbackKey: "relative_asset_risk",
		Currency:    "USD",
	},
	"analysis/dcbpra": {
		Series:      "Advanced Analytics",
		Model:       "SEBIT-DCBPRA",
		HeadlineKey: "adjusted_expected_return",
		FallbackKey: "baseline_capm_return",
		Currency:    "KRW",
	},
	"service/psras": {
		Series:      "Insurance & Service Revenue",
		Model:       "SEBIT-PSRAS",
		HeadlineKey: "final_recognised_revenue",
		FallbackKey: "pure_performance_break_even",
		Currency:    "KRW",
	},
	"probability/lsmrv": {
		Series:      "Probability Revaluation",
		Model:       "SEBIT-LSMRV",
		HeadlineKey: "final_adjustment_amount",
		FallbackKey: "expected_adjustment_value",
		Currency:    "KRW",
	},
}

// Table maps endpoint keys to summary mappings.
type Table struct {
	mappings map[string]Mapping
}

func DefaultTable() *Table {
	mappings := make(map[string]Mapping, len(defaultMappings))
	for k, v := range defaultMappings {
		mappings[k] = v
	}
	return &Table{mappings: mappings}
}

// LoadOverrides merges mapping entries from a YAML file into the table.
func (t *Table) LoadOverrides(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read mapping overrides: %w", err)
	}
	var overrides map[string]Mapping
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return fmt.Errorf("parse mapping overrides: %w", err)
	}
	for k, v := range overrides {
		t.mappings[k] = v
	}
	return nil
}

// MapOutput selects the headline amount from a model output mapping and
// builds the summary entry for the endpoint.
func (t *Table) MapOutput(endpoint string, output map[string]any) (SummaryEntry, error) {
	mapping, ok := t.mappings[endpoint]
	if !ok {
		return SummaryEntry{}, &UnknownEndpointError{Endpoint: endpoint}
	}

	amount, ok := numericField(output, mapping.HeadlineKey)
	if !ok {
		amount, ok = numericField(output, mapping.FallbackKey)
	}
	if !ok {
		return SummaryEntry{}, &MissingHeadlineFieldError{
			Endpoint:    endpoint,
			HeadlineKey: mapping.HeadlineKey,
			FallbackKey: mapping.FallbackKey,
		}
	}

	return SummaryEntry{
		Series:         mapping.Series,
		Model:          mapping.Model,
		HeadlineAmount: amount,
		Currency:       mapping.Currency,
		Details:        output,
	}, nil
}

func numericField(output map[string]any, key string) (float64, bool) {
	v, ok := output[key]
	if !ok || v == nil {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// AsMapping is the single serialization contract between output records and
// the bridge: any record marshals through JSON into a flat mapping.
func AsMapping(record any) (map[string]any, error) {
	data, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("serialize model output: %w", err)
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decode model output: %w", err)
	}
	return out, nil
}
