package handler

import (
	json "github.com/goccy/go-json"

	"sebit-engine/internal/valuation"
)

// runFunc decodes one request body, validates it and runs a model.
type runFunc func(body []byte) (any, error)

type validator interface {
	Validate() error
}

func runModel[Req, Resp any](calc func(*Req) *Resp) runFunc {
	return func(body []byte) (any, error) {
		var req Req
		if err := json.Unmarshal(body, &req); err != nil {
			return nil, err
		}
		if v, ok := any(&req).(validator); ok {
			if err := v.Validate(); err != nil {
				return nil, err
			}
		}
		return calc(&req), nil
	}
}

func modelRoutes() map[string]runFunc {
	return map[string]runFunc{
		"asset/dda":         runModel(valuation.DynamicDepreciation),
		"asset/lam":         runModel(valuation.LeaseAmortization),
		"asset/rvm":         runModel(valuation.ResourceValuation),
		"expense/ceem":      runModel(valuation.ConsumableExpense),
		"expense/bdm":       runModel(valuation.BondDepreciation),
		"expense/belm":      runModel(valuation.BadDebtExpectedLoss),
		"risk/cprm":         runModel(valuation.ConvertibleBondRisk),
		"risk/c-ocim":       runModel(valuation.CompoundOCI),
		"risk/farex":        runModel(valuation.FXAdjustment),
		"analysis/tct-beam": runModel(valuation.TCTBreakEven),
		"analysis/cpmrv":    runModel(valuation.CryptoRealValue),
		"analysis/dcbpra":   runModel(valuation.DynamicCAPM),
		"service/psras":     runModel(valuation.ServiceRevenueAccrual),
		"probability/lsmrv": runModel(valuation.PairedRevaluation),
	}
}
