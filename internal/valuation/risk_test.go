package valuation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"sebit-engine/internal/model"
)

func cprmRequest() *model.CPRMRequest {
	return &model.CPRMRequest{
		AllowanceForBadDebts:                 100,
		TotalBondRelatedAssets:               1000,
		BadDebtAmount:                        100,
		TransactionValuePerBondUnit:          10,
		TotalConvertibleBondTransactionValue: 100,
		StockPurchaseTransactionValue:        2000,
		StockSaleTransactionValue:            1000,
		TotalScopeBondsForConversion:         100,
		CurrentDebtRepayments:                1000,
		NumberOfDebtRepayments:               4,
		TotalConvertibleBondPurchases:        3000,
		TotalConvertibleBondSales:            1000,
		TotalNumberPurchaseTransactions:      2,
		TotalNumberSaleTransactions:          2,
		TotalBondTransactionsValue:           10000,
		TotalStockTransactionValue:           5000,
		ValueOfConvertibleBondProducts:       500,
	}
}

func TestConvertibleBondRiskNoTrigger(t *testing.T) {
	req := cprmRequest()
	threshold := 0.5
	req.RateTriggerThreshold = &threshold
	require.NoError(t, req.Validate())

	resp := ConvertibleBondRisk(req)

	require.Equal(t, 0.1, resp.AssumedBadDebtOccurrenceRate)
	require.Equal(t, 250.0, resp.AveragePastBadDebtRecovery)
	require.Equal(t, 1000.0, resp.AverageConvertibleBondPrice)
	require.Equal(t, 2.0, resp.AdditionalAdjustmentBeta)
	require.False(t, resp.TriggerApplied)
	require.Nil(t, resp.ConvertibleBondRateAdjustment)
	require.Equal(t, 2.0, resp.FinalAdjustedConvertibleBondRate)
}

func TestConvertibleBondRiskTriggerStockDominant(t *testing.T) {
	req := cprmRequest()
	require.NoError(t, req.Validate())

	resp := ConvertibleBondRisk(req)

	// rate ~0.159 crosses the default 0.10 threshold; the stock transaction
	// value is the largest component, which zeroes the rate adjustment.
	require.True(t, resp.TriggerApplied)
	require.NotNil(t, resp.ConvertibleBondRateAdjustment)
	require.Equal(t, 0.0, *resp.ConvertibleBondRateAdjustment)
	require.Equal(t, 2.0, resp.FinalAdjustedConvertibleBondRate)
}

func TestConvertibleBondRiskTriggerDebtDominant(t *testing.T) {
	req := cprmRequest()
	debt := 8000.0
	req.TotalDebtRepaymentForTrigger = &debt
	require.NoError(t, req.Validate())

	resp := ConvertibleBondRisk(req)

	// max 8000 (debt), others sum 5500, denominator 8000-5000
	require.True(t, resp.TriggerApplied)
	require.NotNil(t, resp.ConvertibleBondRateAdjustment)
	require.InDelta(t, 0.833333, *resp.ConvertibleBondRateAdjustment, 1e-6)
	require.InDelta(t, 0.333333, resp.FinalAdjustedConvertibleBondRate, 1e-6)
}

func TestCompoundOCIGrowthTrigger(t *testing.T) {
	req := &model.COCIMRequest{
		OCIAccountBalance:        50000,
		TotalOCIAmount:           200000,
		PolicyRate:               0.05,
		UsefulLifeYearsRemaining: 2,
		InitialRecognitionAmount: 80000,
		YearEndBalance:           110000,
		QuarterlyData: []model.COCIMQuarterData{
			{QuarterIndex: 1, PreCompoundBalance: 100, PostCompoundBalance: 200},
			{QuarterIndex: 2, PreCompoundBalance: 200, PostCompoundBalance: 300},
		},
	}
	require.NoError(t, req.Validate())

	resp := CompoundOCI(req)

	require.Equal(t, 0.25, resp.AccountRatio)
	require.InDelta(t, 45351.473923, resp.InitialCompoundMeasurement, 1e-4)

	require.Len(t, resp.QuarterlyAdjustments, 2)
	require.Equal(t, 1, resp.QuarterlyAdjustments[0].QuarterIndex)
	require.Equal(t, 2, resp.QuarterlyAdjustments[1].QuarterIndex)
	require.InDelta(t, -0.998762, resp.QuarterlyAdjustments[0].AdjustmentValue, 1e-4)

	// 37.5% growth on the initial recognition crosses the 30% trigger.
	require.Equal(t, 0.375, resp.AnnualCompoundGrowthRate)
	require.True(t, resp.CompoundGrowthTriggerApplied)
	require.Equal(t, 11250.0, resp.CompoundAdjustmentAmount)
	require.Equal(t, 121250.0, resp.FinalAdjustedBalance)
}

func TestCompoundOCIBelowTrigger(t *testing.T) {
	req := &model.COCIMRequest{
		OCIAccountBalance:        50000,
		TotalOCIAmount:           200000,
		PolicyRate:               0.05,
		UsefulLifeYearsRemaining: 2,
		InitialRecognitionAmount: 80000,
		YearEndBalance:           90000,
	}
	require.NoError(t, req.Validate())

	resp := CompoundOCI(req)

	require.Equal(t, 0.125, resp.AnnualCompoundGrowthRate)
	require.False(t, resp.CompoundGrowthTriggerApplied)
	require.Equal(t, 0.0, resp.CompoundAdjustmentAmount)
	require.Equal(t, 90000.0, resp.FinalAdjustedBalance)
}

func TestCompoundOCIRejectsUnorderedQuarters(t *testing.T) {
	req := &model.COCIMRequest{
		TotalOCIAmount:           200000,
		UsefulLifeYearsRemaining: 2,
		InitialRecognitionAmount: 80000,
		YearEndBalance:           90000,
		QuarterlyData: []model.COCIMQuarterData{
			{QuarterIndex: 2},
			{QuarterIndex: 1},
		},
	}
	err := req.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "quarter_index")
}

func TestNormalizeTradeRatio(t *testing.T) {
	require.Equal(t, 0.3, normalizeTradeRatio(0.3))
	require.Equal(t, 0.0, normalizeTradeRatio(0.0))
	require.InDelta(t, 0.25, normalizeTradeRatio(-0.25), 1e-12)
	require.InDelta(t, 0.5, normalizeTradeRatio(-1.5), 1e-12)
	require.Greater(t, normalizeTradeRatio(-1.0), 0.0)
}

func TestFXAdjustment(t *testing.T) {
	req := &model.FAREXRequest{
		BaseCurrencyAmount:         100000,
		SpotRate:                   1300,
		ForecastRate:               1320,
		InflationRateHome:          0.02,
		InflationRateForeign:       0.01,
		LastYearPrevMonthExport:    5200,
		LastYearPrevMonthImport:    4800,
		LastYearCurrentMonthExport: 5400,
		LastYearCurrentMonthImport: 4900,
		CurrentYearPrevMonthExport: 5600,
		CurrentYearPrevMonthImport: 5100,
	}
	require.NoError(t, req.Validate())

	resp := FXAdjustment(req)

	require.InDelta(t, 1300*(1.02/1.01), resp.InflationAdjustedRate, 1e-3)
	require.InDelta(t, 100000*(resp.FinalAdjustedRate-1300), resp.RevaluationAmount, 0.5)

	for _, v := range []float64{
		resp.LastYearTradeRatio,
		resp.CurrentYearTradeRatio,
		resp.ExportImportBeta,
		resp.AdjustmentIndicator,
		resp.FinalAdjustedRate,
		resp.RevaluationAmount,
	} {
		require.False(t, math.IsNaN(v))
		require.False(t, math.IsInf(v, 0))
	}
}
