package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDDARequestDefaults(t *testing.T) {
	req := &DDARequest{
		AcquisitionCost: 1000,
		UsefulLifeYears: 3,
	}
	require.NoError(t, req.Validate())

	require.Equal(t, 1.0, req.AdjustmentFactor)
	require.Equal(t, 1.0, req.UsageElasticity)
	require.Equal(t, 1.0, req.Beta)
	require.Equal(t, MethodDoubleDeclining, req.Method)
}

func TestDDARequestRejectsBadMethod(t *testing.T) {
	req := &DDARequest{
		AcquisitionCost: 1000,
		UsefulLifeYears: 3,
		Method:          "sum_of_years",
	}
	err := req.Validate()
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "method", verr.Field)
}

func TestDDARequestSeriesLength(t *testing.T) {
	req := &DDARequest{
		AcquisitionCost:         1000,
		UsefulLifeYears:         3,
		PlannedUsageDaysPerYear: []int{365, 365},
	}
	err := req.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "planned_usage_days_per_year")

	// The market series alone may carry one extra entry for the final price.
	req = &DDARequest{
		AcquisitionCost:   1000,
		UsefulLifeYears:   3,
		MarketPriceSeries: []float64{100, 110, 120, 130},
	}
	require.NoError(t, req.Validate())
}

func TestCPRMRequestThresholdDefault(t *testing.T) {
	req := &CPRMRequest{
		AllowanceForBadDebts:                 1,
		TotalBondRelatedAssets:               1,
		BadDebtAmount:                        1,
		TransactionValuePerBondUnit:          1,
		TotalConvertibleBondTransactionValue: 1,
		StockPurchaseTransactionValue:        1,
		StockSaleTransactionValue:            1,
		TotalScopeBondsForConversion:         1,
		CurrentDebtRepayments:                1,
		NumberOfDebtRepayments:               1,
		TotalConvertibleBondPurchases:        1,
		TotalConvertibleBondSales:            1,
		TotalNumberPurchaseTransactions:      1,
		TotalNumberSaleTransactions:          1,
		TotalBondTransactionsValue:           1,
		TotalStockTransactionValue:           1,
		ValueOfConvertibleBondProducts:       1,
	}
	require.NoError(t, req.Validate())
	require.NotNil(t, req.RateTriggerThreshold)
	require.Equal(t, 0.10, *req.RateTriggerThreshold)
}

func TestRVMRequestEvaluationDaysDefault(t *testing.T) {
	req := &RVMRequest{
		CumulativeExtractionAmount: 100,
		CumulativeExtractionDays:   50,
		CurrentUnitExtractionValue: 2,
		TotalYearsOfUsefulLife:     10,
	}
	require.NoError(t, req.Validate())
	require.NotNil(t, req.TotalExtractionDaysAtEvaluation)
	require.Equal(t, 50.0, *req.TotalExtractionDaysAtEvaluation)
}

func TestFAREXRequestHedgeRatioDefault(t *testing.T) {
	req := &FAREXRequest{
		BaseCurrencyAmount:         1,
		SpotRate:                   1,
		ForecastRate:               1,
		LastYearPrevMonthExport:    1,
		LastYearPrevMonthImport:    1,
		LastYearCurrentMonthExport: 1,
		LastYearCurrentMonthImport: 1,
		CurrentYearPrevMonthExport: 1,
		CurrentYearPrevMonthImport: 1,
	}
	require.NoError(t, req.Validate())
	require.Equal(t, 1.0, req.HedgeRatio)
}

func TestMonthsElapsedRange(t *testing.T) {
	tooMany := 13
	req := &CPMRVRequest{MonthsElapsed: &tooMany}
	require.Error(t, req.Validate())

	ok := 12
	req = &CPMRVRequest{MonthsElapsed: &ok}
	require.NoError(t, req.Validate())
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Field: "beta", Message: "must be finite"}
	require.Equal(t, "beta: must be finite", err.Error())

	bare := &ValidationError{Message: "broken"}
	require.Equal(t, "broken", bare.Error())
}
