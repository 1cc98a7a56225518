package valuation

import (
	"testing"

	"github.com/stretchr/testify/require"

	"sebit-engine/internal/model"
)

func TestConsumableExpenseNonQuantitative(t *testing.T) {
	req := &model.CEEMRequest{
		CumulativeUsageUnits:           730,
		CumulativeUsageDays:            365,
		CurrentUnitCost:                10,
		PreviousYearStandardUsageValue: 7300,
		UsefulLifeYears:                5,
		ElapsedYears:                   1,
	}
	require.NoError(t, req.Validate())

	resp := ConsumableExpense(req)

	// Usage matches the 365-day standard exactly and the prior-year standard
	// is unchanged, so every adjustment collapses to identity.
	require.Equal(t, 2.0, resp.DailyAverageUsageUnits)
	require.Equal(t, 7300.0, resp.StandardUsageValueNonQuantitative)
	require.Nil(t, resp.StandardUsageValueQuantitative)
	require.Equal(t, 7300.0, resp.SelectedStandardUsageValue)
	require.Equal(t, 0.0, resp.UsageChangeRate)
	require.Equal(t, 0.0, resp.MarketChangeIndex)
	require.Equal(t, 7300.0, resp.AdjustedConsumableUsageValue)
	require.Equal(t, 7300.0, resp.FinalRevaluationValue)
}

func TestConsumableExpenseQuantitativeLimitPrecedence(t *testing.T) {
	limit := 500.0
	req := &model.CEEMRequest{
		CumulativeUsageUnits:           730,
		CumulativeUsageDays:            365,
		CurrentUnitCost:                10,
		QuantitativeUsageLimit:         &limit,
		PreviousYearStandardUsageValue: 5000,
		UsefulLifeYears:                5,
		ElapsedYears:                   1,
	}
	require.NoError(t, req.Validate())

	resp := ConsumableExpense(req)

	require.NotNil(t, resp.StandardUsageValueQuantitative)
	require.Equal(t, 5000.0, *resp.StandardUsageValueQuantitative)
	require.Equal(t, 5000.0, resp.SelectedStandardUsageValue)
	// total 7300 against the quantitative standard 5000
	require.Equal(t, 0.46, resp.UsageChangeRate)
	require.Equal(t, 10658.0, resp.AdjustedConsumableUsageValue)
}

func TestBondDepreciationPremium(t *testing.T) {
	prev := 8000.0
	req := &model.BDMRequest{
		BondIssuePrice:           10000,
		BondContractDays:         1000,
		ElapsedDaysSinceContract: 100,
		PreviousValuation:        &prev,
		CurrentFairValue:         9500,
	}
	require.NoError(t, req.Validate())

	resp := BondDepreciation(req)

	require.Equal(t, 10.0, resp.DailyEstimatedUsage)
	require.Equal(t, 9000.0, resp.EstimatedValuePS)
	require.Equal(t, 1.125, resp.MarketBeta)
	require.Equal(t, 10687.5, resp.FinalBookValue)
	require.Equal(t, 1687.5, resp.InterestCost)
	require.Equal(t, model.InterestPremium, resp.InterestType)
}

func TestBondDepreciationDiscount(t *testing.T) {
	prev := 10000.0
	req := &model.BDMRequest{
		BondIssuePrice:           10000,
		BondContractDays:         1000,
		ElapsedDaysSinceContract: 100,
		PreviousValuation:        &prev,
		CurrentFairValue:         9500,
	}
	require.NoError(t, req.Validate())

	resp := BondDepreciation(req)

	// beta = 1 + (9000-10000)/10000, final = 9500 * 0.9
	require.Equal(t, 0.9, resp.MarketBeta)
	require.Equal(t, 8550.0, resp.FinalBookValue)
	require.Equal(t, 450.0, resp.InterestCost)
	require.Equal(t, model.InterestDiscount, resp.InterestType)
}

func TestBondDepreciationDefaultsPreviousToFairValue(t *testing.T) {
	req := &model.BDMRequest{
		BondIssuePrice:           10000,
		BondContractDays:         1000,
		ElapsedDaysSinceContract: 100,
		CurrentFairValue:         9500,
	}
	require.NoError(t, req.Validate())

	resp := BondDepreciation(req)

	// With previous = fair, final collapses onto the straight-line estimate.
	require.Equal(t, 9000.0, resp.FinalBookValue)
	require.Equal(t, 0.0, resp.InterestCost)
	require.Equal(t, model.InterestPremium, resp.InterestType)
}

func TestBadDebtExpectedLoss(t *testing.T) {
	req := &model.BELMRequest{
		DebtorTotalAmount:                 10000,
		RemainingYears:                    2,
		ElapsedDays:                       365,
		ActualRepaymentAmount:             5000,
		InterestRate:                      0.1,
		TotalDebtBalanceAllCounterparties: 100000,
		LastYearCounterpartyRepayment:     2000,
		LastYearTotalRepaymentAll:         40000,
	}
	require.NoError(t, req.Validate())

	resp := BadDebtExpectedLoss(req)

	require.Equal(t, 5000.0, resp.ExpectedRepaymentAtEvaluation)
	require.Equal(t, 1.5, resp.InterestRateAdjustment)
	require.Equal(t, 750.0, resp.ActualInterestCost)
	require.Equal(t, 0.1, resp.PreliminaryBadDebtRatio)
	require.Equal(t, 0.15, resp.FinalBadDebtRatio)
}

func TestBadDebtFinalRatioNeverBelowPreliminary(t *testing.T) {
	req := &model.BELMRequest{
		DebtorTotalAmount:                 10000,
		RemainingYears:                    1,
		ElapsedDays:                       100,
		ActualRepaymentAmount:             1000,
		InterestRate:                      0.05,
		TotalDebtBalanceAllCounterparties: 50000,
		LastYearCounterpartyRepayment:     0,
		LastYearTotalRepaymentAll:         40000,
	}
	require.NoError(t, req.Validate())

	resp := BadDebtExpectedLoss(req)
	require.GreaterOrEqual(t, resp.FinalBadDebtRatio, resp.PreliminaryBadDebtRatio)
}
