package valuation

import (
	"math"

	"sebit-engine/internal/model"
)

// ConsumableExpense runs the single-shot SEBIT-CEEM model. When a
// quantitative usage limit is supplied, its standard value takes precedence
// over the non-quantitative 365-day standard.
func ConsumableExpense(p *model.CEEMRequest) *model.CEEMResponse {
	dailyAvgUsageUnits := p.CumulativeUsageUnits / nonZero(p.CumulativeUsageDays)

	standardValueNonQuant := dailyAvgUsageUnits * p.CurrentUnitCost * 365

	var standardValueQuant *float64
	selectedStandardValue := standardValueNonQuant
	if p.QuantitativeUsageLimit != nil {
		quant := *p.QuantitativeUsageLimit * p.CurrentUnitCost
		standardValueQuant = &quant
		selectedStandardValue = quant
	}

	totalUsageValue := p.CumulativeUsageUnits * p.CurrentUnitCost

	usageChangeRate := 0.0
	if selectedStandardValue != 0 {
		usageChangeRate = (totalUsageValue - selectedStandardValue) / selectedStandardValue
	}

	marketChangeIndex := safeLogRatio(selectedStandardValue, p.PreviousYearStandardUsageValue)

	effectiveYears := p.UsefulLifeYears + math.Max(p.ElapsedYears-1, 0)
	marketSensitivityValue := math.Exp(marketChangeIndex*effectiveYears) * p.Beta

	adjustedUsageValue := totalUsageValue * (1 + usageChangeRate)
	finalRevaluationValue := adjustedUsageValue * marketSensitivityValue

	if standardValueQuant != nil {
		rounded := round2(*standardValueQuant)
		standardValueQuant = &rounded
	}

	return &model.CEEMResponse{
		ExpenseLabel:                      p.ExpenseLabel,
		DailyAverageUsageUnits:            round6(dailyAvgUsageUnits),
		StandardUsageValueNonQuantitative: round2(standardValueNonQuant),
		StandardUsageValueQuantitative:    standardValueQuant,
		SelectedStandardUsageValue:        round2(selectedStandardValue),
		TotalConsumableUsageValue:         round2(totalUsageValue),
		AdjustedConsumableUsageValue:      round2(adjustedUsageValue),
		UsageChangeRate:                   round6(usageChangeRate),
		MarketChangeIndex:                 round6(marketChangeIndex),
		MarketSensitivityValue:            round6(marketSensitivityValue),
		FinalRevaluationValue:             round2(finalRevaluationValue),
	}
}

// BondDepreciation runs the single-shot SEBIT-BDM model. The interest cost
// is classified "discount" when the final book value falls below the
// straight-line estimate, "premium" otherwise.
func BondDepreciation(p *model.BDMRequest) *model.BDMResponse {
	dailyUsage := p.BondIssuePrice / nonZero(p.BondContractDays)
	estimatedPS := p.BondIssuePrice - dailyUsage*p.ElapsedDaysSinceContract

	previousValue := p.CurrentFairValue
	if p.PreviousValuation != nil {
		previousValue = *p.PreviousValuation
	}
	marketBeta := 1.0
	if previousValue != 0 {
		marketBeta = 1 + (estimatedPS-previousValue)/previousValue
	}

	finalBookValue := p.CurrentFairValue * marketBeta

	var interestCost float64
	var interestType string
	if finalBookValue < estimatedPS {
		interestCost = estimatedPS - finalBookValue
		interestType = model.InterestDiscount
	} else {
		interestCost = finalBookValue - estimatedPS
		interestType = model.InterestPremium
	}

	return &model.BDMResponse{
		BondLabel:           p.BondLabel,
		DailyEstimatedUsage: round6(dailyUsage),
		EstimatedValuePS:    round2(estimatedPS),
		MarketBeta:          round6(marketBeta),
		FinalBookValue:      round2(finalBookValue),
		InterestCost:        round2(interestCost),
		InterestType:        interestType,
	}
}

// BadDebtExpectedLoss runs the single-shot SEBIT-BELM model. The final ratio
// only ever adds to the preliminary ratio because the counterparty repayment
// component is floored at zero.
func BadDebtExpectedLoss(p *model.BELMRequest) *model.BELMResponse {
	daysRemaining := p.RemainingYears * 365
	dailyEstimatedRepayment := p.DebtorTotalAmount / nonZero(daysRemaining)

	expectedRepayment := dailyEstimatedRepayment * p.ElapsedDays

	numerator := (p.DebtorTotalAmount - expectedRepayment) - (expectedRepayment - p.ActualRepaymentAmount)
	interestRateAdjustment := 1.0
	if p.DebtorTotalAmount != 0 {
		interestRateAdjustment = 1 + numerator/p.DebtorTotalAmount
	}

	actualInterestCost := (p.DebtorTotalAmount - p.ActualRepaymentAmount) * (p.InterestRate * interestRateAdjustment)

	preliminaryBadDebtRatio := p.DebtorTotalAmount / nonZero(p.TotalDebtBalanceAllCounterparties)

	additionalComponent := p.LastYearCounterpartyRepayment / nonZero(p.LastYearTotalRepaymentAll)

	finalBadDebtRatio := preliminaryBadDebtRatio + math.Max(0.0, additionalComponent)

	return &model.BELMResponse{
		DebtorLabel:                   p.DebtorLabel,
		DailyEstimatedRepayment:       round6(dailyEstimatedRepayment),
		ExpectedRepaymentAtEvaluation: round2(expectedRepayment),
		InterestRateAdjustment:        round6(interestRateAdjustment),
		ActualInterestCost:            round2(actualInterestCost),
		PreliminaryBadDebtRatio:       round6(preliminaryBadDebtRatio),
		FinalBadDebtRatio:             round6(finalBadDebtRatio),
	}
}
