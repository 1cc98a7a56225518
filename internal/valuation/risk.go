package valuation

import (
	"math"

	"sebit-engine/internal/model"
)

// ConvertibleBondRisk runs the single-shot SEBIT-CPRM model. When the
// convertible bond rate reaches the trigger threshold, the largest of the
// stock, debt-repayment, and product values drives a rate adjustment that
// scales the additional adjustment beta down. Ties resolve in that order.
func ConvertibleBondRisk(p *model.CPRMRequest) *model.CPRMResponse {
	assumedOccurrenceRate := p.AllowanceForBadDebts / nonZero(p.TotalBondRelatedAssets)

	logRatio := safeLogRatio(p.StockPurchaseTransactionValue, p.StockSaleTransactionValue)
	denominator := p.TransactionValuePerBondUnit * p.TotalConvertibleBondTransactionValue * logRatio
	convertibleBondRate := 0.0
	if denominator != 0 {
		convertibleBondRate = p.BadDebtAmount * (1 + assumedOccurrenceRate) / denominator
	}

	convertibleBondFirst := p.TotalScopeBondsForConversion * convertibleBondRate

	averagePastBadDebtRecovery := p.CurrentDebtRepayments / nonZero(float64(p.NumberOfDebtRepayments))

	totalTransactionsCount := float64(p.TotalNumberPurchaseTransactions + p.TotalNumberSaleTransactions)
	averageConvertibleBondPrice := (p.TotalConvertibleBondPurchases + p.TotalConvertibleBondSales) / nonZero(totalTransactionsCount)

	ratioBondStock := p.TotalBondTransactionsValue / nonZero(p.TotalStockTransactionValue)
	additionalAdjustmentBeta := 0.0
	if averagePastBadDebtRecovery != 0 && ratioBondStock != 0 {
		additionalAdjustmentBeta = (averageConvertibleBondPrice / averagePastBadDebtRecovery) / ratioBondStock
	}

	finalConvertibleBondAmount := convertibleBondFirst + p.ValueOfConvertibleBondProducts*additionalAdjustmentBeta

	totalDebtRepayment := p.CurrentDebtRepayments
	if p.TotalDebtRepaymentForTrigger != nil {
		totalDebtRepayment = *p.TotalDebtRepaymentForTrigger
	}

	threshold := 0.10
	if p.RateTriggerThreshold != nil {
		threshold = *p.RateTriggerThreshold
	}

	triggerApplied := false
	var rateAdjustment *float64
	finalAdjustedRate := additionalAdjustmentBeta

	if convertibleBondRate >= threshold {
		stockValue := p.TotalStockTransactionValue
		productValue := p.ValueOfConvertibleBondProducts

		// First maximal value wins: stock, then debt, then product.
		maxValue := stockValue
		if totalDebtRepayment > maxValue {
			maxValue = totalDebtRepayment
		}
		if productValue > maxValue {
			maxValue = productValue
		}
		otherSum := stockValue + totalDebtRepayment + productValue - maxValue

		adjustment := 0.0
		if denomAdj := maxValue - stockValue; denomAdj != 0 {
			adjustment = (maxValue - otherSum) / denomAdj
		}
		rateAdjustment = &adjustment
		finalAdjustedRate = additionalAdjustmentBeta * (1 - adjustment)
		triggerApplied = true
	}

	if rateAdjustment != nil {
		rounded := round6(*rateAdjustment)
		rateAdjustment = &rounded
	}

	return &model.CPRMResponse{
		ExposureID:                       p.ExposureID,
		AssumedBadDebtOccurrenceRate:     round6(assumedOccurrenceRate),
		ConvertibleBondRate:              round6(convertibleBondRate),
		ConvertibleBondFirstAmount:       round2(convertibleBondFirst),
		AveragePastBadDebtRecovery:       round2(averagePastBadDebtRecovery),
		AverageConvertibleBondPrice:      round2(averageConvertibleBondPrice),
		AdditionalAdjustmentBeta:         round6(additionalAdjustmentBeta),
		FinalConvertibleBondAmount:       round2(finalConvertibleBondAmount),
		TriggerApplied:                   triggerApplied,
		ConvertibleBondRateAdjustment:    rateAdjustment,
		FinalAdjustedConvertibleBondRate: round6(finalAdjustedRate),
	}
}

// CompoundOCI runs the SEBIT-C-OCIM model: quarterly compound adjustments in
// ascending quarter order plus a 30% annual growth trigger on the year-end
// balance.
func CompoundOCI(p *model.COCIMRequest) *model.COCIMResponse {
	accountRatio := p.OCIAccountBalance / nonZero(p.TotalOCIAmount)
	initialCompoundMeasurement := p.OCIAccountBalance / nonZero(math.Pow(1+p.PolicyRate, p.UsefulLifeYearsRemaining))

	quarterly := make([]model.COCIMQuarterResult, 0, len(p.QuarterlyData))
	for _, q := range p.QuarterlyData {
		numerator := p.InitialRecognitionAmount + (q.PreCompoundBalance - q.PostCompoundBalance)
		denominator := 1 +
			((q.CurrentQuarterYield + q.PreviousQuarterYield) - (q.PreviousQuarterRate + q.CurrentQuarterRate)) -
			p.InitialRecognitionAmount
		adjustmentValue := 0.0
		if denominator != 0 {
			adjustmentValue = numerator / denominator
		}
		quarterly = append(quarterly, model.COCIMQuarterResult{
			QuarterIndex:        q.QuarterIndex,
			AdjustmentValue:     round6(adjustmentValue),
			PreCompoundBalance:  round2(q.PreCompoundBalance),
			PostCompoundBalance: round2(q.PostCompoundBalance),
		})
	}

	annualGrowthRate := 0.0
	if p.InitialRecognitionAmount != 0 {
		annualGrowthRate = (p.YearEndBalance - p.InitialRecognitionAmount) / p.InitialRecognitionAmount
	}

	finalCompoundIncrease := p.YearEndBalance - p.InitialRecognitionAmount
	compoundAdjustmentAmount := 0.0
	triggerApplied := false
	if annualGrowthRate >= 0.30 {
		compoundAdjustmentAmount = finalCompoundIncrease * annualGrowthRate
		triggerApplied = true
	}

	finalAdjustedBalance := p.YearEndBalance + compoundAdjustmentAmount

	return &model.COCIMResponse{
		PortfolioLabel:               p.PortfolioLabel,
		AccountRatio:                 round6(accountRatio),
		InitialCompoundMeasurement:   round6(initialCompoundMeasurement),
		QuarterlyAdjustments:         quarterly,
		AnnualCompoundGrowthRate:     round6(annualGrowthRate),
		CompoundGrowthTriggerApplied: triggerApplied,
		CompoundAdjustmentAmount:     round6(compoundAdjustmentAmount),
		FinalAdjustedBalance:         round2(finalAdjustedBalance),
	}
}

// normalizeTradeRatio wraps a negative trade ratio into (0, 1) by repeated +1
// shifts followed by reflection, so it can feed a logarithm.
func normalizeTradeRatio(value float64) float64 {
	if value >= 0 {
		return value
	}
	adjusted := value
	for adjusted < 0 {
		adjusted++
	}
	adjusted = 1 - math.Abs(adjusted)
	if adjusted == 0 {
		adjusted = 1e-6
	}
	return adjusted
}

// FXAdjustment runs the SEBIT-FAREX model: trade ratios from export/import
// deltas, a log-based export/import beta, an adjustment indicator whose sign
// decides between the multiplicative and subtractive form, and a final rate
// that divides by the indicator once its magnitude reaches 1.5.
func FXAdjustment(p *model.FAREXRequest) *model.FAREXResponse {
	numeratorLastYear := (p.LastYearPrevMonthExport-p.LastYearPrevMonthImport)/nonZero(p.LastYearPrevMonthExport) -
		(p.LastYearPrevMonthImport-p.LastYearPrevMonthExport)/nonZero(p.LastYearPrevMonthImport)
	denominatorLastYear := (p.LastYearCurrentMonthExport-p.LastYearCurrentMonthImport)/nonZero(p.LastYearCurrentMonthExport) -
		(p.LastYearCurrentMonthImport-p.LastYearCurrentMonthExport)/nonZero(p.LastYearCurrentMonthImport)
	lastYearTradeRatio := 0.0
	if denominatorLastYear != 0 {
		lastYearTradeRatio = numeratorLastYear / denominatorLastYear
	}

	numeratorCurrent := (p.CurrentYearPrevMonthExport - p.LastYearCurrentMonthExport) -
		(p.CurrentYearPrevMonthImport - p.LastYearCurrentMonthImport)
	denominatorCurrent := (p.CurrentYearPrevMonthImport - p.LastYearCurrentMonthExport) -
		(p.CurrentYearPrevMonthExport - p.LastYearCurrentMonthImport)
	adjustmentTerm := 0.0
	if denominatorCurrent != 0 {
		adjustmentTerm = numeratorCurrent / denominatorCurrent
	}
	currentYearTradeRatio := lastYearTradeRatio - adjustmentTerm

	normLastYear := normalizeTradeRatio(lastYearTradeRatio)
	normCurrentYear := normalizeTradeRatio(currentYearTradeRatio)
	exportImportBeta := 0.0
	if normCurrentYear != 0 {
		exportImportBeta = safeLogRatio(normLastYear, normCurrentYear)
	}

	ratioComponentNumerator := p.LastYearPrevMonthExport + p.LastYearCurrentMonthExport - p.CurrentYearPrevMonthExport
	ratioComponentDenominator := p.LastYearPrevMonthImport + p.LastYearCurrentMonthImport - p.LastYearPrevMonthImport
	if ratioComponentDenominator == 0 {
		ratioComponentDenominator = p.LastYearCurrentMonthImport
	}
	if ratioComponentDenominator == 0 {
		ratioComponentDenominator = 1e-6
	}
	ratioComponent := ratioComponentNumerator / ratioComponentDenominator

	var adjustmentIndicator float64
	if exportImportBeta >= 0 {
		adjustmentIndicator = 1 - exportImportBeta*ratioComponent
	} else {
		adjustmentIndicator = 1 + math.Abs(exportImportBeta)*ratioComponent
	}

	inflationAdjustedRate := p.SpotRate * ((1 + p.InflationRateHome) / (1 + p.InflationRateForeign))

	var finalAdjustedRate float64
	if math.Abs(adjustmentIndicator) >= 1.5 && adjustmentIndicator != 0 {
		finalAdjustedRate = inflationAdjustedRate / adjustmentIndicator
	} else {
		finalAdjustedRate = inflationAdjustedRate * adjustmentIndicator
	}

	revaluationAmount := p.BaseCurrencyAmount * (finalAdjustedRate - p.SpotRate)

	return &model.FAREXResponse{
		ContractID:            p.ContractID,
		LastYearTradeRatio:    round6(lastYearTradeRatio),
		CurrentYearTradeRatio: round6(currentYearTradeRatio),
		ExportImportBeta:      round6(exportImportBeta),
		AdjustmentIndicator:   round6(adjustmentIndicator),
		InflationAdjustedRate: round6(inflationAdjustedRate),
		FinalAdjustedRate:     round6(finalAdjustedRate),
		RevaluationAmount:     round2(revaluationAmount),
	}
}
