package valuation

import (
	"math"

	"sebit-engine/internal/model"
)

// DynamicDepreciation runs the SEBIT-DDA model: a yearly depreciation
// schedule with usage-variance scaling, market sensitivity derived from the
// reference price series, and loss recognition capped at 1.2x acquisition
// cost (trigger 6-3-1). The schedule stops early once the carrying value
// reaches the salvage value.
func DynamicDepreciation(p *model.DDARequest) *model.DDAResponse {
	years := p.UsefulLifeYears

	planned := p.PlannedUsageDaysPerYear
	if planned == nil {
		planned = make([]int, years)
		for i := range planned {
			planned[i] = 365
		}
	}
	actual := p.ActualUsageDaysPerYear
	if actual == nil {
		actual = planned
	}
	unused := p.UnusedDaysPerYear
	if unused == nil {
		unused = make([]int, years)
		for i := range unused {
			if d := planned[i] - actual[i]; d > 0 {
				unused[i] = d
			}
		}
	}

	var market []float64
	if p.MarketPriceSeries != nil {
		market = append(market, p.MarketPriceSeries...)
		if len(market) == years {
			market = append(market, market[len(market)-1])
		}
	} else {
		market = make([]float64, years+1)
		for i := range market {
			market[i] = p.AcquisitionCost
		}
	}

	depreciableTotal := math.Max(p.AcquisitionCost-p.SalvageValue, 0.0)
	effectiveTotalDays := 0
	for i := 0; i < years; i++ {
		if d := planned[i] - unused[i]; d > 0 {
			effectiveTotalDays += d
		}
	}
	dailyDepreciation := 0.0
	if effectiveTotalDays > 0 {
		dailyDepreciation = depreciableTotal / float64(effectiveTotalDays)
	}

	var schedule []model.DDAScheduleEntry
	remainingValue := p.AcquisitionCost
	cumulativeDepreciation := 0.0
	totalRevaluationGainLoss := 0.0
	totalUnrecognised := 0.0

	for year := 1; year <= years; year++ {
		if remainingValue <= p.SalvageValue {
			break
		}

		planDays := planned[year-1]
		actualDays := actual[year-1]
		usageRatio := 0.0
		if planDays > 0 {
			usageRatio = float64(actualDays-planDays) / float64(planDays)
		}

		annualBase := dailyDepreciation * math.Max(float64(actualDays), 0)
		usageFactor := 1 + usageRatio

		prevIdx := minInt(year-1, len(market)-1)
		currIdx := minInt(year, len(market)-1)
		r := logChange(market[currIdx], market[prevIdx])
		marketSensitivity := math.Exp(r*p.UsageElasticity) * p.Beta

		depreciationRaw := annualBase * usageFactor * p.AdjustmentFactor
		depreciationCap := math.Max(remainingValue-p.SalvageValue, 0.0)
		depreciationExpense := math.Min(math.Max(depreciationRaw, 0.0), depreciationCap)
		postDepreciationValue := remainingValue - depreciationExpense

		baselineRevaluationValue := postDepreciationValue * marketSensitivity
		baselineGainLoss := baselineRevaluationValue - postDepreciationValue

		projectedCumulative := cumulativeDepreciation + depreciationExpense
		var triggerStage *string
		unrecognised := 0.0
		var finalRevaluationValue, revaluationGainLoss float64

		if baselineGainLoss < 0 {
			baselineLoss := -baselineGainLoss
			allowedLoss := math.Max(0.0, 1.2*p.AcquisitionCost-projectedCumulative)
			recognisedLossAbs := math.Min(baselineLoss, allowedLoss)
			recognisedLoss := -recognisedLossAbs
			if recognisedLossAbs < baselineLoss {
				triggerStage = stage(model.TriggerLossCap)
			}
			finalRevaluationValue = math.Max(postDepreciationValue+recognisedLoss, p.SalvageValue)
			revaluationGainLoss = recognisedLoss
			unrecognised = baselineLoss - recognisedLossAbs
		} else {
			finalRevaluationValue = baselineRevaluationValue
			revaluationGainLoss = baselineGainLoss
		}

		closingBookValue := finalRevaluationValue
		adjustmentMultiplier := 0.0
		if annualBase != 0 {
			adjustmentMultiplier = depreciationExpense / annualBase
		}

		schedule = append(schedule, model.DDAScheduleEntry{
			YearIndex:                year,
			OpeningBookValue:         round2(remainingValue),
			DepreciationExpense:      round2(depreciationExpense),
			ClosingBookValue:         round2(closingBookValue),
			BaselineRevaluationValue: round2(baselineRevaluationValue),
			FinalRevaluationValue:    round2(finalRevaluationValue),
			RevaluationGainLoss:      round2(revaluationGainLoss),
			TriggerStage:             triggerStage,
			UnrecognisedRevaluation:  round2(unrecognised),
			AdjustmentMultiplier:     round4(adjustmentMultiplier),
			UsageRatio:               round4(usageRatio),
			MarketSensitivity:        round4(marketSensitivity),
		})

		remainingValue = closingBookValue
		cumulativeDepreciation = projectedCumulative
		totalRevaluationGainLoss += revaluationGainLoss
		totalUnrecognised += unrecognised
	}

	return &model.DDAResponse{
		AssetLabel:                   p.AssetLabel,
		Schedule:                     schedule,
		TotalDepreciation:            round2(cumulativeDepreciation),
		TotalRevaluationGainLoss:     round2(totalRevaluationGainLoss),
		TotalUnrecognisedRevaluation: round2(totalUnrecognised),
	}
}

// LeaseAmortization runs the SEBIT-LAM model. Each period derives the daily
// amortization amount, the usage variance ratio (hour-based when hour series
// are supplied), a constant interest expense, and the market sensitivity from
// the fair-value series, then applies the trigger cascade:
//
//	6-3-1  loss recognition capped at 1.2x initial value, excess deferred
//	6-1/6-2/6-3 reverse-impairment cascade on heavy-usage revaluations
//	cap    closing reset to opening when accumulated depreciation plus the
//	       remaining loss would exceed the initial value
func LeaseAmortization(p *model.LAMRequest) *model.LAMResponse {
	periods := p.LeaseTermYears

	plannedDays := p.PlannedUsageDaysPerPeriod
	if plannedDays == nil {
		plannedDays = make([]int, periods)
		for i := range plannedDays {
			plannedDays[i] = 365
		}
	}
	actualDays := p.ActualUsageDaysPerPeriod
	if actualDays == nil {
		actualDays = plannedDays
	}
	unusedDays := p.UnusedDaysPerPeriod
	if unusedDays == nil {
		unusedDays = make([]int, periods)
		for i := range unusedDays {
			if plannedDays[i] >= actualDays[i] {
				unusedDays[i] = plannedDays[i] - actualDays[i]
			}
		}
	}

	var fairValues []float64
	if p.MarketFairValues != nil {
		fairValues = append(fairValues, p.MarketFairValues...)
		if len(fairValues) == periods {
			fairValues = append([]float64{p.InitialAssetValue}, fairValues...)
		}
	} else {
		fairValues = []float64{p.InitialAssetValue}
	}

	ifrsLosses := make([]float64, periods)
	copy(ifrsLosses, p.IFRSRevaluationLosses)

	var schedule []model.LAMScheduleEntry
	openingBalance := p.InitialAssetValue
	accumulatedDepreciation := p.AccumulatedDepreciationOpening
	totalInterestExpense := 0.0
	totalGainLoss := 0.0
	totalTerminationAdjustment := 0.0

	interestExpense := p.InitialAssetValue * p.DiscountRate

	totalPlannedDays := 0
	for _, d := range plannedDays {
		totalPlannedDays += d
	}
	totalUnusedDays := 0
	for _, d := range unusedDays {
		totalUnusedDays += d
	}
	effectiveTotalDays := totalPlannedDays - totalUnusedDays
	if effectiveTotalDays < 1 {
		effectiveTotalDays = 1
	}
	baseDailyAmortization := p.InitialAssetValue / float64(effectiveTotalDays)

	for period := 1; period <= periods; period++ {
		planDays := plannedDays[period-1]
		actualUsedDays := actualDays[period-1]

		standardUsage := float64(planDays)
		if len(p.StandardDailyUsageHours) > 0 {
			standardUsage = p.StandardDailyUsageHours[period-1]
		}
		actualUsageMeasure := float64(actualUsedDays)
		if len(p.ActualDailyUsageHours) > 0 {
			actualUsageMeasure = p.ActualDailyUsageHours[period-1]
		}

		usageRatio := 0.0
		if standardUsage != 0 {
			usageRatio = (actualUsageMeasure - standardUsage) / standardUsage
		}

		depreciationComponent := baseDailyAmortization * float64(actualUsedDays) * (1 + usageRatio)
		currentDepreciation := math.Max(depreciationComponent, 0.0)
		projectedAccumulated := accumulatedDepreciation + currentDepreciation

		baseAfterDepreciation := math.Max(openingBalance-depreciationComponent, p.ResidualValue)

		var prevFairValue, currentFairValue float64
		if len(fairValues) > period {
			prevFairValue = fairValues[period-1]
			currentFairValue = fairValues[period]
		} else {
			prevFairValue = fairValues[len(fairValues)-1]
			currentFairValue = prevFairValue
		}

		marketChangeIndex := logChange(currentFairValue, prevFairValue)
		marketSensitivity := math.Exp(marketChangeIndex*float64(p.LeaseTermYears)) * p.Beta

		baselineRevaluationValue := baseAfterDepreciation * marketSensitivity

		var triggerStage *string
		postTriggerValue := baselineRevaluationValue

		baselineGainLoss := baselineRevaluationValue - openingBalance
		baselineLossMagnitude := math.Max(0.0, -baselineGainLoss)
		terminationAdjustment := 0.0
		var revaluationGainLoss float64

		totalLossProjection := projectedAccumulated + baselineLossMagnitude

		if totalLossProjection >= 1.2*p.InitialAssetValue {
			capacity := math.Max(0.0, 1.2*p.InitialAssetValue-projectedAccumulated)
			recognisedLoss := -math.Min(baselineLossMagnitude, capacity)
			postTriggerValue = openingBalance + recognisedLoss
			triggerStage = stage(model.TriggerLossCap)
			revaluationGainLoss = recognisedLoss
			terminationAdjustment = baselineGainLoss - recognisedLoss
		} else {
			nominalDays := float64(p.LeaseTermYears * 365)
			if nominalDays < 1 {
				nominalDays = 1
			}
			usageCondition := float64(actualUsedDays)/nominalDays >= 0.75
			revaluationCondition := math.Abs(baselineGainLoss) > 2*p.InitialAssetValue

			if usageCondition && revaluationCondition {
				currentValue := (baselineRevaluationValue - p.ResidualValue) * (1 - 0.3)
				triggerStage = stage(model.TriggerReverseImpairment)

				if math.Abs(currentValue) > 2*p.InitialAssetValue {
					currentValue -= ifrsLosses[period-1]
					triggerStage = stage(model.TriggerIFRSLossDeduction)

					if math.Abs(currentValue) > 2*p.InitialAssetValue {
						currentValue -= ifrsLosses[period-1]
						triggerStage = stage(model.TriggerIFRSLossDeduction2)
					}
				}

				postTriggerValue = currentValue
			}

			revaluationGainLoss = postTriggerValue - openingBalance
			lossComponent := math.Max(0.0, -revaluationGainLoss)

			if projectedAccumulated+lossComponent > p.InitialAssetValue {
				terminationAdjustment = baselineGainLoss - revaluationGainLoss
				postTriggerValue = openingBalance
				revaluationGainLoss = 0.0
				if triggerStage == nil {
					triggerStage = stage(model.TriggerFinalCap)
				}
			} else {
				terminationAdjustment = baselineGainLoss - revaluationGainLoss
			}
		}

		accumulatedDepreciation = projectedAccumulated
		closingBalance := postTriggerValue

		totalInterestExpense += interestExpense
		totalGainLoss += revaluationGainLoss
		totalTerminationAdjustment += terminationAdjustment

		schedule = append(schedule, model.LAMScheduleEntry{
			PeriodIndex:              period,
			OpeningBalance:           round2(openingBalance),
			ClosingBalance:           round2(closingBalance),
			DailyLeaseAmortization:   round4(baseDailyAmortization),
			UsageRatio:               round4(usageRatio),
			InterestExpense:          round2(interestExpense),
			MarketChangeIndex:        round6(marketChangeIndex),
			MarketSensitivity:        round4(marketSensitivity),
			BaselineRevaluationValue: round2(baselineRevaluationValue),
			TriggerStage:             triggerStage,
			PostTriggerValue:         round2(postTriggerValue),
			RevaluationGainLoss:      round2(revaluationGainLoss),
			TerminationAdjustment:    round2(terminationAdjustment),
		})

		openingBalance = closingBalance
	}

	return &model.LAMResponse{
		LeaseLabel:                 p.LeaseLabel,
		Schedule:                   schedule,
		TotalRevaluationGainLoss:   round2(totalGainLoss),
		TotalInterestExpense:       round2(totalInterestExpense),
		TotalTerminationAdjustment: round2(totalTerminationAdjustment),
	}
}

// ResourceValuation runs the single-shot SEBIT-RVM model.
func ResourceValuation(p *model.RVMRequest) *model.RVMResponse {
	dailyAverageExtraction := p.CumulativeExtractionAmount / nonZero(p.CumulativeExtractionDays)

	totalDays := p.CumulativeExtractionDays
	if p.TotalExtractionDaysAtEvaluation != nil && *p.TotalExtractionDaysAtEvaluation > 0 {
		totalDays = *p.TotalExtractionDaysAtEvaluation
	}
	standardExtractionValue := dailyAverageExtraction * p.CurrentUnitExtractionValue * totalDays

	totalExtractionValue := p.CumulativeExtractionAmount * p.CurrentUnitExtractionValue

	extractionRate := 0.0
	if standardExtractionValue != 0 {
		extractionRate = (totalExtractionValue - standardExtractionValue) / standardExtractionValue
	}

	previousValue := 0.0
	if p.PreviousExtractionValue != nil {
		previousValue = *p.PreviousExtractionValue
	}
	if previousValue == 0 {
		previousValue = standardExtractionValue
	}
	if previousValue == 0 {
		previousValue = totalExtractionValue
	}
	marketChangeIndex := logChange(totalExtractionValue, previousValue)

	effectiveYears := math.Max(p.TotalYearsOfUsefulLife-p.ElapsedYears, 0.0)
	marketSensitivity := math.Exp(marketChangeIndex*effectiveYears) * p.Beta

	finalRevaluationValue := totalExtractionValue * (1 + extractionRate) * marketSensitivity

	return &model.RVMResponse{
		ResourceLabel:           p.ResourceLabel,
		DailyAverageExtraction:  round6(dailyAverageExtraction),
		StandardExtractionValue: round2(standardExtractionValue),
		TotalExtractionValue:    round2(totalExtractionValue),
		ExtractionRate:          round6(extractionRate),
		MarketChangeIndex:       round6(marketChangeIndex),
		MarketSensitivity:       round6(marketSensitivity),
		FinalRevaluationValue:   round2(finalRevaluationValue),
	}
}

func stage(s string) *string { return &s }

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
