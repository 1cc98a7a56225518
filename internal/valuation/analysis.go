package valuation

import (
	"math"
	"strings"

	"sebit-engine/internal/model"
)

// normalizeProfitAngle nudges angles sitting on a 90-degree singularity so
// the tangent stays finite.
func normalizeProfitAngle(angleDeg float64) float64 {
	remainder := math.Mod(angleDeg, 180.0)
	if remainder < 0 {
		remainder += 180.0
	}
	if math.Abs(remainder-90.0) < 1e-6 {
		tweak := 0.001
		if angleDeg < 90.0 {
			tweak = -0.001
		}
		return angleDeg + tweak
	}
	return angleDeg
}

func profitWave(angleDeg, angleAdjustment float64) (wave float64, reached, crossed bool) {
	adjustedAngle := normalizeProfitAngle(angleDeg + angleAdjustment)
	tangent := math.Tan(radians(adjustedAngle))

	denominator := 180.0 - angleAdjustment
	if math.Abs(denominator) < 1e-6 {
		denominator = 1e-6
	}

	raw := -tangent / denominator
	reached = adjustedAngle >= 180.0
	crossed = adjustedAngle >= 181.0

	if crossed {
		return math.Abs(raw), reached, crossed
	}
	return raw, reached, crossed
}

func radians(deg float64) float64 { return deg * math.Pi / 180.0 }

// TCTBreakEven runs the SEBIT-TCT-BEAM model over at most five years: cost
// ratios map to angles in degrees, sine/cosine waves track the fixed and
// variable components, and break-even is flagged when the adjusted profit
// angle crosses 180 degrees (sign flip past 181).
func TCTBreakEven(p *model.TCTBeamRequest) *model.TCTBeamResponse {
	years := minInt(len(p.FixedCosts), 5)
	var schedule []model.TCTBeamYearEntry

	havePrev := false
	prevFixedRatio := 0.0
	prevVariableRatio := 0.0
	cumulativeFixed := 0.0
	cumulativeVariable := 0.0
	cumulativeProfit := 0.0
	var breakEvenYearIndex *int

	for idx := 0; idx < years; idx++ {
		fixed := p.FixedCosts[idx]
		variable := p.VariableCosts[idx]
		operatingProfit := p.OperatingProfits[idx]

		totalCost := fixed + variable
		fixedRatio := 0.0
		variableRatio := 0.0
		if totalCost != 0 {
			fixedRatio = fixed / totalCost
			variableRatio = variable / totalCost
		}

		fixedChange := 0.0
		variableChange := 0.0
		if havePrev {
			fixedChange = fixedRatio - prevFixedRatio
			variableChange = variableRatio - prevVariableRatio
		}

		angleAdjustment := (fixedChange + variableChange) * 180.0

		fixedAngle := fixedRatio*180.0 + angleAdjustment
		variableAngle := variableRatio*180.0 + angleAdjustment

		fixedWave := math.Sin(radians(fixedAngle))
		variableWave := math.Cos(radians(variableAngle))

		operatingProfitRatio := 0.0
		if totalCost != 0 {
			operatingProfitRatio = operatingProfit / totalCost
		}
		baselineProfitAngle := operatingProfitRatio * 180.0

		wave, reached, crossed := profitWave(baselineProfitAngle, angleAdjustment)

		if reached && breakEvenYearIndex == nil {
			year := idx + 1
			breakEvenYearIndex = &year
		}

		var notes []string
		if reached {
			notes = append(notes, "Break-even threshold reached")
		}
		if crossed {
			notes = append(notes, "Break-even surpassed; profit wave sign flipped")
		}
		if math.Abs(angleAdjustment) > 90.0 {
			notes = append(notes, "High variability adjustment (>90 degrees)")
		}
		var noteText *string
		if len(notes) > 0 {
			joined := strings.Join(notes, "; ")
			noteText = &joined
		}

		schedule = append(schedule, model.TCTBeamYearEntry{
			YearIndex:                  idx + 1,
			FixedCostTotal:             round2(fixed),
			VariableCostTotal:          round2(variable),
			OperatingProfit:            round2(operatingProfit),
			TotalCost:                  round2(totalCost),
			FixedCostRatio:             round6(fixedRatio),
			VariableCostRatio:          round6(variableRatio),
			FixedRatioChange:           round6(fixedChange),
			VariableRatioChange:        round6(variableChange),
			AngleAdjustmentDegrees:     round6(angleAdjustment),
			FixedCostWave:              round6(fixedWave),
			VariableCostWave:           round6(variableWave),
			OperatingProfitRatio:       round6(operatingProfitRatio),
			BaselineProfitAngleDegrees: round6(baselineProfitAngle),
			AdjustedProfitAngleDegrees: round6(normalizeProfitAngle(baselineProfitAngle + angleAdjustment)),
			ProfitWaveValue:            round6(wave),
			BreakEvenReached:           reached,
			BreakEvenCrossed:           crossed,
			Notes:                      noteText,
		})

		havePrev = true
		prevFixedRatio = fixedRatio
		prevVariableRatio = variableRatio
		cumulativeFixed += fixed
		cumulativeVariable += variable
		cumulativeProfit += operatingProfit
	}

	return &model.TCTBeamResponse{
		ModelLabel:                p.ModelLabel,
		EvaluationYears:           years,
		CumulativeFixedCost:       round2(cumulativeFixed),
		CumulativeVariableCost:    round2(cumulativeVariable),
		CumulativeOperatingProfit: round2(cumulativeProfit),
		BreakEvenYearIndex:        breakEvenYearIndex,
		Schedule:                  schedule,
	}
}

// monthlyRisk derives the monthly growth risk and its bounded reciprocal
// adjustment shared by the CPMRV and DCBPRA models.
func monthlyRisk(lastYearAverage, currentYearRatio float64, monthsElapsed *int) (risk, component float64, direction string) {
	remainingMonths := 12.0
	if monthsElapsed != nil {
		remainingMonths = math.Max(1, 12-float64(*monthsElapsed))
	}

	risk = (lastYearAverage - currentYearRatio) / remainingMonths

	denom := nonZero(1.0 + risk)
	component = math.Abs(1.0 / denom)

	direction = model.RiskUpside
	if risk < 0 {
		direction = model.RiskDownside
	}
	return risk, component, direction
}

// CryptoRealValue runs the single-shot SEBIT-CPMRV model.
func CryptoRealValue(p *model.CPMRVRequest) *model.CPMRVResponse {
	lastYearAverage := safeLogRatio(p.LastYearGrowthRate, math.Abs(p.LastYearDrawdown))
	currentYearRatio := safeLogRatio(p.CurrentYearCumulativeGrowth, math.Abs(p.CurrentYearCumulativeDrawdown))

	risk, component, direction := monthlyRisk(lastYearAverage, currentYearRatio, p.MonthsElapsed)

	relativeRisk := 1.0 + component
	if risk < 0 {
		relativeRisk = 1.0 - component
	}

	adjustedValue := p.CurrentFairValue * relativeRisk

	return &model.CPMRVResponse{
		AssetLabel:                 p.AssetLabel,
		LastYearAveragePerformance: round6(lastYearAverage),
		CurrentYearLogRatio:        round6(currentYearRatio),
		MonthlyGrowthRisk:          round6(risk),
		RiskDirection:              direction,
		RelativeAssetRisk:          round6(relativeRisk),
		AdjustedCryptoValue:        round2(adjustedValue),
	}
}

func growthAdjustmentFactor(actualGrowthRate float64) (percentageFactor, realAdjustment float64) {
	percentageFactor = actualGrowthRate / 100.0
	absPercentage := math.Abs(percentageFactor)
	if absPercentage <= eps {
		absPercentage = eps
	}
	component := math.Abs(1.0 / absPercentage)
	if percentageFactor < 0 {
		return percentageFactor, 1.0 - component
	}
	return percentageFactor, 1.0 + component
}

// DynamicCAPM runs the single-shot SEBIT-DCBPRA model: the CAPM beta is
// scaled by the monthly growth risk adjustment and the expected return by the
// real growth factor.
func DynamicCAPM(p *model.DCBPRARequest) *model.DCBPRAResponse {
	growthPercentageFactor, realGrowthAdjustment := growthAdjustmentFactor(p.ActualGrowthRate)

	lastYearAverage := safeLogRatio(p.LastYearGrowthRate, math.Abs(p.LastYearDrawdown))
	currentYearRatio := safeLogRatio(p.CurrentYearCumulativeGrowth, math.Abs(p.CurrentYearCumulativeDrawdown))

	risk, component, direction := monthlyRisk(lastYearAverage, currentYearRatio, p.MonthsElapsed)

	adjustmentMultiplier := 1.0 + component
	if risk < 0 {
		adjustmentMultiplier = 1.0 - component
	}

	adjustedBeta := p.Beta * adjustmentMultiplier

	baselineCAPMReturn := p.RiskFreeRate + (p.MarketReturnRate-p.RiskFreeRate)*p.Beta
	adjustedExpectedReturn := (p.RiskFreeRate + (p.MarketReturnRate-p.RiskFreeRate)*adjustedBeta) * realGrowthAdjustment

	return &model.DCBPRAResponse{
		AssetLabel:                 p.AssetLabel,
		GrowthPercentageFactor:     round6(growthPercentageFactor),
		RealGrowthAdjustment:       round6(realGrowthAdjustment),
		LastYearAveragePerformance: round6(lastYearAverage),
		CurrentYearLogRatio:        round6(currentYearRatio),
		MonthlyGrowthRisk:          round6(risk),
		RiskAdjustmentComponent:    round6(component),
		RiskDirection:              direction,
		AdjustedBeta:               round6(adjustedBeta),
		BaselineCAPMReturn:         round6(baselineCAPMReturn),
		AdjustedExpectedReturn:     round6(adjustedExpectedReturn),
	}
}

// ServiceRevenueAccrual runs the single-shot SEBIT-PSRAS model.
func ServiceRevenueAccrual(p *model.PSRASRequest) *model.PSRASResponse {
	baseRatioDenominator := p.PrepaidCostTotal1Y
	if math.Abs(baseRatioDenominator) <= eps {
		baseRatioDenominator = eps
	}
	baseRatio := p.PrepaidCostAverage1Y * p.SubscriberCount / baseRatioDenominator
	if baseRatio <= 0 {
		baseRatio = eps
	}

	exponentComponent := 1.0
	if math.Abs(p.RetainedContractCount) > eps {
		exponentComponent = 1.0 - p.NewContractCount/p.RetainedContractCount
	}

	assumedRecognitionRate := math.Pow(baseRatio, exponentComponent)

	newSubscriberCount := p.NewSubscriberCount
	if math.Abs(newSubscriberCount) <= eps {
		newSubscriberCount = eps
	}
	newAvgPayment := p.NewSubscriberTotalPayment / newSubscriberCount

	existingPaymentTotal := p.TotalCustomerPayments - p.CancelledCustomerPayments
	existingCustomerCount := p.TotalSubscribersInPeriod - p.CancelledCustomersInPeriod
	if math.Abs(existingCustomerCount) <= eps {
		existingCustomerCount = eps
	}
	existingAvgPayment := existingPaymentTotal / existingCustomerCount

	cancelledPayments := p.CancelledCustomerPayments
	if math.Abs(cancelledPayments) <= eps {
		cancelledPayments = eps
	}
	denominatorPayments := p.NewSubscriberTotalPayment + existingPaymentTotal
	if math.Abs(denominatorPayments) <= eps {
		denominatorPayments = eps
	}
	paymentComparisonIndex := safeLogRatio(cancelledPayments, denominatorPayments)

	paymentMultiplier := 1.0 + math.Abs(paymentComparisonIndex)
	if paymentComparisonIndex >= 0 {
		paymentMultiplier = 1.0 - paymentComparisonIndex
	}

	paymentBaselineAmount := p.TotalPrepaidAndUnearned * paymentMultiplier

	adjustmentFactor := 1.0 - assumedRecognitionRate
	purePerformanceBreakEven := (existingAvgPayment+newAvgPayment)*adjustmentFactor -
		paymentBaselineAmount*adjustmentFactor

	betaStyleFactor := 0.0
	if math.Abs(p.VarianceContractEquityAdjustment) > eps {
		betaStyleFactor = p.CovarianceContractEquityVsPrepaid / p.VarianceContractEquityAdjustment
	}

	finalRecognisedRevenue := p.TotalContractDeposits*p.CurrentYearYield + purePerformanceBreakEven*betaStyleFactor

	return &model.PSRASResponse{
		PortfolioLabel:                   p.PortfolioLabel,
		AssumedRevenueRecognitionRate:    round6(assumedRecognitionRate),
		NewSubscriberAveragePayment:      round2(newAvgPayment),
		ExistingSubscriberAveragePayment: round2(existingAvgPayment),
		PaymentComparisonIndex:           round6(paymentComparisonIndex),
		PaymentIndexBaselineAmount:       round2(paymentBaselineAmount),
		PurePerformanceBreakEven:         round2(purePerformanceBreakEven),
		FinalRecognisedRevenue:           round2(finalRecognisedRevenue),
	}
}

// PairedRevaluation runs the single-shot SEBIT-LSMRV model over a pair of
// return series: covariance log-growth, an operating adjustment through a
// square-root exponential, and a cash-flow power component compose the
// expected adjustment value.
func PairedRevaluation(p *model.LSMRVRequest) *model.LSMRVResponse {
	probabilityA := 100.0 / nonZero(p.PriceBandCountA)
	probabilityB := 100.0 / nonZero(p.PriceBandCountB)

	growthSum := p.LastEvaluationGrowthA + p.LastEvaluationGrowthB
	if math.Abs(growthSum) <= eps {
		growthSum = eps
	}

	logRatio := safeLogRatio(p.LastEvaluationGrowthA, p.LastEvaluationGrowthB)
	growthModifier := 1.0 - math.Abs(logRatio)
	if logRatio >= 0 {
		growthModifier = 1.0 + logRatio
	}
	if math.Abs(growthModifier) < eps {
		growthModifier = eps
	}

	growthCorrectionValue := (p.HighestPreferenceA - p.HighestPreferenceB) / (growthSum * growthModifier)

	adjustmentDenominator := p.StandardSampleSize - (p.PriceBandCriterionCount + p.TotalStandardUsage)
	if math.Abs(adjustmentDenominator) <= eps {
		adjustmentDenominator = eps
	}
	cumulativeAdjustmentValue := growthCorrectionValue / adjustmentDenominator

	pairedLength := minInt(len(p.ReturnsA), len(p.ReturnsB))
	covariance := eps
	if pairedLength >= 2 {
		avgA := 0.0
		avgB := 0.0
		for i := 0; i < pairedLength; i++ {
			avgA += p.ReturnsA[i]
			avgB += p.ReturnsB[i]
		}
		avgA /= float64(pairedLength)
		avgB /= float64(pairedLength)
		sum := 0.0
		for i := 0; i < pairedLength; i++ {
			sum += (p.ReturnsA[i] - avgA) * (p.ReturnsB[i] - avgB)
		}
		covariance = sum / float64(pairedLength-1)
		if math.Abs(covariance) <= eps {
			covariance = eps
		}
	}

	baselineCovariance := p.PreviousCovariance
	if math.Abs(baselineCovariance) <= eps {
		baselineCovariance = eps
	}
	covarianceGrowth := safeLogRatio(math.Abs(covariance), math.Abs(baselineCovariance))
	if math.Abs(covarianceGrowth) < eps {
		covarianceGrowth = eps
	}
	covariance = math.Copysign(math.Abs(covarianceGrowth), covariance)

	operatingRatio := p.OperatingProfitPrevious / nonZero(p.AccountsReceivablePrevious)
	sqrtComponent := math.Sqrt(math.Max(operatingRatio/covariance*p.ROI, 0.0))
	operatingAdjustment := math.Exp(sqrtComponent)

	cashFlowRatio := p.MarketPrice * p.ActualCashFlow / nonZero(p.EstimatedCashFlow)
	operatingComponent := operatingAdjustment * cashFlowRatio

	noiseDiscountSum := p.NoiseFactor + p.DiscountRate
	if math.Abs(noiseDiscountSum) <= eps {
		noiseDiscountSum = eps
	}
	noiseDiscountComponent := 1.0 / noiseDiscountSum * cumulativeAdjustmentValue

	investmentRatio := math.Abs(p.CurrentInvestmentCashFlow / nonZero(p.CurrentTotalCashFlow))
	logCashflowRatio := safeLogRatio(p.CurrentInvestmentCashFlow, p.PreviousInvestmentCashFlow)
	cashflowExponent := 1.0 + math.Abs(logCashflowRatio)
	if logCashflowRatio >= 0 {
		cashflowExponent = 1.0 - logCashflowRatio
	}
	cashflowComponent := math.Pow(investmentRatio, cashflowExponent)

	expectedAdjustmentValue := operatingComponent * noiseDiscountComponent * cashflowComponent

	finalAdjustmentAmount := (p.HighestPreferenceA + p.HighestPreferenceB) * expectedAdjustmentValue

	return &model.LSMRVResponse{
		EvaluationLabel:           p.EvaluationLabel,
		ProbabilityDistributionA:  round6(probabilityA),
		ProbabilityDistributionB:  round6(probabilityB),
		GrowthCorrectionValue:     round6(growthCorrectionValue),
		CumulativeAdjustmentValue: round6(cumulativeAdjustmentValue),
		ExpectedAdjustmentValue:   round6(expectedAdjustmentValue),
		FinalAdjustmentAmount:     round2(finalAdjustmentAmount),
	}
}
