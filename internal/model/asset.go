package model

// Trigger stages recorded on schedule entries when a threshold rule fires.
const (
	TriggerReverseImpairment  = "6-1"
	TriggerIFRSLossDeduction  = "6-2"
	TriggerIFRSLossDeduction2 = "6-3"
	TriggerLossCap            = "6-3-1"
	TriggerFinalCap           = "cap"
)

// Baseline depreciation methods accepted by the DDA model.
const (
	MethodDoubleDeclining = "double_declining"
	MethodStraightLine    = "straight_line"
)

type DDARequest struct {
	AssetLabel              string    `json:"asset_label,omitempty"`
	AcquisitionCost         float64   `json:"acquisition_cost"`
	SalvageValue            float64   `json:"salvage_value"`
	UsefulLifeYears         int       `json:"useful_life_years"`
	AdjustmentFactor        float64   `json:"adjustment_factor"`
	Method                  string    `json:"method"`
	PlannedUsageDaysPerYear []int     `json:"planned_usage_days_per_year,omitempty"`
	ActualUsageDaysPerYear  []int     `json:"actual_usage_days_per_year,omitempty"`
	UnusedDaysPerYear       []int     `json:"unused_days_per_year,omitempty"`
	MarketPriceSeries       []float64 `json:"market_price_series,omitempty"`
	UsageElasticity         float64   `json:"usage_elasticity"`
	Beta                    float64   `json:"beta"`
}

// Validate fills schema defaults and checks ranges and series lengths.
func (r *DDARequest) Validate() error {
	if r.AdjustmentFactor == 0 {
		r.AdjustmentFactor = 1.0
	}
	if r.UsageElasticity == 0 {
		r.UsageElasticity = 1.0
	}
	if r.Beta == 0 {
		r.Beta = 1.0
	}
	if r.Method == "" {
		r.Method = MethodDoubleDeclining
	}
	if r.Method != MethodDoubleDeclining && r.Method != MethodStraightLine {
		return &ValidationError{Field: "method", Message: "must be double_declining or straight_line"}
	}
	if r.AcquisitionCost <= 0 {
		return errPositive("acquisition_cost")
	}
	if r.SalvageValue < 0 {
		return errNonNegative("salvage_value")
	}
	if r.UsefulLifeYears <= 0 {
		return errPositive("useful_life_years")
	}
	years := r.UsefulLifeYears
	for field, series := range map[string][]int{
		"planned_usage_days_per_year": r.PlannedUsageDaysPerYear,
		"actual_usage_days_per_year":  r.ActualUsageDaysPerYear,
		"unused_days_per_year":        r.UnusedDaysPerYear,
	} {
		if series != nil && len(series) != years {
			return errLength(field, years)
		}
	}
	if r.MarketPriceSeries != nil && len(r.MarketPriceSeries) != years && len(r.MarketPriceSeries) != years+1 {
		return &ValidationError{
			Field:   "market_price_series",
			Message: "must have either useful_life_years or useful_life_years + 1 entries",
		}
	}
	return nil
}

type DDAScheduleEntry struct {
	YearIndex                int     `json:"year_index"`
	OpeningBookValue         float64 `json:"opening_book_value"`
	DepreciationExpense      float64 `json:"depreciation_expense"`
	ClosingBookValue         float64 `json:"closing_book_value"`
	BaselineRevaluationValue float64 `json:"baseline_revaluation_value"`
	FinalRevaluationValue    float64 `json:"final_revaluation_value"`
	RevaluationGainLoss      float64 `json:"revaluation_gain_loss"`
	TriggerStage             *string `json:"trigger_stage"`
	UnrecognisedRevaluation  float64 `json:"unrecognised_revaluation"`
	AdjustmentMultiplier     float64 `json:"adjustment_multiplier"`
	UsageRatio               float64 `json:"usage_ratio"`
	MarketSensitivity        float64 `json:"market_sensitivity"`
}

type DDAResponse struct {
	AssetLabel                   string             `json:"asset_label,omitempty"`
	Schedule                     []DDAScheduleEntry `json:"schedule"`
	TotalDepreciation            float64            `json:"total_depreciation"`
	TotalRevaluationGainLoss     float64            `json:"total_revaluation_gain_loss"`
	TotalUnrecognisedRevaluation float64            `json:"total_unrecognised_revaluation"`
}

type LAMRequest struct {
	LeaseLabel                     string    `json:"lease_label,omitempty"`
	InitialAssetValue              float64   `json:"initial_asset_value"`
	LeaseTermYears                 int       `json:"lease_term_years"`
	DiscountRate                   float64   `json:"discount_rate"`
	ResidualValue                  float64   `json:"residual_value"`
	PlannedUsageDaysPerPeriod      []int     `json:"planned_usage_days_per_period,omitempty"`
	ActualUsageDaysPerPeriod       []int     `json:"actual_usage_days_per_period,omitempty"`
	UnusedDaysPerPeriod            []int     `json:"unused_days_per_period,omitempty"`
	ActualDailyUsageHours          []float64 `json:"actual_daily_usage_hours,omitempty"`
	StandardDailyUsageHours        []float64 `json:"standard_daily_usage_hours,omitempty"`
	MarketFairValues               []float64 `json:"market_fair_values,omitempty"`
	IFRSRevaluationLosses          []float64 `json:"ifrs_revaluation_losses,omitempty"`
	UsageElasticity                float64   `json:"usage_elasticity"`
	Beta                           float64   `json:"beta"`
	AccumulatedDepreciationOpening float64   `json:"accumulated_depreciation_opening"`
}

func (r *LAMRequest) Validate() error {
	if r.UsageElasticity == 0 {
		r.UsageElasticity = 1.0
	}
	if r.Beta == 0 {
		r.Beta = 1.0
	}
	if r.InitialAssetValue <= 0 {
		return errPositive("initial_asset_value")
	}
	if r.LeaseTermYears <= 0 {
		return errPositive("lease_term_years")
	}
	if r.DiscountRate <= 0 {
		return errPositive("discount_rate")
	}
	if r.ResidualValue < 0 {
		return errNonNegative("residual_value")
	}
	if r.AccumulatedDepreciationOpening < 0 {
		return errNonNegative("accumulated_depreciation_opening")
	}
	periods := r.LeaseTermYears
	for field, n := range map[string]int{
		"planned_usage_days_per_period": len(r.PlannedUsageDaysPerPeriod),
		"actual_usage_days_per_period":  len(r.ActualUsageDaysPerPeriod),
		"unused_days_per_period":        len(r.UnusedDaysPerPeriod),
	} {
		if n != 0 && n != periods {
			return errLength(field, periods)
		}
	}
	for field, n := range map[string]int{
		"actual_daily_usage_hours":   len(r.ActualDailyUsageHours),
		"standard_daily_usage_hours": len(r.StandardDailyUsageHours),
		"ifrs_revaluation_losses":    len(r.IFRSRevaluationLosses),
	} {
		if n != 0 && n != periods {
			return errLength(field, periods)
		}
	}
	if r.MarketFairValues != nil && len(r.MarketFairValues) != periods && len(r.MarketFairValues) != periods+1 {
		return &ValidationError{
			Field:   "market_fair_values",
			Message: "must have either periods or periods + 1 entries",
		}
	}
	return nil
}

type LAMScheduleEntry struct {
	PeriodIndex              int     `json:"period_index"`
	OpeningBalance           float64 `json:"opening_balance"`
	ClosingBalance           float64 `json:"closing_balance"`
	DailyLeaseAmortization   float64 `json:"daily_lease_amortization"`
	UsageRatio               float64 `json:"usage_ratio"`
	InterestExpense          float64 `json:"interest_expense"`
	MarketChangeIndex        float64 `json:"market_change_index"`
	MarketSensitivity        float64 `json:"market_sensitivity"`
	BaselineRevaluationValue float64 `json:"baseline_revaluation_value"`
	TriggerStage             *string `json:"trigger_stage"`
	PostTriggerValue         float64 `json:"post_trigger_value"`
	RevaluationGainLoss      float64 `json:"revaluation_gain_loss"`
	TerminationAdjustment    float64 `json:"termination_adjustment"`
}

type LAMResponse struct {
	LeaseLabel                 string             `json:"lease_label,omitempty"`
	Schedule                   []LAMScheduleEntry `json:"schedule"`
	TotalRevaluationGainLoss   float64            `json:"total_revaluation_gain_loss"`
	TotalInterestExpense       float64            `json:"total_interest_expense"`
	TotalTerminationAdjustment float64            `json:"total_termination_adjustment"`
}

type RVMRequest struct {
	ResourceLabel                   string   `json:"resource_label,omitempty"`
	CumulativeExtractionAmount      float64  `json:"cumulative_extraction_amount"`
	CumulativeExtractionDays        float64  `json:"cumulative_extraction_days"`
	TotalExtractionDaysAtEvaluation *float64 `json:"total_extraction_days_at_evaluation,omitempty"`
	CurrentUnitExtractionValue      float64  `json:"current_unit_extraction_value"`
	PreviousExtractionValue         *float64 `json:"previous_extraction_value,omitempty"`
	TotalYearsOfUsefulLife          float64  `json:"total_years_of_useful_life"`
	ElapsedYears                    float64  `json:"elapsed_years"`
	Beta                            float64  `json:"beta"`
}

func (r *RVMRequest) Validate() error {
	if r.Beta == 0 {
		r.Beta = 1.0
	}
	if r.CumulativeExtractionAmount <= 0 {
		return errPositive("cumulative_extraction_amount")
	}
	if r.CumulativeExtractionDays <= 0 {
		return errPositive("cumulative_extraction_days")
	}
	if r.TotalExtractionDaysAtEvaluation != nil && *r.TotalExtractionDaysAtEvaluation <= 0 {
		return errPositive("total_extraction_days_at_evaluation")
	}
	if r.CurrentUnitExtractionValue <= 0 {
		return errPositive("current_unit_extraction_value")
	}
	if r.PreviousExtractionValue != nil && *r.PreviousExtractionValue <= 0 {
		return errPositive("previous_extraction_value")
	}
	if r.TotalYearsOfUsefulLife <= 0 {
		return errPositive("total_years_of_useful_life")
	}
	if r.ElapsedYears < 0 {
		return errNonNegative("elapsed_years")
	}
	if r.TotalExtractionDaysAtEvaluation == nil {
		days := r.CumulativeExtractionDays
		r.TotalExtractionDaysAtEvaluation = &days
	}
	return nil
}

type RVMResponse struct {
	ResourceLabel           string  `json:"resource_label,omitempty"`
	DailyAverageExtraction  float64 `json:"daily_average_extraction"`
	StandardExtractionValue float64 `json:"standard_extraction_value"`
	TotalExtractionValue    float64 `json:"total_extraction_value"`
	ExtractionRate          float64 `json:"extraction_rate"`
	MarketChangeIndex       float64 `json:"market_change_index"`
	MarketSensitivity       float64 `json:"market_sensitivity"`
	FinalRevaluationValue   float64 `json:"final_revaluation_value"`
}
