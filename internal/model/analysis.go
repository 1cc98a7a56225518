package model

type TCTBeamRequest struct {
	ModelLabel       string    `json:"model_label,omitempty"`
	FixedCosts       []float64 `json:"fixed_costs"`
	VariableCosts    []float64 `json:"variable_costs"`
	OperatingProfits []float64 `json:"operating_profits"`
}

func (r *TCTBeamRequest) Validate() error {
	n := len(r.FixedCosts)
	if n < 1 {
		return &ValidationError{Field: "fixed_costs", Message: "at least one period is required"}
	}
	if n > 5 {
		return &ValidationError{Field: "fixed_costs", Message: "only the first five years are evaluated"}
	}
	if len(r.VariableCosts) != n || len(r.OperatingProfits) != n {
		return &ValidationError{
			Field:   "variable_costs",
			Message: "fixed_costs, variable_costs, and operating_profits must contain the same number of periods",
		}
	}
	return nil
}

type TCTBeamYearEntry struct {
	YearIndex                  int     `json:"year_index"`
	FixedCostTotal             float64 `json:"fixed_cost_total"`
	VariableCostTotal          float64 `json:"variable_cost_total"`
	OperatingProfit            float64 `json:"operating_profit"`
	TotalCost                  float64 `json:"total_cost"`
	FixedCostRatio             float64 `json:"fixed_cost_ratio"`
	VariableCostRatio          float64 `json:"variable_cost_ratio"`
	FixedRatioChange           float64 `json:"fixed_ratio_change"`
	VariableRatioChange        float64 `json:"variable_ratio_change"`
	AngleAdjustmentDegrees     float64 `json:"angle_adjustment_degrees"`
	FixedCostWave              float64 `json:"fixed_cost_wave"`
	VariableCostWave           float64 `json:"variable_cost_wave"`
	OperatingProfitRatio       float64 `json:"operating_profit_ratio"`
	BaselineProfitAngleDegrees float64 `json:"baseline_profit_angle_degrees"`
	AdjustedProfitAngleDegrees float64 `json:"adjusted_profit_angle_degrees"`
	ProfitWaveValue            float64 `json:"profit_wave_value"`
	BreakEvenReached           bool    `json:"break_even_reached"`
	BreakEvenCrossed           bool    `json:"break_even_crossed"`
	Notes                      *string `json:"notes"`
}

type TCTBeamResponse struct {
	ModelLabel                string             `json:"model_label,omitempty"`
	EvaluationYears           int                `json:"evaluation_years"`
	CumulativeFixedCost       float64            `json:"cumulative_fixed_cost"`
	CumulativeVariableCost    float64            `json:"cumulative_variable_cost"`
	CumulativeOperatingProfit float64            `json:"cumulative_operating_profit"`
	BreakEvenYearIndex        *int               `json:"break_even_year_index"`
	Schedule                  []TCTBeamYearEntry `json:"schedule"`
}

// Risk directions reported by the CPMRV and DCBPRA models.
const (
	RiskDownside = "downside"
	RiskUpside   = "upside"
)

type CPMRVRequest struct {
	AssetLabel                    string  `json:"asset_label,omitempty"`
	LastYearGrowthRate            float64 `json:"last_year_growth_rate"`
	LastYearDrawdown              float64 `json:"last_year_drawdown"`
	CurrentYearCumulativeGrowth   float64 `json:"current_year_cumulative_growth"`
	CurrentYearCumulativeDrawdown float64 `json:"current_year_cumulative_drawdown"`
	CurrentFairValue              float64 `json:"current_fair_value"`
	MonthsElapsed                 *int    `json:"months_elapsed,omitempty"`
}

func (r *CPMRVRequest) Validate() error {
	if r.MonthsElapsed != nil && (*r.MonthsElapsed < 0 || *r.MonthsElapsed > 12) {
		return &ValidationError{Field: "months_elapsed", Message: "must be between 0 and 12"}
	}
	return nil
}

type CPMRVResponse struct {
	AssetLabel                 string  `json:"asset_label,omitempty"`
	LastYearAveragePerformance float64 `json:"last_year_average_performance"`
	CurrentYearLogRatio        float64 `json:"current_year_log_ratio"`
	MonthlyGrowthRisk          float64 `json:"monthly_growth_risk"`
	RiskDirection              string  `json:"risk_direction"`
	RelativeAssetRisk          float64 `json:"relative_asset_risk"`
	AdjustedCryptoValue        float64 `json:"adjusted_crypto_value"`
}

type DCBPRARequest struct {
	AssetLabel                    string  `json:"asset_label,omitempty"`
	ActualGrowthRate              float64 `json:"actual_growth_rate"`
	LastYearGrowthRate            float64 `json:"last_year_growth_rate"`
	LastYearDrawdown              float64 `json:"last_year_drawdown"`
	CurrentYearCumulativeGrowth   float64 `json:"current_year_cumulative_growth"`
	CurrentYearCumulativeDrawdown float64 `json:"current_year_cumulative_drawdown"`
	Beta                          float64 `json:"beta"`
	RiskFreeRate                  float64 `json:"risk_free_rate"`
	MarketReturnRate              float64 `json:"market_return_rate"`
	MonthsElapsed                 *int    `json:"months_elapsed,omitempty"`
}

func (r *DCBPRARequest) Validate() error {
	if r.MonthsElapsed != nil && (*r.MonthsElapsed < 0 || *r.MonthsElapsed > 12) {
		return &ValidationError{Field: "months_elapsed", Message: "must be between 0 and 12"}
	}
	return nil
}

type DCBPRAResponse struct {
	AssetLabel                 string  `json:"asset_label,omitempty"`
	GrowthPercentageFactor     float64 `json:"growth_percentage_factor"`
	RealGrowthAdjustment       float64 `json:"real_growth_adjustment"`
	LastYearAveragePerformance float64 `json:"last_year_average_performance"`
	CurrentYearLogRatio        float64 `json:"current_year_log_ratio"`
	MonthlyGrowthRisk          float64 `json:"monthly_growth_risk"`
	RiskAdjustmentComponent    float64 `json:"risk_adjustment_component"`
	RiskDirection              string  `json:"risk_direction"`
	AdjustedBeta               float64 `json:"adjusted_beta"`
	BaselineCAPMReturn         float64 `json:"baseline_capm_return"`
	AdjustedExpectedReturn     float64 `json:"adjusted_expected_return"`
}

type PSRASRequest struct {
	PortfolioLabel                    string  `json:"portfolio_label,omitempty"`
	PrepaidCostAverage1Y              float64 `json:"prepaid_cost_average_1y"`
	SubscriberCount                   float64 `json:"subscriber_count"`
	PrepaidCostTotal1Y                float64 `json:"prepaid_cost_total_1y"`
	NewContractCount                  float64 `json:"new_contract_count"`
	RetainedContractCount             float64 `json:"retained_contract_count"`
	NewSubscriberTotalPayment         float64 `json:"new_subscriber_total_payment"`
	NewSubscriberCount                float64 `json:"new_subscriber_count"`
	TotalCustomerPayments             float64 `json:"total_customer_payments"`
	CancelledCustomerPayments         float64 `json:"cancelled_customer_payments"`
	TotalSubscribersInPeriod          float64 `json:"total_subscribers_in_period"`
	CancelledCustomersInPeriod        float64 `json:"cancelled_customers_in_period"`
	TotalPrepaidAndUnearned           float64 `json:"total_prepaid_and_unearned"`
	TotalContractDeposits             float64 `json:"total_contract_deposits"`
	CurrentYearYield                  float64 `json:"current_year_yield"`
	CovarianceContractEquityVsPrepaid float64 `json:"covariance_contract_equity_vs_prepaid"`
	VarianceContractEquityAdjustment  float64 `json:"variance_contract_equity_adjustment"`
}

func (r *PSRASRequest) Validate() error { return nil }

type PSRASResponse struct {
	PortfolioLabel                   string  `json:"portfolio_label,omitempty"`
	AssumedRevenueRecognitionRate    float64 `json:"assumed_revenue_recognition_rate"`
	NewSubscriberAveragePayment      float64 `json:"new_subscriber_average_payment"`
	ExistingSubscriberAveragePayment float64 `json:"existing_subscriber_average_payment"`
	PaymentComparisonIndex           float64 `json:"payment_comparison_index"`
	PaymentIndexBaselineAmount       float64 `json:"payment_index_baseline_amount"`
	PurePerformanceBreakEven         float64 `json:"pure_performance_break_even"`
	FinalRecognisedRevenue           float64 `json:"final_recognised_revenue"`
}

type LSMRVRequest struct {
	EvaluationLabel            string    `json:"evaluation_label,omitempty"`
	PriceBandCountA            float64   `json:"price_band_count_a"`
	PriceBandCountB            float64   `json:"price_band_count_b"`
	HighestPreferenceA         float64   `json:"highest_preference_a"`
	HighestPreferenceB         float64   `json:"highest_preference_b"`
	LastEvaluationGrowthA      float64   `json:"last_evaluation_growth_a"`
	LastEvaluationGrowthB      float64   `json:"last_evaluation_growth_b"`
	PriceBandCriterionCount    float64   `json:"price_band_criterion_count"`
	TotalStandardUsage         float64   `json:"total_standard_usage"`
	StandardSampleSize         float64   `json:"standard_sample_size"`
	ReturnsA                   []float64 `json:"returns_a"`
	ReturnsB                   []float64 `json:"returns_b"`
	ROI                        float64   `json:"roi"`
	OperatingProfitPrevious    float64   `json:"operating_profit_previous"`
	AccountsReceivablePrevious float64   `json:"accounts_receivable_previous"`
	MarketPrice                float64   `json:"market_price"`
	ActualCashFlow             float64   `json:"actual_cash_flow"`
	EstimatedCashFlow          float64   `json:"estimated_cash_flow"`
	NoiseFactor                float64   `json:"noise_factor"`
	DiscountRate               float64   `json:"discount_rate"`
	CurrentInvestmentCashFlow  float64   `json:"current_investment_cash_flow"`
	CurrentTotalCashFlow       float64   `json:"current_total_cash_flow"`
	PreviousInvestmentCashFlow float64   `json:"previous_investment_cash_flow"`
	PreviousCovariance         float64   `json:"previous_covariance"`
}

func (r *LSMRVRequest) Validate() error {
	if r.PriceBandCountA <= 0 {
		return errPositive("price_band_count_a")
	}
	if r.PriceBandCountB <= 0 {
		return errPositive("price_band_count_b")
	}
	if len(r.ReturnsA) < 2 {
		return &ValidationError{Field: "returns_a", Message: "must have at least 2 entries"}
	}
	if len(r.ReturnsB) < 2 {
		return &ValidationError{Field: "returns_b", Message: "must have at least 2 entries"}
	}
	return nil
}

type LSMRVResponse struct {
	EvaluationLabel           string  `json:"evaluation_label,omitempty"`
	ProbabilityDistributionA  float64 `json:"probability_distribution_a"`
	ProbabilityDistributionB  float64 `json:"probability_distribution_b"`
	GrowthCorrectionValue     float64 `json:"growth_correction_value"`
	CumulativeAdjustmentValue float64 `json:"cumulative_adjustment_value"`
	ExpectedAdjustmentValue   float64 `json:"expected_adjustment_value"`
	FinalAdjustmentAmount     float64 `json:"final_adjustment_amount"`
}
