package model

type CEEMRequest struct {
	ExpenseLabel                   string   `json:"expense_label,omitempty"`
	CumulativeUsageUnits           float64  `json:"cumulative_usage_units"`
	CumulativeUsageDays            float64  `json:"cumulative_usage_days"`
	CurrentUnitCost                float64  `json:"current_unit_cost"`
	QuantitativeUsageLimit         *float64 `json:"quantitative_usage_limit,omitempty"`
	PreviousYearStandardUsageValue float64  `json:"previous_year_standard_usage_value"`
	UsefulLifeYears                float64  `json:"useful_life_years"`
	ElapsedYears                   float64  `json:"elapsed_years"`
	Beta                           float64  `json:"beta"`
}

func (r *CEEMRequest) Validate() error {
	if r.Beta == 0 {
		r.Beta = 1.0
	}
	if r.CumulativeUsageUnits <= 0 {
		return errPositive("cumulative_usage_units")
	}
	if r.CumulativeUsageDays <= 0 {
		return errPositive("cumulative_usage_days")
	}
	if r.CurrentUnitCost <= 0 {
		return errPositive("current_unit_cost")
	}
	if r.QuantitativeUsageLimit != nil && *r.QuantitativeUsageLimit <= 0 {
		return errPositive("quantitative_usage_limit")
	}
	if r.PreviousYearStandardUsageValue <= 0 {
		return errPositive("previous_year_standard_usage_value")
	}
	if r.UsefulLifeYears <= 0 {
		return errPositive("useful_life_years")
	}
	if r.ElapsedYears < 0 {
		return errNonNegative("elapsed_years")
	}
	return nil
}

type CEEMResponse struct {
	ExpenseLabel                      string   `json:"expense_label,omitempty"`
	DailyAverageUsageUnits            float64  `json:"daily_average_usage_units"`
	StandardUsageValueNonQuantitative float64  `json:"standard_usage_value_non_quantitative"`
	StandardUsageValueQuantitative    *float64 `json:"standard_usage_value_quantitative"`
	SelectedStandardUsageValue        float64  `json:"selected_standard_usage_value"`
	TotalConsumableUsageValue         float64  `json:"total_consumable_usage_value"`
	AdjustedConsumableUsageValue      float64  `json:"adjusted_consumable_usage_value"`
	UsageChangeRate                   float64  `json:"usage_change_rate"`
	MarketChangeIndex                 float64  `json:"market_change_index"`
	MarketSensitivityValue            float64  `json:"market_sensitivity_value"`
	FinalRevaluationValue             float64  `json:"final_revaluation_value"`
}

// Interest classification for bond depreciation.
const (
	InterestDiscount = "discount"
	InterestPremium  = "premium"
)

type BDMRequest struct {
	BondLabel                string   `json:"bond_label,omitempty"`
	BondIssuePrice           float64  `json:"bond_issue_price"`
	BondContractDays         float64  `json:"bond_contract_days"`
	ElapsedDaysSinceContract float64  `json:"elapsed_days_since_contract"`
	PreviousValuation        *float64 `json:"previous_valuation,omitempty"`
	CurrentFairValue         float64  `json:"current_fair_value"`
}

func (r *BDMRequest) Validate() error {
	if r.BondIssuePrice <= 0 {
		return errPositive("bond_issue_price")
	}
	if r.BondContractDays <= 0 {
		return errPositive("bond_contract_days")
	}
	if r.ElapsedDaysSinceContract < 0 {
		return errNonNegative("elapsed_days_since_contract")
	}
	if r.ElapsedDaysSinceContract > r.BondContractDays {
		return &ValidationError{
			Field:   "elapsed_days_since_contract",
			Message: "cannot exceed bond_contract_days",
		}
	}
	if r.PreviousValuation != nil && *r.PreviousValuation <= 0 {
		return errPositive("previous_valuation")
	}
	if r.CurrentFairValue <= 0 {
		return errPositive("current_fair_value")
	}
	return nil
}

type BDMResponse struct {
	BondLabel           string  `json:"bond_label,omitempty"`
	DailyEstimatedUsage float64 `json:"daily_estimated_usage"`
	EstimatedValuePS    float64 `json:"estimated_value_ps"`
	MarketBeta          float64 `json:"market_beta"`
	FinalBookValue      float64 `json:"final_book_value"`
	InterestCost        float64 `json:"interest_cost"`
	InterestType        string  `json:"interest_type"`
}

type BELMRequest struct {
	DebtorLabel                       string  `json:"debtor_label,omitempty"`
	DebtorTotalAmount                 float64 `json:"debtor_total_amount"`
	RemainingYears                    float64 `json:"remaining_years"`
	ElapsedDays                       float64 `json:"elapsed_days"`
	ActualRepaymentAmount             float64 `json:"actual_repayment_amount"`
	InterestRate                      float64 `json:"interest_rate"`
	TotalDebtBalanceAllCounterparties float64 `json:"total_debt_balance_all_counterparties"`
	LastYearCounterpartyRepayment     float64 `json:"last_year_counterparty_repayment"`
	LastYearTotalRepaymentAll         float64 `json:"last_year_total_repayment_all"`
}

func (r *BELMRequest) Validate() error {
	if r.DebtorTotalAmount <= 0 {
		return errPositive("debtor_total_amount")
	}
	if r.RemainingYears <= 0 {
		return errPositive("remaining_years")
	}
	if r.ElapsedDays < 0 {
		return errNonNegative("elapsed_days")
	}
	if r.ActualRepaymentAmount < 0 {
		return errNonNegative("actual_repayment_amount")
	}
	if r.InterestRate < 0 {
		return errNonNegative("interest_rate")
	}
	if r.TotalDebtBalanceAllCounterparties <= 0 {
		return errPositive("total_debt_balance_all_counterparties")
	}
	if r.LastYearCounterpartyRepayment < 0 {
		return errNonNegative("last_year_counterparty_repayment")
	}
	if r.LastYearTotalRepaymentAll <= 0 {
		return errPositive("last_year_total_repayment_all")
	}
	return nil
}

type BELMResponse struct {
	DebtorLabel                   string  `json:"debtor_label,omitempty"`
	DailyEstimatedRepayment       float64 `json:"daily_estimated_repayment"`
	ExpectedRepaymentAtEvaluation float64 `json:"expected_repayment_at_evaluation"`
	InterestRateAdjustment        float64 `json:"interest_rate_adjustment"`
	ActualInterestCost            float64 `json:"actual_interest_cost"`
	PreliminaryBadDebtRatio       float64 `json:"preliminary_bad_debt_ratio"`
	FinalBadDebtRatio             float64 `json:"final_bad_debt_ratio"`
}
