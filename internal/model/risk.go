package model

type CPRMRequest struct {
	ExposureID                           string   `json:"exposure_id,omitempty"`
	AllowanceForBadDebts                 float64  `json:"allowance_for_bad_debts"`
	TotalBondRelatedAssets               float64  `json:"total_bond_related_assets"`
	BadDebtAmount                        float64  `json:"bad_debt_amount"`
	TransactionValuePerBondUnit          float64  `json:"transaction_value_per_bond_unit"`
	TotalConvertibleBondTransactionValue float64  `json:"total_convertible_bond_transaction_value"`
	StockPurchaseTransactionValue        float64  `json:"stock_purchase_transaction_value"`
	StockSaleTransactionValue            float64  `json:"stock_sale_transaction_value"`
	TotalScopeBondsForConversion         float64  `json:"total_scope_bonds_for_conversion"`
	CurrentDebtRepayments                float64  `json:"current_debt_repayments"`
	NumberOfDebtRepayments               int      `json:"number_of_debt_repayments"`
	TotalConvertibleBondPurchases        float64  `json:"total_convertible_bond_purchases"`
	TotalConvertibleBondSales            float64  `json:"total_convertible_bond_sales"`
	TotalNumberPurchaseTransactions      int      `json:"total_number_purchase_transactions"`
	TotalNumberSaleTransactions          int      `json:"total_number_sale_transactions"`
	TotalBondTransactionsValue           float64  `json:"total_bond_transactions_value"`
	TotalStockTransactionValue           float64  `json:"total_stock_transaction_value"`
	ValueOfConvertibleBondProducts       float64  `json:"value_of_convertible_bond_products"`
	TotalDebtRepaymentForTrigger         *float64 `json:"total_debt_repayment_for_trigger,omitempty"`
	RateTriggerThreshold                 *float64 `json:"rate_trigger_threshold,omitempty"`
}

func (r *CPRMRequest) Validate() error {
	if r.RateTriggerThreshold == nil {
		threshold := 0.10
		r.RateTriggerThreshold = &threshold
	}
	if *r.RateTriggerThreshold < 0 {
		return errNonNegative("rate_trigger_threshold")
	}
	for field, v := range map[string]float64{
		"allowance_for_bad_debts":                  r.AllowanceForBadDebts,
		"total_bond_related_assets":                r.TotalBondRelatedAssets,
		"bad_debt_amount":                          r.BadDebtAmount,
		"transaction_value_per_bond_unit":          r.TransactionValuePerBondUnit,
		"total_convertible_bond_transaction_value": r.TotalConvertibleBondTransactionValue,
		"stock_purchase_transaction_value":         r.StockPurchaseTransactionValue,
		"stock_sale_transaction_value":             r.StockSaleTransactionValue,
		"total_scope_bonds_for_conversion":         r.TotalScopeBondsForConversion,
		"current_debt_repayments":                  r.CurrentDebtRepayments,
		"total_convertible_bond_purchases":         r.TotalConvertibleBondPurchases,
		"total_convertible_bond_sales":             r.TotalConvertibleBondSales,
		"total_bond_transactions_value":            r.TotalBondTransactionsValue,
		"total_stock_transaction_value":            r.TotalStockTransactionValue,
		"value_of_convertible_bond_products":       r.ValueOfConvertibleBondProducts,
	} {
		if v <= 0 {
			return errPositive(field)
		}
	}
	if r.NumberOfDebtRepayments <= 0 {
		return errPositive("number_of_debt_repayments")
	}
	if r.TotalNumberPurchaseTransactions <= 0 {
		return errPositive("total_number_purchase_transactions")
	}
	if r.TotalNumberSaleTransactions <= 0 {
		return errPositive("total_number_sale_transactions")
	}
	if r.TotalDebtRepaymentForTrigger != nil && *r.TotalDebtRepaymentForTrigger <= 0 {
		return errPositive("total_debt_repayment_for_trigger")
	}
	return nil
}

type CPRMResponse struct {
	ExposureID                       string   `json:"exposure_id,omitempty"`
	AssumedBadDebtOccurrenceRate     float64  `json:"assumed_bad_debt_occurrence_rate"`
	ConvertibleBondRate              float64  `json:"convertible_bond_rate"`
	ConvertibleBondFirstAmount       float64  `json:"convertible_bond_first_amount"`
	AveragePastBadDebtRecovery       float64  `json:"average_past_bad_debt_recovery"`
	AverageConvertibleBondPrice      float64  `json:"average_convertible_bond_price"`
	AdditionalAdjustmentBeta         float64  `json:"additional_adjustment_beta"`
	FinalConvertibleBondAmount       float64  `json:"final_convertible_bond_amount"`
	TriggerApplied                   bool     `json:"trigger_applied"`
	ConvertibleBondRateAdjustment    *float64 `json:"convertible_bond_rate_adjustment"`
	FinalAdjustedConvertibleBondRate float64  `json:"final_adjusted_convertible_bond_rate"`
}

type COCIMQuarterData struct {
	QuarterIndex         int     `json:"quarter_index"`
	PreCompoundBalance   float64 `json:"pre_compound_balance"`
	PostCompoundBalance  float64 `json:"post_compound_balance"`
	CurrentQuarterYield  float64 `json:"current_quarter_yield"`
	PreviousQuarterYield float64 `json:"previous_quarter_yield"`
	PreviousQuarterRate  float64 `json:"previous_quarter_rate"`
	CurrentQuarterRate   float64 `json:"current_quarter_rate"`
}

type COCIMRequest struct {
	PortfolioLabel           string             `json:"portfolio_label,omitempty"`
	OCIAccountBalance        float64            `json:"oci_account_balance"`
	TotalOCIAmount           float64            `json:"total_oci_amount"`
	PolicyRate               float64            `json:"policy_rate"`
	UsefulLifeYearsRemaining float64            `json:"useful_life_years_remaining"`
	InitialRecognitionAmount float64            `json:"initial_recognition_amount"`
	YearEndBalance           float64            `json:"year_end_balance"`
	QuarterlyData            []COCIMQuarterData `json:"quarterly_data"`
}

// Validate enforces ascending quarter indices; out-of-order data is rejected,
// never re-sorted.
func (r *COCIMRequest) Validate() error {
	if r.TotalOCIAmount <= 0 {
		return errPositive("total_oci_amount")
	}
	if r.UsefulLifeYearsRemaining <= 0 {
		return errPositive("useful_life_years_remaining")
	}
	if r.InitialRecognitionAmount <= 0 {
		return errPositive("initial_recognition_amount")
	}
	if r.YearEndBalance <= 0 {
		return errPositive("year_end_balance")
	}
	for i, q := range r.QuarterlyData {
		if q.QuarterIndex < 1 {
			return errPositive("quarterly_data.quarter_index")
		}
		if i > 0 && q.QuarterIndex < r.QuarterlyData[i-1].QuarterIndex {
			return &ValidationError{
				Field:   "quarterly_data",
				Message: "entries must be ordered by ascending quarter_index",
			}
		}
	}
	return nil
}

type COCIMQuarterResult struct {
	QuarterIndex        int     `json:"quarter_index"`
	AdjustmentValue     float64 `json:"adjustment_value"`
	PreCompoundBalance  float64 `json:"pre_compound_balance"`
	PostCompoundBalance float64 `json:"post_compound_balance"`
}

type COCIMResponse struct {
	PortfolioLabel               string               `json:"portfolio_label,omitempty"`
	AccountRatio                 float64              `json:"account_ratio"`
	InitialCompoundMeasurement   float64              `json:"initial_compound_measurement"`
	QuarterlyAdjustments         []COCIMQuarterResult `json:"quarterly_adjustments"`
	AnnualCompoundGrowthRate     float64              `json:"annual_compound_growth_rate"`
	CompoundGrowthTriggerApplied bool                 `json:"compound_growth_trigger_applied"`
	CompoundAdjustmentAmount     float64              `json:"compound_adjustment_amount"`
	FinalAdjustedBalance         float64              `json:"final_adjusted_balance"`
}

type FAREXRequest struct {
	ContractID                 string  `json:"contract_id,omitempty"`
	BaseCurrencyAmount         float64 `json:"base_currency_amount"`
	SpotRate                   float64 `json:"spot_rate"`
	ForecastRate               float64 `json:"forecast_rate"`
	InflationRateHome          float64 `json:"inflation_rate_home"`
	InflationRateForeign       float64 `json:"inflation_rate_foreign"`
	HedgeRatio                 float64 `json:"hedge_ratio"`
	LastYearPrevMonthExport    float64 `json:"last_year_prev_month_export"`
	LastYearPrevMonthImport    float64 `json:"last_year_prev_month_import"`
	LastYearCurrentMonthExport float64 `json:"last_year_current_month_export"`
	LastYearCurrentMonthImport float64 `json:"last_year_current_month_import"`
	CurrentYearPrevMonthExport float64 `json:"current_year_prev_month_export"`
	CurrentYearPrevMonthImport float64 `json:"current_year_prev_month_import"`
}

func (r *FAREXRequest) Validate() error {
	if r.HedgeRatio == 0 {
		r.HedgeRatio = 1.0
	}
	if r.HedgeRatio < 0 {
		return errPositive("hedge_ratio")
	}
	if r.InflationRateHome < -1 {
		return &ValidationError{Field: "inflation_rate_home", Message: "must be at least -1"}
	}
	if r.InflationRateForeign < -1 {
		return &ValidationError{Field: "inflation_rate_foreign", Message: "must be at least -1"}
	}
	for field, v := range map[string]float64{
		"base_currency_amount":           r.BaseCurrencyAmount,
		"spot_rate":                      r.SpotRate,
		"forecast_rate":                  r.ForecastRate,
		"last_year_prev_month_export":    r.LastYearPrevMonthExport,
		"last_year_prev_month_import":    r.LastYearPrevMonthImport,
		"last_year_current_month_export": r.LastYearCurrentMonthExport,
		"last_year_current_month_import": r.LastYearCurrentMonthImport,
		"current_year_prev_month_export": r.CurrentYearPrevMonthExport,
		"current_year_prev_month_import": r.CurrentYearPrevMonthImport,
	} {
		if v <= 0 {
			return errPositive(field)
		}
	}
	return nil
}

type FAREXResponse struct {
	ContractID            string  `json:"contract_id,omitempty"`
	LastYearTradeRatio    float64 `json:"last_year_trade_ratio"`
	CurrentYearTradeRatio float64 `json:"current_year_trade_ratio"`
	ExportImportBeta      float64 `json:"export_import_beta"`
	AdjustmentIndicator   float64 `json:"adjustment_indicator"`
	InflationAdjustedRate float64 `json:"inflation_adjusted_rate"`
	FinalAdjustedRate     float64 `json:"final_adjusted_rate"`
	RevaluationAmount     float64 `json:"revaluation_amount"`
}
