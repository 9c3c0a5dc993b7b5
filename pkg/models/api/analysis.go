package api

// AnalysisResult is the wire shape of a successful `/upload` response.
// Field names mirror the backend payload exactly, including the
// spaced keys inside chart records.
type AnalysisResult struct {
	Score   int     `json:"score"`
	Metrics Metrics `json:"metrics"`

	Flags      []RiskFlag     `json:"flags"`
	ChartsData []PeriodRecord `json:"charts_data"`

	AIInsights   string `json:"ai_insights"`
	AIInsightsHi string `json:"ai_insights_hi,omitempty"`

	CreditScore       *int           `json:"credit_score,omitempty"`
	TaxStatus         string         `json:"tax_status,omitempty"`
	ForecastNextMonth *float64       `json:"forecast_next_month,omitempty"`
	Anomalies         []PeriodRecord `json:"anomalies,omitempty"`
	ReportID          string         `json:"report_id,omitempty"`
}

type Metrics struct {
	RevGrowthPct       float64 `json:"rev_growth_pct"`
	ExpenseRatio       float64 `json:"expense_ratio"`
	NetCashFlow        float64 `json:"net_cash_flow"`
	WorkingCapital     float64 `json:"working_capital"`
	DebtBurdenRatio    float64 `json:"debt_burden_ratio"`
	CashFlowVolatility float64 `json:"cash_flow_volatility"`
}

type RiskFlag struct {
	Type     string `json:"type"`
	Severity string `json:"severity"`
}

// PeriodRecord is one row of charts_data or anomalies. Trend rows carry
// Month, anomaly rows carry Date.
type PeriodRecord struct {
	Month             string  `json:"Month,omitempty"`
	Date              string  `json:"Date,omitempty"`
	Revenue           float64 `json:"Revenue"`
	OperatingExpenses float64 `json:"Operating Expenses"`
	NetCashFlow       float64 `json:"Net Cash Flow"`
}

// ChatRequest is the body of `POST /chat`.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is the body of a successful `/chat` response. Answer is
// optional; callers substitute a fixed fallback when it is empty.
type ChatResponse struct {
	Answer string `json:"answer,omitempty"`
}

// Error is the structured body of a non-success response.
type Error struct {
	Detail string `json:"detail"`
}
