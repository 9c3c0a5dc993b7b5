package domain

// Band is the coarse classification of a health score.
type Band string

const (
	BandExcellent Band = "EXCELLENT"
	BandFair      Band = "FAIR"
	BandCritical  Band = "CRITICAL"
)

// Score colors, shared by every surface that renders a band.
const (
	ColorExcellent = "#10b981"
	ColorFair      = "#f59e0b"
	ColorCritical  = "#ef4444"
)

// Metrics are the core ratios and figures computed for one document.
// Ratios are conventionally in [0,1] but the backend does not enforce it.
type Metrics struct {
	RevGrowthPct       float64
	ExpenseRatio       float64
	NetCashFlow        float64
	WorkingCapital     float64
	DebtBurdenRatio    float64
	CashFlowVolatility float64
}

// RiskFlag is a single risk item. Slice order is display order.
type RiskFlag struct {
	Type     string
	Severity string
}

// PeriodRecord is one per-period row of the charts data. Month is set on
// trend records, Date on anomaly records.
type PeriodRecord struct {
	Month             string
	Date              string
	Revenue           float64
	OperatingExpenses float64
	NetCashFlow       float64
}

// Result is the analysis payload for one uploaded document. It is
// immutable once built: a new analysis replaces it wholesale and a
// reset discards it.
type Result struct {
	Score      int
	Metrics    Metrics
	Flags      []RiskFlag
	ChartsData []PeriodRecord

	AIInsights   string
	AIInsightsHi string

	CreditScore       *int
	TaxStatus         string
	ForecastNextMonth *float64
	Anomalies         []PeriodRecord
	ReportID          string
}

// ScoreBand classifies a score. Boundaries at 50 and 80 are inclusive
// towards the higher band.
func ScoreBand(score int) Band {
	switch {
	case score >= 80:
		return BandExcellent
	case score >= 50:
		return BandFair
	default:
		return BandCritical
	}
}

// ScoreColor returns the display color for a score.
func ScoreColor(score int) string {
	switch {
	case score >= 80:
		return ColorExcellent
	case score >= 50:
		return ColorFair
	default:
		return ColorCritical
	}
}

// CreditGaugeFraction maps a credit score on the fixed 300-900 domain to
// a 0-100 gauge percentage. Values outside the domain are not clamped
// here; display layers decide how to treat them.
func CreditGaugeFraction(creditScore int) float64 {
	return float64(creditScore-300) / 6
}
