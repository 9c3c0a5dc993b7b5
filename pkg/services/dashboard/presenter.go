package dashboard

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/fin-tools/finhealth/pkg/models/domain"
	"github.com/fin-tools/finhealth/pkg/services/locale"
)

// Literal display markers for absent optional fields.
const (
	CreditUnavailable = "N/A"
	TaxPending        = "Pending"
	TaxCompliant      = "Compliant"
	ForecastMarker    = "est."
	ForecastBadge     = "+5.2%"
	CreditFootnote    = "*300-900 range, non-bureau, indicative only. Not a CIBIL score."
)

// Ratio alert thresholds.
const (
	expenseRatioAlert = 0.8
	debtBurdenAlert   = 0.3
)

// View is the fully derived presentation of one analysis result. It is
// recomputed from the immutable Result on every render; nothing here
// mutates the input.
type View struct {
	Language domain.Language
	Labels   locale.Table

	Score     int
	Band      domain.Band
	BandColor string
	// Semicircular gauge value pair, rendered as two arc segments from
	// 180 degrees to 0.
	GaugeScore     int
	GaugeRemainder int

	Risks        []RiskRow
	ExpenseRatio RatioBadge
	DebtBurden   RatioBadge

	Credit   CreditGauge
	Tax      TaxCard
	Forecast ForecastCard

	Narrative string

	// Trend is the charts_data series, consumed unmodified by the
	// revenue/expense and net-cash-flow charts.
	Trend []domain.PeriodRecord
	// Outflow split pie weights.
	OutflowOperating float64
	OutflowDebt      float64

	Anomalies       []AnomalyRow
	ReportID        string
	ReportAvailable bool
}

type RiskRow struct {
	Type     string
	Severity string
}

// RatioBadge is a percentage-formatted ratio with its alert state.
type RatioBadge struct {
	Display string
	Alert   bool
}

// CreditGauge carries both the raw unclamped fraction and the display
// fraction clamped to the gauge track.
type CreditGauge struct {
	Available   bool
	Display     string
	RawFraction float64
	Fraction    float64
	Footnote    string
}

type TaxCard struct {
	Display   string
	Compliant bool
}

type ForecastCard struct {
	Display string
	Marker  string
	Badge   string
}

type AnomalyRow struct {
	Date     string
	Amount   string
	Revenue  string
	Expenses string
}

// Present derives the dashboard view for a result and language.
func Present(result domain.Result, lang domain.Language) View {
	view := View{
		Language:       lang,
		Labels:         locale.For(lang),
		Score:          result.Score,
		Band:           domain.ScoreBand(result.Score),
		BandColor:      domain.ScoreColor(result.Score),
		GaugeScore:     result.Score,
		GaugeRemainder: 100 - result.Score,

		ExpenseRatio: ratioBadge(result.Metrics.ExpenseRatio, expenseRatioAlert),
		DebtBurden:   ratioBadge(result.Metrics.DebtBurdenRatio, debtBurdenAlert),

		Credit:   creditGauge(result.CreditScore),
		Tax:      taxCard(result.TaxStatus),
		Forecast: forecastCard(result.ForecastNextMonth),

		Narrative: locale.Narrative(result, lang),

		Trend:            result.ChartsData,
		OutflowOperating: result.Metrics.ExpenseRatio,
		OutflowDebt:      result.Metrics.DebtBurdenRatio,

		ReportID:        result.ReportID,
		ReportAvailable: result.ReportID != "",
	}

	for _, flag := range result.Flags {
		view.Risks = append(view.Risks, RiskRow{Type: flag.Type, Severity: flag.Severity})
	}
	for _, rec := range result.Anomalies {
		view.Anomalies = append(view.Anomalies, anomalyRow(rec))
	}
	return view
}

func ratioBadge(ratio, threshold float64) RatioBadge {
	return RatioBadge{
		Display: fmt.Sprintf("%.0f%%", ratio*100),
		Alert:   ratio > threshold,
	}
}

func creditGauge(creditScore *int) CreditGauge {
	if creditScore == nil {
		return CreditGauge{Display: CreditUnavailable, Footnote: CreditFootnote}
	}
	raw := domain.CreditGaugeFraction(*creditScore)
	return CreditGauge{
		Available:   true,
		Display:     strconv.Itoa(*creditScore),
		RawFraction: raw,
		Fraction:    math.Min(100, math.Max(0, raw)),
		Footnote:    CreditFootnote,
	}
}

func taxCard(status string) TaxCard {
	if status == "" {
		return TaxCard{Display: TaxPending}
	}
	return TaxCard{Display: status, Compliant: status == TaxCompliant}
}

func forecastCard(forecast *float64) ForecastCard {
	value := 0.0
	if forecast != nil {
		value = *forecast
	}
	return ForecastCard{
		Display: FormatCurrency(value),
		Marker:  ForecastMarker,
		Badge:   ForecastBadge,
	}
}

func anomalyRow(rec domain.PeriodRecord) AnomalyRow {
	sign := "+"
	if rec.NetCashFlow < 0 {
		sign = "-"
	}
	return AnomalyRow{
		Date:     rec.Date,
		Amount:   sign + FormatCurrency(math.Abs(rec.NetCashFlow)),
		Revenue:  formatNumber(rec.Revenue),
		Expenses: formatNumber(rec.OperatingExpenses),
	}
}

// FormatCurrency renders a rupee amount as a grouped integer.
func FormatCurrency(v float64) string {
	return "₹" + groupDigits(int64(math.Round(v)))
}

func groupDigits(n int64) string {
	negative := n < 0
	if negative {
		n = -n
	}
	digits := strconv.FormatInt(n, 10)
	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
		if len(digits) > lead {
			b.WriteByte(',')
		}
	}
	for i := lead; i < len(digits); i += 3 {
		b.WriteString(digits[i : i+3])
		if i+3 < len(digits) {
			b.WriteByte(',')
		}
	}
	return b.String()
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
