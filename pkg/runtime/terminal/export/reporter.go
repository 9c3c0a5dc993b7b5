package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/fin-tools/finhealth/pkg/services/dashboard"
)

type TableConfig struct {
	MonthWidth  int
	AmountWidth int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		MonthWidth:  10,
		AmountWidth: 20,
	}
}

// Reporter renders a dashboard view as formatted terminal text.
type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

type reportData struct {
	dashboard.View
	ReportURL string
}

func (c *Reporter) Handle(view dashboard.View, reportURL string) error {
	funcMap := template.FuncMap{
		"bar": func(value, max float64, width int) string {
			if max <= 0 {
				max = 1
			}
			filled := int(value / max * float64(width))
			if filled < 0 {
				filled = 0
			}
			if filled > width {
				filled = width
			}
			return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
		},
		"currency": dashboard.FormatCurrency,
		"float":    func(v int) float64 { return float64(v) },
		"badge": func(b dashboard.RatioBadge) string {
			state := "healthy"
			if b.Alert {
				state = "alert"
			}
			return fmt.Sprintf("%s (%s)", b.Display, state)
		},
		"trendRow": func(month string, revenue, expenses, netCashFlow float64) string {
			return fmt.Sprintf("| %-*s | %*s | %*s | %*s |",
				c.config.MonthWidth, month,
				c.config.AmountWidth, dashboard.FormatCurrency(revenue),
				c.config.AmountWidth, dashboard.FormatCurrency(expenses),
				c.config.AmountWidth, dashboard.FormatCurrency(netCashFlow))
		},
		"trendHeader": func(month, revenue, expenses, netCashFlow string) string {
			return fmt.Sprintf("| %-*s | %*s | %*s | %*s |",
				c.config.MonthWidth, month,
				c.config.AmountWidth, revenue,
				c.config.AmountWidth, expenses,
				c.config.AmountWidth, netCashFlow)
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+%s+%s+",
				strings.Repeat("-", c.config.MonthWidth+2),
				strings.Repeat("-", c.config.AmountWidth+2),
				strings.Repeat("-", c.config.AmountWidth+2),
				strings.Repeat("-", c.config.AmountWidth+2))
		},
	}

	tmpl := `
{{.Labels.Score}}
  {{bar (float .GaugeScore) 100.0 40}}  {{.Score}} / 100  [{{.Band}}]

=== {{.Labels.Risk}} ===
{{- if .Risks}}
{{- range .Risks}}
- {{.Type}} [{{.Severity}}]
{{- end}}
{{- else}}
{{.Labels.NoRisks}}
{{- end}}

{{.Labels.ExpenseRatio}}: {{badge .ExpenseRatio}}    {{.Labels.DebtBurden}}: {{badge .DebtBurden}}

=== {{.Labels.Advanced}} ===
{{.Labels.CreditScore}}: {{.Credit.Display}}{{if .Credit.Available}}  {{bar .Credit.Fraction 100.0 30}}{{end}}
  {{.Credit.Footnote}}
{{.Labels.TaxStatus}}: {{.Tax.Display}}
{{.Labels.Forecast}}: {{.Forecast.Display}} {{.Forecast.Marker}} ({{.Forecast.Badge}})

=== {{.Labels.InsightEngine}} ===
{{.Narrative}}

=== {{.Labels.RevExp}} / {{.Labels.CashFlow}} ===
{{separator}}
{{trendHeader "Month" "Revenue" "Op. Expenses" "Net Cash Flow"}}
{{separator}}
{{- range .Trend}}
{{trendRow .Month .Revenue .OperatingExpenses .NetCashFlow}}
{{- end}}
{{separator}}

=== {{.Labels.Anomalies}} ===
{{- if .Anomalies}}
{{.Labels.AnomaliesDesc}}
{{- range .Anomalies}}
- {{.Date}}  {{.Amount}}  (Rev: {{.Revenue}} | Exp: {{.Expenses}})
{{- end}}
{{- else}}
{{.Labels.NoAnomalies}}
{{- end}}

{{.Labels.InvestorReport}}: {{if .ReportAvailable}}{{.ReportURL}}{{else}}Report generation failed or not available.{{end}}
`

	t, err := template.New("dashboard").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, reportData{View: view, ReportURL: reportURL})
}
