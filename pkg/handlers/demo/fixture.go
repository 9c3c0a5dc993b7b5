package demo

import "github.com/fin-tools/finhealth/pkg/models/api"

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

// Fixture is the canned analysis payload returned for every demo
// upload. Figures are plausible for a small retail business over six
// months.
func Fixture() api.AnalysisResult {
	return api.AnalysisResult{
		Score: 72,
		Metrics: api.Metrics{
			RevGrowthPct:       4.8,
			ExpenseRatio:       0.74,
			NetCashFlow:        182000,
			WorkingCapital:     460000,
			DebtBurdenRatio:    0.22,
			CashFlowVolatility: 0.31,
		},
		Flags: []api.RiskFlag{
			{Type: "Expense ratio trending upward", Severity: "medium"},
			{Type: "Cash flow volatility above industry norm", Severity: "low"},
		},
		ChartsData: []api.PeriodRecord{
			{Month: "Jan", Revenue: 410000, OperatingExpenses: 305000, NetCashFlow: 105000},
			{Month: "Feb", Revenue: 395000, OperatingExpenses: 310000, NetCashFlow: 85000},
			{Month: "Mar", Revenue: 448000, OperatingExpenses: 318000, NetCashFlow: 130000},
			{Month: "Apr", Revenue: 467000, OperatingExpenses: 342000, NetCashFlow: 125000},
			{Month: "May", Revenue: 452000, OperatingExpenses: 361000, NetCashFlow: 91000},
			{Month: "Jun", Revenue: 498000, OperatingExpenses: 352000, NetCashFlow: 146000},
		},
		AIInsights: "Your business shows healthy revenue growth with a stable cash position. " +
			"Operating expenses are rising faster than revenue in the last two months; " +
			"renegotiating supplier terms could protect your margin. Working capital covers " +
			"roughly 1.3 months of expenses, which is adequate but leaves little buffer " +
			"for seasonal dips.",
		AIInsightsHi: "आपका व्यवसाय स्थिर नकदी स्थिति के साथ स्वस्थ राजस्व वृद्धि दिखाता है। " +
			"पिछले दो महीनों में परिचालन व्यय राजस्व से तेज़ी से बढ़ रहे हैं; आपूर्तिकर्ता शर्तों " +
			"पर फिर से बातचीत करने से आपका मार्जिन सुरक्षित रह सकता है।",
		CreditScore:       intPtr(712),
		TaxStatus:         "Compliant",
		ForecastNextMonth: floatPtr(512000),
		Anomalies: []api.PeriodRecord{
			{Date: "2026-05-14", Revenue: 12000, OperatingExpenses: 98000, NetCashFlow: -86000},
		},
		ReportID: "demo-7f3a",
	}
}
