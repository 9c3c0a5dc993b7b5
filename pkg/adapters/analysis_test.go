package adapters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fin-tools/finhealth/pkg/models/api"
)

func TestMapAnalysisResultApiToDomain(t *testing.T) {
	credit := 712
	forecast := 512000.0
	res := api.AnalysisResult{
		Score: 72,
		Metrics: api.Metrics{
			RevGrowthPct:    4.8,
			ExpenseRatio:    0.74,
			DebtBurdenRatio: 0.22,
		},
		Flags: []api.RiskFlag{
			{Type: "Expense ratio trending upward", Severity: "medium"},
		},
		ChartsData: []api.PeriodRecord{
			{Month: "Jan", Revenue: 410000, OperatingExpenses: 305000, NetCashFlow: 105000},
		},
		AIInsights:        "english text",
		AIInsightsHi:      "hindi text",
		CreditScore:       &credit,
		TaxStatus:         "Compliant",
		ForecastNextMonth: &forecast,
		Anomalies: []api.PeriodRecord{
			{Date: "2026-05-14", Revenue: 12000, OperatingExpenses: 98000, NetCashFlow: -86000},
		},
		ReportID: "demo-7f3a",
	}

	result := MapAnalysisResultApiToDomain(res)

	assert.Equal(t, 72, result.Score)
	assert.Equal(t, 0.74, result.Metrics.ExpenseRatio)
	require.Len(t, result.Flags, 1)
	assert.Equal(t, "Expense ratio trending upward", result.Flags[0].Type)
	require.Len(t, result.ChartsData, 1)
	assert.Equal(t, "Jan", result.ChartsData[0].Month)
	assert.Equal(t, 305000.0, result.ChartsData[0].OperatingExpenses)
	require.NotNil(t, result.CreditScore)
	assert.Equal(t, 712, *result.CreditScore)
	require.Len(t, result.Anomalies, 1)
	assert.Equal(t, "2026-05-14", result.Anomalies[0].Date)
	assert.Equal(t, "demo-7f3a", result.ReportID)
}

func TestMapAnalysisResultPreservesAbsence(t *testing.T) {
	result := MapAnalysisResultApiToDomain(api.AnalysisResult{Score: 41})

	assert.Nil(t, result.Flags)
	assert.Nil(t, result.ChartsData)
	assert.Nil(t, result.CreditScore)
	assert.Nil(t, result.ForecastNextMonth)
	assert.Nil(t, result.Anomalies)
	assert.Empty(t, result.TaxStatus)
	assert.Empty(t, result.AIInsightsHi)
	assert.Empty(t, result.ReportID)
}
