package adapters

import (
	"github.com/fin-tools/finhealth/pkg/models/api"
	"github.com/fin-tools/finhealth/pkg/models/domain"
)

func MapAnalysisResultApiToDomain(res api.AnalysisResult) domain.Result {
	return domain.Result{
		Score: res.Score,
		Metrics: domain.Metrics{
			RevGrowthPct:       res.Metrics.RevGrowthPct,
			ExpenseRatio:       res.Metrics.ExpenseRatio,
			NetCashFlow:        res.Metrics.NetCashFlow,
			WorkingCapital:     res.Metrics.WorkingCapital,
			DebtBurdenRatio:    res.Metrics.DebtBurdenRatio,
			CashFlowVolatility: res.Metrics.CashFlowVolatility,
		},
		Flags:             mapRiskFlags(res.Flags),
		ChartsData:        mapPeriodRecords(res.ChartsData),
		AIInsights:        res.AIInsights,
		AIInsightsHi:      res.AIInsightsHi,
		CreditScore:       res.CreditScore,
		TaxStatus:         res.TaxStatus,
		ForecastNextMonth: res.ForecastNextMonth,
		Anomalies:         mapPeriodRecords(res.Anomalies),
		ReportID:          res.ReportID,
	}
}

func mapRiskFlags(flags []api.RiskFlag) []domain.RiskFlag {
	if flags == nil {
		return nil
	}
	mapped := make([]domain.RiskFlag, 0, len(flags))
	for _, f := range flags {
		mapped = append(mapped, domain.RiskFlag{Type: f.Type, Severity: f.Severity})
	}
	return mapped
}

func mapPeriodRecords(records []api.PeriodRecord) []domain.PeriodRecord {
	if records == nil {
		return nil
	}
	mapped := make([]domain.PeriodRecord, 0, len(records))
	for _, r := range records {
		mapped = append(mapped, domain.PeriodRecord{
			Month:             r.Month,
			Date:              r.Date,
			Revenue:           r.Revenue,
			OperatingExpenses: r.OperatingExpenses,
			NetCashFlow:       r.NetCashFlow,
		})
	}
	return mapped
}
