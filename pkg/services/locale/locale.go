package locale

import "github.com/fin-tools/finhealth/pkg/models/domain"

// Table holds every localized label the client surfaces use.
type Table struct {
	Title          string
	Subtitle       string
	AnalyzeNew     string
	Analyzing      string
	SelectFile     string
	Score          string
	Risk           string
	NoRisks        string
	ExpenseRatio   string
	DebtBurden     string
	Advanced       string
	CreditScore    string
	TaxStatus      string
	Forecast       string
	InsightEngine  string
	InvestorReport string
	RevExp         string
	CashFlow       string
	Outflow        string
	Anomalies      string
	NoAnomalies    string
	AnomaliesDesc  string
	AskPlaceholder string
}

var tables = map[domain.Language]Table{
	domain.LanguageEnglish: {
		Title:          "Financial Health Analysis",
		Subtitle:       "Upload your financial statement and get an instant AI-powered health assessment.",
		AnalyzeNew:     "Analyze New",
		Analyzing:      "Analyzing your financials...",
		SelectFile:     "Select File",
		Score:          "Financial Health Score",
		Risk:           "Risk Assessment",
		NoRisks:        "No critical risks identified.",
		ExpenseRatio:   "Expense Ratio",
		DebtBurden:     "Debt Burden",
		Advanced:       "Advanced Insights",
		CreditScore:    "Credit Score",
		TaxStatus:      "Tax Status",
		Forecast:       "Next Month Forecast",
		InsightEngine:  "AI Insight Engine",
		InvestorReport: "Investor Report",
		RevExp:         "Revenue vs Expenses",
		CashFlow:       "Net Cash Flow",
		Outflow:        "Outflow Breakdown",
		Anomalies:      "Anomaly Detection",
		NoAnomalies:    "No operational anomalies detected.",
		AnomaliesDesc:  "The AI flagged the following unusual transactions:",
		AskPlaceholder: "Ask about your finances...",
	},
	domain.LanguageHindi: {
		Title:          "वित्तीय स्वास्थ्य विश्लेषण",
		Subtitle:       "अपना वित्तीय विवरण अपलोड करें और तुरंत AI-संचालित स्वास्थ्य आकलन पाएं।",
		AnalyzeNew:     "नया विश्लेषण",
		Analyzing:      "आपके वित्तीय आंकड़ों का विश्लेषण हो रहा है...",
		SelectFile:     "फ़ाइल चुनें",
		Score:          "वित्तीय स्वास्थ्य स्कोर",
		Risk:           "जोखिम मूल्यांकन",
		NoRisks:        "कोई गंभीर जोखिम नहीं मिला।",
		ExpenseRatio:   "व्यय अनुपात",
		DebtBurden:     "ऋण भार",
		Advanced:       "उन्नत अंतर्दृष्टि",
		CreditScore:    "क्रेडिट स्कोर",
		TaxStatus:      "कर स्थिति",
		Forecast:       "अगले महीने का पूर्वानुमान",
		InsightEngine:  "AI इनसाइट इंजन",
		InvestorReport: "निवेशक रिपोर्ट",
		RevExp:         "राजस्व बनाम व्यय",
		CashFlow:       "शुद्ध नकदी प्रवाह",
		Outflow:        "बहिर्वाह विवरण",
		Anomalies:      "विसंगति पहचान",
		NoAnomalies:    "कोई परिचालन विसंगति नहीं मिली।",
		AnomaliesDesc:  "AI ने निम्नलिखित असामान्य लेनदेन चिह्नित किए:",
		AskPlaceholder: "अपने वित्त के बारे में पूछें...",
	},
}

// For returns the translation table for a language, defaulting to
// English for anything unrecognized.
func For(lang domain.Language) Table {
	if t, ok := tables[lang]; ok {
		return t
	}
	return tables[domain.LanguageEnglish]
}

// Narrative selects the language-appropriate insight text from a
// result. The Hindi variant is optional and falls back to the English
// narrative when absent.
func Narrative(result domain.Result, lang domain.Language) string {
	if lang == domain.LanguageHindi && result.AIInsightsHi != "" {
		return result.AIInsightsHi
	}
	return result.AIInsights
}
