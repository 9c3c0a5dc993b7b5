package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fin-tools/finhealth/pkg/models/domain"
)

func TestNarrativeSelection(t *testing.T) {
	withHindi := domain.Result{AIInsights: "english text", AIInsightsHi: "hindi text"}
	withoutHindi := domain.Result{AIInsights: "english text"}

	tests := []struct {
		name     string
		result   domain.Result
		lang     domain.Language
		expected string
	}{
		{"english with both variants", withHindi, domain.LanguageEnglish, "english text"},
		{"hindi with both variants", withHindi, domain.LanguageHindi, "hindi text"},
		{"english without hindi variant", withoutHindi, domain.LanguageEnglish, "english text"},
		{"hindi falls back to english", withoutHindi, domain.LanguageHindi, "english text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Narrative(tt.result, tt.lang))
		})
	}
}

func TestForReturnsLanguageTable(t *testing.T) {
	assert.Equal(t, "Financial Health Score", For(domain.LanguageEnglish).Score)
	assert.Equal(t, "वित्तीय स्वास्थ्य स्कोर", For(domain.LanguageHindi).Score)
}

func TestForUnknownLanguageDefaultsToEnglish(t *testing.T) {
	assert.Equal(t, For(domain.LanguageEnglish), For(domain.Language("fr")))
}
