package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fin-tools/finhealth/pkg/models/domain"
)

func TestNewControllerDefaultsToEnglish(t *testing.T) {
	assert.Equal(t, domain.LanguageEnglish, NewController("").Language())
	assert.Equal(t, domain.LanguageEnglish, NewController("fr").Language())
	assert.Equal(t, domain.LanguageHindi, NewController(domain.LanguageHindi).Language())
}

func TestAnalysisLifecycle(t *testing.T) {
	ctrl := NewController(domain.LanguageEnglish)
	assert.Nil(t, ctrl.Result())
	assert.False(t, ctrl.Loading())

	ctrl.BeginAnalysis()
	assert.True(t, ctrl.Loading())

	ctrl.OnAnalysisComplete(domain.Result{Score: 72})
	assert.False(t, ctrl.Loading())
	require.NotNil(t, ctrl.Result())
	assert.Equal(t, 72, ctrl.Result().Score)
}

func TestOnAnalysisCompleteReplacesWholesale(t *testing.T) {
	ctrl := NewController(domain.LanguageEnglish)
	credit := 712
	ctrl.OnAnalysisComplete(domain.Result{Score: 72, CreditScore: &credit, ReportID: "demo-7f3a"})

	ctrl.OnAnalysisComplete(domain.Result{Score: 41})

	result := ctrl.Result()
	require.NotNil(t, result)
	assert.Equal(t, 41, result.Score)
	assert.Nil(t, result.CreditScore)
	assert.Empty(t, result.ReportID)
}

func TestAnalysisFailedKeepsResult(t *testing.T) {
	ctrl := NewController(domain.LanguageEnglish)
	ctrl.OnAnalysisComplete(domain.Result{Score: 72})

	ctrl.BeginAnalysis()
	ctrl.AnalysisFailed()

	assert.False(t, ctrl.Loading())
	require.NotNil(t, ctrl.Result())
	assert.Equal(t, 72, ctrl.Result().Score)
}

func TestResetClearsOnlyResult(t *testing.T) {
	ctrl := NewController(domain.LanguageHindi)
	ctrl.OnAnalysisComplete(domain.Result{Score: 72})

	ctrl.Reset()

	assert.Nil(t, ctrl.Result())
	assert.Equal(t, domain.LanguageHindi, ctrl.Language())
}

func TestToggleLanguage(t *testing.T) {
	ctrl := NewController(domain.LanguageEnglish)
	assert.Equal(t, domain.LanguageHindi, ctrl.ToggleLanguage())
	assert.Equal(t, domain.LanguageHindi, ctrl.Language())
	assert.Equal(t, domain.LanguageEnglish, ctrl.ToggleLanguage())
}
