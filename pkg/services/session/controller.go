package session

import (
	"sync"

	"github.com/fin-tools/finhealth/pkg/models/domain"
)

// Controller holds the top-level session state: the current analysis
// result (if any), the loading flag, and the display language. Chat
// state is deliberately not here; it outlives resets.
type Controller struct {
	mu       sync.Mutex
	result   *domain.Result
	loading  bool
	language domain.Language
}

func NewController(language domain.Language) *Controller {
	if language != domain.LanguageHindi {
		language = domain.LanguageEnglish
	}
	return &Controller{language: language}
}

// BeginAnalysis marks a submission as in flight.
func (c *Controller) BeginAnalysis() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = true
}

// OnAnalysisComplete replaces the result wholesale and clears loading.
// There is no merging with a prior result.
func (c *Controller) OnAnalysisComplete(result domain.Result) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.result = &result
	c.loading = false
}

// AnalysisFailed clears the loading flag without touching the result.
func (c *Controller) AnalysisFailed() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
}

// Reset discards the current result so a new document can be analyzed.
// Language and chat state are untouched.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.result = nil
}

// ToggleLanguage flips the display language. It has no network effect:
// the bilingual narrative fields were already present in the payload.
func (c *Controller) ToggleLanguage() domain.Language {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.language = c.language.Toggle()
	return c.language
}

func (c *Controller) Language() domain.Language {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.language
}

func (c *Controller) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Result returns the current analysis result, or nil before the first
// successful upload and after a reset.
func (c *Controller) Result() *domain.Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.result
}
