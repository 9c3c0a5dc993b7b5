package intake

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/fin-tools/finhealth/pkg/models/domain"
	"github.com/fin-tools/finhealth/pkg/services/analysis"
)

// Fixed user-facing messages. Validation errors are reported inline and
// never retried automatically.
const (
	MsgBadExtension = "Only .csv, .xlsx, or .pdf files are allowed."
	MsgUnreadable   = "Could not read the selected file."
	MsgNoFile       = "Please select a file to analyze."
	MsgNoIndustry   = "Please select an industry to continue."
	MsgConnectivity = "Could not reach the analysis service. Please check your connection and try again."
)

// ErrBusy is returned when Submit is called while a submission is
// already in flight. The busy state is a hard invariant, not a UI hint.
var ErrBusy = errors.New("a submission is already in flight")

var allowedExtensions = []string{".csv", ".xlsx", ".pdf"}

// Industries is the fixed closed set of selectable categories.
var Industries = []string{
	"Retail",
	"E-commerce",
	"Manufacturing",
	"Services",
	"Agriculture",
	"Logistics",
	"Technology",
	"Healthcare",
	"Construction",
	"Other",
}

// ValidIndustry reports whether v belongs to the fixed industry set.
// Surfaces that take free-form input (CLI flags) use it as their gate.
func ValidIndustry(v string) bool {
	for _, ind := range Industries {
		if ind == v {
			return true
		}
	}
	return false
}

// FileRef is a selected-but-not-yet-submitted document.
type FileRef struct {
	Name string
	Path string
	Size int64
}

// Analyzer submits a document and produces an analysis result.
type Analyzer interface {
	Upload(ctx context.Context, path string, language domain.Language, industry string) (domain.Result, error)
}

// Session receives the outcome of a submission and supplies the current
// display language for the upload call.
type Session interface {
	Language() domain.Language
	BeginAnalysis()
	OnAnalysisComplete(result domain.Result)
	AnalysisFailed()
}

// Controller manages the upload draft: file selection, industry choice,
// validation, and the single in-flight submission.
type Controller struct {
	analyzer Analyzer
	session  Session
	log      zerolog.Logger

	mu       sync.Mutex
	file     *FileRef
	industry string
	errMsg   string
	busy     bool
}

func NewController(analyzer Analyzer, session Session, log zerolog.Logger) *Controller {
	return &Controller{
		analyzer: analyzer,
		session:  session,
		log:      log.With().Str("component", "intake").Logger(),
	}
}

// SelectFile validates the filename suffix against the fixed allow-list
// and stores the selection. A rejected file sets the fixed extension
// message and leaves any previously selected file untouched. Every
// intake path (flag, prompt, picker) funnels through here.
func (c *Controller) SelectFile(path string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	name := filepath.Base(path)
	if !allowedExtension(name) {
		c.errMsg = MsgBadExtension
		return errors.New(MsgBadExtension)
	}

	info, err := os.Stat(path)
	if err != nil {
		c.errMsg = MsgUnreadable
		return errors.New(MsgUnreadable)
	}

	c.errMsg = ""
	c.file = &FileRef{Name: name, Path: path, Size: info.Size()}
	return nil
}

// ClearFile drops the current selection so a different file can be
// chosen.
func (c *Controller) ClearFile() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.file = nil
}

func (c *Controller) SetIndustry(v string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.industry = v
}

// Submit validates the draft and issues a single multipart submission.
// Precondition failures set an inline error and perform no network
// call. A second Submit while one is in flight is rejected with
// ErrBusy. On success the result is handed to the session, which owns
// clearing the loading flag.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.busy {
		c.mu.Unlock()
		return ErrBusy
	}
	if c.file == nil {
		c.errMsg = MsgNoFile
		c.mu.Unlock()
		return nil
	}
	if c.industry == "" {
		c.errMsg = MsgNoIndustry
		c.mu.Unlock()
		return nil
	}

	c.busy = true
	c.errMsg = ""
	file := *c.file
	industry := c.industry
	c.mu.Unlock()

	c.session.BeginAnalysis()
	result, err := c.analyzer.Upload(ctx, file.Path, c.session.Language(), industry)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.busy = false

	if err != nil {
		var serverErr *analysis.ServerError
		if errors.As(err, &serverErr) {
			c.errMsg = serverErr.Detail
		} else {
			c.errMsg = MsgConnectivity
		}
		c.log.Warn().Err(err).Str("file", file.Name).Msg("submission failed")
		c.session.AnalysisFailed()
		return nil
	}

	// Draft state is destroyed once a result is produced.
	c.file = nil
	c.industry = ""
	c.log.Info().Str("file", file.Name).Int("score", result.Score).Msg("analysis complete")
	c.session.OnAnalysisComplete(result)
	return nil
}

func (c *Controller) File() *FileRef {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.file == nil {
		return nil
	}
	file := *c.file
	return &file
}

func (c *Controller) Industry() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.industry
}

// Err returns the current inline error message, empty when none.
func (c *Controller) Err() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errMsg
}

func (c *Controller) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.busy
}

func allowedExtension(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range allowedExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
