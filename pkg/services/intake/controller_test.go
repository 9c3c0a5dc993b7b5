package intake

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fin-tools/finhealth/pkg/models/domain"
	"github.com/fin-tools/finhealth/pkg/services/analysis"
	"github.com/fin-tools/finhealth/pkg/services/session"
)

type mockAnalyzer struct {
	mock.Mock
}

func (m *mockAnalyzer) Upload(ctx context.Context, path string, language domain.Language, industry string) (domain.Result, error) {
	args := m.Called(ctx, path, language, industry)
	return args.Get(0).(domain.Result), args.Error(1)
}

func writeTempFile(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte("month,revenue\nJan,410000\n"), 0o644))
	return path
}

func TestSelectFileAcceptsAllowedExtensions(t *testing.T) {
	for _, name := range []string{"ledger.csv", "ledger.xlsx", "ledger.pdf", "LEDGER.CSV"} {
		t.Run(name, func(t *testing.T) {
			ctrl := NewController(&mockAnalyzer{}, session.NewController(domain.LanguageEnglish), zerolog.Nop())
			path := writeTempFile(t, name)

			require.NoError(t, ctrl.SelectFile(path))

			file := ctrl.File()
			require.NotNil(t, file)
			assert.Equal(t, name, file.Name)
			assert.Equal(t, path, file.Path)
			assert.Positive(t, file.Size)
			assert.Empty(t, ctrl.Err())
		})
	}
}

func TestSelectFileRejectsBadExtensionAndKeepsPrior(t *testing.T) {
	ctrl := NewController(&mockAnalyzer{}, session.NewController(domain.LanguageEnglish), zerolog.Nop())
	good := writeTempFile(t, "ledger.csv")
	require.NoError(t, ctrl.SelectFile(good))

	err := ctrl.SelectFile(writeTempFile(t, "ledger.docx"))

	require.Error(t, err)
	assert.Equal(t, MsgBadExtension, ctrl.Err())
	require.NotNil(t, ctrl.File())
	assert.Equal(t, "ledger.csv", ctrl.File().Name)
}

func TestSelectFileUnreadable(t *testing.T) {
	ctrl := NewController(&mockAnalyzer{}, session.NewController(domain.LanguageEnglish), zerolog.Nop())

	err := ctrl.SelectFile(filepath.Join(t.TempDir(), "missing.csv"))

	require.Error(t, err)
	assert.Equal(t, MsgUnreadable, ctrl.Err())
	assert.Nil(t, ctrl.File())
}

func TestClearFile(t *testing.T) {
	ctrl := NewController(&mockAnalyzer{}, session.NewController(domain.LanguageEnglish), zerolog.Nop())
	require.NoError(t, ctrl.SelectFile(writeTempFile(t, "ledger.csv")))

	ctrl.ClearFile()

	assert.Nil(t, ctrl.File())
}

func TestSubmitWithoutFile(t *testing.T) {
	analyzer := &mockAnalyzer{}
	ctrl := NewController(analyzer, session.NewController(domain.LanguageEnglish), zerolog.Nop())
	ctrl.SetIndustry("Retail")

	require.NoError(t, ctrl.Submit(context.Background()))

	assert.Equal(t, MsgNoFile, ctrl.Err())
	analyzer.AssertNotCalled(t, "Upload")
}

func TestSubmitWithoutIndustry(t *testing.T) {
	analyzer := &mockAnalyzer{}
	ctrl := NewController(analyzer, session.NewController(domain.LanguageEnglish), zerolog.Nop())
	require.NoError(t, ctrl.SelectFile(writeTempFile(t, "ledger.csv")))

	require.NoError(t, ctrl.Submit(context.Background()))

	assert.Equal(t, MsgNoIndustry, ctrl.Err())
	analyzer.AssertNotCalled(t, "Upload")
}

func TestSubmitSuccessDestroysDraft(t *testing.T) {
	sess := session.NewController(domain.LanguageHindi)
	analyzer := &mockAnalyzer{}
	ctrl := NewController(analyzer, sess, zerolog.Nop())

	path := writeTempFile(t, "ledger.csv")
	require.NoError(t, ctrl.SelectFile(path))
	ctrl.SetIndustry("Retail")

	analyzer.On("Upload", mock.Anything, path, domain.LanguageHindi, "Retail").
		Return(domain.Result{Score: 72}, nil)

	require.NoError(t, ctrl.Submit(context.Background()))

	assert.Nil(t, ctrl.File())
	assert.Empty(t, ctrl.Industry())
	assert.Empty(t, ctrl.Err())
	assert.False(t, ctrl.Busy())
	assert.False(t, sess.Loading())
	require.NotNil(t, sess.Result())
	assert.Equal(t, 72, sess.Result().Score)
	analyzer.AssertExpectations(t)
}

func TestSubmitServerErrorShowsDetailVerbatim(t *testing.T) {
	sess := session.NewController(domain.LanguageEnglish)
	analyzer := &mockAnalyzer{}
	ctrl := NewController(analyzer, sess, zerolog.Nop())

	path := writeTempFile(t, "ledger.csv")
	require.NoError(t, ctrl.SelectFile(path))
	ctrl.SetIndustry("Retail")

	analyzer.On("Upload", mock.Anything, path, domain.LanguageEnglish, "Retail").
		Return(domain.Result{}, &analysis.ServerError{StatusCode: 400, Detail: "Unsupported file type. Please upload a CSV, XLSX, or PDF file."})

	require.NoError(t, ctrl.Submit(context.Background()))

	assert.Equal(t, "Unsupported file type. Please upload a CSV, XLSX, or PDF file.", ctrl.Err())
	assert.False(t, sess.Loading())
	assert.Nil(t, sess.Result())
}

func TestSubmitTransportErrorShowsConnectivityMessage(t *testing.T) {
	sess := session.NewController(domain.LanguageEnglish)
	analyzer := &mockAnalyzer{}
	ctrl := NewController(analyzer, sess, zerolog.Nop())

	path := writeTempFile(t, "ledger.csv")
	require.NoError(t, ctrl.SelectFile(path))
	ctrl.SetIndustry("Retail")

	analyzer.On("Upload", mock.Anything, path, domain.LanguageEnglish, "Retail").
		Return(domain.Result{}, errors.New("dial tcp: connection refused"))

	require.NoError(t, ctrl.Submit(context.Background()))

	assert.Equal(t, MsgConnectivity, ctrl.Err())
	assert.False(t, sess.Loading())
	// The draft survives a failed submission so the user can retry.
	require.NotNil(t, ctrl.File())
	assert.Equal(t, "Retail", ctrl.Industry())
}

type blockingAnalyzer struct {
	started chan struct{}
	release chan struct{}
}

func (b *blockingAnalyzer) Upload(context.Context, string, domain.Language, string) (domain.Result, error) {
	close(b.started)
	<-b.release
	return domain.Result{Score: 72}, nil
}

func TestSubmitWhileBusyReturnsErrBusy(t *testing.T) {
	analyzer := &blockingAnalyzer{started: make(chan struct{}), release: make(chan struct{})}
	ctrl := NewController(analyzer, session.NewController(domain.LanguageEnglish), zerolog.Nop())

	require.NoError(t, ctrl.SelectFile(writeTempFile(t, "ledger.csv")))
	ctrl.SetIndustry("Retail")

	done := make(chan error, 1)
	go func() { done <- ctrl.Submit(context.Background()) }()
	<-analyzer.started

	assert.True(t, ctrl.Busy())
	assert.ErrorIs(t, ctrl.Submit(context.Background()), ErrBusy)

	close(analyzer.release)
	require.NoError(t, <-done)
	assert.False(t, ctrl.Busy())
}

func TestValidIndustry(t *testing.T) {
	for _, ind := range Industries {
		assert.True(t, ValidIndustry(ind))
	}
	assert.False(t, ValidIndustry("Mining"))
	assert.False(t, ValidIndustry("retail"))
	assert.False(t, ValidIndustry(""))
}
