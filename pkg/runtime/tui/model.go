package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fin-tools/finhealth/pkg/services/analysis"
	"github.com/fin-tools/finhealth/pkg/services/chat"
	"github.com/fin-tools/finhealth/pkg/services/intake"
	"github.com/fin-tools/finhealth/pkg/services/locale"
	"github.com/fin-tools/finhealth/pkg/services/session"
)

type focusArea int

const (
	focusFile focusArea = iota
	focusIndustry
	focusSubmit
)

const chatPanelWidth = 44

// Model is the bubbletea application state. Domain state lives in the
// controllers; the model only carries UI affordances around them.
type Model struct {
	client  *analysis.Client
	session *session.Controller
	intake  *intake.Controller
	chat    *chat.Session

	width  int
	height int
	ready  bool

	// Upload screen
	focus       focusArea
	fileInput   textinput.Model
	industryIdx int
	spin        spinner.Model

	// Dashboard screen
	dashView viewport.Model

	// Chat overlay
	chatOpen  bool
	chatInput textinput.Model
	chatView  viewport.Model
}

// Messages

type analysisDoneMsg struct{}

type chatDoneMsg struct{}

func NewModel(
	client *analysis.Client,
	sess *session.Controller,
	intakeCtrl *intake.Controller,
	chatSess *chat.Session,
) Model {
	fileInput := textinput.New()
	fileInput.Placeholder = "path/to/statement.csv"
	fileInput.Focus()

	chatInput := textinput.New()
	chatInput.Placeholder = locale.For(sess.Language()).AskPlaceholder
	chatInput.CharLimit = 500

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(Default.Primary)

	return Model{
		client:    client,
		session:   sess,
		intake:    intakeCtrl,
		chat:      chatSess,
		fileInput: fileInput,
		chatInput: chatInput,
		spin:      spin,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spin.Tick)
}

// Commands

func submitCmd(ctrl *intake.Controller) tea.Cmd {
	return func() tea.Msg {
		// Busy and validation rejections surface through ctrl.Err().
		_ = ctrl.Submit(context.Background())
		return analysisDoneMsg{}
	}
}

func sendChatCmd(sess *chat.Session, text string) tea.Cmd {
	return func() tea.Msg {
		_ = sess.Send(context.Background(), text)
		return chatDoneMsg{}
	}
}
