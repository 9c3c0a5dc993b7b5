package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fin-tools/finhealth/pkg/services/intake"
	"github.com/fin-tools/finhealth/pkg/services/locale"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.dashView = viewport.New(m.dashWidth(), m.height-2)
		m.chatView = viewport.New(chatPanelWidth-4, m.height-8)
		m.ready = true
		m.refreshDashboard()
		m.refreshChat()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		cmds = append(cmds, cmd)

	case analysisDoneMsg:
		if m.session.Result() != nil {
			m.refreshDashboard()
		}

	case chatDoneMsg:
		m.refreshChat()
	}

	if m.ready {
		var cmd tea.Cmd
		m.dashView, cmd = m.dashView.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.ToggleChat):
		m.chatOpen = !m.chatOpen
		if m.chatOpen {
			m.chatInput.Focus()
			m.fileInput.Blur()
			m.refreshChat()
		} else {
			m.chatInput.Blur()
			if m.session.Result() == nil && m.focus == focusFile {
				m.fileInput.Focus()
			}
		}
		return m, nil

	case key.Matches(msg, keys.ToggleLang):
		m.session.ToggleLanguage()
		m.chatInput.Placeholder = locale.For(m.session.Language()).AskPlaceholder
		m.refreshDashboard()
		return m, nil
	}

	if m.chatOpen {
		return m.handleChatKey(msg)
	}
	if m.session.Result() != nil {
		return m.handleDashboardKey(msg)
	}
	return m.handleUploadKey(msg)
}

func (m Model) handleChatKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Back):
		m.chatOpen = false
		m.chatInput.Blur()
		return m, nil

	case key.Matches(msg, keys.Confirm):
		// The send action is gated while a round is awaiting its
		// response; the session rejects re-entry regardless.
		if m.chat.Sending() {
			return m, nil
		}
		text := m.chatInput.Value()
		m.chatInput.Reset()
		m.refreshChat()
		return m, sendChatCmd(m.chat, text)
	}

	var cmd tea.Cmd
	m.chatInput, cmd = m.chatInput.Update(msg)
	return m, cmd
}

func (m Model) handleDashboardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.AnalyzeNew):
		m.session.Reset()
		m.fileInput.Reset()
		m.focus = focusFile
		m.fileInput.Focus()
		return m, nil
	}
	return m, nil
}

func (m Model) handleUploadKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.session.Loading() {
		// The submit affordance is disabled while an upload is in
		// flight; the controller also hard-rejects a second submit.
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.Next):
		m.focus = (m.focus + 1) % 3
		if m.focus == focusFile {
			m.fileInput.Focus()
		} else {
			m.fileInput.Blur()
		}
		return m, nil

	case key.Matches(msg, keys.Confirm):
		switch m.focus {
		case focusFile:
			if m.fileInput.Value() != "" {
				_ = m.intake.SelectFile(m.fileInput.Value())
				if m.intake.File() != nil {
					m.focus = focusIndustry
					m.fileInput.Blur()
				}
			}
			return m, nil
		case focusIndustry:
			m.intake.SetIndustry(intake.Industries[m.industryIdx])
			m.focus = focusSubmit
			return m, nil
		case focusSubmit:
			return m, submitCmd(m.intake)
		}
	}

	if m.focus == focusIndustry {
		switch msg.String() {
		case "up", "k":
			m.industryIdx = (m.industryIdx + len(intake.Industries) - 1) % len(intake.Industries)
			return m, nil
		case "down", "j":
			m.industryIdx = (m.industryIdx + 1) % len(intake.Industries)
			return m, nil
		}
	}

	if m.focus == focusFile {
		var cmd tea.Cmd
		m.fileInput, cmd = m.fileInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) refreshDashboard() {
	if !m.ready {
		return
	}
	m.dashView.Width = m.dashWidth()
	if result := m.session.Result(); result != nil {
		m.dashView.SetContent(m.renderDashboard(*result))
	}
}

func (m *Model) refreshChat() {
	if !m.ready {
		return
	}
	m.chatView.SetContent(m.renderTranscript())
	m.chatView.GotoBottom()
}

func (m Model) dashWidth() int {
	if m.chatOpen {
		return m.width - chatPanelWidth
	}
	return m.width
}
