package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	figure "github.com/common-nighthawk/go-figure"

	"github.com/fin-tools/finhealth/pkg/models/domain"
	"github.com/fin-tools/finhealth/pkg/services/chat"
	"github.com/fin-tools/finhealth/pkg/services/dashboard"
	"github.com/fin-tools/finhealth/pkg/services/intake"
	"github.com/fin-tools/finhealth/pkg/services/locale"
)

func (m Model) View() string {
	if !m.ready {
		return "\n  Loading..."
	}

	var main string
	if m.session.Result() != nil {
		main = m.dashView.View()
	} else {
		main = m.viewUpload()
	}

	if m.chatOpen {
		main = lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.NewStyle().Width(m.dashWidth()).Render(main),
			m.viewChatPanel(),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left, main, m.viewStatusBar())
}

// Upload screen

func (m Model) viewUpload() string {
	t := Default
	labels := locale.For(m.session.Language())

	banner := lipgloss.NewStyle().Foreground(t.Primary).
		Render(strings.Join(figure.NewFigure("FinHealth", "small", true).Slicify(), "\n"))
	title := lipgloss.NewStyle().Bold(true).Foreground(t.Text).Render(labels.Title)
	subtitle := lipgloss.NewStyle().Foreground(t.Muted).Width(70).Render(labels.Subtitle)

	sections := []string{banner, title, subtitle, ""}

	if m.session.Loading() {
		sections = append(sections,
			m.spin.View()+" "+lipgloss.NewStyle().Foreground(t.Primary).Render(labels.Analyzing))
	} else {
		sections = append(sections,
			m.viewFileField(labels),
			m.viewIndustryField(),
			m.viewSubmitField(),
		)
	}

	if msg := m.intake.Err(); msg != "" {
		errStyle := lipgloss.NewStyle().Foreground(t.Error).Bold(true)
		sections = append(sections, "", errStyle.Render(msg))
	}

	return lipgloss.NewStyle().Padding(1, 3).Render(
		lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) viewFileField(labels locale.Table) string {
	t := Default
	label := fieldLabel(labels.SelectFile, m.focus == focusFile)

	var value string
	if file := m.intake.File(); file != nil {
		sizeKB := float64(file.Size) / 1024
		value = lipgloss.NewStyle().Foreground(t.Success).
			Render(fmt.Sprintf("%s (%.1f KB)", file.Name, sizeKB))
	} else {
		value = m.fileInput.View()
	}
	return lipgloss.JoinVertical(lipgloss.Left, label, "  "+value, "")
}

func (m Model) viewIndustryField() string {
	t := Default
	label := fieldLabel("Select Industry", m.focus == focusIndustry)

	var rows []string
	for i, industry := range intake.Industries {
		cursor := "  "
		style := lipgloss.NewStyle().Foreground(t.Muted)
		if i == m.industryIdx {
			cursor = "> "
			style = lipgloss.NewStyle().Foreground(t.Text).Bold(true)
		}
		if industry == m.intake.Industry() {
			style = style.Foreground(t.Success)
		}
		rows = append(rows, "  "+cursor+style.Render(industry))
	}

	if m.focus != focusIndustry {
		// Collapsed view: show only the current choice.
		choice := m.intake.Industry()
		if choice == "" {
			choice = intake.Industries[m.industryIdx]
		}
		rows = []string{"  " + lipgloss.NewStyle().Foreground(t.Muted).Render(choice)}
	}

	return lipgloss.JoinVertical(lipgloss.Left, append([]string{label}, append(rows, "")...)...)
}

func (m Model) viewSubmitField() string {
	t := Default
	style := lipgloss.NewStyle().
		Padding(0, 2).
		Foreground(t.Text).
		Background(t.Surface)
	if m.focus == focusSubmit {
		style = style.Background(t.Primary).Bold(true)
	}
	return style.Render("Analyze Financials")
}

func fieldLabel(text string, focused bool) string {
	t := Default
	style := lipgloss.NewStyle().Foreground(t.Muted)
	if focused {
		style = lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	}
	return style.Render(text)
}

// Dashboard screen

func (m Model) renderDashboard(result domain.Result) string {
	t := Default
	view := dashboard.Present(result, m.session.Language())
	width := m.dashWidth() - 6

	heading := lipgloss.NewStyle().Foreground(t.Muted).Bold(true)
	var sections []string

	scoreStyle := lipgloss.NewStyle().Foreground(BandColor(view.BandColor)).Bold(true)
	gauge := scoreBar(view.GaugeScore, 40)
	sections = append(sections,
		heading.Render(view.Labels.Score),
		scoreStyle.Render(fmt.Sprintf("%s  %d / 100  [%s]", gauge, view.Score, view.Band)),
		"")

	sections = append(sections, heading.Render(view.Labels.Risk))
	if len(view.Risks) == 0 {
		sections = append(sections, lipgloss.NewStyle().Foreground(t.Success).Render("✓ "+view.Labels.NoRisks))
	} else {
		for _, risk := range view.Risks {
			sev := lipgloss.NewStyle().Foreground(t.Error).Render(strings.ToUpper(risk.Severity))
			sections = append(sections, fmt.Sprintf("• %s  [%s]", risk.Type, sev))
		}
	}
	sections = append(sections,
		fmt.Sprintf("%s: %s    %s: %s",
			view.Labels.ExpenseRatio, ratioBadge(view.ExpenseRatio),
			view.Labels.DebtBurden, ratioBadge(view.DebtBurden)),
		"")

	sections = append(sections, heading.Render(view.Labels.Advanced))
	credit := view.Credit.Display
	if view.Credit.Available {
		credit += "  " + fractionBar(view.Credit.Fraction, 30)
	}
	taxStyle := lipgloss.NewStyle().Foreground(t.Warning)
	if view.Tax.Compliant {
		taxStyle = lipgloss.NewStyle().Foreground(t.Success)
	}
	sections = append(sections,
		fmt.Sprintf("%s: %s", view.Labels.CreditScore, credit),
		fmt.Sprintf("%s: %s", view.Labels.TaxStatus, taxStyle.Render(view.Tax.Display)),
		fmt.Sprintf("%s: %s %s (%s)", view.Labels.Forecast,
			view.Forecast.Display, view.Forecast.Marker, view.Forecast.Badge),
		"")

	sections = append(sections,
		heading.Render(view.Labels.InsightEngine),
		lipgloss.NewStyle().Width(width).Foreground(t.Text).Render(view.Narrative),
		"")

	sections = append(sections, heading.Render(view.Labels.RevExp))
	for _, rec := range view.Trend {
		sections = append(sections, fmt.Sprintf("%-5s  Rev %14s   Exp %14s   Net %14s",
			rec.Month,
			dashboard.FormatCurrency(rec.Revenue),
			dashboard.FormatCurrency(rec.OperatingExpenses),
			dashboard.FormatCurrency(rec.NetCashFlow)))
	}
	sections = append(sections, "")

	sections = append(sections, heading.Render(view.Labels.Anomalies))
	if len(view.Anomalies) == 0 {
		sections = append(sections, lipgloss.NewStyle().Foreground(t.Success).Render("✓ "+view.Labels.NoAnomalies))
	} else {
		sections = append(sections, view.Labels.AnomaliesDesc)
		for _, row := range view.Anomalies {
			amount := lipgloss.NewStyle().Foreground(t.Error).Render(row.Amount)
			sections = append(sections,
				fmt.Sprintf("• %s  %s  (Rev: %s | Exp: %s)", row.Date, amount, row.Revenue, row.Expenses))
		}
	}
	sections = append(sections, "")

	report := "Report generation failed or not available."
	if view.ReportAvailable {
		report = m.client.ReportURL(view.ReportID)
	}
	sections = append(sections, heading.Render(view.Labels.InvestorReport), report)

	return lipgloss.NewStyle().Padding(1, 3).Render(
		lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func scoreBar(score, width int) string {
	filled := score * width / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func fractionBar(fraction float64, width int) string {
	filled := int(fraction / 100 * float64(width))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func ratioBadge(badge dashboard.RatioBadge) string {
	t := Default
	style := lipgloss.NewStyle().Foreground(t.Success)
	if badge.Alert {
		style = lipgloss.NewStyle().Foreground(t.Error)
	}
	return style.Render(badge.Display)
}

// Chat overlay

func (m Model) viewChatPanel() string {
	t := Default

	title := lipgloss.NewStyle().Bold(true).Foreground(t.Text).Render("AI Analyst")
	status := lipgloss.NewStyle().Foreground(t.Success).Render("● online")
	if m.chat.Sending() {
		status = m.spin.View() + lipgloss.NewStyle().Foreground(t.Muted).Render(" Analyzing...")
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		title,
		status,
		"",
		m.chatView.View(),
		"",
		m.chatInput.View(),
	)

	return lipgloss.NewStyle().
		Width(chatPanelWidth-2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Primary).
		Padding(0, 1).
		Render(body)
}

func (m Model) renderTranscript() string {
	t := Default
	width := chatPanelWidth - 6

	userStyle := lipgloss.NewStyle().Width(width).Foreground(t.Text).
		Background(t.Primary).Padding(0, 1)
	botStyle := lipgloss.NewStyle().Width(width).Foreground(t.Text).
		Background(t.Surface).Padding(0, 1)

	var blocks []string
	for _, msg := range m.chat.Messages() {
		style := botStyle
		prefix := "analyst"
		if msg.Sender == chat.SenderUser {
			style = userStyle
			prefix = "you"
		}
		label := lipgloss.NewStyle().Foreground(t.Muted).Render(prefix)
		blocks = append(blocks, label, style.Render(msg.Text), "")
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

// Status bar

func (m Model) viewStatusBar() string {
	t := Default
	labels := locale.For(m.session.Language())

	hints := []string{
		keys.ToggleChat.Help().Key + " " + keys.ToggleChat.Help().Desc,
		keys.ToggleLang.Help().Key + " " + m.session.Language().Label(),
	}
	if m.session.Result() != nil {
		hints = append(hints, keys.AnalyzeNew.Help().Key+" "+labels.AnalyzeNew)
	}
	hints = append(hints, keys.Quit.Help().Key+" "+keys.Quit.Help().Desc)

	return lipgloss.NewStyle().
		Foreground(t.Muted).
		Padding(0, 1).
		Render(strings.Join(hints, "  ·  "))
}
