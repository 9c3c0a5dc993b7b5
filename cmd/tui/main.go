package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/fin-tools/finhealth/pkg/models/domain"
	"github.com/fin-tools/finhealth/pkg/runtime/tui"
	"github.com/fin-tools/finhealth/pkg/services/analysis"
	"github.com/fin-tools/finhealth/pkg/services/chat"
	"github.com/fin-tools/finhealth/pkg/services/config"
	"github.com/fin-tools/finhealth/pkg/services/intake"
	"github.com/fin-tools/finhealth/pkg/services/session"
)

func main() {
	cfgPath := flag.String("config", "", "Path to the configuration file")
	logPath := flag.String("log", "", "Write logs to this file (terminal output is owned by the UI)")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := zerolog.Nop()
	if *logPath != "" {
		logFile, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logFile.Close()
		logger = zerolog.New(logFile).With().Timestamp().Logger()
	}

	client := analysis.NewClient(cfg.BaseURL, cfg.Timeout(), logger)
	sess := session.NewController(domain.Language(cfg.Language))
	intakeCtrl := intake.NewController(client, sess, logger)
	chatSess := chat.NewSession(client, logger)

	m := tui.NewModel(client, sess, intakeCtrl, chatSess)

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
