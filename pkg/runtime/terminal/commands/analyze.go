package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/fin-tools/finhealth/pkg/models/domain"
	"github.com/fin-tools/finhealth/pkg/runtime/terminal/export"
	"github.com/fin-tools/finhealth/pkg/services/analysis"
	"github.com/fin-tools/finhealth/pkg/services/config"
	"github.com/fin-tools/finhealth/pkg/services/dashboard"
	"github.com/fin-tools/finhealth/pkg/services/intake"
	"github.com/fin-tools/finhealth/pkg/services/session"
)

type AnalyzeCmd struct {
	cfgPath  string
	filePath string
	industry string
	language string
	reporter *export.Reporter
}

func NewAnalyzeCmd(reporter *export.Reporter) *cobra.Command {
	ac := &AnalyzeCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Upload a financial document and render its health dashboard",
		RunE:  ac.run,
	}

	cmd.Flags().StringVar(&ac.cfgPath, "config", "", "Path to the configuration file")
	cmd.Flags().StringVar(&ac.filePath, "file", "", "Financial document to analyze (.csv, .xlsx, .pdf)")
	cmd.Flags().StringVar(&ac.industry, "industry", "", "Business industry category")
	cmd.Flags().StringVar(&ac.language, "lang", "", "Display language (en or hi)")

	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("industry")

	return cmd
}

func (ac *AnalyzeCmd) run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(ac.cfgPath)
	if err != nil {
		return err
	}

	if !intake.ValidIndustry(ac.industry) {
		return fmt.Errorf("unknown industry %q. Supported industries: %s",
			ac.industry, strings.Join(intake.Industries, ", "))
	}

	language := domain.Language(cfg.Language)
	if ac.language != "" {
		language = domain.Language(ac.language)
	}

	logger := zerolog.New(cmd.ErrOrStderr()).Level(zerolog.WarnLevel).With().Timestamp().Logger()
	client := analysis.NewClient(cfg.BaseURL, cfg.Timeout(), logger)
	sess := session.NewController(language)
	ctrl := intake.NewController(client, sess, logger)

	if err := ctrl.SelectFile(ac.filePath); err != nil {
		return err
	}
	ctrl.SetIndustry(ac.industry)

	if err := ctrl.Submit(cmd.Context()); err != nil {
		return err
	}
	if msg := ctrl.Err(); msg != "" {
		return errors.New(msg)
	}

	result := sess.Result()
	if result == nil {
		return errors.New("analysis produced no result")
	}

	view := dashboard.Present(*result, sess.Language())
	return ac.reporter.Handle(view, client.ReportURL(result.ReportID))
}
