package commands

import (
	"fmt"

	"github.com/pkg/browser"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/fin-tools/finhealth/pkg/services/analysis"
	"github.com/fin-tools/finhealth/pkg/services/config"
)

type ReportCmd struct {
	cfgPath string
	noOpen  bool
}

func NewReportCmd() *cobra.Command {
	rc := &ReportCmd{}
	cmd := &cobra.Command{
		Use:   "report <report-id>",
		Short: "Open a generated investor report in the browser",
		Args:  cobra.ExactArgs(1),
		RunE:  rc.run,
	}

	cmd.Flags().StringVar(&rc.cfgPath, "config", "", "Path to the configuration file")
	cmd.Flags().BoolVar(&rc.noOpen, "print-only", false, "Print the report URL instead of opening it")

	return cmd
}

func (rc *ReportCmd) run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(rc.cfgPath)
	if err != nil {
		return err
	}

	logger := zerolog.New(cmd.ErrOrStderr()).Level(zerolog.WarnLevel).With().Timestamp().Logger()
	client := analysis.NewClient(cfg.BaseURL, cfg.Timeout(), logger)

	url := client.ReportURL(args[0])
	fmt.Fprintln(cmd.OutOrStdout(), url)

	if rc.noOpen {
		return nil
	}
	return browser.OpenURL(url)
}
