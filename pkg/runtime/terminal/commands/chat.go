package commands

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/fin-tools/finhealth/pkg/services/analysis"
	"github.com/fin-tools/finhealth/pkg/services/chat"
	"github.com/fin-tools/finhealth/pkg/services/config"
)

type ChatCmd struct {
	cfgPath string
}

func NewChatCmd() *cobra.Command {
	cc := &ChatCmd{}
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Converse with the AI financial analyst",
		RunE:  cc.run,
	}

	cmd.Flags().StringVar(&cc.cfgPath, "config", "", "Path to the configuration file")

	return cmd
}

func (cc *ChatCmd) run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cc.cfgPath)
	if err != nil {
		return err
	}

	logger := zerolog.New(cmd.ErrOrStderr()).Level(zerolog.WarnLevel).With().Timestamp().Logger()
	client := analysis.NewClient(cfg.BaseURL, cfg.Timeout(), logger)
	sess := chat.NewSession(client, logger)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "analyst> %s\n", chat.GreetingText)
	fmt.Fprintln(out, "(type 'exit' to leave)")

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Fprint(out, "you> ")
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if strings.TrimSpace(line) == "exit" || strings.TrimSpace(line) == "quit" {
			break
		}

		before := len(sess.Messages())
		if err := sess.Send(cmd.Context(), line); err != nil {
			return err
		}

		for _, msg := range sess.Messages()[before:] {
			if msg.Sender == chat.SenderBot {
				fmt.Fprintf(out, "analyst> %s\n", msg.Text)
			}
		}
	}

	return scanner.Err()
}
