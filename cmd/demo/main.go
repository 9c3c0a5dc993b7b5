package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/fin-tools/finhealth/pkg/server"
)

var addr string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "finhealth-demo",
		Short: "Start the canned-fixture demo backend for the FinHealth client",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&addr, "addr", "a", ":8000",
		"Address to listen on")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	_ = godotenv.Load()

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	if env := os.Getenv("DEMO_ADDR"); env != "" && !cmd.Flags().Changed("addr") {
		addr = env
	}

	api := server.NewDemoAPI(logger, server.Config{
		Addr:            addr,
		ShutdownTimeout: 10 * time.Second,
	})

	return api.Start()
}
