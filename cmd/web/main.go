package main

import (
	"fmt"
	"net"
	"os"

	"github.com/fis-tools/fiscal-atlas/pkg/server"
	"github.com/fis-tools/fiscal-atlas/pkg/services/config"
	"github.com/fis-tools/fiscal-atlas/pkg/services/report"
	"github.com/fis-tools/fiscal-atlas/pkg/store/static"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for Fiscal Atlas",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to an optional configuration file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(_ *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	store := static.NewStore()
	assembler := report.NewAssembler(store)

	addr := net.JoinHostPort(cfg.Host, cfg.Port)
	api := server.NewWebAPI(logger, server.Config{
		Addr: addr,
		Dependencies: server.Dependencies{
			Assembler: assembler,
			Defaults:  cfg.DisplayPreferences(),
		},
	})

	logger.Info().
		Str("default_unit", cfg.DefaultUnit).
		Bool("default_comparison", cfg.DefaultComparison).
		Msg("dataset loaded, financial year ended March 31, 2023")

	return api.Start()
}
