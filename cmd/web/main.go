package main

import (
	"fmt"
	"net"
	"os"

	"github.com/de-tools/finsync/pkg/server"
	"github.com/de-tools/finsync/pkg/services/config"
	"github.com/de-tools/finsync/pkg/services/dashboard"
	"github.com/de-tools/finsync/pkg/services/source"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for the FinSync reconciliation dashboard",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to a YAML configuration file (defaults and environment are used when empty)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		return err
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	logger := zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	src, err := source.DefaultRegistry().Create(ctx, *cfg)
	if err != nil {
		return fmt.Errorf("failed to create %s source: %w", cfg.Source.Kind, err)
	}
	if closer, ok := src.(interface{ Close() error }); ok {
		defer closer.Close()
	}

	presets, err := config.NewPresets(cfg.Presets)
	if err != nil {
		return err
	}

	ctrl := dashboard.NewController(src)
	if err := ctrl.Load(ctx); err != nil {
		return err
	}

	names, _ := presets.GetPresets(ctx)
	logger.Info().
		Str("source", src.Name()).
		Strs("presets", names).
		Msg("dashboard ready")

	api := server.NewWebAPI(server.Config{
		Addr:            net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Dependencies: server.Dependencies{
			Controller: ctrl,
			Presets:    presets,
			Logger:     logger,
		},
	})

	return api.Start()
}
