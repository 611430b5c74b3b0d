package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/mathgrade/internal/config"
	"github.com/at-ishikawa/mathgrade/internal/database"
	"github.com/at-ishikawa/mathgrade/internal/server"
	"github.com/at-ishikawa/mathgrade/internal/solve"
)

var (
	configFile string
	migrate    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "mathgrade-server",
		Short:         "Math grading service HTTP server",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return run(ctx)
		},
	}
	rootCmd.Flags().StringVar(&configFile, "config", "", "config file path")
	rootCmd.Flags().BoolVar(&migrate, "migrate", false, "apply database migrations before serving")

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{AddSource: true})))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loadConfig() > %w", err)
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		return fmt.Errorf("database.Open() > %w", err)
	}
	defer func() {
		_ = db.Close()
	}()
	if migrate {
		if err := database.Migrate(db); err != nil {
			return fmt.Errorf("database.Migrate() > %w", err)
		}
	}

	handler, err := server.NewGradingHandler(solve.NewService(solve.NewDBRepository(db)))
	if err != nil {
		return fmt.Errorf("server.NewGradingHandler() > %w", err)
	}
	return server.New(cfg.Server, handler).Serve(ctx)
}

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("config.NewConfigLoader() > %w", err)
	}
	return loader.Load()
}
