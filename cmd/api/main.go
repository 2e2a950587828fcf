package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/yigit/prisonadmin/internal/bootstrap"
	"github.com/yigit/prisonadmin/internal/config"
	"github.com/yigit/prisonadmin/internal/db"
	"github.com/yigit/prisonadmin/internal/pkg/logger"
	"github.com/yigit/prisonadmin/internal/server"
)

// @title Prison Admin API
// @version 1.0
// @description Administration API over the prison database: inmate records, sentences, medical data, facilities, staff and analytical reports.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCommand().ExecuteContext(ctx); err != nil {
		logger.Error().Err(err).Msg("Command failed")
		stop()
		os.Exit(1)
	}
}

func rootCommand() *cobra.Command {
	var configPath string

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server until interrupted",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), configPath)
		},
	}

	rootCmd := &cobra.Command{
		Use:           "prisonadmin",
		Short:         "Prison database administration server",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serveCmd.RunE,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultConfigPath, "path to the YAML configuration file")

	initCmd := &cobra.Command{
		Use:   "init-db",
		Short: "Drop and recreate every table",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withAdmin(cmd.Context(), configPath, func(ctx context.Context, admin adminTasks) error {
				return admin.InitializeDatabase(ctx)
			})
		},
	}

	var initFirst bool
	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Replace the table contents with the sample data set",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withAdmin(cmd.Context(), configPath, func(ctx context.Context, admin adminTasks) error {
				if initFirst {
					if err := admin.InitializeDatabase(ctx); err != nil {
						return err
					}
				}
				return admin.InsertDefaultData(ctx)
			})
		},
	}
	seedCmd.Flags().BoolVar(&initFirst, "init", false, "recreate the schema before seeding")

	rootCmd.AddCommand(serveCmd, initCmd, seedCmd)
	return rootCmd
}

func serve(ctx context.Context, configPath string) error {
	srv, err := server.NewServer(ctx, configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	if err := srv.Run(ctx); err != nil {
		return err
	}

	logger.Info().Msg("Application finished gracefully.")
	return nil
}

type adminTasks interface {
	InitializeDatabase(ctx context.Context) error
	InsertDefaultData(ctx context.Context) error
}

// withAdmin connects to the database, runs task and drains the pool.
func withAdmin(ctx context.Context, configPath string, task func(context.Context, adminTasks) error) error {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(configPath)
	if err != nil {
		return err
	}

	manager, err := bootstrap.SetupDatabase(ctx, cfg, lgr)
	if err != nil {
		return err
	}

	taskErr := task(ctx, bootstrap.NewAdminService(manager))
	if taskErr == nil {
		lgr.Info().Msg("Done")
	}
	return errors.Join(taskErr, manager.Close(db.DrainGracePeriod))
}
