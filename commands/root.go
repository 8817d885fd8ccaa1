// Package commands implements the gbsorgapi command line.
package commands

import (
	"context"
	"fmt"
	"os"

	"gbsorgapi/config"
	"gbsorgapi/pkg/memdb"
	"gbsorgapi/utils"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "gbsorgapi",
		Short:         "GBS organization assignment and attendance API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.LoadConfig(); err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			utils.InitLoggerWithConfig(
				config.Cfg.LogFile,
				config.Cfg.LogLevel,
				config.Cfg.LogMaxSize,
				config.Cfg.LogMaxBackups,
				config.Cfg.LogMaxAge,
				config.Cfg.LogCompress,
			)
			return nil
		},
	}

	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newMigrateCmd())
	cmd.AddCommand(newReorganizeCmd())
	cmd.AddCommand(newUserCmd())
	cmd.AddCommand(newTokenCmd())
	return cmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

// connect opens the configured database, or an in-memory one when memory is set.
// The returned close function releases the in-memory server.
func connect(ctx context.Context, memory bool) (*gorm.DB, func(), error) {
	if !memory {
		if err := config.ConnectDB(); err != nil {
			return nil, nil, fmt.Errorf("connect database: %w", err)
		}
		return config.DB, func() {}, nil
	}

	srv, err := memdb.Start(ctx, config.Cfg.DBName)
	if err != nil {
		return nil, nil, fmt.Errorf("start in-memory database: %w", err)
	}
	db, err := config.Open(config.BuildDSN("root", "", srv.Host(), srv.Port, srv.Database))
	if err != nil {
		srv.Close()
		return nil, nil, fmt.Errorf("connect in-memory database: %w", err)
	}
	config.DB = db
	return db, srv.Close, nil
}
