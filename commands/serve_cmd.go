package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"gbsorgapi/bootstrap"
	"gbsorgapi/config"
	"gbsorgapi/controllers"
	"gbsorgapi/pkg/logger"
	"gbsorgapi/services"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

type serveOptions struct {
	memory  bool
	migrate bool
	port    string
}

func newServeCmd() *cobra.Command {
	var opts serveOptions

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), opts)
		},
	}
	cmd.Flags().BoolVar(&opts.memory, "memory", false, "Serve from an in-memory database (implies --migrate)")
	cmd.Flags().BoolVar(&opts.migrate, "migrate", false, "Apply the schema before serving")
	cmd.Flags().StringVar(&opts.port, "port", "", "Listen port (default: PORT from config)")
	return cmd
}

// wireServices hands every service to the controllers.
func wireServices(db *gorm.DB) {
	controllers.SetCatalogService(services.NewCatalogService(db))
	controllers.SetResolutionService(services.NewResolutionService(db))
	controllers.SetAccessService(services.NewAccessService(db))
	controllers.SetAssignmentService(services.NewAssignmentService(db))
	controllers.SetDelegationService(services.NewDelegationService(db))
	controllers.SetReorganizationService(services.NewReorganizationService(db))
	controllers.SetAttendanceService(services.NewAttendanceService(db))
	controllers.SetStatisticsService(services.NewStatisticsService(db, config.Cfg.StatsMaxWeeks))
}

func runServe(ctx context.Context, opts serveOptions) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, closeDB, err := connect(ctx, opts.memory)
	if err != nil {
		return err
	}
	defer closeDB()

	if opts.memory || opts.migrate {
		if err := bootstrap.ApplySchema(db); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	if _, err := bootstrap.LoadData(db); err != nil {
		return fmt.Errorf("load data: %w", err)
	}

	wireServices(db)
	gin.SetMode(config.Cfg.GinMode)
	router := controllers.NewRouter(config.Cfg.JWTSecret)

	port := opts.port
	if port == "" {
		port = config.Cfg.ServerPort
	}
	srv := &http.Server{
		Addr:              "0.0.0.0:" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("Starting server at port %s", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Infof("Received shutdown signal, stopping server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.Cfg.RequestTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Infof("Application shutdown complete")
	return nil
}
