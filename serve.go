package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/server"
	"github.com/Zachkp/portfolio/internal/visits"
)

func newServeCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, flags)
		},
	}
}

func runServe(cmd *cobra.Command, flags *rootFlags) error {
	cfg, log, err := loadConfig(flags)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var rec *visits.Recorder
	if cfg.VisitsEnabled() {
		rec, err = visits.Open(ctx, cfg.Visits.DBPath)
		if err != nil {
			return err
		}
		defer rec.Close()

		scheduler, err := visits.ScheduleCleanup(cfg.Visits.CleanupSchedule, cfg.Visits.RetentionMonths, rec, log)
		if err != nil {
			return err
		}
		defer scheduler.Stop()

		log.WithFields(map[string]any{"db": cfg.Visits.DBPath}).Info("visit tracking enabled with hashed IP addresses")
	}

	server.SetMode(cfg.App.Environment)
	router := server.NewRouter(server.Deps{
		Portfolio:     content.Default(),
		Log:           log,
		Version:       cfg.App.Version,
		AssetsDir:     cfg.Server.AssetsDir,
		SecureCookies: cfg.Production(),
		Visits:        rec,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithFields(map[string]any{"addr": srv.Addr, "env": cfg.App.Environment}).Info("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
