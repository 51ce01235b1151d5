package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/iwvelando/marui-portal/internal/config"
	"github.com/iwvelando/marui-portal/internal/server"
	"github.com/iwvelando/marui-portal/pkg/constants"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func newServeCmd(flags *rootFlags) *cobra.Command {
	var (
		serverConfig  string
		address       string
		maxUploadSize string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the portal JSON API",
		RunE: runWithApp(flags, func(a *app, _ []string) error {
			cfg, err := server.LoadConfig(serverConfig)
			if err != nil {
				return err
			}
			if err := applyServeOverrides(cfg, address, maxUploadSize); err != nil {
				return err
			}

			// The server config may carry its own logging section.
			if cfg.Logging != (config.LoggingConfig{}) {
				logger, err := initializeLogger(mergeLogging(a.conf.Logging, cfg.Logging), flags.logLevel)
				if err != nil {
					return fmt.Errorf("failed to initialize server logger: %w", err)
				}
				_ = a.logger.Sync()
				a.logger = logger
			}
			return serve(a, cfg)
		}),
	}

	cmd.Flags().StringVar(&serverConfig, "server-config", constants.DefaultServerConfigFile, "path to server configuration file")
	cmd.Flags().StringVar(&address, "address", "", "listen address override, e.g. :8080")
	cmd.Flags().StringVar(&maxUploadSize, "max-upload-size", "", "upload size limit override, e.g. 10M")
	return cmd
}

// applyServeOverrides applies the serve flags on top of the server config.
func applyServeOverrides(cfg *server.Config, address, maxUploadSize string) error {
	cfg.SetAddress(address)
	if maxUploadSize == "" {
		return nil
	}
	size, err := server.ParseSize(maxUploadSize)
	if err != nil {
		return fmt.Errorf("invalid --max-upload-size %q: %w", maxUploadSize, err)
	}
	cfg.SetUploadSizeBytes(size)
	return nil
}

func serve(a *app, cfg *server.Config) error {
	handler := server.NewHandler(a.logger, server.Services{
		Ledger:   a.ledger,
		Book:     a.book,
		Registry: a.registry,
	}, server.Options{
		MaxUploadSize: cfg.UploadSizeBytes(),
		Version:       version,
		Session:       a.session,
		Budget:        a.budgetOptions(),
		Sales:         a.salesOptions(),
	})

	srv := &http.Server{
		Addr:              cfg.Address,
		Handler:           handler,
		ReadHeaderTimeout: constants.ReadHeaderTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.logger.Info("portal API listening",
			zap.String("op", "main.serve"),
			zap.String("address", cfg.Address),
			zap.Int64("maxUploadSize", cfg.UploadSizeBytes()),
			zap.String("role", a.role().String()),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("portal http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeoutDuration())
		defer cancel()
		a.logger.Info("shutting down portal API",
			zap.String("op", "main.serve"),
		)
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
