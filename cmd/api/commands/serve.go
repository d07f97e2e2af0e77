package commands

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"petclinic/internal/domain/clinic"
	"petclinic/internal/platform/logger"
	"petclinic/internal/platform/metrics"
	"petclinic/internal/router"
)

func serveCmd() *cobra.Command {
	var (
		port string
		seed bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Levanta la API HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed = seed
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			svc, closeDB, err := openService(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = closeDB() }()

			if cfg.Seed {
				switch err := clinic.Seed(ctx, svc); {
				case errors.Is(err, clinic.ErrAlreadySeeded):
					log.Info("seed skipped: store already has data", nil)
				case err != nil:
					return err
				default:
					log.Info("sample data loaded", nil)
				}
			}

			srv := &http.Server{
				Addr: cfg.Addr(),
				Handler: router.NewRouter(router.Options{
					Logger:  log,
					Service: svc,
					Metrics: metrics.New(cfg.AppName),
				}),
				ReadTimeout:  cfg.ReadTimeout,
				WriteTimeout: cfg.WriteTimeout,
			}

			errCh := make(chan error, 1)
			go func() {
				log.Info("starting server", logger.Fields{"addr": srv.Addr})
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case err := <-errCh:
				if err != nil {
					log.Error("server error", logger.Fields{"error": err.Error()})
				}
				return err
			case <-ctx.Done():
			}

			log.Info("shutting down", nil)
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}

	cmd.Flags().StringVar(&port, "port", "", "puerto HTTP (env PORT, default 8080)")
	cmd.Flags().BoolVar(&seed, "seed", false, "carga datos de ejemplo al arrancar (env SEED)")
	return cmd
}
