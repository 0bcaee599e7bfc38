package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"choque/web"

	"github.com/spf13/cobra"
)

var (
	servePort    int
	servePreload bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the JSON listing API",
	Long: `Start an HTTP server exposing the listing boards as JSON.

Datasets are fetched lazily on their first request and kept in memory until a
request asks for ?refresh=1. A dataset whose sheets all fail answers with
503 {"status":"updating"} until a later fetch succeeds.

Endpoints:
- GET /healthz
- GET /api/datasets
- GET /api/listings/{kind}?category=&q=&price=&refresh=1
- GET /api/listings/{kind}/{id}`,
	Example: `
  # Start server on the configured port (default 8080)
  choque serve

  # Custom port, fetching every dataset before accepting requests
  choque serve --port 9090 --preload
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}

		port := a.cfg.Serve.Port
		if cmd.Flags().Changed("port") {
			port = servePort
		}
		if port < 1 || port > 65535 {
			return fmt.Errorf("invalid port: %d", port)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if servePreload {
			preload(ctx, a)
		}

		server := &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           web.NewServer(a.catalog, a.logger),
			ReadHeaderTimeout: 10 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			errCh <- server.ListenAndServe()
		}()

		fmt.Printf("Listening on http://localhost:%d\n", port)
		a.logger.Info("server started", "port", port, "datasets", len(a.catalog.Kinds()))

		select {
		case err := <-errCh:
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("shutdown server: %w", err)
			}
			err := <-errCh
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			a.logger.Info("server stopped")
			return nil
		}
	},
}

// preload fetches every dataset once. Failures are logged; the affected
// datasets answer as updating and retry on the next refresh request.
func preload(ctx context.Context, a *app) {
	failed := a.catalog.RefreshAll(ctx)
	for _, kind := range a.catalog.Kinds() {
		if err, ok := failed[kind]; ok {
			a.logger.Warn("preload failed", "dataset", string(kind), "error", err)
		}
	}
	a.logger.Info("preload finished", "datasets", len(a.catalog.Kinds()), "failed", len(failed))
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntVar(&servePort, "port", 8080, "HTTP port (default from serve.port)")
	serveCmd.Flags().BoolVar(&servePreload, "preload", false, "Fetch every dataset before accepting requests")
}
