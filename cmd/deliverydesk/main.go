// Command deliverydesk serves the browser-based management console for the
// delivery platform. It is a presentation-and-orchestration layer over the
// remote delivery API: it owns no business logic and no persistence beyond a
// single bearer token.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/veloro/deliverydesk/internal/adapters/inbound/web"
	"github.com/veloro/deliverydesk/internal/adapters/outbound/restapi"
	"github.com/veloro/deliverydesk/internal/adapters/outbound/tokenfile"
	"github.com/veloro/deliverydesk/internal/app"
	"github.com/veloro/deliverydesk/internal/config"
	"github.com/veloro/deliverydesk/internal/ports"
)

// Version information (set via ldflags during build)
var (
	version = "dev"
	commit  = "none"
)

func main() {
	versionFlag := flag.Bool("version", false, "Print version information and exit")
	configPath := flag.String("config", "deliverydesk.yaml", "Path to config file")
	flag.Parse()

	if *versionFlag {
		fmt.Printf("deliverydesk %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		os.Exit(0)
	}

	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	explicit := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			explicit = true
		}
	})

	cfg, err := config.Load(*configPath, explicit)
	if err != nil {
		log.Error("cannot load configuration", "err", err)
		os.Exit(1)
	}

	application, err := wire(cfg, log)
	if err != nil {
		log.Error("failed to bootstrap application", "err", err)
		os.Exit(1)
	}

	server, err := web.NewServer(application)
	if err != nil {
		log.Error("failed to build web server", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	httpServer := &http.Server{
		Addr:              cfg.Listen.Addr,
		Handler:           server.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		log.Info("console listening", "addr", cfg.Listen.Addr, "api", cfg.API.BaseURL)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		log.Error("server failed", "err", err)
		os.Exit(1)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown failed", "err", err)
		os.Exit(1)
	}
	log.Info("console stopped")
}

// wire assembles the adapters around the application composition root.
func wire(cfg config.Config, log *slog.Logger) (*app.Application, error) {
	store, err := tokenfile.New(cfg.Storage.TokenPath)
	if err != nil {
		return nil, fmt.Errorf("token store: %w", err)
	}

	return app.Bootstrap(cfg, app.Deps{
		TokenStore: store,
		Logger:     log,
		BuildServices: func(tokens ports.TokenSource) app.Services {
			client, err := restapi.NewClient(cfg.API.BaseURL, cfg.API.Timeout, tokens, log)
			if err != nil {
				// NewClient only fails on empty inputs, which Validate rules out.
				panic(err)
			}
			return app.Services{
				Orders:     restapi.NewOrders(client),
				Deliveries: restapi.NewDeliveries(client),
				Addresses:  restapi.NewAddresses(client),
				Auth:       restapi.NewAuth(client, cfg.API.OAuthEntryURL()),
			}
		},
	})
}
