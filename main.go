package main

import (
	"blog/content"
	"blog/handler"
	"blog/view"
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"golang.org/x/crypto/acme/autocert"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	cfg, err := loadConfig(os.Getenv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	e, err := newServer(cfg, content.Sample())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error setting up server: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, e, cfg); err != nil {
		e.Logger.Fatal(err)
	}
}

func newServer(cfg Config, store *content.Store) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	if cfg.Environment == DEV_ENV {
		e.Logger.SetLevel(log.DEBUG)
	} else {
		e.Logger.SetLevel(log.INFO)
	}

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.Logger())

	registry, err := view.New()
	if err != nil {
		return nil, err
	}
	e.Renderer = registry

	h := handler.Handler{Store: store}

	e.GET("/", h.GetPosts)
	e.GET("/about", h.GetAbout)
	e.GET("/post/:id", h.GetByID)
	e.Static("/", cfg.PublicDir)

	e.HTTPErrorHandler = h.HTTPErrorHandler

	return e, nil
}

// run serves until ctx is cancelled, then shuts the server down gracefully.
func run(ctx context.Context, e *echo.Echo, cfg Config) error {
	if cfg.WhitelistHost != "" {
		// Cache certificates to avoid issues with rate limits (https://letsencrypt.org/docs/rate-limits)
		e.AutoTLSManager.Cache = autocert.DirCache(cfg.CertCache)
		e.AutoTLSManager.HostPolicy = autocert.HostWhitelist(cfg.WhitelistHost)
		e.Pre(middleware.HTTPSRedirect())
		e.Logger.Infof("Server is running on https://%s", cfg.WhitelistHost)
		return serve(ctx, e, func() error { return e.StartAutoTLS(":443") })
	}

	l, err := net.Listen("tcp", cfg.Address)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", cfg.Address, err)
	}
	fmt.Printf("Server is running on http://localhost:%d\n", l.Addr().(*net.TCPAddr).Port)

	return serve(ctx, e, func() error {
		e.Listener = l
		return e.Start("")
	})
}

func serve(ctx context.Context, e *echo.Echo, start func() error) error {
	errc := make(chan error, 1)
	go func() { errc <- start() }()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}
