package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ardanlabs/collatz/config"
	"github.com/ardanlabs/collatz/logs"
	"github.com/ardanlabs/collatz/page"
	"github.com/ardanlabs/collatz/web"
)

const shutdownTimeout = 5 * time.Second

func main() {
	logger := logs.New(logs.Options{
		Writer:  os.Stderr,
		Journal: logs.UnderSystemd(),
	})

	if s := os.Getenv("LOG_LEVEL"); s != "" {
		level, err := logs.ParseLevel(s)
		if err != nil {
			logger.Error("log level", "error", err)
			os.Exit(1)
		}
		logs.SetLevel(level)
	}

	var files []string
	if s := os.Getenv("COLLATZ_CONFIG"); s != "" {
		files = filepath.SplitList(s)
	}
	cfg, err := config.Load(files...)
	if err != nil {
		logger.Error("config", "files", files, "error", err)
		os.Exit(1)
	}

	p := page.New(cfg.Options())
	if err := p.Err(); err != nil {
		// The page still serves, showing the error.
		logger.Warn("sequence", "number", cfg.Number, "error", err)
	}

	addr := os.Getenv("HTTPD_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           web.NewMux(p, logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server listening", "addr", addr, "number", cfg.Number)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(sctx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server", "error", err)
		os.Exit(1)
	}
}
