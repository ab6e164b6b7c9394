package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/SkinTrade_Go/internal/bootstrap"
	"github.com/osse101/SkinTrade_Go/internal/config"
	"github.com/osse101/SkinTrade_Go/internal/handler"
)

//go:generate swag init -g cmd/app/main.go -d ../../ -o ../../docs

// @title SkinTrade API
// @version 1.0
// @description Case opening, inventory and balance API.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "skintrade: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg, handler.GetVersion())
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	content, err := bootstrap.LoadContent(cfg)
	if err != nil {
		return err
	}

	app, err := bootstrap.NewApplication(cfg, content)
	if err != nil {
		return err
	}
	app.Start()

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- app.Server.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	var runErr error
	select {
	case sig := <-stop:
		slog.Info("Shutdown signal received", "signal", sig.String())
	case err := <-serverErr:
		if err != nil {
			runErr = err
		} else {
			runErr = errors.New("server exited unexpectedly")
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(ctx, app.Shutdown)

	return runErr
}
