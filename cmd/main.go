package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ArdaDrcn/Cwepp/config"
	v1 "github.com/ArdaDrcn/Cwepp/internal/controllers/http/v1"
	"github.com/ArdaDrcn/Cwepp/internal/dashboard"
	"github.com/ArdaDrcn/Cwepp/internal/report"
	"github.com/ArdaDrcn/Cwepp/internal/storage"
)

const configPath = "config/config.yaml"

func main() {
	cfg, err := config.NewConfig(configPath)
	if err != nil {
		panic(err)
	}

	store, err := storage.New(cfg.Database)
	if err != nil {
		panic(err)
	}
	defer store.Close()

	svc := dashboard.NewService(store, store, store, cfg.Dashboard.DeviceLimit)
	reports := report.NewWriter(cfg.Report.OutputDirectoryAbsolutePath)
	handler := v1.NewV1Handler(svc, reports)

	// device cap is tunable without a restart
	stopWatch, err := config.Watch(configPath, func(newCfg *config.Config) {
		svc.SetDeviceLimit(newCfg.Dashboard.DeviceLimit)
	})
	if err != nil {
		slog.Error("error while starting config watcher", "err", err)
	} else {
		defer stopWatch()
	}

	server := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
		Handler:      handler.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("dashboard listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case <-ctx.Done():
		slog.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("error while shutting down server", "err", err)
		}
	case err := <-errChan:
		panic(err)
	}
}
