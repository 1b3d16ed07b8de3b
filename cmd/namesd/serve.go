package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v2"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/status-im/status-names/appdatabase"
	"github.com/status-im/status-names/metrics"
	"github.com/status-im/status-names/registry"
	"github.com/status-im/status-names/services/names"
)

const shutdownTimeout = 5 * time.Second

func serve(cCtx *cli.Context) (err error) {
	config, err := loadConfig(cCtx)
	if err != nil {
		return err
	}

	logger, err := setupLogger(config.LogSettings)
	if err != nil {
		zap.S().Fatalf("Error initializing logger: %v", err)
	}
	logger.Info("running command", zap.String("command", cCtx.Command.Name), zap.Stringer("config", config))
	logger.Debug("flags", zap.String("used", flagsUsed(cCtx)))

	db, err := appdatabase.InitializeDB(config.AppDatabasePath(), config.DatabasePassword, config.KDFIterations)
	if err != nil {
		return fmt.Errorf("failed to initialize app database: %v", err)
	}
	defer func() { err = multierr.Append(err, db.Close()) }()

	registryDB, err := registry.InitializeDB(config.RegistryDatabasePath(), config.DatabasePassword, config.KDFIterations)
	if err != nil {
		return fmt.Errorf("failed to initialize registry database: %v", err)
	}
	defer func() { err = multierr.Append(err, registryDB.Close()) }()

	reg := registry.New(registryDB, config.Admins, logger)
	defer reg.Close()

	api, err := names.NewAPI(db, config, reg, reg, reg, logger)
	if err != nil {
		return err
	}
	service := names.NewService(api)
	if err := service.Start(); err != nil {
		return err
	}
	defer func() { err = multierr.Append(err, service.Stop()) }()

	rpcServer, err := names.NewRPCServer(service)
	if err != nil {
		return err
	}
	defer rpcServer.Stop()

	var metricsServer *metrics.Server
	if config.MetricsAddress != "" {
		metricsServer = metrics.NewMetricsServer(config.MetricsAddress, prometheus.DefaultGatherer, logger)
		go metricsServer.Listen()
	}

	httpServer := &http.Server{
		Addr:              config.HTTPAddress(),
		Handler:           names.NewHTTPHandler(rpcServer, config.RateLimiter(), logger),
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	if config.HTTPEnabled {
		go func() {
			logger.Info("serving JSON-RPC", zap.String("address", httpServer.Addr))
			if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}()
	} else {
		logger.Warn("HTTP is disabled, nothing will be served")
	}

	select {
	case <-waitForSigExit():
		logger.Info("Exiting")
	case err = <-errCh:
		logger.Error("JSON-RPC server failed", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if config.HTTPEnabled {
		err = multierr.Append(err, httpServer.Shutdown(ctx))
	}
	if metricsServer != nil {
		err = multierr.Append(err, metricsServer.Stop(ctx))
	}
	return err
}

func waitForSigExit() <-chan os.Signal {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	return sig
}

func flagsUsed(cCtx *cli.Context) string {
	var sb strings.Builder
	for _, flag := range cCtx.Command.Flags {
		if flag != nil && len(flag.Names()) > 0 {
			fName := flag.Names()[0]
			fmt.Fprintf(&sb, "\t-%s %v\n", fName, cCtx.Value(fName))
		}
	}
	return sb.String()
}
