package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/paisawise/paisawise/internal/config"
	"github.com/paisawise/paisawise/internal/logging"
	"github.com/paisawise/paisawise/internal/server"
	"github.com/paisawise/paisawise/pkg/constants"
	"go.uber.org/zap"
)

// version is stamped at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	addr := flag.String("addr", "", "listen address override (e.g. :8080)")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	// Load the config file to get logging configuration
	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		return
	}

	// Initialize logging based on config and CLI override
	logger, err := logging.New(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Validate configuration and display any warnings
	for _, warning := range conf.ValidateConfiguration() {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	listenAddr := conf.Server.Address
	if *addr != "" {
		listenAddr = *addr
	}

	var limiter *server.RateLimiter
	if conf.Server.RateLimit.Enabled {
		limiter = server.NewRateLimiter(conf.Server.RateLimit.RequestsPerMinute, time.Minute)
		defer limiter.Stop()
	}

	handler := server.Chain(server.NewHandler(logger, conf, version), logger, limiter)

	srv := &http.Server{
		Addr:         listenAddr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("listening",
			zap.String("op", "main"),
			zap.String("address", listenAddr),
			zap.String("version", version),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logger.Error("server failed",
			zap.String("op", "main"),
			zap.Error(err),
		)
		return
	case sig := <-quit:
		logger.Info("shutting down",
			zap.String("op", "main"),
			zap.String("signal", sig.String()),
		)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown did not complete cleanly",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
}
