package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/iwvelando/penalty-estimator/internal/logging"
	"github.com/iwvelando/penalty-estimator/internal/server"
	"github.com/iwvelando/penalty-estimator/pkg/constants"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// A missing .env is fine; variables may come from the environment.
	envErr := godotenv.Load()

	configLocation := flag.String("config", constants.DefaultServerConfigFile, "path to server configuration file")
	addrFlag := flag.String("addr", "", "listen address override")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	cfg, err := server.LoadConfig(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load server configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		os.Exit(1)
	}

	if envAddr := strings.TrimSpace(os.Getenv(constants.ServerAddressEnv)); envAddr != "" {
		cfg.Address = envAddr
	}
	if *addrFlag != "" {
		cfg.Address = *addrFlag
	}

	logger, err := logging.New(cfg.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	if envErr != nil {
		logger.Debug("no .env file loaded",
			zap.String("op", "main"),
			zap.Error(envErr),
		)
	}

	srv := &http.Server{
		Addr:              cfg.Address,
		Handler:           server.NewHandler(logger, cfg, version),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	logger.Info("penalty server listening",
		zap.String("op", "main"),
		zap.String("address", cfg.Address),
		zap.Int64("maxBodySize", cfg.BodySizeBytes()),
		zap.String("version", version),
	)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server stopped",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
}
