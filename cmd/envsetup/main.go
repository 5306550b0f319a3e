package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/qetools/configcake/internal/config"
	"github.com/qetools/configcake/internal/envsetup"
	"github.com/qetools/configcake/internal/logging"
)

func main() {
	kingpinApp := kingpin.New("envsetup", "Prepare the development environment by running the configured setup commands")
	configFile := kingpinApp.Flag("config", "Path to YAML configuration file").String()
	verbose := kingpinApp.Flag("verbose", "Show each command before it is executed").Short('v').Bool()
	timeout := kingpinApp.Flag("timeout", "Per-command timeout (set 0 to disable)").Default("-1s").Duration()

	kingpin.MustParse(kingpinApp.Parse(os.Args[1:]))

	overrides := &config.CLIOverrides{
		ConfigFile: *configFile,
	}

	if *verbose {
		overrides.Verbose = verbose
	}

	if *timeout >= 0 {
		overrides.CommandTimeout = timeout
	}

	cfg, err := config.Load(overrides)
	if err != nil {
		panic(fmt.Sprintf("failed to load configuration: %v", err))
	}

	logger, err := logging.New(cfg.Verbose)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() {
		_ = logger.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runner := envsetup.New(cfg, logger)
	if err := runner.Run(ctx); err != nil {
		logger.Fatal("environment setup failed", zap.Error(err))
	}

	logger.Info("environment setup complete", zap.Int("commands", len(cfg.Commands)))
}
