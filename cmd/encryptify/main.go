package main

import (
	"fmt"

	"github.com/Baconcat1912/encryptify/internal/client"
	"github.com/Baconcat1912/encryptify/internal/config"
	"github.com/Baconcat1912/encryptify/internal/crypto"
	"github.com/Baconcat1912/encryptify/internal/logger"
	"github.com/Baconcat1912/encryptify/internal/service"
	"github.com/Baconcat1912/encryptify/internal/store"
	"github.com/Baconcat1912/encryptify/internal/tui"
	"github.com/Baconcat1912/encryptify/internal/workers"
	"github.com/Baconcat1912/encryptify/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewAppLogger("encryptify")
	cfg, err := config.GetAppConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	executor, err := newExecutor(cfg.Crypto, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create cipher executor")
	}

	storages, err := store.NewStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services := service.NewServices(storages, executor, log)
	runner := workers.NewRunner(4)

	ui, err := tui.New(services, runner, cfg.Defaults,
		models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, runner, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("run error")
	}
}

func newExecutor(cfg config.AppCrypto, log *logger.Logger) (crypto.Executor, error) {
	switch cfg.Backend {
	case config.BackendNative:
		return crypto.NewNativeExecutor(), nil
	case config.BackendOpenSSL:
		return crypto.NewOpenSSLExecutor(cfg.OpenSSLPath, log), nil
	default:
		return nil, fmt.Errorf("unknown crypto backend %q", cfg.Backend)
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
