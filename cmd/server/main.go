package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/env-metrics/internal/auth"
	"github.com/MKhiriev/env-metrics/internal/catalog"
	"github.com/MKhiriev/env-metrics/internal/config"
	"github.com/MKhiriev/env-metrics/internal/handler"
	"github.com/MKhiriev/env-metrics/internal/logger"
	"github.com/MKhiriev/env-metrics/internal/server"
	"github.com/MKhiriev/env-metrics/internal/service"
	"github.com/MKhiriev/env-metrics/internal/store"
	"github.com/MKhiriev/env-metrics/internal/utils"
	"github.com/redis/go-redis/v9"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLogger("env-metrics-server", cfg.App.LogLevel)
	log.Debug().
		Str("environment", cfg.App.Environment).
		Str("http_address", cfg.Server.HTTPAddress).
		Bool("auth_test_mode", cfg.App.AuthTestMode).
		Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	storages, err := store.NewStorages(db, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	revocation := auth.RevocationChecker(auth.NoopRevocationChecker{})
	if cfg.Storage.Redis.Address != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Storage.Redis.Address,
			Password: cfg.Storage.Redis.Password,
			DB:       cfg.Storage.Redis.DB,
		})
		defer rdb.Close()
		revocation = auth.NewRedisRevocationChecker(rdb)
		log.Info().Str("address", cfg.Storage.Redis.Address).Msg("token revocation checks enabled")
	}

	keys := auth.NewKeySet(cfg.Auth.KeysURL, utils.NewHTTPClient(cfg.Auth.KeysFetchTimeout), cfg.Auth.KeysTTL)
	verifier := auth.NewFirebaseVerifier(cfg.Auth.CredentialsPath, keys, revocation, log)
	// a failed init leaves the verifier unconfigured; protected routes answer 503
	_ = verifier.Init()

	metricsCatalog := catalog.Default()

	services := service.NewServices(storages, metricsCatalog, verifier, *cfg, log)

	handlers, err := handler.NewHandlers(services, metricsCatalog, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
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
