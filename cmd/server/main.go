package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/jwt-keychain/internal/adapter"
	"github.com/MKhiriev/jwt-keychain/internal/config"
	"github.com/MKhiriev/jwt-keychain/internal/crypto"
	"github.com/MKhiriev/jwt-keychain/internal/handler"
	"github.com/MKhiriev/jwt-keychain/internal/logger"
	"github.com/MKhiriev/jwt-keychain/internal/server"
	"github.com/MKhiriev/jwt-keychain/internal/service"
	"github.com/MKhiriev/jwt-keychain/internal/store"
	"github.com/MKhiriev/jwt-keychain/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("jwt-keychain-server")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err := migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)

	hasher, err := crypto.NewPasswordHasher(cfg.Auth.BCryptCost)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating password hasher")
	}

	// A key id without a secret in the signing key set aborts startup here.
	tokens, err := service.NewTokenGenerators(cfg.Auth)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating token generators")
	}

	mailer, err := adapter.NewMailRelayAdapter(cfg.Mail, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating mail relay adapter")
	}

	services := service.NewServices(storages, hasher, tokens, mailer, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, tokens.RefreshEnabled(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
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
