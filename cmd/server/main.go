package main

import (
	"fmt"

	"github.com/MKhiriev/go-internal-auth/internal/auth"
	"github.com/MKhiriev/go-internal-auth/internal/config"
	"github.com/MKhiriev/go-internal-auth/internal/crypto"
	"github.com/MKhiriev/go-internal-auth/internal/handler"
	"github.com/MKhiriev/go-internal-auth/internal/logger"
	"github.com/MKhiriev/go-internal-auth/internal/server"
	"github.com/MKhiriev/go-internal-auth/internal/service"
	"github.com/MKhiriev/go-internal-auth/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("auth-server")

	if err := crypto.SelfCheck(); err != nil {
		log.Fatal().Err(err).Msg("crypto self check failed")
	}

	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}

	log.Info().Object("auth", cfg.Auth).Str("address", cfg.Server.HTTPAddress).Msg("received configs")

	secret := auth.NewSharedSecret(cfg.Auth.HeaderName, cfg.Auth.Token)
	guard := auth.NewGuard(secret, cfg.Auth.CallUniqueID, log)

	services, err := service.NewServices(cfg.App, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, guard, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Fatal().Err(err).Msg("server run error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
