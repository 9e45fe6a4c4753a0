package main

import (
	"fmt"

	"github.com/MKhiriev/go-internal-auth/internal/adapter"
	"github.com/MKhiriev/go-internal-auth/internal/auth"
	"github.com/MKhiriev/go-internal-auth/internal/client"
	"github.com/MKhiriev/go-internal-auth/internal/config"
	"github.com/MKhiriev/go-internal-auth/internal/crypto"
	"github.com/MKhiriev/go-internal-auth/internal/logger"
	"github.com/MKhiriev/go-internal-auth/internal/service"
	"github.com/MKhiriev/go-internal-auth/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Println(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("peer-client")

	if err := crypto.SelfCheck(); err != nil {
		log.Fatal().Err(err).Msg("crypto self check failed")
	}

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}

	log.Info().Object("auth", cfg.Auth).Str("peer", cfg.Adapter.HTTPAddress).Msg("received configs")

	issuer := auth.NewIssuer(auth.NewSharedSecret(cfg.Auth.HeaderName, cfg.Auth.Token), cfg.Auth.CallUniqueID)

	peerAdapter, err := adapter.NewHTTPPeerAdapter(cfg.Adapter, issuer, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create peer adapter")
	}

	app, err := client.NewApp(service.NewClientServices(peerAdapter, log), client.DefaultMessage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
