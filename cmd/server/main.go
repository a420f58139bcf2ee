package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-repo-uploader/internal/adapter"
	"github.com/MKhiriev/go-repo-uploader/internal/config"
	"github.com/MKhiriev/go-repo-uploader/internal/handler"
	"github.com/MKhiriev/go-repo-uploader/internal/logger"
	"github.com/MKhiriev/go-repo-uploader/internal/server"
	"github.com/MKhiriev/go-repo-uploader/internal/service"
	"github.com/MKhiriev/go-repo-uploader/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo.String())

	log := logger.NewLogger("repo-uploader")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = log.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	log.Debug().Any("config", cfg.Redacted()).Msg("received configs")

	repositoryAdapter, err := adapter.NewGitHubRepositoryAdapter(cfg.Repository, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating repository adapter")
	}

	services := service.NewServices(repositoryAdapter, *cfg, buildInfo, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	log.Info().
		Str("owner", cfg.Repository.Owner).
		Str("repo", cfg.Repository.Name).
		Str("address", cfg.Server.Address()).
		Msg("starting uploader")

	if err = srv.RunServer(); err != nil {
		log.Fatal().Err(err).Msg("server run error")
	}
}
