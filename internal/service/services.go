package service

import (
	"github.com/MKhiriev/go-repo-uploader/internal/adapter"
	"github.com/MKhiriev/go-repo-uploader/internal/config"
	"github.com/MKhiriev/go-repo-uploader/internal/logger"
	"github.com/MKhiriev/go-repo-uploader/models"
)

type Services struct {
	UploadService  UploadService
	AppInfoService AppInfoService
}

func NewServices(repository adapter.RepositoryAdapter, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	logger.Info().Msg("creating new services...")

	uploadService := NewUploadValidationService().Wrap(
		NewUploadService(repository, cfg.Repository, logger),
	)

	return &Services{
		UploadService:  uploadService,
		AppInfoService: NewAppInfoService(cfg.App, buildInfo, logger),
	}
}
