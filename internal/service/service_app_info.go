package service

import (
	"context"

	"github.com/MKhiriev/go-repo-uploader/internal/config"
	"github.com/MKhiriev/go-repo-uploader/internal/logger"
	"github.com/MKhiriev/go-repo-uploader/models"
)

type appInfoService struct {
	appVersion string

	logger *logger.Logger
}

// NewAppInfoService reports cfg.Version when configured, otherwise the
// version baked into the binary.
func NewAppInfoService(cfg config.App, buildInfo models.AppBuildInfo, logger *logger.Logger) AppInfoService {
	version := cfg.Version
	if version == "" {
		version = buildInfo.BuildVersion()
	}

	return &appInfoService{
		appVersion: version,
		logger:     logger,
	}
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}
