package handler

import (
	"github.com/MKhiriev/go-repo-uploader/internal/config"
	"github.com/MKhiriev/go-repo-uploader/internal/handler/http"
	"github.com/MKhiriev/go-repo-uploader/internal/logger"
	"github.com/MKhiriev/go-repo-uploader/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if services == nil || services.UploadService == nil || services.AppInfoService == nil {
		return nil, errServicesAreNotInitialized
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg, logger),
	}, nil
}
