package http

import (
	"github.com/MKhiriev/go-repo-uploader/internal/config"
	"github.com/MKhiriev/go-repo-uploader/internal/logger"
	"github.com/MKhiriev/go-repo-uploader/internal/service"
	"github.com/rs/cors"
)

type Handler struct {
	services *service.Services
	cors     *cors.Cors

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Strs("allowed_origins", cfg.AllowedOrigins).Msg("http handler created")
	return &Handler{
		services: services,
		cors:     newCORS(cfg.AllowedOrigins),
		logger:   logger,
	}
}
