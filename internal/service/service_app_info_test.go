package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-repo-uploader/internal/config"
	"github.com/MKhiriev/go-repo-uploader/internal/logger"
	"github.com/MKhiriev/go-repo-uploader/models"
	"github.com/stretchr/testify/assert"
)

func TestGetAppVersion_ReturnsConfiguredVersion(t *testing.T) {
	svc := NewAppInfoService(config.App{Version: "3.1.4"}, models.NewAppBuildInfo("1.0.0", "", ""), logger.Nop())

	assert.Equal(t, "3.1.4", svc.GetAppVersion(context.Background()))
}

func TestGetAppVersion_FallsBackToBuildVersion(t *testing.T) {
	svc := NewAppInfoService(config.App{}, models.NewAppBuildInfo("1.0.0", "", ""), logger.Nop())

	assert.Equal(t, "1.0.0", svc.GetAppVersion(context.Background()))
}

func TestGetAppVersion_NoVersionAnywhere(t *testing.T) {
	svc := NewAppInfoService(config.App{}, models.NewAppBuildInfo("", "", ""), logger.Nop())

	assert.Equal(t, "N/A", svc.GetAppVersion(context.Background()))
}
