package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-repo-uploader/models"
)

// UploadService commits a batch of uploaded files to the remote repository
// and describes the result.
type UploadService interface {
	// Upload commits every file of req in order, then a share descriptor,
	// and returns the batch id, viewing URL, and descriptor. The first
	// failure aborts the batch; files committed before it are left in place.
	Upload(ctx context.Context, req models.UploadRequest) (models.UploadResponse, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// UploadServiceWrapper defines middleware composition for UploadService.
// Implementations wrap an existing UploadService to add behavior such as
// validation.
type UploadServiceWrapper interface {
	Wrap(UploadService) UploadService
}

// IDGenerator produces batch identifiers.
type IDGenerator interface {
	Generate() string
}

// Clock reports the current time.
type Clock func() time.Time
