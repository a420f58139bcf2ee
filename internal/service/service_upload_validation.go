package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-repo-uploader/internal/validators"
	"github.com/MKhiriev/go-repo-uploader/models"
)

type UploadValidationService struct {
	inner     UploadService
	validator validators.Validator
}

func NewUploadValidationService() UploadServiceWrapper {
	return &UploadValidationService{
		validator: validators.NewUploadValidator(),
	}
}

func (v *UploadValidationService) Wrap(inner UploadService) UploadService {
	v.inner = inner
	return v
}

func (v *UploadValidationService) Upload(ctx context.Context, req models.UploadRequest) (models.UploadResponse, error) {
	if err := v.validator.Validate(ctx, req, validators.FieldFiles); err != nil {
		if errors.Is(err, validators.ErrNoFiles) {
			return models.UploadResponse{}, ErrNoFilesProvided
		}
		return models.UploadResponse{}, fmt.Errorf("error during upload validation: %w", err)
	}

	return v.inner.Upload(ctx, req)
}
