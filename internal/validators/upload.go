package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-repo-uploader/models"
)

const (
	FieldFiles = "files"
)

// defaultFileName replaces names that are empty after sanitisation.
const defaultFileName = "file"

type UploadValidator struct {
}

func NewUploadValidator() Validator {
	return &UploadValidator{}
}

func (v *UploadValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.UploadRequest:
		return v.validateUploadRequest(ctx, value, fields...)
	case *models.UploadRequest:
		if value == nil {
			return v.validateUploadRequest(ctx, models.UploadRequest{}, fields...)
		}
		return v.validateUploadRequest(ctx, *value, fields...)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *UploadValidator) validateUploadRequest(_ context.Context, req models.UploadRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFiles}
	}

	for _, field := range fields {
		switch field {
		case FieldFiles:
			if req.Len() == 0 {
				return ErrNoFiles
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

// SanitizeFileName strips leading "/" characters from name so the file
// cannot escape its batch directory through an absolute path. No other
// normalisation is applied; an empty result becomes "file".
func SanitizeFileName(name string) string {
	name = strings.TrimLeft(name, "/")
	if name == "" {
		return defaultFileName
	}
	return name
}
