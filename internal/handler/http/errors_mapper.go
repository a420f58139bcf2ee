package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-repo-uploader/internal/service"
	"github.com/MKhiriev/go-repo-uploader/internal/utils"
	"github.com/MKhiriev/go-repo-uploader/models"
)

// Errors absent from errorStatusMap are reported as 500, remote API
// failures included.
var errorStatusMap = map[error]int{
	service.ErrNoFilesProvided: http.StatusBadRequest,
}

var errorMessageMap = map[error]string{
	service.ErrNoFilesProvided: `No files uploaded (form field "files")`,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	return err.Error()
}

func writeError(w http.ResponseWriter, err error) {
	utils.WriteJSON(w, models.ErrorResponse{Error: messageFromError(err)}, statusFromError(err))
}
