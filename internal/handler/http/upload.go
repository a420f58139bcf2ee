package http

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"

	"github.com/MKhiriev/go-repo-uploader/internal/logger"
	"github.com/MKhiriev/go-repo-uploader/internal/utils"
	"github.com/MKhiriev/go-repo-uploader/internal/validators"
	"github.com/MKhiriev/go-repo-uploader/models"
)

// multipartMemoryLimit is the part size kept in memory while parsing; larger
// parts are spooled to temporary files. It is not an upload size limit.
const multipartMemoryLimit = 32 << 20

func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	uploadRequest, err := readUploadRequest(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.upload").Msg("error reading uploaded files")
		writeError(w, err)
		return
	}

	response, err := h.services.UploadService.Upload(r.Context(), uploadRequest)
	if err != nil {
		log.Err(err).Str("func", "*Handler.upload").Int("files", uploadRequest.Len()).Msg("upload failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

// readUploadRequest loads every part of the "files" form field into memory
// in the order received. A request that is not multipart yields no files.
func readUploadRequest(r *http.Request) (models.UploadRequest, error) {
	err := r.ParseMultipartForm(multipartMemoryLimit)
	if errors.Is(err, http.ErrNotMultipart) {
		return models.UploadRequest{}, nil
	}
	if err != nil {
		return models.UploadRequest{}, fmt.Errorf("%w: %w", ErrReadingMultipartForm, err)
	}
	defer r.MultipartForm.RemoveAll()

	headers := r.MultipartForm.File[validators.FieldFiles]
	files := make([]models.UploadedFile, 0, len(headers))
	for _, header := range headers {
		content, err := readFormFile(header)
		if err != nil {
			return models.UploadRequest{}, fmt.Errorf("%w %q: %w", ErrReadingFormFile, header.Filename, err)
		}
		files = append(files, models.UploadedFile{
			Name:    originalFileName(header),
			Content: content,
		})
	}

	return models.UploadRequest{Files: files}, nil
}

func readFormFile(header *multipart.FileHeader) ([]byte, error) {
	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return io.ReadAll(file)
}

// originalFileName returns the filename exactly as the client sent it.
// multipart.FileHeader.Filename keeps only the base name, so directory
// components are recovered from the Content-Disposition header.
func originalFileName(header *multipart.FileHeader) string {
	_, params, err := mime.ParseMediaType(header.Header.Get("Content-Disposition"))
	if err == nil && params["filename"] != "" {
		return params["filename"]
	}
	return header.Filename
}
