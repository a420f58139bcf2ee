package http

import "errors"

var (
	// ErrReadingMultipartForm is returned when a multipart body cannot be
	// parsed. Non-multipart requests are not an error: they carry no files.
	ErrReadingMultipartForm = errors.New("error reading multipart form")

	// ErrReadingFormFile is returned when an uploaded part cannot be read
	// into memory.
	ErrReadingFormFile = errors.New("error reading uploaded file")
)
