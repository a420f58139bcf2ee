package service

import "errors"

var (
	// ErrNoFilesProvided is returned when an upload request carries no
	// files. Its message is shown to the client as-is.
	ErrNoFilesProvided = errors.New(`no files uploaded (form field "files")`)
)
