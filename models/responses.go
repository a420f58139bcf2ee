package models

// UploadResponse is the body returned by POST /upload on success.
type UploadResponse struct {
	// ID is the batch identifier.
	ID string `json:"id"`

	// PagesURL is the public viewing page for the batch.
	PagesURL string `json:"pagesURL"`

	// Share is the descriptor that was committed for the batch.
	Share ShareDescriptor `json:"share"`
}

// ErrorResponse is the body returned for any failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}
