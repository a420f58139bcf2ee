package models

// UploadedFile is one file received in a multipart upload, held fully in
// memory for the duration of the request.
type UploadedFile struct {
	// Name is the filename as sent by the client, before sanitisation.
	Name string

	// Content holds the raw file bytes.
	Content []byte
}

// UploadRequest is the ordered set of files received in one HTTP request.
// The order of Files is the order in which they are committed and listed
// in the share descriptor.
type UploadRequest struct {
	Files []UploadedFile
}

// Len returns the number of files in the request.
func (r UploadRequest) Len() int {
	return len(r.Files)
}
