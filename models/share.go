package models

// FileRecord describes one committed file of a batch.
type FileRecord struct {
	// Name is the sanitised filename (leading slashes removed).
	Name string `json:"name"`

	// Path is the repository path of the file: uploads/<batch-id>/<name>.
	Path string `json:"path"`

	// URL is the public raw-content URL of the committed file.
	URL string `json:"url"`
}

// ShareDescriptor summarises a batch. It is committed once at
// shares/<batch-id>.json and never modified afterwards.
type ShareDescriptor struct {
	// ID is the batch identifier.
	ID string `json:"id"`

	// CreatedAt is the UTC creation time in ISO-8601 with milliseconds,
	// e.g. "2026-02-14T09:30:00.000Z".
	CreatedAt string `json:"created_at"`

	// Files lists the committed files in upload order.
	Files []FileRecord `json:"files"`
}
