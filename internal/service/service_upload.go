package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-repo-uploader/internal/adapter"
	"github.com/MKhiriev/go-repo-uploader/internal/config"
	"github.com/MKhiriev/go-repo-uploader/internal/logger"
	"github.com/MKhiriev/go-repo-uploader/internal/utils"
	"github.com/MKhiriev/go-repo-uploader/internal/validators"
	"github.com/MKhiriev/go-repo-uploader/models"
)

const (
	// fallbackBranch is committed to when the repository reports no default branch.
	fallbackBranch = "main"

	uploadsDir = "uploads"
	sharesDir  = "shares"

	createdAtLayout = "2006-01-02T15:04:05.000Z"
)

type uploadService struct {
	repository  adapter.RepositoryAdapter
	idGenerator IDGenerator
	now         Clock

	owner  string
	repo   string
	rawURL string

	logger *logger.Logger
}

func NewUploadService(repository adapter.RepositoryAdapter, cfg config.Repository, logger *logger.Logger) UploadService {
	rawURL := cfg.RawURL
	if rawURL == "" {
		rawURL = config.DefaultRawURL
	}

	return &uploadService{
		repository:  repository,
		idGenerator: utils.NewBatchIDGenerator(),
		now:         time.Now,
		owner:       cfg.Owner,
		repo:        cfg.Name,
		rawURL:      strings.TrimRight(rawURL, "/"),
		logger:      logger,
	}
}

func (s *uploadService) Upload(ctx context.Context, req models.UploadRequest) (models.UploadResponse, error) {
	batchID := s.idGenerator.Generate()
	log := s.logger.With().Str("batch_id", batchID).Int("files", req.Len()).Logger()

	branch, err := s.repository.GetDefaultBranch(ctx)
	if err != nil {
		log.Err(err).Msg("resolving default branch failed")
		return models.UploadResponse{}, fmt.Errorf("error resolving default branch: %w", err)
	}
	if branch == "" {
		branch = fallbackBranch
	}
	rawBase := s.rawBaseURL(branch)

	records := make([]models.FileRecord, 0, req.Len())
	for _, file := range req.Files {
		name := validators.SanitizeFileName(file.Name)
		path := uploadPath(batchID, name)

		if err = s.repository.PutFile(ctx, path, file.Content, "Add uploaded file "+path, branch); err != nil {
			log.Err(err).
				Str("path", path).
				Strs("committed", committedPaths(records)).
				Msg("committing file failed, batch aborted")
			return models.UploadResponse{}, fmt.Errorf("error committing %s: %w", path, err)
		}
		log.Debug().Str("path", path).Int("size", len(file.Content)).Msg("file committed")

		records = append(records, models.FileRecord{
			Name: name,
			Path: path,
			URL:  rawBase + uploadsDir + "/" + batchID + "/" + utils.EncodeURIComponent(name),
		})
	}

	share := models.ShareDescriptor{
		ID:        batchID,
		CreatedAt: s.now().UTC().Format(createdAtLayout),
		Files:     records,
	}

	content, err := encodeDescriptor(share)
	if err != nil {
		return models.UploadResponse{}, fmt.Errorf("error encoding share descriptor: %w", err)
	}

	descriptorPath := sharePath(batchID)
	if err = s.repository.PutFile(ctx, descriptorPath, content, "Add share descriptor "+descriptorPath, branch); err != nil {
		log.Err(err).
			Str("path", descriptorPath).
			Strs("committed", committedPaths(records)).
			Msg("committing share descriptor failed")
		return models.UploadResponse{}, fmt.Errorf("error committing %s: %w", descriptorPath, err)
	}

	log.Info().Str("branch", branch).Msg("batch uploaded")

	return models.UploadResponse{
		ID:       batchID,
		PagesURL: s.pagesURL(batchID),
		Share:    share,
	}, nil
}

// rawBaseURL returns "<raw host>/<owner>/<repo>/<branch>/".
func (s *uploadService) rawBaseURL(branch string) string {
	return fmt.Sprintf("%s/%s/%s/%s/", s.rawURL, s.owner, s.repo, branch)
}

func (s *uploadService) pagesURL(batchID string) string {
	return fmt.Sprintf("https://%s.github.io/%s/view.html?share=%s", s.owner, s.repo, batchID)
}

func uploadPath(batchID, name string) string {
	return uploadsDir + "/" + batchID + "/" + name
}

func sharePath(batchID string) string {
	return sharesDir + "/" + batchID + ".json"
}

func committedPaths(records []models.FileRecord) []string {
	paths := make([]string, 0, len(records))
	for _, record := range records {
		paths = append(paths, record.Path)
	}
	return paths
}

// encodeDescriptor renders the descriptor with two-space indentation and
// without HTML escaping.
func encodeDescriptor(share models.ShareDescriptor) ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(share); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
