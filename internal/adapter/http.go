package adapter

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-repo-uploader/internal/config"
	"github.com/MKhiriev/go-repo-uploader/internal/logger"
	"github.com/MKhiriev/go-repo-uploader/internal/utils"
)

const (
	githubMediaType  = "application/vnd.github+json"
	githubAPIVersion = "2022-11-28"
	userAgent        = "go-repo-uploader"
)

// repositoryInfo is the subset of GET /repos/{owner}/{repo} the adapter uses.
type repositoryInfo struct {
	DefaultBranch string `json:"default_branch"`
}

// putFileRequest is the body of PUT /repos/{owner}/{repo}/contents/{path}.
type putFileRequest struct {
	Message string `json:"message"`
	Content string `json:"content"`
	Branch  string `json:"branch,omitempty"`
}

type githubRepositoryAdapter struct {
	client *utils.HTTPClient

	owner string
	repo  string

	logger *logger.Logger
}

// NewGitHubRepositoryAdapter constructs a GitHub REST implementation of
// [RepositoryAdapter] for the repository named in cfg. It normalises and
// validates cfg.APIURL, and configures the underlying HTTP client with the
// bearer token, GitHub media type and API version headers, and the optional
// request timeout.
//
// Returns an error if cfg.APIURL is empty or cannot be parsed as a URL.
func NewGitHubRepositoryAdapter(cfg config.Repository, logger *logger.Logger) (RepositoryAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.APIURL)
	if err != nil {
		return nil, fmt.Errorf("invalid repository api url: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, cfg.RequestTimeout)
	client.
		SetAuthToken(cfg.Token).
		SetHeader("Accept", githubMediaType).
		SetHeader("X-GitHub-Api-Version", githubAPIVersion).
		SetHeader("User-Agent", userAgent)

	return &githubRepositoryAdapter{
		client: client,
		owner:  cfg.Owner,
		repo:   cfg.Name,
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// GetDefaultBranch implements [RepositoryAdapter] via
// GET /repos/{owner}/{repo}.
func (a *githubRepositoryAdapter) GetDefaultBranch(ctx context.Context) (string, error) {
	var info repositoryInfo

	resp, err := a.client.R().
		SetContext(ctx).
		SetResult(&info).
		Get(a.repositoryPath())
	if err != nil {
		return "", fmt.Errorf("%w: get repository: %w", ErrRemoteService, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	a.logger.Debug().
		Str("owner", a.owner).
		Str("repo", a.repo).
		Str("default_branch", info.DefaultBranch).
		Msg("repository info received")

	return info.DefaultBranch, nil
}

// PutFile implements [RepositoryAdapter] via
// PUT /repos/{owner}/{repo}/contents/{path}.
func (a *githubRepositoryAdapter) PutFile(ctx context.Context, path string, content []byte, message, branch string) error {
	body := putFileRequest{
		Message: message,
		Content: base64.StdEncoding.EncodeToString(content),
		Branch:  branch,
	}

	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Put(a.contentsPath(path))
	if err != nil {
		return fmt.Errorf("%w: put %s: %w", ErrRemoteService, path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	a.logger.Debug().
		Str("path", path).
		Str("branch", branch).
		Int("size", len(content)).
		Int("status", resp.StatusCode()).
		Msg("file committed")

	return nil
}

func (a *githubRepositoryAdapter) repositoryPath() string {
	return "/repos/" + url.PathEscape(a.owner) + "/" + url.PathEscape(a.repo)
}

func (a *githubRepositoryAdapter) contentsPath(path string) string {
	return a.repositoryPath() + "/contents/" + utils.EscapePath(path)
}
