// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the remote repository API.
//
// The primary abstraction is [RepositoryAdapter], which decouples the upload
// service from the hosting provider. The package ships a GitHub REST
// implementation ([NewGitHubRepositoryAdapter]) built on resty.
//
// Every failure, whether a transport error or a non-2xx response, wraps
// [ErrRemoteService] and carries the remote message verbatim. No request is
// retried.
package adapter

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/repository_adapter_mock.go -package=mock

// RepositoryAdapter reads repository metadata and commits file content to
// a single, preconfigured repository.
type RepositoryAdapter interface {
	// GetDefaultBranch returns the repository's default branch as reported
	// by the remote API. The result may be empty if the remote reports none.
	GetDefaultBranch(ctx context.Context) (string, error)

	// PutFile creates or overwrites the file at path on branch with content,
	// committing it with message. Content is transferred base64-encoded as
	// the remote API requires.
	PutFile(ctx context.Context, path string, content []byte, message, branch string) error
}
