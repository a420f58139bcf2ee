// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// ErrRemoteService is wrapped by every error returned from a
// [RepositoryAdapter]: network failures and non-2xx responses alike.
var ErrRemoteService = errors.New("remote service error")

// Status sentinels further describe a failed response. They are always
// wrapped together with [ErrRemoteService] and exist for logging; callers
// are not expected to branch on them.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrValidationFailed    = errors.New("validation failed")
	ErrRateLimited         = errors.New("rate limited")
	ErrInternalServerError = errors.New("remote internal error")
	ErrBadGateway          = errors.New("bad gateway")
)
