// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoHandlersProvided = errors.New("no http handler provided")
	errListen             = errors.New("error listening")
	errShutdown           = errors.New("error shutting down")
)
