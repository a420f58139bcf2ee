// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errServicesAreNotInitialized is returned by NewHandlers when the service
// layer is missing, which would otherwise surface as a nil dereference on
// the first request.
var errServicesAreNotInitialized = errors.New("services are not initialized")
