// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-repo-uploader/internal/utils"
	"github.com/MKhiriev/go-repo-uploader/models"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns a handler meant for [chi.Mux.MethodNotAllowed].
//
// A path that is registered only for other methods is answered with
// 404 and a JSON error body instead of chi's default 405, so
// "POST /" and "GET /upload" look the same as an unknown path.
// Requests whose method is registered for the exact path are passed back
// to router.
//
// Only exact patterns are compared; parameterised routes are not expanded.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if !routeHandlesMethod(router, r.URL.Path, r.Method) {
			utils.WriteJSON(w, models.ErrorResponse{Error: http.StatusText(http.StatusNotFound)}, http.StatusNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}

func routeHandlesMethod(router chi.Routes, path, method string) bool {
	for _, route := range router.Routes() {
		if route.Pattern != path {
			continue
		}
		_, ok := route.Handlers[method]
		return ok
	}
	return false
}
