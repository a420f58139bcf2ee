// Package http implements the HTTP transport layer of the uploader.
//
// It wires the chi router, the upload, health and version handlers, and the
// middleware chain (panic recovery, CORS, request tracing, access logging,
// response compression) placed in front of the service layer.
package http
