// Package utils provides general-purpose helper utilities used across the
// uploader: HTTP response writing, HTTP client initialization, batch id
// generation, and URL escaping.
package utils

import (
	"net/url"
	"strings"
)

// componentUnescaper restores the characters that browsers' component
// encoding leaves as-is but url.QueryEscape escapes.
var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EncodeURIComponent escapes s so it can be used as a single URL path
// segment. Unlike url.PathEscape it also escapes "/", and unlike
// url.QueryEscape it encodes spaces as "%20".
func EncodeURIComponent(s string) string {
	return componentUnescaper.Replace(url.QueryEscape(s))
}

// EscapePath escapes every "/"-separated segment of p, keeping the
// separators.
func EscapePath(p string) string {
	segments := strings.Split(p, "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}
	return strings.Join(segments, "/")
}
