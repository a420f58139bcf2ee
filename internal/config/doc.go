// Package config provides configuration loading, merging, and validation
// facilities for the uploader service.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables (optionally seeded from a .env file)
//  3. Command-line flags
//  4. JSON config file
//
// The main entry point is [GetStructuredConfig]. The returned value is meant
// to be treated as immutable and passed by value into the components that
// need it.
package config
