// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

const (
	// DefaultPort is the TCP port used when PORT is not provided.
	DefaultPort = "3000"

	// DefaultAPIURL is the base URL of the public GitHub REST API.
	DefaultAPIURL = "https://api.github.com"

	// DefaultRawURL is the host serving raw repository file content.
	DefaultRawURL = "https://raw.githubusercontent.com"

	// DefaultLogLevel is the zerolog level used when none is configured.
	DefaultLogLevel = "info"
)

// StructuredConfig is the top-level configuration container for the
// uploader. It is populated by merging defaults, environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Repository identifies the target repository and how to reach the
	// remote API that hosts it.
	Repository Repository

	// Server holds inbound HTTP settings.
	Server Server

	// App holds application-level settings such as version and log level.
	App App `envPrefix:"APP_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Repository holds the coordinates and credentials of the repository that
// receives uploaded files.
type Repository struct {
	// Owner is the user or organisation owning the repository.
	// Env: REPO_OWNER
	Owner string `env:"REPO_OWNER"`

	// Name is the repository name.
	// Env: REPO_NAME
	Name string `env:"REPO_NAME"`

	// Token is an access token with write permission on the repository.
	// Env: GITHUB_TOKEN
	Token string `env:"GITHUB_TOKEN"`

	// APIURL is the base URL of the REST API (e.g. "https://api.github.com").
	// Env: GITHUB_API_URL
	APIURL string `env:"GITHUB_API_URL"`

	// RawURL is the host used to build raw file content links.
	// Env: GITHUB_RAW_URL
	RawURL string `env:"GITHUB_RAW_URL"`

	// RequestTimeout bounds every remote API call. Zero means no timeout
	// beyond the transport defaults.
	// Env: GITHUB_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"GITHUB_REQUEST_TIMEOUT"`
}

// Server holds inbound HTTP settings.
type Server struct {
	// Port is the TCP port the HTTP server binds to on all interfaces.
	// Env: PORT
	Port string `env:"PORT"`

	// AllowedOrigins lists the origins allowed to call the API from a
	// browser. Defaults to the repository owner's pages domain.
	// Env: CORS_ALLOWED_ORIGINS (comma-separated)
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
}

// App holds application-level configuration values.
type App struct {
	// Version overrides the build version reported by GET /version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Address returns the listen address for the HTTP server.
func (s Server) Address() string {
	return ":" + s.Port
}

// Redacted returns a copy of cfg safe for logging: the access token is
// masked.
func (cfg StructuredConfig) Redacted() StructuredConfig {
	if cfg.Repository.Token != "" {
		cfg.Repository.Token = "***"
	}
	cfg.Server.AllowedOrigins = append([]string(nil), cfg.Server.AllowedOrigins...)
	return cfg
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources in the following priority order (last source wins
// for non-zero fields):
//  1. Defaults
//  2. Environment variables, after loading the .env file named by ENV_FILE
//  3. Command-line flags parsed from args
//  4. JSON file (path resolved from sources 2 and 3)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Repository: Repository{
			APIURL: DefaultAPIURL,
			RawURL: DefaultRawURL,
		},
		Server: Server{
			Port: DefaultPort,
		},
		App: App{
			LogLevel: DefaultLogLevel,
		},
	}
}
