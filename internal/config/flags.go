package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// ParseFlags parses the command-line flags in args.
//
// Flags:
//
//	-owner repository owner
//	-repo repository name
//	-token access token
//	-p/-port listening port
//	-api-url REST API base URL
//	-raw-url raw content host
//	-request-timeout remote request timeout (e.g., "30s", "1m")
//	-log-level log level
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	var owner, repo, token string
	var port string
	var apiURL, rawURL string
	var requestTimeout time.Duration
	var logLevel string
	var jsonConfigPath string

	fs := flag.NewFlagSet("uploader", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&owner, "owner", "", "Repository owner")
	fs.StringVar(&repo, "repo", "", "Repository name")
	fs.StringVar(&token, "token", "", "Access token")
	fs.StringVar(&port, "p", "", "Listening port")
	fs.StringVar(&port, "port", "", "Listening port (alias)")
	fs.StringVar(&apiURL, "api-url", "", "REST API base URL")
	fs.StringVar(&rawURL, "raw-url", "", "Raw content host")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Remote request timeout (e.g., 30s, 1m)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Repository: Repository{
			Owner:          owner,
			Name:           repo,
			Token:          token,
			APIURL:         apiURL,
			RawURL:         rawURL,
			RequestTimeout: requestTimeout,
		},
		Server: Server{
			Port: port,
		},
		App: App{
			LogLevel: logLevel,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
