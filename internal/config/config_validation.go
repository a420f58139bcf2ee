// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] is usable at
// startup. All missing repository settings are reported together so the
// operator can fix them in one go.
func (cfg *StructuredConfig) validate() error {
	var missing []string
	if strings.TrimSpace(cfg.Repository.Owner) == "" {
		missing = append(missing, "REPO_OWNER")
	}
	if strings.TrimSpace(cfg.Repository.Name) == "" {
		missing = append(missing, "REPO_NAME")
	}
	if strings.TrimSpace(cfg.Repository.Token) == "" {
		missing = append(missing, "GITHUB_TOKEN")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingRequiredConfig, strings.Join(missing, ", "))
	}

	port, err := strconv.Atoi(cfg.Server.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("%w: %q", ErrInvalidPort, cfg.Server.Port)
	}

	if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, cfg.App.LogLevel)
	}

	return nil
}

// applyDerivedDefaults fills settings whose default depends on other
// settings.
func (cfg *StructuredConfig) applyDerivedDefaults() {
	if len(cfg.Server.AllowedOrigins) == 0 && cfg.Repository.Owner != "" {
		cfg.Server.AllowedOrigins = []string{fmt.Sprintf("https://%s.github.io", cfg.Repository.Owner)}
	}
}
