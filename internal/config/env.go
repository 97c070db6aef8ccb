package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// DefaultVersion is the release used when none is configured.
const DefaultVersion = "0.0.0"

// Config is the process configuration read from the environment.
type Config struct {
	// Version selects the release all download links point at.
	Version        string `env:"DROP_VERSION" envDefault:"0.0.0"`
	ReleaseBase    string `env:"DROP_RELEASE_BASE"`
	ArtifactPrefix string `env:"DROP_ARTIFACT_PREFIX"`
	// Language overrides the persisted language preference when set.
	Language     string `env:"DROP_LANGUAGE"`
	NotifyPrompt string `env:"DROP_NOTIFY_PROMPT" envDefault:"every-attempt"`
	LogLevel     string `env:"DROP_LOG_LEVEL" envDefault:"warn"`
	JSONLog      bool   `env:"DROP_JSON_LOG"`
}

// Load reads Config from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseEnv loads environment variables into target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// ReleaseVersion returns the release download links point at. An explicit
// DROP_VERSION wins; otherwise a build version injected with ldflags is used
// ("v1.2.3" and "1.2.3" are equivalent).
func (c Config) ReleaseVersion(buildVersion string) string {
	if c.Version != "" && c.Version != DefaultVersion {
		return c.Version
	}
	buildVersion = strings.TrimPrefix(strings.TrimSpace(buildVersion), "v")
	if buildVersion == "" || buildVersion == "dev" {
		return DefaultVersion
	}
	return buildVersion
}
