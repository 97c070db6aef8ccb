package config

import (
	"os"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"DROP_VERSION", "DROP_RELEASE_BASE", "DROP_ARTIFACT_PREFIX", "DROP_LANGUAGE", "DROP_NOTIFY_PROMPT", "DROP_LOG_LEVEL", "DROP_JSON_LOG"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Version != "0.0.0" {
		t.Errorf("expected default version 0.0.0, got %s", cfg.Version)
	}
	if cfg.NotifyPrompt != "every-attempt" {
		t.Errorf("expected default prompt policy every-attempt, got %s", cfg.NotifyPrompt)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("expected default log level warn, got %s", cfg.LogLevel)
	}
	if cfg.JSONLog {
		t.Error("JSON logging should be off by default")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DROP_VERSION", "1.2.3")
	t.Setenv("DROP_RELEASE_BASE", "https://mirror.example.com")
	t.Setenv("DROP_LANGUAGE", "zh-TW")
	t.Setenv("DROP_NOTIFY_PROMPT", "once")
	t.Setenv("DROP_JSON_LOG", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Version != "1.2.3" || cfg.ReleaseBase != "https://mirror.example.com" {
		t.Errorf("unexpected release config %+v", cfg)
	}
	if cfg.Language != "zh-TW" || cfg.NotifyPrompt != "once" || !cfg.JSONLog {
		t.Errorf("unexpected config %+v", cfg)
	}
}

func TestLoadError(t *testing.T) {
	t.Setenv("DROP_JSON_LOG", "not-a-bool")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestReleaseVersion(t *testing.T) {
	tests := []struct {
		configured string
		build      string
		expected   string
	}{
		{"1.2.3", "v9.9.9", "1.2.3"},
		{DefaultVersion, "v2.0.1", "2.0.1"},
		{DefaultVersion, "2.0.1", "2.0.1"},
		{DefaultVersion, "dev", DefaultVersion},
		{"", "", DefaultVersion},
	}

	for _, test := range tests {
		cfg := Config{Version: test.configured}
		if got := cfg.ReleaseVersion(test.build); got != test.expected {
			t.Errorf("ReleaseVersion(%q) with version %q = %q, expected %q",
				test.build, test.configured, got, test.expected)
		}
	}
}
