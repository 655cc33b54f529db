// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete tutor-tui configuration.
type Config struct {
	// API configuration for the QA backend
	API APIConfig `toml:"api"`

	// Webhook configuration for the document-ingestion endpoint
	Webhook WebhookConfig `toml:"webhook"`

	// Upload validation limits
	Upload UploadConfig `toml:"upload"`

	// UI configuration
	UI UIConfig `toml:"ui"`
}

// APIConfig contains the QA service endpoint configuration.
type APIConfig struct {
	// BaseURL is the backend base URL; the client appends /api itself.
	// Uses an explicit IPv4 address instead of localhost to avoid IPv6
	// resolution issues on Windows.
	BaseURL string `toml:"base_url"`
	// TimeoutSecs is the request timeout for ask calls. Answer generation
	// is LLM-bound, so the default is deliberately long (120s).
	TimeoutSecs int `toml:"timeout_secs"`
}

// WebhookConfig contains the ingestion webhook endpoint configuration.
type WebhookConfig struct {
	// URL is the full webhook URL including path.
	URL string `toml:"url"`
	// TimeoutSecs is the upload timeout (default: 60s). The pipeline
	// processes asynchronously, so this only covers the transfer.
	TimeoutSecs int `toml:"timeout_secs"`
}

// UploadConfig contains client-side upload validation limits.
type UploadConfig struct {
	// MaxSizeMB is the maximum upload size in megabytes.
	MaxSizeMB int64 `toml:"max_size_mb"`
	// AllowedExtensions lists acceptable file extensions (lowercase, with dot).
	AllowedExtensions []string `toml:"allowed_extensions"`
}

// UIConfig contains presentation settings.
type UIConfig struct {
	// MarkdownWidth is the word-wrap width for rendered answers.
	MarkdownWidth int `toml:"markdown_width"`
	// ShowTimestamps toggles per-message timestamps in the chat view.
	ShowTimestamps bool `toml:"show_timestamps"`
	// UseRAGDefault is the initial state of the retrieval toggle.
	UseRAGDefault bool `toml:"use_rag_default"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:     "http://127.0.0.1:8000",
			TimeoutSecs: 120,
		},
		Webhook: WebhookConfig{
			URL:         "http://127.0.0.1:5678/webhook/upload_document",
			TimeoutSecs: 60,
		},
		Upload: UploadConfig{
			MaxSizeMB:         100,
			AllowedExtensions: []string{".pdf", ".png", ".jpg", ".jpeg"},
		},
		UI: UIConfig{
			MarkdownWidth:  80,
			ShowTimestamps: true,
			UseRAGDefault:  true,
		},
	}
}

// DefaultPath returns the default config file location (~/.tutor/config.toml).
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tutor", "config.toml")
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads configuration from path, layering it over the defaults and then
// applying environment overrides. A missing file is not an error; the
// defaults are used.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("config: parse %s: %w", path, err)
			}
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides applies TUTOR_* environment variables over the config.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("TUTOR_API_URL"); v != "" {
		c.API.BaseURL = v
	}
	if v := os.Getenv("TUTOR_WEBHOOK_URL"); v != "" {
		c.Webhook.URL = v
	}
}

// =============================================================================
// VALIDATION
// =============================================================================

// Validate checks the configuration for inconsistencies and fills safe
// values for anything a config file zeroed out.
func (c *Config) Validate() error {
	if _, err := url.Parse(c.API.BaseURL); err != nil {
		return fmt.Errorf("config: invalid api.base_url %q: %w", c.API.BaseURL, err)
	}
	if _, err := url.Parse(c.Webhook.URL); err != nil {
		return fmt.Errorf("config: invalid webhook.url %q: %w", c.Webhook.URL, err)
	}

	if c.API.TimeoutSecs <= 0 {
		c.API.TimeoutSecs = 120
	}
	if c.Webhook.TimeoutSecs <= 0 {
		c.Webhook.TimeoutSecs = 60
	}
	if c.Upload.MaxSizeMB <= 0 {
		c.Upload.MaxSizeMB = 100
	}
	if len(c.Upload.AllowedExtensions) == 0 {
		c.Upload.AllowedExtensions = []string{".pdf", ".png", ".jpg", ".jpeg"}
	}
	if c.UI.MarkdownWidth <= 0 {
		c.UI.MarkdownWidth = 80
	}
	return nil
}

// APITimeout returns the ask timeout as a duration.
func (c *Config) APITimeout() time.Duration {
	return time.Duration(c.API.TimeoutSecs) * time.Second
}

// WebhookTimeout returns the upload timeout as a duration.
func (c *Config) WebhookTimeout() time.Duration {
	return time.Duration(c.Webhook.TimeoutSecs) * time.Second
}

// MaxUploadBytes returns the upload size limit in bytes.
func (c *Config) MaxUploadBytes() int64 {
	return c.Upload.MaxSizeMB * 1024 * 1024
}
