package config

import (
	"os"
	"strings"
)

// ClientConfig contains resolved API client settings.
type ClientConfig struct {
	APIKey      string
	BaseURL     string
	KeyInHeader bool
}

// ResolveClientConfig resolves client settings: command-line overrides win
// over the environment, which wins over the stored profile. An empty
// BaseURL means the production host.
func ResolveClientConfig(apiKeyOverride, baseURLOverride string) (ClientConfig, error) {
	var cfg ClientConfig

	if account, err := LoadAccount(); err == nil {
		cfg.APIKey = account.APIKey
		cfg.BaseURL = account.BaseURL
		cfg.KeyInHeader = account.KeyInHeader
	}

	if envURL := strings.TrimSpace(os.Getenv("SOLAREDGE_BASE_URL")); envURL != "" {
		cfg.BaseURL = strings.TrimSuffix(envURL, "/")
	}

	if apiKeyOverride != "" {
		cfg.APIKey = apiKeyOverride
	}
	if baseURLOverride != "" {
		cfg.BaseURL = strings.TrimSuffix(baseURLOverride, "/")
	}

	if cfg.APIKey == "" {
		return ClientConfig{}, ErrNotConfigured
	}

	return cfg, nil
}
