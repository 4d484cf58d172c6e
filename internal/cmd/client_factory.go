package cmd

import (
	"fmt"
	"net/http"
	"time"

	"github.com/solarwatch/solaredge-cli/internal/api"
	"github.com/solarwatch/solaredge-cli/internal/config"
)

type clientFactory struct {
	timeout   time.Duration
	userAgent string
}

func newClientFactory() *clientFactory {
	return &clientFactory{
		timeout:   flags.Timeout,
		userAgent: fmt.Sprintf("solaredge-cli/%s", version),
	}
}

func (f *clientFactory) client() (*api.Client, error) {
	cfg, err := config.ResolveClientConfig(flags.APIKey, flags.BaseURL)
	if err != nil {
		return nil, err
	}
	return f.newClient(cfg), nil
}

func (f *clientFactory) newClient(cfg config.ClientConfig) *api.Client {
	client := api.New(cfg.APIKey)
	if cfg.BaseURL != "" {
		client.BaseURL = cfg.BaseURL
	}
	if cfg.KeyInHeader {
		client.KeyPlacement = api.KeyInHeader
	}
	if f.timeout > 0 {
		client.HTTP = &http.Client{Timeout: f.timeout}
	}
	if f.userAgent != "" {
		client.UserAgent = f.userAgent
	}
	return client
}
