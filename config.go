package workday

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"github.com/connectorkit/workday/client"
)

// Config holds the settings needed to reach a Workday instance. It is
// a pure value object; construction failures surface from
// [Config.CreateClient].
type Config struct {
	BaseURL string `json:"base_url" envconfig:"WORKDAY_BASE_URL" validate:"required,url"`
	Token   string `json:"token" envconfig:"WORKDAY_TOKEN" validate:"required"`
}

// FromEnv loads a Config from the WORKDAY_BASE_URL and WORKDAY_TOKEN
// environment variables.
func FromEnv() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing workday config from env: %w", err)
	}

	return cfg, nil
}

// CreateClient constructs a RESTClient from the config's own fields,
// propagating any construction failure.
func (c Config) CreateClient(opts ...client.Option) (*RESTClient, error) {
	return NewRESTClient(c.BaseURL, c.Token, opts...)
}

// Validate checks the config against its declared field constraints.
func (c Config) Validate() error {
	return Validate(c)
}

// ToMap returns a plain mapping of the config's fields for
// diagnostics. The token value is redacted.
func (c Config) ToMap() map[string]any {
	token := c.Token
	if token != "" {
		token = "[REDACTED]"
	}

	return map[string]any{
		"base_url": c.BaseURL,
		"token":    token,
	}
}
