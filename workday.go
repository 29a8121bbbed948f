package workday

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/connectorkit/workday/client"
	"github.com/connectorkit/workday/configsvc"
)

// ConfigPath is the logical path identifying the Workday connector's
// configuration in a configuration service.
const ConfigPath = "/services/connectors/workday/config"

// defaultAuthType labels token-style authentication in logs and error
// text when the stored auth block carries no authType. No construction
// logic branches on the auth type; only bearer-token auth is
// implemented.
const defaultAuthType = "TOKEN"

// Client is the single entry point exposing a ready-to-use RESTClient.
// It owns exactly one RESTClient for its lifetime.
type Client struct {
	rest *RESTClient
}

// BuildWithConfig builds a Client directly from the given config. It
// fails iff RESTClient construction fails, with the failure propagated
// as-is.
func BuildWithConfig(cfg Config, opts ...client.Option) (*Client, error) {
	rc, err := cfg.CreateClient(opts...)
	if err != nil {
		return nil, err
	}

	return &Client{rest: rc}, nil
}

// BuildFromServices builds a Client by resolving the connector
// configuration from svc at [ConfigPath]. Every failure branch logs a
// descriptive message and returns the error unchanged to the caller;
// no partial client is ever returned. The only blocking step is the
// configuration fetch itself, which honors ctx cancellation.
func BuildFromServices(ctx context.Context, log *slog.Logger, svc configsvc.Service, opts ...client.Option) (*Client, error) {
	log = log.With("build_id", uuid.NewString())

	cfg, err := svc.GetConfig(ctx, ConfigPath)
	if err != nil {
		log.Error("failed to get workday connector config", "error", err)
		return nil, fmt.Errorf("fetching workday connector config: %w", err)
	}

	if len(cfg) == 0 {
		return nil, logBuildFailure(log, newConfigError("", "failed to get Workday connector configuration"))
	}

	auth, _ := cfg["auth"].(map[string]any)
	if len(auth) == 0 {
		return nil, logBuildFailure(log, newConfigError("auth", "auth configuration not found"))
	}

	baseURL := firstNonEmpty(cfg, "base_url", "baseUrl")
	if baseURL == "" {
		return nil, logBuildFailure(log, newConfigError("base_url", "base URL not found"))
	}

	authType := firstNonEmpty(auth, "authType")
	if authType == "" {
		authType = defaultAuthType
	}

	token := firstNonEmpty(auth, "token", "accessToken", "access_token")
	if token == "" {
		return nil, logBuildFailure(log, newConfigError("token", fmt.Sprintf("token or access token required for %s auth type", authType)))
	}

	rc, err := NewRESTClient(baseURL, token, opts...)
	if err != nil {
		log.Error("failed to build workday client from services", "error", err)
		return nil, err
	}

	log.Info("workday client created", "auth_type", authType, "base_url", rc.BaseURL())

	return &Client{rest: rc}, nil
}

// GetClient returns the owned RESTClient.
func (c *Client) GetClient() *RESTClient {
	return c.rest
}

// BaseURL returns the owned RESTClient's normalized base URL.
func (c *Client) BaseURL() string {
	return c.rest.BaseURL()
}

func logBuildFailure(log *slog.Logger, cerr *ConfigError) error {
	log.Error("failed to build workday client from services", "error", cerr, "field", cerr.Field)
	return cerr
}

// firstNonEmpty checks the candidate keys in priority order and
// returns the first non-empty string value found.
func firstNonEmpty(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := m[k].(string); ok && s != "" {
			return s
		}
	}

	return ""
}
