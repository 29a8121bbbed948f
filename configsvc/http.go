package configsvc

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/connectorkit/workday/client"
)

// HTTP fetches connector configuration from a configuration server
// that exposes stored settings as JSON documents keyed by path.
type HTTP struct {
	base *url.URL
	c    *client.Client
}

// NewHTTP builds an HTTP configuration service rooted at baseURL.
// Options are forwarded to the underlying transport client.
func NewHTTP(baseURL string, opts ...client.Option) (*HTTP, error) {
	if baseURL == "" {
		return nil, errors.New("configsvc base url must not be empty")
	}

	base, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parsing configsvc base url: %w", err)
	}

	c, err := client.Build(opts...)
	if err != nil {
		return nil, fmt.Errorf("building configsvc client: %w", err)
	}

	return &HTTP{base: base, c: c}, nil
}

// GetConfig fetches the configuration document at path. A 404 from the
// server means no configuration exists there and returns nil, nil.
func (h *HTTP) GetConfig(ctx context.Context, path string) (map[string]any, error) {
	req, err := h.c.Request(ctx, h.base.JoinPath(path), http.MethodGet)
	if err != nil {
		return nil, fmt.Errorf("building config request: %w", err)
	}

	var cfg map[string]any
	if err := h.c.Do(req, http.StatusOK, client.WithDestination(&cfg)); err != nil {
		var statusErr *client.UnexpectedStatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("fetching config at %s: %w", path, err)
	}

	return cfg, nil
}
