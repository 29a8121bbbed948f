package workday

import (
	"fmt"
	"slices"
	"strings"

	"github.com/connectorkit/workday/client"
)

// RESTClient is a Workday REST client bound to a base URL and bearer
// token. It composes the transport-level [client.Client] rather than
// extending it, so construction validation stays independent of the
// transport's own option handling.
type RESTClient struct {
	baseURL string
	token   string
	http    *client.Client
}

// NewRESTClient validates the base URL and token, normalizes the base
// URL by stripping any trailing slash, and composes a transport client
// configured for bearer-scheme authentication. Extra options (timeout,
// user agent, throttle) are forwarded to the transport.
func NewRESTClient(baseURL, token string, opts ...client.Option) (*RESTClient, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("%w: workday base url must not be empty", ErrInvalidArgument)
	}
	if token == "" {
		return nil, fmt.Errorf("%w: workday token must not be empty", ErrInvalidArgument)
	}

	opts = append(slices.Clone(opts), client.WithBearerToken(token))
	c, err := client.Build(opts...)
	if err != nil {
		return nil, fmt.Errorf("building transport client: %w", err)
	}

	return &RESTClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    c,
	}, nil
}

// BaseURL returns the normalized base URL.
func (rc *RESTClient) BaseURL() string {
	return rc.baseURL
}

// Token returns the access token the client authenticates with.
func (rc *RESTClient) Token() string {
	return rc.token
}

// HTTP exposes the composed transport client for executing requests
// against the Workday API.
func (rc *RESTClient) HTTP() *client.Client {
	return rc.http
}
