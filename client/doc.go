// Package client provides the configurable HTTP transport used by the
// Workday connector, built on [net/http].
//
// # Building a Client
//
// Use [Build] to create a [Client] with functional options:
//
//	c, err := client.Build(
//		client.WithBearerToken("s3cr3t"),
//		client.WithTimeout(10 * time.Second),
//		client.WithUserAgent("workday-connector/1.0"),
//	)
//
// # Making Requests
//
// Construct a [URL] and [Request], then execute with [Client.Do]:
//
//	u := client.URL("https", "acme.workday.com", "/api/v1/workers")
//	req, err := client.Request(ctx, u, http.MethodGet)
//	err = c.Do(req, http.StatusOK, client.WithDestination(&result))
//
// # Rate Limiting
//
// Outbound calls can be throttled with a token-bucket limiter:
//
//	c, err := client.Build(
//		client.WithBearerToken("s3cr3t"),
//		client.WithThrottle(10, 5),
//	)
//
// See the [github.com/connectorkit/workday/client/throttle] package for
// lower-level control.
package client
