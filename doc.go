// Package workday builds and configures REST clients for the Workday
// HR/finance platform: base-URL normalization, bearer-token
// authentication, and construction from either explicit configuration
// or an external configuration service.
//
// # Building from explicit configuration
//
//	c, err := workday.BuildWithConfig(workday.Config{
//		BaseURL: "https://acme.workday.com/",
//		Token:   "s3cr3t",
//	})
//	// c.BaseURL() == "https://acme.workday.com"
//
// # Building from a configuration service
//
// [BuildFromServices] resolves the connector configuration stored at
// [ConfigPath] and accepts both snake_case and camelCase key variants
// for the base URL and token:
//
//	svc, err := configsvc.NewHTTP("https://config.internal")
//	c, err := workday.BuildFromServices(ctx, slog.Default(), svc)
//
// # Executing requests
//
// The facade exposes a [RESTClient] whose composed transport carries
// the bearer token on every request:
//
//	rc := c.GetClient()
//	u := client.URL("https", "acme.workday.com", "/api/v1/workers")
//	req, err := rc.HTTP().Request(ctx, u, http.MethodGet)
//	err = rc.HTTP().Do(req, http.StatusOK, client.WithDestination(&out))
package workday
