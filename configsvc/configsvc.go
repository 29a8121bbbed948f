// Package configsvc defines the configuration-service contract used to
// resolve connector settings at build time, along with an HTTP-backed
// implementation and an in-memory one for tests and local development.
package configsvc

import "context"

// Service resolves externally stored connector configuration.
type Service interface {
	// GetConfig returns the configuration stored at path, or nil when
	// no configuration exists there. Absence is not an error.
	GetConfig(ctx context.Context, path string) (map[string]any, error)
}

// Static is an in-memory Service backed by a map keyed by path.
type Static map[string]map[string]any

// GetConfig returns the configuration stored under path, or nil when
// the path is unknown.
func (s Static) GetConfig(_ context.Context, path string) (map[string]any, error) {
	return s[path], nil
}
