package config

import "context"

// Loader is the interface for a format-specific rules loader.
type Loader interface {
	// Load reads rules from a given path and translates them into the
	// format-agnostic model. The returned model is already validated.
	Load(ctx context.Context, path string) (*Model, error)
}
