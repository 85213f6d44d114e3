// Package config defines the format-agnostic rules model for the
// application, along with the Loader interface for reading rules from
// various sources.
//
// The `config.Model` is the single source of truth for the `extract` and
// `app` packages. Concrete implementations of the Loader interface, such as
// for HCL and TOML, are provided in separate packages.
package config
