// Package config loads and validates the gallery service configuration.
//
// Configuration is merged from, in increasing precedence: built-in
// defaults, YAML config files, GALLERY_-prefixed environment variables,
// and CLI flags. The storage endpoint, credentials and public base URL
// are required; Load fails if any is missing, so the process never starts
// half-configured.
package config
