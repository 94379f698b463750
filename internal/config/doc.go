// Package config loads, normalizes, and validates medsum configuration data.
//
// It supplies defaults, expands user paths (including tilde shortcuts), reads
// TOML files, and honours the MEDSUM_SUMMARIZER_URL environment fallback. The
// Config type centralizes every knob the CLI and the web front end need.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
