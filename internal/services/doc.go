// Package services defines shared utilities consumed by the upload controller
// and the summarizer integration.
//
// Key responsibilities:
//   - Context helpers that stamp submission correlation identifiers and
//     component names for logging.
//   - Structured error markers plus the Wrap helper that sort failures into
//     the three user-facing classes (invalid input, server, transport).
//
// Use these helpers when wiring new integrations so error surfacing and
// observability stay uniform across hosts.
package services
