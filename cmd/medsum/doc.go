// Package main hosts the medsum CLI entrypoint and command graph.
//
// The Cobra-based command tree drives the upload controller from the
// terminal (summarize), serves the browser upload page (serve), reports
// readiness (status), and scaffolds configuration (config). It centralizes
// configuration resolution and logging setup so subcommands stay small.
package main
