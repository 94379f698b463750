// Package webui serves the browser upload page.
//
// Every upload request gets a fresh page.Document and upload.Controller, so
// the server holds no per-visitor state. The document is rendered with
// html/template after the submission settles, which keeps summary entries as
// escaped plain text.
package webui
