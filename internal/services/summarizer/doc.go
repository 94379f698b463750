// Package summarizer provides the HTTP client for the report summarize
// backend.
//
// # Request
//
// Client.Summarize posts a multipart form with a single part named "file"
// to the configured endpoint (default "/summarize") and decodes the JSON
// envelope {data, error}.
//
// # Failure Handling
//
// The body is decoded before the status is inspected, so a malformed body
// surfaces as a parse error even on non-2xx responses. A non-2xx status with
// a readable body yields *StatusError carrying the server's message (or
// "Server error"). A 2xx response without data yields ErrMissingData.
//
// There is no retry: every failure is terminal for the attempt and recovery
// is left to the user. The HTTP timeout is configurable; zero means none.
//
// # Entry Points
//
// NewClient: construct client from Config.
// Client.Summarize: upload one document and return its summary record.
// Client.Ping: verify the backend is reachable.
package summarizer
