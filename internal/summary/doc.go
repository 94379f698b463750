// Package summary holds the structured report summary returned by the
// summarize backend and the display rules applied to it.
//
// Record mirrors the backend's "data" object. Envelope is the full response
// body. Text and Items turn record fields into display values, substituting
// the "None found." placeholder for empty content. Entries are always plain
// text; nothing in this package interprets markup.
package summary
