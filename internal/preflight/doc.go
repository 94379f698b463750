// Package preflight provides readiness checks for the summarization backend
// and the filesystem paths medsum writes to.
//
// The CLI "medsum status" command runs RunAll and renders each Result as a
// status line. Checks never return errors; failures are reported through
// Result.Detail so every check is shown even when an earlier one fails.
package preflight
