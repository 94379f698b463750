// Package textutil normalizes server-provided text before it is displayed.
//
// Summary entries arrive from a remote backend and are shown verbatim in a
// terminal or an HTML page. PlainText composes them to NFC and drops control
// characters and ANSI escape sequences so an entry can never move the cursor,
// recolor the terminal, or smuggle formatting into the output.
package textutil
