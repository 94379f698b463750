// Package upload implements the controller behind the report upload page.
//
// A Controller owns the page's display state (see package phase) and drives
// a set of typed element bindings supplied by the host: the file picker,
// the drop zone, the four panels, the error banner, the summary text slots
// and lists, and the icon decorator. Hosts forward user input (picker
// selection, drag and drop, reset) to the controller; the controller
// validates the file, switches to the loading panel, posts the document
// through a Summarizer, and renders either the summary or an error banner.
//
// Triggers are disabled while a submission is in flight and a second
// submission is refused with ErrBusy, so responses can never race.
package upload
