// Package page is the in-memory document behind the upload controller.
//
// Each element carries the identifier used by the HTML host so the terminal
// and web renderers read the same structure the controller writes.
package page

import (
	"medsum/internal/summary"
	"medsum/internal/upload"
)

// Panel is a show/hide section.
type Panel struct {
	ID     string
	Hidden bool
}

func (p *Panel) SetVisible(visible bool) { p.Hidden = !visible }

// Text is a plain-text slot.
type Text struct {
	ID    string
	Value string
}

func (t *Text) SetText(text string) { t.Value = text }

// List is an ordered list slot.
type List struct {
	ID    string
	Items []summary.Item
}

func (l *List) Clear() { l.Items = nil }

func (l *List) Append(item summary.Item) { l.Items = append(l.Items, item) }

// Input is the file picker.
type Input struct {
	ID       string
	Value    string
	Disabled bool
	Opens    int
}

// Open records a picker request.
func (i *Input) Open() { i.Opens++ }

// Clear drops the current selection.
func (i *Input) Clear() { i.Value = "" }

func (i *Input) SetEnabled(enabled bool) { i.Disabled = !enabled }

// Select records name as the picker's current selection.
func (i *Input) Select(name string) { i.Value = name }

// Zone is the drop target.
type Zone struct {
	ID       string
	Active   bool
	Disabled bool
}

func (z *Zone) SetActive(active bool) { z.Active = active }

func (z *Zone) SetEnabled(enabled bool) { z.Disabled = !enabled }

// Icons counts icon materialization passes.
type Icons struct {
	Passes int
}

func (i *Icons) Decorate() { i.Passes++ }

// Document holds every element of the upload page.
type Document struct {
	FileInput Input
	DropZone  Zone

	Hero        Panel
	Upload      Panel
	Loading     Panel
	Result      Panel
	ErrorBanner Panel
	ErrorText   Text

	GeneralSummary Text
	PatientDetails Text
	Notes          Text

	Diagnosis   List
	Tests       List
	Medications List

	Icons Icons
}

// New returns a document laid out like a freshly loaded page.
func New() *Document {
	return &Document{
		FileInput:      Input{ID: upload.IDFileInput},
		DropZone:       Zone{ID: upload.IDDropZone},
		Hero:           Panel{ID: upload.IDHero},
		Upload:         Panel{ID: upload.IDUpload},
		Loading:        Panel{ID: upload.IDLoading, Hidden: true},
		Result:         Panel{ID: upload.IDResult, Hidden: true},
		ErrorBanner:    Panel{ID: upload.IDErrorBanner, Hidden: true},
		ErrorText:      Text{ID: upload.IDErrorText},
		GeneralSummary: Text{ID: upload.IDGeneralSummary},
		PatientDetails: Text{ID: upload.IDPatientDetails},
		Notes:          Text{ID: upload.IDNotes},
		Diagnosis:      List{ID: upload.IDDiagnosis},
		Tests:          List{ID: upload.IDTests},
		Medications:    List{ID: upload.IDMedications},
	}
}

// Bindings exposes the document's elements to an upload controller.
func (d *Document) Bindings() upload.Bindings {
	return upload.Bindings{
		FileInput:      &d.FileInput,
		DropZone:       &d.DropZone,
		Hero:           &d.Hero,
		Upload:         &d.Upload,
		Loading:        &d.Loading,
		Result:         &d.Result,
		ErrorBanner:    &d.ErrorBanner,
		ErrorText:      &d.ErrorText,
		GeneralSummary: &d.GeneralSummary,
		PatientDetails: &d.PatientDetails,
		Notes:          &d.Notes,
		Diagnosis:      &d.Diagnosis,
		Tests:          &d.Tests,
		Medications:    &d.Medications,
		Icons:          &d.Icons,
	}
}

// Banner returns the visible error text, if any.
func (d *Document) Banner() (string, bool) {
	if d.ErrorBanner.Hidden {
		return "", false
	}
	return d.ErrorText.Value, true
}

// SectionView is one rendered summary slot.
type SectionView struct {
	ID    string
	Label string
	List  bool
	Text  string
	Items []summary.Item
}

// Sections returns the result slots in display order.
func (d *Document) Sections() []SectionView {
	views := make([]SectionView, 0, len(summary.Sections))
	for _, section := range summary.Sections {
		view := SectionView{Label: section.Label, List: section.List}
		switch section.Key {
		case "generalSummary":
			view.ID, view.Text = d.GeneralSummary.ID, d.GeneralSummary.Value
		case "patientDetails":
			view.ID, view.Text = d.PatientDetails.ID, d.PatientDetails.Value
		case "doctorsNotes":
			view.ID, view.Text = d.Notes.ID, d.Notes.Value
		case "diagnosis":
			view.ID, view.Items = d.Diagnosis.ID, d.Diagnosis.Items
		case "testResults":
			view.ID, view.Items = d.Tests.ID, d.Tests.Items
		case "medications":
			view.ID, view.Items = d.Medications.ID, d.Medications.Items
		default:
			continue
		}
		views = append(views, view)
	}
	return views
}
