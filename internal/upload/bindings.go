package upload

import (
	"fmt"
	"strings"

	"medsum/internal/summary"
)

// Panel is a section of the page that can be shown or hidden.
type Panel interface {
	SetVisible(visible bool)
}

// TextSlot displays a single plain-text value.
type TextSlot interface {
	SetText(text string)
}

// ListSlot displays an ordered list of plain-text items.
type ListSlot interface {
	Clear()
	Append(item summary.Item)
}

// FilePicker is the native file selection control.
type FilePicker interface {
	Open()
	Clear()
	SetEnabled(enabled bool)
}

// DropZone is the drag-and-drop target.
type DropZone interface {
	SetActive(active bool)
	SetEnabled(enabled bool)
}

// Decorator materializes icons over the current markup. It only affects
// elements present when it runs.
type Decorator interface {
	Decorate()
}

// Element identifiers shared by every host.
const (
	IDFileInput      = "pdfFile"
	IDDropZone       = "dropArea"
	IDHero           = "heroSection"
	IDUpload         = "uploadSection"
	IDLoading        = "loadingSection"
	IDResult         = "resultSection"
	IDErrorBanner    = "errorMessage"
	IDErrorText      = "errorText"
	IDResetButton    = "resetBtn"
	IDGeneralSummary = "resGeneralSummary"
	IDPatientDetails = "resPatientDetails"
	IDNotes          = "resNotes"
	IDDiagnosis      = "resDiagnosis"
	IDTests          = "resTests"
	IDMedications    = "resMeds"
	IDIcons          = "icons"
)

// Bindings are the page elements the controller drives. Every field is
// required.
type Bindings struct {
	FileInput FilePicker
	DropZone  DropZone

	Hero        Panel
	Upload      Panel
	Loading     Panel
	Result      Panel
	ErrorBanner Panel
	ErrorText   TextSlot

	GeneralSummary TextSlot
	PatientDetails TextSlot
	Notes          TextSlot

	Diagnosis   ListSlot
	Tests       ListSlot
	Medications ListSlot

	Icons Decorator
}

// Validate reports every missing binding by element id.
func (b Bindings) Validate() error {
	checks := []struct {
		id      string
		present bool
	}{
		{IDFileInput, b.FileInput != nil},
		{IDDropZone, b.DropZone != nil},
		{IDHero, b.Hero != nil},
		{IDUpload, b.Upload != nil},
		{IDLoading, b.Loading != nil},
		{IDResult, b.Result != nil},
		{IDErrorBanner, b.ErrorBanner != nil},
		{IDErrorText, b.ErrorText != nil},
		{IDGeneralSummary, b.GeneralSummary != nil},
		{IDPatientDetails, b.PatientDetails != nil},
		{IDNotes, b.Notes != nil},
		{IDDiagnosis, b.Diagnosis != nil},
		{IDTests, b.Tests != nil},
		{IDMedications, b.Medications != nil},
		{IDIcons, b.Icons != nil},
	}
	var missing []string
	for _, check := range checks {
		if !check.present {
			missing = append(missing, check.id)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingBindings, strings.Join(missing, ", "))
	}
	return nil
}
