package summary

// Placeholder is shown in place of empty fields and lists.
const Placeholder = "None found."

// Item is one rendered list entry. Placeholder items are styled in italics.
type Item struct {
	Text        string
	Placeholder bool
}

// Text returns value, or Placeholder when value is empty.
func Text(value string) string {
	if value == "" {
		return Placeholder
	}
	return value
}

// Items returns the list entries to display for values, in order. An empty
// list yields a single placeholder item.
func Items(values []string) []Item {
	if len(values) == 0 {
		return []Item{{Text: Placeholder, Placeholder: true}}
	}
	items := make([]Item, 0, len(values))
	for _, value := range values {
		items = append(items, Item{Text: value})
	}
	return items
}

// Section identifies one display slot of a Record.
type Section struct {
	Key   string
	Label string
	List  bool
}

// Sections lists the display slots in page order.
var Sections = []Section{
	{Key: "generalSummary", Label: "General Summary"},
	{Key: "patientDetails", Label: "Patient Details"},
	{Key: "diagnosis", Label: "Diagnosis", List: true},
	{Key: "testResults", Label: "Test Results", List: true},
	{Key: "medications", Label: "Medications", List: true},
	{Key: "doctorsNotes", Label: "Doctor's Notes"},
}
