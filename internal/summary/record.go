package summary

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Record is the summary of a single medical report.
type Record struct {
	GeneralSummary Scalar  `json:"generalSummary"`
	PatientDetails Scalar  `json:"patientDetails"`
	DoctorsNotes   Scalar  `json:"doctorsNotes"`
	Diagnosis      Entries `json:"diagnosis"`
	TestResults    Entries `json:"testResults"`
	Medications    Entries `json:"medications"`
}

// Envelope is the response body of the summarize endpoint.
type Envelope struct {
	Success bool    `json:"success,omitempty"`
	Data    *Record `json:"data,omitempty"`
	Error   string  `json:"error,omitempty"`
}

// Scalar is a display string decoded from any JSON scalar. Falsy values
// (null, false, 0) decode to the empty string.
type Scalar string

// UnmarshalJSON implements json.Unmarshaler.
func (s *Scalar) UnmarshalJSON(data []byte) error {
	text, err := scalarText(data)
	if err != nil {
		return fmt.Errorf("scalar: %w", err)
	}
	if text == "false" || text == "0" {
		text = ""
	}
	*s = Scalar(text)
	return nil
}

// Entries is an ordered list of display strings. Scalars of any JSON type
// decode to their literal text; null decodes to an empty list.
type Entries []string

// UnmarshalJSON implements json.Unmarshaler.
func (e *Entries) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*e = nil
		return nil
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("entries: %w", err)
	}
	out := make(Entries, 0, len(raw))
	for i, item := range raw {
		text, err := scalarText(item)
		if err != nil {
			return fmt.Errorf("entries[%d]: %w", i, err)
		}
		out = append(out, text)
	}
	*e = out
	return nil
}

func scalarText(item json.RawMessage) (string, error) {
	var value any
	if err := json.Unmarshal(item, &value); err != nil {
		return "", err
	}
	switch v := value.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	default:
		// Nested objects keep their compact JSON form.
		var buf bytes.Buffer
		if err := json.Compact(&buf, item); err != nil {
			return "", err
		}
		return buf.String(), nil
	}
}
