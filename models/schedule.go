package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// ScheduleRecord is the structured form of one meeting time as some registry
// endpoints deliver it.
type ScheduleRecord struct {
	Day       string `json:"day"`
	StartHour int    `json:"startHour"`
	EndHour   int    `json:"endHour"`
}

// ScheduleDescriptor tolerates the two shapes the registry uses for course
// meeting times: a plain text descriptor ("월 9:00-10:00, 수 14:00-15:00") or a
// structured list of records. Absent/null descriptors are valid and mean the
// course has no fixed meeting time.
type ScheduleDescriptor struct {
	Text    string
	Records []ScheduleRecord
}

// UnmarshalJSON branches on the leading token of the payload.
func (d *ScheduleDescriptor) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*d = ScheduleDescriptor{}
		return nil
	}
	switch trimmed[0] {
	case '[':
		var records []ScheduleRecord
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return err
		}
		*d = ScheduleDescriptor{Records: records}
		return nil
	default:
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*d = ScheduleDescriptor{Text: strings.TrimSpace(s)}
		return nil
	}
}

// MarshalJSON serializes the structured form when present, else the text form.
func (d ScheduleDescriptor) MarshalJSON() ([]byte, error) {
	if len(d.Records) > 0 {
		return json.Marshal(d.Records)
	}
	return json.Marshal(d.Text)
}

// IsZero reports whether no descriptor was provided.
func (d ScheduleDescriptor) IsZero() bool {
	return d.Text == "" && len(d.Records) == 0
}

// Display returns the human-readable form shown on course cards.
func (d ScheduleDescriptor) Display() string {
	if d.Text != "" {
		return d.Text
	}
	if len(d.Records) == 0 {
		return ""
	}
	parts := make([]string, 0, len(d.Records))
	for _, r := range d.Records {
		parts = append(parts, fmt.Sprintf("%s %d:00-%d:00", r.Day, r.StartHour, r.EndHour))
	}
	return strings.Join(parts, ", ")
}
