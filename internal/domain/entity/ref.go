package entity

import (
	"bytes"
	"encoding/json"
)

// Ref is a reference to another backend document. The backend sends either
// the bare id or the populated document, so both forms decode into Ref.
// Populated users fill the contact fields, populated shifts the schedule.
type Ref struct {
	ID   string `json:"_id"`
	Name string `json:"name,omitempty"`

	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
	Image string `json:"image,omitempty"`

	ShiftType string `json:"shiftType,omitempty"`
	Date      string `json:"date,omitempty"`
	StartTime string `json:"startTime,omitempty"`
	EndTime   string `json:"endTime,omitempty"`
}

func (r *Ref) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*r = Ref{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var id string
		if err := json.Unmarshal(data, &id); err != nil {
			return err
		}
		*r = Ref{ID: id}
		return nil
	}

	type plain Ref
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*r = Ref(p)
	return nil
}

// MarshalJSON writes the bare id unless the reference was populated, so
// payloads sent to the backend carry ids only.
func (r Ref) MarshalJSON() ([]byte, error) {
	if r.ID == "" {
		return []byte("null"), nil
	}
	if r == (Ref{ID: r.ID}) {
		return json.Marshal(r.ID)
	}
	type plain Ref
	return json.Marshal(plain(r))
}

func (r Ref) IsZero() bool {
	return r.ID == ""
}

// Day is the populated date without its time part.
func (r Ref) Day() string {
	if len(r.Date) >= 10 {
		return r.Date[:10]
	}
	return r.Date
}
