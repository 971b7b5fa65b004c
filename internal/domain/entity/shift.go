package entity

// Shift is an admin-defined work slot staff can register against.
type Shift struct {
	ID        string `json:"_id"`
	ShiftType string `json:"shiftType"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Max       int    `json:"max"`
}

func (s *Shift) Day() string {
	if len(s.Date) >= 10 {
		return s.Date[:10]
	}
	return s.Date
}

type NewShift struct {
	ShiftType string `json:"shiftType"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Max       int    `json:"max"`
}
