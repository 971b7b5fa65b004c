package usecase

import (
	"sort"
	"strings"
	"time"
	"unicode/utf8"
)

// ValidationKind classifies a form error.
type ValidationKind string

const (
	MissingService    ValidationKind = "MissingService"
	MissingDate       ValidationKind = "MissingDate"
	MissingTime       ValidationKind = "MissingTime"
	PastDateTime      ValidationKind = "PastDateTime"
	OutOfWorkingHours ValidationKind = "OutOfWorkingHours"
	InvalidDate       ValidationKind = "InvalidDate"
	InvalidTime       ValidationKind = "InvalidTime"
	NotesTooLong      ValidationKind = "NotesTooLong"
)

// Working hours of the salon. Only the hour of a start time is compared, so
// any minute within ClosingHour is accepted.
const (
	OpeningHour = 8
	ClosingHour = 20
)

// MaxNotesLength caps booking notes, counted in characters after trimming.
const MaxNotesLength = 500

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

var validationMessages = map[ValidationKind]string{
	MissingService:    "Vui lòng chọn một dịch vụ",
	MissingDate:       "Vui lòng chọn ngày",
	MissingTime:       "Vui lòng chọn giờ",
	PastDateTime:      "Thời gian phải trong tương lai",
	OutOfWorkingHours: "Giờ làm việc: 8:00 - 20:00",
	InvalidDate:       "Ngày không hợp lệ",
	InvalidTime:       "Giờ không hợp lệ",
	NotesTooLong:      "Ghi chú tối đa 500 ký tự",
}

type FieldError struct {
	Kind    ValidationKind `json:"kind"`
	Message string         `json:"message"`
}

func newFieldError(kind ValidationKind) FieldError {
	return FieldError{Kind: kind, Message: validationMessages[kind]}
}

// ValidationErrors maps a form field (service, date, time, notes) to its error.
type ValidationErrors map[string]FieldError

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for field := range v {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, len(fields))
	for i, field := range fields {
		parts[i] = field + ": " + v[field].Message
	}
	return "invalid form: " + strings.Join(parts, "; ")
}

// Messages flattens the errors to field -> message for response bodies.
func (v ValidationErrors) Messages() map[string]string {
	messages := make(map[string]string, len(v))
	for field, fe := range v {
		messages[field] = fe.Message
	}
	return messages
}

// BookingDraft is the booking form as the customer filled it in.
type BookingDraft struct {
	ServiceID string
	Date      string
	StartTime string
	StaffID   string
	Notes     string
}

// ValidateBooking checks a draft against the booking rules. All rules are
// evaluated; an empty result means the draft may be submitted. Dates and
// times are read in loc.
func ValidateBooking(draft BookingDraft, now time.Time, loc *time.Location) ValidationErrors {
	errs := ValidationErrors{}

	if strings.TrimSpace(draft.ServiceID) == "" {
		errs["service"] = newFieldError(MissingService)
	}

	var day time.Time
	dateOK := false
	if draft.Date == "" {
		errs["date"] = newFieldError(MissingDate)
	} else if parsed, err := time.ParseInLocation(DateLayout, draft.Date, loc); err != nil {
		errs["date"] = newFieldError(InvalidDate)
	} else {
		day, dateOK = parsed, true
	}

	var clock time.Time
	timeOK := false
	if draft.StartTime == "" {
		errs["time"] = newFieldError(MissingTime)
	} else if parsed, err := time.Parse(TimeLayout, draft.StartTime); err != nil {
		errs["time"] = newFieldError(InvalidTime)
	} else {
		clock, timeOK = parsed, true
	}

	if dateOK && timeOK && !bookingInstant(day, clock, loc).After(now) {
		errs["date"] = newFieldError(PastDateTime)
	}

	if timeOK {
		if hour := clock.Hour(); hour < OpeningHour || hour > ClosingHour {
			errs["time"] = newFieldError(OutOfWorkingHours)
		}
	}

	if utf8.RuneCountInString(strings.TrimSpace(draft.Notes)) > MaxNotesLength {
		errs["notes"] = newFieldError(NotesTooLong)
	}

	return errs
}

func bookingInstant(day, clock time.Time, loc *time.Location) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), clock.Hour(), clock.Minute(), 0, 0, loc)
}
