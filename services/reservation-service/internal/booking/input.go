package booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/md-rashed-zaman/clinicbook/services/reservation-service/internal/model"
)

const (
	dateLayout    = "2006-01-02"
	timeLayout    = "15:04"
	timeLayoutSec = "15:04:05"
)

// Submission carries the raw fields of one reservation form post.
type Submission struct {
	NameLast      string `json:"name_last"`
	NameFirst     string `json:"name_first"`
	NameLastKana  string `json:"name_last_kana"`
	NameFirstKana string `json:"name_first_kana"`
	BirthDate     string `json:"birth_date"`
	Gender        string `json:"gender"`
	Phone         string `json:"phone"`
	Date          string `json:"reservation_date"`
	StartTime     string `json:"start_time"`
	Category      string `json:"category"`
	Note          string `json:"note"`
}

// NewSubmission returns the blank form state for date.
func NewSubmission(date string) Submission {
	return Submission{
		Gender:   string(model.GenderMale),
		Category: string(model.CategoryCheckup),
		Date:     date,
	}
}

// Normalize trims surrounding whitespace and applies the form defaults.
// The phone is otherwise kept verbatim; matching is exact.
func (s Submission) Normalize() Submission {
	for _, f := range []*string{
		&s.NameLast, &s.NameFirst, &s.NameLastKana, &s.NameFirstKana, &s.BirthDate,
		&s.Gender, &s.Phone, &s.Date, &s.StartTime, &s.Category,
	} {
		*f = strings.TrimSpace(*f)
	}
	if s.Gender == "" {
		s.Gender = string(model.GenderMale)
	}
	if s.Category == "" {
		s.Category = string(model.CategoryCheckup)
	}
	return s
}

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// Validate checks required fields, enum membership and date/time syntax.
// It does not judge plausibility (past dates, opening hours).
func (s Submission) Validate() error {
	required := []struct {
		field, value, label string
	}{
		{"name_last", s.NameLast, "姓"},
		{"name_first", s.NameFirst, "名"},
		{"phone", s.Phone, "電話番号"},
		{"reservation_date", s.Date, "予約日"},
		{"start_time", s.StartTime, "時間"},
	}
	for _, r := range required {
		if r.value == "" {
			return invalid(r.field, "%sを入力してください", r.label)
		}
	}
	if !model.Gender(s.Gender).Valid() {
		return invalid("gender", "性別の値が不正です: %s", s.Gender)
	}
	if !model.Category(s.Category).Valid() {
		return invalid("category", "種別の値が不正です: %s", s.Category)
	}
	if s.BirthDate != "" && !ValidDate(s.BirthDate) {
		return invalid("birth_date", "生年月日の形式が不正です: %s", s.BirthDate)
	}
	if !ValidDate(s.Date) {
		return invalid("reservation_date", "予約日の形式が不正です: %s", s.Date)
	}
	if !validTime(s.StartTime) {
		return invalid("start_time", "時間の形式が不正です: %s", s.StartTime)
	}
	return nil
}

// ValidDate reports whether s is a calendar date in YYYY-MM-DD form.
func ValidDate(s string) bool {
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

func validTime(s string) bool {
	if _, err := time.Parse(timeLayout, s); err == nil {
		return true
	}
	_, err := time.Parse(timeLayoutSec, s)
	return err == nil
}

// Today returns the current date in loc as YYYY-MM-DD.
func Today(now time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return now.In(loc).Format(dateLayout)
}

type PatientInput struct {
	NameLast      string
	NameFirst     string
	NameLastKana  string
	NameFirstKana string
	BirthDate     string
	Gender        model.Gender
	Phone         string
}

type ReservationInput struct {
	PatientID string
	Date      string
	StartTime string
	Category  model.Category
	Note      string
}

func (s Submission) patient() PatientInput {
	return PatientInput{
		NameLast:      s.NameLast,
		NameFirst:     s.NameFirst,
		NameLastKana:  s.NameLastKana,
		NameFirstKana: s.NameFirstKana,
		BirthDate:     s.BirthDate,
		Gender:        model.Gender(s.Gender),
		Phone:         s.Phone,
	}
}

func (s Submission) reservation(patientID string) ReservationInput {
	return ReservationInput{
		PatientID: patientID,
		Date:      s.Date,
		StartTime: s.StartTime,
		Category:  model.Category(s.Category),
		Note:      s.Note,
	}
}
