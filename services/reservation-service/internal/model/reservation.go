package model

import "time"

type Category string

const (
	CategoryCheckup      Category = "checkup"
	CategoryTreatment    Category = "treatment"
	CategoryConsultation Category = "consultation"
	CategoryEmergency    Category = "emergency"
	CategoryOther        Category = "other"
)

type Status string

const (
	StatusConfirmed  Status = "confirmed"
	StatusCheckedIn  Status = "checked_in"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
	StatusNoShow     Status = "no_show"
)

// Reservation rows are written without a status; the store default applies.
// Date is YYYY-MM-DD and StartTime HH:MM:SS as the store returns them.
type Reservation struct {
	ID        string
	PatientID string
	Date      string
	StartTime string
	Category  Category
	Status    Status
	Note      string
	CreatedAt time.Time
}

// StartHHMM trims seconds for display.
func (r Reservation) StartHHMM() string {
	if len(r.StartTime) > 5 {
		return r.StartTime[:5]
	}
	return r.StartTime
}

func (c Category) Valid() bool {
	_, ok := lookup(categories, string(c))
	return ok
}

// ReservationView is one row of the daily list: the reservation joined with
// its patient's name and phone plus display labels.
type ReservationView struct {
	Reservation
	PatientName   string
	PatientPhone  string
	CategoryLabel string
	StatusLabel   string
	StatusClass   string
}

// NewReservationView joins r with p. A nil patient leaves the patient columns empty.
func NewReservationView(r Reservation, p *Patient) ReservationView {
	v := ReservationView{
		Reservation:   r,
		CategoryLabel: CategoryLabel(string(r.Category)),
		StatusLabel:   StatusLabel(string(r.Status)),
		StatusClass:   StatusBadgeClass(string(r.Status)),
	}
	if p != nil {
		v.PatientName = p.FullName()
		v.PatientPhone = p.Phone
	}
	return v
}
