package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabelsFallBackToRawCode(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"known category", CategoryLabel("checkup"), "定期検診"},
		{"unknown category", CategoryLabel("whitening"), "whitening"},
		{"empty category", CategoryLabel(""), ""},
		{"known status", StatusLabel("checked_in"), "来院済"},
		{"unknown status", StatusLabel("rescheduled"), "rescheduled"},
		{"known badge", StatusBadgeClass("cancelled"), "bg-red-100 text-red-800"},
		{"unknown badge", StatusBadgeClass("rescheduled"), "bg-gray-100"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestEnumValidity(t *testing.T) {
	assert.True(t, CategoryEmergency.Valid())
	assert.False(t, Category("surgery").Valid())
	assert.True(t, GenderOther.Valid())
	assert.False(t, Gender("").Valid())

	opts := CategoryOptions()
	opts[0].Label = "mutated"
	assert.Equal(t, "定期検診", CategoryLabel("checkup"), "options are copies")
	assert.Len(t, GenderOptions(), 3)
}

func TestNewReservationView(t *testing.T) {
	r := Reservation{ID: "r1", PatientID: "p1", Date: "2025-04-01", StartTime: "10:00:00", Category: CategoryCheckup, Status: StatusConfirmed}
	p := &Patient{ID: "p1", NameLast: "山田", NameFirst: "太郎", Phone: "090-1234-5678"}

	v := NewReservationView(r, p)
	assert.Equal(t, "10:00", v.StartHHMM())
	assert.Equal(t, "山田 太郎", v.PatientName)
	assert.Equal(t, "090-1234-5678", v.PatientPhone)
	assert.Equal(t, "定期検診", v.CategoryLabel)
	assert.Equal(t, "予約確定", v.StatusLabel)
	assert.Equal(t, "bg-blue-100 text-blue-800", v.StatusClass)

	orphan := NewReservationView(Reservation{StartTime: "9:30", Category: "other"}, nil)
	assert.Equal(t, "", orphan.PatientName)
	assert.Equal(t, "9:30", orphan.StartHHMM())
}

func TestFullNameWithMissingParts(t *testing.T) {
	assert.Equal(t, "山田", Patient{NameLast: "山田"}.FullName())
	assert.Equal(t, "", Patient{}.FullName())
}
