package model

import (
	"strings"
	"time"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

var genders = []Option{
	{Value: string(GenderMale), Label: "男性"},
	{Value: string(GenderFemale), Label: "女性"},
	{Value: string(GenderOther), Label: "その他"},
}

func (g Gender) Valid() bool {
	_, ok := lookup(genders, string(g))
	return ok
}

// GenderOptions lists the selectable genders in form order.
func GenderOptions() []Option {
	return append([]Option(nil), genders...)
}

// Patient is owned by the store; ID and CreatedAt are assigned on insert.
// BirthDate is YYYY-MM-DD or empty when unknown.
type Patient struct {
	ID            string
	NameLast      string
	NameFirst     string
	NameLastKana  string
	NameFirstKana string
	BirthDate     string
	Gender        Gender
	Phone         string
	CreatedAt     time.Time
}

// FullName renders family name first, the way the front desk reads it.
func (p Patient) FullName() string {
	return strings.TrimSpace(p.NameLast + " " + p.NameFirst)
}
