package storage

import "errors"

var (
	ErrNotFound = errors.New("storage: not found")
	// ErrConflict means another writer inserted a patient with the same phone first.
	ErrConflict = errors.New("storage: patient phone already exists")
)

const patientsPhoneKey = "patients_phone_key"
