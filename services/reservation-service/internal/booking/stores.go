package booking

import (
	"context"

	"github.com/md-rashed-zaman/clinicbook/services/reservation-service/internal/model"
)

// PatientStore is implemented by storage.PatientRepository.
type PatientStore interface {
	FindByPhone(ctx context.Context, phone string) (model.Patient, error)
	Insert(ctx context.Context, p model.Patient) (string, error)
	ByIDs(ctx context.Context, ids []string) (map[string]model.Patient, error)
}

// ReservationStore is implemented by storage.ReservationRepository.
type ReservationStore interface {
	Insert(ctx context.Context, r model.Reservation) (string, error)
	ListByDate(ctx context.Context, date string) ([]model.Reservation, error)
}
