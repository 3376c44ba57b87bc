package booking

import (
	"context"
	"fmt"

	"github.com/md-rashed-zaman/clinicbook/services/reservation-service/internal/model"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Directory reads the daily reservation list.
type Directory struct {
	reservations ReservationStore
	patients     PatientStore
}

func NewDirectory(reservations ReservationStore, patients PatientStore) *Directory {
	return &Directory{reservations: reservations, patients: patients}
}

// ListByDate returns the reservations on date ordered by start time, each
// joined with its patient. Patients are loaded in a single batch.
func (d *Directory) ListByDate(ctx context.Context, date string) ([]model.ReservationView, error) {
	ctx, span := tracer.Start(ctx, "booking.list")
	defer span.End()
	span.SetAttributes(attribute.String("reservation.date", date))

	rows, err := d.reservations.ListByDate(ctx, date)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "list failed")
		return nil, fmt.Errorf("booking: list reservations: %w", err)
	}
	views := make([]model.ReservationView, 0, len(rows))
	if len(rows) == 0 {
		return views, nil
	}

	seen := make(map[string]struct{}, len(rows))
	ids := make([]string, 0, len(rows))
	for _, r := range rows {
		if _, ok := seen[r.PatientID]; ok {
			continue
		}
		seen[r.PatientID] = struct{}{}
		ids = append(ids, r.PatientID)
	}
	patients, err := d.patients.ByIDs(ctx, ids)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "patient lookup failed")
		return nil, fmt.Errorf("booking: load patients: %w", err)
	}

	for _, r := range rows {
		var p *model.Patient
		if found, ok := patients[r.PatientID]; ok {
			p = &found
		}
		views = append(views, model.NewReservationView(r, p))
	}
	span.SetAttributes(attribute.Int("reservation.count", len(views)))
	return views, nil
}
