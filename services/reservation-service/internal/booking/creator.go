package booking

import (
	"context"
	"fmt"

	"github.com/md-rashed-zaman/clinicbook/services/reservation-service/internal/model"
	"go.opentelemetry.io/otel/codes"
)

type Creator struct {
	reservations ReservationStore
}

func NewCreator(reservations ReservationStore) *Creator {
	return &Creator{reservations: reservations}
}

// Create inserts one reservation; the store assigns id and status.
func (c *Creator) Create(ctx context.Context, in ReservationInput) (string, error) {
	ctx, span := tracer.Start(ctx, "booking.create_reservation")
	defer span.End()

	id, err := c.reservations.Insert(ctx, model.Reservation{
		PatientID: in.PatientID,
		Date:      in.Date,
		StartTime: in.StartTime,
		Category:  in.Category,
		Note:      in.Note,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "insert failed")
		return "", fmt.Errorf("booking: insert reservation: %w", err)
	}
	return id, nil
}
