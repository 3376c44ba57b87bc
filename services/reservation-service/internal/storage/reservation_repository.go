package storage

import (
	"context"
	"fmt"

	"github.com/md-rashed-zaman/clinicbook/libs/db"
	"github.com/md-rashed-zaman/clinicbook/services/reservation-service/internal/model"
	"github.com/md-rashed-zaman/clinicbook/services/reservation-service/internal/outbox"
)

type ReservationRepository struct {
	pool   db.Querier
	outbox *outbox.Repository
}

func NewReservationRepository(pool db.Querier, ob *outbox.Repository) *ReservationRepository {
	return &ReservationRepository{pool: pool, outbox: ob}
}

type reservationCreated struct {
	ReservationID string `json:"reservation_id"`
	PatientID     string `json:"patient_id"`
	Date          string `json:"reservation_date"`
	StartTime     string `json:"start_time"`
	Category      string `json:"category"`
}

// Insert stores res without a status so the column default applies.
func (r *ReservationRepository) Insert(ctx context.Context, res model.Reservation) (string, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return "", fmt.Errorf("storage: begin reservation insert: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var id string
	err = tx.QueryRow(ctx, `
		INSERT INTO reservations (patient_id, reservation_date, start_time, category, note)
		VALUES ($1::uuid, $2::date, $3::time, $4, $5)
		RETURNING id::text
	`, res.PatientID, res.Date, res.StartTime, string(res.Category), res.Note).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("storage: insert reservation: %w", err)
	}

	evt, err := outbox.NewEvent("reservation", id, outbox.EventReservationCreated, reservationCreated{
		ReservationID: id,
		PatientID:     res.PatientID,
		Date:          res.Date,
		StartTime:     res.StartTime,
		Category:      string(res.Category),
	})
	if err != nil {
		return "", err
	}
	if err := r.outbox.Insert(ctx, tx, evt); err != nil {
		return "", fmt.Errorf("storage: insert reservation event: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return "", fmt.Errorf("storage: commit reservation insert: %w", err)
	}
	return id, nil
}

// ListByDate returns the day's reservations ordered by start time only.
func (r *ReservationRepository) ListByDate(ctx context.Context, date string) ([]model.Reservation, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, patient_id::text, reservation_date::text, start_time::text,
			category, status, COALESCE(note, ''), created_at
		FROM reservations
		WHERE reservation_date = $1::date
		ORDER BY start_time ASC
	`, date)
	if err != nil {
		return nil, fmt.Errorf("storage: list reservations: %w", err)
	}
	defer rows.Close()

	out := []model.Reservation{}
	for rows.Next() {
		var res model.Reservation
		var category, status string
		if err := rows.Scan(&res.ID, &res.PatientID, &res.Date, &res.StartTime, &category, &status, &res.Note, &res.CreatedAt); err != nil {
			return nil, fmt.Errorf("storage: scan reservation: %w", err)
		}
		res.Category = model.Category(category)
		res.Status = model.Status(status)
		out = append(out, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: list reservations: %w", err)
	}
	return out, nil
}
