package booking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/md-rashed-zaman/clinicbook/services/reservation-service/internal/metrics"
	"github.com/md-rashed-zaman/clinicbook/services/reservation-service/internal/model"
	"github.com/md-rashed-zaman/clinicbook/services/reservation-service/internal/storage"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Resolver finds the patient on file for a phone number or registers a new one.
type Resolver struct {
	patients PatientStore
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

func NewResolver(patients PatientStore, logger *slog.Logger, m *metrics.Metrics) *Resolver {
	return &Resolver{patients: patients, logger: logger, metrics: m}
}

// Resolve returns the id of the patient whose phone equals in.Phone, creating
// one from in when none exists. A matched patient is never updated.
func (r *Resolver) Resolve(ctx context.Context, in PatientInput) (string, bool, error) {
	ctx, span := tracer.Start(ctx, "booking.resolve_patient")
	defer span.End()

	existing, err := r.patients.FindByPhone(ctx, in.Phone)
	switch {
	case err == nil:
		r.metrics.ObservePatient("matched")
		span.SetAttributes(attribute.String("patient.outcome", "matched"))
		return existing.ID, false, nil
	case !errors.Is(err, storage.ErrNotFound):
		span.RecordError(err)
		span.SetStatus(codes.Error, "lookup failed")
		return "", false, fmt.Errorf("booking: find patient: %w", err)
	}

	id, err := r.patients.Insert(ctx, model.Patient{
		NameLast:      in.NameLast,
		NameFirst:     in.NameFirst,
		NameLastKana:  in.NameLastKana,
		NameFirstKana: in.NameFirstKana,
		BirthDate:     in.BirthDate,
		Gender:        in.Gender,
		Phone:         in.Phone,
	})
	if err == nil {
		r.metrics.ObservePatient("created")
		span.SetAttributes(attribute.String("patient.outcome", "created"))
		return id, true, nil
	}
	if !errors.Is(err, storage.ErrConflict) {
		span.RecordError(err)
		span.SetStatus(codes.Error, "insert failed")
		return "", false, fmt.Errorf("booking: insert patient: %w", err)
	}

	// Lost the race against a concurrent first visit with the same phone.
	winner, lookupErr := r.patients.FindByPhone(ctx, in.Phone)
	switch {
	case errors.Is(lookupErr, storage.ErrNotFound):
		span.RecordError(err)
		span.SetStatus(codes.Error, "conflict")
		return "", false, fmt.Errorf("booking: insert patient: %w", err)
	case lookupErr != nil:
		span.RecordError(lookupErr)
		span.SetStatus(codes.Error, "lookup after conflict failed")
		return "", false, fmt.Errorf("booking: find patient after conflict: %w", lookupErr)
	}
	r.logger.Info("patient insert conflicted, reusing existing patient", "patient_id", winner.ID)
	r.metrics.ObservePatient("conflict_reused")
	span.SetAttributes(attribute.String("patient.outcome", "conflict_reused"))
	return winner.ID, false, nil
}
