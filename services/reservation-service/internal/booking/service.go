package booking

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/md-rashed-zaman/clinicbook/services/reservation-service/internal/metrics"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("clinicbook/booking")

type Result struct {
	PatientID      string `json:"patient_id"`
	PatientCreated bool   `json:"patient_created"`
	ReservationID  string `json:"reservation_id"`
	Date           string `json:"reservation_date"`
}

// Service runs one form submission: resolve the patient, then create the reservation.
// The two writes are separate transactions; a failed reservation after a new
// patient insert leaves that patient on file.
type Service struct {
	resolver *Resolver
	creator  *Creator
	logger   *slog.Logger
	metrics  *metrics.Metrics
	now      func() time.Time
}

func NewService(patients PatientStore, reservations ReservationStore, logger *slog.Logger, m *metrics.Metrics) *Service {
	return &Service{
		resolver: NewResolver(patients, logger, m),
		creator:  NewCreator(reservations),
		logger:   logger,
		metrics:  m,
		now:      time.Now,
	}
}

func (s *Service) Submit(ctx context.Context, sub Submission) (Result, error) {
	start := s.now()
	ctx, span := tracer.Start(ctx, "booking.submit")
	defer span.End()

	res, err := s.submit(ctx, sub.Normalize())
	result := "success"
	if err != nil {
		result = "error"
		var verr *ValidationError
		if errors.As(err, &verr) {
			result = "invalid"
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, result)
	}
	s.metrics.ObserveSubmission(result, s.now().Sub(start).Seconds())
	return res, err
}

func (s *Service) submit(ctx context.Context, sub Submission) (Result, error) {
	if err := sub.Validate(); err != nil {
		return Result{}, err
	}

	patientID, created, err := s.resolver.Resolve(ctx, sub.patient())
	if err != nil {
		return Result{}, err
	}

	reservationID, err := s.creator.Create(ctx, sub.reservation(patientID))
	if err != nil {
		if created {
			s.logger.Warn("reservation insert failed after new patient insert", "patient_id", patientID, "err", err)
			s.metrics.ObserveOrphanPatient()
		}
		return Result{}, err
	}

	trace.SpanFromContext(ctx).SetAttributes(
		attribute.String("reservation.id", reservationID),
		attribute.Bool("patient.created", created),
	)
	s.logger.Info("reservation created",
		"reservation_id", reservationID,
		"patient_id", patientID,
		"patient_created", created,
		"reservation_date", sub.Date,
	)
	return Result{
		PatientID:      patientID,
		PatientCreated: created,
		ReservationID:  reservationID,
		Date:           sub.Date,
	}, nil
}
