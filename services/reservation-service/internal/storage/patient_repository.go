package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/md-rashed-zaman/clinicbook/libs/db"
	"github.com/md-rashed-zaman/clinicbook/services/reservation-service/internal/model"
	"github.com/md-rashed-zaman/clinicbook/services/reservation-service/internal/outbox"
)

type PatientRepository struct {
	pool   db.Querier
	outbox *outbox.Repository
}

func NewPatientRepository(pool db.Querier, ob *outbox.Repository) *PatientRepository {
	return &PatientRepository{pool: pool, outbox: ob}
}

const patientColumns = `id::text, name_last, name_first, name_last_kana, name_first_kana,
	COALESCE(birth_date::text, ''), gender, phone, created_at`

func scanPatient(row pgx.Row) (model.Patient, error) {
	var p model.Patient
	var gender string
	err := row.Scan(&p.ID, &p.NameLast, &p.NameFirst, &p.NameLastKana, &p.NameFirstKana,
		&p.BirthDate, &gender, &p.Phone, &p.CreatedAt)
	p.Gender = model.Gender(gender)
	return p, err
}

// FindByPhone returns the oldest patient registered with exactly this phone.
func (r *PatientRepository) FindByPhone(ctx context.Context, phone string) (model.Patient, error) {
	p, err := scanPatient(r.pool.QueryRow(ctx, `
		SELECT `+patientColumns+`
		FROM patients
		WHERE phone = $1
		ORDER BY created_at, id
		LIMIT 1
	`, phone))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Patient{}, ErrNotFound
		}
		return model.Patient{}, fmt.Errorf("storage: find patient by phone: %w", err)
	}
	return p, nil
}

type patientRegistered struct {
	PatientID string `json:"patient_id"`
	Phone     string `json:"phone"`
	NameLast  string `json:"name_last"`
	NameFirst string `json:"name_first"`
}

// Insert stores p and its registration event in one transaction and returns the new id.
func (r *PatientRepository) Insert(ctx context.Context, p model.Patient) (string, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return "", fmt.Errorf("storage: begin patient insert: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var id string
	err = tx.QueryRow(ctx, `
		INSERT INTO patients
			(name_last, name_first, name_last_kana, name_first_kana, birth_date, gender, phone)
		VALUES ($1, $2, $3, $4, NULLIF($5, '')::date, $6, $7)
		RETURNING id::text
	`, p.NameLast, p.NameFirst, p.NameLastKana, p.NameFirstKana, p.BirthDate, string(p.Gender), p.Phone).Scan(&id)
	if err != nil {
		if db.IsUniqueViolation(err, patientsPhoneKey) {
			return "", ErrConflict
		}
		return "", fmt.Errorf("storage: insert patient: %w", err)
	}

	evt, err := outbox.NewEvent("patient", id, outbox.EventPatientRegistered, patientRegistered{
		PatientID: id,
		Phone:     p.Phone,
		NameLast:  p.NameLast,
		NameFirst: p.NameFirst,
	})
	if err != nil {
		return "", err
	}
	if err := r.outbox.Insert(ctx, tx, evt); err != nil {
		return "", fmt.Errorf("storage: insert patient event: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return "", fmt.Errorf("storage: commit patient insert: %w", err)
	}
	return id, nil
}

// ByIDs loads the given patients in one round trip. Unknown ids are absent from the map.
func (r *PatientRepository) ByIDs(ctx context.Context, ids []string) (map[string]model.Patient, error) {
	out := make(map[string]model.Patient, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	rows, err := r.pool.Query(ctx, `
		SELECT `+patientColumns+`
		FROM patients
		WHERE id = ANY($1::uuid[])
	`, ids)
	if err != nil {
		return nil, fmt.Errorf("storage: list patients: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: scan patient: %w", err)
		}
		out[p.ID] = p
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: list patients: %w", err)
	}
	return out, nil
}
