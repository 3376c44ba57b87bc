package booking

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"sync"

	"github.com/md-rashed-zaman/clinicbook/services/reservation-service/internal/model"
	"github.com/md-rashed-zaman/clinicbook/services/reservation-service/internal/storage"
)

// memStore mimics the database: unique phones, default status, ordered listing.
type memStore struct {
	mu           sync.Mutex
	patients     []model.Patient
	reservations []model.Reservation
	seq          int

	staleFinds     int     // next N FindByPhone calls miss regardless of contents
	findQueue      []error // consumed one per FindByPhone call; nil entries fall through
	findErr        error
	insertErr      error
	reservationErr error
	byIDsCalls     int
}

func (m *memStore) nextID(prefix string) string {
	m.seq++
	return fmt.Sprintf("%s%d", prefix, m.seq)
}

func (m *memStore) FindByPhone(_ context.Context, phone string) (model.Patient, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.findErr != nil {
		return model.Patient{}, m.findErr
	}
	if len(m.findQueue) > 0 {
		next := m.findQueue[0]
		m.findQueue = m.findQueue[1:]
		if next != nil {
			return model.Patient{}, next
		}
	}
	if m.staleFinds > 0 {
		m.staleFinds--
		return model.Patient{}, storage.ErrNotFound
	}
	for _, p := range m.patients {
		if p.Phone == phone {
			return p, nil
		}
	}
	return model.Patient{}, storage.ErrNotFound
}

func (m *memStore) Insert(_ context.Context, p model.Patient) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.insertErr != nil {
		return "", m.insertErr
	}
	for _, existing := range m.patients {
		if existing.Phone == p.Phone {
			return "", storage.ErrConflict
		}
	}
	p.ID = m.nextID("p")
	m.patients = append(m.patients, p)
	return p.ID, nil
}

func (m *memStore) ByIDs(_ context.Context, ids []string) (map[string]model.Patient, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.byIDsCalls++
	out := map[string]model.Patient{}
	for _, id := range ids {
		for _, p := range m.patients {
			if p.ID == id {
				out[id] = p
			}
		}
	}
	return out, nil
}

type memReservations struct {
	*memStore
}

func (m memReservations) Insert(_ context.Context, r model.Reservation) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.reservationErr != nil {
		return "", m.reservationErr
	}
	r.ID = m.nextID("r")
	r.Status = model.StatusConfirmed
	m.reservations = append(m.reservations, r)
	return r.ID, nil
}

func (m memReservations) ListByDate(_ context.Context, date string) ([]model.Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []model.Reservation{}
	for _, r := range m.reservations {
		if r.Date == date {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].StartTime < out[j].StartTime })
	return out, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var errStoreDown = errors.New("connection refused")
