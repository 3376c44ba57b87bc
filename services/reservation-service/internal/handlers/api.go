package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/md-rashed-zaman/clinicbook/services/reservation-service/internal/booking"
)

type reservationItem struct {
	ReservationID string `json:"reservation_id"`
	PatientID     string `json:"patient_id"`
	PatientName   string `json:"patient_name"`
	PatientPhone  string `json:"patient_phone"`
	Date          string `json:"reservation_date"`
	StartTime     string `json:"start_time"`
	Category      string `json:"category"`
	CategoryLabel string `json:"category_label"`
	Status        string `json:"status"`
	StatusLabel   string `json:"status_label"`
	Note          string `json:"note"`
}

type listReservationsResponse struct {
	Date         string            `json:"date"`
	Reservations []reservationItem `json:"reservations"`
}

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (h *ReservationHandler) ListJSON(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = h.today()
	}
	if !booking.ValidDate(date) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid date", Field: "date"})
		return
	}

	views, err := h.lister.ListByDate(r.Context(), date)
	if err != nil {
		h.logger.Error("list reservations failed", "date", date, "err", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	items := make([]reservationItem, 0, len(views))
	for _, v := range views {
		items = append(items, reservationItem{
			ReservationID: v.ID,
			PatientID:     v.PatientID,
			PatientName:   v.PatientName,
			PatientPhone:  v.PatientPhone,
			Date:          v.Date,
			StartTime:     v.StartHHMM(),
			Category:      string(v.Category),
			CategoryLabel: v.CategoryLabel,
			Status:        string(v.Status),
			StatusLabel:   v.StatusLabel,
			Note:          v.Note,
		})
	}
	writeJSON(w, http.StatusOK, listReservationsResponse{Date: date, Reservations: items})
}

func (h *ReservationHandler) CreateJSON(w http.ResponseWriter, r *http.Request) {
	var sub booking.Submission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid json body"})
		return
	}

	res, err := h.submitter.Submit(r.Context(), sub)
	if err != nil {
		var verr *booking.ValidationError
		if errors.As(err, &verr) {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: verr.Message, Field: verr.Field})
			return
		}
		h.logger.Error("reservation submit failed", "err", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusCreated, res)
}
