package handlers

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"time"

	"github.com/md-rashed-zaman/clinicbook/services/reservation-service/internal/booking"
	"github.com/md-rashed-zaman/clinicbook/services/reservation-service/internal/model"
)

const submitFailedMessage = "予約の登録に失敗しました"

type Submitter interface {
	Submit(ctx context.Context, sub booking.Submission) (booking.Result, error)
}

type Lister interface {
	ListByDate(ctx context.Context, date string) ([]model.ReservationView, error)
}

type ReservationHandler struct {
	submitter Submitter
	lister    Lister
	logger    *slog.Logger
	loc       *time.Location
	now       func() time.Time
	pages     *pages
}

func NewReservationHandler(submitter Submitter, lister Lister, logger *slog.Logger, loc *time.Location) (*ReservationHandler, error) {
	p, err := parsePages()
	if err != nil {
		return nil, err
	}
	if loc == nil {
		loc = time.Local
	}
	return &ReservationHandler{
		submitter: submitter,
		lister:    lister,
		logger:    logger,
		loc:       loc,
		now:       time.Now,
		pages:     p,
	}, nil
}

func (h *ReservationHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", h.ListPage)
	mux.HandleFunc("GET /reservations/new", h.NewPage)
	mux.HandleFunc("POST /reservations", h.Submit)
	mux.HandleFunc("GET /api/v1/reservations", h.ListJSON)
	mux.HandleFunc("POST /api/v1/reservations", h.CreateJSON)
}

type listPageData struct {
	Title        string
	Date         string
	Reservations []model.ReservationView
	Error        string
}

type formPageData struct {
	Title      string
	Form       booking.Submission
	Genders    []model.Option
	Categories []model.Option
	Error      string
}

func (h *ReservationHandler) today() string {
	return booking.Today(h.now(), h.loc)
}

// ListPage renders the reservations of ?date=, defaulting to today.
func (h *ReservationHandler) ListPage(w http.ResponseWriter, r *http.Request) {
	data := listPageData{Title: "予約一覧", Date: r.URL.Query().Get("date")}
	status := http.StatusOK

	switch {
	case data.Date == "":
		data.Date = h.today()
	case !booking.ValidDate(data.Date):
		data.Error = "日付の形式が不正です: " + data.Date
		data.Reservations = []model.ReservationView{}
		h.renderList(w, r, http.StatusBadRequest, data)
		return
	}

	views, err := h.lister.ListByDate(r.Context(), data.Date)
	if err != nil {
		h.logger.Error("list reservations failed", "date", data.Date, "err", err)
		data.Error = err.Error()
		status = http.StatusInternalServerError
	}
	data.Reservations = views
	h.renderList(w, r, status, data)
}

func (h *ReservationHandler) renderList(w http.ResponseWriter, r *http.Request, status int, data listPageData) {
	if err := render(w, h.pages.list, "list.html", status, data); err != nil {
		h.logger.Error("render list page failed", "path", r.URL.Path, "err", err)
	}
}

func (h *ReservationHandler) NewPage(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if !booking.ValidDate(date) {
		date = h.today()
	}
	h.renderForm(w, r, http.StatusOK, booking.NewSubmission(date), "")
}

// Submit handles the HTML form post. Success redirects to the list for the
// reservation's date; any failure re-renders the form with the submitted values.
func (h *ReservationHandler) Submit(w http.ResponseWriter, r *http.Request) {
	values, err := readForm(r)
	sub := submissionFromForm(values)
	if err != nil {
		status := http.StatusBadRequest
		msg := submitFailedMessage
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			status = http.StatusRequestEntityTooLarge
			msg = submitFailedMessage + "：入力内容が大きすぎます"
		}
		h.logger.Warn("reservation form unreadable", "err", err)
		if sub.Date == "" {
			sub.Date = h.today()
		}
		h.renderForm(w, r, status, sub.Normalize(), msg)
		return
	}

	res, err := h.submitter.Submit(r.Context(), sub)
	if err != nil {
		status := http.StatusInternalServerError
		var verr *booking.ValidationError
		if errors.As(err, &verr) {
			status = http.StatusUnprocessableEntity
		} else {
			h.logger.Error("reservation submit failed", "err", err)
		}
		msg := err.Error()
		if msg == "" {
			msg = submitFailedMessage
		}
		h.renderForm(w, r, status, sub.Normalize(), msg)
		return
	}

	http.Redirect(w, r, "/?date="+url.QueryEscape(res.Date), http.StatusSeeOther)
}

func (h *ReservationHandler) renderForm(w http.ResponseWriter, r *http.Request, status int, sub booking.Submission, errMsg string) {
	data := formPageData{
		Title:      "新規予約",
		Form:       sub,
		Genders:    model.GenderOptions(),
		Categories: model.CategoryOptions(),
		Error:      errMsg,
	}
	if err := render(w, h.pages.form, "form.html", status, data); err != nil {
		h.logger.Error("render form page failed", "path", r.URL.Path, "err", err)
	}
}

// readForm parses an urlencoded body. Unlike Request.ParseForm it keeps the
// pairs that were read before a body error, so the form can be shown again.
func readForm(r *http.Request) (url.Values, error) {
	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if ct != "application/x-www-form-urlencoded" {
		err := r.ParseForm()
		return r.PostForm, err
	}
	body, readErr := io.ReadAll(r.Body)
	values, parseErr := url.ParseQuery(string(body))
	if readErr != nil {
		return values, readErr
	}
	return values, parseErr
}

func submissionFromForm(v url.Values) booking.Submission {
	return booking.Submission{
		NameLast:      v.Get("name_last"),
		NameFirst:     v.Get("name_first"),
		NameLastKana:  v.Get("name_last_kana"),
		NameFirstKana: v.Get("name_first_kana"),
		BirthDate:     v.Get("birth_date"),
		Gender:        v.Get("gender"),
		Phone:         v.Get("phone"),
		Date:          v.Get("reservation_date"),
		StartTime:     v.Get("start_time"),
		Category:      v.Get("category"),
		Note:          v.Get("note"),
	}
}
