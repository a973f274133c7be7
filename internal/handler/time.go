package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"auctionbase-web/internal/auctionerrors"
	"auctionbase-web/internal/model"
	"auctionbase-web/internal/render"
	"auctionbase-web/internal/service"
)

// TimeHandler serves the current-time page and the time-selection form.
type TimeHandler struct {
	timeService *service.TimeService
	render      *render.Renderer
}

// NewTimeHandler creates a new time handler.
func NewTimeHandler(timeService *service.TimeService, r *render.Renderer) *TimeHandler {
	return &TimeHandler{timeService: timeService, render: r}
}

type currTimePage struct {
	Time string
}

type selectTimePage struct {
	Message string
}

// CurrTime handles GET /currtime.
func (h *TimeHandler) CurrTime(w http.ResponseWriter, r *http.Request) {
	now, err := h.timeService.GetTime(r.Context())
	if err != nil {
		if errors.Is(err, auctionerrors.ErrTimeNotConfigured) {
			h.render.Error(w, http.StatusInternalServerError, "The current time has not been configured.")
			return
		}
		h.render.Error(w, http.StatusInternalServerError, "Failed to read the current time.")
		return
	}

	h.render.HTML(w, http.StatusOK, "curr_time.html", currTimePage{Time: now.String()})
}

// SelectTimeForm handles GET /selecttime.
func (h *TimeHandler) SelectTimeForm(w http.ResponseWriter, r *http.Request) {
	h.render.HTML(w, http.StatusOK, "select_time.html", selectTimePage{})
}

// SelectTime handles POST /selecttime. The form carries the broken-out
// date fields MM,dd,yyyy,HH,mm,ss plus the submitter's name.
func (h *TimeHandler) SelectTime(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.render.Error(w, http.StatusBadRequest, "Malformed form submission.")
		return
	}

	selected, ok := parseTimeFields(r)
	if !ok {
		h.render.HTML(w, http.StatusOK, "select_time.html", selectTimePage{Message: "Enter a Valid Time"})
		return
	}

	err := h.timeService.SetTime(r.Context(), selected)
	switch {
	case errors.Is(err, auctionerrors.ErrTimeRegression):
		h.render.HTML(w, http.StatusOK, "select_time.html", selectTimePage{Message: "Enter a Valid Time"})
		return
	case err != nil:
		h.render.Error(w, http.StatusInternalServerError, "Failed to update the current time.")
		return
	}

	message := fmt.Sprintf("(Hello, %s. Previously selected time was: %s.)",
		r.PostFormValue("entername"), selected.String())
	h.render.HTML(w, http.StatusOK, "select_time.html", selectTimePage{Message: message})
}

// parseTimeFields assembles a Timestamp from the six numeric form
// fields. ok is false when any field is missing or non-numeric, or
// the combination is not a real calendar time.
func parseTimeFields(r *http.Request) (model.Timestamp, bool) {
	fields := [6]int{}
	for i, name := range [6]string{"yyyy", "MM", "dd", "HH", "mm", "ss"} {
		v, err := strconv.Atoi(r.PostFormValue(name))
		if err != nil {
			return model.Timestamp{}, false
		}
		fields[i] = v
	}

	t := time.Date(fields[0], time.Month(fields[1]), fields[2], fields[3], fields[4], fields[5], 0, time.UTC)
	// time.Date normalizes out-of-range components; reject anything
	// that did not round-trip.
	if t.Year() != fields[0] || int(t.Month()) != fields[1] || t.Day() != fields[2] ||
		t.Hour() != fields[3] || t.Minute() != fields[4] || t.Second() != fields[5] {
		return model.Timestamp{}, false
	}

	return model.NewTimestamp(t), true
}
