package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/borgstromhq/borgcal/internal/calendar/domain"
	"github.com/borgstromhq/borgcal/internal/calendar/service"
	"github.com/borgstromhq/borgcal/internal/calendar/store"
	"github.com/borgstromhq/borgcal/pkg/calsdk"
	"github.com/borgstromhq/borgcal/pkg/httpx"
	"github.com/borgstromhq/borgcal/pkg/slogx"
)

type AttendanceHandler struct {
	AttendanceService *service.AttendanceService
}

// HandleSet godoc
//
//	@Summary		Set Attendance Endpoint
//	@Description	Upserts the caller's attendance status on an event. Repeating the call
//	@Description	with a different status replaces the previous row, never duplicates it.
//	@Tags			Attendance
//	@Accept			json
//	@Param			id		path	string						true	"event ID"
//	@Param			request	body	calsdk.SetAttendanceRequest	true	"attending or not_attending"
//	@Success		204		"attendance recorded"
//	@Failure		400		{object}	calsdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	calsdk.ErrorResponse	"missing or invalid token"
//	@Failure		404		{object}	calsdk.ErrorResponse	"unknown event"
//	@Failure		500		{object}	calsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/events/{id}/attendance [put].
func (h *AttendanceHandler) HandleSet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	eventID := r.PathValue("id")

	var req calsdk.SetAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidRequest(w, "Invalid JSON body")
		return
	}

	err := h.AttendanceService.Set(ctx, caller(r), eventID, domain.AttendanceStatus(req.Status))
	if err != nil {
		var verr *service.ValidationError
		switch {
		case errors.As(err, &verr):
			writeValidationError(w, verr)
		case errors.Is(err, store.ErrNotFound):
			writeEventNotFound(w)
		default:
			log.Error("failed to set attendance", "error", err, "event_id", eventID)
			writeServerError(w, "Failed to record attendance")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleList godoc
//
//	@Summary		List Attendance Endpoint
//	@Description	Returns all recorded attendance rows for an event.
//	@Tags			Attendance
//	@Produce		json
//	@Param			id	path		string					true	"event ID"
//	@Success		200	{array}		calsdk.AttendanceRow	"username, status rows"
//	@Failure		401	{object}	calsdk.ErrorResponse	"missing or invalid token"
//	@Failure		404	{object}	calsdk.ErrorResponse	"unknown event"
//	@Failure		500	{object}	calsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/events/{id}/attendance [get].
func (h *AttendanceHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	eventID := r.PathValue("id")

	rows, err := h.AttendanceService.List(ctx, eventID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeEventNotFound(w)
			return
		}
		log.Error("failed to list attendance", "error", err, "event_id", eventID)
		writeServerError(w, "Failed to list attendance")
		return
	}

	out := make([]calsdk.AttendanceRow, len(rows))
	for i, a := range rows {
		out[i] = calsdk.AttendanceRow{
			Username: a.Username,
			Status:   string(a.Status),
		}
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

func writeEventNotFound(w http.ResponseWriter) {
	httpx.WriteJSON(w, http.StatusNotFound, calsdk.ErrorResponse{
		Error:            calsdk.ErrorCodeNotFound,
		ErrorDescription: "Event not found",
	})
}
