package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/borgstromhq/borgcal/internal/calendar/service"
	"github.com/borgstromhq/borgcal/pkg/calsdk"
	"github.com/borgstromhq/borgcal/pkg/httpx"
	"github.com/borgstromhq/borgcal/pkg/slogx"
)

// EventMutationsHandler covers the ownership-guarded mutations. Both
// endpoints share the silent-no-op contract: an event the caller may not
// touch (or that does not exist) yields affected == 0 and a 403, with no
// hint whether the event exists.
type EventMutationsHandler struct {
	EventService *service.EventService
}

// HandleUpdateTime godoc
//
//	@Summary		Update Event Time Endpoint
//	@Description	Shifts an event's start/end. Only the creator or an admin can move an
//	@Description	event; anyone else gets a 403 with affected=0 and no row changes.
//	@Tags			Events
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"event ID"
//	@Param			request	body		calsdk.UpdateEventTimeRequest	true	"new start and end"
//	@Success		200		{object}	calsdk.MutationResult			"affected row count"
//	@Failure		400		{object}	calsdk.ErrorResponse			"error, error_description"
//	@Failure		401		{object}	calsdk.ErrorResponse			"missing or invalid token"
//	@Failure		403		{object}	calsdk.MutationResult			"not owner and not admin, affected=0"
//	@Failure		500		{object}	calsdk.ErrorResponse			"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/events/{id}/time [patch].
func (h *EventMutationsHandler) HandleUpdateTime(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	requester := caller(r)
	eventID := r.PathValue("id")

	var req calsdk.UpdateEventTimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidRequest(w, "Invalid JSON body")
		return
	}

	affected, err := h.EventService.UpdateTime(ctx, requester, eventID, req.Start, req.End)
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			writeValidationError(w, verr)
			return
		}
		log.Error("failed to update event time", "error", err, "event_id", eventID)
		writeServerError(w, "Failed to update event time")
		return
	}

	writeMutationResult(w, affected)
}

// HandleDelete godoc
//
//	@Summary		Delete Event Endpoint
//	@Description	Removes an event and its attendance rows. Same ownership contract as the
//	@Description	time update: non-owners get a 403 with affected=0.
//	@Tags			Events
//	@Produce		json
//	@Param			id	path		string					true	"event ID"
//	@Success		200	{object}	calsdk.MutationResult	"affected row count"
//	@Failure		401	{object}	calsdk.ErrorResponse	"missing or invalid token"
//	@Failure		403	{object}	calsdk.MutationResult	"not owner and not admin, affected=0"
//	@Failure		500	{object}	calsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/events/{id} [delete].
func (h *EventMutationsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	requester := caller(r)
	eventID := r.PathValue("id")

	affected, err := h.EventService.Delete(ctx, requester, eventID)
	if err != nil {
		log.Error("failed to delete event", "error", err, "event_id", eventID)
		writeServerError(w, "Failed to delete event")
		return
	}

	writeMutationResult(w, affected)
}

func writeMutationResult(w http.ResponseWriter, affected int64) {
	status := http.StatusOK
	if affected == 0 {
		status = http.StatusForbidden
	}
	httpx.WriteJSON(w, status, calsdk.MutationResult{Affected: affected})
}
