package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/borgstromhq/borgcal/internal/calendar/domain"
	"github.com/borgstromhq/borgcal/internal/calendar/service"
	"github.com/borgstromhq/borgcal/pkg/calsdk"
	"github.com/borgstromhq/borgcal/pkg/httpx"
	"github.com/borgstromhq/borgcal/pkg/slogx"
)

type EventsHandler struct {
	EventService    *service.EventService
	ScheduleService *service.ScheduleService
}

// HandleList godoc
//
//	@Summary		List Events Endpoint
//	@Description	Returns the caller's chronological list view: visible events partitioned
//	@Description	into today / future / past by the caller's local date, timestamps projected
//	@Description	into the caller's timezone.
//	@Tags			Events
//	@Produce		json
//	@Success		200	{array}		calsdk.EventView		"ranked event views"
//	@Failure		401	{object}	calsdk.ErrorResponse	"missing or invalid token"
//	@Failure		500	{object}	calsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/events [get].
func (h *EventsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	viewer := caller(r)

	events, err := h.EventService.List(ctx)
	if err != nil {
		log.Error("failed to list events", "error", err)
		writeServerError(w, "Failed to list events")
		return
	}

	ranked, err := h.ScheduleService.RankVisible(events, viewer)
	if err != nil {
		log.Error("failed to rank events", "error", err, "viewer", viewer.Username)
		writeServerError(w, "Failed to build event list")
		return
	}

	views := make([]calsdk.EventView, len(ranked))
	for i, re := range ranked {
		views[i] = eventView(re)
	}
	httpx.WriteJSON(w, http.StatusOK, views)
}

// HandleCreate godoc
//
//	@Summary		Create Event Endpoint
//	@Description	Creates an event owned by the caller. Start and end are absolute RFC 3339
//	@Description	instants; the creator's timezone is recorded from the session. A recurrence
//	@Description	rule (RRULE string) makes the event a recurring template.
//	@Tags			Events
//	@Accept			json
//	@Produce		json
//	@Param			request	body		calsdk.CreateEventRequest	true	"event fields"
//	@Success		201		{object}	calsdk.EventView			"created event, projected for the creator"
//	@Failure		400		{object}	calsdk.ErrorResponse		"error, error_description"
//	@Failure		401		{object}	calsdk.ErrorResponse		"missing or invalid token"
//	@Failure		500		{object}	calsdk.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/events [post].
func (h *EventsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	creator := caller(r)

	var req calsdk.CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidRequest(w, "Invalid JSON body")
		return
	}

	event, err := h.EventService.Create(ctx, creator, service.CreateEventInput{
		Title:       req.Title,
		Subject:     domain.Subject(req.Subject),
		Description: req.Description,
		Start:       req.Start,
		End:         req.End,
		IsPrivate:   req.IsPrivate,
		Recurrence:  req.Recurrence,
	})
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			writeValidationError(w, verr)
			return
		}
		log.Error("failed to create event", "error", err)
		writeServerError(w, "Failed to create event")
		return
	}

	ranked, err := h.ScheduleService.RankVisible([]domain.Event{event}, creator)
	if err != nil || len(ranked) != 1 {
		log.Error("failed to project created event", "error", err, "event_id", event.ID)
		writeServerError(w, "Failed to project created event")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, eventView(ranked[0]))
}
