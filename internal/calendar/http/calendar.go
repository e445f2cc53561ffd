package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/borgstromhq/borgcal/internal/calendar/service"
	"github.com/borgstromhq/borgcal/pkg/calsdk"
	"github.com/borgstromhq/borgcal/pkg/httpx"
	"github.com/borgstromhq/borgcal/pkg/slogx"
)

type CalendarHandler struct {
	EventService    *service.EventService
	ScheduleService *service.ScheduleService
}

// HandleView godoc
//
//	@Summary		Calendar View Endpoint
//	@Description	Returns visible events shaped for a calendar renderer: creator-annotated
//	@Description	titles, subject colors, and the recurrence rule attached verbatim to the
//	@Description	template occurrence. Recurring events are NOT expanded here.
//	@Tags			Calendar
//	@Produce		json
//	@Success		200	{array}		calsdk.CalendarEvent	"render-ready entries"
//	@Failure		401	{object}	calsdk.ErrorResponse	"missing or invalid token"
//	@Failure		500	{object}	calsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/calendar [get].
func (h *CalendarHandler) HandleView(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	viewer := caller(r)

	events, err := h.EventService.List(ctx)
	if err != nil {
		log.Error("failed to list events", "error", err)
		writeServerError(w, "Failed to build calendar")
		return
	}

	entries, err := h.ScheduleService.CalendarView(events, viewer)
	if err != nil {
		log.Error("failed to build calendar view", "error", err, "viewer", viewer.Username)
		writeServerError(w, "Failed to build calendar")
		return
	}

	out := make([]calsdk.CalendarEvent, len(entries))
	for i, e := range entries {
		out[i] = calsdk.CalendarEvent{
			ID:              e.ID,
			Title:           e.Title,
			Start:           e.Start.Format(service.LocalTimeLayout),
			End:             e.End.Format(service.LocalTimeLayout),
			RRule:           e.RRule,
			BackgroundColor: e.Color,
			BorderColor:     e.Color,
		}
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleOccurrences godoc
//
//	@Summary		Occurrences Endpoint
//	@Description	Expands visible events into concrete instances inside [from, to].
//	@Description	Recurring templates expand via their RRULE in the creator's timezone;
//	@Description	results are projected into the caller's timezone.
//	@Tags			Calendar
//	@Produce		json
//	@Param			from	query		string					true	"window start, RFC 3339"
//	@Param			to		query		string					true	"window end, RFC 3339"
//	@Success		200		{array}		calsdk.OccurrenceView	"expanded instances, ascending by start"
//	@Failure		400		{object}	calsdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	calsdk.ErrorResponse	"missing or invalid token"
//	@Failure		500		{object}	calsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/calendar/occurrences [get].
func (h *CalendarHandler) HandleOccurrences(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	viewer := caller(r)

	from, err := time.Parse(time.RFC3339, r.URL.Query().Get("from"))
	if err != nil {
		writeInvalidRequest(w, "from must be an RFC 3339 timestamp")
		return
	}
	to, err := time.Parse(time.RFC3339, r.URL.Query().Get("to"))
	if err != nil {
		writeInvalidRequest(w, "to must be an RFC 3339 timestamp")
		return
	}

	events, err := h.EventService.List(ctx)
	if err != nil {
		log.Error("failed to list events", "error", err)
		writeServerError(w, "Failed to expand occurrences")
		return
	}

	occs, err := h.ScheduleService.Occurrences(events, viewer, from, to)
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			writeValidationError(w, verr)
			return
		}
		log.Error("failed to expand occurrences", "error", err, "viewer", viewer.Username)
		writeServerError(w, "Failed to expand occurrences")
		return
	}

	out := make([]calsdk.OccurrenceView, len(occs))
	for i, o := range occs {
		out[i] = calsdk.OccurrenceView{
			EventID:   o.EventID,
			Title:     o.Title,
			Subject:   string(o.Subject),
			CreatedBy: o.CreatedBy,
			Start:     o.Start.Format(service.LocalTimeLayout),
			End:       o.End.Format(service.LocalTimeLayout),
			Recurring: o.Recurring,
		}
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}
