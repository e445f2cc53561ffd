package http

import (
	"net/http"

	"github.com/borgstromhq/borgcal/internal/calendar/domain"
	"github.com/borgstromhq/borgcal/internal/calendar/service"
	"github.com/borgstromhq/borgcal/pkg/calsdk"
	"github.com/borgstromhq/borgcal/pkg/httpx"
)

// caller reconstructs the authenticated user context injected by
// httpx.AuthnMiddleware. Tokens minted before a timezone was set fall back
// to UTC.
func caller(r *http.Request) domain.UserContext {
	ctx := r.Context()

	tz := httpx.TimezoneFromContext(ctx)
	if tz == "" {
		tz = "UTC"
	}

	return domain.UserContext{
		Username: httpx.UsernameFromContext(ctx),
		Role:     domain.Role(httpx.RoleFromContext(ctx)),
		Timezone: tz,
	}
}

// eventView projects a ranked event into its wire shape, with instants
// rendered as local minute-precision strings.
func eventView(re service.RankedEvent) calsdk.EventView {
	return calsdk.EventView{
		ID:           re.ID,
		Title:        re.Title,
		Subject:      string(re.Subject),
		Description:  re.Description,
		Start:        re.LocalStart.Format(service.LocalTimeLayout),
		End:          re.LocalEnd.Format(service.LocalTimeLayout),
		Timezone:     re.Timezone,
		CreatedBy:    re.CreatedBy,
		IsPrivate:    re.IsPrivate,
		Recurrence:   re.Recurrence,
		SubjectColor: re.SubjectColor,
		Rank:         re.Rank,
	}
}

// writeValidationError maps a *service.ValidationError to a 400 response.
func writeValidationError(w http.ResponseWriter, verr *service.ValidationError) {
	httpx.WriteJSON(w, http.StatusBadRequest, calsdk.ErrorResponse{
		Error:            calsdk.ErrorCodeValidation,
		ErrorDescription: verr.Error(),
	})
}

func writeServerError(w http.ResponseWriter, desc string) {
	httpx.WriteJSON(w, http.StatusInternalServerError, calsdk.ErrorResponse{
		Error:            calsdk.ErrorCodeServerError,
		ErrorDescription: desc,
	})
}

func writeInvalidRequest(w http.ResponseWriter, desc string) {
	httpx.WriteJSON(w, http.StatusBadRequest, calsdk.ErrorResponse{
		Error:            calsdk.ErrorCodeInvalidRequest,
		ErrorDescription: desc,
	})
}
