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

type SignUpHandler struct {
	CredentialService *service.CredentialService
}

// ServeHTTP godoc
//
//	@Summary		Create Account Endpoint
//	@Description	Self-service signup. New accounts always get the "user" role; the timezone is an optional IANA zone name defaulting to UTC.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		calsdk.SignUpRequest	true	"username, password, optional timezone"
//	@Success		201		{object}	calsdk.SignUpResponse	"username, role, timezone"
//	@Failure		400		{object}	calsdk.ErrorResponse	"error, error_description"
//	@Failure		409		{object}	calsdk.ErrorResponse	"username already taken"
//	@Failure		500		{object}	calsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/auth/signup [post].
func (h *SignUpHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req calsdk.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidRequest(w, "Invalid JSON body")
		return
	}

	user, err := h.CredentialService.SignUp(ctx, req.Username, req.Password, req.Timezone)
	if err != nil {
		var verr *service.ValidationError
		switch {
		case errors.As(err, &verr):
			writeValidationError(w, verr)
		case errors.Is(err, service.ErrUsernameTaken):
			httpx.WriteJSON(w, http.StatusConflict, calsdk.ErrorResponse{
				Error:            calsdk.ErrorCodeUsernameTaken,
				ErrorDescription: "Username is already taken",
			})
		default:
			log.Error("signup failed", "error", err)
			writeServerError(w, "Failed to create account")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, calsdk.SignUpResponse{
		Username: user.Username,
		Role:     string(user.Role),
		Timezone: user.Timezone,
	})
}
