package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/borgstromhq/borgcal/internal/calendar/service"
	"github.com/borgstromhq/borgcal/pkg/calsdk"
	"github.com/borgstromhq/borgcal/pkg/httpx"
	"github.com/borgstromhq/borgcal/pkg/jwtx"
	"github.com/borgstromhq/borgcal/pkg/slogx"
)

type LoginHandler struct {
	CredentialService *service.CredentialService
	Codec             *jwtx.Codec
	Issuer            string
	TokenTTL          time.Duration
}

// ServeHTTP godoc
//
//	@Summary		Login Endpoint
//	@Description	Verifies a username/password pair and mints a Bearer session token.
//	@Description	Unknown usernames and wrong passwords return the same uniform error.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		calsdk.LoginRequest		true	"username, password"
//	@Success		200		{object}	calsdk.TokenResponse	"access_token, token_type, expires_in"
//	@Failure		400		{object}	calsdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	calsdk.ErrorResponse	"invalid credentials"
//	@Failure		500		{object}	calsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req calsdk.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidRequest(w, "Invalid JSON body")
		return
	}

	uc, err := h.CredentialService.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			httpx.WriteJSON(w, http.StatusUnauthorized, calsdk.ErrorResponse{
				Error:            calsdk.ErrorCodeInvalidCredentials,
				ErrorDescription: "Invalid username or password",
			})
			return
		}
		log.Error("login failed", "error", err)
		writeServerError(w, "Failed to authenticate")
		return
	}

	ttl := h.TokenTTL
	if ttl <= 0 {
		ttl = jwtx.DefaultSessionTTL
	}

	claims := jwtx.NewSessionClaims(
		uc.Username, string(uc.Role), uc.Timezone,
		h.Issuer, ttl, time.Now(),
	)
	token, err := h.Codec.Sign(claims)
	if err != nil {
		log.Error("session token signing failed", "error", err)
		writeServerError(w, "Failed to issue session token")
		return
	}

	log.Info("user logged in", "username", uc.Username)
	httpx.WriteJSON(w, http.StatusOK, calsdk.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int(ttl.Seconds()),
	})
}
