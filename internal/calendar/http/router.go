package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/borgstromhq/borgcal/internal/calendar/service"
	"github.com/borgstromhq/borgcal/internal/calendar/store"
	"github.com/borgstromhq/borgcal/pkg/httpx"
	"github.com/borgstromhq/borgcal/pkg/jwtx"
	"github.com/borgstromhq/borgcal/pkg/slogx"

	_ "github.com/borgstromhq/borgcal/api/calendar" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	codec        *jwtx.Codec
	issuer       string
	tokenTTL     time.Duration
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store             store.Store
	CredentialService *service.CredentialService
	EventService      *service.EventService
	AttendanceService *service.AttendanceService
	ScheduleService   *service.ScheduleService
}

func NewRouter(
	codec *jwtx.Codec,
	issuer string,
	tokenTTL time.Duration,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		codec:        codec,
		issuer:       issuer,
		tokenTTL:     tokenTTL,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerEvents()
	r.registerAttendance()
	r.registerCalendar()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			BorgCal Calendar Service API
//	@version		0.1.0
//	@description	Multi-user calendar service with private events, per-user timezones, and
//	@description	recurring-event expansion. Sessions are EdDSA-signed JWTs minted by the
//	@description	login endpoint.
//
//	@contact.name				BorgstromHQ
//	@contact.url				https://github.com/borgstromhq/borgcal
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	// POST /signup - strict rate limit by IP (public account creation)
	signupHandler := &SignUpHandler{CredentialService: r.CredentialService}
	r.Mux.Handle("POST /v1/auth/signup",
		httpx.Chain(signupHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /login - strict rate limit by IP (authentication attempts)
	loginHandler := &LoginHandler{
		CredentialService: r.CredentialService,
		Codec:             r.codec,
		Issuer:            r.issuer,
		TokenTTL:          r.tokenTTL,
	}
	r.Mux.Handle("POST /v1/auth/login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerEvents() {
	h := &EventsHandler{
		EventService:    r.EventService,
		ScheduleService: r.ScheduleService,
	}
	mut := &EventMutationsHandler{EventService: r.EventService}

	// GET /events - lenient rate limit by user (the main read path)
	r.Mux.Handle("GET /v1/events",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.AuthnMiddleware(r.codec),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	// POST /events - moderate rate limit by user
	r.Mux.Handle("POST /v1/events",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			httpx.AuthnMiddleware(r.codec),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	// PATCH /events/{id}/time - moderate rate limit by user
	r.Mux.Handle("PATCH /v1/events/{id}/time",
		httpx.Chain(http.HandlerFunc(mut.HandleUpdateTime),
			httpx.AuthnMiddleware(r.codec),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	// DELETE /events/{id} - moderate rate limit by user
	r.Mux.Handle("DELETE /v1/events/{id}",
		httpx.Chain(http.HandlerFunc(mut.HandleDelete),
			httpx.AuthnMiddleware(r.codec),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerAttendance() {
	h := &AttendanceHandler{AttendanceService: r.AttendanceService}

	// PUT /events/{id}/attendance - moderate rate limit by user
	r.Mux.Handle("PUT /v1/events/{id}/attendance",
		httpx.Chain(http.HandlerFunc(h.HandleSet),
			httpx.AuthnMiddleware(r.codec),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	// GET /events/{id}/attendance - lenient rate limit by user
	r.Mux.Handle("GET /v1/events/{id}/attendance",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.AuthnMiddleware(r.codec),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerCalendar() {
	h := &CalendarHandler{
		EventService:    r.EventService,
		ScheduleService: r.ScheduleService,
	}

	// GET /calendar - lenient rate limit by user (renderer polls this)
	r.Mux.Handle("GET /v1/calendar",
		httpx.Chain(http.HandlerFunc(h.HandleView),
			httpx.AuthnMiddleware(r.codec),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	// GET /calendar/occurrences - moderate rate limit by user (expansion is pricier)
	r.Mux.Handle("GET /v1/calendar/occurrences",
		httpx.Chain(http.HandlerFunc(h.HandleOccurrences),
			httpx.AuthnMiddleware(r.codec),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - public rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}
