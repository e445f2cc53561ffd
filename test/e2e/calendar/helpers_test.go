package calendar_test

import (
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	httpapi "github.com/borgstromhq/borgcal/internal/calendar/http"
	"github.com/borgstromhq/borgcal/internal/calendar/service"
	"github.com/borgstromhq/borgcal/internal/calendar/store/drivers/sqlite"
	"github.com/borgstromhq/borgcal/pkg/calsdk"
	"github.com/borgstromhq/borgcal/pkg/cryptox"
	"github.com/borgstromhq/borgcal/pkg/httpx"
	"github.com/borgstromhq/borgcal/pkg/jwtx"
	"github.com/borgstromhq/borgcal/pkg/slogx"
	"github.com/stretchr/testify/require"
)

/*
 * Common helpers for calendar service end-to-end tests. The full HTTP stack
 * (router, middleware, services, sqlite store) runs in-process behind an
 * httptest server and is exercised through the calsdk client.
 */

const (
	testIssuer    = "borgcal-test"
	adminUsername = "Admin"
	adminPassword = "Admin"
)

// TestMain raises the shared rate limit profiles so functional tests don't
// trip them; the rate limit test builds its own tightened server.
func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "borgcal-e2e")
	if err != nil {
		os.Exit(1)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))

	generous := httpx.RateLimitConfig{
		RequestsPerWindow: 10000,
		Window:            time.Minute,
		Burst:             10000,
	}
	httpx.StrictLimit = generous
	httpx.ModerateLimit = generous
	httpx.LenientLimit = generous

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

// newTestServer boots the whole service in-process: migrated in-memory
// store, seeded admin, ephemeral signing key, full router with middleware.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	codec, err := jwtx.NewCodec(testIssuer)
	require.NoError(t, err)

	logger := slogx.New(slogx.Config{
		Service: "calendar-service",
		Version: "test",
		Env:     "test",
		Level:   "error",
		Format:  "text",
	})

	router := httpapi.NewRouter(codec, testIssuer, time.Hour, "test", st, logger)
	router.CredentialService = &service.CredentialService{Store: st}
	router.EventService = &service.EventService{Store: st}
	router.AttendanceService = &service.AttendanceService{Store: st}
	router.ScheduleService = &service.ScheduleService{}
	router.ApplyRoutes()

	bootstrap := &service.BootstrapService{
		Store:         st,
		AdminUsername: adminUsername,
		AdminPassword: adminPassword,
	}
	_, err = bootstrap.Seed(context.Background())
	require.NoError(t, err)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

// signupAndLogin creates an account and returns a logged-in client for it.
func signupAndLogin(t *testing.T, srv *httptest.Server, username, timezone string) *calsdk.Client {
	t.Helper()
	ctx := context.Background()

	client := calsdk.New(srv.URL)
	_, err := client.SignUp(ctx, calsdk.SignUpRequest{
		Username: username,
		Password: "password-" + username,
		Timezone: timezone,
	})
	require.NoError(t, err)

	_, err = client.Login(ctx, username, "password-"+username)
	require.NoError(t, err)
	return client
}

// loginAdmin returns a client logged in as the seeded administrator.
func loginAdmin(t *testing.T, srv *httptest.Server) *calsdk.Client {
	t.Helper()

	client := calsdk.New(srv.URL)
	_, err := client.Login(context.Background(), adminUsername, adminPassword)
	require.NoError(t, err)
	return client
}

// createEvent is shorthand for a one-hour event at the given start.
func createEvent(t *testing.T, client *calsdk.Client, title string, start time.Time, private bool) calsdk.EventView {
	t.Helper()

	view, err := client.CreateEvent(context.Background(), calsdk.CreateEventRequest{
		Title:     title,
		Subject:   "Social Event",
		Start:     start,
		End:       start.Add(time.Hour),
		IsPrivate: private,
	})
	require.NoError(t, err)
	return view
}
