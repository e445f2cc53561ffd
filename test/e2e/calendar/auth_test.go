package calendar_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/borgstromhq/borgcal/pkg/calsdk"
	"github.com/stretchr/testify/require"
)

func TestSignupAndLoginFlow(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	client := calsdk.New(srv.URL)

	resp, err := client.SignUp(ctx, calsdk.SignUpRequest{
		Username: "alice",
		Password: "hunter22",
		Timezone: "Australia/Sydney",
	})
	require.NoError(t, err)
	require.Equal(t, "alice", resp.Username)
	require.Equal(t, "user", resp.Role)
	require.Equal(t, "Australia/Sydney", resp.Timezone)

	token, err := client.Login(ctx, "alice", "hunter22")
	require.NoError(t, err)
	require.NotEmpty(t, token.AccessToken)
	require.Equal(t, "Bearer", token.TokenType)
	require.Equal(t, 3600, token.ExpiresIn)

	// The stored token authenticates follow-up calls.
	events, err := client.ListEvents(ctx)
	require.NoError(t, err)
	require.Empty(t, events)
}

func TestSignupRejectsDuplicatesAndBadInput(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()
	client := calsdk.New(srv.URL)

	_, err := client.SignUp(ctx, calsdk.SignUpRequest{Username: "alice", Password: "pw"})
	require.NoError(t, err)

	var apiErr *calsdk.APIError

	_, err = client.SignUp(ctx, calsdk.SignUpRequest{Username: "alice", Password: "other"})
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusConflict, apiErr.StatusCode)
	require.Equal(t, calsdk.ErrorCodeUsernameTaken, apiErr.Code)

	_, err = client.SignUp(ctx, calsdk.SignUpRequest{Username: "bob", Password: "pw", Timezone: "Nowhere/Void"})
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	require.Equal(t, calsdk.ErrorCodeValidation, apiErr.Code)
}

func TestLoginFailureIsUniform(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()
	client := calsdk.New(srv.URL)

	_, err := client.SignUp(ctx, calsdk.SignUpRequest{Username: "alice", Password: "pw"})
	require.NoError(t, err)

	var wrongPassword, unknownUser *calsdk.APIError

	_, err = client.Login(ctx, "alice", "wrong")
	require.ErrorAs(t, err, &wrongPassword)

	_, err = client.Login(ctx, "nobody", "wrong")
	require.ErrorAs(t, err, &unknownUser)

	// Same status, same code, same description for both failure modes.
	require.Equal(t, http.StatusUnauthorized, wrongPassword.StatusCode)
	require.Equal(t, wrongPassword.StatusCode, unknownUser.StatusCode)
	require.Equal(t, wrongPassword.Code, unknownUser.Code)
	require.Equal(t, wrongPassword.Description, unknownUser.Description)
}

func TestProtectedEndpointsRequireToken(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	anonymous := calsdk.New(srv.URL)
	_, err := anonymous.ListEvents(ctx)

	var apiErr *calsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)

	tampered := calsdk.New(srv.URL)
	tampered.SetToken("not-a-real-token")
	_, err = tampered.ListEvents(ctx)
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}

func TestSeededAdminCanLogin(t *testing.T) {
	srv := newTestServer(t)
	admin := loginAdmin(t, srv)

	events, err := admin.ListEvents(context.Background())
	require.NoError(t, err)
	require.Empty(t, events)
}
