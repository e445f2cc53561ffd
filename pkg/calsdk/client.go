package calsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client talks to a calendar service instance. Unauthenticated operations
// (SignUp, Login) work immediately; Login stores the session token on the
// client for the authenticated calls.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	token string
}

// New creates a client for the given base URL.
func New(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// SetToken installs a session token obtained out of band.
func (c *Client) SetToken(token string) { c.token = token }

// Token returns the current session token, "" when not logged in.
func (c *Client) Token() string { return c.token }

// SignUp creates a new account.
func (c *Client) SignUp(ctx context.Context, req SignUpRequest) (SignUpResponse, error) {
	var resp SignUpResponse
	err := c.doJSON(ctx, http.MethodPost, "/v1/auth/signup", req, &resp, http.StatusCreated)
	return resp, err
}

// Login authenticates and stores the returned session token on the client.
func (c *Client) Login(ctx context.Context, username, password string) (TokenResponse, error) {
	var resp TokenResponse
	err := c.doJSON(ctx, http.MethodPost, "/v1/auth/login",
		LoginRequest{Username: username, Password: password}, &resp, http.StatusOK)
	if err != nil {
		return TokenResponse{}, err
	}
	c.token = resp.AccessToken
	return resp, nil
}

// ListEvents returns the viewer's ranked chronological list view.
func (c *Client) ListEvents(ctx context.Context) ([]EventView, error) {
	var resp []EventView
	err := c.doJSON(ctx, http.MethodGet, "/v1/events", nil, &resp, http.StatusOK)
	return resp, err
}

// CreateEvent creates a new event owned by the logged-in user.
func (c *Client) CreateEvent(ctx context.Context, req CreateEventRequest) (EventView, error) {
	var resp EventView
	err := c.doJSON(ctx, http.MethodPost, "/v1/events", req, &resp, http.StatusCreated)
	return resp, err
}

// UpdateEventTime shifts an event's start/end. Affected == 0 reports the
// silent no-op for events the caller does not own (or that do not exist);
// the server signals that case with a 403 carrying the same body.
func (c *Client) UpdateEventTime(ctx context.Context, eventID string, start, end time.Time) (MutationResult, error) {
	return c.doMutation(ctx, http.MethodPatch,
		"/v1/events/"+url.PathEscape(eventID)+"/time",
		UpdateEventTimeRequest{Start: start, End: end})
}

// DeleteEvent removes an event under the same ownership contract as
// UpdateEventTime.
func (c *Client) DeleteEvent(ctx context.Context, eventID string) (MutationResult, error) {
	return c.doMutation(ctx, http.MethodDelete,
		"/v1/events/"+url.PathEscape(eventID), nil)
}

// SetAttendance upserts the logged-in user's status on an event.
func (c *Client) SetAttendance(ctx context.Context, eventID, status string) error {
	return c.doJSON(ctx, http.MethodPut,
		"/v1/events/"+url.PathEscape(eventID)+"/attendance",
		SetAttendanceRequest{Status: status}, nil, http.StatusNoContent)
}

// ListAttendance returns all attendance rows for an event.
func (c *Client) ListAttendance(ctx context.Context, eventID string) ([]AttendanceRow, error) {
	var resp []AttendanceRow
	err := c.doJSON(ctx, http.MethodGet,
		"/v1/events/"+url.PathEscape(eventID)+"/attendance", nil, &resp, http.StatusOK)
	return resp, err
}

// Calendar returns the render-shaped calendar view.
func (c *Client) Calendar(ctx context.Context) ([]CalendarEvent, error) {
	var resp []CalendarEvent
	err := c.doJSON(ctx, http.MethodGet, "/v1/calendar", nil, &resp, http.StatusOK)
	return resp, err
}

// Occurrences expands recurring events into concrete instances within
// [from, to].
func (c *Client) Occurrences(ctx context.Context, from, to time.Time) ([]OccurrenceView, error) {
	q := url.Values{}
	q.Set("from", from.Format(time.RFC3339))
	q.Set("to", to.Format(time.RFC3339))

	var resp []OccurrenceView
	err := c.doJSON(ctx, http.MethodGet, "/v1/calendar/occurrences?"+q.Encode(), nil, &resp, http.StatusOK)
	return resp, err
}

// Readyz reports whether the service and its store are healthy.
func (c *Client) Readyz(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodGet, "/readyz", nil, nil, http.StatusOK)
}

// doMutation performs an ownership-guarded mutation. Both 200 and 403 carry
// a MutationResult body; any other status maps to *APIError.
func (c *Client) doMutation(ctx context.Context, method, path string, body any) (MutationResult, error) {
	var resp MutationResult
	err := c.doJSON(ctx, method, path, body, &resp, http.StatusOK)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusForbidden {
			return MutationResult{Affected: 0}, nil
		}
		return MutationResult{}, err
	}
	return resp, nil
}

// doJSON performs a request with an optional JSON body, decoding the
// response into out when the expected status matches and mapping everything
// else to *APIError.
func (c *Client) doJSON(
	ctx context.Context,
	method, path string,
	body any,
	out any,
	expectedStatus int,
) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode != expectedStatus {
		return parseErrorResponse(resp.StatusCode, raw)
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
