package api

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

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Client is the surface the UI talks to. The HTTP implementation below is
// the real one; tests substitute fakes.
type Client interface {
	FetchTags(ctx context.Context, filter, order string) (TagList, error)
	GetDueTask(ctx context.Context) (*TaskSettings, error)
	SubmitDueTask(ctx context.Context, settings TaskSettings) (TaskSettings, error)
	StartDueTaskOnce(ctx context.Context, settings TaskSettings) error
	DeleteDueTask(ctx context.Context, id string) error
	ChangePassword(ctx context.Context, current, next string) error
	GetEmailSettings(ctx context.Context) (EmailSettings, error)
	UpdateEmailSettings(ctx context.Context, settings EmailSettings) error
}

// StatusError is a non-2xx response from the server.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server returned %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("server returned %d", e.Status)
}

// HTTPClient talks JSON to the document server.
type HTTPClient struct {
	base  string
	token string
	hc    *http.Client
	log   zerolog.Logger
}

func NewHTTPClient(baseURL, token string, log zerolog.Logger) *HTTPClient {
	return &HTTPClient{
		base:  strings.TrimRight(baseURL, "/"),
		token: token,
		hc:    &http.Client{Timeout: 30 * time.Second},
		log:   log,
	}
}

func (c *HTTPClient) FetchTags(ctx context.Context, filter, order string) (TagList, error) {
	q := url.Values{}
	if filter != "" {
		q.Set("q", filter)
	}
	if order != "" {
		q.Set("sort", order)
	}
	path := "/api/v1/tags"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	var list TagList
	if err := c.do(ctx, http.MethodGet, path, nil, &list); err != nil {
		return TagList{}, err
	}
	return list, nil
}

// GetDueTask returns the account's reminder task, or nil when none has
// been created yet.
func (c *HTTPClient) GetDueTask(ctx context.Context) (*TaskSettings, error) {
	var settings TaskSettings
	err := c.do(ctx, http.MethodGet, "/api/v1/notification/duetask", nil, &settings)
	var se *StatusError
	if errors.As(err, &se) && se.Status == http.StatusNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// SubmitDueTask creates the task when its ID is empty and updates it
// otherwise. The response carries the persisted settings, including the
// server-assigned ID on create.
func (c *HTTPClient) SubmitDueTask(ctx context.Context, settings TaskSettings) (TaskSettings, error) {
	method := http.MethodPost
	path := "/api/v1/notification/duetask"
	if settings.ID != "" {
		method = http.MethodPut
		path += "/" + url.PathEscape(settings.ID)
	}
	var saved TaskSettings
	if err := c.do(ctx, method, path, settings, &saved); err != nil {
		return TaskSettings{}, err
	}
	return saved, nil
}

func (c *HTTPClient) StartDueTaskOnce(ctx context.Context, settings TaskSettings) error {
	return c.do(ctx, http.MethodPost, "/api/v1/notification/duetask/startonce", settings, nil)
}

func (c *HTTPClient) DeleteDueTask(ctx context.Context, id string) error {
	if id == "" {
		return errors.New("task id is empty")
	}
	return c.do(ctx, http.MethodDelete, "/api/v1/notification/duetask/"+url.PathEscape(id), nil, nil)
}

func (c *HTTPClient) ChangePassword(ctx context.Context, current, next string) error {
	body := struct {
		Current string `json:"currentPassword"`
		Next    string `json:"newPassword"`
	}{current, next}
	return c.do(ctx, http.MethodPost, "/api/v1/user/changepassword", body, nil)
}

func (c *HTTPClient) GetEmailSettings(ctx context.Context) (EmailSettings, error) {
	var settings EmailSettings
	if err := c.do(ctx, http.MethodGet, "/api/v1/user/emailsettings", nil, &settings); err != nil {
		return EmailSettings{}, err
	}
	return settings, nil
}

func (c *HTTPClient) UpdateEmailSettings(ctx context.Context, settings EmailSettings) error {
	return c.do(ctx, http.MethodPut, "/api/v1/user/emailsettings", settings, nil)
}

func (c *HTTPClient) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return err
	}
	reqID := uuid.NewString()
	req.Header.Set("X-Request-Id", reqID)
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		c.log.Error().Str("request_id", reqID).Str("method", method).Str("path", path).Err(err).Msg("request failed")
		return err
	}
	defer resp.Body.Close()

	c.log.Debug().
		Str("request_id", reqID).
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Status: resp.StatusCode, Message: readErrorMessage(resp.Body)}
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// readErrorMessage pulls a {"message": ...} body if the server sent one.
func readErrorMessage(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil {
		return ""
	}
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return strings.TrimSpace(string(data))
}
