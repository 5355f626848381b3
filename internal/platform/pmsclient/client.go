// Package pmsclient is the HTTP implementation of the appraisal task
// repository. It speaks plain JSON REST against the PMS backend and maps
// server-side rejections onto the domain's error types so callers can tell
// field-level validation failures from transport faults.
package pmsclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"bizsuite/internal/domain/appraisal"
)

type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client, mainly for tests.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.http = httpClient }
}

func New(baseURL, token string, opts ...Option) *Client {
	client := &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

func (c *Client) ListTasksForEmployee(ctx context.Context, employeeID string) ([]appraisal.Task, error) {
	if employeeID == "" {
		return nil, &appraisal.RepositoryError{Status: http.StatusUnauthorized, Message: "employee id required"}
	}
	var tasks []appraisal.Task
	path := "/api/employees/" + url.PathEscape(employeeID) + "/tasks"
	if err := c.get(ctx, path, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (c *Client) ListSubmissions(ctx context.Context, taskID string) ([]appraisal.ProgressSubmission, error) {
	var submissions []appraisal.ProgressSubmission
	path := "/api/tasks/" + url.PathEscape(taskID) + "/submissions"
	if err := c.get(ctx, path, &submissions); err != nil {
		return nil, err
	}
	return submissions, nil
}

func (c *Client) WriteSubmission(ctx context.Context, payload appraisal.Payload) (appraisal.ProgressSubmission, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return appraisal.ProgressSubmission{}, &appraisal.RepositoryError{Message: "encode payload: " + err.Error()}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/submissions", bytes.NewReader(body))
	if err != nil {
		return appraisal.ProgressSubmission{}, &appraisal.RepositoryError{Message: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return appraisal.ProgressSubmission{}, &appraisal.RepositoryError{Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return appraisal.ProgressSubmission{}, decodeError(resp)
	}

	var created appraisal.ProgressSubmission
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return appraisal.ProgressSubmission{}, &appraisal.RepositoryError{Message: "decode response: " + err.Error()}
	}
	return created, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return &appraisal.RepositoryError{Message: err.Error()}
	}
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return &appraisal.RepositoryError{Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return decodeError(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &appraisal.RepositoryError{Message: "decode response: " + err.Error()}
	}
	return nil
}

func (c *Client) authorize(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}

// decodeError maps an error response onto the domain error types. A body
// carrying a field->message map becomes a ValidationError; everything else
// is a RepositoryError with whatever message the server gave.
func decodeError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64*1024))

	var structured struct {
		Message string            `json:"message"`
		Errors  map[string]string `json:"errors"`
	}
	if err := json.Unmarshal(raw, &structured); err == nil {
		if len(structured.Errors) > 0 {
			return &appraisal.ValidationError{Fields: structured.Errors}
		}
		if structured.Message != "" {
			return &appraisal.RepositoryError{Status: resp.StatusCode, Message: structured.Message}
		}
	}
	return &appraisal.RepositoryError{
		Status:  resp.StatusCode,
		Message: fmt.Sprintf("unexpected status %d", resp.StatusCode),
	}
}
