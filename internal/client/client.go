// Package client talks to the peorisk HTTP API for the terminal wizard.
package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	api "peorisk/internal/api"
	"peorisk/internal/domain"
)

// StatusError is returned for non-2xx responses.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned %d", e.Code)
	}
	return fmt.Sprintf("server returned %d: %s", e.Code, e.Message)
}

type SubmitResult struct {
	ID          int64     `json:"id"`
	SubmittedAt time.Time `json:"submittedAt"`
	Message     string    `json:"message"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Questions fetches the committed question set.
func (c *Client) Questions(ctx context.Context) ([]domain.Question, error) {
	var qs []domain.Question
	if err := c.do(ctx, http.MethodGet, "/api/questions", nil, &qs); err != nil {
		return nil, err
	}
	return qs, nil
}

// Lookup calls the company registry stand-in.
func (c *Client) Lookup(ctx context.Context, name, state string) (domain.LookupRecord, error) {
	q := url.Values{"name": {name}, "state": {state}}
	var rec domain.LookupRecord
	if err := c.do(ctx, http.MethodGet, "/api/company-lookup?"+q.Encode(), nil, &rec); err != nil {
		return domain.LookupRecord{}, err
	}
	return rec, nil
}

// Submit posts the answers once; there is no retry.
func (c *Client) Submit(ctx context.Context, answers domain.Answers) (SubmitResult, error) {
	var res SubmitResult
	body := api.SubmitAssessmentJSONRequestBody{Answers: answers}
	if err := c.do(ctx, http.MethodPost, "/api/assessments", body, &res); err != nil {
		return SubmitResult{}, err
	}
	return res, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var msg api.ErrorBody
		_ = json.Unmarshal(data, &msg)
		return &StatusError{Code: resp.StatusCode, Message: msg.Message}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
