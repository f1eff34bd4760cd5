// SPDX-License-Identifier: MIT

package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/quantik/logger"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Job states reported by the job service.
const (
	JobQueued    = "queued"
	JobRunning   = "running"
	JobCompleted = "completed"
	JobFailed    = "failed"
	JobCancelled = "cancelled"
)

// JobRequest is the body of POST /jobs.
type JobRequest struct {
	Backend string `json:"backend"`
	Shots   int    `json:"shots"`
	Program string `json:"program"`
}

// JobStatus is the body of GET /jobs/{id}.
type JobStatus struct {
	ID     string         `json:"id"`
	Status string         `json:"status"`
	Counts map[string]int `json:"counts,omitempty"`
	Error  string         `json:"error,omitempty"`
}

type backendsResponse struct {
	Backends []BackendInfo `json:"backends"`
}

// maxErrorBody bounds how much of an error response is quoted in errors.
const maxErrorBody = 512

// Client speaks the job service's JSON protocol with bearer-token auth.
// Every request first waits on a shared rate limiter. Safe for concurrent use.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	limiter *rate.Limiter
	log     *zap.SugaredLogger
}

// NewClient returns a client for baseURL. requestsPerSecond ≤ 0 disables
// pacing; a nil httpClient uses http.DefaultClient and a nil log discards.
func NewClient(baseURL, token string, requestsPerSecond float64, httpClient *http.Client, log *zap.SugaredLogger) (*Client, error) {
	if baseURL == "" {
		return nil, errors.WithHint(
			errors.Wrap(ErrBackendUnavailable, "no job service URL"),
			"set gateway.url or QUANTIK_GATEWAY_URL, or run with --simulated")
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	limit := rate.Inf
	if requestsPerSecond > 0 {
		limit = rate.Limit(requestsPerSecond)
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    httpClient,
		limiter: rate.NewLimiter(limit, 1),
		log:     log,
	}, nil
}

// Backends lists the backends offered by the service (GET /backends).
func (c *Client) Backends(ctx context.Context) ([]BackendInfo, error) {
	var out backendsResponse
	if err := c.do(ctx, http.MethodGet, "/backends", nil, &out); err != nil {
		return nil, err
	}

	return out.Backends, nil
}

// SubmitJob posts req and returns the new job ID (POST /jobs).
func (c *Client) SubmitJob(ctx context.Context, req JobRequest) (string, error) {
	var out JobStatus
	if err := c.do(ctx, http.MethodPost, "/jobs", req, &out); err != nil {
		return "", err
	}
	if out.ID == "" {
		return "", errors.Wrap(ErrBackendUnavailable, "job service returned no job id")
	}

	return out.ID, nil
}

// Job fetches the current status of job id (GET /jobs/{id}).
func (c *Client) Job(ctx context.Context, id string) (*JobStatus, error) {
	var out JobStatus
	if err := c.do(ctx, http.MethodGet, "/jobs/"+id, nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// do performs one JSON request and maps failures onto the package sentinels:
// transport errors and 5xx become ErrBackendUnavailable, 401/403 become
// ErrAuthenticationFailed and other non-2xx become ErrRequestRejected.
// Context errors are returned as is.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return errors.Wrapf(err, "%s %s", method, path)
	}

	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return errors.Wrapf(err, "encode %s %s", method, path)
		}
		body = bytes.NewReader(buf)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, path)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	c.log.Debugw("gateway request", "method", method, logger.FieldURL, req.URL.String())
	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return errors.Wrapf(ctxErr, "%s %s", method, path)
		}
		return errors.WithHint(
			errors.Mark(errors.Wrapf(err, "%s %s", method, path), ErrBackendUnavailable),
			"check that gateway.url points at a reachable job service")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(method, path, resp)
	}
	if out == nil {
		return nil
	}
	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Mark(errors.Wrapf(err, "decode %s %s", method, path), ErrBackendUnavailable)
	}

	return nil
}

func statusError(method, path string, resp *http.Response) error {
	snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	msg := fmt.Sprintf("%s %s: status %d", method, path, resp.StatusCode)
	if s := strings.TrimSpace(string(snippet)); s != "" {
		msg += ": " + s
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return errors.WithHint(errors.Wrap(ErrAuthenticationFailed, msg),
			"check gateway.token or the IBM_QUANTUM_TOKEN environment variable")
	case resp.StatusCode >= 500:
		return errors.Wrap(ErrBackendUnavailable, msg)
	default:
		return errors.Wrap(ErrRequestRejected, msg)
	}
}
