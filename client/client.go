package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/askiep/askiep-api/internal/ai"
	appErrors "github.com/askiep/askiep-api/pkg/errors"
	"github.com/askiep/askiep-api/pkg/jobs"
)

// Local fallback keys, one JSON document each.
const (
	keyProfile    = "askiep_profile_v2"
	keyCompliance = "askiep_compliance_v2"
	keyProgress   = "askiep_progress_v2"
	keyComms      = "askiep_comms_v2"
	keyBehavior   = "askiep_behavior_v2"
	keyLetters    = "askiep_letters_v2"
	keyAnalysis   = "askiep_analyses_v2"
	keyDocuments  = "askiep_documents_v2"
)

// Options tunes per-call timeout and retry behaviour. Zero values take the
// defaults (3s, 2 retries, 500ms backoff); a negative MaxRetries disables
// retries entirely.
type Options struct {
	Timeout     time.Duration
	MaxRetries  int
	BackoffBase time.Duration
}

func (o *Options) withDefaults() Options {
	opts := Options{Timeout: 3 * time.Second, MaxRetries: 2, BackoffBase: 500 * time.Millisecond}
	if o == nil {
		return opts
	}
	if o.Timeout > 0 {
		opts.Timeout = o.Timeout
	}
	if o.MaxRetries > 0 {
		opts.MaxRetries = o.MaxRetries
	} else if o.MaxRetries < 0 {
		opts.MaxRetries = 0
	}
	if o.BackoffBase > 0 {
		opts.BackoffBase = o.BackoffBase
	}
	return opts
}

// Client is the data-access layer over the HTTP API. Every accessor prefers
// the remote API and degrades to the local store, so callers never branch
// on connectivity themselves.
type Client struct {
	baseURL string
	http    *http.Client
	opts    Options
	store   LocalStore
	gateway *ai.Gateway
	conn    *Connectivity
	sync    *jobs.Queue
	logger  *zap.Logger
}

// New builds a Client. gateway may be nil when direct analysis is not
// needed; conn receives health-check results.
func New(baseURL string, opts *Options, store LocalStore, gateway *ai.Gateway, conn *Connectivity, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	if conn == nil {
		conn = NewConnectivity()
	}
	if store == nil {
		store = NewFileStore("", logger)
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		opts:    (opts).withDefaults(),
		store:   store,
		gateway: gateway,
		conn:    conn,
		logger:  logger,
	}
	c.http = &http.Client{}
	c.sync = jobs.NewQueue("analysis-sync", c.syncAnalysis, jobs.QueueConfig{
		Workers:    1,
		BufferSize: 16,
		MaxRetries: 3,
		RetryDelay: 2 * time.Second,
		Logger:     logger,
	})
	c.sync.Start(context.Background())
	return c
}

// Close stops the background sync queue.
func (c *Client) Close() {
	c.sync.Stop()
}

// Connectivity returns the health-check hint shared with consumers.
func (c *Client) Connectivity() *Connectivity {
	return c.conn
}

// CheckHealth pings the server and records the outcome. The result is a
// hint only; accessors fall back on their own call outcome regardless.
func (c *Client) CheckHealth(ctx context.Context) bool {
	err := c.attempt(ctx, http.MethodGet, "/health", nil, nil)
	c.conn.record(err != nil)
	return err == nil
}

// do performs a request with retry. Only network failures and 5xx responses
// are retried, with doubling backoff; 4xx surfaces immediately.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "request not serialisable")
		}
	}

	backoff := c.opts.BackoffBase
	var lastErr error
	for attempt := 0; attempt <= c.opts.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
			}
			backoff *= 2
		}

		var reader io.Reader
		if payload != nil {
			reader = bytes.NewReader(payload)
		}
		err := c.attempt(ctx, method, path, reader, out)
		if err == nil {
			return nil
		}
		lastErr = err
		if !retriable(err) {
			return err
		}
		c.logger.Debug("request attempt failed",
			zap.String("method", method), zap.String("path", path),
			zap.Int("attempt", attempt+1), zap.Error(err))
	}
	return lastErr
}

// attempt performs a single timeout-bounded request.
func (c *Client) attempt(ctx context.Context, method, path string, body io.Reader, out interface{}) error {
	reqCtx, cancel := context.WithTimeout(ctx, c.opts.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeAPIError(resp)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func decodeAPIError(resp *http.Response) error {
	var body struct {
		Error string `json:"error"`
	}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	_ = json.Unmarshal(raw, &body)
	msg := body.Error
	if msg == "" {
		msg = fmt.Sprintf("request failed with status %d", resp.StatusCode)
	}
	return &appErrors.Error{Code: "API_ERROR", Status: resp.StatusCode, Message: msg}
}

// retriable classifies failures: network errors and 5xx are retried then
// fall back; 4xx is the caller's fault and surfaces immediately.
func retriable(err error) bool {
	var apiErr *appErrors.Error
	if errors.As(err, &apiErr) {
		return apiErr.Status >= http.StatusInternalServerError
	}
	return true
}

// surfaced reports whether an accessor must return the error to the caller
// instead of falling back.
func surfaced(err error) bool {
	var apiErr *appErrors.Error
	return errors.As(err, &apiErr) &&
		apiErr.Status >= http.StatusBadRequest &&
		apiErr.Status < http.StatusInternalServerError
}
