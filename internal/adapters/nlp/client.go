// Package nlp is the transport for the remote intent-classification
// endpoint. It sends the transcript plus serialized schema metadata and
// returns the raw structured-intent JSON; trusting that payload is the
// caller's job (whitelist validation), not this package's. The client never
// retries; a 429 or 5xx is surfaced as a typed failure for the caller to
// explain to the user
package nlp

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	perr "voiceforce/internal/platform/errors"
	"voiceforce/internal/platform/logger"
)

const defaultTimeout = 15 * time.Second

// Options configures the Client
type Options struct {
	// Endpoint is the full classification URL
	Endpoint string
	APIKey   string
	Timeout  time.Duration
}

// Client posts transcripts to the classification endpoint
type Client struct {
	http *http.Client
	opts Options
	log  logger.Logger
}

// New creates a Client with sane defaults
func New(o Options) *Client {
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	return &Client{
		http: &http.Client{Timeout: o.Timeout},
		opts: o,
		log:  *logger.Named("nlp"),
	}
}

// request is the endpoint's wire contract
type request struct {
	Text     string `json:"text"`
	Metadata string `json:"metadata"`
	UserID   string `json:"user_id"`
}

// Classify sends text and schema metadata upstream and returns the raw
// intent JSON on success. Failure statuses map to the platform taxonomy:
// 429 usage limit, 401 expired credentials, 502/503 upstream outage,
// anything else a generic failure
func (c *Client) Classify(ctx context.Context, text, metadata, userID string) ([]byte, error) {
	buf, err := json.Marshal(request{Text: text, Metadata: metadata, UserID: userID})
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeJSON, "nlp request encode failed")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.opts.Endpoint, bytes.NewReader(buf))
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnknown, "nlp new request failed")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.opts.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.opts.APIKey)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnavailable, "nlp request failed")
	}
	defer func() { _ = resp.Body.Close() }()

	out, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnavailable, "nlp response read failed")
	}

	c.log.Debug().
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("nlp http response")

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return out, nil
	}

	switch resp.StatusCode {
	case http.StatusTooManyRequests:
		return nil, perr.Newf(perr.ErrorCodeTooManyRequests, "nlp: usage limit reached")
	case http.StatusUnauthorized:
		return nil, perr.Newf(perr.ErrorCodeUnauthorized, "nlp: credentials expired or missing")
	case http.StatusBadGateway, http.StatusServiceUnavailable:
		return nil, perr.Newf(perr.ErrorCodeUnavailable, "nlp: upstream unavailable")
	default:
		return nil, perr.Newf(perr.ErrorCodeUnknown, "nlp: returned status %s", resp.Status)
	}
}
