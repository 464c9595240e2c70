// Package salesforce provides the CRM REST transport: SOSL search, record
// fetch, record patch, and object describe. Failures are typed through the
// platform error codes. The transport never retries; retry policy belongs to
// the caller's orchestration layer
package salesforce

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	perr "voiceforce/internal/platform/errors"
	"voiceforce/internal/platform/logger"
)

const (
	defaultAPIVersion = "v61.0"
	defaultTimeout    = 10 * time.Second
)

// Options configures the Client
type Options struct {
	// InstanceURL is the org base, e.g. https://example.my.salesforce.com
	InstanceURL string
	APIVersion  string
	AccessToken string
	Timeout     time.Duration
}

// Client is a minimal Salesforce REST client scoped to what the assistant
// needs. One client per authenticated user session
type Client struct {
	http *http.Client
	opts Options
	log  logger.Logger
}

// New creates a Client with sane defaults
func New(o Options) *Client {
	if o.APIVersion == "" {
		o.APIVersion = defaultAPIVersion
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	return &Client{
		http: &http.Client{Timeout: o.Timeout},
		opts: o,
		log:  *logger.Named("salesforce"),
	}
}

// base composes the REST data path for this API version
func (c *Client) base() string {
	return strings.TrimRight(c.opts.InstanceURL, "/") + "/services/data/" + c.opts.APIVersion
}

// apiError is one element of Salesforce's JSON error array
type apiError struct {
	Message   string `json:"message"`
	ErrorCode string `json:"errorCode"`
}

// do issues one request and returns the response body for 2xx statuses.
// Non-2xx statuses are mapped to typed platform errors; record-lock error
// codes are surfaced as Conflict regardless of HTTP status so the update
// guard composes with transport-level conflict signaling
func (c *Client) do(ctx context.Context, method, url string, body any) ([]byte, error) {
	var rdr io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, perr.Wrap(err, perr.ErrorCodeJSON, "salesforce request encode failed")
		}
		rdr = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, rdr)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnknown, "salesforce new request failed")
	}
	req.Header.Set("Authorization", "Bearer "+c.opts.AccessToken)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnavailable, "salesforce request failed")
	}
	defer func() { _ = resp.Body.Close() }()

	out, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnavailable, "salesforce response read failed")
	}

	c.log.Debug().
		Str("method", method).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("salesforce http response")

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return out, nil
	}

	msg, errorCode := parseAPIError(out)
	code := perr.FromHTTPStatus(resp.StatusCode)
	if isLockCode(errorCode) {
		code = perr.ErrorCodeConflict
	}
	if msg == "" {
		msg = "salesforce returned status " + resp.Status
	}
	return nil, perr.Newf(code, "salesforce: %s (%s)", msg, errorCode)
}

func parseAPIError(body []byte) (msg, errorCode string) {
	var errs []apiError
	if err := json.Unmarshal(body, &errs); err != nil || len(errs) == 0 {
		return "", ""
	}
	return errs[0].Message, errs[0].ErrorCode
}

// isLockCode matches the error codes Salesforce uses when a record is locked
// or was modified by a concurrent transaction
func isLockCode(errorCode string) bool {
	switch errorCode {
	case "ENTITY_IS_LOCKED", "UNABLE_TO_LOCK_ROW", "CONCURRENT_MODIFICATION":
		return true
	}
	return false
}

// Ping verifies the org answers with the configured credentials. Used by the
// readiness probe
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodGet, c.base(), nil)
	return err
}
