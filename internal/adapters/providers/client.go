// Package providers fetches content from the allowlisted external APIs and
// normalizes every payload into the gateway's content types
package providers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	perr "contentgate/internal/platform/errors"
	"contentgate/internal/platform/logger"
)

const (
	// DefaultUserAgent identifies the gateway to upstreams
	DefaultUserAgent = "UR4More-Wellness/1.0"

	defaultTimeout   = 10 * time.Second
	defaultMaxRetry  = 1
	defaultRetryBase = 250 * time.Millisecond
	maxBodyBytes     = 1 << 20
)

// ClientOptions configures the Client
type ClientOptions struct {
	UserAgent string
	Timeout   time.Duration

	// retries apply to transport errors and 5xx only
	MaxRetries int
	RetryBase  time.Duration

	// HTTP replaces the underlying client, mostly for tests
	HTTP *http.Client
}

// Client is a small GET-only HTTP client shared by every provider
type Client struct {
	http *http.Client
	opts ClientOptions
	log  logger.Logger
}

// NewClient creates a Client with sane defaults
func NewClient(o ClientOptions) *Client {
	if o.UserAgent == "" {
		o.UserAgent = DefaultUserAgent
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.MaxRetries < 0 {
		o.MaxRetries = 0
	} else if o.MaxRetries == 0 {
		o.MaxRetries = defaultMaxRetry
	}
	if o.RetryBase <= 0 {
		o.RetryBase = defaultRetryBase
	}
	hc := o.HTTP
	if hc == nil {
		hc = &http.Client{Timeout: o.Timeout}
	}
	return &Client{http: hc, opts: o, log: *logger.Named("providers")}
}

// GetJSON fetches url and decodes the body into v
func (c *Client) GetJSON(ctx context.Context, url string, v any) error {
	b, err := c.get(ctx, url, "application/json")
	if err != nil {
		return err
	}
	if err := json.Unmarshal(b, v); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnavailable, "provider payload is not json")
	}
	return nil
}

// GetText fetches url and returns the body as a string
func (c *Client) GetText(ctx context.Context, url string) (string, error) {
	b, err := c.get(ctx, url, "text/plain, */*")
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// get retries transport failures, 429 and 5xx with exponential backoff
func (c *Client) get(ctx context.Context, url, accept string) ([]byte, error) {
	for attempt := 0; ; attempt++ {
		body, err := c.once(ctx, url, accept)
		if err == nil || !perr.Retryable(err) || attempt >= c.opts.MaxRetries || ctx.Err() != nil {
			return body, err
		}
		back := c.backoff(attempt)
		c.log.Debug().Err(err).Str("url", url).Int("attempt", attempt).Dur("retry_in", back).Msg("provider retrying")
		if err := sleepCtx(ctx, back); err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "provider request cancelled")
		}
	}
}

func (c *Client) once(ctx context.Context, url, accept string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "provider new request failed")
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)
	req.Header.Set("Accept", accept)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "provider request failed")
	}
	if resp.StatusCode != http.StatusOK {
		_ = drainAndClose(resp.Body)
		switch {
		case resp.StatusCode == http.StatusTooManyRequests:
			return nil, perr.TooManyRequestsf("provider rate limited")
		case resp.StatusCode >= 500:
			return nil, perr.Unavailablef("provider status %d", resp.StatusCode)
		case resp.StatusCode == http.StatusNotFound:
			return nil, perr.NotFoundf("provider status 404")
		default:
			return nil, perr.Internalf("provider status %d", resp.StatusCode)
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	_ = resp.Body.Close()
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "provider read body failed")
	}
	return body, nil
}

func (c *Client) backoff(attempt int) time.Duration {
	return c.opts.RetryBase << uint(attempt)
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func drainAndClose(rc io.ReadCloser) error {
	_, _ = io.Copy(io.Discard, io.LimitReader(rc, 512))
	return rc.Close()
}
