package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"weatherwear/internal/metrics"
)

const (
	DefaultTimeout   = 3 * time.Second
	DefaultUserAgent = "WeatherWear/1.0"
)

// Request describes a single call to an upstream JSON API.
type Request struct {
	Method  string
	BaseURL string
	Path    string
	Headers map[string]string
	Query   map[string]string
}

// Response is the raw result of a request that returned 200 OK.
type Response struct {
	StatusCode int
	Body       []byte
}

// Doer performs requests against upstream APIs.
type Doer interface {
	Do(ctx context.Context, req Request) (*Response, error)
}

// Client implements Doer on top of resty with a fixed per-request timeout.
// Retries are disabled; callers decide what to do with a failed call.
type Client struct {
	client *resty.Client
	logger *slog.Logger
}

func NewClient(timeout time.Duration, userAgent string, logger *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	logger = logger.With("component", "rest-client")

	client := resty.New().
		SetTimeout(timeout).
		SetHeader("User-Agent", userAgent).
		SetHeader("Accept", "application/json").
		SetRetryCount(0).
		SetLogger(&restyLogger{logger: logger})

	return &Client{
		client: client,
		logger: logger,
	}
}

// Do issues the request and returns the body of a 200 response.
func (c *Client) Do(ctx context.Context, req Request) (*Response, error) {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}
	target := joinURL(req.BaseURL, req.Path)
	host := hostOf(req.BaseURL)

	c.logger.Debug("sending request", "method", method, "url", target)

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeaders(req.Headers).
		SetQueryParams(req.Query).
		Execute(method, target)
	if err != nil {
		if isTimeout(err) {
			metrics.UpstreamRequestsTotal.WithLabelValues(host, "timeout").Inc()
			c.logger.Warn("request timed out", "url", target, "error", err)
			return nil, &TimeoutError{URL: target, Err: err}
		}
		metrics.UpstreamRequestsTotal.WithLabelValues(host, "error").Inc()
		c.logger.Error("request failed", "url", target, "error", err)
		return nil, fmt.Errorf("failed to fetch %s: %w", target, err)
	}

	if resp.StatusCode() != http.StatusOK {
		metrics.UpstreamRequestsTotal.WithLabelValues(host, "unrecognized_status").Inc()
		c.logger.Error("upstream returned unhandled status",
			"url", target,
			"status_code", resp.StatusCode(),
			"response_body", string(resp.Body()),
		)
		return nil, &UnrecognizedResponseError{URL: target, StatusCode: resp.StatusCode()}
	}

	metrics.UpstreamRequestsTotal.WithLabelValues(host, "ok").Inc()
	c.logger.Debug("request succeeded",
		"url", target,
		"duration", resp.Time(),
		"body_size", len(resp.Body()),
	)

	return &Response{
		StatusCode: resp.StatusCode(),
		Body:       resp.Body(),
	}, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func joinURL(baseURL, path string) string {
	if path == "" {
		return baseURL
	}
	return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(path, "/")
}

func hostOf(baseURL string) string {
	u, err := url.Parse(baseURL)
	if err != nil || u.Host == "" {
		return "unknown"
	}
	return u.Host
}

// restyLogger routes resty's internal messages to slog
type restyLogger struct {
	logger *slog.Logger
}

func (l *restyLogger) Errorf(format string, v ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, v...))
}

func (l *restyLogger) Warnf(format string, v ...interface{}) {
	l.logger.Warn(fmt.Sprintf(format, v...))
}

func (l *restyLogger) Debugf(format string, v ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, v...))
}
