package fetcher

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/baditaflorin/go_corpus_bench/internal/ports"
	"github.com/pkg/errors"
	"github.com/valyala/fasthttp"
)

// Default client configuration
const (
	DefaultTimeout      = 5 * time.Minute
	DefaultMaxRedirects = 5
	DefaultUserAgent    = "go_corpus_bench"
)

// StatusError is returned when the server answers with a non-2xx status.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.Code)
}

// Config defines the HTTP client settings.
type Config struct {
	Timeout      time.Duration
	MaxRedirects int
	UserAgent    string
	// Dial overrides how connections are established. Tests use it to
	// serve downloads from an in-memory listener.
	Dial fasthttp.DialFunc
}

// HTTPFetcher downloads resources with a fasthttp client.
type HTTPFetcher struct {
	client       *fasthttp.Client
	logger       ports.Logger
	timeout      time.Duration
	maxRedirects int
}

// New creates a fasthttp-backed fetcher.
func New(logger ports.Logger, config Config) *HTTPFetcher {
	if config.Timeout <= 0 {
		config.Timeout = DefaultTimeout
	}
	if config.MaxRedirects <= 0 {
		config.MaxRedirects = DefaultMaxRedirects
	}
	if config.UserAgent == "" {
		config.UserAgent = DefaultUserAgent
	}

	return &HTTPFetcher{
		client: &fasthttp.Client{
			Name:         config.UserAgent,
			ReadTimeout:  config.Timeout,
			WriteTimeout: config.Timeout,
			Dial:         config.Dial,
		},
		logger:       logger,
		timeout:      config.Timeout,
		maxRedirects: config.MaxRedirects,
	}
}

// Fetch performs a GET on url, following redirects, and copies the body to w.
// A non-2xx final status yields a *StatusError and writes nothing.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string, w io.Writer) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)
	timeout := f.timeout
	if deadline, ok := ctx.Deadline(); ok && time.Until(deadline) < timeout {
		timeout = time.Until(deadline)
	}
	req.SetTimeout(timeout)

	startTime := time.Now()
	f.logger.Debug("Fetching", "url", url)

	// fasthttp does not watch ctx, so the request runs aside and is
	// abandoned on cancellation. req and resp stay with it until it returns.
	done := make(chan error, 1)
	go func() {
		done <- f.client.DoRedirects(req, resp, f.maxRedirects)
	}()

	select {
	case err := <-done:
		defer fasthttp.ReleaseRequest(req)
		defer fasthttp.ReleaseResponse(resp)
		if err != nil {
			return 0, errors.Wrapf(err, "fetch %s", url)
		}
	case <-ctx.Done():
		go func() {
			<-done
			fasthttp.ReleaseRequest(req)
			fasthttp.ReleaseResponse(resp)
		}()
		f.logger.Warn("Fetch cancelled", "url", url, "after", time.Since(startTime))
		return 0, ctx.Err()
	}

	code := resp.StatusCode()
	if code < fasthttp.StatusOK || code >= fasthttp.StatusMultipleChoices {
		return 0, &StatusError{URL: url, Code: code}
	}

	if err := ctx.Err(); err != nil {
		return 0, err
	}

	cw := &countingWriter{w: w}
	if err := resp.BodyWriteTo(cw); err != nil {
		return cw.n, errors.Wrapf(err, "write body of %s", url)
	}

	f.logger.Debug("Fetched",
		"url", url,
		"status", code,
		"bytes", cw.n,
		"duration", time.Since(startTime),
	)

	return cw.n, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
