package platform

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const maxResponseBytes = 1 << 20

// Response is a fully read platform response.
type Response struct {
	Status      int
	ContentType string
	Body        []byte
}

func (r Response) OK() bool {
	return r.Status >= 200 && r.Status < 300
}

// Client sends rate-limited requests to the platform base URL. Every request
// carries its own timeout.
type Client struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
	timeout time.Duration
}

func NewClient(baseURL string, timeout time.Duration, limiter *rate.Limiter) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		limiter: limiter,
		timeout: timeout,
	}
}

func NewLimiter(perSecond float64, burst int) *rate.Limiter {
	return rate.NewLimiter(rate.Limit(perSecond), burst)
}

// WithCookieJar returns a copy of the client with its own cookie jar, so
// cookies seeded by one attempt never leak into another.
func (c *Client) WithCookieJar() (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: c.baseURL,
		http:    &http.Client{Jar: jar, Transport: c.http.Transport},
		limiter: c.limiter,
		timeout: c.timeout,
	}, nil
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) URL(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.baseURL + path
}

func (c *Client) Do(ctx context.Context, method, path string, query url.Values, profile HeaderProfile, contentType string, body []byte) (Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return Response{}, fmt.Errorf("rate limiter: %w", err)
		}
	}

	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	target := c.URL(path)
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(reqCtx, method, target, reader)
	if err != nil {
		return Response{}, err
	}
	profile.Apply(req.Header)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Response{}, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return Response{}, fmt.Errorf("read body: %w", err)
	}
	return Response{Status: resp.StatusCode, ContentType: resp.Header.Get("Content-Type"), Body: data}, nil
}
