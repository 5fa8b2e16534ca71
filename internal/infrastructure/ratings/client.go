// Package ratings is the fetch collaborator for the RTanks ratings
// website. It owns the transport concerns — candidate URLs, browser
// headers, jittered pacing, timeouts — and hands raw page text to the
// extraction engine. It makes no judgement about page content.
package ratings

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"net/url"
	"time"

	"rtanksbot/pkg/httpx"
)

const (
	// Pre-request jitter keeps the scraper under the site's
	// rate-limiting radar.
	delayMin = 500 * time.Millisecond
	delayMax = 1500 * time.Millisecond

	maxBodySize = 2 << 20

	loggedBodyMaxLen = 2048
)

// The site fronts scrapers with bot detection, so requests carry a
// plain browser profile.
var browserHeaders = map[string]string{
	"User-Agent":                "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Accept":                    "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8",
	"Accept-Language":           "en-US,en;q=0.5",
	"DNT":                       "1",
	"Connection":                "keep-alive",
	"Upgrade-Insecure-Requests": "1",
	"Sec-Fetch-Dest":            "document",
	"Sec-Fetch-Mode":            "navigate",
	"Sec-Fetch-Site":            "none",
}

type Client struct {
	baseURL    string
	httpClient *http.Client

	delayMin time.Duration
	delayMax time.Duration
}

type Option func(*Client)

// WithFetchDelay overrides the pre-request jitter bounds.
func WithFetchDelay(min, max time.Duration) Option {
	return func(c *Client) {
		c.delayMin = min
		c.delayMax = max
	}
}

func NewClient(baseURL string, timeout time.Duration, opts ...Option) *Client {
	transport := httpx.NewLoggingRoundTripper(
		http.DefaultTransport,
		httpx.WithLogFieldMaxLen(loggedBodyMaxLen),
	)

	client := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   timeout,
		},
		delayMin: delayMin,
		delayMax: delayMax,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// ProfileURL is the public link included in replies.
func (c *Client) ProfileURL(username string) string {
	return c.baseURL + "/user/" + url.PathEscape(username)
}

// ProfileCandidates lists the locations tried in order for a profile
// page.
func (c *Client) ProfileCandidates(username string) []string {
	return []string{
		c.baseURL + "/user/" + url.PathEscape(username),
	}
}

// SearchCandidates lists the ranking/listing pages tried when no
// candidate location yields a genuine profile.
func (c *Client) SearchCandidates(username string) []string {
	return []string{
		c.baseURL,
		c.baseURL + "/rankings",
		c.baseURL + "/search?q=" + url.QueryEscape(username),
	}
}

// Fetch retrieves one candidate location. A non-200 status is an error
// like any transport failure: the caller abandons the location and
// moves on, never retrying it.
func (c *Client) Fetch(ctx context.Context, pageURL string) (string, error) {
	if err := c.sleepJitter(ctx); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	for k, v := range browserHeaders {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("httpClient.Do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d for %s", resp.StatusCode, pageURL)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return "", fmt.Errorf("io.ReadAll: %w", err)
	}

	return string(body), nil
}

// Ping measures availability of the site root for status reporting.
func (c *Client) Ping(ctx context.Context) (time.Duration, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", http.NoBody)
	if err != nil {
		return 0, 0, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, 0, fmt.Errorf("httpClient.Do: %w", err)
	}
	defer resp.Body.Close()

	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize)) //nolint:errcheck

	return time.Since(start), resp.StatusCode, nil
}

func (c *Client) sleepJitter(ctx context.Context) error {
	delay := c.delayMin
	if c.delayMax > c.delayMin {
		delay += rand.N(c.delayMax - c.delayMin)
	}

	select {
	case <-time.After(delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
