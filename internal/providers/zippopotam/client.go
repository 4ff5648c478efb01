package zippopotam

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"city-lookup/internal/metrics"

	"golang.org/x/time/rate"
)

// API Docs: https://www.zippopotam.us/
// Sample request: https://api.zippopotam.us/de/10115
const (
	DefaultBaseURL = "https://api.zippopotam.us/"

	maxBodyBytes = 1 << 20
)

var (
	ErrUnexpectedStatus  = errors.New("unexpected upstream status")
	ErrMalformedResponse = errors.New("malformed upstream response")
)

// Config tunes the HTTP client. A zero RateLimit disables limiting.
type Config struct {
	Timeout   time.Duration
	RateLimit float64
	Burst     int
	UserAgent string
}

type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	userAgent  string
	logger     *slog.Logger
}

func NewClient(logger *slog.Logger, cfg Config) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		userAgent:  cfg.UserAgent,
		logger:     logger.With("component", "zippopotam-client"),
	}
	if cfg.RateLimit > 0 {
		burst := cfg.Burst
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}
	return c
}

// GetCity fetches the postal code record at target, a fully built
// https://api.zippopotam.us/{country}/{postal code} URL. It issues exactly
// one request and never retries.
func (c *Client) GetCity(ctx context.Context, target string) (*CityAPIResponse, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			metrics.UpstreamRequestsTotal.WithLabelValues(metrics.UpstreamNetworkFail).Inc()
			return nil, fmt.Errorf("failed to fetch: rate limiter: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	c.logger.Debug("fetching zippopotam city data", "url", target)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.UpstreamDurationSeconds.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(metrics.UpstreamNetworkFail).Inc()
		c.logger.Error("failed to fetch zippopotam data",
			"url", target,
			"error", err,
		)
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
		metrics.UpstreamRequestsTotal.WithLabelValues(metrics.UpstreamBadStatus).Inc()
		c.logger.Error("zippopotam API returned error",
			"status_code", resp.StatusCode,
			"url", target,
			"response_body", string(body),
		)
		return nil, fmt.Errorf("%w: fetch returned status %d: %s", ErrUnexpectedStatus, resp.StatusCode, string(body))
	}

	// Decode through a pointer so a literal null is caught as well
	var apiResp *CityAPIResponse
	dec := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes))
	if err := dec.Decode(&apiResp); err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(metrics.UpstreamDecodeFail).Inc()
		c.logger.Error("failed to decode zippopotam response",
			"url", target,
			"error", err,
		)
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrMalformedResponse, err)
	}
	// The body must be exactly one JSON value
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		metrics.UpstreamRequestsTotal.WithLabelValues(metrics.UpstreamDecodeFail).Inc()
		c.logger.Error("zippopotam response has trailing data", "url", target)
		return nil, fmt.Errorf("%w: trailing data after JSON body", ErrMalformedResponse)
	}
	if apiResp == nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(metrics.UpstreamDecodeFail).Inc()
		return nil, fmt.Errorf("%w: empty body", ErrMalformedResponse)
	}

	metrics.UpstreamRequestsTotal.WithLabelValues(metrics.UpstreamOK).Inc()
	c.logger.Debug("successfully fetched zippopotam city data",
		"url", target,
		"post_code", apiResp.PostCode,
		"places", len(apiResp.Places),
	)

	return apiResp, nil
}
