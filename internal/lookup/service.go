package lookup

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"unicode"
	"unicode/utf8"

	"city-lookup/internal/config"
	"city-lookup/internal/metrics"
	"city-lookup/internal/providers/zippopotam"
	"city-lookup/internal/registry"
)

// ErrEmptyQuery is returned when the submitted city name is blank
var ErrEmptyQuery = errors.New("city name is required")

// CityProvider fetches a postal code record from a fully built request target
type CityProvider interface {
	GetCity(ctx context.Context, target string) (*zippopotam.CityAPIResponse, error)
}

// Service resolves user-entered city names into lookup outcomes
type Service interface {
	// Resolve returns the outcome for one submission. The only error is
	// ErrEmptyQuery; lookup failures are reported through the Outcome.
	Resolve(ctx context.Context, query string) (Outcome, error)
}

type lookupService struct {
	provider CityProvider
	baseURL  string
	logger   *slog.Logger
}

// NewLookupService creates a lookup service backed by the real zippopotam.us client
func NewLookupService(cfg *config.Config, logger *slog.Logger) Service {
	client := zippopotam.NewClient(logger, zippopotam.Config{
		Timeout:   cfg.Upstream.Timeout,
		RateLimit: cfg.Upstream.RateLimit,
		Burst:     cfg.Upstream.Burst,
		UserAgent: cfg.Upstream.UserAgent,
	})
	return NewLookupServiceWithProvider(client, cfg.Upstream.BaseURL, logger)
}

// NewLookupServiceWithProvider creates a lookup service with a custom provider.
// This is useful for testing with mock providers.
func NewLookupServiceWithProvider(provider CityProvider, baseURL string, logger *slog.Logger) Service {
	if baseURL == "" {
		baseURL = zippopotam.DefaultBaseURL
	}
	return &lookupService{
		provider: provider,
		baseURL:  baseURL,
		logger:   logger.With("component", "lookup-service"),
	}
}

func (s *lookupService) Resolve(ctx context.Context, query string) (Outcome, error) {
	if strings.TrimSpace(query) == "" {
		return Outcome{}, ErrEmptyQuery
	}
	name := DisplayName(query)

	entry, ok := registry.Lookup(query)
	if !ok {
		s.logger.Debug("city not in registry", "query", query)
		return s.record(UnknownCity(name)), nil
	}

	target := s.target(entry)
	resp, err := s.provider.GetCity(ctx, target)
	if err != nil {
		s.logger.Error("failed to get city data",
			"city", registry.Normalize(query),
			"url", target,
			"error", err,
		)
		return s.record(TransportFailure(name, err)), nil
	}
	if resp == nil {
		s.logger.Error("city provider returned no data", "city", registry.Normalize(query), "url", target)
		return s.record(TransportFailure(name, errors.New("city response is nil"))), nil
	}

	city := mapCityResponse(resp)

	s.logger.Debug("resolved city",
		"city", registry.Normalize(query),
		"post_code", city.PostCode,
		"places", len(city.Places),
	)

	return s.record(Success(city)), nil
}

// target builds {base}{country code}/{postal code}
func (s *lookupService) target(entry registry.Entry) string {
	base := s.baseURL
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base + entry.CountryCode + "/" + entry.PostalCode
}

func (s *lookupService) record(o Outcome) Outcome {
	metrics.LookupOutcomesTotal.WithLabelValues(string(o.Status)).Inc()
	return o
}

// DisplayName trims the input and upper-cases its first letter, leaving the
// rest as typed.
func DisplayName(query string) string {
	trimmed := strings.TrimSpace(query)
	r, size := utf8.DecodeRuneInString(trimmed)
	if r == utf8.RuneError {
		return trimmed
	}
	return string(unicode.ToUpper(r)) + trimmed[size:]
}
