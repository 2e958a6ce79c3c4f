package location

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"weatherwear/internal/config"
	"weatherwear/internal/metrics"
	"weatherwear/internal/providers/airportinfo"
	"weatherwear/internal/providers/iatageo"
	"weatherwear/internal/providers/ipapi"
	"weatherwear/internal/providers/ipapico"
	"weatherwear/internal/providers/rest"
	"weatherwear/internal/types"
)

// Service resolves coordinates from a primary provider, falling back to a
// backup provider when the primary's answer is unusable.
type Service interface {
	// ResolveCurrent returns the coordinates of the machine running the request
	ResolveCurrent(ctx context.Context) (types.Coordinates, error)
	// ResolveByAirportCode returns the coordinates of the airport with the given IATA code
	ResolveByAirportCode(ctx context.Context, code string) (types.Coordinates, error)
}

type locationService struct {
	primaryCurrent CurrentLocationProvider
	backupCurrent  CurrentLocationProvider
	primaryAirport AirportLocationProvider
	backupAirport  AirportLocationProvider
	logger         *slog.Logger
}

// NewLocationService creates a location service backed by the configured providers
func NewLocationService(cfg *config.Config, doer rest.Doer, logger *slog.Logger) Service {
	p := cfg.Providers
	return NewLocationServiceWithProviders(
		logger,
		ipapi.NewClient(doer, p.IPAPI.BaseURL, logger),
		ipapico.NewClient(doer, p.IPAPICo.BaseURL, logger),
		iatageo.NewClient(doer, p.IATAGeo.BaseURL, logger),
		airportinfo.NewClient(doer, p.AirportInfo.BaseURL, p.AirportInfo.APIKey, p.AirportInfo.Host, logger),
	)
}

// NewLocationServiceWithProviders creates a location service with custom providers
// This is useful for testing with mock providers
func NewLocationServiceWithProviders(
	logger *slog.Logger,
	primaryCurrent, backupCurrent CurrentLocationProvider,
	primaryAirport, backupAirport AirportLocationProvider,
) Service {
	return &locationService{
		primaryCurrent: primaryCurrent,
		backupCurrent:  backupCurrent,
		primaryAirport: primaryAirport,
		backupAirport:  backupAirport,
		logger:         logger.With("component", "location-service"),
	}
}

func (s *locationService) ResolveCurrent(ctx context.Context) (types.Coordinates, error) {
	coords, err := s.primaryCurrent.CurrentLocation(ctx)
	if err == nil {
		return coords, nil
	}

	reason, ok := fallbackReason(err)
	if !ok {
		return types.Coordinates{}, fmt.Errorf("failed to resolve current location: %w", err)
	}

	s.logger.Warn("primary current location provider failed, using backup", "reason", reason, "error", err)
	metrics.LocationFallbacksTotal.WithLabelValues("current", reason).Inc()

	coords, err = s.backupCurrent.CurrentLocation(ctx)
	if err != nil {
		return types.Coordinates{}, fmt.Errorf("failed to resolve current location: %w", err)
	}
	return coords, nil
}

func (s *locationService) ResolveByAirportCode(ctx context.Context, code string) (types.Coordinates, error) {
	coords, err := s.primaryAirport.AirportLocation(ctx, code)
	if err == nil {
		return coords, nil
	}

	reason, ok := fallbackReason(err)
	if !ok {
		return types.Coordinates{}, fmt.Errorf("failed to resolve airport %s: %w", code, err)
	}

	s.logger.Warn("primary airport provider failed, using backup", "code", code, "reason", reason, "error", err)
	metrics.LocationFallbacksTotal.WithLabelValues("airport", reason).Inc()

	coords, err = s.backupAirport.AirportLocation(ctx, code)
	if err != nil {
		return types.Coordinates{}, fmt.Errorf("failed to resolve airport %s: %w", code, err)
	}
	return coords, nil
}

// fallbackReason reports whether err warrants asking the backup provider.
// Unrecognized status codes, connection failures and cancellation do not.
func fallbackReason(err error) (string, bool) {
	var (
		timeoutErr   *rest.TimeoutError
		malformedErr *rest.MalformedBodyError
		missingErr   *rest.MissingFieldError
	)
	switch {
	case errors.As(err, &timeoutErr):
		return "timeout", true
	case errors.As(err, &malformedErr):
		return "malformed_body", true
	case errors.As(err, &missingErr):
		return "missing_field", true
	default:
		return "", false
	}
}
