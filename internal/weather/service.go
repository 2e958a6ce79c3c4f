package weather

import (
	"context"
	"fmt"
	"log/slog"

	"weatherwear/internal/config"
	"weatherwear/internal/location"
	"weatherwear/internal/providers/openmeteo"
	"weatherwear/internal/providers/rest"
	"weatherwear/internal/types"
)

type ForecastProvider interface {
	// GetForecast fetches the daily sample dayOffset days from today at the given coordinates
	GetForecast(ctx context.Context, coords types.Coordinates, dayOffset int) (types.ForecastSample, error)
}

type Service interface {
	// DecideCurrent assesses today's weather where the machine is located
	DecideCurrent(ctx context.Context) (types.WeatherAssessment, error)
	// DecideAtAirport assesses the weather at an airport dayOffset days from today
	DecideAtAirport(ctx context.Context, code string, dayOffset int) (types.WeatherAssessment, error)
}

type weatherService struct {
	locationService  location.Service
	forecastProvider ForecastProvider
	logger           *slog.Logger
}

func NewWeatherService(cfg *config.Config, doer rest.Doer, logger *slog.Logger) Service {
	return NewWeatherServiceWithProvider(
		location.NewLocationService(cfg, doer, logger),
		openmeteo.NewForecastClient(doer, cfg.Providers.OpenMeteo.BaseURL, logger),
		logger,
	)
}

func NewWeatherServiceWithProvider(
	locationService location.Service,
	forecastProvider ForecastProvider,
	logger *slog.Logger,
) Service {
	return &weatherService{
		locationService:  locationService,
		forecastProvider: forecastProvider,
		logger:           logger.With("component", "weather-service"),
	}
}

func (s *weatherService) DecideCurrent(ctx context.Context) (types.WeatherAssessment, error) {
	coords, err := s.locationService.ResolveCurrent(ctx)
	if err != nil {
		s.logger.Error("failed to resolve current location", "error", err)
		return types.WeatherAssessment{}, err
	}

	s.logger.Debug("resolved current location",
		"latitude", coords.Latitude,
		"longitude", coords.Longitude,
	)

	return s.decide(ctx, coords, 0)
}

func (s *weatherService) DecideAtAirport(ctx context.Context, code string, dayOffset int) (types.WeatherAssessment, error) {
	coords, err := s.locationService.ResolveByAirportCode(ctx, code)
	if err != nil {
		s.logger.Error("failed to resolve airport location", "code", code, "error", err)
		return types.WeatherAssessment{}, err
	}

	s.logger.Debug("resolved airport location",
		"code", code,
		"latitude", coords.Latitude,
		"longitude", coords.Longitude,
	)

	return s.decide(ctx, coords, dayOffset)
}

func (s *weatherService) decide(ctx context.Context, coords types.Coordinates, dayOffset int) (types.WeatherAssessment, error) {
	sample, err := s.forecastProvider.GetForecast(ctx, coords, dayOffset)
	if err != nil {
		s.logger.Error("failed to get forecast from provider", "day_offset", dayOffset, "error", err)
		return types.WeatherAssessment{}, fmt.Errorf("failed to get forecast: %w", err)
	}

	assessment := Classify(sample)

	s.logger.Debug("classified forecast",
		"day_offset", dayOffset,
		"temperature_celsius", sample.TemperatureCelsius,
		"precipitation", sample.Precipitation,
		"is_cold", assessment.IsCold,
		"is_raining", assessment.IsRaining,
	)

	return assessment, nil
}
