package recommend

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"weatherwear/internal/metrics"
	"weatherwear/internal/validation"
	"weatherwear/internal/weather"
)

// MaxDayOffset is the furthest day ahead a recommendation can be made for
const MaxDayOffset = 10

const (
	kindCurrent = "current"
	kindAirport = "airport"
)

// Clock returns the current time. Only its calendar date is used.
type Clock func() time.Time

// Service turns weather assessments into clothing advice
type Service interface {
	// ForCurrentLocation recommends clothing for today where the machine is located
	ForCurrentLocation(ctx context.Context) (string, error)
	// ForAirportAndDate recommends clothing for arriving at an airport on a date (YYYY-MM-DD)
	ForAirportAndDate(ctx context.Context, code, date string) (string, error)
}

type recommendService struct {
	weatherService weather.Service
	clock          Clock
	logger         *slog.Logger
}

func NewService(weatherService weather.Service, logger *slog.Logger) Service {
	return NewServiceWithClock(weatherService, time.Now, logger)
}

// NewServiceWithClock creates a recommendation service that reads today's date from clock
func NewServiceWithClock(weatherService weather.Service, clock Clock, logger *slog.Logger) Service {
	return &recommendService{
		weatherService: weatherService,
		clock:          clock,
		logger:         logger.With("component", "recommend-service"),
	}
}

func (s *recommendService) ForCurrentLocation(ctx context.Context) (string, error) {
	assessment, err := s.weatherService.DecideCurrent(ctx)
	if err != nil {
		metrics.RecommendationsTotal.WithLabelValues(kindCurrent, outcome(err)).Inc()
		return "", err
	}

	metrics.RecommendationsTotal.WithLabelValues(kindCurrent, "ok").Inc()
	return renderMessage(assessment), nil
}

func (s *recommendService) ForAirportAndDate(ctx context.Context, code, date string) (string, error) {
	offset, err := s.validate(code, date)
	if err != nil {
		s.logger.Info("rejected recommendation request", "code", code, "date", date, "error", err)
		metrics.RecommendationsTotal.WithLabelValues(kindAirport, outcome(err)).Inc()
		return "", err
	}

	assessment, err := s.weatherService.DecideAtAirport(ctx, code, offset)
	if err != nil {
		metrics.RecommendationsTotal.WithLabelValues(kindAirport, outcome(err)).Inc()
		return "", err
	}

	metrics.RecommendationsTotal.WithLabelValues(kindAirport, "ok").Inc()
	return renderMessage(assessment), nil
}

// validate checks the request and returns the forecast day offset for date
func (s *recommendService) validate(code, date string) (int, error) {
	if !validation.IsAirportCodeValid(code) {
		return 0, &InvalidAirportCodeError{Code: code}
	}

	today := s.clock().Format(validation.DateLayout)
	offset, err := validation.DayDifference(today, date)
	if err != nil {
		return 0, err
	}

	if offset < 0 || offset > MaxDayOffset {
		return 0, &DateRangeError{Offset: offset}
	}

	return offset, nil
}

// IsInvalidRequest reports whether err was caused by bad caller input
func IsInvalidRequest(err error) bool {
	var (
		codeErr  *InvalidAirportCodeError
		rangeErr *DateRangeError
		dateErr  *validation.DateFormatError
	)
	return errors.As(err, &codeErr) || errors.As(err, &rangeErr) || errors.As(err, &dateErr)
}

func outcome(err error) string {
	if IsInvalidRequest(err) {
		return "invalid"
	}
	return "error"
}
