package openmeteo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"weatherwear/internal/providers/rest"
	"weatherwear/internal/types"
)

// API Docs: https://open-meteo.com/en/docs
// Sample request: https://api.open-meteo.com/v1/forecast?latitude=35.8575&longitude=14.4775&daily=temperature_2m_max,precipitation_sum&timezone=auto&forecast_days=1
const (
	baseForecastURL = "https://api.open-meteo.com/v1"
)

var dailyVars = []string{
	"temperature_2m_max",
	"precipitation_sum",
}

type ForecastClient struct {
	doer    rest.Doer
	baseURL string
	logger  *slog.Logger
}

func NewForecastClient(doer rest.Doer, baseURL string, logger *slog.Logger) *ForecastClient {
	if baseURL == "" {
		baseURL = baseForecastURL
	}
	return &ForecastClient{
		doer:    doer,
		baseURL: baseURL,
		logger:  logger.With("component", "openmeteo-client"),
	}
}

// GetForecast fetches the daily max temperature and precipitation sum for the
// day dayOffset days from today (0 = today) in the location's own timezone.
func (c *ForecastClient) GetForecast(ctx context.Context, coords types.Coordinates, dayOffset int) (types.ForecastSample, error) {
	if dayOffset < 0 {
		return types.ForecastSample{}, fmt.Errorf("day offset must not be negative, got %d", dayOffset)
	}

	resp, err := c.doer.Do(ctx, rest.Request{
		Method:  http.MethodGet,
		BaseURL: c.baseURL,
		Path:    "/forecast",
		Query: map[string]string{
			"latitude":      coords.Latitude,
			"longitude":     coords.Longitude,
			"daily":         strings.Join(dailyVars, ","),
			"timezone":      "auto",
			"forecast_days": strconv.Itoa(dayOffset + 1),
		},
	})
	if err != nil {
		return types.ForecastSample{}, fmt.Errorf("failed to fetch forecast: %w", err)
	}

	var apiResp ForecastAPIResponse
	if err := json.Unmarshal(resp.Body, &apiResp); err != nil {
		c.logger.Error("failed to decode forecast response", "error", err)
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			field := typeErr.Field
			if field == "" {
				field = "daily"
			}
			return types.ForecastSample{}, fmt.Errorf("failed to decode forecast: %w", &rest.MissingFieldError{Field: field})
		}
		return types.ForecastSample{}, fmt.Errorf("failed to decode forecast: %w", &rest.MalformedBodyError{Err: err})
	}

	sample, err := sampleAt(&apiResp, dayOffset)
	if err != nil {
		return types.ForecastSample{}, fmt.Errorf("failed to read forecast: %w", err)
	}

	c.logger.Debug("fetched forecast",
		"latitude", coords.Latitude,
		"longitude", coords.Longitude,
		"day_offset", dayOffset,
		"timezone", apiResp.Timezone,
		"temperature_celsius", sample.TemperatureCelsius,
		"precipitation", sample.Precipitation,
	)

	return sample, nil
}

// sampleAt picks entry dayOffset from the daily series
func sampleAt(apiResp *ForecastAPIResponse, dayOffset int) (types.ForecastSample, error) {
	if apiResp.Daily == nil {
		return types.ForecastSample{}, &rest.MissingFieldError{Field: "daily"}
	}

	temperature, err := valueAt(apiResp.Daily.Temperature2MMax, dayOffset, "daily.temperature_2m_max")
	if err != nil {
		return types.ForecastSample{}, err
	}
	precipitation, err := valueAt(apiResp.Daily.PrecipitationSum, dayOffset, "daily.precipitation_sum")
	if err != nil {
		return types.ForecastSample{}, err
	}

	return types.ForecastSample{
		TemperatureCelsius: temperature,
		Precipitation:      precipitation,
	}, nil
}

func valueAt(series []*float64, index int, field string) (float64, error) {
	if index >= len(series) || series[index] == nil {
		return 0, &rest.MissingFieldError{Field: fmt.Sprintf("%s[%d]", field, index)}
	}
	return *series[index], nil
}
