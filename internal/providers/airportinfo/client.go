package airportinfo

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"weatherwear/internal/providers/rest"
	"weatherwear/internal/types"
)

// API Docs: https://rapidapi.com/Active-api/api/airport-info
// Sample request: https://airport-info.p.rapidapi.com/airport?iata=MLA
// Requires X-RapidAPI-Key and X-RapidAPI-Host headers.
const (
	baseURL     = "https://airport-info.p.rapidapi.com"
	defaultHost = "airport-info.p.rapidapi.com"
)

type Client struct {
	doer    rest.Doer
	baseURL string
	apiKey  string
	host    string
	logger  *slog.Logger
}

func NewClient(doer rest.Doer, url, apiKey, host string, logger *slog.Logger) *Client {
	if url == "" {
		url = baseURL
	}
	if host == "" {
		host = defaultHost
	}
	logger = logger.With("component", "airportinfo-client")
	if apiKey == "" {
		logger.Warn("no RapidAPI key configured, airport-info lookups will be rejected")
	}
	return &Client{
		doer:    doer,
		baseURL: url,
		apiKey:  apiKey,
		host:    host,
		logger:  logger,
	}
}

// AirportLocation looks up the coordinates of an airport by IATA code
func (c *Client) AirportLocation(ctx context.Context, code string) (types.Coordinates, error) {
	resp, err := c.doer.Do(ctx, rest.Request{
		Method:  http.MethodGet,
		BaseURL: c.baseURL,
		Path:    "/airport",
		Headers: map[string]string{
			"X-RapidAPI-Key":  c.apiKey,
			"X-RapidAPI-Host": c.host,
		},
		Query: map[string]string{
			"iata": code,
		},
	})
	if err != nil {
		return types.Coordinates{}, fmt.Errorf("airport-info lookup for %s failed: %w", code, err)
	}

	obj, err := rest.DecodeObject(resp.Body)
	if err != nil {
		return types.Coordinates{}, fmt.Errorf("airport-info lookup for %s failed: %w", code, err)
	}

	lat, err := rest.StringField(obj, "latitude")
	if err != nil {
		return types.Coordinates{}, fmt.Errorf("airport-info lookup for %s failed: %w", code, err)
	}
	lon, err := rest.StringField(obj, "longitude")
	if err != nil {
		return types.Coordinates{}, fmt.Errorf("airport-info lookup for %s failed: %w", code, err)
	}

	c.logger.Debug("resolved airport location", "code", code, "latitude", lat, "longitude", lon)

	return types.NewCoordinates(lat, lon), nil
}
