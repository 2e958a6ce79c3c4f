package ipapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"weatherwear/internal/providers/rest"
	"weatherwear/internal/types"
)

// API Docs: https://ip-api.com/docs/api:json
// Sample request: http://ip-api.com/json
// The free tier is HTTP only.
const (
	baseURL = "http://ip-api.com"
)

// Client geolocates the caller's public IP address
type Client struct {
	doer    rest.Doer
	baseURL string
	logger  *slog.Logger
}

func NewClient(doer rest.Doer, url string, logger *slog.Logger) *Client {
	if url == "" {
		url = baseURL
	}
	return &Client{
		doer:    doer,
		baseURL: url,
		logger:  logger.With("component", "ipapi-client"),
	}
}

// CurrentLocation returns the coordinates ip-api reports for the caller.
// A failed lookup is answered with 200 and {"status":"fail"}, which surfaces
// here as a missing "lat" field.
func (c *Client) CurrentLocation(ctx context.Context) (types.Coordinates, error) {
	resp, err := c.doer.Do(ctx, rest.Request{
		Method:  http.MethodGet,
		BaseURL: c.baseURL,
		Path:    "/json",
	})
	if err != nil {
		return types.Coordinates{}, fmt.Errorf("ip-api lookup failed: %w", err)
	}

	obj, err := rest.DecodeObject(resp.Body)
	if err != nil {
		return types.Coordinates{}, fmt.Errorf("ip-api lookup failed: %w", err)
	}

	lat, err := rest.StringField(obj, "lat")
	if err != nil {
		return types.Coordinates{}, fmt.Errorf("ip-api lookup failed: %w", err)
	}
	lon, err := rest.StringField(obj, "lon")
	if err != nil {
		return types.Coordinates{}, fmt.Errorf("ip-api lookup failed: %w", err)
	}

	c.logger.Debug("resolved current location", "latitude", lat, "longitude", lon)

	return types.NewCoordinates(lat, lon), nil
}
