package ipapico

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"weatherwear/internal/providers/rest"
	"weatherwear/internal/types"
)

// API Docs: https://ipapi.co/api/#complete-location
// Sample request: https://ipapi.co/json/
const (
	baseURL = "https://ipapi.co"
)

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
		logger:  logger.With("component", "ipapico-client"),
	}
}

// CurrentLocation returns the coordinates ipapi.co reports for the caller
func (c *Client) CurrentLocation(ctx context.Context) (types.Coordinates, error) {
	resp, err := c.doer.Do(ctx, rest.Request{
		Method:  http.MethodGet,
		BaseURL: c.baseURL,
		Path:    "/json/",
	})
	if err != nil {
		return types.Coordinates{}, fmt.Errorf("ipapi.co lookup failed: %w", err)
	}

	obj, err := rest.DecodeObject(resp.Body)
	if err != nil {
		return types.Coordinates{}, fmt.Errorf("ipapi.co lookup failed: %w", err)
	}

	lat, err := rest.StringField(obj, "latitude")
	if err != nil {
		return types.Coordinates{}, fmt.Errorf("ipapi.co lookup failed: %w", err)
	}
	lon, err := rest.StringField(obj, "longitude")
	if err != nil {
		return types.Coordinates{}, fmt.Errorf("ipapi.co lookup failed: %w", err)
	}

	c.logger.Debug("resolved current location", "latitude", lat, "longitude", lon)

	return types.NewCoordinates(lat, lon), nil
}
