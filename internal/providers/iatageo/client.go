package iatageo

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"weatherwear/internal/providers/rest"
	"weatherwear/internal/types"
)

// API Docs: https://www.iatageo.com/
// Sample request: https://www.iatageo.com/getLatLng/MLA
const (
	baseURL = "https://www.iatageo.com"
)

type Client struct {
	doer    rest.Doer
	baseURL string
	logger  *slog.Logger
}

func NewClient(doer rest.Doer, baseURLOverride string, logger *slog.Logger) *Client {
	if baseURLOverride == "" {
		baseURLOverride = baseURL
	}
	return &Client{
		doer:    doer,
		baseURL: baseURLOverride,
		logger:  logger.With("component", "iatageo-client"),
	}
}

// AirportLocation looks up the coordinates of an airport by IATA code.
// Unknown codes come back as a JSON error object without coordinates.
func (c *Client) AirportLocation(ctx context.Context, code string) (types.Coordinates, error) {
	resp, err := c.doer.Do(ctx, rest.Request{
		Method:  http.MethodGet,
		BaseURL: c.baseURL,
		Path:    "/getLatLng/" + url.PathEscape(code),
	})
	if err != nil {
		return types.Coordinates{}, fmt.Errorf("iatageo lookup for %s failed: %w", code, err)
	}

	obj, err := rest.DecodeObject(resp.Body)
	if err != nil {
		return types.Coordinates{}, fmt.Errorf("iatageo lookup for %s failed: %w", code, err)
	}

	lat, err := rest.StringField(obj, "latitude")
	if err != nil {
		return types.Coordinates{}, fmt.Errorf("iatageo lookup for %s failed: %w", code, err)
	}
	lon, err := rest.StringField(obj, "longitude")
	if err != nil {
		return types.Coordinates{}, fmt.Errorf("iatageo lookup for %s failed: %w", code, err)
	}

	c.logger.Debug("resolved airport location", "code", code, "latitude", lat, "longitude", lon)

	return types.NewCoordinates(lat, lon), nil
}
