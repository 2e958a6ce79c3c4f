package location

import (
	"context"

	"weatherwear/internal/types"
)

// CurrentLocationProvider geolocates the machine making the request
type CurrentLocationProvider interface {
	CurrentLocation(ctx context.Context) (types.Coordinates, error)
}

// AirportLocationProvider looks up an airport's coordinates by IATA code
type AirportLocationProvider interface {
	AirportLocation(ctx context.Context, code string) (types.Coordinates, error)
}
