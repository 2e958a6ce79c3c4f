package types

// Coordinates holds a latitude/longitude pair exactly as an upstream
// location provider formatted it.
type Coordinates struct {
	Latitude  string
	Longitude string
}

func NewCoordinates(latitude, longitude string) Coordinates {
	return Coordinates{
		Latitude:  latitude,
		Longitude: longitude,
	}
}
