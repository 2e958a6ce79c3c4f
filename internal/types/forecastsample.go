package types

// ForecastSample is a single day of forecast data.
// Precipitation is passed through as reported (amount or probability).
type ForecastSample struct {
	TemperatureCelsius float64
	Precipitation      float64
}
