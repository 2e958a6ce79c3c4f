package weather

import "weatherwear/internal/types"

const (
	// ColdThresholdCelsius is the highest daily max temperature still considered cold
	ColdThresholdCelsius = 15.0
	// RainThreshold is exceeded by any measurable precipitation
	RainThreshold = 0.0
)

// Classify reduces a forecast sample to the two facts the recommendation needs.
func Classify(sample types.ForecastSample) types.WeatherAssessment {
	return types.WeatherAssessment{
		IsCold:    sample.TemperatureCelsius <= ColdThresholdCelsius,
		IsRaining: sample.Precipitation > RainThreshold,
	}
}
