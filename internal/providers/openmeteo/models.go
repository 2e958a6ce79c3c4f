package openmeteo

// ForecastAPIResponse is the subset of the open-meteo forecast response we read.
// Daily values are pointers because open-meteo reports gaps as null.
type ForecastAPIResponse struct {
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
	GenerationtimeMs float64 `json:"generationtime_ms"`
	UtcOffsetSeconds int     `json:"utc_offset_seconds"`
	Timezone         string  `json:"timezone"`
	Elevation        float64 `json:"elevation"`
	DailyUnits       *struct {
		Time             string `json:"time"`
		Temperature2MMax string `json:"temperature_2m_max"`
		PrecipitationSum string `json:"precipitation_sum"`
	} `json:"daily_units"`
	Daily *struct {
		Time             []string   `json:"time"`
		Temperature2MMax []*float64 `json:"temperature_2m_max"`
		PrecipitationSum []*float64 `json:"precipitation_sum"`
	} `json:"daily"`
}
