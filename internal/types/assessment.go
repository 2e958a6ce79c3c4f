package types

// WeatherAssessment is the binary view of a forecast used to pick clothing
type WeatherAssessment struct {
	IsCold    bool `json:"isCold"`
	IsRaining bool `json:"isRaining"`
}
