package recommend

import (
	"fmt"

	"weatherwear/internal/types"
)

func renderMessage(a types.WeatherAssessment) string {
	temperature, clothing := "warm", "light"
	if a.IsCold {
		temperature, clothing = "cold", "warm"
	}

	raining, umbrella := "not", "don't"
	if a.IsRaining {
		raining, umbrella = "currently", "do"
	}

	return fmt.Sprintf("It is %s so you should wear %s clothing.\nIt is %s raining so you %s need an umbrella.",
		temperature, clothing, raining, umbrella)
}
