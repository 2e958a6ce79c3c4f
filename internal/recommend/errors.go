package recommend

import "fmt"

// InvalidAirportCodeError is returned when a code is not three uppercase letters
type InvalidAirportCodeError struct {
	Code string
}

func (e *InvalidAirportCodeError) Error() string {
	return fmt.Sprintf("invalid airport code %q, expected 3 uppercase letters", e.Code)
}

// DateRangeError is returned when the target date is outside the forecast window
type DateRangeError struct {
	Offset int
}

func (e *DateRangeError) Error() string {
	return fmt.Sprintf("date must be between 0 and %d days in the future, inclusive", MaxDayOffset)
}
