package validation

import (
	"fmt"
	"regexp"
	"time"
)

// DateLayout is the calendar format accepted for user supplied dates (YYYY-MM-DD)
const DateLayout = "2006-01-02"

const secondsPerDay = 24 * 60 * 60

var (
	airportCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)
	datePattern        = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// DateFormatError is returned when a date is not a real YYYY-MM-DD calendar date
type DateFormatError struct {
	Date string
}

func (e *DateFormatError) Error() string {
	return fmt.Sprintf("expected date %q to be in format YYYY-MM-DD", e.Date)
}

// IsDateValid reports whether date is a real calendar date in YYYY-MM-DD form.
func IsDateValid(date string) bool {
	_, err := parseDate(date)
	return err == nil
}

// DayDifference returns the signed number of days from date1 to date2.
func DayDifference(date1, date2 string) (int, error) {
	from, err := parseDate(date1)
	if err != nil {
		return 0, err
	}
	to, err := parseDate(date2)
	if err != nil {
		return 0, err
	}

	// Both values are UTC midnights, so the difference is a whole number of days.
	// Unix seconds avoid the ~292 year limit of time.Duration.
	return int((to.Unix() - from.Unix()) / secondsPerDay), nil
}

// IsAirportCodeValid reports whether code is exactly three uppercase ASCII letters
func IsAirportCodeValid(code string) bool {
	return airportCodePattern.MatchString(code)
}

func parseDate(date string) (time.Time, error) {
	// time.Parse alone lets a signed year through, e.g. "-001-01-01"
	if !datePattern.MatchString(date) {
		return time.Time{}, &DateFormatError{Date: date}
	}
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return time.Time{}, &DateFormatError{Date: date}
	}
	return t, nil
}
