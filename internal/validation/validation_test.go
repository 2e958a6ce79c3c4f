package validation

import (
	"errors"
	"testing"
)

func TestIsDateValid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "ordinary date", input: "2023-06-15", want: true},
		{name: "leap day in leap year", input: "2024-02-29", want: true},
		{name: "leap day in common year", input: "2023-02-29", want: false},
		{name: "leap day in century leap year", input: "2000-02-29", want: true},
		{name: "leap day in century common year", input: "1900-02-29", want: false},
		{name: "month 13", input: "2023-13-01", want: false},
		{name: "day 32", input: "2023-01-32", want: false},
		{name: "april 31", input: "2023-04-31", want: false},
		{name: "day zero", input: "2023-01-00", want: false},
		{name: "single digit month", input: "2023-1-05", want: false},
		{name: "single digit day", input: "2023-01-5", want: false},
		{name: "slashes", input: "2023/01/05", want: false},
		{name: "day first", input: "05-01-2023", want: false},
		{name: "trailing text", input: "2023-01-05T00:00", want: false},
		{name: "leading space", input: " 2023-01-05", want: false},
		{name: "signed year", input: "-001-01-01", want: false},
		{name: "empty", input: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsDateValid(tt.input); got != tt.want {
				t.Errorf("IsDateValid(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestDayDifference(t *testing.T) {
	tests := []struct {
		name  string
		date1 string
		date2 string
		want  int
	}{
		{name: "same day", date1: "2023-01-01", date2: "2023-01-01", want: 0},
		{name: "next day", date1: "2023-01-01", date2: "2023-01-02", want: 1},
		{name: "previous day", date1: "2023-01-01", date2: "2022-12-31", want: -1},
		{name: "ten days ahead", date1: "2023-01-01", date2: "2023-01-11", want: 10},
		{name: "across leap day", date1: "2024-02-28", date2: "2024-03-01", want: 2},
		{name: "across common february", date1: "2023-02-28", date2: "2023-03-01", want: 1},
		{name: "leap year length", date1: "2024-01-01", date2: "2025-01-01", want: 366},
		{name: "common year length", date1: "2023-01-01", date2: "2024-01-01", want: 365},
		{name: "century span", date1: "2000-01-01", date2: "2100-01-01", want: 36525},
		{name: "reverse century span", date1: "2100-01-01", date2: "2000-01-01", want: -36525},
		{name: "full calendar range", date1: "0001-01-01", date2: "9999-12-31", want: 3652058},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DayDifference(tt.date1, tt.date2)
			if err != nil {
				t.Fatalf("DayDifference(%q, %q) unexpected error = %v", tt.date1, tt.date2, err)
			}
			if got != tt.want {
				t.Errorf("DayDifference(%q, %q) = %d, want %d", tt.date1, tt.date2, got, tt.want)
			}
		})
	}
}

func TestDayDifference_Antisymmetric(t *testing.T) {
	dates := []string{"1999-12-31", "2000-02-29", "2023-01-01", "2024-02-29", "2100-03-01"}

	for _, a := range dates {
		for _, b := range dates {
			ab, err := DayDifference(a, b)
			if err != nil {
				t.Fatalf("DayDifference(%q, %q) unexpected error = %v", a, b, err)
			}
			ba, err := DayDifference(b, a)
			if err != nil {
				t.Fatalf("DayDifference(%q, %q) unexpected error = %v", b, a, err)
			}
			if ab != -ba {
				t.Errorf("DayDifference(%q, %q) = %d, DayDifference(%q, %q) = %d", a, b, ab, b, a, ba)
			}
		}
	}
}

func TestDayDifference_InvalidDates(t *testing.T) {
	tests := []struct {
		name     string
		date1    string
		date2    string
		wantDate string
	}{
		{name: "first invalid", date1: "2023-02-29", date2: "2023-03-01", wantDate: "2023-02-29"},
		{name: "second invalid", date1: "2023-03-01", date2: "01-03-2023", wantDate: "01-03-2023"},
		{name: "both invalid", date1: "", date2: "nope", wantDate: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DayDifference(tt.date1, tt.date2)
			var formatErr *DateFormatError
			if !errors.As(err, &formatErr) {
				t.Fatalf("DayDifference() error = %v, want *DateFormatError", err)
			}
			if formatErr.Date != tt.wantDate {
				t.Errorf("DateFormatError.Date = %q, want %q", formatErr.Date, tt.wantDate)
			}
		})
	}
}

func TestIsAirportCodeValid(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"MLA", true},
		{"JFK", true},
		{"mla", false},
		{"Mla", false},
		{"ML", false},
		{"MLAA", false},
		{"ML1", false},
		{"M-A", false},
		{"M A", false},
		{" MLA", false},
		{"MLA\n", false},
		{"ÀBC", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := IsAirportCodeValid(tt.input); got != tt.want {
				t.Errorf("IsAirportCodeValid(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
