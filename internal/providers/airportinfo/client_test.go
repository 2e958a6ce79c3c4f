package airportinfo

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"weatherwear/internal/providers/rest"
)

func TestClient_AirportLocation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/airport" {
			t.Errorf("path = %s, want /airport", r.URL.Path)
		}
		if got := r.URL.Query().Get("iata"); got != "MLA" {
			t.Errorf("iata = %s, want MLA", got)
		}
		if got := r.Header.Get("X-RapidAPI-Key"); got != "secret" {
			t.Errorf("X-RapidAPI-Key = %q, want secret", got)
		}
		if got := r.Header.Get("X-RapidAPI-Host"); got != "airport-info.p.rapidapi.com" {
			t.Errorf("X-RapidAPI-Host = %q, want airport-info.p.rapidapi.com", got)
		}
		_, _ = w.Write([]byte(`{"id":3447,"iata":"MLA","icao":"LMML","name":"Malta International Airport","latitude":35.857498,"longitude":14.4775}`))
	}))
	defer server.Close()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := NewClient(rest.NewClient(time.Second, "", logger), server.URL, "secret", "", logger)

	got, err := client.AirportLocation(context.Background(), "MLA")
	if err != nil {
		t.Fatalf("AirportLocation() unexpected error = %v", err)
	}
	if got.Latitude != "35.857498" || got.Longitude != "14.4775" {
		t.Errorf("AirportLocation() = %+v, want lat=35.857498 lon=14.4775", got)
	}
}

func TestClient_AirportLocation_Forbidden(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message":"You are not subscribed to this API."}`))
	}))
	defer server.Close()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := NewClient(rest.NewClient(time.Second, "", logger), server.URL, "", "", logger)

	_, err := client.AirportLocation(context.Background(), "MLA")

	var statusErr *rest.UnrecognizedResponseError
	if !errors.As(err, &statusErr) {
		t.Fatalf("AirportLocation() error = %v, want *rest.UnrecognizedResponseError", err)
	}
	if statusErr.StatusCode != http.StatusForbidden {
		t.Errorf("StatusCode = %d, want 403", statusErr.StatusCode)
	}
}
