package main

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"weatherwear/internal/config"
	"weatherwear/internal/providers/rest"
	"weatherwear/internal/recommend"
	"weatherwear/internal/validation"

	"github.com/google/uuid"
)

type fakeRecommendService struct {
	message  string
	err      error
	lastCode string
	lastDate string
}

func (f *fakeRecommendService) ForCurrentLocation(ctx context.Context) (string, error) {
	return f.message, f.err
}

func (f *fakeRecommendService) ForAirportAndDate(ctx context.Context, code, date string) (string, error) {
	f.lastCode = code
	f.lastDate = date
	return f.message, f.err
}

func newTestApp(svc recommend.Service) *App {
	cfg := &config.Config{Server: config.ServerConfig{GinMode: "test"}}
	return NewAppWithService(cfg, svc, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func serve(app *App, target string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	app.router.ServeHTTP(rec, req)
	return rec
}

func TestHandlePing(t *testing.T) {
	rec := serve(newTestApp(&fakeRecommendService{}), "/ping", nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body PingResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body.Message != "pong" {
		t.Errorf("message = %q, want pong", body.Message)
	}
}

func TestHandleRecommendations(t *testing.T) {
	const message = "It is warm so you should wear light clothing.\nIt is not raining so you don't need an umbrella."

	tests := []struct {
		name        string
		target      string
		svcErr      error
		wantStatus  int
		wantMessage string
		errContains string
	}{
		{
			name:        "current location",
			target:      "/recommendations/current",
			wantStatus:  http.StatusOK,
			wantMessage: message,
		},
		{
			name:        "airport",
			target:      "/recommendations/airport?code=MLA&date=2023-01-01",
			wantStatus:  http.StatusOK,
			wantMessage: message,
		},
		{
			name:        "airport missing date",
			target:      "/recommendations/airport?code=MLA",
			wantStatus:  http.StatusBadRequest,
			errContains: "Date",
		},
		{
			name:        "invalid airport code",
			target:      "/recommendations/airport?code=mla&date=2023-01-01",
			svcErr:      &recommend.InvalidAirportCodeError{Code: "mla"},
			wantStatus:  http.StatusBadRequest,
			errContains: "invalid airport code",
		},
		{
			name:        "date out of range",
			target:      "/recommendations/airport?code=MLA&date=2024-01-01",
			svcErr:      &recommend.DateRangeError{Offset: 365},
			wantStatus:  http.StatusBadRequest,
			errContains: "between 0 and 10 days",
		},
		{
			name:        "malformed date",
			target:      "/recommendations/airport?code=MLA&date=01-01-2023",
			svcErr:      &validation.DateFormatError{Date: "01-01-2023"},
			wantStatus:  http.StatusBadRequest,
			errContains: "YYYY-MM-DD",
		},
		{
			name:        "upstream timeout",
			target:      "/recommendations/current",
			svcErr:      &rest.TimeoutError{URL: "http://ip-api.com/json", Err: context.DeadlineExceeded},
			wantStatus:  http.StatusBadGateway,
			errContains: "weather provider unavailable",
		},
		{
			name:        "upstream status",
			target:      "/recommendations/airport?code=MLA&date=2023-01-01",
			svcErr:      &rest.UnrecognizedResponseError{URL: "https://www.iatageo.com/getLatLng/MLA", StatusCode: 500},
			wantStatus:  http.StatusBadGateway,
			errContains: "weather provider unavailable",
		},
		{
			name:        "unexpected error",
			target:      "/recommendations/current",
			svcErr:      errors.New("failed to fetch http://ip-api.com/json: connection refused"),
			wantStatus:  http.StatusInternalServerError,
			errContains: "failed to recommend clothing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeRecommendService{message: message, err: tt.svcErr}
			rec := serve(newTestApp(svc), tt.target, nil)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}

			var body map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}
			if tt.wantMessage != "" && body["message"] != tt.wantMessage {
				t.Errorf("message = %q, want %q", body["message"], tt.wantMessage)
			}
			if tt.errContains != "" && !strings.Contains(body["error"], tt.errContains) {
				t.Errorf("error = %q, want error containing %q", body["error"], tt.errContains)
			}
		})
	}
}

func TestHandleAirportRecommendation_PassesQuery(t *testing.T) {
	svc := &fakeRecommendService{message: "ok"}
	serve(newTestApp(svc), "/recommendations/airport?code=JFK&date=2023-01-05", nil)

	if svc.lastCode != "JFK" || svc.lastDate != "2023-01-05" {
		t.Errorf("called with (%q, %q), want (JFK, 2023-01-05)", svc.lastCode, svc.lastDate)
	}
}

func TestRequestID(t *testing.T) {
	app := newTestApp(&fakeRecommendService{})

	rec := serve(app, "/ping", nil)
	generated := rec.Header().Get(requestIDHeader)
	if _, err := uuid.Parse(generated); err != nil {
		t.Errorf("generated %s = %q is not a uuid", requestIDHeader, generated)
	}

	incoming := uuid.NewString()
	rec = serve(app, "/ping", http.Header{requestIDHeader: {incoming}})
	if got := rec.Header().Get(requestIDHeader); got != incoming {
		t.Errorf("%s = %q, want caller's %q", requestIDHeader, got, incoming)
	}

	rec = serve(app, "/ping", http.Header{requestIDHeader: {"not a uuid"}})
	if got := rec.Header().Get(requestIDHeader); got == "not a uuid" {
		t.Errorf("%s echoed an invalid id", requestIDHeader)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	app := newTestApp(&fakeRecommendService{})
	serve(app, "/ping", nil)

	rec := serve(app, "/metrics", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "weatherwear_http_requests_total") {
		t.Error("metrics output missing weatherwear_http_requests_total")
	}
}
