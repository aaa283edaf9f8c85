package rest

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
)

type pingerMock struct {
	err error
}

func (m *pingerMock) Ping(_ context.Context) error {
	return m.err
}

func decodeHealth(t *testing.T, rec *httptest.ResponseRecorder) HealthResponse {
	t.Helper()
	var resp HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return resp
}

func TestLive_Always200(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(map[string]Pinger{"database": &pingerMock{err: errors.New("down")}}, "test-version")

	rec := httptest.NewRecorder()
	h.Live(rec, httptest.NewRequest(http.MethodGet, "/live", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	resp := decodeHealth(t, rec)
	if resp.Status != "ok" {
		t.Errorf("expected status 'ok', got %q", resp.Status)
	}
	if resp.Timestamp.IsZero() {
		t.Error("expected non-zero timestamp")
	}
}

func TestReady(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		deps       map[string]Pinger
		wantCode   int
		wantStatus string
	}{
		{"all up", map[string]Pinger{"database": &pingerMock{}, "cache": &pingerMock{}}, http.StatusOK, "ok"},
		{"database down", map[string]Pinger{"database": &pingerMock{err: errors.New("refused")}}, http.StatusServiceUnavailable, "down"},
		{"cache down", map[string]Pinger{"database": &pingerMock{}, "cache": &pingerMock{err: errors.New("refused")}}, http.StatusServiceUnavailable, "down"},
		{"no deps", nil, http.StatusOK, "ok"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := NewHealthHandler(tt.deps, "test-version")
			rec := httptest.NewRecorder()
			h.Ready(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))

			if rec.Code != tt.wantCode {
				t.Fatalf("expected status %d, got %d", tt.wantCode, rec.Code)
			}
			if resp := decodeHealth(t, rec); resp.Status != tt.wantStatus {
				t.Errorf("expected status %q, got %q", tt.wantStatus, resp.Status)
			}
		})
	}
}

func TestHealth_AllOK(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(map[string]Pinger{"database": &pingerMock{}, "cache": &pingerMock{}}, "v1.0.0")

	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	resp := decodeHealth(t, rec)
	if resp.Version != "v1.0.0" {
		t.Errorf("expected version 'v1.0.0', got %q", resp.Version)
	}
	for _, name := range []string{"database", "cache"} {
		comp, ok := resp.Components[name]
		if !ok {
			t.Fatalf("expected %q component in response", name)
		}
		if comp.Status != "ok" || comp.Latency == "" {
			t.Errorf("%s: got %+v", name, comp)
		}
	}
}

func TestHealth_ComponentDown(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(map[string]Pinger{
		"database": &pingerMock{},
		"cache":    &pingerMock{err: errors.New("connection refused")},
	}, "v1.0.0")

	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", rec.Code)
	}
	resp := decodeHealth(t, rec)
	if resp.Status != "down" {
		t.Errorf("expected status 'down', got %q", resp.Status)
	}
	if resp.Components["cache"].Status != "down" {
		t.Errorf("expected cache down, got %+v", resp.Components["cache"])
	}
	if resp.Components["database"].Status != "ok" {
		t.Errorf("expected database ok, got %+v", resp.Components["database"])
	}
}

func TestNewHealthHandler_SkipsNilPingers(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(map[string]Pinger{"database": &pingerMock{}, "cache": nil}, "")

	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	resp := decodeHealth(t, rec)
	if _, ok := resp.Components["cache"]; ok {
		t.Error("nil pinger should not be reported")
	}
}
