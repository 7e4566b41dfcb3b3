package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/puchie21/curren/internal/models"
	"github.com/puchie21/curren/internal/service"
)

func getPath(t *testing.T, r http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestGetRates(t *testing.T) {
	rates := &mockRates{snap: models.RateSnapshot{
		BaseCode:          "EUR",
		ConversionRates:   map[string]float64{"EUR": 1, "USD": 1.18},
		TimeLastUpdateUTC: "Wed, 20 Aug 2025 00:00:01 +0000",
	}}
	r := newTestRouter(&service.Service{Rates: rates})

	w := getPath(t, r, "/exchange-rates?base=EUR")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	if rates.lastBase != "EUR" {
		t.Fatalf("base not forwarded, got %q", rates.lastBase)
	}

	var snap models.RateSnapshot
	if err := json.Unmarshal(w.Body.Bytes(), &snap); err != nil {
		t.Fatalf("unmarshal snapshot: %v", err)
	}
	if snap.BaseCode != "EUR" || snap.ConversionRates["USD"] != 1.18 {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
}

func TestGetRates_DefaultBase(t *testing.T) {
	rates := &mockRates{}
	r := newTestRouter(&service.Service{Rates: rates})

	w := getPath(t, r, "/exchange-rates")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	if rates.lastBase != "USD" {
		t.Fatalf("expected default base USD, got %q", rates.lastBase)
	}
}

func TestHealth(t *testing.T) {
	r := newTestRouter(&service.Service{})

	w := getPath(t, r, "/health")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	var m map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &m)
	if m["status"] != statusOK {
		t.Fatalf("unexpected health body: %v", m)
	}
}

func TestRequestLogger_SetsRequestID(t *testing.T) {
	r := newTestRouter(&service.Service{})

	w := getPath(t, r, "/health")
	if w.Header().Get("X-Request-Id") == "" {
		t.Fatal("expected X-Request-Id header")
	}
}
