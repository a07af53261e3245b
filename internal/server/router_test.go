package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"menuapp/internal/handlers"
)

func TestNewRouterRegistersHealthRoute(t *testing.T) {
	router := newRouter(nil)
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected /healthz to return 200, got %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Fatalf("expected application/json content type, got %q", ct)
	}
	if rr.Header().Get(requestIDHeader) == "" {
		t.Fatal("expected request id header to be set")
	}
}

func TestRouterAcceptsTrailingSlash(t *testing.T) {
	router := newRouter(nil)
	for _, path := range []string{"/api/v1/healthchecker", "/api/v1/healthchecker/", "/healthz/"} {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		if rr.Code != http.StatusOK {
			t.Fatalf("expected %s to return 200, got %d", path, rr.Code)
		}
	}
}

func TestRouterKeepsIncomingRequestID(t *testing.T) {
	router := newRouter(nil)
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	router.ServeHTTP(rr, req)

	if got := rr.Header().Get(requestIDHeader); got != "abc-123" {
		t.Fatalf("expected request id to be echoed, got %q", got)
	}
}

func TestRouterAppliesCORS(t *testing.T) {
	router := newRouter([]string{"http://localhost:3000"})
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	router.ServeHTTP(rr, req)

	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Fatalf("expected allowed origin header, got %q", got)
	}

	rr = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("Origin", "http://evil.example")
	router.ServeHTTP(rr, req)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected foreign origin to be rejected, got %d", rr.Code)
	}
}

func TestRouterReportsMissingService(t *testing.T) {
	handlers.Configure(nil, nil)
	router := newRouter(nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/menus", nil))

	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 without configured service, got %d", rr.Code)
	}
}
