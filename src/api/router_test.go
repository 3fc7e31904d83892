package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"goaltrack-server/src/config"
)

func testConfig() config.Config {
	return config.Config{
		JWTSecret: "test-secret",
		TokenTTL:  time.Hour,
	}
}

func TestHealthRoute(t *testing.T) {
	r := NewRouter(nil, testConfig())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if rec.Body.String() != "ok" {
		t.Errorf("body = %q, want \"ok\"", rec.Body.String())
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	r := NewRouter(nil, testConfig())

	cases := []struct {
		method string
		target string
	}{
		{http.MethodPost, "/income"},
		{http.MethodGet, "/goals"},
		{http.MethodPost, "/goals"},
		{http.MethodPut, "/goals/1"},
		{http.MethodDelete, "/goals/1"},
		{http.MethodPut, "/goals/1/invest"},
		{http.MethodPut, "/goals/1/invest/edit"},
		{http.MethodDelete, "/goals/1/invest"},
		{http.MethodPost, "/tasks"},
		{http.MethodGet, "/goals/1/tasks"},
		{http.MethodPut, "/tasks/1"},
		{http.MethodDelete, "/tasks/1"},
		{http.MethodGet, "/summary"},
	}

	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.target, strings.NewReader("{}"))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s %s: status = %d, want %d", tc.method, tc.target, rec.Code, http.StatusUnauthorized)
		}
	}
}

func TestProtectedRouteRejectsBadToken(t *testing.T) {
	r := NewRouter(nil, testConfig())

	req := httptest.NewRequest(http.MethodGet, "/goals", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusForbidden)
	}
}

func TestSignupIsPublic(t *testing.T) {
	r := NewRouter(nil, testConfig())

	// Invalid email fails validation before any storage access, but
	// proves the route is reachable without a token.
	body := `{"name":"A","email":"not-an-email","password":"pw"}`
	req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}
