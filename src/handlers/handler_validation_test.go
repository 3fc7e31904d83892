package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

// The cases here all fail validation before any storage access, so the
// handlers are mounted with a nil pool.
func testRouter() *chi.Mux {
	r := chi.NewRouter()
	r.Post("/income", SetIncome(nil))
	r.Post("/goals", CreateGoal(nil))
	r.Put("/goals/{goalId}", UpdateGoal(nil))
	r.Put("/goals/{goalId}/invest", AddInvestment(nil))
	r.Put("/goals/{goalId}/invest/edit", EditInvestment(nil))
	r.Post("/tasks", AddTask(nil))
	r.Put("/tasks/{taskId}", UpdateTask(nil))
	return r
}

func authedRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	return req.WithContext(context.WithValue(req.Context(), "user_id", int64(1)))
}

func TestValidationRejections(t *testing.T) {
	r := testRouter()

	cases := []struct {
		name   string
		method string
		target string
		body   string
	}{
		{"income malformed body", http.MethodPost, "/income", "{not json"},
		{"income zero", http.MethodPost, "/income", `{"monthly_income": 0}`},
		{"income negative", http.MethodPost, "/income", `{"monthly_income": -500}`},
		{"goal missing title", http.MethodPost, "/goals", `{"category":"vehicle","target_amount":10000}`},
		{"goal bad date", http.MethodPost, "/goals", `{"title":"Car","target_date":"01/01/2026"}`},
		{"goal update bad id", http.MethodPut, "/goals/abc", `{"title":"Car"}`},
		{"goal update missing title", http.MethodPut, "/goals/5", `{"category":"vehicle"}`},
		{"invest bad goal id", http.MethodPut, "/goals/abc/invest", `{"investment_amount": 100}`},
		{"invest zero", http.MethodPut, "/goals/5/invest", `{"investment_amount": 0}`},
		{"invest missing amount", http.MethodPut, "/goals/5/invest", `{}`},
		{"invest negative", http.MethodPut, "/goals/5/invest", `{"investment_amount": -10}`},
		{"invest edit negative", http.MethodPut, "/goals/5/invest/edit", `{"investment_amount": -1}`},
		{"task missing goal id", http.MethodPost, "/tasks", `{"task_name":"save receipts"}`},
		{"task missing name", http.MethodPost, "/tasks", `{"goal_id": 5}`},
		{"task update bad id", http.MethodPut, "/tasks/abc", `{"task_name":"x","status":"done"}`},
		{"task update missing name", http.MethodPut, "/tasks/5", `{"status":"done"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, authedRequest(tc.method, tc.target, tc.body))

			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %q, want application/json", ct)
			}
			if !strings.Contains(rec.Body.String(), "message") {
				t.Errorf("body %q missing message field", rec.Body.String())
			}
		})
	}
}
