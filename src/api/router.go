package api

import (
	"net/http"

	"goaltrack-server/src/config"
	"goaltrack-server/src/handlers"
	"goaltrack-server/src/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRouter(pool *pgxpool.Pool, cfg config.Config) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.CORSMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	r.Post("/signup", handlers.Signup(pool))
	r.Post("/login", handlers.Login(pool, cfg))

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuth(cfg.JWTSecret))

		// Income
		r.Post("/income", handlers.SetIncome(pool))

		// Goals
		r.Post("/goals", handlers.CreateGoal(pool))
		r.Get("/goals", handlers.GetGoals(pool))
		r.Put("/goals/{goalId}", handlers.UpdateGoal(pool))
		r.Delete("/goals/{goalId}", handlers.DeleteGoal(pool))

		// Investments
		r.Put("/goals/{goalId}/invest", handlers.AddInvestment(pool))
		r.Put("/goals/{goalId}/invest/edit", handlers.EditInvestment(pool))
		r.Delete("/goals/{goalId}/invest", handlers.ResetInvestment(pool))

		// Tasks
		r.Post("/tasks", handlers.AddTask(pool))
		r.Get("/goals/{goalId}/tasks", handlers.GetTasksForGoal(pool))
		r.Put("/tasks/{taskId}", handlers.UpdateTask(pool))
		r.Delete("/tasks/{taskId}", handlers.DeleteTask(pool))

		// Summary
		r.Get("/summary", handlers.GetSummary(pool))
	})

	return r
}
