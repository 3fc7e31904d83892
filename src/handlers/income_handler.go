package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	cache "goaltrack-server/src/db"
	db "goaltrack-server/src/db/sql"
	"goaltrack-server/src/util"

	"github.com/jackc/pgx/v5/pgxpool"
)

func SetIncome(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)

		var req struct {
			MonthlyIncome float64 `json:"monthly_income"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode income request body for user %d: %v", userID, err)
			util.Message(w, http.StatusBadRequest, "invalid request")
			return
		}

		if req.MonthlyIncome <= 0 {
			log.Printf("ERROR: Rejected non-positive income %f for user %d", req.MonthlyIncome, userID)
			util.Message(w, http.StatusBadRequest, "Invalid income")
			return
		}

		if err := db.UpsertIncome(r.Context(), pool, userID, req.MonthlyIncome); err != nil {
			log.Printf("ERROR: Failed to save income for user %d: %v", userID, err)
			util.Message(w, http.StatusInternalServerError, "internal error")
			return
		}

		cache.InvalidateUserCaches(userID)

		log.Printf("INFO: Income saved for user %d", userID)
		util.Message(w, http.StatusOK, "Income saved successfully")
	}
}
