package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	cache "goaltrack-server/src/db"
	db "goaltrack-server/src/db/sql"
	"goaltrack-server/src/util"

	"github.com/jackc/pgx/v5/pgxpool"
)

type investmentRequest struct {
	InvestmentAmount float64 `json:"investment_amount"`
}

// AddInvestment increments the goal's accumulated amount. The replace
// and reset variants below are separate operations on the same column,
// routed by verb and sub-path.
func AddInvestment(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)

		goalID, err := parseIDParam(r, "goalId")
		if err != nil {
			util.Message(w, http.StatusBadRequest, "invalid goal id")
			return
		}

		var req investmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode add investment request body for user %d: %v", userID, err)
			util.Message(w, http.StatusBadRequest, "invalid request")
			return
		}

		if req.InvestmentAmount <= 0 {
			log.Printf("ERROR: Rejected non-positive investment %f for goal %d, user %d", req.InvestmentAmount, goalID, userID)
			util.Message(w, http.StatusBadRequest, "Invalid investment amount")
			return
		}

		if err := db.AddInvestment(r.Context(), pool, userID, goalID, req.InvestmentAmount); err != nil {
			if errors.Is(err, db.ErrGoalNotFound) {
				util.Message(w, http.StatusNotFound, "Goal not found")
				return
			}
			log.Printf("ERROR: Failed to add investment to goal %d for user %d: %v", goalID, userID, err)
			util.Message(w, http.StatusInternalServerError, "internal error")
			return
		}

		cache.InvalidateUserCaches(userID)

		log.Printf("INFO: Added investment %f to goal %d for user %d", req.InvestmentAmount, goalID, userID)
		util.Message(w, http.StatusOK, "Investment added successfully")
	}
}

// EditInvestment replaces the accumulated amount outright. Zero is
// allowed and equivalent to a reset.
func EditInvestment(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)

		goalID, err := parseIDParam(r, "goalId")
		if err != nil {
			util.Message(w, http.StatusBadRequest, "invalid goal id")
			return
		}

		var req investmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode edit investment request body for user %d: %v", userID, err)
			util.Message(w, http.StatusBadRequest, "invalid request")
			return
		}

		if req.InvestmentAmount < 0 {
			log.Printf("ERROR: Rejected negative investment %f for goal %d, user %d", req.InvestmentAmount, goalID, userID)
			util.Message(w, http.StatusBadRequest, "Invalid amount")
			return
		}

		if err := db.SetInvestment(r.Context(), pool, userID, goalID, req.InvestmentAmount); err != nil {
			if errors.Is(err, db.ErrGoalNotFound) {
				util.Message(w, http.StatusNotFound, "Goal not found")
				return
			}
			log.Printf("ERROR: Failed to edit investment on goal %d for user %d: %v", goalID, userID, err)
			util.Message(w, http.StatusInternalServerError, "internal error")
			return
		}

		cache.InvalidateUserCaches(userID)

		log.Printf("INFO: Set investment %f on goal %d for user %d", req.InvestmentAmount, goalID, userID)
		util.Message(w, http.StatusOK, "Investment updated successfully")
	}
}

func ResetInvestment(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)

		goalID, err := parseIDParam(r, "goalId")
		if err != nil {
			util.Message(w, http.StatusBadRequest, "invalid goal id")
			return
		}

		if err := db.ResetInvestment(r.Context(), pool, userID, goalID); err != nil {
			log.Printf("ERROR: Failed to reset investment on goal %d for user %d: %v", goalID, userID, err)
			util.Message(w, http.StatusInternalServerError, "internal error")
			return
		}

		cache.InvalidateUserCaches(userID)

		log.Printf("INFO: Reset investment on goal %d for user %d", goalID, userID)
		util.Message(w, http.StatusOK, "Investment deleted successfully")
	}
}
