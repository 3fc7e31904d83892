package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	cache "goaltrack-server/src/db"
	db "goaltrack-server/src/db/sql"
	"goaltrack-server/src/models"
	"goaltrack-server/src/util"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

func GetSummary(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)

		if v, ok := cache.Cache.Get(cache.SummaryCacheKey(userID)); ok {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(v.(models.Summary))
			return
		}

		income, err := db.GetMonthlyIncome(r.Context(), pool, userID)
		if err != nil {
			log.Printf("ERROR: Failed to get income for user %d: %v", userID, err)
			util.Message(w, http.StatusInternalServerError, "internal error")
			return
		}

		goals, err := db.GetGoalInvestments(r.Context(), pool, userID)
		if err != nil {
			log.Printf("ERROR: Failed to get goal investments for user %d: %v", userID, err)
			util.Message(w, http.StatusInternalServerError, "internal error")
			return
		}

		summary := buildSummary(income, goals)

		cache.Cache.Set(cache.SummaryCacheKey(userID), summary, 1)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(summary)
	}
}

// buildSummary totals with decimals so that e.g. 500 - 200 comes out
// as exactly 300 rather than a float artifact. Savings may go
// negative when investments exceed income; it is not clamped.
func buildSummary(income float64, goals []models.GoalInvestment) models.Summary {
	total := decimal.Zero
	for _, g := range goals {
		total = total.Add(decimal.NewFromFloat(g.InvestmentAmount))
	}
	savings := decimal.NewFromFloat(income).Sub(total)

	if goals == nil {
		goals = []models.GoalInvestment{}
	}

	return models.Summary{
		Income:          income,
		TotalInvestment: total.InexactFloat64(),
		Savings:         savings.InexactFloat64(),
		Goals:           goals,
	}
}
