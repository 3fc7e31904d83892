package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	cache "goaltrack-server/src/db"
	db "goaltrack-server/src/db/sql"
	"goaltrack-server/src/models"
	"goaltrack-server/src/util"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func CreateGoal(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)

		var req models.GoalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode create goal request body for user %d: %v", userID, err)
			util.Message(w, http.StatusBadRequest, "invalid request")
			return
		}

		if req.Title == "" {
			log.Printf("ERROR: Rejected goal without title for user %d", userID)
			util.Message(w, http.StatusBadRequest, "Title is required")
			return
		}

		if req.TargetDate != "" && !util.ValidateDate(req.TargetDate) {
			log.Printf("ERROR: Invalid target date %q for user %d", req.TargetDate, userID)
			util.Message(w, http.StatusBadRequest, "target_date must be YYYY-MM-DD")
			return
		}

		goal := &models.Goal{
			UserID:       userID,
			Title:        req.Title,
			Category:     req.Category,
			TargetAmount: req.TargetAmount,
			TargetDate:   req.TargetDate,
		}
		created, err := db.CreateGoal(r.Context(), pool, goal)
		if err != nil {
			log.Printf("ERROR: Failed to create goal for user %d: %v", userID, err)
			util.Message(w, http.StatusInternalServerError, "internal error")
			return
		}

		cache.InvalidateUserCaches(userID)

		log.Printf("INFO: Created goal id %d for user %d", created.ID, userID)
		util.Message(w, http.StatusOK, "Goal created successfully")
	}
}

func GetGoals(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)

		if v, ok := cache.Cache.Get(cache.GoalsCacheKey(userID)); ok {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(v.([]models.Goal))
			return
		}

		goals, err := db.GetAllGoalsForUser(r.Context(), pool, userID)
		if err != nil {
			log.Printf("ERROR: Failed to get goals for user %d: %v", userID, err)
			util.Message(w, http.StatusInternalServerError, "internal error")
			return
		}
		if goals == nil {
			goals = []models.Goal{}
		}

		cache.Cache.Set(cache.GoalsCacheKey(userID), goals, 1)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(goals)
	}
}

func UpdateGoal(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)

		goalID, err := parseIDParam(r, "goalId")
		if err != nil {
			util.Message(w, http.StatusBadRequest, "invalid goal id")
			return
		}

		var req models.GoalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode update goal request body for user %d: %v", userID, err)
			util.Message(w, http.StatusBadRequest, "invalid request")
			return
		}

		if req.Title == "" {
			util.Message(w, http.StatusBadRequest, "Title is required")
			return
		}

		if req.TargetDate != "" && !util.ValidateDate(req.TargetDate) {
			util.Message(w, http.StatusBadRequest, "target_date must be YYYY-MM-DD")
			return
		}

		goal := &models.Goal{
			ID:           goalID,
			UserID:       userID,
			Title:        req.Title,
			Category:     req.Category,
			TargetAmount: req.TargetAmount,
			TargetDate:   req.TargetDate,
		}
		if err := db.UpdateGoal(r.Context(), pool, goal); err != nil {
			if errors.Is(err, db.ErrGoalNotFound) {
				log.Printf("ERROR: Goal id %d not found for user %d", goalID, userID)
				util.Message(w, http.StatusNotFound, "Goal not found")
				return
			}
			log.Printf("ERROR: Failed to update goal id %d for user %d: %v", goalID, userID, err)
			util.Message(w, http.StatusInternalServerError, "internal error")
			return
		}

		cache.InvalidateUserCaches(userID)

		log.Printf("INFO: Updated goal id %d for user %d", goalID, userID)
		util.Message(w, http.StatusOK, "Goal updated successfully")
	}
}

func DeleteGoal(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)

		goalID, err := parseIDParam(r, "goalId")
		if err != nil {
			util.Message(w, http.StatusBadRequest, "invalid goal id")
			return
		}

		if err := db.DeleteGoal(r.Context(), pool, userID, goalID); err != nil {
			log.Printf("ERROR: Failed to delete goal id %d for user %d: %v", goalID, userID, err)
			util.Message(w, http.StatusInternalServerError, "internal error")
			return
		}

		cache.InvalidateUserCaches(userID)

		log.Printf("INFO: Deleted goal id %d for user %d", goalID, userID)
		util.Message(w, http.StatusOK, "Goal deleted successfully")
	}
}

func parseIDParam(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		log.Printf("ERROR: Invalid %s param: %s", name, raw)
		return 0, err
	}
	return id, nil
}
