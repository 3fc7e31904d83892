package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	db "goaltrack-server/src/db/sql"
	"goaltrack-server/src/models"
	"goaltrack-server/src/util"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Task operations are scoped through the parent goal's owner, so a
// caller can only touch tasks on their own goals.

func AddTask(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)

		var req models.TaskRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode add task request body for user %d: %v", userID, err)
			util.Message(w, http.StatusBadRequest, "invalid request")
			return
		}

		if req.GoalID <= 0 {
			util.Message(w, http.StatusBadRequest, "invalid goal id")
			return
		}
		if req.TaskName == "" {
			util.Message(w, http.StatusBadRequest, "Task name is required")
			return
		}

		if err := db.CreateTask(r.Context(), pool, userID, req.GoalID, req.TaskName); err != nil {
			if errors.Is(err, db.ErrGoalNotFound) {
				log.Printf("ERROR: Task rejected, goal %d not owned by user %d", req.GoalID, userID)
				util.Message(w, http.StatusNotFound, "Goal not found")
				return
			}
			log.Printf("ERROR: Failed to add task to goal %d for user %d: %v", req.GoalID, userID, err)
			util.Message(w, http.StatusInternalServerError, "internal error")
			return
		}

		log.Printf("INFO: Added task to goal %d for user %d", req.GoalID, userID)
		util.Message(w, http.StatusOK, "Task added successfully")
	}
}

func GetTasksForGoal(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)

		goalID, err := parseIDParam(r, "goalId")
		if err != nil {
			util.Message(w, http.StatusBadRequest, "invalid goal id")
			return
		}

		tasks, err := db.GetTasksForGoal(r.Context(), pool, userID, goalID)
		if err != nil {
			log.Printf("ERROR: Failed to get tasks for goal %d, user %d: %v", goalID, userID, err)
			util.Message(w, http.StatusInternalServerError, "internal error")
			return
		}
		if tasks == nil {
			tasks = []models.Task{}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(tasks)
	}
}

func UpdateTask(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)

		taskID, err := parseIDParam(r, "taskId")
		if err != nil {
			util.Message(w, http.StatusBadRequest, "invalid task id")
			return
		}

		var req models.UpdateTaskRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode update task request body for user %d: %v", userID, err)
			util.Message(w, http.StatusBadRequest, "invalid request")
			return
		}

		if req.TaskName == "" {
			util.Message(w, http.StatusBadRequest, "Task name is required")
			return
		}

		if err := db.UpdateTask(r.Context(), pool, userID, taskID, req.TaskName, req.Status); err != nil {
			if errors.Is(err, db.ErrTaskNotFound) {
				log.Printf("ERROR: Task id %d not found for user %d", taskID, userID)
				util.Message(w, http.StatusNotFound, "Task not found")
				return
			}
			log.Printf("ERROR: Failed to update task id %d for user %d: %v", taskID, userID, err)
			util.Message(w, http.StatusInternalServerError, "internal error")
			return
		}

		log.Printf("INFO: Updated task id %d for user %d", taskID, userID)
		util.Message(w, http.StatusOK, "Task updated successfully")
	}
}

func DeleteTask(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)

		taskID, err := parseIDParam(r, "taskId")
		if err != nil {
			util.Message(w, http.StatusBadRequest, "invalid task id")
			return
		}

		if err := db.DeleteTask(r.Context(), pool, userID, taskID); err != nil {
			log.Printf("ERROR: Failed to delete task id %d for user %d: %v", taskID, userID, err)
			util.Message(w, http.StatusInternalServerError, "internal error")
			return
		}

		log.Printf("INFO: Deleted task id %d for user %d", taskID, userID)
		util.Message(w, http.StatusOK, "Task deleted successfully")
	}
}
