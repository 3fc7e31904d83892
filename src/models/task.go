package models

import "time"

type Task struct {
	ID        int64     `json:"id"`
	GoalID    int64     `json:"goal_id"`
	TaskName  string    `json:"task_name"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type TaskRequest struct {
	GoalID   int64  `json:"goal_id"`
	TaskName string `json:"task_name"`
}

type UpdateTaskRequest struct {
	TaskName string `json:"task_name"`
	Status   string `json:"status"`
}
