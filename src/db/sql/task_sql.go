package db

import (
	"context"
	"errors"

	"goaltrack-server/src/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrTaskNotFound = errors.New("task not found")

// Every task statement joins back to the goal's owner, so one user can
// never touch tasks hanging off another user's goal.

func CreateTask(ctx context.Context, pool *pgxpool.Pool, userID, goalID int64, taskName string) error {
	query := `
		INSERT INTO tasks (goal_id, task_name)
		SELECT g.id, $2 FROM goals g WHERE g.id = $1 AND g.user_id = $3
	`
	cmd, err := pool.Exec(ctx, query, goalID, taskName, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrGoalNotFound
	}
	return nil
}

func GetTasksForGoal(ctx context.Context, pool *pgxpool.Pool, userID, goalID int64) ([]models.Task, error) {
	query := `
		SELECT t.id, t.goal_id, t.task_name, t.status, t.created_at, t.updated_at
		FROM tasks t
		JOIN goals g ON g.id = t.goal_id
		WHERE t.goal_id = $1 AND g.user_id = $2
		ORDER BY t.id
	`
	rows, err := pool.Query(ctx, query, goalID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		var t models.Task
		err := rows.Scan(&t.ID, &t.GoalID, &t.TaskName, &t.Status, &t.CreatedAt, &t.UpdatedAt)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func UpdateTask(ctx context.Context, pool *pgxpool.Pool, userID, taskID int64, taskName, status string) error {
	query := `
		UPDATE tasks t
		SET task_name = $1, status = $2, updated_at = NOW()
		FROM goals g
		WHERE t.id = $3 AND g.id = t.goal_id AND g.user_id = $4
	`
	cmd, err := pool.Exec(ctx, query, taskName, status, taskID, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// DeleteTask is idempotent like DeleteGoal.
func DeleteTask(ctx context.Context, pool *pgxpool.Pool, userID, taskID int64) error {
	query := `
		DELETE FROM tasks t
		USING goals g
		WHERE t.id = $1 AND g.id = t.goal_id AND g.user_id = $2
	`
	_, err := pool.Exec(ctx, query, taskID, userID)
	return err
}
