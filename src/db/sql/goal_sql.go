package db

import (
	"context"
	"errors"
	"fmt"

	"goaltrack-server/src/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrGoalNotFound = errors.New("goal not found")

// CreateGoal inserts a goal with investment_amount forced to 0; any
// caller-supplied starting balance is ignored.
func CreateGoal(ctx context.Context, pool *pgxpool.Pool, goal *models.Goal) (*models.Goal, error) {
	query := `
		INSERT INTO goals (user_id, title, category, target_amount, target_date, investment_amount)
		VALUES ($1, $2, $3, $4, $5, 0)
		RETURNING id, user_id, title, category, target_amount, target_date, investment_amount, created_at, updated_at
	`
	var g models.Goal
	err := pool.QueryRow(ctx, query, goal.UserID, goal.Title, goal.Category, goal.TargetAmount, goal.TargetDate).
		Scan(&g.ID, &g.UserID, &g.Title, &g.Category, &g.TargetAmount, &g.TargetDate, &g.InvestmentAmount, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func GetAllGoalsForUser(ctx context.Context, pool *pgxpool.Pool, userID int64) ([]models.Goal, error) {
	query := `
		SELECT id, user_id, title, category, target_amount, target_date, investment_amount, created_at, updated_at
		FROM goals WHERE user_id = $1
		ORDER BY id
	`
	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var goals []models.Goal
	for rows.Next() {
		var g models.Goal
		err := rows.Scan(&g.ID, &g.UserID, &g.Title, &g.Category, &g.TargetAmount, &g.TargetDate, &g.InvestmentAmount, &g.CreatedAt, &g.UpdatedAt)
		if err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

func UpdateGoal(ctx context.Context, pool *pgxpool.Pool, goal *models.Goal) error {
	query := `
		UPDATE goals
		SET title = $1, category = $2, target_amount = $3, target_date = $4, updated_at = NOW()
		WHERE id = $5 AND user_id = $6
	`
	cmd, err := pool.Exec(ctx, query, goal.Title, goal.Category, goal.TargetAmount, goal.TargetDate, goal.ID, goal.UserID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrGoalNotFound
	}
	return nil
}

// DeleteGoal is idempotent: deleting a goal that does not exist (or
// belongs to someone else) succeeds without touching anything.
func DeleteGoal(ctx context.Context, pool *pgxpool.Pool, userID, goalID int64) error {
	query := `DELETE FROM goals WHERE id = $1 AND user_id = $2`
	_, err := pool.Exec(ctx, query, goalID, userID)
	return err
}

// AddInvestment increments in a single statement so concurrent adds to
// the same goal never lose updates.
func AddInvestment(ctx context.Context, pool *pgxpool.Pool, userID, goalID int64, amount float64) error {
	query := `
		UPDATE goals
		SET investment_amount = COALESCE(investment_amount, 0) + $1, updated_at = NOW()
		WHERE id = $2 AND user_id = $3
	`
	cmd, err := pool.Exec(ctx, query, amount, goalID, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrGoalNotFound
	}
	return nil
}

func SetInvestment(ctx context.Context, pool *pgxpool.Pool, userID, goalID int64, amount float64) error {
	query := `
		UPDATE goals
		SET investment_amount = $1, updated_at = NOW()
		WHERE id = $2 AND user_id = $3
	`
	cmd, err := pool.Exec(ctx, query, amount, goalID, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrGoalNotFound
	}
	return nil
}

// ResetInvestment zeroes the accumulated amount. Like DeleteGoal it is
// idempotent and does not report a missing goal.
func ResetInvestment(ctx context.Context, pool *pgxpool.Pool, userID, goalID int64) error {
	query := `
		UPDATE goals
		SET investment_amount = 0, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
	`
	_, err := pool.Exec(ctx, query, goalID, userID)
	if err != nil {
		return fmt.Errorf("failed to reset investment: %w", err)
	}
	return nil
}

func GetGoalInvestments(ctx context.Context, pool *pgxpool.Pool, userID int64) ([]models.GoalInvestment, error) {
	query := `SELECT title, COALESCE(investment_amount, 0) FROM goals WHERE user_id = $1 ORDER BY id`
	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var goals []models.GoalInvestment
	for rows.Next() {
		var g models.GoalInvestment
		if err := rows.Scan(&g.Title, &g.InvestmentAmount); err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}
