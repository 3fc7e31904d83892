package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UpsertIncome keeps at most one income row per user. The ON CONFLICT
// form makes the read-then-write race in the obvious two-statement
// version impossible.
func UpsertIncome(ctx context.Context, pool *pgxpool.Pool, userID int64, monthlyIncome float64) error {
	query := `
		INSERT INTO income (user_id, monthly_income)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET monthly_income = EXCLUDED.monthly_income
	`
	_, err := pool.Exec(ctx, query, userID, monthlyIncome)
	if err != nil {
		return fmt.Errorf("failed to upsert income: %w", err)
	}
	return nil
}

// GetMonthlyIncome returns 0 when the user has no income row.
func GetMonthlyIncome(ctx context.Context, pool *pgxpool.Pool, userID int64) (float64, error) {
	var income float64
	query := `SELECT monthly_income FROM income WHERE user_id = $1`
	err := pool.QueryRow(ctx, query, userID).Scan(&income)
	if err != nil {
		if err == pgx.ErrNoRows {
			return 0, nil
		}
		return 0, fmt.Errorf("query error: %w", err)
	}
	return income, nil
}
