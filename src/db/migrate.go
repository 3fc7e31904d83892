package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Statements run one at a time because the pool's extended query
// protocol rejects multi-statement strings.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS income (
		user_id BIGINT PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
		monthly_income DOUBLE PRECISION NOT NULL CHECK (monthly_income > 0)
	)`,
	`CREATE TABLE IF NOT EXISTS goals (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		title TEXT NOT NULL,
		category TEXT NOT NULL DEFAULT '',
		target_amount DOUBLE PRECISION NOT NULL DEFAULT 0,
		target_date TEXT NOT NULL DEFAULT '',
		investment_amount DOUBLE PRECISION NOT NULL DEFAULT 0 CHECK (investment_amount >= 0),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_goals_user_id ON goals(user_id)`,
	`CREATE TABLE IF NOT EXISTS tasks (
		id BIGSERIAL PRIMARY KEY,
		goal_id BIGINT NOT NULL REFERENCES goals(id) ON DELETE CASCADE,
		task_name TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_goal_id ON tasks(goal_id)`,
}

func Migrate(pool *pgxpool.Pool) error {
	for _, stmt := range migrations {
		if _, err := pool.Exec(context.Background(), stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}
