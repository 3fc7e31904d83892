package models

import "time"

type Goal struct {
	ID               int64     `json:"id"`
	UserID           int64     `json:"user_id"`
	Title            string    `json:"title"`
	Category         string    `json:"category"`
	TargetAmount     float64   `json:"target_amount"`
	TargetDate       string    `json:"target_date"`
	InvestmentAmount float64   `json:"investment_amount"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type GoalRequest struct {
	Title        string  `json:"title"`
	Category     string  `json:"category"`
	TargetAmount float64 `json:"target_amount"`
	TargetDate   string  `json:"target_date"`
}

// GoalInvestment is the slice of a goal the summary endpoint reports.
type GoalInvestment struct {
	Title            string  `json:"title"`
	InvestmentAmount float64 `json:"investment_amount"`
}
