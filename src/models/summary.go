package models

type Summary struct {
	Income          float64          `json:"income"`
	TotalInvestment float64          `json:"totalInvestment"`
	Savings         float64          `json:"savings"`
	Goals           []GoalInvestment `json:"goals"`
}
