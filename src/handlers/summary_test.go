package handlers

import (
	"testing"

	"goaltrack-server/src/models"
)

func TestBuildSummary_NoIncomeNoGoals(t *testing.T) {
	s := buildSummary(0, nil)

	if s.Income != 0 || s.TotalInvestment != 0 || s.Savings != 0 {
		t.Errorf("got {%v %v %v}, want all zero", s.Income, s.TotalInvestment, s.Savings)
	}
	if s.Goals == nil {
		t.Error("Goals = nil, want empty slice")
	}
	if len(s.Goals) != 0 {
		t.Errorf("len(Goals) = %d, want 0", len(s.Goals))
	}
}

func TestBuildSummary_SavingsIsIncomeMinusTotal(t *testing.T) {
	goals := []models.GoalInvestment{
		{Title: "Car", InvestmentAmount: 200},
	}
	s := buildSummary(500, goals)

	if s.Income != 500 {
		t.Errorf("Income = %v, want 500", s.Income)
	}
	if s.TotalInvestment != 200 {
		t.Errorf("TotalInvestment = %v, want 200", s.TotalInvestment)
	}
	if s.Savings != 300 {
		t.Errorf("Savings = %v, want 300", s.Savings)
	}
	if len(s.Goals) != 1 || s.Goals[0].Title != "Car" || s.Goals[0].InvestmentAmount != 200 {
		t.Errorf("Goals = %+v, want the input pair", s.Goals)
	}
}

func TestBuildSummary_NegativeSavingsNotClamped(t *testing.T) {
	goals := []models.GoalInvestment{
		{Title: "House", InvestmentAmount: 150.5},
		{Title: "Trip", InvestmentAmount: 49.5},
	}
	s := buildSummary(100, goals)

	if s.TotalInvestment != 200 {
		t.Errorf("TotalInvestment = %v, want 200", s.TotalInvestment)
	}
	if s.Savings != -100 {
		t.Errorf("Savings = %v, want -100", s.Savings)
	}
}

func TestBuildSummary_ExactDecimalTotals(t *testing.T) {
	// 0.1 + 0.2 must come out as 0.3, not 0.30000000000000004.
	goals := []models.GoalInvestment{
		{Title: "A", InvestmentAmount: 0.1},
		{Title: "B", InvestmentAmount: 0.2},
	}
	s := buildSummary(1, goals)

	if s.TotalInvestment != 0.3 {
		t.Errorf("TotalInvestment = %v, want 0.3", s.TotalInvestment)
	}
	if s.Savings != 0.7 {
		t.Errorf("Savings = %v, want 0.7", s.Savings)
	}
}

func TestBuildSummary_TotalMatchesGoalSum(t *testing.T) {
	goals := []models.GoalInvestment{
		{Title: "A", InvestmentAmount: 10},
		{Title: "B", InvestmentAmount: 0},
		{Title: "C", InvestmentAmount: 32.25},
	}
	s := buildSummary(50, goals)

	if s.TotalInvestment != 42.25 {
		t.Errorf("TotalInvestment = %v, want 42.25", s.TotalInvestment)
	}
	if s.Savings != 7.75 {
		t.Errorf("Savings = %v, want 7.75", s.Savings)
	}
}
