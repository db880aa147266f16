package models

import "time"

type Budget struct {
	ID         int       `json:"id" db:"id"`
	UserID     int       `json:"user_id" db:"user_id"`
	BudgetName string    `json:"budget_name" db:"budget_name"`
	Amount     float64   `json:"amount" db:"amount"`
	Currency   string    `json:"currency" db:"currency"`
	Category   string    `json:"category" db:"category"`
	Recurrence string    `json:"recurrence" db:"recurrence"`
	StartDate  time.Time `json:"start_date" db:"start_date"`
	EndDate    time.Time `json:"end_date" db:"end_date"`
}

// BudgetDetail — бюджет вместе с подсчитанными тратами по его категории.
type BudgetDetail struct {
	Budget
	SpentAmount     float64 `json:"spent_amount"`
	RemainingAmount float64 `json:"remaining_amount"`
}
