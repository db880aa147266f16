package models

import "time"

type SavingsWalletEntry struct {
	ID     int       `json:"id" db:"id"`
	UserID int       `json:"user_id" db:"user_id"`
	Type   string    `json:"type" db:"type"` // Возможные значения: "credit", "debit"
	Amount float64   `json:"amount" db:"amount"`
	Date   time.Time `json:"date" db:"date"`
}
