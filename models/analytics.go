package models

type DailyBalance struct {
	Date    string  `json:"date"`
	Balance float64 `json:"balance"`
}

type DailyIncomeExpense struct {
	Date     string  `json:"date"`
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
}
