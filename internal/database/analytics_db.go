package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valeriaulyamaeva/finance-tracker-api/models"
)

func GetBalance(pool *pgxpool.Pool, userID int) (float64, error) {
	query := `
		SELECT COALESCE(SUM(CASE WHEN type = 'credit' THEN amount ELSE -amount END), 0) AS balance
		FROM transactions
		WHERE user_id = $1`
	var balance float64
	err := pool.QueryRow(context.Background(), query, userID).Scan(&balance)
	if err != nil {
		return 0, fmt.Errorf("ошибка при получении баланса: %v", err)
	}
	return balance, nil
}

// GetBalanceOverTime возвращает дневные сальдо по возрастанию даты.
// Это нетто за день, а не накопленный итог.
func GetBalanceOverTime(pool *pgxpool.Pool, userID int) ([]models.DailyBalance, error) {
	query := `
		SELECT date::date AS day,
		       SUM(CASE WHEN type = 'credit' THEN amount ELSE -amount END) AS balance
		FROM transactions
		WHERE user_id = $1
		GROUP BY day
		ORDER BY day`

	rows, err := pool.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении баланса по дням: %v", err)
	}
	defer rows.Close()

	var series []models.DailyBalance
	for rows.Next() {
		var day time.Time
		var balance float64
		if err := rows.Scan(&day, &balance); err != nil {
			return nil, err
		}
		series = append(series, models.DailyBalance{
			Date:    day.Format("2006-01-02"),
			Balance: balance,
		})
	}
	return series, rows.Err()
}

// GetIncomeExpensesByRange группирует транзакции окна по дням: доходы и расходы
// считаются независимо, без взаимозачета. Границы окна включительны.
func GetIncomeExpensesByRange(pool *pgxpool.Pool, userID int, start, end time.Time) ([]models.DailyIncomeExpense, error) {
	query := `
		SELECT date::date AS day,
		       COALESCE(SUM(CASE WHEN type = 'credit' THEN amount ELSE 0 END), 0) AS income,
		       COALESCE(SUM(CASE WHEN type = 'debit' THEN amount ELSE 0 END), 0) AS expenses
		FROM transactions
		WHERE user_id = $1 AND date::date BETWEEN $2::date AND $3::date
		GROUP BY day
		ORDER BY day`

	rows, err := pool.Query(context.Background(), query, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении доходов и расходов: %v", err)
	}
	defer rows.Close()

	var series []models.DailyIncomeExpense
	for rows.Next() {
		var day time.Time
		var income, expenses float64
		if err := rows.Scan(&day, &income, &expenses); err != nil {
			return nil, err
		}
		series = append(series, models.DailyIncomeExpense{
			Date:     day.Format("2006-01-02"),
			Income:   income,
			Expenses: expenses,
		})
	}
	return series, rows.Err()
}
