package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valeriaulyamaeva/finance-tracker-api/models"
)

func CreateBudget(pool *pgxpool.Pool, budget *models.Budget) error {
	query := `
		INSERT INTO budgets (user_id, budget_name, amount, currency, category, recurrence, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	err := pool.QueryRow(context.Background(), query,
		budget.UserID,
		budget.BudgetName,
		budget.Amount,
		budget.Currency,
		budget.Category,
		budget.Recurrence,
		budget.StartDate,
		budget.EndDate).Scan(&budget.ID)
	if err != nil {
		return fmt.Errorf("ошибка при добавлении бюджета: %v", err)
	}
	return nil
}

func GetBudgetsByUserID(pool *pgxpool.Pool, userID int) ([]models.Budget, error) {
	query := `
		SELECT id, user_id, budget_name, amount, currency, category, recurrence, start_date, end_date
		FROM budgets
		WHERE user_id = $1
		ORDER BY id`

	rows, err := pool.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении списка бюджетов: %v", err)
	}
	defer rows.Close()

	var budgets []models.Budget
	for rows.Next() {
		var b models.Budget
		if err := rows.Scan(&b.ID, &b.UserID, &b.BudgetName, &b.Amount, &b.Currency,
			&b.Category, &b.Recurrence, &b.StartDate, &b.EndDate); err != nil {
			return nil, err
		}
		budgets = append(budgets, b)
	}
	return budgets, rows.Err()
}

// RenewExpiredBudgets сдвигает окно действия просроченных ежемесячных бюджетов на месяц вперед.
func RenewExpiredBudgets(pool *pgxpool.Pool) error {
	query := `
		UPDATE budgets
		SET start_date = start_date + INTERVAL '1 month',
		    end_date = end_date + INTERVAL '1 month'
		WHERE recurrence = 'monthly' AND end_date < CURRENT_DATE`

	_, err := pool.Exec(context.Background(), query)
	if err != nil {
		return fmt.Errorf("ошибка обновления просроченных бюджетов: %v", err)
	}
	return nil
}
