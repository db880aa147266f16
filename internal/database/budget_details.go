package database

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valeriaulyamaeva/finance-tracker-api/models"
)

// GetBudgetDetails сверяет бюджеты пользователя с его дебетовыми транзакциями:
// для каждого бюджета считается потраченная сумма по его категории и остаток.
func GetBudgetDetails(pool *pgxpool.Pool, userID int) ([]models.BudgetDetail, error) {
	budgets, err := GetBudgetsByUserID(pool, userID)
	if err != nil {
		return nil, err
	}

	spent, err := GetDebitSpentByCategory(pool, userID)
	if err != nil {
		return nil, err
	}

	return MergeBudgetDetails(budgets, spent), nil
}

// MergeBudgetDetails собирает по одной детали на каждый бюджет в исходном порядке.
// Категория без дебетовых транзакций дает нулевые траты; остаток может быть
// отрицательным, если бюджет превышен.
func MergeBudgetDetails(budgets []models.Budget, spent map[string]float64) []models.BudgetDetail {
	details := make([]models.BudgetDetail, 0, len(budgets))
	for _, budget := range budgets {
		spentAmount := spent[budget.Category]
		details = append(details, models.BudgetDetail{
			Budget:          budget,
			SpentAmount:     spentAmount,
			RemainingAmount: budget.Amount - spentAmount,
		})
	}
	return details
}
