package database_test

import (
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valeriaulyamaeva/finance-tracker-api/internal/database"
	"github.com/valeriaulyamaeva/finance-tracker-api/models"
)

func connectTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	pool, err := database.ConnectDB()
	if err != nil {
		t.Skipf("БД недоступна, пропускаем интеграционный тест: %v", err)
	}
	if err := database.RunMigrations(pool); err != nil {
		t.Fatalf("ошибка миграции схемы: %v", err)
	}
	return pool
}

func createTestUser(t *testing.T, pool *pgxpool.Pool) *models.User {
	t.Helper()
	user := &models.User{
		FirstName: gofakeit.FirstName(),
		LastName:  gofakeit.LastName(),
		Email:     gofakeit.Email(),
		Password:  "test-password",
	}
	if err := database.RegisterUser(pool, user); err != nil {
		t.Fatalf("ошибка создания тестового пользователя: %v", err)
	}
	return user
}

func TestGetBalance(t *testing.T) {
	pool := connectTestDB(t)
	defer pool.Close()

	user := createTestUser(t, pool)

	// Кредит 100 и дебет 40 дают баланс 60
	now := time.Now()
	for _, tx := range []models.Transaction{
		{UserID: user.ID, Amount: 100, Description: "salary", Category: "income", Date: now, Type: "credit"},
		{UserID: user.ID, Amount: 40, Description: "groceries", Category: "food", Date: now, Type: "debit"},
	} {
		if err := database.CreateTransaction(pool, &tx); err != nil {
			t.Fatalf("ошибка создания транзакции: %v", err)
		}
	}

	balance, err := database.GetBalance(pool, user.ID)
	if err != nil {
		t.Fatalf("ошибка получения баланса: %v", err)
	}
	if balance != 60 {
		t.Errorf("баланс не совпадает: получили %v, хотели 60", balance)
	}
}

func TestGetBalanceEmptyUser(t *testing.T) {
	pool := connectTestDB(t)
	defer pool.Close()

	user := createTestUser(t, pool)

	balance, err := database.GetBalance(pool, user.ID)
	if err != nil {
		t.Fatalf("ошибка получения баланса: %v", err)
	}
	if balance != 0 {
		t.Errorf("баланс без транзакций должен быть 0, получили %v", balance)
	}
}

func TestGetBudgetDetails(t *testing.T) {
	pool := connectTestDB(t)
	defer pool.Close()

	user := createTestUser(t, pool)

	budget := &models.Budget{
		UserID:     user.ID,
		BudgetName: "food budget",
		Amount:     200,
		Currency:   "USD",
		Category:   "food",
		Recurrence: "monthly",
		StartDate:  time.Now(),
		EndDate:    time.Now().AddDate(0, 1, 0),
	}
	if err := database.CreateBudget(pool, budget); err != nil {
		t.Fatalf("ошибка создания бюджета: %v", err)
	}

	now := time.Now()
	for _, amount := range []float64{50, 30} {
		tx := &models.Transaction{
			UserID:      user.ID,
			Amount:      amount,
			Description: "groceries",
			Category:    "food",
			Date:        now,
			Type:        "debit",
		}
		if err := database.CreateTransaction(pool, tx); err != nil {
			t.Fatalf("ошибка создания транзакции: %v", err)
		}
	}

	// Кредитовые транзакции в сверке не участвуют
	credit := &models.Transaction{
		UserID:      user.ID,
		Amount:      500,
		Description: "salary",
		Category:    "food",
		Date:        now,
		Type:        "credit",
	}
	if err := database.CreateTransaction(pool, credit); err != nil {
		t.Fatalf("ошибка создания транзакции: %v", err)
	}

	details, err := database.GetBudgetDetails(pool, user.ID)
	if err != nil {
		t.Fatalf("ошибка сверки бюджетов: %v", err)
	}
	if len(details) != 1 {
		t.Fatalf("ожидали одну деталь, получили %d", len(details))
	}
	if details[0].SpentAmount != 80 {
		t.Errorf("потраченная сумма не совпадает: получили %v, хотели 80", details[0].SpentAmount)
	}
	if details[0].RemainingAmount != 120 {
		t.Errorf("остаток не совпадает: получили %v, хотели 120", details[0].RemainingAmount)
	}
}

func TestGetIncomeExpensesByRangeBoundaries(t *testing.T) {
	pool := connectTestDB(t)
	defer pool.Close()

	user := createTestUser(t, pool)

	inWindow := &models.Transaction{
		UserID:      user.ID,
		Amount:      70,
		Description: "rent",
		Category:    "utilities",
		Date:        time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC),
		Type:        "debit",
	}
	outOfWindow := &models.Transaction{
		UserID:      user.ID,
		Amount:      99,
		Description: "april expense",
		Category:    "utilities",
		Date:        time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		Type:        "debit",
	}
	for _, tx := range []*models.Transaction{inWindow, outOfWindow} {
		if err := database.CreateTransaction(pool, tx); err != nil {
			t.Fatalf("ошибка создания транзакции: %v", err)
		}
	}

	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	series, err := database.GetIncomeExpensesByRange(pool, user.ID, start, end)
	if err != nil {
		t.Fatalf("ошибка получения доходов и расходов: %v", err)
	}

	if len(series) != 1 {
		t.Fatalf("ожидали один день в окне, получили %d", len(series))
	}
	if series[0].Date != "2024-03-15" || series[0].Expenses != 70 || series[0].Income != 0 {
		t.Errorf("данные дня не совпадают: %+v", series[0])
	}
}
