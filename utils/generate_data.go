package utils

import (
	"log"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valeriaulyamaeva/finance-tracker-api/internal/database"
	"github.com/valeriaulyamaeva/finance-tracker-api/models"
)

var demoCategories = []string{"food", "transport", "entertainment", "health", "shopping", "utilities"}

// GenerateDemoData наполняет БД тестовыми пользователями, транзакциями и бюджетами.
func GenerateDemoData(pool *pgxpool.Pool, numUsers int) {
	for i := 0; i < numUsers; i++ {
		user := &models.User{
			FirstName: gofakeit.FirstName(),
			LastName:  gofakeit.LastName(),
			Email:     gofakeit.Email(),
			Password:  gofakeit.Password(true, true, true, false, false, 10),
		}
		if err := database.RegisterUser(pool, user); err != nil {
			log.Fatalf("ошибка при добавлении тестового пользователя: %v", err)
		}

		for j := 0; j < 20; j++ {
			txType := "debit"
			if rand.Intn(3) == 0 {
				txType = "credit"
			}
			transaction := &models.Transaction{
				UserID:      user.ID,
				Amount:      gofakeit.Price(5, 500),
				Description: gofakeit.ProductName(),
				Category:    demoCategories[rand.Intn(len(demoCategories))],
				Date:        gofakeit.DateRange(time.Now().AddDate(0, -2, 0), time.Now()),
				Type:        txType,
			}
			if err := database.CreateTransaction(pool, transaction); err != nil {
				log.Fatalf("ошибка при добавлении тестовой транзакции: %v", err)
			}
		}

		for _, category := range demoCategories[:3] {
			budget := &models.Budget{
				UserID:     user.ID,
				BudgetName: category + " budget",
				Amount:     gofakeit.Price(200, 1000),
				Currency:   "USD",
				Category:   category,
				Recurrence: "monthly",
				StartDate:  time.Now().AddDate(0, 0, -time.Now().Day()+1),
				EndDate:    time.Now().AddDate(0, 1, -time.Now().Day()),
			}
			if err := database.CreateBudget(pool, budget); err != nil {
				log.Fatalf("ошибка при добавлении тестового бюджета: %v", err)
			}
		}
	}
}
