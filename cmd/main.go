package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/valeriaulyamaeva/finance-tracker-api/internal/database"
	"github.com/valeriaulyamaeva/finance-tracker-api/internal/handlers"
	"github.com/valeriaulyamaeva/finance-tracker-api/internal/middleware"
	"github.com/valeriaulyamaeva/finance-tracker-api/utils"
)

func ScheduleBudgetRenewal(pool *pgxpool.Pool) {
	c := cron.New()
	_, err := c.AddFunc("@monthly", func() {
		if err := database.RenewExpiredBudgets(pool); err != nil {
			log.Printf("Ошибка обновления просроченных бюджетов: %v", err)
		}
	})
	if err != nil {
		log.Fatalf("Ошибка настройки CRON-задачи для обновления бюджетов: %v", err)
	}
	c.Start()
}

func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin == "http://localhost:3000" || origin == "http://localhost:3001" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(200)
			return
		}

		c.Next()
	}
}

func SecurityHeadersMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("X-Content-Type-Options", "nosniff")
		c.Writer.Header().Set("X-Frame-Options", "DENY")
		c.Writer.Header().Set("X-XSS-Protection", "1; mode=block")
		c.Next()
	}
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Fatalf("Ошибка загрузки .env файла: %v", err)
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatalf("JWT_SECRET не задан")
	}

	pool, err := database.ConnectDB()
	if err != nil {
		log.Fatalf("Ошибка подключения к БД: %v", err)
	}
	defer pool.Close()

	if err := database.RunMigrations(pool); err != nil {
		log.Fatalf("Ошибка миграции схемы: %v", err)
	}

	if os.Getenv("SEED_DEMO_DATA") == "1" {
		log.Println("Наполняем БД демо-данными...")
		utils.GenerateDemoData(pool, 5)
	}

	ScheduleBudgetRenewal(pool)

	r := gin.Default()
	r.Use(CORSMiddleware())
	r.Use(SecurityHeadersMiddleware())

	r.POST("/register", handlers.RegisterHandler(pool, jwtSecret))
	r.POST("/login", handlers.LoginHandler(pool, jwtSecret))

	authorized := r.Group("/")
	authorized.Use(middleware.AuthMiddleware(jwtSecret))
	{
		authorized.GET("/users/:userId", handlers.GetUserHandler(pool))

		authorized.POST("/savingswallet", handlers.CreateSavingsEntryHandler(pool))
		authorized.GET("/savingswallet/:userId", handlers.GetSavingsEntriesHandler(pool))

		authorized.POST("/transactions", handlers.CreateTransactionHandler(pool))
		authorized.GET("/transactions", handlers.GetTransactionsHandler(pool))
		authorized.GET("/transactions/balance", handlers.GetBalanceHandler(pool))
		authorized.POST("/bankaccount/transactions", handlers.CreateTransactionsBatchHandler(pool))

		authorized.POST("/budgets", handlers.CreateBudgetHandler(pool))
		authorized.GET("/budgets/:userId", handlers.GetBudgetsHandler(pool))
		authorized.GET("/budgets/:userId/details", handlers.GetBudgetDetailsHandler(pool))

		authorized.GET("/balance-over-time", handlers.GetBalanceOverTimeHandler(pool))
		authorized.GET("/income-expenses", handlers.GetIncomeExpensesHandler(pool))
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Ошибка при запуске сервера: %v", err)
	}
}
