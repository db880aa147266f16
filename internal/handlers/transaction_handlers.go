package handlers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valeriaulyamaeva/finance-tracker-api/internal/database"
	"github.com/valeriaulyamaeva/finance-tracker-api/models"
)

func validTransactionType(t string) bool {
	return t == "credit" || t == "debit"
}

func CreateTransactionHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var transaction models.Transaction
		if err := c.ShouldBindJSON(&transaction); err != nil {
			log.Printf("Ошибка привязки JSON: %v", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный ввод", "details": err.Error()})
			return
		}

		if transaction.UserID == 0 || transaction.Amount <= 0 || transaction.Description == "" ||
			transaction.Category == "" || transaction.Date.IsZero() || transaction.Type == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Все поля должны быть заполнены и корректны"})
			return
		}

		if !validTransactionType(transaction.Type) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Тип транзакции должен быть credit или debit"})
			return
		}

		if err := database.CreateTransaction(pool, &transaction); err != nil {
			log.Printf("Ошибка при создании транзакции: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка создания транзакции"})
			return
		}
		c.JSON(http.StatusCreated, transaction)
	}
}

// CreateTransactionsBatchHandler принимает выписку банковского счета целиком.
// Перед вставкой проверяется каждая запись; частичная запись пачки не выполняется.
func CreateTransactionsBatchHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload struct {
			UserID       int                  `json:"user_id"`
			Transactions []models.Transaction `json:"transactions"`
		}
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный ввод"})
			return
		}

		if payload.UserID == 0 || len(payload.Transactions) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Требуются идентификатор пользователя и список транзакций"})
			return
		}

		for i := range payload.Transactions {
			t := &payload.Transactions[i]
			t.UserID = payload.UserID
			if t.Amount <= 0 || t.Description == "" || t.Category == "" ||
				t.Date.IsZero() || !validTransactionType(t.Type) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Данные транзакции неполны или некорректны"})
				return
			}
		}

		if err := database.CreateTransactionsBatch(pool, payload.Transactions); err != nil {
			log.Printf("Ошибка пакетной вставки транзакций: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка при вставке транзакций"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Транзакции успешно добавлены"})
	}
}

func GetTransactionsHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := strconv.Atoi(c.Query("user_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный идентификатор пользователя"})
			return
		}

		fromStr := c.Query("from")
		toStr := c.Query("to")

		var transactions []models.Transaction
		if fromStr != "" && toStr != "" {
			from, err := time.Parse("2006-01-02", fromStr)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректная дата начала периода"})
				return
			}
			to, err := time.Parse("2006-01-02", toStr)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректная дата конца периода"})
				return
			}
			transactions, err = database.GetTransactionsByUserAndDateRange(pool, userID, from, to)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка получения транзакций"})
				return
			}
		} else {
			transactions, err = database.GetTransactionsByUserID(pool, userID)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка получения транзакций"})
				return
			}
		}

		if transactions == nil {
			transactions = []models.Transaction{}
		}
		c.JSON(http.StatusOK, transactions)
	}
}
