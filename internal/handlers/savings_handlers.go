package handlers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/valeriaulyamaeva/finance-tracker-api/internal/database"
	"github.com/valeriaulyamaeva/finance-tracker-api/models"
)

func CreateSavingsEntryHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload struct {
			UserID int             `json:"user_id"`
			Type   string          `json:"type"`
			Amount decimal.Decimal `json:"amount"`
			Date   time.Time       `json:"date"`
		}
		if err := c.ShouldBindJSON(&payload); err != nil {
			log.Printf("Ошибка привязки JSON: %v", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный ввод"})
			return
		}

		if payload.UserID == 0 || payload.Date.IsZero() || !validTransactionType(payload.Type) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Все поля должны быть заполнены и корректны"})
			return
		}

		if payload.Amount.LessThanOrEqual(decimal.Zero) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Сумма должна быть положительным числом"})
			return
		}

		amount, _ := payload.Amount.Float64()
		entry := &models.SavingsWalletEntry{
			UserID: payload.UserID,
			Type:   payload.Type,
			Amount: amount,
			Date:   payload.Date,
		}

		if err := database.CreateSavingsEntry(pool, entry); err != nil {
			log.Printf("Ошибка при добавлении записи в накопительный кошелек: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка при добавлении записи"})
			return
		}
		c.JSON(http.StatusCreated, entry)
	}
}

func GetSavingsEntriesHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := strconv.Atoi(c.Param("userId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный идентификатор пользователя"})
			return
		}

		entries, err := database.GetSavingsEntriesByUserID(pool, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка получения записей кошелька"})
			return
		}

		if entries == nil {
			entries = []models.SavingsWalletEntry{}
		}
		c.JSON(http.StatusOK, entries)
	}
}
