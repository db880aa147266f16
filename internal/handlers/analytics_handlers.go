package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valeriaulyamaeva/finance-tracker-api/internal/database"
	"github.com/valeriaulyamaeva/finance-tracker-api/models"
	"github.com/valeriaulyamaeva/finance-tracker-api/utils"
)

func GetBalanceHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := strconv.Atoi(c.Query("user_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный идентификатор пользователя"})
			return
		}

		balance, err := database.GetBalance(pool, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка при получении баланса"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"balance": balance})
	}
}

func GetBalanceOverTimeHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := strconv.Atoi(c.Query("user_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный идентификатор пользователя"})
			return
		}

		series, err := database.GetBalanceOverTime(pool, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка при получении баланса по дням"})
			return
		}

		if series == nil {
			series = []models.DailyBalance{}
		}
		c.JSON(http.StatusOK, series)
	}
}

// GetIncomeExpensesHandler отдает доходы и расходы по дням внутри окна,
// заданного периодом (day, week, month) и опорной датой.
func GetIncomeExpensesHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDStr := c.Query("user_id")
		period := c.Query("period")
		dateStr := c.Query("date")

		if userIDStr == "" || period == "" || dateStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Требуются идентификатор пользователя, период и дата"})
			return
		}

		userID, err := strconv.Atoi(userIDStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный идентификатор пользователя"})
			return
		}

		date, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный формат даты"})
			return
		}

		start, end, err := utils.PeriodWindow(period, date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный период"})
			return
		}

		series, err := database.GetIncomeExpensesByRange(pool, userID, start, end)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка при получении доходов и расходов"})
			return
		}

		if series == nil {
			series = []models.DailyIncomeExpense{}
		}
		c.JSON(http.StatusOK, series)
	}
}
