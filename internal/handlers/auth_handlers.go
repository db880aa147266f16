package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valeriaulyamaeva/finance-tracker-api/internal/database"
	"github.com/valeriaulyamaeva/finance-tracker-api/models"
	"github.com/valeriaulyamaeva/finance-tracker-api/utils"
)

func RegisterHandler(pool *pgxpool.Pool, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user models.User
		if err := c.ShouldBindJSON(&user); err != nil {
			log.Printf("Ошибка привязки JSON: %v", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный формат данных. Проверьте введённые значения."})
			return
		}

		if user.FirstName == "" || user.LastName == "" || user.Email == "" || user.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Все поля обязательны для заполнения"})
			return
		}

		if err := database.RegisterUser(pool, &user); err != nil {
			if errors.Is(err, database.ErrEmailTaken) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Email уже зарегистрирован"})
				return
			}
			log.Printf("Ошибка при регистрации пользователя: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка при регистрации"})
			return
		}

		token, err := utils.GenerateToken(jwtSecret, user.ID)
		if err != nil {
			log.Printf("Ошибка генерации токена: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка при регистрации"})
			return
		}

		log.Printf("Пользователь успешно зарегистрирован: ID = %d", user.ID)
		user.Password = ""
		c.JSON(http.StatusOK, gin.H{
			"message": "Регистрация успешна",
			"token":   token,
			"user":    user,
		})
	}
}

func LoginHandler(pool *pgxpool.Pool, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var credentials models.User
		if err := c.ShouldBindJSON(&credentials); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Ошибка ввода данных"})
			return
		}

		if credentials.Email == "" || credentials.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email и пароль обязательны"})
			return
		}

		user, err := database.AuthenticateUser(pool, credentials.Email, credentials.Password)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Неверный email или пароль"})
			return
		}

		token, err := utils.GenerateToken(jwtSecret, user.ID)
		if err != nil {
			log.Printf("Ошибка генерации токена: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка авторизации"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"token": token})
	}
}
