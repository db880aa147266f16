package database_test

import (
	"testing"

	"github.com/valeriaulyamaeva/finance-tracker-api/internal/database"
)

func TestRegisterAndAuthenticateUser(t *testing.T) {
	pool := connectTestDB(t)
	defer pool.Close()

	user := createTestUser(t, pool)

	authenticated, err := database.AuthenticateUser(pool, user.Email, "test-password")
	if err != nil {
		t.Fatalf("ошибка авторизации: %v", err)
	}
	if authenticated.ID != user.ID {
		t.Errorf("идентификатор пользователя не совпадает: получили %d, хотели %d", authenticated.ID, user.ID)
	}

	if _, err := database.AuthenticateUser(pool, user.Email, "wrong-password"); err == nil {
		t.Errorf("авторизация с неверным паролем прошла успешно")
	}
}

func TestRegisterUserDuplicateEmail(t *testing.T) {
	pool := connectTestDB(t)
	defer pool.Close()

	user := createTestUser(t, pool)

	duplicate := *user
	duplicate.ID = 0
	duplicate.Password = "another-password"
	err := database.RegisterUser(pool, &duplicate)
	if err != database.ErrEmailTaken {
		t.Errorf("повторная регистрация email должна возвращать ErrEmailTaken, получили %v", err)
	}
}

func TestGetUserByIDNotFound(t *testing.T) {
	pool := connectTestDB(t)
	defer pool.Close()

	if _, err := database.GetUserByID(pool, 99999999); err == nil {
		t.Errorf("ожидали ошибку для несуществующего пользователя")
	}
}
