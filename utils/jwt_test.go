package utils_test

import (
	"testing"

	"github.com/valeriaulyamaeva/finance-tracker-api/utils"
)

func TestGenerateAndParseToken(t *testing.T) {
	token, err := utils.GenerateToken("test-secret", 42)
	if err != nil {
		t.Fatalf("ошибка генерации токена: %v", err)
	}

	claims, err := utils.ParseToken("test-secret", token)
	if err != nil {
		t.Fatalf("ошибка разбора токена: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("идентификатор пользователя не совпадает: получили %d, хотели 42", claims.UserID)
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := utils.GenerateToken("test-secret", 42)
	if err != nil {
		t.Fatalf("ошибка генерации токена: %v", err)
	}

	if _, err := utils.ParseToken("other-secret", token); err == nil {
		t.Errorf("токен с чужим секретом прошел проверку")
	}
}

func TestParseTokenGarbage(t *testing.T) {
	if _, err := utils.ParseToken("test-secret", "не-токен"); err == nil {
		t.Errorf("мусорная строка прошла проверку как токен")
	}
}
