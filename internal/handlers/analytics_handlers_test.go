package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/valeriaulyamaeva/finance-tracker-api/internal/handlers"
)

// Проверки валидации выполняются до обращения к хранилищу,
// поэтому пул здесь не нужен.
func setupAnalyticsRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/income-expenses", handlers.GetIncomeExpensesHandler(nil))
	r.GET("/transactions/balance", handlers.GetBalanceHandler(nil))
	r.GET("/balance-over-time", handlers.GetBalanceOverTimeHandler(nil))
	return r
}

func doRequest(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIncomeExpensesMissingParams(t *testing.T) {
	r := setupAnalyticsRouter()

	for _, path := range []string{
		"/income-expenses",
		"/income-expenses?user_id=1",
		"/income-expenses?user_id=1&period=month",
		"/income-expenses?period=month&date=2024-03-15",
	} {
		w := doRequest(t, r, path)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: ожидали 400, получили %d", path, w.Code)
		}
	}
}

func TestIncomeExpensesUnknownPeriod(t *testing.T) {
	r := setupAnalyticsRouter()

	w := doRequest(t, r, "/income-expenses?user_id=1&period=banana&date=2024-03-15")
	if w.Code != http.StatusBadRequest {
		t.Errorf("неизвестный период должен давать 400, получили %d", w.Code)
	}
}

func TestIncomeExpensesInvalidDate(t *testing.T) {
	r := setupAnalyticsRouter()

	w := doRequest(t, r, "/income-expenses?user_id=1&period=month&date=15.03.2024")
	if w.Code != http.StatusBadRequest {
		t.Errorf("некорректная дата должна давать 400, получили %d", w.Code)
	}
}

func TestBalanceMissingUserID(t *testing.T) {
	r := setupAnalyticsRouter()

	w := doRequest(t, r, "/transactions/balance")
	if w.Code != http.StatusBadRequest {
		t.Errorf("отсутствующий user_id должен давать 400, получили %d", w.Code)
	}
}

func TestBalanceOverTimeMissingUserID(t *testing.T) {
	r := setupAnalyticsRouter()

	w := doRequest(t, r, "/balance-over-time?user_id=abc")
	if w.Code != http.StatusBadRequest {
		t.Errorf("нечисловой user_id должен давать 400, получили %d", w.Code)
	}
}
