package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valeriaulyamaeva/finance-tracker-api/models"
)

func CreateTransaction(pool *pgxpool.Pool, transaction *models.Transaction) error {
	query := `
		INSERT INTO transactions (user_id, amount, description, category, date, type)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	err := pool.QueryRow(context.Background(), query,
		transaction.UserID,
		transaction.Amount,
		transaction.Description,
		transaction.Category,
		transaction.Date,
		transaction.Type).Scan(&transaction.ID)
	if err != nil {
		return fmt.Errorf("ошибка при добавлении транзакции: %v", err)
	}
	return nil
}

// CreateTransactionsBatch вставляет пачку транзакций одним обращением к БД.
func CreateTransactionsBatch(pool *pgxpool.Pool, transactions []models.Transaction) error {
	batch := &pgx.Batch{}
	query := `
		INSERT INTO transactions (user_id, amount, description, category, date, type)
		VALUES ($1, $2, $3, $4, $5, $6)`
	for _, t := range transactions {
		batch.Queue(query, t.UserID, t.Amount, t.Description, t.Category, t.Date, t.Type)
	}

	results := pool.SendBatch(context.Background(), batch)
	defer results.Close()

	for range transactions {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("ошибка при пакетной вставке транзакций: %v", err)
		}
	}
	return nil
}

func GetTransactionsByUserID(pool *pgxpool.Pool, userID int) ([]models.Transaction, error) {
	query := `
		SELECT id, user_id, amount, description, category, date, type
		FROM transactions
		WHERE user_id = $1
		ORDER BY date`

	rows, err := pool.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении транзакций: %v", err)
	}
	defer rows.Close()

	return scanTransactions(rows)
}

func GetTransactionsByUserAndDateRange(pool *pgxpool.Pool, userID int, start, end time.Time) ([]models.Transaction, error) {
	query := `
		SELECT id, user_id, amount, description, category, date, type
		FROM transactions
		WHERE user_id = $1 AND date::date BETWEEN $2::date AND $3::date
		ORDER BY date`

	rows, err := pool.Query(context.Background(), query, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении транзакций за период: %v", err)
	}
	defer rows.Close()

	return scanTransactions(rows)
}

// GetDebitSpentByCategory возвращает суммы дебетовых транзакций пользователя по категориям.
func GetDebitSpentByCategory(pool *pgxpool.Pool, userID int) (map[string]float64, error) {
	query := `
		SELECT category, COALESCE(SUM(amount), 0) AS spent
		FROM transactions
		WHERE user_id = $1 AND type = 'debit'
		GROUP BY category`

	rows, err := pool.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении трат по категориям: %v", err)
	}
	defer rows.Close()

	spent := make(map[string]float64)
	for rows.Next() {
		var category string
		var total float64
		if err := rows.Scan(&category, &total); err != nil {
			return nil, err
		}
		spent[category] = total
	}
	return spent, rows.Err()
}

func scanTransactions(rows pgx.Rows) ([]models.Transaction, error) {
	var transactions []models.Transaction
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(&t.ID, &t.UserID, &t.Amount, &t.Description, &t.Category, &t.Date, &t.Type); err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}
