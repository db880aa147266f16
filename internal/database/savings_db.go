package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valeriaulyamaeva/finance-tracker-api/models"
)

func CreateSavingsEntry(pool *pgxpool.Pool, entry *models.SavingsWalletEntry) error {
	query := `
		INSERT INTO savingswallet (user_id, type, amount, date)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	err := pool.QueryRow(context.Background(), query,
		entry.UserID,
		entry.Type,
		entry.Amount,
		entry.Date).Scan(&entry.ID)
	if err != nil {
		return fmt.Errorf("ошибка при добавлении записи в накопительный кошелек: %v", err)
	}
	return nil
}

func GetSavingsEntriesByUserID(pool *pgxpool.Pool, userID int) ([]models.SavingsWalletEntry, error) {
	query := `
		SELECT id, user_id, type, amount, date
		FROM savingswallet
		WHERE user_id = $1
		ORDER BY date`

	rows, err := pool.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении записей накопительного кошелька: %v", err)
	}
	defer rows.Close()

	var entries []models.SavingsWalletEntry
	for rows.Next() {
		var e models.SavingsWalletEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Type, &e.Amount, &e.Date); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
