package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// RunMigrations создает таблицы, если их еще нет.
func RunMigrations(pool *pgxpool.Pool) error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS transactions (
			id SERIAL PRIMARY KEY,
			user_id INTEGER NOT NULL REFERENCES users(id),
			amount NUMERIC(12, 2) NOT NULL CHECK (amount >= 0),
			description TEXT NOT NULL DEFAULT '',
			category TEXT NOT NULL DEFAULT '',
			date TIMESTAMPTZ NOT NULL,
			type TEXT NOT NULL CHECK (type IN ('credit', 'debit'))
		)`,
		`CREATE TABLE IF NOT EXISTS savingswallet (
			id SERIAL PRIMARY KEY,
			user_id INTEGER NOT NULL REFERENCES users(id),
			type TEXT NOT NULL CHECK (type IN ('credit', 'debit')),
			amount NUMERIC(12, 2) NOT NULL CHECK (amount >= 0),
			date TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS budgets (
			id SERIAL PRIMARY KEY,
			user_id INTEGER NOT NULL REFERENCES users(id),
			budget_name TEXT NOT NULL,
			amount NUMERIC(12, 2) NOT NULL,
			currency TEXT NOT NULL DEFAULT '',
			category TEXT NOT NULL DEFAULT '',
			recurrence TEXT NOT NULL DEFAULT '',
			start_date TIMESTAMPTZ,
			end_date TIMESTAMPTZ
		)`,
	}

	for _, query := range migrations {
		if _, err := pool.Exec(context.Background(), query); err != nil {
			return fmt.Errorf("ошибка выполнения миграции: %v", err)
		}
	}
	return nil
}
