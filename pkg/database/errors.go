package database

import (
	"errors"

	migrateDatabase "github.com/golang-migrate/migrate/v4/database"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// SQLState извлекает код SQLSTATE из ошибки драйвера PostgreSQL.
// Поддерживаются pgx (gorm), lib/pq и обертка database.Error из golang-migrate,
// которая не реализует Unwrap. Пустая строка - кода нет.
func SQLState(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}

	// migrate возвращает database.Error и по значению, и по указателю
	var migrateErr migrateDatabase.Error
	if errors.As(err, &migrateErr) && migrateErr.OrigErr != nil {
		return SQLState(migrateErr.OrigErr)
	}
	var migrateErrPtr *migrateDatabase.Error
	if errors.As(err, &migrateErrPtr) && migrateErrPtr.OrigErr != nil {
		return SQLState(migrateErrPtr.OrigErr)
	}
	return ""
}
