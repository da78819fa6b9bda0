// Package postgres is the PostgreSQL store driver, built on pgx through
// database/sql so it shares its queries with the sqlite driver.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/aussiebroadwan/barcommun/internal/membership/store/drivers/query"
	"github.com/aussiebroadwan/barcommun/internal/membership/store/drivers/sqlbase"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// uniqueViolation is SQLSTATE 23505.
const uniqueViolation = "23505"

// NewStore connects to url (a postgres:// URL or keyword DSN) and pings it.
func NewStore(ctx context.Context, url string) (*sqlbase.Store, error) {
	db, err := sql.Open("pgx", url)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)
	db.SetConnMaxIdleTime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return sqlbase.New(db, sqlbase.Options{
		Dialect:           query.Postgres,
		IsUniqueViolation: isUniqueViolation,
		Migrate:           migrateUp,
	}), nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
