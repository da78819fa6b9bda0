package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/aussiebroadwan/barcommun/internal/membership/store/drivers/query"
	"github.com/aussiebroadwan/barcommun/internal/membership/store/drivers/sqlbase"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// DSN builds the file DSN used in production. Transactions take the write
// lock up front so a read followed by a write never fails a lock upgrade;
// waiting writers queue on the busy timeout.
func DSN(file string) string {
	return fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_txlock=immediate", file)
}

// NewStore opens a sqlite database. ":memory:" gives a private in-memory
// database pinned to a single connection.
func NewStore(dsn string) (*sqlbase.Store, error) {
	memory := dsn == ":memory:"
	if memory {
		dsn = "file::memory:"
	}

	db, err := sql.Open("sqlite", withDriverOptions(dsn))
	if err != nil {
		return nil, err
	}
	if memory {
		db.SetMaxOpenConns(1)
	}

	// Foreign keys are also set per connection through the DSN; this catches
	// a DSN that somehow lost the pragma.
	if _, err := db.ExecContext(context.Background(), `PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	return sqlbase.New(db, sqlbase.Options{
		Dialect:           query.SQLite,
		IsUniqueViolation: isUniqueViolation,
		Migrate:           migrateUp,
	}), nil
}

// withDriverOptions turns on foreign keys for every pooled connection and
// stores times in a lexically sortable format.
func withDriverOptions(dsn string) string {
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=foreign_keys(1)&_time_format=sqlite"
}

func isUniqueViolation(err error) bool {
	var serr *sqlite.Error
	if !errors.As(err, &serr) {
		return false
	}
	switch serr.Code() {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return true
	}
	return false
}
