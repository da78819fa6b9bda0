// Package query holds the SQL shared by the sqlite and postgres drivers and
// the row types it scans into. Statements are written with "?" placeholders
// and rebound per dialect.
package query

import (
	"context"
	"database/sql"
	"strconv"
	"strings"
)

type DBTX interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
	QueryContext(context.Context, string, ...any) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...any) *sql.Row
}

// Dialect selects the placeholder style.
type Dialect int

const (
	SQLite Dialect = iota
	Postgres
)

func (d Dialect) String() string {
	if d == Postgres {
		return "postgres"
	}
	return "sqlite"
}

// Rebind rewrites "?" placeholders to "$n" for postgres. Statements in this
// package never contain a literal question mark.
func (d Dialect) Rebind(q string) string {
	if d != Postgres {
		return q
	}

	var b strings.Builder
	b.Grow(len(q) + 8)
	n := 0
	for _, r := range q {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func New(db DBTX, d Dialect) *Queries {
	return &Queries{db: db, dialect: d}
}

type Queries struct {
	db      DBTX
	dialect Dialect
}

func (q *Queries) WithTx(tx *sql.Tx) *Queries {
	return &Queries{db: tx, dialect: q.dialect}
}

func (q *Queries) exec(ctx context.Context, stmt string, args ...any) (int64, error) {
	res, err := q.db.ExecContext(ctx, q.dialect.Rebind(stmt), args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (q *Queries) queryRow(ctx context.Context, stmt string, args ...any) *sql.Row {
	return q.db.QueryRowContext(ctx, q.dialect.Rebind(stmt), args...)
}

func (q *Queries) query(ctx context.Context, stmt string, args ...any) (*sql.Rows, error) {
	return q.db.QueryContext(ctx, q.dialect.Rebind(stmt), args...)
}

// paginate appends LIMIT/OFFSET when limit is positive.
func paginate(stmt string, args []any, limit, offset int) (string, []any) {
	if limit <= 0 {
		return stmt, args
	}
	return stmt + " LIMIT ? OFFSET ?", append(args, limit, max(offset, 0))
}
