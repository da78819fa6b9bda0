package sqlbase

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/barcommun/internal/membership/store"
)

type txStore struct {
	tx    *sql.Tx
	repos repos
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

// Close is a no-op; the caller commits or rolls back and the pool stays open.
func (t *txStore) Close() error { return nil }

// Ping is a no-op, the transaction already holds a live connection.
func (t *txStore) Ping(ctx context.Context) error { return nil }

// Nested transactions are not supported.
func (t *txStore) Tx(ctx context.Context) (store.Tx, error) { return nil, sql.ErrTxDone }

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return sql.ErrTxDone
}

func (t *txStore) Users() store.Users                     { return t.repos.users }
func (t *txStore) Memberships() store.Memberships         { return t.repos.memberships }
func (t *txStore) UserMemberships() store.UserMemberships { return t.repos.userMemberships }

// ApplyMigrations is a no-op; migrations run before any transaction starts.
func (t *txStore) ApplyMigrations() error { return nil }
