package trm

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
)

type Transaction interface {
	Commit() error
	Rollback() error
}

// Querier is the part of sqlx shared by *sqlx.DB and *sqlx.Tx.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	GetContext(ctx context.Context, dest any, query string, args ...any) error
	SelectContext(ctx context.Context, dest any, query string, args ...any) error
}

type txKey struct{}

func txFrom(ctx context.Context) (*sqlx.Tx, bool) {
	tx, ok := ctx.Value(txKey{}).(*sqlx.Tx)
	return tx, ok && tx != nil
}

// Conn returns the transaction bound to ctx, or db when there is none.
func Conn(ctx context.Context, db *sqlx.DB) Querier {
	if tx, ok := txFrom(ctx); ok {
		return tx
	}
	return db
}

type Manager interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (context.Context, Transaction, error)
	// Do runs fn in a read-write transaction. Nested calls join the outer one.
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	// DoReadOnly runs fn over a single read-only snapshot.
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

var (
	readWrite = &sql.TxOptions{Isolation: sql.LevelReadCommitted}
	readOnly  = &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}
)

type manager struct {
	db *sqlx.DB
}

func NewManager(db *sqlx.DB) Manager {
	return &manager{db: db}
}

func (m *manager) BeginTx(ctx context.Context, opts *sql.TxOptions) (context.Context, Transaction, error) {
	tx, err := m.db.BeginTxx(ctx, opts)
	if err != nil {
		return ctx, nil, err
	}
	return context.WithValue(ctx, txKey{}, tx), tx, nil
}

func (m *manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, readWrite, fn)
}

func (m *manager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, readOnly, fn)
}

func (m *manager) run(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) error {
	if _, ok := txFrom(ctx); ok {
		return fn(ctx)
	}

	txCtx, tx, err := m.BeginTx(ctx, opts)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := fn(txCtx); err != nil {
		return err
	}
	return tx.Commit()
}
