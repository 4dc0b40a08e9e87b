// Package db provides database helpers shared by the repository layer.
package db

import (
	"context"

	"gorm.io/gorm"
)

// txKey is the context key under which an open transaction is stored.
type txKey struct{}

// WithTx returns a context carrying the given transaction. Repositories
// resolve it via GetTxFromContext so multi-step writes share one unit of work.
func WithTx(ctx context.Context, tx *gorm.DB) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// RunInTransaction executes fn inside a database transaction. The transaction
// is committed when fn returns nil and rolled back otherwise.
func RunInTransaction(ctx context.Context, gdb *gorm.DB, fn func(ctx context.Context) error) error {
	return gdb.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(WithTx(ctx, tx))
	})
}

// GetTxFromContext returns the transaction stored in ctx, or defaultDB scoped
// to ctx when no transaction is open.
func GetTxFromContext(ctx context.Context, defaultDB *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return defaultDB.WithContext(ctx)
}
