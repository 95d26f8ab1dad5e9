// Package db carries shared database plumbing: transaction propagation via
// context and the handle repositories pull their session from.
package db

import (
	"context"

	"gorm.io/gorm"
)

type txKey struct{}

// TransactionManager runs a function inside a single gorm transaction and
// threads the transactional handle through the context so every repository
// call inside the function joins the same transaction.
type TransactionManager struct {
	db *gorm.DB
}

func NewTransactionManager(db *gorm.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// RunInTransaction commits when fn returns nil and rolls back otherwise.
func (tm *TransactionManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// GetTxFromContext returns the transaction placed in ctx by RunInTransaction,
// or defaultDB bound to ctx when no transaction is in flight.
func GetTxFromContext(ctx context.Context, defaultDB *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return defaultDB.WithContext(ctx)
}
