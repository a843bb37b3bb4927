package database

import (
	"context"

	"gorm.io/gorm"
)

type txKey struct{}

// TxFunc runs fn inside a single storage transaction. Repository calls made
// with the context passed to fn join that transaction.
type TxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

// NewTxRunner returns a TxFunc backed by a GORM transaction on db.
func NewTxRunner(db *gorm.DB) TxFunc {
	return func(ctx context.Context, fn func(ctx context.Context) error) error {
		return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return fn(context.WithValue(ctx, txKey{}, tx))
		})
	}
}

// Resolve returns the transaction carried by ctx, or fallback when the
// caller is not inside one.
func Resolve(ctx context.Context, fallback *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return fallback
}
