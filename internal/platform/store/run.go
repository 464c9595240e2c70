package store

import "context"

// RunAsUser wraps ctx with the user id and calls fn inside the provided TxRunner
func RunAsUser(ctx context.Context, tx TxRunner, userID string, fn func(ctx context.Context, q RowQuerier) error) error {
	ctx = WithUser(ctx, userID)
	return tx.Tx(ctx, func(q RowQuerier) error {
		return fn(ctx, q)
	})
}
