package usecase

import (
	"context"
	"time"
)

// LedgerDeps bundles the collaborators shared by every money-entity use
// case: the transaction runner, the caja repository (Balance Adjuster),
// the outbox, the id generator and the monthly read window.
type LedgerDeps struct {
	Runner           *TxRunner
	CajaRepo         CajaRepository
	OutboxRepo       OutboxRepository
	IDGen            IDGenerator
	MonthlyGraceDays int
}

// TxRunner executes a function inside a database transaction, bounding it
// with a timeout and retrying on transient storage failures. The
// transaction is rolled back unless fn returns nil and commit succeeds,
// so a failure at any step leaves no partial effects.
type TxRunner struct {
	txManager TransactionManager
	retrier   Retrier
	timeout   time.Duration
}

// NewTxRunner creates a TxRunner. retrier may be nil to disable retries.
func NewTxRunner(txManager TransactionManager, retrier Retrier, timeout time.Duration) *TxRunner {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &TxRunner{
		txManager: txManager,
		retrier:   retrier,
		timeout:   timeout,
	}
}

// Run executes fn within a transaction.
func (r *TxRunner) Run(ctx context.Context, fn func(ctx context.Context, tx Transaction) error) error {
	if r.retrier == nil {
		return r.runOnce(ctx, fn)
	}
	return r.retrier.Retry(ctx, func() error {
		return r.runOnce(ctx, fn)
	})
}

func (r *TxRunner) runOnce(ctx context.Context, fn func(ctx context.Context, tx Transaction) error) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	tx, err := r.txManager.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := fn(ctx, tx); err != nil {
		return err
	}

	return tx.Commit(ctx)
}
