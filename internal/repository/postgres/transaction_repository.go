package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"betpool/internal/model"
	"betpool/internal/repository"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Ensure implementation satisfies interface at compile time
var _ repository.TransactionRepository = (*TransactionRepositoryImpl)(nil)

// TransactionRepositoryImpl is the PostgreSQL implementation of TransactionRepository
type TransactionRepositoryImpl struct {
	*TransactionManager
}

func NewTransactionRepository(pool *pgxpool.Pool) repository.TransactionRepository {
	return &TransactionRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

const transactionColumns = `id, public_id, user_id, type, status, amount, series_id, bet_id, expires_at, completed_at, created_at, updated_at`

func scanTransaction(row pgx.Row) (*model.Transaction, error) {
	t := &model.Transaction{}
	err := row.Scan(&t.ID, &t.PublicID, &t.UserID, &t.Type, &t.Status, &t.Amount, &t.SeriesID, &t.BetID, &t.ExpiresAt, &t.CompletedAt, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to scan transaction: %w", err)
	}
	return t, nil
}

func (r *TransactionRepositoryImpl) Insert(ctx context.Context, trans *model.Transaction, tx pgx.Tx) error {
	query := `
        INSERT INTO transactions (public_id, user_id, type, status, amount, series_id, bet_id, expires_at, completed_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING id, created_at, updated_at`

	err := tx.QueryRow(ctx, query, trans.PublicID, trans.UserID, trans.Type, trans.Status, trans.Amount, trans.SeriesID, trans.BetID, trans.ExpiresAt, trans.CompletedAt).
		Scan(&trans.ID, &trans.CreatedAt, &trans.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return model.ErrDuplicateTransaction
		}
		return fmt.Errorf("failed to insert transaction: %w", err)
	}
	return nil
}

func (r *TransactionRepositoryImpl) GetByPublicID(ctx context.Context, publicID string, tx ...pgx.Tx) (*model.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE public_id = $1`
	executor := r.getExecutor(tx...)
	return scanTransaction(executor.QueryRow(ctx, query, publicID))
}

// GetForUpdateByPublicID locks the ledger row; deposit confirmation takes this
// lock so the webhook and polling triggers cannot both credit the wallet.
func (r *TransactionRepositoryImpl) GetForUpdateByPublicID(ctx context.Context, publicID string, tx pgx.Tx) (*model.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE public_id = $1 FOR UPDATE`
	return scanTransaction(tx.QueryRow(ctx, query, publicID))
}

// Complete transitions a pending entry to completed exactly once
func (r *TransactionRepositoryImpl) Complete(ctx context.Context, id int64, tx pgx.Tx) (bool, error) {
	query := `
        UPDATE transactions
        SET status = 'completed', completed_at = NOW(), updated_at = NOW()
        WHERE id = $1 AND status = 'pending'`

	result, err := tx.Exec(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("failed to complete transaction: %w", err)
	}
	return result.RowsAffected() == 1, nil
}

// FailIfPending transitions a pending entry to failed exactly once
func (r *TransactionRepositoryImpl) FailIfPending(ctx context.Context, id int64, tx pgx.Tx) (bool, error) {
	query := `
        UPDATE transactions
        SET status = 'failed', updated_at = NOW()
        WHERE id = $1 AND status = 'pending'`

	result, err := tx.Exec(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("failed to fail transaction: %w", err)
	}
	return result.RowsAffected() == 1, nil
}

// ListExpiredPendingDeposits retrieves pending deposits whose window closed before cutoff
func (r *TransactionRepositoryImpl) ListExpiredPendingDeposits(ctx context.Context, cutoff time.Time, limit int) ([]*model.Transaction, error) {
	query := `
        SELECT ` + transactionColumns + `
        FROM transactions
        WHERE type = 'deposit' AND status = 'pending' AND expires_at < $1
        ORDER BY expires_at
        LIMIT $2`

	rows, err := r.pool.Query(ctx, query, cutoff, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query expired deposits: %w", err)
	}
	defer rows.Close()

	var transactions []*model.Transaction
	for rows.Next() {
		t := &model.Transaction{}
		if err := rows.Scan(&t.ID, &t.PublicID, &t.UserID, &t.Type, &t.Status, &t.Amount, &t.SeriesID, &t.BetID, &t.ExpiresAt, &t.CompletedAt, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}

// LockPendingDeposit claims a pending deposit row for the expiry sweep without
// blocking on rows a concurrent confirmation already holds
func (r *TransactionRepositoryImpl) LockPendingDeposit(ctx context.Context, id int64, tx pgx.Tx) (bool, error) {
	query := `SELECT id FROM transactions WHERE id = $1 AND status = 'pending' FOR UPDATE SKIP LOCKED`

	var lockedID int64
	err := tx.QueryRow(ctx, query, id).Scan(&lockedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to lock pending deposit: %w", err)
	}
	return true, nil
}

func (r *TransactionRepositoryImpl) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]*model.Transaction, error) {
	query := `
        SELECT ` + transactionColumns + `
        FROM transactions WHERE user_id = $1
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var transactions []*model.Transaction
	for rows.Next() {
		t := &model.Transaction{}
		if err := rows.Scan(&t.ID, &t.PublicID, &t.UserID, &t.Type, &t.Status, &t.Amount, &t.SeriesID, &t.BetID, &t.ExpiresAt, &t.CompletedAt, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}
