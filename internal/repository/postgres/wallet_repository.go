package postgres

import (
	"context"
	"errors"
	"fmt"

	"betpool/internal/model"
	"betpool/internal/repository"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Ensure implementation satisfies interface at compile time
var _ repository.WalletRepository = (*WalletRepositoryImpl)(nil)

// WalletRepositoryImpl is the PostgreSQL implementation of WalletRepository
type WalletRepositoryImpl struct {
	*TransactionManager
}

func NewWalletRepository(pool *pgxpool.Pool) repository.WalletRepository {
	return &WalletRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

// GetForUpdate retrieves a wallet with row-level lock
func (r *WalletRepositoryImpl) GetForUpdate(ctx context.Context, userID int64, tx pgx.Tx) (*model.Wallet, error) {
	query := `
        SELECT id, user_id, available_balance, blocked_balance, version, created_at, updated_at
        FROM wallets WHERE user_id = $1 FOR UPDATE`

	w := &model.Wallet{}
	err := tx.QueryRow(ctx, query, userID).
		Scan(&w.ID, &w.UserID, &w.AvailableBalance, &w.BlockedBalance, &w.Version, &w.CreatedAt, &w.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrWalletNotFound
		}
		return nil, fmt.Errorf("failed to get wallet for update: %w", err)
	}
	return w, nil
}

// Get retrieves a wallet without locking
func (r *WalletRepositoryImpl) Get(ctx context.Context, userID int64, tx ...pgx.Tx) (*model.Wallet, error) {
	query := `
        SELECT id, user_id, available_balance, blocked_balance, version, created_at, updated_at
        FROM wallets WHERE user_id = $1`

	w := &model.Wallet{}
	executor := r.getExecutor(tx...)
	err := executor.QueryRow(ctx, query, userID).
		Scan(&w.ID, &w.UserID, &w.AvailableBalance, &w.BlockedBalance, &w.Version, &w.CreatedAt, &w.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrWalletNotFound
		}
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}
	return w, nil
}

// UpdateBalances writes both balances under the row lock taken by GetForUpdate
func (r *WalletRepositoryImpl) UpdateBalances(ctx context.Context, userID, available, blocked int64, tx pgx.Tx) error {
	query := `
        UPDATE wallets
        SET available_balance = $1, blocked_balance = $2, version = version + 1, updated_at = NOW()
        WHERE user_id = $3`

	commandTag, err := tx.Exec(ctx, query, available, blocked, userID)
	if err != nil {
		var pgErr *pgconn.PgError
		// balances carry CHECK (>= 0) constraints
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.CheckViolation {
			return model.ErrInsufficientBalance
		}
		return fmt.Errorf("failed to update balances: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return model.ErrWalletNotFound
	}
	return nil
}
