package repository

import (
	"context"
	"time"

	"betpool/internal/model"

	"github.com/jackc/pgx/v5"
)

// DBManager provides database transaction management
type DBManager interface {
	// WithTransaction executes a function within a database transaction
	WithTransaction(ctx context.Context, fn func(pgx.Tx) error) error
}

// WalletRepository defines operations for wallet balance management.
// Mutations always run inside a caller-held database transaction.
type WalletRepository interface {
	// GetForUpdate retrieves a wallet with row-level lock (must be in transaction)
	GetForUpdate(ctx context.Context, userID int64, tx pgx.Tx) (*model.Wallet, error)

	// Get retrieves a wallet without locking (read-only)
	Get(ctx context.Context, userID int64, tx ...pgx.Tx) (*model.Wallet, error)

	// UpdateBalances writes both balances; the non-negative check constraints
	// surface as model.ErrInsufficientBalance
	UpdateBalances(ctx context.Context, userID, available, blocked int64, tx pgx.Tx) error
}

// MatchRepository defines operations for matches
type MatchRepository interface {
	Insert(ctx context.Context, m *model.Match, tx pgx.Tx) error
	Get(ctx context.Context, matchID int64, tx ...pgx.Tx) (*model.Match, error)
}

// SeriesRepository defines operations for series lifecycle management
type SeriesRepository interface {
	InsertForMatch(ctx context.Context, matchID int64, total int, tx pgx.Tx) error

	Get(ctx context.Context, seriesID int64, tx ...pgx.Tx) (*model.Series, error)

	// GetForUpdate locks the series row; this lock is the serialization point
	// for all matching and settlement on the series
	GetForUpdate(ctx context.Context, seriesID int64, tx pgx.Tx) (*model.Series, error)

	UpdateState(ctx context.Context, seriesID int64, state model.SeriesState, tx pgx.Tx) error

	// Settle writes the terminal settled state together with winner and scores
	Settle(ctx context.Context, seriesID, winnerPlayerID int64, p1Score, p2Score int, tx pgx.Tx) error

	// CountInProgressByMatch counts sibling series currently in progress
	CountInProgressByMatch(ctx context.Context, matchID int64, tx pgx.Tx) (int, error)
}

// BetRepository defines operations for bets and the per-side FIFO match queues
type BetRepository interface {
	Insert(ctx context.Context, bet *model.Bet, tx pgx.Tx) error

	// ListOpenBySide returns bets backing chosenPlayerID with unmatched remainder,
	// oldest first; this ordering is the FIFO matching queue
	ListOpenBySide(ctx context.Context, seriesID, chosenPlayerID int64, tx pgx.Tx) ([]*model.Bet, error)

	// UpdateFill persists a new matched amount and derived status
	UpdateFill(ctx context.Context, betID, matchedAmount int64, status model.BetStatus, tx pgx.Tx) error

	UpdateStatus(ctx context.Context, betID int64, status model.BetStatus, tx pgx.Tx) error

	ListBySeries(ctx context.Context, seriesID int64, tx ...pgx.Tx) ([]*model.Bet, error)
}

// TransactionRepository defines operations for the append-only wallet ledger
type TransactionRepository interface {
	Insert(ctx context.Context, trans *model.Transaction, tx pgx.Tx) error

	GetByPublicID(ctx context.Context, publicID string, tx ...pgx.Tx) (*model.Transaction, error)

	// GetForUpdateByPublicID locks the ledger row, the idempotency point for
	// deposit confirmation
	GetForUpdateByPublicID(ctx context.Context, publicID string, tx pgx.Tx) (*model.Transaction, error)

	// Complete transitions a pending entry to completed; returns false when the
	// entry was no longer pending
	Complete(ctx context.Context, id int64, tx pgx.Tx) (bool, error)

	// FailIfPending transitions a pending entry to failed; returns false when the
	// entry was no longer pending
	FailIfPending(ctx context.Context, id int64, tx pgx.Tx) (bool, error)

	// ListExpiredPendingDeposits retrieves pending deposits whose window closed before cutoff
	ListExpiredPendingDeposits(ctx context.Context, cutoff time.Time, limit int) ([]*model.Transaction, error)

	// LockPendingDeposit claims a pending deposit row for the expiry sweep
	LockPendingDeposit(ctx context.Context, id int64, tx pgx.Tx) (bool, error)

	ListByUser(ctx context.Context, userID int64, limit, offset int) ([]*model.Transaction, error)
}

// InfluencerRepository defines read access to influencer commission configuration
type InfluencerRepository interface {
	Get(ctx context.Context, influencerID int64, tx ...pgx.Tx) (*model.Influencer, error)
}

// SessionRepository resolves bearer tokens to users
type SessionRepository interface {
	GetUserByToken(ctx context.Context, token string) (*model.User, error)
}
