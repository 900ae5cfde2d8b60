package service

import (
	"context"

	"betpool/internal/model"
)

// BettingService defines the business logic for placing and matching bets
type BettingService interface {
	// PlaceBet debits the stake, creates the bet and matches it FIFO against the
	// opposing pool, all in one atomic unit
	PlaceBet(ctx context.Context, userID int64, req *model.PlaceBetRequest) (*model.BetResponse, error)

	// GetBetsBySeries returns a series' bets grouped by backed player
	GetBetsBySeries(ctx context.Context, seriesID int64) (*model.SeriesBetsResponse, error)
}

// SeriesService defines the series lifecycle, settlement and cancellation logic
type SeriesService interface {
	CreateMatch(ctx context.Context, req *model.CreateMatchRequest) (*model.Match, error)
	Release(ctx context.Context, seriesID int64) (*model.Series, error)
	Start(ctx context.Context, seriesID int64) (*model.Series, error)
	// Finish settles the series: refunds, payouts and commission in one atomic unit
	Finish(ctx context.Context, seriesID int64, req *model.FinishSeriesRequest) (*model.Series, error)
	// Cancel refunds every bet's full amount regardless of match state
	Cancel(ctx context.Context, seriesID int64) (*model.Series, error)
}

// DepositService defines deposit creation, idempotent confirmation and expiry
type DepositService interface {
	CreateDeposit(ctx context.Context, userID int64, req *model.CreateDepositRequest) (*model.DepositResponse, error)
	// ConfirmDeposit credits the wallet exactly once; repeated calls return the
	// already-completed entry
	ConfirmDeposit(ctx context.Context, publicID string) (*model.Transaction, error)
	GetTransaction(ctx context.Context, publicID string) (*model.Transaction, error)
	// ExpirePendingDeposits fails pending deposits whose window has passed
	ExpirePendingDeposits(ctx context.Context) error
}

// WalletService defines balance and statement access plus withdrawal
type WalletService interface {
	GetBalance(ctx context.Context, userID int64) (*model.BalanceResponse, error)
	GetStatement(ctx context.Context, userID int64, limit, offset int) ([]*model.Transaction, error)
	Withdraw(ctx context.Context, userID int64, req *model.WithdrawRequest) (*model.Transaction, error)
}

// AuthService resolves bearer tokens to users
type AuthService interface {
	Authenticate(ctx context.Context, token string) (*model.User, error)
}
