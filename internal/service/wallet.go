package service

import (
	"context"
	"fmt"

	"betpool/internal/model"
	"betpool/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

type WalletServiceImpl struct {
	walletRepo      repository.WalletRepository
	transactionRepo repository.TransactionRepository
	dbManager       repository.DBManager
	logger          zerolog.Logger
}

func NewWalletService(
	walletRepo repository.WalletRepository,
	transactionRepo repository.TransactionRepository,
	dbManager repository.DBManager,
	logger zerolog.Logger,
) WalletService {
	return &WalletServiceImpl{
		walletRepo:      walletRepo,
		transactionRepo: transactionRepo,
		dbManager:       dbManager,
		logger:          logger,
	}
}

func (s *WalletServiceImpl) GetBalance(ctx context.Context, userID int64) (*model.BalanceResponse, error) {
	wallet, err := s.walletRepo.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get wallet: %w", err)
	}

	return &model.BalanceResponse{
		UserID:           userID,
		AvailableBalance: wallet.AvailableBalance,
		BlockedBalance:   wallet.BlockedBalance,
	}, nil
}

func (s *WalletServiceImpl) GetStatement(ctx context.Context, userID int64, limit, offset int) ([]*model.Transaction, error) {
	transactions, err := s.transactionRepo.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return transactions, nil
}

// Withdraw debits the available balance; blocked funds are never withdrawable
func (s *WalletServiceImpl) Withdraw(ctx context.Context, userID int64, req *model.WithdrawRequest) (*model.Transaction, error) {
	if req.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", model.ErrValidation)
	}

	var entry *model.Transaction

	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		wallet, err := s.walletRepo.GetForUpdate(ctx, userID, tx)
		if err != nil {
			return fmt.Errorf("get wallet for update: %w", err)
		}

		if wallet.AvailableBalance < req.Amount {
			return model.ErrInsufficientBalance
		}

		err = s.walletRepo.UpdateBalances(ctx, userID,
			wallet.AvailableBalance-req.Amount, wallet.BlockedBalance, tx)
		if err != nil {
			return fmt.Errorf("update balances: %w", err)
		}

		entry = completedEntry(userID, model.TypeWithdraw, req.Amount, nil, nil)
		if err := s.transactionRepo.Insert(ctx, entry, tx); err != nil {
			return fmt.Errorf("insert withdraw entry: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("transaction_id", entry.PublicID).
		Int64("user_id", userID).
		Int64("amount", req.Amount).
		Msg("withdrawal processed")
	return entry, nil
}
