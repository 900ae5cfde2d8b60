package service

import (
	"context"
	"fmt"
	"time"

	"betpool/internal/model"
	"betpool/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

type DepositServiceImpl struct {
	walletRepo      repository.WalletRepository
	transactionRepo repository.TransactionRepository
	dbManager       repository.DBManager
	depositExpiry   time.Duration
	expiryBatchSize int
	logger          zerolog.Logger
}

func NewDepositService(
	walletRepo repository.WalletRepository,
	transactionRepo repository.TransactionRepository,
	dbManager repository.DBManager,
	depositExpiry time.Duration,
	expiryBatchSize int,
	logger zerolog.Logger,
) DepositService {
	return &DepositServiceImpl{
		walletRepo:      walletRepo,
		transactionRepo: transactionRepo,
		dbManager:       dbManager,
		depositExpiry:   depositExpiry,
		expiryBatchSize: expiryBatchSize,
		logger:          logger,
	}
}

// CreateDeposit opens a pending deposit with a confirmation window and returns
// the provider QR payload the client renders for payment.
func (s *DepositServiceImpl) CreateDeposit(ctx context.Context, userID int64, req *model.CreateDepositRequest) (*model.DepositResponse, error) {
	if req.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", model.ErrValidation)
	}

	expiresAt := time.Now().Add(s.depositExpiry)
	trans := &model.Transaction{
		PublicID:  uuid.New().String(),
		UserID:    userID,
		Type:      model.TypeDeposit,
		Status:    model.TxPending,
		Amount:    req.Amount,
		ExpiresAt: &expiresAt,
	}

	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		// Wallet must exist before money can be aimed at it
		if _, err := s.walletRepo.Get(ctx, userID, tx); err != nil {
			return fmt.Errorf("get wallet: %w", err)
		}
		if err := s.transactionRepo.Insert(ctx, trans, tx); err != nil {
			return fmt.Errorf("insert deposit: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("transaction_id", trans.PublicID).
		Int64("user_id", userID).
		Int64("amount", req.Amount).
		Time("expires_at", expiresAt).
		Msg("deposit created")

	return &model.DepositResponse{
		TransactionID: trans.PublicID,
		Amount:        trans.Amount,
		Status:        trans.Status,
		QRCode:        pixCopyPasteCode(trans.PublicID, trans.Amount),
		ExpiresAt:     expiresAt,
	}, nil
}

// pixCopyPasteCode builds the BR Code style copy-paste payload for a deposit
func pixCopyPasteCode(publicID string, amount int64) string {
	return fmt.Sprintf("00020126580014br.gov.bcb.pix0136%s5204000053039865406%d.%02d5802BR6304",
		publicID, amount/100, amount%100)
}

// ConfirmDeposit credits the wallet exactly once. The webhook and the polling
// path both land here; whichever arrives second finds the entry completed and
// gets it back unchanged. Expired pending deposits are rejected.
func (s *DepositServiceImpl) ConfirmDeposit(ctx context.Context, publicID string) (*model.Transaction, error) {
	var result *model.Transaction

	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		trans, err := s.transactionRepo.GetForUpdateByPublicID(ctx, publicID, tx)
		if err != nil {
			return fmt.Errorf("get transaction for update: %w", err)
		}

		if trans.Type != model.TypeDeposit {
			return fmt.Errorf("%w: transaction %s is not a deposit", model.ErrValidation, publicID)
		}

		switch trans.Status {
		case model.TxCompleted:
			// Second trigger: no-op, never double-credit
			s.logger.Info().Str("transaction_id", publicID).Msg("deposit already confirmed")
			result = trans
			return nil
		case model.TxFailed, model.TxCancelled:
			return fmt.Errorf("%w: deposit %s is %s", model.ErrInvalidState, publicID, trans.Status)
		}

		if trans.Expired(time.Now()) {
			return fmt.Errorf("%w: deposit %s expired at %s",
				model.ErrExpired, publicID, trans.ExpiresAt.Format(time.RFC3339))
		}

		completed, err := s.transactionRepo.Complete(ctx, trans.ID, tx)
		if err != nil {
			return fmt.Errorf("complete transaction: %w", err)
		}
		if !completed {
			// Row was locked, so a status change underneath us means a bug
			return fmt.Errorf("deposit %s no longer pending under lock", publicID)
		}

		wallet, err := s.walletRepo.GetForUpdate(ctx, trans.UserID, tx)
		if err != nil {
			return fmt.Errorf("get wallet for update: %w", err)
		}

		err = s.walletRepo.UpdateBalances(ctx, trans.UserID,
			wallet.AvailableBalance+trans.Amount, wallet.BlockedBalance, tx)
		if err != nil {
			return fmt.Errorf("update balances: %w", err)
		}

		now := time.Now()
		trans.Status = model.TxCompleted
		trans.CompletedAt = &now
		result = trans

		s.logger.Info().
			Str("transaction_id", publicID).
			Int64("user_id", trans.UserID).
			Int64("amount", trans.Amount).
			Msg("deposit confirmed, wallet credited")
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (s *DepositServiceImpl) GetTransaction(ctx context.Context, publicID string) (*model.Transaction, error) {
	trans, err := s.transactionRepo.GetByPublicID(ctx, publicID)
	if err != nil {
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return trans, nil
}

// ExpirePendingDeposits fails pending deposits whose confirmation window has
// passed. Each row is claimed with SKIP LOCKED so a concurrent confirmation
// always wins the race.
func (s *DepositServiceImpl) ExpirePendingDeposits(ctx context.Context) error {
	transactions, err := s.transactionRepo.ListExpiredPendingDeposits(ctx, time.Now(), s.expiryBatchSize)
	if err != nil {
		return fmt.Errorf("list expired deposits: %w", err)
	}

	if len(transactions) == 0 {
		s.logger.Debug().Msg("no expired pending deposits")
		return nil
	}

	var expiredCount int
	for _, trans := range transactions {
		// Stop quickly on shutdown
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		var expired bool
		err = s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
			locked, err := s.transactionRepo.LockPendingDeposit(ctx, trans.ID, tx)
			if err != nil {
				return fmt.Errorf("lock pending deposit: %w", err)
			}
			if !locked {
				s.logger.Debug().Str("transaction_id", trans.PublicID).Msg("deposit already claimed or no longer pending")
				return nil
			}

			failed, err := s.transactionRepo.FailIfPending(ctx, trans.ID, tx)
			if err != nil {
				return fmt.Errorf("fail transaction: %w", err)
			}
			expired = failed
			return nil
		})
		if err != nil {
			s.logger.Error().
				Err(err).
				Str("transaction_id", trans.PublicID).
				Msg("failed to expire deposit")
			continue
		}
		if expired {
			expiredCount++
		}
	}

	s.logger.Info().
		Int("candidates", len(transactions)).
		Int("expired", expiredCount).
		Msg("deposit expiry sweep completed")
	return nil
}
