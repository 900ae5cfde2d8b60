package service

import (
	"context"
	"fmt"

	"betpool/internal/model"
	"betpool/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

type BettingServiceImpl struct {
	walletRepo      repository.WalletRepository
	betRepo         repository.BetRepository
	seriesRepo      repository.SeriesRepository
	matchRepo       repository.MatchRepository
	transactionRepo repository.TransactionRepository
	dbManager       repository.DBManager
	minBetAmount    int64
	logger          zerolog.Logger
}

func NewBettingService(
	walletRepo repository.WalletRepository,
	betRepo repository.BetRepository,
	seriesRepo repository.SeriesRepository,
	matchRepo repository.MatchRepository,
	transactionRepo repository.TransactionRepository,
	dbManager repository.DBManager,
	minBetAmount int64,
	logger zerolog.Logger,
) BettingService {
	return &BettingServiceImpl{
		walletRepo:      walletRepo,
		betRepo:         betRepo,
		seriesRepo:      seriesRepo,
		matchRepo:       matchRepo,
		transactionRepo: transactionRepo,
		dbManager:       dbManager,
		minBetAmount:    minBetAmount,
		logger:          logger,
	}
}

// PlaceBet debits the stake into the blocked balance, records the bet and its
// ledger entry, then matches it oldest-first against the opposing pool. The
// series row lock serializes all of this per series, so the two sides' matched
// totals never diverge.
func (s *BettingServiceImpl) PlaceBet(ctx context.Context, userID int64, req *model.PlaceBetRequest) (*model.BetResponse, error) {
	// Validate inputs early, before transaction and locks
	if req.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", model.ErrValidation)
	}
	if req.Amount < s.minBetAmount {
		return nil, fmt.Errorf("%w: minimum bet is %d", model.ErrBelowMinimum, s.minBetAmount)
	}

	var bet *model.Bet

	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		// Series row lock: in-flight placements observe finish/cancel instead of
		// matching into a closing window
		series, err := s.seriesRepo.GetForUpdate(ctx, req.SeriesID, tx)
		if err != nil {
			return fmt.Errorf("get series for update: %w", err)
		}

		if series.State != model.SeriesReleased {
			return fmt.Errorf("%w: series %d is %s, betting requires released",
				model.ErrInvalidState, series.ID, series.State)
		}

		match, err := s.matchRepo.Get(ctx, series.MatchID, tx)
		if err != nil {
			return fmt.Errorf("get match: %w", err)
		}

		if !match.HasPlayer(req.ChosenPlayerID) {
			return fmt.Errorf("%w: player %d is not part of match %d",
				model.ErrValidation, req.ChosenPlayerID, match.ID)
		}

		// Hold the stake: available -> blocked
		wallet, err := s.walletRepo.GetForUpdate(ctx, userID, tx)
		if err != nil {
			return fmt.Errorf("get wallet for update: %w", err)
		}

		if wallet.AvailableBalance < req.Amount {
			return model.ErrInsufficientBalance
		}

		err = s.walletRepo.UpdateBalances(ctx, userID,
			wallet.AvailableBalance-req.Amount, wallet.BlockedBalance+req.Amount, tx)
		if err != nil {
			return fmt.Errorf("update balances: %w", err)
		}

		bet = &model.Bet{
			SeriesID:       req.SeriesID,
			UserID:         userID,
			ChosenPlayerID: req.ChosenPlayerID,
			Amount:         req.Amount,
			MatchedAmount:  0,
			Status:         model.BetPending,
		}
		if err := s.betRepo.Insert(ctx, bet, tx); err != nil {
			return fmt.Errorf("insert bet: %w", err)
		}

		entry := completedEntry(userID, model.TypeBet, req.Amount, &req.SeriesID, &bet.ID)
		if err := s.transactionRepo.Insert(ctx, entry, tx); err != nil {
			return fmt.Errorf("insert ledger entry: %w", err)
		}

		if err := s.matchAgainstOpposing(ctx, tx, bet, match.OpponentOf(req.ChosenPlayerID)); err != nil {
			return err
		}

		s.logger.Info().
			Int64("bet_id", bet.ID).
			Int64("series_id", req.SeriesID).
			Int64("user_id", userID).
			Int64("amount", req.Amount).
			Int64("matched_amount", bet.MatchedAmount).
			Str("status", bet.Status.String()).
			Msg("bet placed")
		return nil
	})
	if err != nil {
		return nil, err
	}

	return model.NewBetResponse(bet), nil
}

// matchAgainstOpposing fills the incoming bet from the opposing side's FIFO
// queue: pop the oldest open bet, match min of the two remainders, repeat until
// the incoming bet is full or the queue is exhausted.
func (s *BettingServiceImpl) matchAgainstOpposing(ctx context.Context, tx pgx.Tx, bet *model.Bet, opposingPlayerID int64) error {
	opposing, err := s.betRepo.ListOpenBySide(ctx, bet.SeriesID, opposingPlayerID, tx)
	if err != nil {
		return fmt.Errorf("list opposing bets: %w", err)
	}

	for _, opp := range opposing {
		if bet.RemainingAmount() == 0 {
			break
		}

		fill := min(bet.RemainingAmount(), opp.RemainingAmount())
		if fill <= 0 {
			continue
		}

		opp.MatchedAmount += fill
		bet.MatchedAmount += fill

		oppStatus := model.MatchStatusFor(opp.Amount, opp.MatchedAmount)
		if err := s.betRepo.UpdateFill(ctx, opp.ID, opp.MatchedAmount, oppStatus, tx); err != nil {
			return fmt.Errorf("update opposing bet fill: %w", err)
		}
	}

	bet.Status = model.MatchStatusFor(bet.Amount, bet.MatchedAmount)
	if bet.MatchedAmount > 0 {
		if err := s.betRepo.UpdateFill(ctx, bet.ID, bet.MatchedAmount, bet.Status, tx); err != nil {
			return fmt.Errorf("update bet fill: %w", err)
		}
	}
	return nil
}

// GetBetsBySeries returns a series' bets grouped by the player they back, with
// the derived fill fields
func (s *BettingServiceImpl) GetBetsBySeries(ctx context.Context, seriesID int64) (*model.SeriesBetsResponse, error) {
	series, err := s.seriesRepo.Get(ctx, seriesID)
	if err != nil {
		return nil, fmt.Errorf("get series: %w", err)
	}

	match, err := s.matchRepo.Get(ctx, series.MatchID)
	if err != nil {
		return nil, fmt.Errorf("get match: %w", err)
	}

	bets, err := s.betRepo.ListBySeries(ctx, seriesID)
	if err != nil {
		return nil, fmt.Errorf("list bets by series: %w", err)
	}

	resp := &model.SeriesBetsResponse{
		SeriesID:    series.ID,
		State:       series.State,
		Player1ID:   match.Player1ID,
		Player2ID:   match.Player2ID,
		Player1Bets: []*model.BetResponse{},
		Player2Bets: []*model.BetResponse{},
	}
	for _, b := range bets {
		if b.ChosenPlayerID == match.Player1ID {
			resp.Player1Bets = append(resp.Player1Bets, model.NewBetResponse(b))
		} else {
			resp.Player2Bets = append(resp.Player2Bets, model.NewBetResponse(b))
		}
	}
	return resp, nil
}
