package service

import (
	"context"
	"fmt"

	"betpool/internal/model"
	"betpool/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type SeriesServiceImpl struct {
	walletRepo      repository.WalletRepository
	betRepo         repository.BetRepository
	seriesRepo      repository.SeriesRepository
	matchRepo       repository.MatchRepository
	transactionRepo repository.TransactionRepository
	influencerRepo  repository.InfluencerRepository
	dbManager       repository.DBManager
	logger          zerolog.Logger
}

func NewSeriesService(
	walletRepo repository.WalletRepository,
	betRepo repository.BetRepository,
	seriesRepo repository.SeriesRepository,
	matchRepo repository.MatchRepository,
	transactionRepo repository.TransactionRepository,
	influencerRepo repository.InfluencerRepository,
	dbManager repository.DBManager,
	logger zerolog.Logger,
) SeriesService {
	return &SeriesServiceImpl{
		walletRepo:      walletRepo,
		betRepo:         betRepo,
		seriesRepo:      seriesRepo,
		matchRepo:       matchRepo,
		transactionRepo: transactionRepo,
		influencerRepo:  influencerRepo,
		dbManager:       dbManager,
		logger:          logger,
	}
}

// CreateMatch creates the match and its numbered series rows, all pending
func (s *SeriesServiceImpl) CreateMatch(ctx context.Context, req *model.CreateMatchRequest) (*model.Match, error) {
	if req.Player1ID == req.Player2ID {
		return nil, fmt.Errorf("%w: a match needs two distinct players", model.ErrValidation)
	}
	if req.TotalSeries < 1 {
		return nil, fmt.Errorf("%w: total_series must be at least 1", model.ErrValidation)
	}

	match := &model.Match{
		Player1ID:    req.Player1ID,
		Player2ID:    req.Player2ID,
		TotalSeries:  req.TotalSeries,
		ScheduledAt:  req.ScheduledAt,
		InfluencerID: req.InfluencerID,
	}

	if req.CommissionOverride != nil {
		rate, err := decimal.NewFromString(*req.CommissionOverride)
		if err != nil {
			return nil, fmt.Errorf("%w: commission_override: %s", model.ErrValidation, err.Error())
		}
		if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(100)) {
			return nil, fmt.Errorf("%w: commission_override must be between 0 and 100", model.ErrValidation)
		}
		match.CommissionOverride = &rate
	}

	if req.InfluencerID != nil {
		if _, err := s.influencerRepo.Get(ctx, *req.InfluencerID); err != nil {
			return nil, fmt.Errorf("get influencer: %w", err)
		}
	}

	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		if err := s.matchRepo.Insert(ctx, match, tx); err != nil {
			return fmt.Errorf("insert match: %w", err)
		}
		if err := s.seriesRepo.InsertForMatch(ctx, match.ID, match.TotalSeries, tx); err != nil {
			return fmt.Errorf("insert series: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("match_id", match.ID).
		Int64("player1_id", match.Player1ID).
		Int64("player2_id", match.Player2ID).
		Int("total_series", match.TotalSeries).
		Msg("match created")
	return match, nil
}

// Release opens the betting window: pending -> released
func (s *SeriesServiceImpl) Release(ctx context.Context, seriesID int64) (*model.Series, error) {
	return s.transition(ctx, seriesID, model.SeriesReleased, nil)
}

// Start closes the betting window: released -> in_progress. Only one series per
// match may be in progress at a time.
func (s *SeriesServiceImpl) Start(ctx context.Context, seriesID int64) (*model.Series, error) {
	return s.transition(ctx, seriesID, model.SeriesInProgress, func(tx pgx.Tx, series *model.Series) error {
		count, err := s.seriesRepo.CountInProgressByMatch(ctx, series.MatchID, tx)
		if err != nil {
			return fmt.Errorf("count in-progress series: %w", err)
		}
		if count > 0 {
			return fmt.Errorf("%w: match %d already has a series in progress",
				model.ErrInvalidState, series.MatchID)
		}
		return nil
	})
}

// transition applies a guarded state change under the series row lock
func (s *SeriesServiceImpl) transition(ctx context.Context, seriesID int64, target model.SeriesState, guard func(pgx.Tx, *model.Series) error) (*model.Series, error) {
	var series *model.Series

	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		var err error
		series, err = s.seriesRepo.GetForUpdate(ctx, seriesID, tx)
		if err != nil {
			return fmt.Errorf("get series for update: %w", err)
		}

		if !series.State.CanTransition(target) {
			return fmt.Errorf("%w: series %d cannot go from %s to %s",
				model.ErrInvalidState, seriesID, series.State, target)
		}

		if guard != nil {
			if err := guard(tx, series); err != nil {
				return err
			}
		}

		if err := s.seriesRepo.UpdateState(ctx, seriesID, target, tx); err != nil {
			return fmt.Errorf("update series state: %w", err)
		}
		series.State = target
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("series_id", seriesID).
		Str("state", series.State.String()).
		Msg("series state changed")
	return series, nil
}

// Finish settles the series. Refunds of unmatched remainders, winner payouts at
// fixed 1:1 odds and the influencer commission all commit in one database
// transaction; any failure rolls back the entire payout batch.
func (s *SeriesServiceImpl) Finish(ctx context.Context, seriesID int64, req *model.FinishSeriesRequest) (*model.Series, error) {
	if req.Player1Score < 0 || req.Player2Score < 0 {
		return nil, fmt.Errorf("%w: scores must be non-negative", model.ErrValidation)
	}

	var series *model.Series

	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		var err error
		series, err = s.seriesRepo.GetForUpdate(ctx, seriesID, tx)
		if err != nil {
			return fmt.Errorf("get series for update: %w", err)
		}

		if !series.State.CanTransition(model.SeriesSettled) {
			return fmt.Errorf("%w: series %d cannot be finished from %s",
				model.ErrInvalidState, seriesID, series.State)
		}

		match, err := s.matchRepo.Get(ctx, series.MatchID, tx)
		if err != nil {
			return fmt.Errorf("get match: %w", err)
		}

		if !match.HasPlayer(req.WinnerPlayerID) {
			return fmt.Errorf("%w: winner %d is not part of match %d",
				model.ErrValidation, req.WinnerPlayerID, match.ID)
		}

		err = s.seriesRepo.Settle(ctx, seriesID, req.WinnerPlayerID, req.Player1Score, req.Player2Score, tx)
		if err != nil {
			return fmt.Errorf("settle series: %w", err)
		}
		series.State = model.SeriesSettled
		series.WinnerPlayerID = &req.WinnerPlayerID
		series.Player1Score = &req.Player1Score
		series.Player2Score = &req.Player2Score

		return s.distribute(ctx, tx, series, match, req.WinnerPlayerID)
	})
	if err != nil {
		return nil, err
	}

	return series, nil
}

// distribute pays out a settled series: refunds unmatched remainders, credits
// winners 2x their matched stake, forfeits losers' matched stakes and credits
// the influencer commission on matched volume.
func (s *SeriesServiceImpl) distribute(ctx context.Context, tx pgx.Tx, series *model.Series, match *model.Match, winnerPlayerID int64) error {
	bets, err := s.betRepo.ListBySeries(ctx, series.ID, tx)
	if err != nil {
		return fmt.Errorf("list bets: %w", err)
	}

	var matchedVolume, refunded, paidOut int64
	for _, bet := range bets {
		if !betIsOpen(bet.Status) {
			continue
		}

		wallet, err := s.walletRepo.GetForUpdate(ctx, bet.UserID, tx)
		if err != nil {
			return fmt.Errorf("get wallet for update: %w", err)
		}
		available, blocked := wallet.AvailableBalance, wallet.BlockedBalance

		// Stake that never found a counterparty is returned unconditionally
		if remainder := bet.RemainingAmount(); remainder > 0 {
			blocked -= remainder
			available += remainder
			refunded += remainder

			entry := completedEntry(bet.UserID, model.TypeBetRefund, remainder, &series.ID, &bet.ID)
			if err := s.transactionRepo.Insert(ctx, entry, tx); err != nil {
				return fmt.Errorf("insert refund entry: %w", err)
			}
		}

		status := model.BetCancelled // fully unmatched bets end refunded, out of the game
		if bet.MatchedAmount > 0 {
			if bet.ChosenPlayerID == match.Player1ID {
				matchedVolume += bet.MatchedAmount
			}

			blocked -= bet.MatchedAmount
			if bet.ChosenPlayerID == winnerPlayerID {
				// Own matched stake back plus the counterparty's equal stake
				payout := 2 * bet.MatchedAmount
				available += payout
				paidOut += payout
				status = model.BetWon

				entry := completedEntry(bet.UserID, model.TypeBetWin, payout, &series.ID, &bet.ID)
				if err := s.transactionRepo.Insert(ctx, entry, tx); err != nil {
					return fmt.Errorf("insert win entry: %w", err)
				}
			} else {
				// Forfeited: the stake left the available balance at placement
				// and funds the winner's payout
				status = model.BetLost
			}
		}

		if err := s.walletRepo.UpdateBalances(ctx, bet.UserID, available, blocked, tx); err != nil {
			return fmt.Errorf("update balances: %w", err)
		}
		if err := s.betRepo.UpdateStatus(ctx, bet.ID, status, tx); err != nil {
			return fmt.Errorf("update bet status: %w", err)
		}
	}

	if err := s.payCommission(ctx, tx, series, match, matchedVolume); err != nil {
		return err
	}

	s.logger.Info().
		Int64("series_id", series.ID).
		Int64("winner_player_id", winnerPlayerID).
		Int64("matched_volume", matchedVolume).
		Int64("refunded", refunded).
		Int64("paid_out", paidOut).
		Int("bets", len(bets)).
		Msg("series settled")
	return nil
}

// payCommission credits the influencer's wallet with their share of the matched
// volume. Rate resolution: match-level override first, then the influencer's
// default rate.
func (s *SeriesServiceImpl) payCommission(ctx context.Context, tx pgx.Tx, series *model.Series, match *model.Match, matchedVolume int64) error {
	if match.InfluencerID == nil || matchedVolume == 0 {
		return nil
	}

	influencer, err := s.influencerRepo.Get(ctx, *match.InfluencerID, tx)
	if err != nil {
		return fmt.Errorf("get influencer: %w", err)
	}

	rate := influencer.CommissionRate
	if match.CommissionOverride != nil {
		rate = *match.CommissionOverride
	}

	commission := decimal.NewFromInt(matchedVolume).
		Mul(rate).
		Div(decimal.NewFromInt(100)).
		IntPart()
	if commission <= 0 {
		return nil
	}

	wallet, err := s.walletRepo.GetForUpdate(ctx, influencer.UserID, tx)
	if err != nil {
		return fmt.Errorf("get influencer wallet: %w", err)
	}

	err = s.walletRepo.UpdateBalances(ctx, influencer.UserID,
		wallet.AvailableBalance+commission, wallet.BlockedBalance, tx)
	if err != nil {
		return fmt.Errorf("update influencer balance: %w", err)
	}

	entry := completedEntry(influencer.UserID, model.TypeFee, commission, &series.ID, nil)
	if err := s.transactionRepo.Insert(ctx, entry, tx); err != nil {
		return fmt.Errorf("insert commission entry: %w", err)
	}

	s.logger.Info().
		Int64("series_id", series.ID).
		Int64("influencer_id", influencer.ID).
		Str("rate", rate.String()).
		Int64("commission", commission).
		Msg("influencer commission credited")
	return nil
}

// Cancel aborts the series and refunds every bet's full amount, matched or not
func (s *SeriesServiceImpl) Cancel(ctx context.Context, seriesID int64) (*model.Series, error) {
	var series *model.Series

	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		var err error
		series, err = s.seriesRepo.GetForUpdate(ctx, seriesID, tx)
		if err != nil {
			return fmt.Errorf("get series for update: %w", err)
		}

		if !series.State.CanTransition(model.SeriesCancelled) {
			return fmt.Errorf("%w: series %d cannot be cancelled from %s",
				model.ErrInvalidState, seriesID, series.State)
		}

		if err := s.seriesRepo.UpdateState(ctx, seriesID, model.SeriesCancelled, tx); err != nil {
			return fmt.Errorf("update series state: %w", err)
		}
		series.State = model.SeriesCancelled

		bets, err := s.betRepo.ListBySeries(ctx, seriesID, tx)
		if err != nil {
			return fmt.Errorf("list bets: %w", err)
		}

		var refunded int64
		for _, bet := range bets {
			if !betIsOpen(bet.Status) {
				continue
			}

			wallet, err := s.walletRepo.GetForUpdate(ctx, bet.UserID, tx)
			if err != nil {
				return fmt.Errorf("get wallet for update: %w", err)
			}

			// The full amount, not just the unmatched remainder
			err = s.walletRepo.UpdateBalances(ctx, bet.UserID,
				wallet.AvailableBalance+bet.Amount, wallet.BlockedBalance-bet.Amount, tx)
			if err != nil {
				return fmt.Errorf("update balances: %w", err)
			}

			entry := completedEntry(bet.UserID, model.TypeBetRefund, bet.Amount, &seriesID, &bet.ID)
			if err := s.transactionRepo.Insert(ctx, entry, tx); err != nil {
				return fmt.Errorf("insert refund entry: %w", err)
			}

			if err := s.betRepo.UpdateStatus(ctx, bet.ID, model.BetCancelled, tx); err != nil {
				return fmt.Errorf("update bet status: %w", err)
			}
			refunded += bet.Amount
		}

		s.logger.Info().
			Int64("series_id", seriesID).
			Int64("refunded", refunded).
			Int("bets", len(bets)).
			Msg("series cancelled, all stakes refunded")
		return nil
	})
	if err != nil {
		return nil, err
	}

	return series, nil
}

// betIsOpen reports whether a bet still holds blocked funds
func betIsOpen(status model.BetStatus) bool {
	switch status {
	case model.BetPending, model.BetPartiallyMatched, model.BetMatched:
		return true
	}
	return false
}
