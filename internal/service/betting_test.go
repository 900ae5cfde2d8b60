package service

import (
	"betpool/internal/model"
	mocks "betpool/mocks/repository"
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const minBet = int64(1000)

func TestPlaceBet_MatchesExistingOpposingBet(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	mockWalletRepo := mocks.NewWalletRepository(t)
	mockBetRepo := mocks.NewBetRepository(t)
	mockSeriesRepo := mocks.NewSeriesRepository(t)
	mockMatchRepo := mocks.NewMatchRepository(t)
	mockTransRepo := mocks.NewTransactionRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	mockDBManager.On("WithTransaction", ctx, mock.Anything).Return(func(ctx context.Context, fn func(pgx.Tx) error) error {
		return fn(nil)
	})
	mockSeriesRepo.On("GetForUpdate", ctx, int64(12), mock.Anything).Return(&model.Series{
		ID:      12,
		MatchID: 7,
		State:   model.SeriesReleased,
	}, nil)
	mockMatchRepo.On("Get", ctx, int64(7), mock.Anything).Return(&model.Match{
		ID:        7,
		Player1ID: 3,
		Player2ID: 4,
	}, nil)
	mockWalletRepo.On("GetForUpdate", ctx, int64(2), mock.Anything).Return(&model.Wallet{
		UserID:           2,
		AvailableBalance: 5000,
		BlockedBalance:   0,
	}, nil)
	mockWalletRepo.On("UpdateBalances", ctx, int64(2), int64(4000), int64(1000), mock.Anything).Return(nil)
	mockBetRepo.On("Insert", ctx, mock.AnythingOfType("*model.Bet"), mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*model.Bet).ID = 11
	}).Return(nil)
	mockTransRepo.On("Insert", ctx, mock.MatchedBy(func(trans *model.Transaction) bool {
		return trans.Type == model.TypeBet &&
			trans.UserID == 2 &&
			trans.Amount == 1000 &&
			trans.Status == model.TxCompleted
	}), mock.Anything).Return(nil)
	mockBetRepo.On("ListOpenBySide", ctx, int64(12), int64(3), mock.Anything).Return([]*model.Bet{
		{ID: 10, SeriesID: 12, UserID: 1, ChosenPlayerID: 3, Amount: 3000, MatchedAmount: 0, Status: model.BetPending},
	}, nil)
	mockBetRepo.On("UpdateFill", ctx, int64(10), int64(1000), model.BetPartiallyMatched, mock.Anything).Return(nil)
	mockBetRepo.On("UpdateFill", ctx, int64(11), int64(1000), model.BetMatched, mock.Anything).Return(nil)

	service := NewBettingService(mockWalletRepo, mockBetRepo, mockSeriesRepo, mockMatchRepo, mockTransRepo, mockDBManager, minBet, logger)

	resp, err := service.PlaceBet(ctx, 2, &model.PlaceBetRequest{
		SeriesID:       12,
		ChosenPlayerID: 4,
		Amount:         1000,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(11), resp.ID)
	assert.Equal(t, model.BetMatched, resp.Status)
	assert.Equal(t, int64(1000), resp.MatchedAmount)
	assert.Equal(t, int64(0), resp.RemainingAmount)
	assert.Equal(t, "100.00", resp.MatchPercentage)
}

func TestPlaceBet_NoCounterparty_StaysPending(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	mockWalletRepo := mocks.NewWalletRepository(t)
	mockBetRepo := mocks.NewBetRepository(t)
	mockSeriesRepo := mocks.NewSeriesRepository(t)
	mockMatchRepo := mocks.NewMatchRepository(t)
	mockTransRepo := mocks.NewTransactionRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	mockDBManager.On("WithTransaction", ctx, mock.Anything).Return(func(ctx context.Context, fn func(pgx.Tx) error) error {
		return fn(nil)
	})
	mockSeriesRepo.On("GetForUpdate", ctx, int64(12), mock.Anything).Return(&model.Series{
		ID:      12,
		MatchID: 7,
		State:   model.SeriesReleased,
	}, nil)
	mockMatchRepo.On("Get", ctx, int64(7), mock.Anything).Return(&model.Match{
		ID:        7,
		Player1ID: 3,
		Player2ID: 4,
	}, nil)
	mockWalletRepo.On("GetForUpdate", ctx, int64(1), mock.Anything).Return(&model.Wallet{
		UserID:           1,
		AvailableBalance: 3000,
		BlockedBalance:   0,
	}, nil)
	mockWalletRepo.On("UpdateBalances", ctx, int64(1), int64(0), int64(3000), mock.Anything).Return(nil)
	mockBetRepo.On("Insert", ctx, mock.AnythingOfType("*model.Bet"), mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*model.Bet).ID = 10
	}).Return(nil)
	mockTransRepo.On("Insert", ctx, mock.Anything, mock.Anything).Return(nil)
	mockBetRepo.On("ListOpenBySide", ctx, int64(12), int64(4), mock.Anything).Return([]*model.Bet{}, nil)

	service := NewBettingService(mockWalletRepo, mockBetRepo, mockSeriesRepo, mockMatchRepo, mockTransRepo, mockDBManager, minBet, logger)

	resp, err := service.PlaceBet(ctx, 1, &model.PlaceBetRequest{
		SeriesID:       12,
		ChosenPlayerID: 3,
		Amount:         3000,
	})

	require.NoError(t, err)
	assert.Equal(t, model.BetPending, resp.Status)
	assert.Equal(t, int64(0), resp.MatchedAmount)
	assert.Equal(t, int64(3000), resp.RemainingAmount)
	mockBetRepo.AssertNotCalled(t, "UpdateFill")
}

func TestPlaceBet_FIFOAcrossMultipleOpposingBets(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	mockWalletRepo := mocks.NewWalletRepository(t)
	mockBetRepo := mocks.NewBetRepository(t)
	mockSeriesRepo := mocks.NewSeriesRepository(t)
	mockMatchRepo := mocks.NewMatchRepository(t)
	mockTransRepo := mocks.NewTransactionRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	mockDBManager.On("WithTransaction", ctx, mock.Anything).Return(func(ctx context.Context, fn func(pgx.Tx) error) error {
		return fn(nil)
	})
	mockSeriesRepo.On("GetForUpdate", ctx, int64(12), mock.Anything).Return(&model.Series{
		ID:      12,
		MatchID: 7,
		State:   model.SeriesReleased,
	}, nil)
	mockMatchRepo.On("Get", ctx, int64(7), mock.Anything).Return(&model.Match{
		ID:        7,
		Player1ID: 3,
		Player2ID: 4,
	}, nil)
	mockWalletRepo.On("GetForUpdate", ctx, int64(5), mock.Anything).Return(&model.Wallet{
		UserID:           5,
		AvailableBalance: 2000,
		BlockedBalance:   0,
	}, nil)
	mockWalletRepo.On("UpdateBalances", ctx, int64(5), int64(500), int64(1500), mock.Anything).Return(nil)
	mockBetRepo.On("Insert", ctx, mock.AnythingOfType("*model.Bet"), mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*model.Bet).ID = 30
	}).Return(nil)
	mockTransRepo.On("Insert", ctx, mock.Anything, mock.Anything).Return(nil)

	// Oldest first: the first bet fills entirely before the second is touched
	mockBetRepo.On("ListOpenBySide", ctx, int64(12), int64(3), mock.Anything).Return([]*model.Bet{
		{ID: 10, SeriesID: 12, UserID: 1, ChosenPlayerID: 3, Amount: 1000, MatchedAmount: 0, Status: model.BetPending},
		{ID: 20, SeriesID: 12, UserID: 2, ChosenPlayerID: 3, Amount: 1000, MatchedAmount: 0, Status: model.BetPending},
	}, nil)
	mockBetRepo.On("UpdateFill", ctx, int64(10), int64(1000), model.BetMatched, mock.Anything).Return(nil)
	mockBetRepo.On("UpdateFill", ctx, int64(20), int64(500), model.BetPartiallyMatched, mock.Anything).Return(nil)
	mockBetRepo.On("UpdateFill", ctx, int64(30), int64(1500), model.BetMatched, mock.Anything).Return(nil)

	service := NewBettingService(mockWalletRepo, mockBetRepo, mockSeriesRepo, mockMatchRepo, mockTransRepo, mockDBManager, minBet, logger)

	resp, err := service.PlaceBet(ctx, 5, &model.PlaceBetRequest{
		SeriesID:       12,
		ChosenPlayerID: 4,
		Amount:         1500,
	})

	require.NoError(t, err)
	assert.Equal(t, model.BetMatched, resp.Status)
	assert.Equal(t, int64(1500), resp.MatchedAmount)
}

func TestPlaceBet_SeriesNotReleased(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	mockWalletRepo := mocks.NewWalletRepository(t)
	mockBetRepo := mocks.NewBetRepository(t)
	mockSeriesRepo := mocks.NewSeriesRepository(t)
	mockMatchRepo := mocks.NewMatchRepository(t)
	mockTransRepo := mocks.NewTransactionRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	mockDBManager.On("WithTransaction", ctx, mock.Anything).Return(func(ctx context.Context, fn func(pgx.Tx) error) error {
		return fn(nil)
	})
	mockSeriesRepo.On("GetForUpdate", ctx, int64(12), mock.Anything).Return(&model.Series{
		ID:      12,
		MatchID: 7,
		State:   model.SeriesInProgress,
	}, nil)

	service := NewBettingService(mockWalletRepo, mockBetRepo, mockSeriesRepo, mockMatchRepo, mockTransRepo, mockDBManager, minBet, logger)

	resp, err := service.PlaceBet(ctx, 1, &model.PlaceBetRequest{
		SeriesID:       12,
		ChosenPlayerID: 3,
		Amount:         1000,
	})

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, model.ErrInvalidState)
	mockWalletRepo.AssertNotCalled(t, "GetForUpdate")
	mockBetRepo.AssertNotCalled(t, "Insert")
}

func TestPlaceBet_InsufficientBalance(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	mockWalletRepo := mocks.NewWalletRepository(t)
	mockBetRepo := mocks.NewBetRepository(t)
	mockSeriesRepo := mocks.NewSeriesRepository(t)
	mockMatchRepo := mocks.NewMatchRepository(t)
	mockTransRepo := mocks.NewTransactionRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	mockDBManager.On("WithTransaction", ctx, mock.Anything).Return(func(ctx context.Context, fn func(pgx.Tx) error) error {
		return fn(nil)
	})
	mockSeriesRepo.On("GetForUpdate", ctx, int64(12), mock.Anything).Return(&model.Series{
		ID:      12,
		MatchID: 7,
		State:   model.SeriesReleased,
	}, nil)
	mockMatchRepo.On("Get", ctx, int64(7), mock.Anything).Return(&model.Match{
		ID:        7,
		Player1ID: 3,
		Player2ID: 4,
	}, nil)
	mockWalletRepo.On("GetForUpdate", ctx, int64(1), mock.Anything).Return(&model.Wallet{
		UserID:           1,
		AvailableBalance: 500,
		BlockedBalance:   0,
	}, nil)

	service := NewBettingService(mockWalletRepo, mockBetRepo, mockSeriesRepo, mockMatchRepo, mockTransRepo, mockDBManager, minBet, logger)

	resp, err := service.PlaceBet(ctx, 1, &model.PlaceBetRequest{
		SeriesID:       12,
		ChosenPlayerID: 3,
		Amount:         1000,
	})

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, model.ErrInsufficientBalance)
	mockBetRepo.AssertNotCalled(t, "Insert")
}

func TestPlaceBet_BelowMinimum(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	mockWalletRepo := mocks.NewWalletRepository(t)
	mockBetRepo := mocks.NewBetRepository(t)
	mockSeriesRepo := mocks.NewSeriesRepository(t)
	mockMatchRepo := mocks.NewMatchRepository(t)
	mockTransRepo := mocks.NewTransactionRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	service := NewBettingService(mockWalletRepo, mockBetRepo, mockSeriesRepo, mockMatchRepo, mockTransRepo, mockDBManager, minBet, logger)

	resp, err := service.PlaceBet(ctx, 1, &model.PlaceBetRequest{
		SeriesID:       12,
		ChosenPlayerID: 3,
		Amount:         500,
	})

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, model.ErrBelowMinimum)
	mockDBManager.AssertNotCalled(t, "WithTransaction")
}

func TestPlaceBet_NegativeAmount(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	mockWalletRepo := mocks.NewWalletRepository(t)
	mockBetRepo := mocks.NewBetRepository(t)
	mockSeriesRepo := mocks.NewSeriesRepository(t)
	mockMatchRepo := mocks.NewMatchRepository(t)
	mockTransRepo := mocks.NewTransactionRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	service := NewBettingService(mockWalletRepo, mockBetRepo, mockSeriesRepo, mockMatchRepo, mockTransRepo, mockDBManager, minBet, logger)

	resp, err := service.PlaceBet(ctx, 1, &model.PlaceBetRequest{
		SeriesID:       12,
		ChosenPlayerID: 3,
		Amount:         -1000,
	})

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, model.ErrValidation)
	mockDBManager.AssertNotCalled(t, "WithTransaction")
}

func TestPlaceBet_ChosenPlayerNotInMatch(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	mockWalletRepo := mocks.NewWalletRepository(t)
	mockBetRepo := mocks.NewBetRepository(t)
	mockSeriesRepo := mocks.NewSeriesRepository(t)
	mockMatchRepo := mocks.NewMatchRepository(t)
	mockTransRepo := mocks.NewTransactionRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	mockDBManager.On("WithTransaction", ctx, mock.Anything).Return(func(ctx context.Context, fn func(pgx.Tx) error) error {
		return fn(nil)
	})
	mockSeriesRepo.On("GetForUpdate", ctx, int64(12), mock.Anything).Return(&model.Series{
		ID:      12,
		MatchID: 7,
		State:   model.SeriesReleased,
	}, nil)
	mockMatchRepo.On("Get", ctx, int64(7), mock.Anything).Return(&model.Match{
		ID:        7,
		Player1ID: 3,
		Player2ID: 4,
	}, nil)

	service := NewBettingService(mockWalletRepo, mockBetRepo, mockSeriesRepo, mockMatchRepo, mockTransRepo, mockDBManager, minBet, logger)

	resp, err := service.PlaceBet(ctx, 1, &model.PlaceBetRequest{
		SeriesID:       12,
		ChosenPlayerID: 99,
		Amount:         1000,
	})

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, model.ErrValidation)
	mockWalletRepo.AssertNotCalled(t, "GetForUpdate")
}

func TestGetBetsBySeries_GroupsByPlayer(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	mockWalletRepo := mocks.NewWalletRepository(t)
	mockBetRepo := mocks.NewBetRepository(t)
	mockSeriesRepo := mocks.NewSeriesRepository(t)
	mockMatchRepo := mocks.NewMatchRepository(t)
	mockTransRepo := mocks.NewTransactionRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	now := time.Now()
	mockSeriesRepo.On("Get", ctx, int64(12)).Return(&model.Series{
		ID:      12,
		MatchID: 7,
		State:   model.SeriesReleased,
	}, nil)
	mockMatchRepo.On("Get", ctx, int64(7)).Return(&model.Match{
		ID:        7,
		Player1ID: 3,
		Player2ID: 4,
	}, nil)
	mockBetRepo.On("ListBySeries", ctx, int64(12)).Return([]*model.Bet{
		{ID: 10, SeriesID: 12, UserID: 1, ChosenPlayerID: 3, Amount: 3000, MatchedAmount: 1000, Status: model.BetPartiallyMatched, CreatedAt: now},
		{ID: 11, SeriesID: 12, UserID: 2, ChosenPlayerID: 4, Amount: 1000, MatchedAmount: 1000, Status: model.BetMatched, CreatedAt: now},
	}, nil)

	service := NewBettingService(mockWalletRepo, mockBetRepo, mockSeriesRepo, mockMatchRepo, mockTransRepo, mockDBManager, minBet, logger)

	resp, err := service.GetBetsBySeries(ctx, 12)

	require.NoError(t, err)
	assert.Equal(t, int64(12), resp.SeriesID)
	require.Len(t, resp.Player1Bets, 1)
	require.Len(t, resp.Player2Bets, 1)
	assert.Equal(t, int64(10), resp.Player1Bets[0].ID)
	assert.Equal(t, int64(2000), resp.Player1Bets[0].RemainingAmount)
	assert.Equal(t, "33.33", resp.Player1Bets[0].MatchPercentage)
	assert.Equal(t, int64(11), resp.Player2Bets[0].ID)
}
