package test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"

	"betpool/internal/config"
	"betpool/internal/database"
	"betpool/internal/handler"
	"betpool/internal/model"
	"betpool/internal/repository/postgres"
	"betpool/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testPool *pgxpool.Pool
	testCfg  *config.Config
)

const (
	adminID = 900
	aliceID = 901
	bobID   = 902

	adminToken = "e2e-admin-token"
	aliceToken = "e2e-alice-token"
	bobToken   = "e2e-bob-token"

	player1ID = 9001
	player2ID = 9002

	startingBalance = int64(10000)
)

// Runs as first function
func TestMain(m *testing.M) {
	if os.Getenv("SKIP_E2E") != "" {
		fmt.Println("Skipping E2E tests")
		os.Exit(0)
	}

	ctx := context.Background()
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}
	testCfg = cfg

	pool, err := database.NewPool(ctx, cfg.Database)
	if err != nil {
		fmt.Printf("failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	testPool = pool
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func setupE2E(t *testing.T) *gin.Engine {
	if testPool == nil {
		t.Skip("Database connection not available")
	}

	ctx := context.Background()

	// Delete children before parents: transactions and bets reference series,
	// series references matches. Test matches are recognized by their player ids.
	cleanup := []string{
		fmt.Sprintf("DELETE FROM transactions WHERE user_id IN (%d, %d, %d)", adminID, aliceID, bobID),
		fmt.Sprintf("DELETE FROM bets WHERE user_id IN (%d, %d)", aliceID, bobID),
		fmt.Sprintf("DELETE FROM series WHERE match_id IN (SELECT id FROM matches WHERE player1_id = %d)", player1ID),
		fmt.Sprintf("DELETE FROM matches WHERE player1_id = %d", player1ID),
	}
	for _, stmt := range cleanup {
		_, err := testPool.Exec(ctx, stmt)
		require.NoError(t, err)
	}

	// Seed test users, resetting role if already present
	_, err := testPool.Exec(ctx, `
		INSERT INTO users (id, name, role)
		VALUES ($1, 'e2e admin', 'admin'), ($2, 'e2e alice', 'user'), ($3, 'e2e bob', 'user')
		ON CONFLICT (id) DO UPDATE SET role = EXCLUDED.role
	`, adminID, aliceID, bobID)
	require.NoError(t, err)

	_, err = testPool.Exec(ctx, `
		INSERT INTO sessions (token, user_id, expires_at)
		VALUES ($1, $4, NOW() + INTERVAL '1 hour'),
		       ($2, $5, NOW() + INTERVAL '1 hour'),
		       ($3, $6, NOW() + INTERVAL '1 hour')
		ON CONFLICT (token) DO UPDATE SET expires_at = EXCLUDED.expires_at
	`, adminToken, aliceToken, bobToken, adminID, aliceID, bobID)
	require.NoError(t, err)

	// Reset wallets to the starting balance
	_, err = testPool.Exec(ctx, `
		INSERT INTO wallets (user_id, available_balance, blocked_balance, version)
		VALUES ($1, $3, 0, 0), ($2, $3, 0, 0)
		ON CONFLICT (user_id) DO UPDATE
		SET available_balance = EXCLUDED.available_balance,
			blocked_balance = EXCLUDED.blocked_balance,
			version = EXCLUDED.version,
			updated_at = NOW()
	`, aliceID, bobID, startingBalance)
	require.NoError(t, err)

	logger := zerolog.Nop()
	walletRepo := postgres.NewWalletRepository(testPool)
	betRepo := postgres.NewBetRepository(testPool)
	matchRepo := postgres.NewMatchRepository(testPool)
	seriesRepo := postgres.NewSeriesRepository(testPool)
	transactionRepo := postgres.NewTransactionRepository(testPool)
	influencerRepo := postgres.NewInfluencerRepository(testPool)
	sessionRepo := postgres.NewSessionRepository(testPool)
	dbManager := postgres.NewTransactionManager(testPool)

	bettingService := service.NewBettingService(walletRepo, betRepo, seriesRepo, matchRepo,
		transactionRepo, dbManager, testCfg.Betting.MinBetAmount, logger)
	seriesService := service.NewSeriesService(walletRepo, betRepo, seriesRepo, matchRepo,
		transactionRepo, influencerRepo, dbManager, logger)
	depositService := service.NewDepositService(walletRepo, transactionRepo, dbManager,
		testCfg.Betting.DepositExpiry, testCfg.Worker.ExpiryBatchSize, logger)
	walletService := service.NewWalletService(walletRepo, transactionRepo, dbManager, logger)
	authService := service.NewAuthService(sessionRepo)

	h := handler.NewHandler(bettingService, seriesService, depositService, walletService,
		authService, testCfg.Auth.WebhookSecret, testCfg.RateLimit, logger)
	return h.SetupRoutes()
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// createReleasedSeries creates a best-of-3 match through the API and releases
// its first series for betting, returning the series id.
func createReleasedSeries(t *testing.T, router *gin.Engine) int64 {
	w := doJSON(t, router, "POST", "/api/v1/matches", adminToken, gin.H{
		"player1_id":   player1ID,
		"player2_id":   player2ID,
		"total_series": 3,
		"scheduled_at": "2026-09-01T20:00:00Z",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var match model.Match
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &match))

	var seriesID int64
	err := testPool.QueryRow(context.Background(),
		"SELECT id FROM series WHERE match_id = $1 AND number = 1", match.ID).Scan(&seriesID)
	require.NoError(t, err)

	w = doJSON(t, router, "POST", fmt.Sprintf("/api/v1/series/%d/release", seriesID), adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	return seriesID
}

func walletBalances(t *testing.T, userID int64) (available, blocked int64) {
	err := testPool.QueryRow(context.Background(),
		"SELECT available_balance, blocked_balance FROM wallets WHERE user_id = $1", userID).
		Scan(&available, &blocked)
	require.NoError(t, err)
	return available, blocked
}

// Test_BettingSettlementFlow walks a series end to end through the HTTP API:
// match creation, release, opposing bets matching FIFO, start, and settlement
// paying the winner from the loser's blocked stake.
func Test_BettingSettlementFlow(t *testing.T) {
	router := setupE2E(t)

	seriesID := createReleasedSeries(t, router)

	t.Run("First bet stays pending without a counterparty", func(t *testing.T) {
		w := doJSON(t, router, "POST", "/api/v1/bets", aliceToken, model.PlaceBetRequest{
			SeriesID:       seriesID,
			ChosenPlayerID: player1ID,
			Amount:         2000,
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var resp model.BetResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, model.BetPending, resp.Status)
		assert.Equal(t, int64(0), resp.MatchedAmount)

		available, blocked := walletBalances(t, aliceID)
		assert.Equal(t, startingBalance-2000, available)
		assert.Equal(t, int64(2000), blocked)
	})

	t.Run("Opposing bet matches the open remainder", func(t *testing.T) {
		w := doJSON(t, router, "POST", "/api/v1/bets", bobToken, model.PlaceBetRequest{
			SeriesID:       seriesID,
			ChosenPlayerID: player2ID,
			Amount:         3000,
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var resp model.BetResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, model.BetPartiallyMatched, resp.Status)
		assert.Equal(t, int64(2000), resp.MatchedAmount)
		assert.Equal(t, int64(1000), resp.RemainingAmount)
		assert.Equal(t, "66.67", resp.MatchPercentage)
	})

	t.Run("Series bets are grouped by backed player", func(t *testing.T) {
		w := doJSON(t, router, "GET", fmt.Sprintf("/api/v1/series/%d/bets", seriesID), aliceToken, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp model.SeriesBetsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp.Player1Bets, 1)
		assert.Len(t, resp.Player2Bets, 1)
		assert.Equal(t, model.BetMatched, resp.Player1Bets[0].Status)
	})

	t.Run("No bets accepted after the series starts", func(t *testing.T) {
		w := doJSON(t, router, "POST", fmt.Sprintf("/api/v1/series/%d/start", seriesID), adminToken, nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = doJSON(t, router, "POST", "/api/v1/bets", aliceToken, model.PlaceBetRequest{
			SeriesID:       seriesID,
			ChosenPlayerID: player1ID,
			Amount:         1000,
		})
		assert.Equal(t, http.StatusConflict, w.Code)

		var errResp model.ErrorResponse
		json.Unmarshal(w.Body.Bytes(), &errResp)
		assert.Equal(t, "INVALID_STATE", errResp.Code)
	})

	t.Run("Settlement pays winner, refunds remainder, debits loser", func(t *testing.T) {
		w := doJSON(t, router, "POST", fmt.Sprintf("/api/v1/series/%d/finish", seriesID), adminToken,
			model.FinishSeriesRequest{WinnerPlayerID: player2ID, Player1Score: 4, Player2Score: 7})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var series model.Series
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &series))
		assert.Equal(t, model.SeriesSettled, series.State)

		// Bob staked 3000, matched 2000: 1000 refunded plus a 4000 payout
		available, blocked := walletBalances(t, bobID)
		assert.Equal(t, startingBalance+2000, available)
		assert.Equal(t, int64(0), blocked)

		// Alice's fully matched 2000 is forfeited to Bob
		available, blocked = walletBalances(t, aliceID)
		assert.Equal(t, startingBalance-2000, available)
		assert.Equal(t, int64(0), blocked)

		var aliceStatus, bobStatus string
		err := testPool.QueryRow(context.Background(),
			"SELECT status FROM bets WHERE series_id = $1 AND user_id = $2", seriesID, aliceID).Scan(&aliceStatus)
		require.NoError(t, err)
		err = testPool.QueryRow(context.Background(),
			"SELECT status FROM bets WHERE series_id = $1 AND user_id = $2", seriesID, bobID).Scan(&bobStatus)
		require.NoError(t, err)
		assert.Equal(t, "lost", aliceStatus)
		assert.Equal(t, "won", bobStatus)

		// Ledger carries the payout and the remainder refund
		var winCount, refundCount int
		err = testPool.QueryRow(context.Background(), `
			SELECT COUNT(*) FILTER (WHERE type = 'bet_win' AND amount = 4000),
			       COUNT(*) FILTER (WHERE type = 'bet_refund' AND amount = 1000)
			FROM transactions WHERE user_id = $1 AND series_id = $2`, bobID, seriesID).
			Scan(&winCount, &refundCount)
		require.NoError(t, err)
		assert.Equal(t, 1, winCount)
		assert.Equal(t, 1, refundCount)
	})
}

// Test_CancelledSeriesRefundsStakes verifies a cancelled series returns every
// stake in full, matched or not.
func Test_CancelledSeriesRefundsStakes(t *testing.T) {
	router := setupE2E(t)

	seriesID := createReleasedSeries(t, router)

	w := doJSON(t, router, "POST", "/api/v1/bets", aliceToken, model.PlaceBetRequest{
		SeriesID:       seriesID,
		ChosenPlayerID: player1ID,
		Amount:         2000,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, router, "POST", "/api/v1/bets", bobToken, model.PlaceBetRequest{
		SeriesID:       seriesID,
		ChosenPlayerID: player2ID,
		Amount:         2000,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, router, "POST", fmt.Sprintf("/api/v1/series/%d/cancel", seriesID), adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	for _, userID := range []int64{aliceID, bobID} {
		available, blocked := walletBalances(t, userID)
		assert.Equal(t, startingBalance, available, "user %d refunded in full", userID)
		assert.Equal(t, int64(0), blocked)
	}
}

// Test_AdminRoutesRejectRegularUsers verifies the lifecycle endpoints are
// closed to non-admin sessions.
func Test_AdminRoutesRejectRegularUsers(t *testing.T) {
	router := setupE2E(t)

	w := doJSON(t, router, "POST", "/api/v1/matches", aliceToken, gin.H{
		"player1_id":   player1ID,
		"player2_id":   player2ID,
		"total_series": 3,
		"scheduled_at": "2026-09-01T20:00:00Z",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, router, "POST", "/api/v1/matches", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// Test_ConcurrentWebhookConfirmations_CreditExactlyOnce verifies:
// - Duplicated concurrent provider webhooks for the same deposit
// - Every request gets a non-error response (second triggers are no-ops)
// - The wallet is credited exactly once
// - All goroutines start simultaneously via barrier channel
func Test_ConcurrentWebhookConfirmations_CreditExactlyOnce(t *testing.T) {
	router := setupE2E(t)

	const (
		numRequests   = 25
		depositAmount = int64(5000)
	)

	w := doJSON(t, router, "POST", "/api/v1/deposits", aliceToken,
		model.CreateDepositRequest{Amount: depositAmount})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var deposit model.DepositResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &deposit))

	reqBody, err := json.Marshal(model.PaymentWebhookRequest{
		TransactionID: deposit.TransactionID,
		Status:        "paid",
	})
	require.NoError(t, err)

	// Channel to synchronize goroutine start
	barrier := make(chan struct{})

	results := make(chan int, numRequests)

	var wg sync.WaitGroup
	wg.Add(numRequests)

	for i := 0; i < numRequests; i++ {
		go func() {
			defer wg.Done()

			// Wait for barrier to open
			<-barrier

			req, _ := http.NewRequest("POST", "/api/v1/webhooks/payments", bytes.NewBuffer(reqBody))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("X-Webhook-Secret", testCfg.Auth.WebhookSecret)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			results <- w.Code
		}()
	}

	// All goroutines start simultaneously
	close(barrier)

	wg.Wait()
	close(results)

	var okCount, errorCount int
	for code := range results {
		assert.NotEqual(t, http.StatusInternalServerError, code, "No 500 errors")
		if code == http.StatusOK {
			okCount++
		} else {
			errorCount++
			t.Logf("Unexpected response code: %d", code)
		}
	}

	// The row lock serializes the confirmations; whoever loses the race finds
	// the deposit completed and returns it unchanged
	assert.Equal(t, numRequests, okCount, "every webhook delivery is acknowledged")
	assert.Equal(t, 0, errorCount)

	available, blocked := walletBalances(t, aliceID)
	assert.Equal(t, startingBalance+depositAmount, available, "wallet credited exactly once")
	assert.Equal(t, int64(0), blocked)

	var status string
	var completedCount int
	err = testPool.QueryRow(context.Background(), `
		SELECT status, (SELECT COUNT(*) FROM transactions
			WHERE user_id = $2 AND type = 'deposit' AND status = 'completed')
		FROM transactions WHERE public_id = $1`, deposit.TransactionID, aliceID).
		Scan(&status, &completedCount)
	require.NoError(t, err)
	assert.Equal(t, "completed", status)
	assert.Equal(t, 1, completedCount)
}

// Test_ExpiredDepositRejectedByWebhook verifies a deposit past its window is
// never credited, even when the provider confirmation still arrives.
func Test_ExpiredDepositRejectedByWebhook(t *testing.T) {
	router := setupE2E(t)

	w := doJSON(t, router, "POST", "/api/v1/deposits", aliceToken,
		model.CreateDepositRequest{Amount: 5000})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var deposit model.DepositResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &deposit))

	_, err := testPool.Exec(context.Background(),
		"UPDATE transactions SET expires_at = NOW() - INTERVAL '1 hour' WHERE public_id = $1",
		deposit.TransactionID)
	require.NoError(t, err)

	req, _ := http.NewRequest("POST", "/api/v1/webhooks/payments", bytes.NewBufferString(
		fmt.Sprintf(`{"transaction_id": %q, "status": "paid"}`, deposit.TransactionID)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Webhook-Secret", testCfg.Auth.WebhookSecret)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusGone, rec.Code)

	var errResp model.ErrorResponse
	json.Unmarshal(rec.Body.Bytes(), &errResp)
	assert.Equal(t, "EXPIRED", errResp.Code)

	available, _ := walletBalances(t, aliceID)
	assert.Equal(t, startingBalance, available, "expired deposit never credits")
}
